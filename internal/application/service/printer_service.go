package service

import (
	"fmt"

	"github.com/jumjum/admin-api/internal/domain/entity"
	"github.com/jumjum/admin-api/pkg/export"
	"github.com/jumjum/admin-api/pkg/printer"
)

// PrinterService formats billing reports for thermal printers.
type PrinterService struct {
	printer     printer.Printer
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReport sends a generated report to the thermal printer.
func (s *PrinterService) PrintReport(report *entity.Report) error {
	if err := s.printer.Print(FormatReport(report)); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}
	return nil
}

// FormatReport converts a billing report into ESC/POS bytes.
// Amounts use plain fixed-2 formatting; the default thermal code page
// has no rupee glyph.
func FormatReport(r *entity.Report) []byte {
	doc := printer.NewDocument(48) // 80mm paper = 48 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.BusinessName).
		SetFontSize(printer.FontNormal).
		Text("BILLING REPORT").
		SetBold(false)

	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Report meta
	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date Range:", r.DateRangeLabel).
		KeyValue("Category:", r.Category).
		KeyValue("Generated:", r.GeneratedAt)

	doc.Separator('-')

	// Aggregated rows
	for _, row := range r.Rows {
		doc.ItemLine(row.Quantity, row.Name, export.FormatAmount(row.TotalAmount))
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Items:", fmt.Sprintf("%d", r.Totals.ItemCount)).
		KeyValue("Quantity:", fmt.Sprintf("%d", r.Totals.TotalQuantity)).
		KeyValue("Subtotal:", export.FormatAmount(r.Totals.Subtotal)).
		KeyValue(export.GSTCaption+":", export.FormatAmount(r.Totals.GST))

	doc.SetBold(true).
		KeyValue("GRAND TOTAL:", export.FormatAmount(r.Totals.GrandTotal)).
		SetBold(false)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
