package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumjum/admin-api/internal/domain/entity"
	"github.com/jumjum/admin-api/pkg/printer"
)

type recordingPrinter struct {
	data      []byte
	err       error
	connected bool
}

func (p *recordingPrinter) Print(data []byte) error {
	p.data = data
	return p.err
}

func (p *recordingPrinter) IsConnected() bool { return p.connected }

func printableReport() *entity.Report {
	return &entity.Report{
		Header: entity.ReportHeader{
			BusinessName: "SRI KALKI JAM JAM RESORTS",
			GSTIN:        "33AAACT2984P1ZY",
		},
		Period:         "Today",
		Category:       "Bar",
		DateRangeLabel: "15/03/2025",
		GeneratedAt:    "15/03/2025",
		InvoiceNo:      "JJ2503151234",
		BillCount:      2,
		Rows: []entity.AggregatedRow{
			{
				ItemID:      "B1",
				Name:        "Beer",
				Quantity:    5,
				Price:       decimal.NewFromInt(180),
				TotalAmount: decimal.NewFromInt(900),
			},
		},
		Totals: entity.Totals{
			Subtotal:      decimal.NewFromInt(900),
			TotalQuantity: 5,
			GST:           decimal.NewFromInt(45),
			GrandTotal:    decimal.NewFromInt(945),
			ItemCount:     1,
		},
	}
}

func TestFormatReport(t *testing.T) {
	data := FormatReport(printableReport())
	out := string(data)

	assert.Contains(t, out, "SRI KALKI JAM JAM RESORTS")
	assert.Contains(t, out, "BILLING REPORT")
	assert.Contains(t, out, "GSTIN: 33AAACT2984P1ZY")
	assert.Contains(t, out, "JJ2503151234")
	assert.Contains(t, out, "5x Beer")
	assert.Contains(t, out, "900.00")
	assert.Contains(t, out, "GST (5%):")
	assert.Contains(t, out, "945.00")
	// Ends with a partial cut
	assert.Equal(t, []byte{0x1D, 'V', 0x01}, data[len(data)-3:])
}

func TestPrintReport(t *testing.T) {
	p := &recordingPrinter{connected: true}
	s := NewPrinterService(p, "network")

	err := s.PrintReport(printableReport())

	require.NoError(t, err)
	assert.NotEmpty(t, p.data)
	assert.Contains(t, string(p.data), "BILLING REPORT")
}

func TestPrintReport_WrapsPrinterError(t *testing.T) {
	p := &recordingPrinter{err: errors.New("device offline")}
	s := NewPrinterService(p, "usb")

	err := s.PrintReport(printableReport())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to print report")
	assert.Contains(t, err.Error(), "device offline")
}

func TestGetStatus(t *testing.T) {
	s := NewPrinterService(&recordingPrinter{connected: true}, "network")
	status := s.GetStatus()
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "network", status.Type)

	s = NewPrinterService(printer.NewNullPrinter(), "none")
	status = s.GetStatus()
	assert.False(t, status.Configured)
	assert.False(t, status.Connected)
	assert.Equal(t, "none", status.Type)
}
