package request

// ReportRequest represents report filter query parameters
type ReportRequest struct {
	Period   string `form:"period"`
	Category string `form:"category"`
	Start    string `form:"start"`
	End      string `form:"end"`
}

// BillHistoryRequest represents bill history filter parameters
type BillHistoryRequest struct {
	Period  string `form:"period"`
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
