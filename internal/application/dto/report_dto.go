package dto

import "github.com/shopspring/decimal"

// GSTBracket is one tax bracket on one side of the ledger.
type GSTBracket struct {
	GSTPercent decimal.Decimal `json:"gst_percent"`
	BaseAmount decimal.Decimal `json:"base_amount"`
	GSTAmount  decimal.Decimal `json:"gst_amount"`
	OrderCount int             `json:"order_count"`
	LineCount  int             `json:"line_count"`
}

// GSTBracketComparison nets output GST against input GST for one bracket.
type GSTBracketComparison struct {
	GSTPercent decimal.Decimal `json:"gst_percent"`
	OutputGST  decimal.Decimal `json:"output_gst"`
	InputGST   decimal.Decimal `json:"input_gst"`
	NetGST     decimal.Decimal `json:"net_gst"`
}

// GSTLiabilityResponse is the GST summary: output tax collected on sales,
// input tax paid on purchases, and the net position. Positive net = payable,
// negative = refundable.
type GSTLiabilityResponse struct {
	OutputBrackets []GSTBracket           `json:"output_brackets"`
	InputBrackets  []GSTBracket           `json:"input_brackets"`
	Comparison     []GSTBracketComparison `json:"comparison"`
	TotalOutputGST decimal.Decimal        `json:"total_output_gst"`
	TotalInputGST  decimal.Decimal        `json:"total_input_gst"`
	NetGST         decimal.Decimal        `json:"net_gst"`
	Position       string                 `json:"position"` // Payable | Refundable | Balanced
}

// CustomerRevenue is revenue aggregated for one customer.
type CustomerRevenue struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	OrderCount   int             `json:"order_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AverageOrder decimal.Decimal `json:"average_order"`
}

// SalesSummaryResponse mirrors the original sales-reports counters.
type SalesSummaryResponse struct {
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	DeliveredOrders int             `json:"delivered_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	PendingRevenue  decimal.Decimal `json:"pending_revenue"`
	TotalInvoices   int             `json:"total_invoices"`
}
