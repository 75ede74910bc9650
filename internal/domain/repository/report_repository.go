package repository

import "github.com/shopspring/decimal"

// GSTBracketRow is the raw aggregation of one tax bracket on one side of the
// ledger (output = sales lines, input = purchase lines). The DB produces it;
// the use case nets output against input.
type GSTBracketRow struct {
	GSTPercent decimal.Decimal
	BaseAmount decimal.Decimal
	GSTAmount  decimal.Decimal
	OrderCount int
	LineCount  int
}

// CustomerRevenueRow is the raw revenue aggregation per customer.
type CustomerRevenueRow struct {
	CustomerID   string
	CustomerName string
	OrderCount   int
	TotalRevenue decimal.Decimal
}

// LowStockRow is one item at or below its reorder level, ordered by deficit.
type LowStockRow struct {
	ItemID         string
	Name           string
	QuantityOnHand int64
	ReorderLevel   int64
}

// SalesSummaryRow mirrors the original sales-reports counters.
type SalesSummaryRow struct {
	TotalOrders     int
	PendingOrders   int
	DeliveredOrders int
	TotalRevenue    decimal.Decimal
	PendingRevenue  decimal.Decimal
	TotalInvoices   int
}

// ReportRepository defines the read-only aggregations. Implementations never
// modify data.
type ReportRepository interface {
	OutputGSTByBracket() ([]GSTBracketRow, error)
	InputGSTByBracket() ([]GSTBracketRow, error)
	RevenueByCustomer() ([]CustomerRevenueRow, error)
	LowStock() ([]LowStockRow, error)
	SalesSummary() (*SalesSummaryRow, error)
}
