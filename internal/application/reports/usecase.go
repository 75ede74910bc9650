// Package reports exposes the read-only business aggregations: the GST
// liability position, per-customer revenue, and the sales summary counters.
package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

// Net GST positions.
const (
	PositionPayable    = "Payable"
	PositionRefundable = "Refundable"
	PositionBalanced   = "Balanced"
)

// UseCase runs the report aggregations. Purely read-only.
type UseCase struct {
	reports repository.ReportRepository
}

// NewUseCase builds the reports use case.
func NewUseCase(reports repository.ReportRepository) *UseCase {
	return &UseCase{reports: reports}
}

// GSTLiability nets the output GST collected on sales against the input GST
// paid on purchases, per bracket and overall. A bracket present on only one
// side still appears in the comparison with the other side at zero.
func (uc *UseCase) GSTLiability(ctx context.Context) (*dto.GSTLiabilityResponse, error) {
	outputRows, err := uc.reports.OutputGSTByBracket()
	if err != nil {
		return nil, err
	}
	inputRows, err := uc.reports.InputGSTByBracket()
	if err != nil {
		return nil, err
	}

	resp := &dto.GSTLiabilityResponse{}
	outputByPct := make(map[string]decimal.Decimal, len(outputRows))
	inputByPct := make(map[string]decimal.Decimal, len(inputRows))
	var order []decimal.Decimal
	seen := make(map[string]bool)

	for _, r := range outputRows {
		resp.OutputBrackets = append(resp.OutputBrackets, toBracket(r))
		resp.TotalOutputGST = resp.TotalOutputGST.Add(r.GSTAmount)
		key := r.GSTPercent.String()
		outputByPct[key] = r.GSTAmount
		if !seen[key] {
			seen[key] = true
			order = append(order, r.GSTPercent)
		}
	}
	for _, r := range inputRows {
		resp.InputBrackets = append(resp.InputBrackets, toBracket(r))
		resp.TotalInputGST = resp.TotalInputGST.Add(r.GSTAmount)
		key := r.GSTPercent.String()
		inputByPct[key] = r.GSTAmount
		if !seen[key] {
			seen[key] = true
			order = append(order, r.GSTPercent)
		}
	}

	for _, pct := range order {
		key := pct.String()
		out := outputByPct[key]
		in := inputByPct[key]
		resp.Comparison = append(resp.Comparison, dto.GSTBracketComparison{
			GSTPercent: pct,
			OutputGST:  out,
			InputGST:   in,
			NetGST:     out.Sub(in),
		})
	}

	resp.NetGST = resp.TotalOutputGST.Sub(resp.TotalInputGST)
	switch {
	case resp.NetGST.IsPositive():
		resp.Position = PositionPayable
	case resp.NetGST.IsNegative():
		resp.Position = PositionRefundable
	default:
		resp.Position = PositionBalanced
	}
	return resp, nil
}

// RevenueByCustomer aggregates order count, total and average revenue per
// customer, highest revenue first.
func (uc *UseCase) RevenueByCustomer(ctx context.Context) ([]dto.CustomerRevenue, error) {
	rows, err := uc.reports.RevenueByCustomer()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerRevenue, 0, len(rows))
	for _, r := range rows {
		avg := decimal.Zero
		if r.OrderCount > 0 {
			avg = r.TotalRevenue.Div(decimal.NewFromInt(int64(r.OrderCount))).Round(2)
		}
		out = append(out, dto.CustomerRevenue{
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			OrderCount:   r.OrderCount,
			TotalRevenue: r.TotalRevenue,
			AverageOrder: avg,
		})
	}
	return out, nil
}

// SalesSummary returns the order and revenue counters.
func (uc *UseCase) SalesSummary(ctx context.Context) (*dto.SalesSummaryResponse, error) {
	row, err := uc.reports.SalesSummary()
	if err != nil {
		return nil, err
	}
	return &dto.SalesSummaryResponse{
		TotalOrders:     row.TotalOrders,
		PendingOrders:   row.PendingOrders,
		DeliveredOrders: row.DeliveredOrders,
		TotalRevenue:    row.TotalRevenue,
		PendingRevenue:  row.PendingRevenue,
		TotalInvoices:   row.TotalInvoices,
	}, nil
}

func toBracket(r repository.GSTBracketRow) dto.GSTBracket {
	return dto.GSTBracket{
		GSTPercent: r.GSTPercent,
		BaseAmount: r.BaseAmount,
		GSTAmount:  r.GSTAmount,
		OrderCount: r.OrderCount,
		LineCount:  r.LineCount,
	}
}
