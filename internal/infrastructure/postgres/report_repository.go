package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo runs the read-only report aggregations straight against the
// pool; nothing here ever writes.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the report adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// OutputGSTByBracket aggregates GST collected on sales lines per bracket.
func (r *ReportRepo) OutputGSTByBracket() ([]repository.GSTBracketRow, error) {
	const query = `
	SELECT
	    l.gst_percent,
	    COALESCE(SUM(l.quantity * l.rate), 0) AS base_amount,
	    COALESCE(SUM(l.gst_amount), 0)        AS gst_amount,
	    COUNT(DISTINCT l.so_id)               AS order_count,
	    COUNT(*)                              AS line_count
	FROM sales_order_items l
	GROUP BY l.gst_percent
	ORDER BY l.gst_percent`
	return r.queryBrackets(query)
}

// InputGSTByBracket aggregates GST paid on purchase lines per bracket.
func (r *ReportRepo) InputGSTByBracket() ([]repository.GSTBracketRow, error) {
	const query = `
	SELECT
	    l.gst_percent,
	    COALESCE(SUM(l.quantity * l.rate), 0) AS base_amount,
	    COALESCE(SUM(l.gst_amount), 0)        AS gst_amount,
	    COUNT(DISTINCT l.po_id)               AS order_count,
	    COUNT(*)                              AS line_count
	FROM purchase_order_items l
	GROUP BY l.gst_percent
	ORDER BY l.gst_percent`
	return r.queryBrackets(query)
}

func (r *ReportRepo) queryBrackets(query string) ([]repository.GSTBracketRow, error) {
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("gst brackets: %w", err)
	}
	defer rows.Close()

	var out []repository.GSTBracketRow
	for rows.Next() {
		var row repository.GSTBracketRow
		if err := rows.Scan(&row.GSTPercent, &row.BaseAmount, &row.GSTAmount, &row.OrderCount, &row.LineCount); err != nil {
			return nil, fmt.Errorf("scan gst bracket: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// RevenueByCustomer aggregates order count and revenue per customer,
// highest revenue first.
func (r *ReportRepo) RevenueByCustomer() ([]repository.CustomerRevenueRow, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    COUNT(so.id)                        AS order_count,
	    COALESCE(SUM(so.total_amount), 0)   AS total_revenue
	FROM customers c
	JOIN sales_orders so ON so.customer_id = c.id
	GROUP BY c.id, c.name
	ORDER BY total_revenue DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("revenue by customer: %w", err)
	}
	defer rows.Close()

	var out []repository.CustomerRevenueRow
	for rows.Next() {
		var row repository.CustomerRevenueRow
		if err := rows.Scan(&row.CustomerID, &row.CustomerName, &row.OrderCount, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan customer revenue: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// LowStock returns items at or below their reorder level, most deficient
// first.
func (r *ReportRepo) LowStock() ([]repository.LowStockRow, error) {
	const query = `
	SELECT i.item_id, it.name, i.quantity_on_hand, i.reorder_level
	FROM inventory i
	JOIN items it ON it.id = i.item_id
	WHERE i.quantity_on_hand <= i.reorder_level
	ORDER BY (i.reorder_level - i.quantity_on_hand) DESC, it.name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()

	var out []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ItemID, &row.Name, &row.QuantityOnHand, &row.ReorderLevel); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// SalesSummary returns the order and revenue counters in one round trip.
func (r *ReportRepo) SalesSummary() (*repository.SalesSummaryRow, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM sales_orders)                                          AS total_orders,
	    (SELECT COUNT(*) FROM sales_orders WHERE status = $1)                        AS pending_orders,
	    (SELECT COUNT(*) FROM sales_orders WHERE status = $2)                        AS delivered_orders,
	    (SELECT COALESCE(SUM(total_amount), 0) FROM sales_orders WHERE status = $2)  AS total_revenue,
	    (SELECT COALESCE(SUM(total_amount), 0) FROM sales_orders WHERE status <> $2) AS pending_revenue,
	    (SELECT COUNT(*) FROM invoices)                                              AS total_invoices`
	var row repository.SalesSummaryRow
	err := r.pool.QueryRow(context.Background(), query,
		entity.SOStatusPending, entity.SOStatusDelivered,
	).Scan(
		&row.TotalOrders, &row.PendingOrders, &row.DeliveredOrders,
		&row.TotalRevenue, &row.PendingRevenue, &row.TotalInvoices,
	)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &row, nil
}
