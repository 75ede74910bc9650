package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implements SalesOrderRepository over PostgreSQL.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository builds the sales-order adapter.
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

const soColumns = `id, customer_id, order_date, delivery_date, status, subtotal, total_gst, total_amount, created_at`

func (r *SalesOrderRepo) Create(so *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (` + soColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		so.ID, so.CustomerID, so.OrderDate, so.DeliveryDate, so.Status,
		so.Subtotal, so.TotalGST, so.TotalAmount, so.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) CreateLine(line *entity.SalesOrderLine) error {
	query := `
		INSERT INTO sales_order_items (id, so_id, item_id, quantity, rate, gst_percent, gst_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SOID, line.ItemID, line.Quantity, line.Rate,
		line.GSTPercent, line.GSTAmount, line.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert sales order line: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + soColumns + ` FROM sales_orders WHERE id = $1`
	var so entity.SalesOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&so.ID, &so.CustomerID, &so.OrderDate, &so.DeliveryDate, &so.Status,
		&so.Subtotal, &so.TotalGST, &so.TotalAmount, &so.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return &so, nil
}

func (r *SalesOrderRepo) GetLines(soID string) ([]*entity.SalesOrderLine, error) {
	query := `
		SELECT id, so_id, item_id, quantity, rate, gst_percent, gst_amount, line_total
		FROM sales_order_items WHERE so_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, soID)
	if err != nil {
		return nil, fmt.Errorf("get sales order lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.SalesOrderLine
	for rows.Next() {
		var l entity.SalesOrderLine
		if err := rows.Scan(
			&l.ID, &l.SOID, &l.ItemID, &l.Quantity, &l.Rate, &l.GSTPercent, &l.GSTAmount, &l.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("scan sales order line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

func (r *SalesOrderRepo) List(limit, offset int) ([]*entity.SalesOrder, error) {
	query := `SELECT ` + soColumns + ` FROM sales_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalesOrder
	for rows.Next() {
		var so entity.SalesOrder
		if err := rows.Scan(
			&so.ID, &so.CustomerID, &so.OrderDate, &so.DeliveryDate, &so.Status,
			&so.Subtotal, &so.TotalGST, &so.TotalAmount, &so.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, &so)
	}
	return list, rows.Err()
}

func (r *SalesOrderRepo) Update(so *entity.SalesOrder) error {
	query := `
		UPDATE sales_orders SET delivery_date = $2, status = $3, subtotal = $4, total_gst = $5, total_amount = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		so.ID, so.DeliveryDate, so.Status, so.Subtotal, so.TotalGST, so.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("update sales order: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) UpdateStatus(soID, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales_orders SET status = $2 WHERE id = $1`, soID, status)
	if err != nil {
		return fmt.Errorf("update sales order status: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) DeleteLines(soID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM sales_order_items WHERE so_id = $1`, soID)
	if err != nil {
		return fmt.Errorf("delete sales order lines: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales order: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) CountByCustomer(customerID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sales_orders WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales orders by customer: %w", err)
	}
	return count, nil
}

func (r *SalesOrderRepo) CountLinesByItem(itemID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sales_order_items WHERE item_id = $1`, itemID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales order lines by item: %w", err)
	}
	return count, nil
}
