package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implements PurchaseOrderRepository over PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository builds the purchase-order adapter.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const poColumns = `id, supplier_id, order_date, expected_delivery, status, subtotal, total_gst, total_amount, created_at`

func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + poColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		po.ID, po.SupplierID, po.OrderDate, po.ExpectedDelivery, po.Status,
		po.Subtotal, po.TotalGST, po.TotalAmount, po.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) CreateLine(line *entity.PurchaseOrderLine) error {
	query := `
		INSERT INTO purchase_order_items (id, po_id, item_id, quantity, rate, gst_percent, gst_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.POID, line.ItemID, line.Quantity, line.Rate,
		line.GSTPercent, line.GSTAmount, line.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order line: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1`
	var po entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&po.ID, &po.SupplierID, &po.OrderDate, &po.ExpectedDelivery, &po.Status,
		&po.Subtotal, &po.TotalGST, &po.TotalAmount, &po.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &po, nil
}

func (r *PurchaseOrderRepo) GetLines(poID string) ([]*entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, po_id, item_id, quantity, rate, gst_percent, gst_amount, line_total
		FROM purchase_order_items WHERE po_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, poID)
	if err != nil {
		return nil, fmt.Errorf("get purchase order lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(
			&l.ID, &l.POID, &l.ItemID, &l.Quantity, &l.Rate, &l.GSTPercent, &l.GSTAmount, &l.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(
			&po.ID, &po.SupplierID, &po.OrderDate, &po.ExpectedDelivery, &po.Status,
			&po.Subtotal, &po.TotalGST, &po.TotalAmount, &po.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &po)
	}
	return list, rows.Err()
}

func (r *PurchaseOrderRepo) UpdateStatus(poID, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2 WHERE id = $1`, poID, status)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) DeleteLines(poID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM purchase_order_items WHERE po_id = $1`, poID)
	if err != nil {
		return fmt.Errorf("delete purchase order lines: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) CountBySupplier(supplierID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchase_orders WHERE supplier_id = $1`, supplierID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count purchase orders by supplier: %w", err)
	}
	return count, nil
}

func (r *PurchaseOrderRepo) CountLinesByItem(itemID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchase_order_items WHERE item_id = $1`, itemID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count purchase order lines by item: %w", err)
	}
	return count, nil
}
