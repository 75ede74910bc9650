package postgres

import (
	"context"
	"fmt"

	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

var _ repository.GoodsReceiptRepository = (*GoodsReceiptRepo)(nil)

// GoodsReceiptRepo implements GoodsReceiptRepository over PostgreSQL. The
// table is append-only; rows are never updated or deleted.
type GoodsReceiptRepo struct {
	q Querier
}

// NewGoodsReceiptRepository builds the goods-receipt adapter.
func NewGoodsReceiptRepository(q Querier) *GoodsReceiptRepo {
	return &GoodsReceiptRepo{q: q}
}

const grColumns = `id, po_id, item_id, supplier_id, invoice_number, received, accepted, rejected, receipt_date, notes, created_at`

func (r *GoodsReceiptRepo) Create(gr *entity.GoodsReceipt) error {
	query := `
		INSERT INTO goods_receipts (` + grColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		gr.ID, gr.POID, gr.ItemID, gr.SupplierID, gr.InvoiceNumber,
		gr.Received, gr.Accepted, gr.Rejected, gr.ReceiptDate, gr.Notes, gr.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert goods receipt: %w", err)
	}
	return nil
}

func (r *GoodsReceiptRepo) ListByPO(poID string) ([]*entity.GoodsReceipt, error) {
	query := `SELECT ` + grColumns + ` FROM goods_receipts WHERE po_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, poID)
	if err != nil {
		return nil, fmt.Errorf("list goods receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.GoodsReceipt
	for rows.Next() {
		var gr entity.GoodsReceipt
		if err := rows.Scan(
			&gr.ID, &gr.POID, &gr.ItemID, &gr.SupplierID, &gr.InvoiceNumber,
			&gr.Received, &gr.Accepted, &gr.Rejected, &gr.ReceiptDate, &gr.Notes, &gr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan goods receipt: %w", err)
		}
		list = append(list, &gr)
	}
	return list, rows.Err()
}

// SumReceivedByPO returns the cumulative received quantity per item across
// every receipt recorded against the order. This is the source of truth for
// the derived order status.
func (r *GoodsReceiptRepo) SumReceivedByPO(poID string) (map[string]int64, error) {
	query := `
		SELECT item_id, COALESCE(SUM(received), 0)
		FROM goods_receipts WHERE po_id = $1
		GROUP BY item_id`
	rows, err := r.q.Query(context.Background(), query, poID)
	if err != nil {
		return nil, fmt.Errorf("sum received by po: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]int64)
	for rows.Next() {
		var itemID string
		var total int64
		if err := rows.Scan(&itemID, &total); err != nil {
			return nil, fmt.Errorf("scan received sum: %w", err)
		}
		sums[itemID] = total
	}
	return sums, rows.Err()
}

func (r *GoodsReceiptRepo) CountByPO(poID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM goods_receipts WHERE po_id = $1`, poID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count goods receipts by po: %w", err)
	}
	return count, nil
}

func (r *GoodsReceiptRepo) CountByItem(itemID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM goods_receipts WHERE item_id = $1`, itemID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count goods receipts by item: %w", err)
	}
	return count, nil
}
