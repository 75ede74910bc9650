package postgres

import (
	"context"
	"fmt"

	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implements DeliveryRepository over PostgreSQL. The table is
// append-only; rows are never updated or deleted.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository builds the delivery adapter.
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

func (r *DeliveryRepo) Create(d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, so_id, item_id, quantity, delivery_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.SOID, d.ItemID, d.Quantity, d.DeliveryDate, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

func (r *DeliveryRepo) ListBySO(soID string) ([]*entity.Delivery, error) {
	query := `
		SELECT id, so_id, item_id, quantity, delivery_date, created_at
		FROM deliveries WHERE so_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, soID)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.SOID, &d.ItemID, &d.Quantity, &d.DeliveryDate, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// SumDeliveredBySO returns the cumulative delivered quantity per item across
// every delivery recorded against the order. This is the source of truth for
// both the derived order status and the remaining quantity on each line.
func (r *DeliveryRepo) SumDeliveredBySO(soID string) (map[string]int64, error) {
	query := `
		SELECT item_id, COALESCE(SUM(quantity), 0)
		FROM deliveries WHERE so_id = $1
		GROUP BY item_id`
	rows, err := r.q.Query(context.Background(), query, soID)
	if err != nil {
		return nil, fmt.Errorf("sum delivered by so: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]int64)
	for rows.Next() {
		var itemID string
		var total int64
		if err := rows.Scan(&itemID, &total); err != nil {
			return nil, fmt.Errorf("scan delivered sum: %w", err)
		}
		sums[itemID] = total
	}
	return sums, rows.Err()
}
