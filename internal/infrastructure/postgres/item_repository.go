package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements ItemRepository over PostgreSQL. Pass a pool or tx
// (Querier).
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the catalog item adapter.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, description, category, unit_of_measure, hsn_code,
	purchase_rate, purchase_gst_percent, purchase_price,
	selling_rate, selling_gst_percent, selling_price,
	created_at, updated_at`

func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.UnitOfMeasure, item.HSNCode,
		item.PurchaseRate, item.PurchaseGSTPercent, item.PurchasePrice,
		item.SellingRate, item.SellingGSTPercent, item.SellingPrice,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.Category, &it.UnitOfMeasure, &it.HSNCode,
		&it.PurchaseRate, &it.PurchaseGSTPercent, &it.PurchasePrice,
		&it.SellingRate, &it.SellingGSTPercent, &it.SellingPrice,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, category = $4, unit_of_measure = $5,
			hsn_code = $6, purchase_rate = $7, purchase_gst_percent = $8, purchase_price = $9,
			selling_rate = $10, selling_gst_percent = $11, selling_price = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.UnitOfMeasure, item.HSNCode,
		item.PurchaseRate, item.PurchaseGSTPercent, item.PurchasePrice,
		item.SellingRate, item.SellingGSTPercent, item.SellingPrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Category, &it.UnitOfMeasure, &it.HSNCode,
			&it.PurchaseRate, &it.PurchaseGSTPercent, &it.PurchasePrice,
			&it.SellingRate, &it.SellingGSTPercent, &it.SellingPrice,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
