package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implements InventoryRepository over PostgreSQL. Pass a pool
// or tx (Querier); mutations must run through a tx so GetForUpdate's row
// lock holds until commit.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the stock adapter.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (item_id, quantity_on_hand, reorder_level, location, last_updated)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ItemID, inv.QuantityOnHand, inv.ReorderLevel, inv.Location, inv.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Get(itemID string) (*entity.Inventory, error) {
	query := `
		SELECT item_id, quantity_on_hand, reorder_level, location, last_updated
		FROM inventory WHERE item_id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&inv.ItemID, &inv.QuantityOnHand, &inv.ReorderLevel, &inv.Location, &inv.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// GetForUpdate reads the stock row and locks it (SELECT FOR UPDATE) so the
// read-then-write on quantity_on_hand cannot lose a concurrent update.
func (r *InventoryRepo) GetForUpdate(itemID string) (*entity.Inventory, error) {
	query := `
		SELECT item_id, quantity_on_hand, reorder_level, location, last_updated
		FROM inventory WHERE item_id = $1
		FOR UPDATE`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&inv.ItemID, &inv.QuantityOnHand, &inv.ReorderLevel, &inv.Location, &inv.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET quantity_on_hand = $2, reorder_level = $3, location = $4, last_updated = $5
		WHERE item_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ItemID, inv.QuantityOnHand, inv.ReorderLevel, inv.Location, inv.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Delete(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}
