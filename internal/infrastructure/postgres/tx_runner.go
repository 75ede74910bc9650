package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajatsoni/vyapar-api/internal/application/catalog"
	"github.com/rajatsoni/vyapar-api/internal/application/purchasing"
	"github.com/rajatsoni/vyapar-api/internal/application/sales"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

var (
	_ catalog.TxRunner    = (*TxRunner)(nil)
	_ purchasing.TxRunner = (*TxRunner)(nil)
	_ sales.TxRunner      = (*TxRunner)(nil)
)

// TxRunner executes callbacks inside a PostgreSQL transaction, handing each
// flow repositories bound to that transaction. Commit on success, rollback
// on any error.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run executes a catalog transaction (item + inventory pair).
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	invRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx), NewInventoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchasing executes a purchasing transaction (orders, receipts and
// inventory increments).
func (r *TxRunner) RunPurchasing(ctx context.Context, fn func(
	poRepo repository.PurchaseOrderRepository,
	grRepo repository.GoodsReceiptRepository,
	invRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPurchaseOrderRepository(tx), NewGoodsReceiptRepository(tx), NewInventoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSales executes a sales transaction (orders, deliveries and inventory
// decrements).
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	soRepo repository.SalesOrderRepository,
	delRepo repository.DeliveryRepository,
	invRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSalesOrderRepository(tx), NewDeliveryRepository(tx), NewInventoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
