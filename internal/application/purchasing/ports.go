package purchasing

import (
	"context"

	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing repositories
// bound to that transaction. Receipt rows, inventory increments and the
// derived status update commit or roll back as one unit.
type TxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		poRepo repository.PurchaseOrderRepository,
		grRepo repository.GoodsReceiptRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
