package sales

import (
	"context"

	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing repositories
// bound to that transaction. Delivery rows, inventory decrements and the
// derived status update commit or roll back as one unit.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		soRepo repository.SalesOrderRepository,
		delRepo repository.DeliveryRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
