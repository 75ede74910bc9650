// Package sales drives the sales-order lifecycle: order creation with a
// stock check, wholesale edits while Pending, deliveries that decrement
// inventory, and the derived Pending / Partially Delivered / Delivered
// status.
//
// Stock is reserved nowhere: an order checks availability when created, but
// units leave inventory only when a delivery is recorded. Two orders may
// therefore both pass the creation check against the same units; the
// delivery-time check under a row lock is the one that holds.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
	"github.com/rajatsoni/vyapar-api/pkg/gst"
)

// UseCase owns sales orders and deliveries.
type UseCase struct {
	txRunner     TxRunner
	soRepo       repository.SalesOrderRepository
	delRepo      repository.DeliveryRepository
	itemRepo     repository.ItemRepository
	invRepo      repository.InventoryRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewUseCase builds the sales use case.
func NewUseCase(
	txRunner TxRunner,
	soRepo repository.SalesOrderRepository,
	delRepo repository.DeliveryRepository,
	itemRepo repository.ItemRepository,
	invRepo repository.InventoryRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		soRepo:       soRepo,
		delRepo:      delRepo,
		itemRepo:     itemRepo,
		invRepo:      invRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// buildLines validates order lines against the catalog and current stock and
// returns snapshot rows plus the summed totals. Shared by create and edit.
func (uc *UseCase) buildLines(soID string, reqs []dto.OrderLineRequest) ([]*entity.SalesOrderLine, map[string]string, decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	var subtotal, totalGST, totalAmount decimal.Decimal
	seen := make(map[string]bool, len(reqs))
	names := make(map[string]string, len(reqs))
	lines := make([]*entity.SalesOrderLine, 0, len(reqs))
	for _, lr := range reqs {
		if lr.Quantity <= 0 {
			return nil, nil, subtotal, totalGST, totalAmount, domain.Validationf("quantity", "must be positive")
		}
		if seen[lr.ItemID] {
			return nil, nil, subtotal, totalGST, totalAmount, domain.Validationf("lines", "item %q appears more than once", lr.ItemID)
		}
		seen[lr.ItemID] = true

		item, err := uc.itemRepo.GetByID(lr.ItemID)
		if err != nil {
			return nil, nil, subtotal, totalGST, totalAmount, err
		}
		if item == nil {
			return nil, nil, subtotal, totalGST, totalAmount, domain.Validationf("item_id", "item %q does not exist", lr.ItemID)
		}
		names[item.ID] = item.Name

		inv, err := uc.invRepo.Get(lr.ItemID)
		if err != nil {
			return nil, nil, subtotal, totalGST, totalAmount, err
		}
		var onHand int64
		if inv != nil {
			onHand = inv.QuantityOnHand
		}
		if lr.Quantity > onHand {
			return nil, nil, subtotal, totalGST, totalAmount, &domain.StockError{
				ItemID: item.ID, ItemName: item.Name,
				Requested: lr.Quantity, Available: onHand,
			}
		}

		base := item.SellingRate.Mul(decimal.NewFromInt(lr.Quantity))
		taxAmount, total := gst.Compute(base, item.SellingGSTPercent)
		line := &entity.SalesOrderLine{
			ID:         uuid.New().String(),
			SOID:       soID,
			ItemID:     item.ID,
			Quantity:   lr.Quantity,
			Rate:       item.SellingRate,
			GSTPercent: item.SellingGSTPercent,
			GSTAmount:  gst.Round2(taxAmount),
			LineTotal:  gst.Round2(total),
		}
		lines = append(lines, line)
		subtotal = subtotal.Add(gst.Round2(base))
		totalGST = totalGST.Add(line.GSTAmount)
		totalAmount = totalAmount.Add(line.LineTotal)
	}
	return lines, names, subtotal, totalGST, totalAmount, nil
}

// CreateSalesOrder validates the customer, lines and stock availability,
// snapshots selling rate and GST from the catalog, and persists header and
// lines in one transaction with status Pending. Inventory is untouched.
func (uc *UseCase) CreateSalesOrder(ctx context.Context, in dto.CreateSORequest) (*dto.SOResponse, error) {
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.Validationf("customer_id", "customer %q does not exist", in.CustomerID)
	}
	deliveryDate, err := dto.ParseDate("delivery_date", in.DeliveryDate)
	if err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 {
		return nil, domain.Validationf("lines", "at least one line is required")
	}

	now := time.Now()
	so := &entity.SalesOrder{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		OrderDate:    now,
		DeliveryDate: deliveryDate,
		Status:       entity.SOStatusPending,
		CreatedAt:    now,
	}
	lines, names, subtotal, totalGST, totalAmount, err := uc.buildLines(so.ID, in.Lines)
	if err != nil {
		return nil, err
	}
	so.Subtotal, so.TotalGST, so.TotalAmount = subtotal, totalGST, totalAmount

	err = uc.txRunner.RunSales(ctx, func(
		soRepo repository.SalesOrderRepository,
		_ repository.DeliveryRepository,
		_ repository.InventoryRepository,
	) error {
		if err := soRepo.Create(so); err != nil {
			return err
		}
		for _, line := range lines {
			if err := soRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSOResponse(so, lines, names, nil), nil
}

// EditSalesOrder replaces a pending order's lines wholesale and its delivery
// date, re-snapshotting rates from the current catalog. Forbidden once any
// delivery has been recorded.
func (uc *UseCase) EditSalesOrder(ctx context.Context, id string, in dto.EditSORequest) (*dto.SOResponse, error) {
	so, err := uc.soRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if so == nil {
		return nil, domain.ErrNotFound
	}
	if so.Status != entity.SOStatusPending {
		return nil, &domain.StateError{
			Entity: "sales order", ID: so.ID,
			Status: so.Status, Operation: "edit",
		}
	}
	deliveryDate, err := dto.ParseDate("delivery_date", in.DeliveryDate)
	if err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 {
		return nil, domain.Validationf("lines", "at least one line is required")
	}

	lines, names, subtotal, totalGST, totalAmount, err := uc.buildLines(so.ID, in.Lines)
	if err != nil {
		return nil, err
	}
	so.DeliveryDate = deliveryDate
	so.Subtotal, so.TotalGST, so.TotalAmount = subtotal, totalGST, totalAmount

	err = uc.txRunner.RunSales(ctx, func(
		soRepo repository.SalesOrderRepository,
		_ repository.DeliveryRepository,
		_ repository.InventoryRepository,
	) error {
		if err := soRepo.DeleteLines(so.ID); err != nil {
			return err
		}
		for _, line := range lines {
			if err := soRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return soRepo.Update(so)
	})
	if err != nil {
		return nil, err
	}
	return toSOResponse(so, lines, names, nil), nil
}

// RecordDelivery persists a (possibly partial) delivery against a sales
// order. Every line is validated against the undelivered remainder first;
// then, in one transaction, inventory rows are locked and decremented, the
// delivery facts are inserted, and the order status is re-derived from the
// full delivery history.
func (uc *UseCase) RecordDelivery(ctx context.Context, soID string, in dto.RecordDeliveryRequest) (*dto.RecordDeliveryResponse, error) {
	so, err := uc.soRepo.GetByID(soID)
	if err != nil {
		return nil, err
	}
	if so == nil {
		return nil, domain.ErrNotFound
	}
	if so.Status == entity.SOStatusDelivered {
		return nil, &domain.StateError{
			Entity: "sales order", ID: so.ID,
			Status: so.Status, Operation: "record a delivery against",
		}
	}
	if len(in.Lines) == 0 {
		return nil, domain.Validationf("lines", "at least one line is required")
	}

	soLines, err := uc.soRepo.GetLines(soID)
	if err != nil {
		return nil, err
	}
	ordered := make(map[string]int64, len(soLines))
	for _, l := range soLines {
		ordered[l.ItemID] = l.Quantity
	}
	delivered, err := uc.delRepo.SumDeliveredBySO(soID)
	if err != nil {
		return nil, err
	}

	// Validate the whole batch against the undelivered remainder before any
	// stock mutation. The remainder, not the original ordered quantity, is
	// what a follow-up delivery may draw on.
	seen := make(map[string]bool, len(in.Lines))
	var toDeliver []dto.DeliveryLineRequest
	for _, lr := range in.Lines {
		if lr.Quantity < 0 {
			return nil, domain.Validationf("quantity", "must not be negative")
		}
		if seen[lr.ItemID] {
			return nil, domain.Validationf("lines", "item %q appears more than once", lr.ItemID)
		}
		seen[lr.ItemID] = true
		orderedQty, ok := ordered[lr.ItemID]
		if !ok {
			return nil, domain.Validationf("item_id", "item %q is not on this order", lr.ItemID)
		}
		if lr.Quantity == 0 {
			continue
		}
		remaining := orderedQty - delivered[lr.ItemID]
		if lr.Quantity > remaining {
			name := uc.itemName(lr.ItemID)
			return nil, &domain.StockError{
				ItemID: lr.ItemID, ItemName: name,
				Requested: lr.Quantity, Available: remaining,
			}
		}
		toDeliver = append(toDeliver, lr)
	}
	if len(toDeliver) == 0 {
		return nil, domain.Validationf("lines", "at least one line must have a positive quantity")
	}

	now := time.Now()
	var newStatus string
	var totalDelivered int64
	err = uc.txRunner.RunSales(ctx, func(
		soRepo repository.SalesOrderRepository,
		delRepo repository.DeliveryRepository,
		invRepo repository.InventoryRepository,
	) error {
		for _, lr := range toDeliver {
			inv, err := invRepo.GetForUpdate(lr.ItemID)
			if err != nil {
				return err
			}
			if inv == nil || inv.QuantityOnHand < lr.Quantity {
				var onHand int64
				if inv != nil {
					onHand = inv.QuantityOnHand
				}
				return &domain.StockError{
					ItemID: lr.ItemID, ItemName: uc.itemName(lr.ItemID),
					Requested: lr.Quantity, Available: onHand,
				}
			}
			inv.QuantityOnHand -= lr.Quantity
			inv.LastUpdated = now
			if err := invRepo.Update(inv); err != nil {
				return err
			}
			if err := delRepo.Create(&entity.Delivery{
				ID:           uuid.New().String(),
				SOID:         so.ID,
				ItemID:       lr.ItemID,
				Quantity:     lr.Quantity,
				DeliveryDate: now,
				CreatedAt:    now,
			}); err != nil {
				return err
			}
			totalDelivered += lr.Quantity
		}

		cumulative, err := delRepo.SumDeliveredBySO(so.ID)
		if err != nil {
			return err
		}
		newStatus = deriveSOStatus(soLines, cumulative)
		return soRepo.UpdateStatus(so.ID, newStatus)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordDeliveryResponse{
		SOID:           so.ID,
		Status:         newStatus,
		TotalDelivered: totalDelivered,
	}, nil
}

// deriveSOStatus recomputes the order status from cumulative delivered
// quantities across every historical delivery. Derived, never incremented.
func deriveSOStatus(lines []*entity.SalesOrderLine, delivered map[string]int64) string {
	if len(delivered) == 0 {
		return entity.SOStatusPending
	}
	for _, l := range lines {
		if delivered[l.ItemID] < l.Quantity {
			return entity.SOStatusPartiallyDelivered
		}
	}
	return entity.SOStatusDelivered
}

// DeleteSalesOrder removes an order and its lines, refusing while any
// delivery or invoice references it.
func (uc *UseCase) DeleteSalesOrder(ctx context.Context, id string) error {
	so, err := uc.soRepo.GetByID(id)
	if err != nil {
		return err
	}
	if so == nil {
		return domain.ErrNotFound
	}
	if so.Status != entity.SOStatusPending {
		return &domain.StateError{
			Entity: "sales order", ID: so.ID,
			Status: so.Status, Operation: "delete",
		}
	}
	inv, err := uc.invoiceRepo.GetBySOID(id)
	if err != nil {
		return err
	}
	if inv != nil {
		return &domain.ReferentialError{
			Entity: "sales order",
			Name:   so.ID,
			Dependents: []domain.Dependency{
				{Entity: "invoice", Count: 1},
			},
		}
	}
	return uc.txRunner.RunSales(ctx, func(
		soRepo repository.SalesOrderRepository,
		_ repository.DeliveryRepository,
		_ repository.InventoryRepository,
	) error {
		if err := soRepo.DeleteLines(id); err != nil {
			return err
		}
		return soRepo.Delete(id)
	})
}

// GetSalesOrder returns a header with its lines and per-line delivery
// progress.
func (uc *UseCase) GetSalesOrder(ctx context.Context, id string) (*dto.SOResponse, error) {
	so, err := uc.soRepo.GetByID(id)
	if err != nil || so == nil {
		return nil, err
	}
	lines, err := uc.soRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	delivered, err := uc.delRepo.SumDeliveredBySO(id)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(lines))
	for _, l := range lines {
		names[l.ItemID] = uc.itemName(l.ItemID)
	}
	return toSOResponse(so, lines, names, delivered), nil
}

// ListSalesOrders pages through sales-order headers.
func (uc *UseCase) ListSalesOrders(ctx context.Context, limit, offset int) (*dto.SOListResponse, error) {
	list, err := uc.soRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SOResponse, 0, len(list))
	for _, so := range list {
		items = append(items, *toSOResponse(so, nil, nil, nil))
	}
	return &dto.SOListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListDeliveries returns every delivery row recorded against an order,
// oldest first.
func (uc *UseCase) ListDeliveries(ctx context.Context, soID string) ([]dto.DeliveryResponse, error) {
	so, err := uc.soRepo.GetByID(soID)
	if err != nil {
		return nil, err
	}
	if so == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.delRepo.ListBySO(soID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeliveryResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.DeliveryResponse{
			ID:           d.ID,
			SOID:         d.SOID,
			ItemID:       d.ItemID,
			Quantity:     d.Quantity,
			DeliveryDate: d.DeliveryDate,
		})
	}
	return out, nil
}

// itemName is best-effort for error messages and line display; a lookup
// failure falls back to the id.
func (uc *UseCase) itemName(itemID string) string {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil || item == nil {
		return itemID
	}
	return item.Name
}

func toSOResponse(so *entity.SalesOrder, lines []*entity.SalesOrderLine, names map[string]string, delivered map[string]int64) *dto.SOResponse {
	resp := &dto.SOResponse{
		ID:           so.ID,
		CustomerID:   so.CustomerID,
		OrderDate:    so.OrderDate,
		DeliveryDate: so.DeliveryDate,
		Status:       so.Status,
		Subtotal:     so.Subtotal,
		TotalGST:     so.TotalGST,
		TotalAmount:  so.TotalAmount,
	}
	for _, l := range lines {
		d := delivered[l.ItemID]
		resp.Lines = append(resp.Lines, dto.SOLineResponse{
			ItemID:     l.ItemID,
			ItemName:   names[l.ItemID],
			Quantity:   l.Quantity,
			Rate:       l.Rate,
			GSTPercent: l.GSTPercent,
			GSTAmount:  l.GSTAmount,
			LineTotal:  l.LineTotal,
			Delivered:  d,
			Remaining:  l.Quantity - d,
		})
	}
	return resp
}
