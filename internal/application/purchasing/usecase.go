// Package purchasing drives the purchase-order lifecycle: order creation
// with catalog snapshots, goods receipts feeding inventory, and the derived
// Pending / Partially Received / Completed status.
package purchasing

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

// UseCase owns purchase orders and goods receipts.
type UseCase struct {
	txRunner     TxRunner
	poRepo       repository.PurchaseOrderRepository
	grRepo       repository.GoodsReceiptRepository
	itemRepo     repository.ItemRepository
	supplierRepo repository.SupplierRepository
}

// NewUseCase builds the purchasing use case.
func NewUseCase(
	txRunner TxRunner,
	poRepo repository.PurchaseOrderRepository,
	grRepo repository.GoodsReceiptRepository,
	itemRepo repository.ItemRepository,
	supplierRepo repository.SupplierRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		poRepo:       poRepo,
		grRepo:       grRepo,
		itemRepo:     itemRepo,
		supplierRepo: supplierRepo,
	}
}

// CreatePurchaseOrder validates the supplier and lines, snapshots purchase
// rate and GST from the catalog, and persists header and lines in one
// transaction with status Pending.
func (uc *UseCase) CreatePurchaseOrder(ctx context.Context, in dto.CreatePORequest) (*dto.POResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.Validationf("supplier_id", "supplier %q does not exist", in.SupplierID)
	}
	expected, err := dto.ParseDate("expected_delivery", in.ExpectedDelivery)
	if err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 {
		return nil, domain.Validationf("lines", "at least one line is required")
	}

	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:               uuid.New().String(),
		SupplierID:       in.SupplierID,
		OrderDate:        now,
		ExpectedDelivery: expected,
		Status:           entity.POStatusPending,
		CreatedAt:        now,
	}

	seen := make(map[string]bool, len(in.Lines))
	lines := make([]*entity.PurchaseOrderLine, 0, len(in.Lines))
	names := make(map[string]string, len(in.Lines))
	for _, lr := range in.Lines {
		if lr.Quantity <= 0 {
			return nil, domain.Validationf("quantity", "must be positive")
		}
		if seen[lr.ItemID] {
			return nil, domain.Validationf("lines", "item %q appears more than once", lr.ItemID)
		}
		seen[lr.ItemID] = true

		item, err := uc.itemRepo.GetByID(lr.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.Validationf("item_id", "item %q does not exist", lr.ItemID)
		}
		names[item.ID] = item.Name

		base := item.PurchaseRate.Mul(decimal.NewFromInt(lr.Quantity))
		taxAmount, total := gst.Compute(base, item.PurchaseGSTPercent)
		line := &entity.PurchaseOrderLine{
			ID:         uuid.New().String(),
			POID:       po.ID,
			ItemID:     item.ID,
			Quantity:   lr.Quantity,
			Rate:       item.PurchaseRate,
			GSTPercent: item.PurchaseGSTPercent,
			GSTAmount:  gst.Round2(taxAmount),
			LineTotal:  gst.Round2(total),
		}
		lines = append(lines, line)

		po.Subtotal = po.Subtotal.Add(gst.Round2(base))
		po.TotalGST = po.TotalGST.Add(line.GSTAmount)
		po.TotalAmount = po.TotalAmount.Add(line.LineTotal)
	}

	err = uc.txRunner.RunPurchasing(ctx, func(
		poRepo repository.PurchaseOrderRepository,
		_ repository.GoodsReceiptRepository,
		_ repository.InventoryRepository,
	) error {
		if err := poRepo.Create(po); err != nil {
			return err
		}
		for _, line := range lines {
			if err := poRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPOResponse(po, lines, names), nil
}

// RecordGoodsReceipt persists a receipt batch against a purchase order. Every
// line is validated before any mutation; then, in one transaction, receipt
// rows are inserted, inventory is incremented by the accepted quantity only,
// and the order status is re-derived from the full receipt history.
func (uc *UseCase) RecordGoodsReceipt(ctx context.Context, poID string, in dto.RecordReceiptRequest) (*dto.RecordReceiptResponse, error) {
	po, err := uc.poRepo.GetByID(poID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	if po.Status == entity.POStatusCompleted {
		return nil, &domain.StateError{
			Entity: "purchase order", ID: po.ID,
			Status: po.Status, Operation: "record a receipt against",
		}
	}
	if in.InvoiceNumber == "" {
		return nil, domain.Validationf("invoice_number", "is required")
	}
	receiptDate, err := dto.ParseDate("receipt_date", in.ReceiptDate)
	if err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 {
		return nil, domain.Validationf("lines", "at least one line is required")
	}

	poLines, err := uc.poRepo.GetLines(poID)
	if err != nil {
		return nil, err
	}
	ordered := make(map[string]int64, len(poLines))
	for _, l := range poLines {
		ordered[l.ItemID] = l.Quantity
	}
	received, err := uc.grRepo.SumReceivedByPO(poID)
	if err != nil {
		return nil, err
	}

	// Validate the whole batch before touching anything: a bad later line
	// must not leave earlier lines applied.
	seen := make(map[string]bool, len(in.Lines))
	for _, lr := range in.Lines {
		if lr.Received <= 0 {
			return nil, domain.Validationf("received", "must be positive")
		}
		if lr.Accepted < 0 || lr.Rejected < 0 {
			return nil, domain.Validationf("accepted", "accepted and rejected must not be negative")
		}
		if lr.Accepted+lr.Rejected != lr.Received {
			return nil, domain.Validationf("received",
				"accepted (%d) + rejected (%d) must equal received (%d)",
				lr.Accepted, lr.Rejected, lr.Received)
		}
		if seen[lr.ItemID] {
			return nil, domain.Validationf("lines", "item %q appears more than once", lr.ItemID)
		}
		seen[lr.ItemID] = true

		orderedQty, ok := ordered[lr.ItemID]
		if !ok {
			return nil, domain.Validationf("item_id", "item %q is not on this order", lr.ItemID)
		}
		remaining := orderedQty - received[lr.ItemID]
		if lr.Received > remaining {
			item, err := uc.itemRepo.GetByID(lr.ItemID)
			if err != nil {
				return nil, err
			}
			name := lr.ItemID
			if item != nil {
				name = item.Name
			}
			return nil, &domain.StockError{
				ItemID: lr.ItemID, ItemName: name,
				Requested: lr.Received, Available: remaining,
			}
		}
	}

	now := time.Now()
	receipts := make([]*entity.GoodsReceipt, 0, len(in.Lines))
	for _, lr := range in.Lines {
		receipts = append(receipts, &entity.GoodsReceipt{
			ID:            uuid.New().String(),
			POID:          po.ID,
			ItemID:        lr.ItemID,
			SupplierID:    po.SupplierID,
			InvoiceNumber: in.InvoiceNumber,
			Received:      lr.Received,
			Accepted:      lr.Accepted,
			Rejected:      lr.Rejected,
			ReceiptDate:   receiptDate,
			Notes:         lr.Notes,
			CreatedAt:     now,
		})
	}

	var newStatus string
	err = uc.txRunner.RunPurchasing(ctx, func(
		poRepo repository.PurchaseOrderRepository,
		grRepo repository.GoodsReceiptRepository,
		invRepo repository.InventoryRepository,
	) error {
		for _, gr := range receipts {
			if err := grRepo.Create(gr); err != nil {
				return err
			}
			if gr.Accepted == 0 {
				continue
			}
			inv, err := invRepo.GetForUpdate(gr.ItemID)
			if err != nil {
				return err
			}
			if inv == nil {
				return domain.Validationf("item_id", "item %q has no inventory record", gr.ItemID)
			}
			inv.QuantityOnHand += gr.Accepted
			inv.LastUpdated = now
			if err := invRepo.Update(inv); err != nil {
				return err
			}
		}

		cumulative, err := grRepo.SumReceivedByPO(po.ID)
		if err != nil {
			return err
		}
		newStatus = derivePOStatus(poLines, cumulative)
		return poRepo.UpdateStatus(po.ID, newStatus)
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.RecordReceiptResponse{POID: po.ID, Status: newStatus}
	for _, gr := range receipts {
		resp.TotalReceived += gr.Received
		resp.TotalAccepted += gr.Accepted
		resp.TotalRejected += gr.Rejected
		resp.Receipts = append(resp.Receipts, toReceiptResponse(gr))
	}
	return resp, nil
}

// derivePOStatus recomputes the order status from the cumulative received
// quantities across every historical receipt. Derived, never incremented.
func derivePOStatus(lines []*entity.PurchaseOrderLine, received map[string]int64) string {
	if len(received) == 0 {
		return entity.POStatusPending
	}
	for _, l := range lines {
		if received[l.ItemID] < l.Quantity {
			return entity.POStatusPartiallyReceived
		}
	}
	return entity.POStatusCompleted
}

// DeletePurchaseOrder removes an order and its lines, refusing while any
// goods receipt references it.
func (uc *UseCase) DeletePurchaseOrder(ctx context.Context, id string) error {
	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return err
	}
	if po == nil {
		return domain.ErrNotFound
	}
	count, err := uc.grRepo.CountByPO(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ReferentialError{
			Entity: "purchase order",
			Name:   po.ID,
			Dependents: []domain.Dependency{
				{Entity: "goods receipt", Count: count},
			},
		}
	}
	return uc.txRunner.RunPurchasing(ctx, func(
		poRepo repository.PurchaseOrderRepository,
		_ repository.GoodsReceiptRepository,
		_ repository.InventoryRepository,
	) error {
		if err := poRepo.DeleteLines(id); err != nil {
			return err
		}
		return poRepo.Delete(id)
	})
}

// GetPurchaseOrder returns a header with its lines.
func (uc *UseCase) GetPurchaseOrder(ctx context.Context, id string) (*dto.POResponse, error) {
	po, err := uc.poRepo.GetByID(id)
	if err != nil || po == nil {
		return nil, err
	}
	lines, err := uc.poRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	names, err := uc.itemNames(lines)
	if err != nil {
		return nil, err
	}
	return toPOResponse(po, lines, names), nil
}

// ListPurchaseOrders pages through purchase-order headers.
func (uc *UseCase) ListPurchaseOrders(ctx context.Context, limit, offset int) (*dto.POListResponse, error) {
	list, err := uc.poRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.POResponse, 0, len(list))
	for _, po := range list {
		items = append(items, *toPOResponse(po, nil, nil))
	}
	return &dto.POListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListReceipts returns every receipt row recorded against an order, oldest
// first. Rows sharing an invoice number belong to one physical delivery.
func (uc *UseCase) ListReceipts(ctx context.Context, poID string) ([]dto.ReceiptResponse, error) {
	po, err := uc.poRepo.GetByID(poID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.grRepo.ListByPO(poID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceiptResponse, 0, len(rows))
	for _, gr := range rows {
		out = append(out, toReceiptResponse(gr))
	}
	return out, nil
}

func (uc *UseCase) itemNames(lines []*entity.PurchaseOrderLine) (map[string]string, error) {
	names := make(map[string]string, len(lines))
	for _, l := range lines {
		item, err := uc.itemRepo.GetByID(l.ItemID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			names[l.ItemID] = item.Name
		}
	}
	return names, nil
}

func toPOResponse(po *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine, names map[string]string) *dto.POResponse {
	resp := &dto.POResponse{
		ID:               po.ID,
		SupplierID:       po.SupplierID,
		OrderDate:        po.OrderDate,
		ExpectedDelivery: po.ExpectedDelivery,
		Status:           po.Status,
		Subtotal:         po.Subtotal,
		TotalGST:         po.TotalGST,
		TotalAmount:      po.TotalAmount,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ItemID:     l.ItemID,
			ItemName:   names[l.ItemID],
			Quantity:   l.Quantity,
			Rate:       l.Rate,
			GSTPercent: l.GSTPercent,
			GSTAmount:  l.GSTAmount,
			LineTotal:  l.LineTotal,
		})
	}
	return resp
}

func toReceiptResponse(gr *entity.GoodsReceipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:            gr.ID,
		POID:          gr.POID,
		ItemID:        gr.ItemID,
		InvoiceNumber: gr.InvoiceNumber,
		Received:      gr.Received,
		Accepted:      gr.Accepted,
		Rejected:      gr.Rejected,
		ReceiptDate:   gr.ReceiptDate,
		Notes:         gr.Notes,
	}
}
