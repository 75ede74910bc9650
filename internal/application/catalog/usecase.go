package catalog

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

// UseCase owns the item catalog and its paired inventory records. Derived
// prices are computed here once; historical order-line snapshots are never
// rewritten by later edits.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	invRepo  repository.InventoryRepository
	poRepo   repository.PurchaseOrderRepository
	soRepo   repository.SalesOrderRepository
	grRepo   repository.GoodsReceiptRepository
	reports  repository.ReportRepository
}

// NewUseCase builds the catalog use case.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	invRepo repository.InventoryRepository,
	poRepo repository.PurchaseOrderRepository,
	soRepo repository.SalesOrderRepository,
	grRepo repository.GoodsReceiptRepository,
	reports repository.ReportRepository,
) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		itemRepo: itemRepo,
		invRepo:  invRepo,
		poRepo:   poRepo,
		soRepo:   soRepo,
		grRepo:   grRepo,
		reports:  reports,
	}
}

func validateRates(rate, percent decimal.Decimal, rateField, percentField string) error {
	if rate.IsNegative() {
		return domain.Validationf(rateField, "must not be negative")
	}
	if !gst.ValidPercent(percent) {
		return domain.Validationf(percentField, "must be between 0 and 100")
	}
	return nil
}

// CreateItem validates the fields, derives both GST-inclusive prices and
// creates the item together with its inventory record in one transaction.
func (uc *UseCase) CreateItem(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("name", "is required")
	}
	if err := validateRates(in.PurchaseRate, in.PurchaseGSTPercent, "purchase_rate", "purchase_gst_percent"); err != nil {
		return nil, err
	}
	if err := validateRates(in.SellingRate, in.SellingGSTPercent, "selling_rate", "selling_gst_percent"); err != nil {
		return nil, err
	}
	if in.InitialQuantity < 0 {
		return nil, domain.Validationf("initial_quantity", "must not be negative")
	}
	if in.ReorderLevel < 0 {
		return nil, domain.Validationf("reorder_level", "must not be negative")
	}

	now := time.Now()
	item := &entity.Item{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Description:        in.Description,
		Category:           in.Category,
		UnitOfMeasure:      in.UnitOfMeasure,
		HSNCode:            in.HSNCode,
		PurchaseRate:       in.PurchaseRate,
		PurchaseGSTPercent: in.PurchaseGSTPercent,
		PurchasePrice:      gst.InclusivePrice(in.PurchaseRate, in.PurchaseGSTPercent),
		SellingRate:        in.SellingRate,
		SellingGSTPercent:  in.SellingGSTPercent,
		SellingPrice:       gst.InclusivePrice(in.SellingRate, in.SellingGSTPercent),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	inv := &entity.Inventory{
		ItemID:         item.ID,
		QuantityOnHand: in.InitialQuantity,
		ReorderLevel:   in.ReorderLevel,
		Location:       in.Location,
		LastUpdated:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		return invRepo.Create(inv)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, inv), nil
}

// UpdateItem applies the provided fields, recomputes derived prices and
// updates the inventory settings. Order lines created earlier keep their
// snapshots.
func (uc *UseCase) UpdateItem(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	inv, err := uc.invRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validationf("name", "is required")
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.UnitOfMeasure != nil {
		item.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.HSNCode != nil {
		item.HSNCode = *in.HSNCode
	}
	if in.PurchaseRate != nil {
		item.PurchaseRate = *in.PurchaseRate
	}
	if in.PurchaseGSTPercent != nil {
		item.PurchaseGSTPercent = *in.PurchaseGSTPercent
	}
	if in.SellingRate != nil {
		item.SellingRate = *in.SellingRate
	}
	if in.SellingGSTPercent != nil {
		item.SellingGSTPercent = *in.SellingGSTPercent
	}
	if err := validateRates(item.PurchaseRate, item.PurchaseGSTPercent, "purchase_rate", "purchase_gst_percent"); err != nil {
		return nil, err
	}
	if err := validateRates(item.SellingRate, item.SellingGSTPercent, "selling_rate", "selling_gst_percent"); err != nil {
		return nil, err
	}
	item.PurchasePrice = gst.InclusivePrice(item.PurchaseRate, item.PurchaseGSTPercent)
	item.SellingPrice = gst.InclusivePrice(item.SellingRate, item.SellingGSTPercent)
	item.UpdatedAt = time.Now()

	if in.QuantityOnHand != nil {
		if *in.QuantityOnHand < 0 {
			return nil, domain.Validationf("quantity_on_hand", "must not be negative")
		}
		inv.QuantityOnHand = *in.QuantityOnHand
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.Validationf("reorder_level", "must not be negative")
		}
		inv.ReorderLevel = *in.ReorderLevel
	}
	if in.Location != nil {
		inv.Location = *in.Location
	}
	inv.LastUpdated = item.UpdatedAt

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		return invRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, inv), nil
}

// DeleteItem removes an item and its inventory record, refusing while any
// order line or receipt still references the item.
func (uc *UseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	poCount, err := uc.poRepo.CountLinesByItem(id)
	if err != nil {
		return err
	}
	soCount, err := uc.soRepo.CountLinesByItem(id)
	if err != nil {
		return err
	}
	grCount, err := uc.grRepo.CountByItem(id)
	if err != nil {
		return err
	}
	var deps []domain.Dependency
	if poCount > 0 {
		deps = append(deps, domain.Dependency{Entity: "purchase order", Count: poCount})
	}
	if soCount > 0 {
		deps = append(deps, domain.Dependency{Entity: "sales order", Count: soCount})
	}
	if grCount > 0 {
		deps = append(deps, domain.Dependency{Entity: "goods receipt", Count: grCount})
	}
	if len(deps) > 0 {
		return &domain.ReferentialError{Entity: "item", Name: item.Name, Dependents: deps}
	}

	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := invRepo.Delete(id); err != nil {
			return err
		}
		return itemRepo.Delete(id)
	})
}

// GetItem returns an item with its current stock position.
func (uc *UseCase) GetItem(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	inv, err := uc.invRepo.Get(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, inv), nil
}

// ListItems lists catalog items with their stock positions.
func (uc *UseCase) ListItems(ctx context.Context, limit, offset int) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		inv, err := uc.invRepo.Get(item.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toItemResponse(item, inv))
	}
	return &dto.ItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock returns items at or below their reorder level, most deficient
// first, each with a suggested reorder quantity.
func (uc *UseCase) ListLowStock(ctx context.Context) ([]dto.LowStockAlert, error) {
	rows, err := uc.reports.LowStock()
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.LowStockAlert, 0, len(rows))
	for _, r := range rows {
		alerts = append(alerts, dto.LowStockAlert{
			ItemID:           r.ItemID,
			Name:             r.Name,
			QuantityOnHand:   r.QuantityOnHand,
			ReorderLevel:     r.ReorderLevel,
			SuggestedReorder: 2*r.ReorderLevel - r.QuantityOnHand,
		})
	}
	return alerts, nil
}

func toItemResponse(item *entity.Item, inv *entity.Inventory) *dto.ItemResponse {
	resp := &dto.ItemResponse{
		ID:                 item.ID,
		Name:               item.Name,
		Description:        item.Description,
		Category:           item.Category,
		UnitOfMeasure:      item.UnitOfMeasure,
		HSNCode:            item.HSNCode,
		PurchaseRate:       item.PurchaseRate,
		PurchaseGSTPercent: item.PurchaseGSTPercent,
		PurchasePrice:      item.PurchasePrice,
		SellingRate:        item.SellingRate,
		SellingGSTPercent:  item.SellingGSTPercent,
		SellingPrice:       item.SellingPrice,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
	if inv != nil {
		resp.QuantityOnHand = inv.QuantityOnHand
		resp.ReorderLevel = inv.ReorderLevel
		resp.Location = inv.Location
	}
	return resp
}
