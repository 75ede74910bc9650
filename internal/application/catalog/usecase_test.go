package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatsoni/vyapar-api/internal/application/apptest"
	"github.com/rajatsoni/vyapar-api/internal/application/catalog"
	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

type catalogFixture struct {
	uc       *catalog.UseCase
	items    *apptest.ItemRepo
	inv      *apptest.InventoryRepo
	po       *apptest.PurchaseOrderRepo
	so       *apptest.SalesOrderRepo
	receipts *apptest.GoodsReceiptRepo
	reports  *apptest.ReportRepo
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		items:    apptest.NewItemRepo(),
		inv:      apptest.NewInventoryRepo(),
		po:       apptest.NewPurchaseOrderRepo(),
		so:       apptest.NewSalesOrderRepo(),
		receipts: apptest.NewGoodsReceiptRepo(),
		reports:  &apptest.ReportRepo{},
	}
	tx := &apptest.TxRunner{Items: f.items, Inventory: f.inv}
	f.uc = catalog.NewUseCase(tx, f.items, f.inv, f.po, f.so, f.receipts, f.reports)
	return f
}

func TestCreateItem_DerivesPricesAndCreatesInventory(t *testing.T) {
	f := newCatalogFixture()

	got, err := f.uc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name:               "Copper Wire 2.5mm",
		HSNCode:            "85444920",
		PurchaseRate:       decimal.RequireFromString("100"),
		PurchaseGSTPercent: decimal.RequireFromString("18"),
		SellingRate:        decimal.RequireFromString("150"),
		SellingGSTPercent:  decimal.RequireFromString("18"),
		InitialQuantity:    40,
		ReorderLevel:       10,
		Location:           "Rack 3",
	})
	require.NoError(t, err)

	assert.True(t, got.PurchasePrice.Equal(decimal.RequireFromString("118")), "purchase price = %s", got.PurchasePrice)
	assert.True(t, got.SellingPrice.Equal(decimal.RequireFromString("177")), "selling price = %s", got.SellingPrice)
	assert.Equal(t, int64(40), got.QuantityOnHand)

	inv, err := f.inv.Get(got.ID)
	require.NoError(t, err)
	require.NotNil(t, inv, "inventory record must be created with the item")
	assert.Equal(t, int64(40), inv.QuantityOnHand)
	assert.Equal(t, int64(10), inv.ReorderLevel)
}

func TestCreateItem_RejectsBadInput(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateItemRequest
	}{
		{"missing name", dto.CreateItemRequest{}},
		{"negative rate", dto.CreateItemRequest{
			Name:         "x",
			PurchaseRate: decimal.RequireFromString("-1"),
		}},
		{"gst above 100", dto.CreateItemRequest{
			Name:              "x",
			SellingGSTPercent: decimal.RequireFromString("101"),
		}},
		{"negative initial quantity", dto.CreateItemRequest{
			Name:            "x",
			InitialQuantity: -5,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.CreateItem(ctx, tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUpdateItem_RecomputesDerivedPrices(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	created, err := f.uc.CreateItem(ctx, dto.CreateItemRequest{
		Name:              "Switch Plate",
		SellingRate:       decimal.RequireFromString("80"),
		SellingGSTPercent: decimal.RequireFromString("5"),
	})
	require.NoError(t, err)

	rate := decimal.RequireFromString("90")
	pct := decimal.RequireFromString("12")
	got, err := f.uc.UpdateItem(ctx, created.ID, dto.UpdateItemRequest{
		SellingRate:       &rate,
		SellingGSTPercent: &pct,
	})
	require.NoError(t, err)

	assert.True(t, got.SellingPrice.Equal(decimal.RequireFromString("100.80")), "selling price = %s", got.SellingPrice)
}

func TestUpdateItem_NotFound(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.UpdateItem(context.Background(), "missing", dto.UpdateItemRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteItem_RemovesItemAndInventory(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	created, err := f.uc.CreateItem(ctx, dto.CreateItemRequest{Name: "Loose Screws"})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteItem(ctx, created.ID))

	item, _ := f.items.GetByID(created.ID)
	assert.Nil(t, item)
	inv, _ := f.inv.Get(created.ID)
	assert.Nil(t, inv)
}

func TestDeleteItem_BlockedByDependentRecords(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	created, err := f.uc.CreateItem(ctx, dto.CreateItemRequest{Name: "MCB 16A"})
	require.NoError(t, err)

	require.NoError(t, f.po.CreateLine(&entity.PurchaseOrderLine{ID: "l1", POID: "po1", ItemID: created.ID, Quantity: 5}))
	require.NoError(t, f.so.CreateLine(&entity.SalesOrderLine{ID: "l2", SOID: "so1", ItemID: created.ID, Quantity: 2}))

	err = f.uc.DeleteItem(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrReferenced)

	var refErr *domain.ReferentialError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "item", refErr.Entity)
	assert.Len(t, refErr.Dependents, 2, "both dependent kinds must be reported")

	item, _ := f.items.GetByID(created.ID)
	assert.NotNil(t, item, "blocked delete must leave the item in place")
}

func TestListLowStock_SuggestsReplenishmentToTwiceReorderLevel(t *testing.T) {
	f := newCatalogFixture()
	f.reports.LowRows = []repository.LowStockRow{
		{ItemID: "i1", Name: "Fuse 5A", QuantityOnHand: 2, ReorderLevel: 10},
		{ItemID: "i2", Name: "Tape Roll", QuantityOnHand: 7, ReorderLevel: 8},
	}

	alerts, err := f.uc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, int64(18), alerts[0].SuggestedReorder)
	assert.Equal(t, int64(9), alerts[1].SuggestedReorder)
}
