package purchasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatsoni/vyapar-api/internal/application/apptest"
	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/application/purchasing"
	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
)

type purchasingFixture struct {
	uc        *purchasing.UseCase
	items     *apptest.ItemRepo
	inv       *apptest.InventoryRepo
	po        *apptest.PurchaseOrderRepo
	receipts  *apptest.GoodsReceiptRepo
	suppliers *apptest.SupplierRepo
}

func newPurchasingFixture() *purchasingFixture {
	f := &purchasingFixture{
		items:     apptest.NewItemRepo(),
		inv:       apptest.NewInventoryRepo(),
		po:        apptest.NewPurchaseOrderRepo(),
		receipts:  apptest.NewGoodsReceiptRepo(),
		suppliers: apptest.NewSupplierRepo(),
	}
	tx := &apptest.TxRunner{Purchases: f.po, Receipts: f.receipts, Inventory: f.inv}
	f.uc = purchasing.NewUseCase(tx, f.po, f.receipts, f.items, f.suppliers)
	return f
}

func (f *purchasingFixture) seedSupplier(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, f.suppliers.Create(&entity.Supplier{ID: id, Name: "Sharma Traders"}))
}

func (f *purchasingFixture) seedItem(t *testing.T, id, name, rate, gstPct string, onHand int64) {
	t.Helper()
	require.NoError(t, f.items.Create(&entity.Item{
		ID:                 id,
		Name:               name,
		PurchaseRate:       decimal.RequireFromString(rate),
		PurchaseGSTPercent: decimal.RequireFromString(gstPct),
	}))
	require.NoError(t, f.inv.Create(&entity.Inventory{
		ItemID:         id,
		QuantityOnHand: onHand,
		LastUpdated:    time.Now(),
	}))
}

func TestCreatePurchaseOrder_SnapshotsRatesAndTotals(t *testing.T) {
	f := newPurchasingFixture()
	f.seedSupplier(t, "sup1")
	f.seedItem(t, "i1", "Copper Wire", "100", "18", 0)
	f.seedItem(t, "i2", "PVC Conduit", "40", "5", 0)

	got, err := f.uc.CreatePurchaseOrder(context.Background(), dto.CreatePORequest{
		SupplierID:       "sup1",
		ExpectedDelivery: "2026-09-15",
		Lines: []dto.OrderLineRequest{
			{ItemID: "i1", Quantity: 10},
			{ItemID: "i2", Quantity: 20},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.POStatusPending, got.Status)
	// 10*100 + 20*40 = 1800; GST 180 + 40 = 220.
	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("1800")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TotalGST.Equal(decimal.RequireFromString("220")), "gst = %s", got.TotalGST)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("2020")), "total = %s", got.TotalAmount)

	require.Len(t, got.Lines, 2)
	assert.True(t, got.Lines[0].Rate.Equal(decimal.RequireFromString("100")), "rate snapshot")

	// Later catalog edit must not touch the persisted snapshot.
	item, _ := f.items.GetByID("i1")
	item.PurchaseRate = decimal.RequireFromString("999")
	require.NoError(t, f.items.Update(item))
	lines, err := f.po.GetLines(got.ID)
	require.NoError(t, err)
	assert.True(t, lines[0].Rate.Equal(decimal.RequireFromString("100")), "snapshot followed the catalog edit")
}

func TestCreatePurchaseOrder_RejectsUnknownSupplierAndDuplicateLines(t *testing.T) {
	f := newPurchasingFixture()
	f.seedSupplier(t, "sup1")
	f.seedItem(t, "i1", "Copper Wire", "100", "18", 0)
	ctx := context.Background()

	_, err := f.uc.CreatePurchaseOrder(ctx, dto.CreatePORequest{
		SupplierID:       "ghost",
		ExpectedDelivery: "2026-09-15",
		Lines:            []dto.OrderLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreatePurchaseOrder(ctx, dto.CreatePORequest{
		SupplierID:       "sup1",
		ExpectedDelivery: "2026-09-15",
		Lines: []dto.OrderLineRequest{
			{ItemID: "i1", Quantity: 1},
			{ItemID: "i1", Quantity: 2},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func (f *purchasingFixture) createOrder(t *testing.T, lines ...dto.OrderLineRequest) string {
	t.Helper()
	got, err := f.uc.CreatePurchaseOrder(context.Background(), dto.CreatePORequest{
		SupplierID:       "sup1",
		ExpectedDelivery: "2026-09-15",
		Lines:            lines,
	})
	require.NoError(t, err)
	return got.ID
}

func TestRecordGoodsReceipt_OnlyAcceptedUnitsReachInventory(t *testing.T) {
	f := newPurchasingFixture()
	f.seedSupplier(t, "sup1")
	f.seedItem(t, "i1", "Copper Wire", "100", "18", 5)
	poID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 10})

	got, err := f.uc.RecordGoodsReceipt(context.Background(), poID, dto.RecordReceiptRequest{
		InvoiceNumber: "ST/2026/0042",
		ReceiptDate:   "2026-09-10",
		Lines: []dto.ReceiptLineRequest{
			{ItemID: "i1", Received: 10, Accepted: 8, Rejected: 2, Notes: "2 damaged in transit"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(13), f.inv.OnHand("i1"), "5 on hand + 8 accepted")
	assert.Equal(t, entity.POStatusCompleted, got.Status, "full received quantity completes the order even with rejections")
	assert.Equal(t, int64(10), got.TotalReceived)
	assert.Equal(t, int64(8), got.TotalAccepted)
	assert.Equal(t, int64(2), got.TotalRejected)
	assert.Positive(t, f.inv.LockCalls, "inventory increment must go through the locked read")
}

func TestRecordGoodsReceipt_PartialThenCompleting(t *testing.T) {
	f := newPurchasingFixture()
	f.seedSupplier(t, "sup1")
	f.seedItem(t, "i1", "Copper Wire", "100", "18", 0)
	f.seedItem(t, "i2", "PVC Conduit", "40", "5", 0)
	poID := f.createOrder(t,
		dto.OrderLineRequest{ItemID: "i1", Quantity: 10},
		dto.OrderLineRequest{ItemID: "i2", Quantity: 4},
	)
	ctx := context.Background()

	first, err := f.uc.RecordGoodsReceipt(ctx, poID, dto.RecordReceiptRequest{
		InvoiceNumber: "ST/2026/0043",
		ReceiptDate:   "2026-09-10",
		Lines:         []dto.ReceiptLineRequest{{ItemID: "i1", Received: 6, Accepted: 6}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusPartiallyReceived, first.Status)

	second, err := f.uc.RecordGoodsReceipt(ctx, poID, dto.RecordReceiptRequest{
		InvoiceNumber: "ST/2026/0051",
		ReceiptDate:   "2026-09-14",
		Lines: []dto.ReceiptLineRequest{
			{ItemID: "i1", Received: 4, Accepted: 4},
			{ItemID: "i2", Received: 4, Accepted: 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusCompleted, second.Status)
	assert.Equal(t, int64(10), f.inv.OnHand("i1"))
	assert.Equal(t, int64(4), f.inv.OnHand("i2"))
}

func TestRecordGoodsReceipt_OverReceiptChecksRemainderNotOrdered(t *testing.T) {
	f := newPurchasingFixture()
	f.seedSupplier(t, "sup1")
	f.seedItem(t, "i1", "Copper Wire", "100", "18", 0)
	poID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 10})
	ctx := context.Background()

	_, err := f.uc.RecordGoodsReceipt(ctx, poID, dto.RecordReceiptRequest{
		InvoiceNumber: "ST/2026/0044",
		ReceiptDate:   "2026-09-10",
		Lines:         []dto.ReceiptLineRequest{{ItemID: "i1", Received: 7, Accepted: 7}},
	})
	require.NoError(t, err)

	// 3 remain: receiving 5 more must fail and report the remainder.
	_, err = f.uc.RecordGoodsReceipt(ctx, poID, dto.RecordReceiptRequest{
		InvoiceNumber: "ST/2026/0045",
		ReceiptDate:   "2026-09-12",
		Lines:         []dto.ReceiptLineRequest{{ItemID: "i1", Received: 5, Accepted: 5}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(5), stockErr.Requested)
	assert.Equal(t, int64(3), stockErr.Available)
	assert.Equal(t, int64(7), f.inv.OnHand("i1"), "failed receipt must not move stock")
}

func TestRecordGoodsReceipt_RejectsInvalidBatches(t *testing.T) {
	f := newPurchasingFixture()
	f.seedSupplier(t, "sup1")
	f.seedItem(t, "i1", "Copper Wire", "100", "18", 0)
	poID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 10})
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.RecordReceiptRequest
	}{
		{"missing invoice number", dto.RecordReceiptRequest{
			ReceiptDate: "2026-09-10",
			Lines:       []dto.ReceiptLineRequest{{ItemID: "i1", Received: 1, Accepted: 1}},
		}},
		{"accepted plus rejected does not equal received", dto.RecordReceiptRequest{
			InvoiceNumber: "ST/1",
			ReceiptDate:   "2026-09-10",
			Lines:         []dto.ReceiptLineRequest{{ItemID: "i1", Received: 5, Accepted: 3, Rejected: 1}},
		}},
		{"item not on order", dto.RecordReceiptRequest{
			InvoiceNumber: "ST/2",
			ReceiptDate:   "2026-09-10",
			Lines:         []dto.ReceiptLineRequest{{ItemID: "ghost", Received: 1, Accepted: 1}},
		}},
		{"duplicate item", dto.RecordReceiptRequest{
			InvoiceNumber: "ST/3",
			ReceiptDate:   "2026-09-10",
			Lines: []dto.ReceiptLineRequest{
				{ItemID: "i1", Received: 1, Accepted: 1},
				{ItemID: "i1", Received: 1, Accepted: 1},
			},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.RecordGoodsReceipt(ctx, poID, tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Equal(t, int64(0), f.inv.OnHand("i1"), "no rejected batch may move stock")
}

func TestRecordGoodsReceipt_BadLaterLineLeavesWholeBatchUnapplied(t *testing.T) {
	f := newPurchasingFixture()
	f.seedSupplier(t, "sup1")
	f.seedItem(t, "i1", "Copper Wire", "100", "18", 0)
	f.seedItem(t, "i2", "PVC Conduit", "40", "5", 0)
	poID := f.createOrder(t,
		dto.OrderLineRequest{ItemID: "i1", Quantity: 10},
		dto.OrderLineRequest{ItemID: "i2", Quantity: 4},
	)

	_, err := f.uc.RecordGoodsReceipt(context.Background(), poID, dto.RecordReceiptRequest{
		InvoiceNumber: "ST/2026/0046",
		ReceiptDate:   "2026-09-10",
		Lines: []dto.ReceiptLineRequest{
			{ItemID: "i1", Received: 5, Accepted: 5},
			{ItemID: "i2", Received: 9, Accepted: 9},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(0), f.inv.OnHand("i1"), "valid first line must not be applied when a later line fails")
	n, _ := f.receipts.CountByPO(poID)
	assert.Zero(t, n)
	po, _ := f.po.GetByID(poID)
	assert.Equal(t, entity.POStatusPending, po.Status)
}

func TestRecordGoodsReceipt_CompletedOrderRefusesFurtherReceipts(t *testing.T) {
	f := newPurchasingFixture()
	f.seedSupplier(t, "sup1")
	f.seedItem(t, "i1", "Copper Wire", "100", "18", 0)
	poID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 3})
	ctx := context.Background()

	_, err := f.uc.RecordGoodsReceipt(ctx, poID, dto.RecordReceiptRequest{
		InvoiceNumber: "ST/2026/0047",
		ReceiptDate:   "2026-09-10",
		Lines:         []dto.ReceiptLineRequest{{ItemID: "i1", Received: 3, Accepted: 3}},
	})
	require.NoError(t, err)

	_, err = f.uc.RecordGoodsReceipt(ctx, poID, dto.RecordReceiptRequest{
		InvoiceNumber: "ST/2026/0048",
		ReceiptDate:   "2026-09-11",
		Lines:         []dto.ReceiptLineRequest{{ItemID: "i1", Received: 1, Accepted: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestDeletePurchaseOrder_GuardedByReceipts(t *testing.T) {
	f := newPurchasingFixture()
	f.seedSupplier(t, "sup1")
	f.seedItem(t, "i1", "Copper Wire", "100", "18", 0)
	ctx := context.Background()

	withReceipt := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 5})
	_, err := f.uc.RecordGoodsReceipt(ctx, withReceipt, dto.RecordReceiptRequest{
		InvoiceNumber: "ST/2026/0049",
		ReceiptDate:   "2026-09-10",
		Lines:         []dto.ReceiptLineRequest{{ItemID: "i1", Received: 2, Accepted: 2}},
	})
	require.NoError(t, err)

	err = f.uc.DeletePurchaseOrder(ctx, withReceipt)
	assert.ErrorIs(t, err, domain.ErrReferenced)

	untouched := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 5})
	require.NoError(t, f.uc.DeletePurchaseOrder(ctx, untouched))
	po, _ := f.po.GetByID(untouched)
	assert.Nil(t, po)
	n, _ := f.po.CountLinesByItem("i1")
	assert.Equal(t, 1, n, "deleting the order removes its lines")
}

func TestDeletePurchaseOrder_NotFound(t *testing.T) {
	f := newPurchasingFixture()
	assert.ErrorIs(t, f.uc.DeletePurchaseOrder(context.Background(), "missing"), domain.ErrNotFound)
}
