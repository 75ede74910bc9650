package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatsoni/vyapar-api/internal/application/apptest"
	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/application/sales"
	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
)

type salesFixture struct {
	uc         *sales.UseCase
	items      *apptest.ItemRepo
	inv        *apptest.InventoryRepo
	so         *apptest.SalesOrderRepo
	deliveries *apptest.DeliveryRepo
	customers  *apptest.CustomerRepo
	invoices   *apptest.InvoiceRepo
}

func newSalesFixture() *salesFixture {
	f := &salesFixture{
		items:      apptest.NewItemRepo(),
		inv:        apptest.NewInventoryRepo(),
		so:         apptest.NewSalesOrderRepo(),
		deliveries: apptest.NewDeliveryRepo(),
		customers:  apptest.NewCustomerRepo(),
		invoices:   apptest.NewInvoiceRepo(),
	}
	tx := &apptest.TxRunner{Sales: f.so, Deliveries: f.deliveries, Inventory: f.inv}
	f.uc = sales.NewUseCase(tx, f.so, f.deliveries, f.items, f.inv, f.customers, f.invoices)
	return f
}

func (f *salesFixture) seedCustomer(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, f.customers.Create(&entity.Customer{ID: id, Name: "Gupta Electricals"}))
}

func (f *salesFixture) seedItem(t *testing.T, id, name, rate, gstPct string, onHand int64) {
	t.Helper()
	require.NoError(t, f.items.Create(&entity.Item{
		ID:                id,
		Name:              name,
		SellingRate:       decimal.RequireFromString(rate),
		SellingGSTPercent: decimal.RequireFromString(gstPct),
	}))
	require.NoError(t, f.inv.Create(&entity.Inventory{
		ItemID:         id,
		QuantityOnHand: onHand,
		LastUpdated:    time.Now(),
	}))
}

func (f *salesFixture) createOrder(t *testing.T, lines ...dto.OrderLineRequest) string {
	t.Helper()
	got, err := f.uc.CreateSalesOrder(context.Background(), dto.CreateSORequest{
		CustomerID:   "cust1",
		DeliveryDate: "2026-09-20",
		Lines:        lines,
	})
	require.NoError(t, err)
	return got.ID
}

func TestCreateSalesOrder_ChecksStockButDoesNotDecrement(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 10)

	got, err := f.uc.CreateSalesOrder(context.Background(), dto.CreateSORequest{
		CustomerID:   "cust1",
		DeliveryDate: "2026-09-20",
		Lines:        []dto.OrderLineRequest{{ItemID: "i1", Quantity: 6}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SOStatusPending, got.Status)
	// 6*1500 = 9000, GST 1620.
	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("9000")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TotalGST.Equal(decimal.RequireFromString("1620")), "gst = %s", got.TotalGST)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("10620")), "total = %s", got.TotalAmount)
	assert.Equal(t, int64(10), f.inv.OnHand("i1"), "stock leaves only at delivery")
}

func TestCreateSalesOrder_InsufficientStock(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 3)

	_, err := f.uc.CreateSalesOrder(context.Background(), dto.CreateSORequest{
		CustomerID:   "cust1",
		DeliveryDate: "2026-09-20",
		Lines:        []dto.OrderLineRequest{{ItemID: "i1", Quantity: 5}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(5), stockErr.Requested)
	assert.Equal(t, int64(3), stockErr.Available)
}

func TestCreateSalesOrder_RejectsUnknownCustomer(t *testing.T) {
	f := newSalesFixture()
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 10)

	_, err := f.uc.CreateSalesOrder(context.Background(), dto.CreateSORequest{
		CustomerID:   "ghost",
		DeliveryDate: "2026-09-20",
		Lines:        []dto.OrderLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEditSalesOrder_ReplacesLinesWhilePending(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 10)
	f.seedItem(t, "i2", "Table Fan", "900", "18", 10)
	soID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 2})

	got, err := f.uc.EditSalesOrder(context.Background(), soID, dto.EditSORequest{
		DeliveryDate: "2026-09-25",
		Lines:        []dto.OrderLineRequest{{ItemID: "i2", Quantity: 3}},
	})
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("2700")), "subtotal = %s", got.Subtotal)
	lines, err := f.so.GetLines(soID)
	require.NoError(t, err)
	require.Len(t, lines, 1, "old lines replaced wholesale")
	assert.Equal(t, "i2", lines[0].ItemID)
}

func TestEditSalesOrder_ForbiddenAfterDelivery(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 10)
	soID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 4})
	ctx := context.Background()

	_, err := f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.uc.EditSalesOrder(ctx, soID, dto.EditSORequest{
		DeliveryDate: "2026-09-25",
		Lines:        []dto.OrderLineRequest{{ItemID: "i1", Quantity: 2}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRecordDelivery_DecrementsStockAndDerivesStatus(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 10)
	soID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 6})
	ctx := context.Background()

	first, err := f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i1", Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SOStatusPartiallyDelivered, first.Status)
	assert.Equal(t, int64(4), first.TotalDelivered)
	assert.Equal(t, int64(6), f.inv.OnHand("i1"))
	assert.Positive(t, f.inv.LockCalls, "decrement must go through the locked read")

	second, err := f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SOStatusDelivered, second.Status)
	assert.Equal(t, int64(4), f.inv.OnHand("i1"))
}

func TestRecordDelivery_OverDeliveryChecksRemainderNotOrdered(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 20)
	soID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 6})
	ctx := context.Background()

	_, err := f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i1", Quantity: 4}},
	})
	require.NoError(t, err)

	// 2 remain on the line even though 16 sit in stock.
	_, err = f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i1", Quantity: 4}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(4), stockErr.Requested)
	assert.Equal(t, int64(2), stockErr.Available)
	assert.Equal(t, int64(16), f.inv.OnHand("i1"), "failed delivery must not move stock")
}

func TestRecordDelivery_ZeroQuantityLinesAreSkipped(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 10)
	f.seedItem(t, "i2", "Table Fan", "900", "18", 10)
	soID := f.createOrder(t,
		dto.OrderLineRequest{ItemID: "i1", Quantity: 2},
		dto.OrderLineRequest{ItemID: "i2", Quantity: 3},
	)
	ctx := context.Background()

	got, err := f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{
			{ItemID: "i1", Quantity: 2},
			{ItemID: "i2", Quantity: 0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SOStatusPartiallyDelivered, got.Status)
	assert.Equal(t, int64(2), got.TotalDelivered)
	assert.Equal(t, int64(10), f.inv.OnHand("i2"))

	// A batch of nothing but zeroes is rejected.
	_, err = f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i2", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordDelivery_DeliveredOrderRefusesMore(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 10)
	soID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 2})
	ctx := context.Background()

	_, err := f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i1", Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestDeleteSalesOrder_Guards(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 20)
	ctx := context.Background()

	pending := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 1})
	require.NoError(t, f.uc.DeleteSalesOrder(ctx, pending))
	so, _ := f.so.GetByID(pending)
	assert.Nil(t, so)

	delivered := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 1})
	_, err := f.uc.RecordDelivery(ctx, delivered, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, f.uc.DeleteSalesOrder(ctx, delivered), domain.ErrInvalidState)

	invoiced := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 1})
	require.NoError(t, f.invoices.Create(&entity.Invoice{ID: "inv1", SOID: invoiced, CustomerID: "cust1"}))
	assert.ErrorIs(t, f.uc.DeleteSalesOrder(ctx, invoiced), domain.ErrReferenced)
}

func TestGetSalesOrder_ReportsPerLineDeliveryProgress(t *testing.T) {
	f := newSalesFixture()
	f.seedCustomer(t, "cust1")
	f.seedItem(t, "i1", "Ceiling Fan", "1500", "18", 10)
	soID := f.createOrder(t, dto.OrderLineRequest{ItemID: "i1", Quantity: 6})
	ctx := context.Background()

	_, err := f.uc.RecordDelivery(ctx, soID, dto.RecordDeliveryRequest{
		Lines: []dto.DeliveryLineRequest{{ItemID: "i1", Quantity: 4}},
	})
	require.NoError(t, err)

	got, err := f.uc.GetSalesOrder(ctx, soID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, int64(4), got.Lines[0].Delivered)
	assert.Equal(t, int64(2), got.Lines[0].Remaining)
	assert.Equal(t, "Ceiling Fan", got.Lines[0].ItemName)
}
