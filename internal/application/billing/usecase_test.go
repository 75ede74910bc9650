package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatsoni/vyapar-api/internal/application/apptest"
	"github.com/rajatsoni/vyapar-api/internal/application/billing"
	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
)

type stubPDF struct {
	lines []billing.InvoiceLineForPDF
}

func (s *stubPDF) Generate(inv *entity.Invoice, customer *entity.Customer, lines []billing.InvoiceLineForPDF) ([]byte, error) {
	s.lines = lines
	return []byte("%PDF-1.4"), nil
}

type billingFixture struct {
	uc        *billing.UseCase
	invoices  *apptest.InvoiceRepo
	so        *apptest.SalesOrderRepo
	customers *apptest.CustomerRepo
	items     *apptest.ItemRepo
	pdf       *stubPDF
}

func newBillingFixture() *billingFixture {
	f := &billingFixture{
		invoices:  apptest.NewInvoiceRepo(),
		so:        apptest.NewSalesOrderRepo(),
		customers: apptest.NewCustomerRepo(),
		items:     apptest.NewItemRepo(),
		pdf:       &stubPDF{},
	}
	f.uc = billing.NewUseCase(f.invoices, f.so, f.customers, f.items, f.pdf)
	return f
}

func (f *billingFixture) seedOrder(t *testing.T, id, status string) {
	t.Helper()
	require.NoError(t, f.so.Create(&entity.SalesOrder{
		ID:          id,
		CustomerID:  "cust1",
		Status:      status,
		Subtotal:    decimal.RequireFromString("9000"),
		TotalGST:    decimal.RequireFromString("1620"),
		TotalAmount: decimal.RequireFromString("10620"),
	}))
}

func TestGenerateInvoice_CopiesOrderTotals(t *testing.T) {
	f := newBillingFixture()
	f.seedOrder(t, "so1", entity.SOStatusDelivered)

	got, err := f.uc.GenerateInvoice(context.Background(), dto.GenerateInvoiceRequest{SOID: "so1"})
	require.NoError(t, err)

	assert.Equal(t, "so1", got.SOID)
	assert.Equal(t, "cust1", got.CustomerID)
	assert.Equal(t, entity.InvoiceStatusUnpaid, got.Status)
	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("9000")))
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("10620")))
}

func TestGenerateInvoice_DueDateDefaultsThirtyDaysOut(t *testing.T) {
	f := newBillingFixture()
	f.seedOrder(t, "so1", entity.SOStatusDelivered)

	got, err := f.uc.GenerateInvoice(context.Background(), dto.GenerateInvoiceRequest{SOID: "so1"})
	require.NoError(t, err)

	want := time.Now().AddDate(0, 0, 30)
	assert.WithinDuration(t, want, got.DueDate, time.Minute)
}

func TestGenerateInvoice_ExplicitDueDate(t *testing.T) {
	f := newBillingFixture()
	f.seedOrder(t, "so1", entity.SOStatusDelivered)

	got, err := f.uc.GenerateInvoice(context.Background(), dto.GenerateInvoiceRequest{
		SOID:    "so1",
		DueDate: "2026-10-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", got.DueDate.Format(dto.DateLayout))
}

func TestGenerateInvoice_RequiresDeliveredOrder(t *testing.T) {
	f := newBillingFixture()
	f.seedOrder(t, "pending", entity.SOStatusPending)
	f.seedOrder(t, "partial", entity.SOStatusPartiallyDelivered)
	ctx := context.Background()

	_, err := f.uc.GenerateInvoice(ctx, dto.GenerateInvoiceRequest{SOID: "pending"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.uc.GenerateInvoice(ctx, dto.GenerateInvoiceRequest{SOID: "partial"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.uc.GenerateInvoice(ctx, dto.GenerateInvoiceRequest{SOID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateInvoice_OnePerOrder(t *testing.T) {
	f := newBillingFixture()
	f.seedOrder(t, "so1", entity.SOStatusDelivered)
	ctx := context.Background()

	_, err := f.uc.GenerateInvoice(ctx, dto.GenerateInvoiceRequest{SOID: "so1"})
	require.NoError(t, err)

	_, err = f.uc.GenerateInvoice(ctx, dto.GenerateInvoiceRequest{SOID: "so1"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestMarkPaid_OneWayAndIdempotent(t *testing.T) {
	f := newBillingFixture()
	f.seedOrder(t, "so1", entity.SOStatusDelivered)
	ctx := context.Background()

	created, err := f.uc.GenerateInvoice(ctx, dto.GenerateInvoiceRequest{SOID: "so1"})
	require.NoError(t, err)

	paid, err := f.uc.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
	assert.Empty(t, paid.Notice)

	again, err := f.uc.MarkPaid(ctx, created.ID)
	require.NoError(t, err, "marking a paid invoice is a no-op, not an error")
	assert.Equal(t, entity.InvoiceStatusPaid, again.Status)
	assert.NotEmpty(t, again.Notice)
}

func TestDeleteInvoice_WarnsWhenPaid(t *testing.T) {
	f := newBillingFixture()
	f.seedOrder(t, "so1", entity.SOStatusDelivered)
	f.seedOrder(t, "so2", entity.SOStatusDelivered)
	ctx := context.Background()

	unpaid, err := f.uc.GenerateInvoice(ctx, dto.GenerateInvoiceRequest{SOID: "so1"})
	require.NoError(t, err)
	res, err := f.uc.DeleteInvoice(ctx, unpaid.ID)
	require.NoError(t, err)
	assert.Empty(t, res.Notice)

	paid, err := f.uc.GenerateInvoice(ctx, dto.GenerateInvoiceRequest{SOID: "so2"})
	require.NoError(t, err)
	_, err = f.uc.MarkPaid(ctx, paid.ID)
	require.NoError(t, err)
	res, err = f.uc.DeleteInvoice(ctx, paid.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Notice, "deleting a settled billing record is flagged")

	gone, err := f.uc.GetInvoice(ctx, paid.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestInvoicePDF_ResolvesItemNames(t *testing.T) {
	f := newBillingFixture()
	f.seedOrder(t, "so1", entity.SOStatusDelivered)
	require.NoError(t, f.customers.Create(&entity.Customer{ID: "cust1", Name: "Gupta Electricals"}))
	require.NoError(t, f.items.Create(&entity.Item{ID: "i1", Name: "Ceiling Fan"}))
	require.NoError(t, f.so.CreateLine(&entity.SalesOrderLine{
		ID: "l1", SOID: "so1", ItemID: "i1", Quantity: 6,
		Rate:       decimal.RequireFromString("1500"),
		GSTPercent: decimal.RequireFromString("18"),
	}))
	ctx := context.Background()

	created, err := f.uc.GenerateInvoice(ctx, dto.GenerateInvoiceRequest{SOID: "so1"})
	require.NoError(t, err)

	doc, err := f.uc.InvoicePDF(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	require.Len(t, f.pdf.lines, 1)
	assert.Equal(t, "Ceiling Fan", f.pdf.lines[0].ItemName)
	assert.Equal(t, int64(6), f.pdf.lines[0].Quantity)
}
