// Package billing generates invoices from fully delivered sales orders and
// tracks the one-way Unpaid -> Paid transition.
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

// defaultDueDays is the payment window applied when the caller supplies no
// due date.
const defaultDueDays = 30

// UseCase owns invoices. Every mutation here is a single-row insert or
// update; the one-invoice-per-order rule rides on a lookup plus a unique
// index on so_id, so no multi-statement transaction is needed.
type UseCase struct {
	invoiceRepo  repository.InvoiceRepository
	soRepo       repository.SalesOrderRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	pdf          InvoicePDFGenerator
}

// NewUseCase builds the billing use case.
func NewUseCase(
	invoiceRepo repository.InvoiceRepository,
	soRepo repository.SalesOrderRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	pdf InvoicePDFGenerator,
) *UseCase {
	return &UseCase{
		invoiceRepo:  invoiceRepo,
		soRepo:       soRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		pdf:          pdf,
	}
}

// GenerateInvoice creates the billing document for a fully delivered sales
// order, copying the order totals. One invoice per order; a second attempt
// reports the order's current state.
func (uc *UseCase) GenerateInvoice(ctx context.Context, in dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	so, err := uc.soRepo.GetByID(in.SOID)
	if err != nil {
		return nil, err
	}
	if so == nil {
		return nil, domain.ErrNotFound
	}
	if so.Status != entity.SOStatusDelivered {
		return nil, &domain.StateError{
			Entity: "sales order", ID: so.ID,
			Status: so.Status, Operation: "invoice",
		}
	}
	existing, err := uc.invoiceRepo.GetBySOID(so.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.StateError{
			Entity: "sales order", ID: so.ID,
			Status: "already invoiced", Operation: "invoice",
		}
	}

	now := time.Now()
	dueDate := now.AddDate(0, 0, defaultDueDays)
	if in.DueDate != "" {
		dueDate, err = dto.ParseDate("due_date", in.DueDate)
		if err != nil {
			return nil, err
		}
	}

	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		SOID:        so.ID,
		CustomerID:  so.CustomerID,
		InvoiceDate: now,
		DueDate:     dueDate,
		Subtotal:    so.Subtotal,
		TotalGST:    so.TotalGST,
		TotalAmount: so.TotalAmount,
		Status:      entity.InvoiceStatusUnpaid,
		CreatedAt:   now,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, ""), nil
}

// MarkPaid moves an invoice to Paid. Marking an already-paid invoice is a
// no-op reported through the notice, not an error.
func (uc *UseCase) MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status == entity.InvoiceStatusPaid {
		return toInvoiceResponse(inv, "invoice is already marked as Paid"), nil
	}
	if err := uc.invoiceRepo.UpdateStatus(id, entity.InvoiceStatusPaid); err != nil {
		return nil, err
	}
	inv.Status = entity.InvoiceStatusPaid
	return toInvoiceResponse(inv, ""), nil
}

// DeleteInvoice removes an invoice. Deleting a paid invoice is allowed but
// flagged, since it erases a settled billing record.
func (uc *UseCase) DeleteInvoice(ctx context.Context, id string) (*dto.NoticeResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	notice := ""
	if inv.Status == entity.InvoiceStatusPaid {
		notice = "deleted an invoice that was already marked as Paid"
	}
	if err := uc.invoiceRepo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.NoticeResponse{Notice: notice}, nil
}

// GetInvoice returns one invoice, or nil when absent.
func (uc *UseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, err
	}
	return toInvoiceResponse(inv, ""), nil
}

// ListInvoices pages through invoices.
func (uc *UseCase) ListInvoices(ctx context.Context, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv, ""))
	}
	return &dto.InvoiceListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// InvoicePDF renders the printable invoice document.
func (uc *UseCase) InvoicePDF(ctx context.Context, id string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, err
	}
	soLines, err := uc.soRepo.GetLines(inv.SOID)
	if err != nil {
		return nil, err
	}
	lines := make([]InvoiceLineForPDF, 0, len(soLines))
	for _, l := range soLines {
		name := l.ItemID
		if item, err := uc.itemRepo.GetByID(l.ItemID); err == nil && item != nil {
			name = item.Name
		}
		lines = append(lines, InvoiceLineForPDF{
			ItemName:   name,
			Quantity:   l.Quantity,
			Rate:       l.Rate,
			GSTPercent: l.GSTPercent,
			GSTAmount:  l.GSTAmount,
			LineTotal:  l.LineTotal,
		})
	}
	return uc.pdf.Generate(inv, customer, lines)
}

func toInvoiceResponse(inv *entity.Invoice, notice string) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:          inv.ID,
		SOID:        inv.SOID,
		CustomerID:  inv.CustomerID,
		InvoiceDate: inv.InvoiceDate,
		DueDate:     inv.DueDate,
		Subtotal:    inv.Subtotal,
		TotalGST:    inv.TotalGST,
		TotalAmount: inv.TotalAmount,
		Status:      inv.Status,
		Notice:      notice,
	}
}
