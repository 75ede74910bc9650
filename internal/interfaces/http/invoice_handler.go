package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rajatsoni/vyapar-api/internal/application/billing"
	"github.com/rajatsoni/vyapar-api/internal/application/dto"
)

// InvoiceHandler handles billing requests.
type InvoiceHandler struct {
	uc *billing.UseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Generate creates the invoice for a delivered sales order.
// POST /api/invoices
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GenerateInvoice(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID returns one invoice.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// List lists invoices.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListInvoices(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkPaid marks an invoice as paid; repeating it is a no-op with a notice.
// POST /api/invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete removes an invoice, with a warning notice when it was paid.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.DeleteInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF streams the printable invoice document.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.InvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="invoice-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}
