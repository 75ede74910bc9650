package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/application/sales"
)

// SalesHandler handles sales-order and delivery requests.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler builds the handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Create creates a sales order with snapshotted lines.
// POST /api/sales-orders
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSORequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateSalesOrder(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID returns a sales order with lines and delivery progress.
// GET /api/sales-orders/:id
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesOrder(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// List lists sales-order headers.
// GET /api/sales-orders
func (h *SalesHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListSalesOrders(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update replaces a pending order's lines and delivery date.
// PUT /api/sales-orders/:id
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	var in dto.EditSORequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.EditSalesOrder(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete removes a pending, uninvoiced sales order.
// DELETE /api/sales-orders/:id
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSalesOrder(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordDelivery records a (possibly partial) delivery against an order.
// POST /api/sales-orders/:id/deliveries
func (h *SalesHandler) RecordDelivery(c *fiber.Ctx) error {
	var in dto.RecordDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.RecordDelivery(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDeliveries lists the delivery history of an order.
// GET /api/sales-orders/:id/deliveries
func (h *SalesHandler) ListDeliveries(c *fiber.Ctx) error {
	out, err := h.uc.ListDeliveries(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
