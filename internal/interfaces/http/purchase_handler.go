package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/application/purchasing"
)

// PurchaseHandler handles purchase-order and goods-receipt requests.
type PurchaseHandler struct {
	uc *purchasing.UseCase
}

// NewPurchaseHandler builds the handler.
func NewPurchaseHandler(uc *purchasing.UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create creates a purchase order with snapshotted lines.
// POST /api/purchase-orders
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePORequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreatePurchaseOrder(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID returns a purchase order with its lines.
// GET /api/purchase-orders/:id
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetPurchaseOrder(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// List lists purchase-order headers.
// GET /api/purchase-orders
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListPurchaseOrders(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete removes a purchase order with no receipts.
// DELETE /api/purchase-orders/:id
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeletePurchaseOrder(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordReceipt records a goods-receipt batch against an order.
// POST /api/purchase-orders/:id/receipts
func (h *PurchaseHandler) RecordReceipt(c *fiber.Ctx) error {
	var in dto.RecordReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.RecordGoodsReceipt(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReceipts lists the receipt history of an order.
// GET /api/purchase-orders/:id/receipts
func (h *PurchaseHandler) ListReceipts(c *fiber.Ctx) error {
	out, err := h.uc.ListReceipts(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
