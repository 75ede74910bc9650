package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rajatsoni/vyapar-api/internal/application/catalog"
	"github.com/rajatsoni/vyapar-api/internal/application/dto"
)

// ItemHandler handles catalog item requests.
type ItemHandler struct {
	uc *catalog.UseCase
}

// NewItemHandler builds the handler.
func NewItemHandler(uc *catalog.UseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create creates an item with its inventory record.
// POST /api/items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateItem(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID returns one item with its stock position.
// GET /api/items/:id
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// List lists catalog items.
// GET /api/items
func (h *ItemHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListItems(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update applies partial edits to an item.
// PUT /api/items/:id
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete removes an item if nothing references it.
// DELETE /api/items/:id
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock lists items at or below their reorder level.
// GET /api/items/low-stock
func (h *ItemHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
