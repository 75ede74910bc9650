package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rajatsoni/vyapar-api/internal/application/directory"
	"github.com/rajatsoni/vyapar-api/internal/application/dto"
)

// CustomerHandler handles customer directory requests.
type CustomerHandler struct {
	uc *directory.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *directory.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create adds a customer.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID returns one customer.
// GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// List lists customers.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update rewrites a customer.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete removes a customer if no order or invoice references it.
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
