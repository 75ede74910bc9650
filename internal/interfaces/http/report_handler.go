package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rajatsoni/vyapar-api/internal/application/reports"
)

// ReportHandler handles the read-only report endpoints.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GSTLiability returns output vs input GST per bracket and the net position.
// GET /api/reports/gst-liability
func (h *ReportHandler) GSTLiability(c *fiber.Ctx) error {
	out, err := h.uc.GSTLiability(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RevenueByCustomer returns revenue aggregated per customer.
// GET /api/reports/revenue-by-customer
func (h *ReportHandler) RevenueByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.RevenueByCustomer(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesSummary returns the order and revenue counters.
// GET /api/reports/sales-summary
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	out, err := h.uc.SalesSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
