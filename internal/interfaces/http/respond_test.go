package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/domain"
)

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.Validationf("name", "is required"), fiber.StatusBadRequest, "VALIDATION"},
		{"not found", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"duplicate", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"referenced", &domain.ReferentialError{
			Entity: "item", Name: "MCB 16A",
			Dependents: []domain.Dependency{{Entity: "purchase order", Count: 2}},
		}, fiber.StatusConflict, "REFERENCED"},
		{"invalid state", &domain.StateError{
			Entity: "sales order", ID: "so1", Status: "Delivered", Operation: "edit",
		}, fiber.StatusConflict, "INVALID_STATE"},
		{"insufficient stock", &domain.StockError{
			ItemID: "i1", ItemName: "Ceiling Fan", Requested: 5, Available: 3,
		}, fiber.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
		{"unknown", io.ErrUnexpectedEOF, fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestPageParams_Clamping(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 20, 0},
		{"explicit", "?limit=50&offset=10", 50, 10},
		{"limit capped", "?limit=500", 100, 0},
		{"negative values", "?limit=-1&offset=-5", 20, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			var limit, offset int
			app.Get("/list", func(c *fiber.Ctx) error {
				limit, offset = pageParams(c)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/list"+tc.query, nil))
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}
