package dto

import (
	"time"

	"github.com/rajatsoni/vyapar-api/internal/domain"
)

// ParseDate parses an ISO YYYY-MM-DD wire date, reporting a ValidationError
// naming the offending field.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, domain.Validationf(field, "must be a date in YYYY-MM-DD format, got %q", value)
	}
	return t, nil
}
