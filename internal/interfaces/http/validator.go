package http

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/rajatsoni/vyapar-api/internal/domain"
)

var validate = validator.New()

// validateStruct runs the struct tags and converts the first failure into a
// domain ValidationError so it maps to 400 like every other input problem.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.Validationf(fe.Field(), "failed %q validation", fe.Tag())
	}
	return domain.Validationf("body", "invalid input")
}
