package validation

import (
	"errors"
	"fmt"

	"github.com/kauhanhernandes/portfolio/internal/api/dto/common"
	"github.com/kauhanhernandes/portfolio/internal/contact"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError formats validation errors into a user-friendly response.
// It understands both binding errors and contact form rule failures.
func FormatValidationError(err error) []common.ValidationError {
	var formErr *contact.ValidationError
	if errors.As(err, &formErr) {
		out := make([]common.ValidationError, 0, len(formErr.Fields))
		for _, f := range formErr.Fields {
			out = append(out, common.ValidationError{
				Field:   string(f.Field),
				Message: f.Message,
			})
		}
		return out
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		out := make([]common.ValidationError, 0, len(validationErrors))
		for _, e := range validationErrors {
			out = append(out, common.ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: tagMessage(e),
			})
		}
		return out
	}

	return nil
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Campo obrigatório"
	case "max":
		return fmt.Sprintf("Máximo de %s caracteres", e.Param())
	case "min":
		return fmt.Sprintf("Mínimo de %s caracteres", e.Param())
	}
	return "Valor inválido"
}
