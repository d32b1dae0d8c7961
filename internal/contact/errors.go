package contact

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField         = errors.New("unknown contact field")
	ErrVerificationMissing  = errors.New("verification token missing")
	ErrVerificationRejected = errors.New("verification token rejected")
)

// FieldError is the inline guidance for one invalid field.
type FieldError struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists the fields that failed their format rules.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, string(f.Field))
	}
	return "invalid contact form: " + strings.Join(names, ", ")
}

// Messages indexes the guidance by field name, for templates.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[string(f.Field)] = f.Message
	}
	return out
}

// DeliveryError is a failed dispatch: either the provider call failed
// or it answered with something other than 200.
type DeliveryError struct {
	Status int
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("delivery failed: %v", e.Err)
	}
	return fmt.Sprintf("delivery failed: provider returned status %d", e.Status)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
