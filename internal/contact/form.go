package contact

import "fmt"

// Field names a contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// ParseField maps an input name to a Field.
func ParseField(name string) (Field, error) {
	switch Field(name) {
	case FieldName, FieldEmail, FieldMessage:
		return Field(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Form is the contact form state as typed by the visitor.
type Form struct {
	Name    string `json:"name" validate:"required,personname"`
	Email   string `json:"email" validate:"required,contactemail"`
	Message string `json:"message" validate:"required,messagelength"`
}

// Get returns the value of one field.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	}
	return ""
}

func (f *Form) set(field Field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// IsZero reports whether every field is empty.
func (f Form) IsZero() bool {
	return f == Form{}
}
