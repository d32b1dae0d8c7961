package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// jsSpace is the whitespace class browsers use for \s in pattern attributes.
const jsSpace = `\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}`

// Message bounds, counted in UTF-16 code units like minlength and maxlength.
const (
	MinMessageLength = 10
	MaxMessageLength = 1000
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ` + jsSpace + `]{2,}$`)
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
)

// Inline guidance, shown next to the inputs.
const (
	HintName    = "Por favor, insira um nome válido (apenas letras e espaços)"
	HintEmail   = "Por favor, insira um email válido"
	HintMessage = "A mensagem deve ter entre 10 e 1000 caracteres"
)

var fieldTags = map[Field]string{
	FieldName:    "required,personname",
	FieldEmail:   "required,contactemail",
	FieldMessage: "required,messagelength",
}

var fieldHints = map[Field]string{
	FieldName:    HintName,
	FieldEmail:   HintEmail,
	FieldMessage: HintMessage,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := registerValidators(v); err != nil {
		panic(err)
	}
	return v
}

func registerValidators(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		"personname":    ValidName,
		"contactemail":  ValidEmail,
		"messagelength": ValidMessage,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}

// ValidName accepts letters (accented Latin-1 included) and whitespace, at least two.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// ValidMessage checks the message length in UTF-16 code units, so a
// character outside the BMP counts twice.
func ValidMessage(s string) bool {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n >= MinMessageLength && n <= MaxMessageLength
}

// ValidEmail accepts lowercase addresses with a dotted domain.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks every field and reports all failures at once.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	seen := make(map[Field]bool, len(verrs))
	out := &ValidationError{}
	for _, fe := range verrs {
		field := Field(fe.Field())
		if seen[field] {
			continue
		}
		seen[field] = true
		out.Fields = append(out.Fields, FieldError{Field: field, Message: fieldHints[field]})
	}
	return out
}

// Hint returns the guidance for value, or "" when it satisfies the field's rules.
// Empty values get no hint so untouched inputs stay quiet.
func Hint(field Field, value string) string {
	tag, ok := fieldTags[field]
	if !ok || value == "" {
		return ""
	}
	if err := validate.Var(value, tag); err != nil {
		return fieldHints[field]
	}
	return ""
}
