package phone

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Tag is the struct tag name under which the WhatsApp pattern is registered.
const Tag = "whatsapp"

// whatsAppPattern accepts an optional "+" and two-digit country code, a
// two-digit area code and an 8 or 9 digit subscriber number, with optional
// single spaces between the groups.
var whatsAppPattern = regexp.MustCompile(`^(\+?\d{2}\s?)?\d{2}\s?\d{8,9}$`)

// Validator reports whether a raw phone string is acceptable.
type Validator interface {
	Validate(raw string) bool
}

type whatsAppValidator struct{}

// NewWhatsAppValidator returns the loose Brazilian WhatsApp number validator.
func NewWhatsAppValidator() Validator {
	return whatsAppValidator{}
}

func (whatsAppValidator) Validate(raw string) bool {
	return whatsAppPattern.MatchString(raw)
}

// Register installs v under Tag on a go-playground validator so struct fields
// can be declared with `validate:"whatsapp"`.
func Register(engine *validator.Validate, v Validator) error {
	return engine.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		return v.Validate(fl.Field().String())
	})
}
