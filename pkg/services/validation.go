package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/navarrastar/leadpage/pkg/models"
	"github.com/navarrastar/leadpage/pkg/phone"
)

// Inline messages for the two field-level checks.
const (
	MsgInvalidWhatsApp = "Por favor, insira um número de WhatsApp válido (ex: +55 65 92934536)"
	MsgPrivacyRequired = "Você precisa aceitar a Política de Privacidade para continuar"
)

// LeadValidator checks a LeadForm against its struct tags.
type LeadValidator struct {
	engine *validator.Validate
}

// NewLeadValidator builds a validator with the WhatsApp pattern registered.
func NewLeadValidator(phones phone.Validator) (*LeadValidator, error) {
	engine := validator.New(validator.WithRequiredStructEnabled())
	engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := phone.Register(engine, phones); err != nil {
		return nil, fmt.Errorf("error registering phone validation: %w", err)
	}
	return &LeadValidator{engine: engine}, nil
}

// Validate returns the field-level errors: whatsapp format and privacy
// acceptance. Empty text fields are reported by MissingFields instead.
func (v *LeadValidator) Validate(form models.LeadForm) models.ValidationErrors {
	out := models.ValidationErrors{}
	for _, fe := range v.fieldErrors(form) {
		switch fe.Field() {
		case string(models.FieldWhatsApp):
			out[models.FieldWhatsApp] = MsgInvalidWhatsApp
		case "privacyAccepted":
			out[models.FieldPrivacyPolicy] = MsgPrivacyRequired
		}
	}
	return out
}

// MissingFields lists the empty free-text fields among name, company and
// challenge, in form order.
func (v *LeadValidator) MissingFields(form models.LeadForm) []models.Field {
	var missing []models.Field
	for _, fe := range v.fieldErrors(form) {
		if fe.Tag() != "required" {
			continue
		}
		switch f := models.Field(fe.Field()); f {
		case models.FieldName, models.FieldCompany, models.FieldChallenge:
			missing = append(missing, f)
		}
	}
	return missing
}

func (v *LeadValidator) fieldErrors(form models.LeadForm) validator.ValidationErrors {
	err := v.engine.Struct(form)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
