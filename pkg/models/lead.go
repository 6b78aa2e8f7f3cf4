package models

// Field names a LeadForm input as it appears in form posts and JSON bodies.
type Field string

const (
	FieldName          Field = "name"
	FieldWhatsApp      Field = "whatsapp"
	FieldCompany       Field = "company"
	FieldChallenge     Field = "challenge"
	FieldPrivacyPolicy Field = "privacyPolicy"
)

// TextFields lists the free-text inputs in form order.
var TextFields = []Field{FieldName, FieldWhatsApp, FieldCompany, FieldChallenge}

// Represents the data captured by the landing page contact form
type LeadForm struct {
	Name            string `json:"name" form:"name" validate:"required"`
	WhatsApp        string `json:"whatsapp" form:"whatsapp" validate:"whatsapp"`
	Company         string `json:"company" form:"company" validate:"required"`
	Challenge       string `json:"challenge" form:"challenge" validate:"required"`
	PrivacyAccepted bool   `json:"privacyAccepted" form:"privacyAccepted" validate:"required"`
}

// Value returns the current text of a form field.
func (f LeadForm) Value(field Field) (string, bool) {
	switch field {
	case FieldName:
		return f.Name, true
	case FieldWhatsApp:
		return f.WhatsApp, true
	case FieldCompany:
		return f.Company, true
	case FieldChallenge:
		return f.Challenge, true
	}
	return "", false
}

// With returns a copy of the form with field set to value.
func (f LeadForm) With(field Field, value string) (LeadForm, bool) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldWhatsApp:
		f.WhatsApp = value
	case FieldCompany:
		f.Company = value
	case FieldChallenge:
		f.Challenge = value
	default:
		return f, false
	}
	return f, true
}

// ValidationErrors maps an offending field to its inline message. Only
// whatsapp and privacyPolicy produce field-level errors.
type ValidationErrors map[Field]string

// Has reports whether field carries an error.
func (e ValidationErrors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Clone returns an independent copy.
func (e ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// FormState is the lifecycle of a single contact form instance.
type FormState string

const (
	FormEditing    FormState = "editing"
	FormSubmitting FormState = "submitting"
	FormSubmitted  FormState = "submitted"
)

// NotificationKind distinguishes toast styles.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a toast shown to the visitor.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}
