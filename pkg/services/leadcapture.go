package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/navarrastar/leadpage/pkg/clients/analytics"
	"github.com/navarrastar/leadpage/pkg/clients/whatsapp"
	"github.com/navarrastar/leadpage/pkg/clock"
	"github.com/navarrastar/leadpage/pkg/logger"
	"github.com/navarrastar/leadpage/pkg/models"
	"github.com/navarrastar/leadpage/pkg/utils"
)

var (
	ErrInvalidFields = errors.New("invalid lead fields")
	ErrMissingFields = errors.New("missing required lead fields")
	ErrNotEditing    = errors.New("lead form already submitted")
	ErrFormFrozen    = errors.New("lead form is read-only after submission")
	ErrUnknownField  = errors.New("unknown lead form field")
)

// Analytics names used by the contact form.
const (
	ConversionAction   = "lead_form_submit"
	EventWhatsAppClick = "whatsapp_redirect"
)

var (
	missingFieldsNotice = models.Notification{
		Kind:        models.NotificationError,
		Title:       "Campos obrigatórios",
		Description: "Por favor, preencha todos os campos obrigatórios.",
	}
	submittedNotice = models.Notification{
		Kind:        models.NotificationSuccess,
		Title:       "Mensagem enviada!",
		Description: "Você será redirecionado para o WhatsApp. Entraremos em contato em breve.",
	}
)

const leadMessageTemplate = `Olá! Vim pelo site e gostaria de saber mais sobre a consultoria em IA.

*Nome:* %s
*WhatsApp:* %s
*Empresa:* %s
*Desafio:* %s`

// FormatLeadMessage renders the chat message pre-filled in the deep link.
func FormatLeadMessage(form models.LeadForm) string {
	return fmt.Sprintf(leadMessageTemplate, form.Name, form.WhatsApp, form.Company, form.Challenge)
}

// LeadCaptureService creates contact form flows sharing the same collaborators
type LeadCaptureService interface {
	NewFlow(opener whatsapp.Opener, notifier Notifier) *LeadFlow
}

type leadCaptureServiceImpl struct {
	validator *LeadValidator
	links     whatsapp.LinkBuilder
	tracker   analytics.Tracker
	clock     clock.Clock
	delay     time.Duration
	log       *slog.Logger
}

// NewLeadCaptureService creates a new lead capture service. delay is the
// pause between the hand-off and the submitted state.
func NewLeadCaptureService(
	validator *LeadValidator,
	links whatsapp.LinkBuilder,
	tracker analytics.Tracker,
	clk clock.Clock,
	delay time.Duration,
	log *slog.Logger,
) LeadCaptureService {
	return &leadCaptureServiceImpl{
		validator: validator,
		links:     links,
		tracker:   tracker,
		clock:     clk,
		delay:     delay,
		log:       log.With(logger.Scope("services.leads")),
	}
}

func (s *leadCaptureServiceImpl) NewFlow(opener whatsapp.Opener, notifier Notifier) *LeadFlow {
	return &LeadFlow{
		svc:      s,
		opener:   opener,
		notifier: notifier,
		errors:   models.ValidationErrors{},
		state:    models.FormEditing,
		done:     make(chan struct{}),
	}
}

// LeadFlow is one contact form instance. It moves from editing to submitting
// to submitted and never back.
type LeadFlow struct {
	svc      *leadCaptureServiceImpl
	opener   whatsapp.Opener
	notifier Notifier

	mu       sync.Mutex
	form     models.LeadForm
	errors   models.ValidationErrors
	state    models.FormState
	link     string
	pending  clock.Timer
	disposed bool
	done     chan struct{}
}

// UpdateField sets one text field and clears any error recorded for it.
func (f *LeadFlow) UpdateField(field models.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != models.FormEditing {
		return ErrFormFrozen
	}
	form, ok := f.form.With(field, value)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	f.form = form
	delete(f.errors, field)
	return nil
}

// SetPrivacyAccepted toggles the privacy checkbox. Checking it clears the
// privacy error.
func (f *LeadFlow) SetPrivacyAccepted(accepted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != models.FormEditing {
		return ErrFormFrozen
	}
	f.form.PrivacyAccepted = accepted
	if accepted {
		delete(f.errors, models.FieldPrivacyPolicy)
	}
	return nil
}

// Submit validates the form and, when it passes, hands the lead off to the
// chat deep link. Validation failures leave the flow editable.
func (f *LeadFlow) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.state != models.FormEditing {
		f.mu.Unlock()
		return ErrNotEditing
	}

	if errs := f.svc.validator.Validate(f.form); len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()
		return fmt.Errorf("%w: %d field(s)", ErrInvalidFields, len(errs))
	}

	if missing := f.svc.validator.MissingFields(f.form); len(missing) > 0 {
		f.mu.Unlock()
		f.notifier.Notify(missingFieldsNotice)
		return fmt.Errorf("%w: %v", ErrMissingFields, missing)
	}

	form := f.form
	f.state = models.FormSubmitting
	f.link = f.svc.links.DeepLink(FormatLeadMessage(form))
	link := f.link
	f.pending = f.svc.clock.AfterFunc(f.svc.delay, f.complete)
	f.mu.Unlock()

	f.svc.log.Info("lead submitted",
		slog.String("phone_hash", utils.HashPhone(form.WhatsApp)),
		slog.String("company", form.Company))

	f.svc.tracker.TrackConversion(ctx, ConversionAction, 1)
	f.svc.tracker.TrackEvent(ctx, EventWhatsAppClick, map[string]any{"form": "contact"})
	f.opener.Open(link)
	return nil
}

func (f *LeadFlow) complete() {
	f.mu.Lock()
	if f.disposed || f.state != models.FormSubmitting {
		f.mu.Unlock()
		return
	}
	f.state = models.FormSubmitted
	f.pending = nil
	close(f.done)
	f.mu.Unlock()

	f.notifier.Notify(submittedNotice)
}

// Dispose cancels a pending transition to submitted. The flow must not be
// used afterwards.
func (f *LeadFlow) Dispose() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.disposed = true
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
}

// Done is closed once the flow reaches the submitted state.
func (f *LeadFlow) Done() <-chan struct{} {
	return f.done
}

func (f *LeadFlow) State() models.FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *LeadFlow) Form() models.LeadForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// Errors returns a copy of the current field-level errors.
func (f *LeadFlow) Errors() models.ValidationErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.Clone()
}

// DeepLink returns the hand-off link, empty until Submit succeeds.
func (f *LeadFlow) DeepLink() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.link
}
