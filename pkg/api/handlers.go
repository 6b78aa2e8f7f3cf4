package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/navarrastar/leadpage/pkg/clients/analytics"
	"github.com/navarrastar/leadpage/pkg/clients/whatsapp"
	"github.com/navarrastar/leadpage/pkg/clock"
	"github.com/navarrastar/leadpage/pkg/components"
	"github.com/navarrastar/leadpage/pkg/logger"
	"github.com/navarrastar/leadpage/pkg/metrics"
	"github.com/navarrastar/leadpage/pkg/models"
	"github.com/navarrastar/leadpage/pkg/services"
)

const (
	channelForm = "form"
	channelAPI  = "api"
)

// Handlers contains all HTTP handlers for the landing page
type Handlers struct {
	leads     services.LeadCaptureService
	countdown *services.Countdown
	tracker   analytics.Tracker
	clock     clock.Clock
	page      components.PageConfig
	log       *slog.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	leads services.LeadCaptureService,
	countdown *services.Countdown,
	tracker analytics.Tracker,
	clk clock.Clock,
	page components.PageConfig,
	log *slog.Logger,
) *Handlers {
	return &Handlers{
		leads:     leads,
		countdown: countdown,
		tracker:   tracker,
		clock:     clk,
		page:      page,
		log:       log.With(logger.Scope("api")),
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LandingPage renders every section with an empty contact form
func (h *Handlers) LandingPage(c *gin.Context) {
	h.tracker.TrackPageView(c.Request.Context(), c.Request.URL.Path)
	metrics.PageViews.WithLabelValues(c.FullPath()).Inc()

	h.renderPage(c, http.StatusOK, components.ContactProps{})
}

// Countdown returns the live offer countdown
func (h *Handlers) Countdown(c *gin.Context) {
	remaining := h.countdown.Tick(h.clock.Now())
	c.JSON(http.StatusOK, gin.H{
		"remaining": remaining,
		"deadline":  h.countdown.Target().UnixMilli(),
	})
}

// SubmitContactForm handles the HTML form post. Success redirects the browser
// to the WhatsApp deep link; failures re-render the page with errors.
func (h *Handlers) SubmitContactForm(c *gin.Context) {
	var form models.LeadForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Info("malformed contact form", logger.Error(err))
		metrics.LeadSubmissions.WithLabelValues(channelForm, metrics.OutcomeBadRequest).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	res, err := h.submit(c.Request.Context(), channelForm, form)
	if err != nil {
		h.renderPage(c, statusFor(err), components.ContactProps{
			Form:         res.form,
			Errors:       res.errors,
			Notification: res.notification,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, res.link)
}

// SubmitLead is the JSON variant used by scripted clients
func (h *Handlers) SubmitLead(c *gin.Context) {
	var form models.LeadForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Info("malformed lead payload", logger.Error(err))
		metrics.LeadSubmissions.WithLabelValues(channelAPI, metrics.OutcomeBadRequest).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	res, err := h.submit(c.Request.Context(), channelAPI, form)
	if err != nil {
		c.JSON(statusFor(err), gin.H{
			"error":        err.Error(),
			"state":        res.state,
			"errors":       res.errors,
			"notification": res.notification,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":        res.state,
		"deepLink":     res.link,
		"notification": res.notification,
	})
}

type submission struct {
	form         models.LeadForm
	state        models.FormState
	errors       models.ValidationErrors
	notification *models.Notification
	link         string
}

// submit drives one lead flow from an empty form to a terminal state.
func (h *Handlers) submit(ctx context.Context, channel string, form models.LeadForm) (submission, error) {
	opener := &whatsapp.LinkRecorder{}
	notes := &services.NotificationRecorder{}
	flow := h.leads.NewFlow(opener, notes)
	defer flow.Dispose()

	for _, field := range models.TextFields {
		value, _ := form.Value(field)
		if err := flow.UpdateField(field, value); err != nil {
			return submission{}, err
		}
	}
	if err := flow.SetPrivacyAccepted(form.PrivacyAccepted); err != nil {
		return submission{}, err
	}

	err := flow.Submit(ctx)
	switch {
	case errors.Is(err, services.ErrInvalidFields):
		metrics.LeadSubmissions.WithLabelValues(channel, metrics.OutcomeInvalid).Inc()
		for field := range flow.Errors() {
			metrics.LeadFieldErrors.WithLabelValues(string(field)).Inc()
		}
	case errors.Is(err, services.ErrMissingFields):
		metrics.LeadSubmissions.WithLabelValues(channel, metrics.OutcomeMissing).Inc()
	case err != nil:
		return submission{}, err
	default:
		select {
		case <-flow.Done():
			metrics.LeadSubmissions.WithLabelValues(channel, metrics.OutcomeSubmitted).Inc()
		case <-ctx.Done():
			// The visitor went away; the deferred Dispose cancels the transition.
			metrics.LeadSubmissions.WithLabelValues(channel, metrics.OutcomeAbandoned).Inc()
			return submission{}, ctx.Err()
		}
	}

	res := submission{
		form:   flow.Form(),
		state:  flow.State(),
		errors: flow.Errors(),
		link:   opener.Link(),
	}
	if n, ok := notes.Last(); ok {
		res.notification = &n
	}
	return res, err
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidFields), errors.Is(err, services.ErrMissingFields):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) renderPage(c *gin.Context, status int, contact components.ContactProps) {
	now := h.clock.Now()
	remaining := h.countdown.Tick(now)

	page := components.LandingPage(components.LandingProps{
		Page:           h.page,
		Countdown:      remaining,
		DeadlineUnixMs: h.countdown.Target().UnixMilli(),
		Contact:        contact,
		Year:           now.Year(),
	})
	h.render(c, status, page)
}

func (h *Handlers) render(c *gin.Context, status int, node g.Node) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(c.Writer); err != nil {
		h.log.Error("error rendering page", logger.Error(err))
	}
}
