package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navarrastar/leadpage/pkg/clients/whatsapp"
	"github.com/navarrastar/leadpage/pkg/clock"
	"github.com/navarrastar/leadpage/pkg/clock/clocktest"
	"github.com/navarrastar/leadpage/pkg/components"
	"github.com/navarrastar/leadpage/pkg/middleware"
	"github.com/navarrastar/leadpage/pkg/phone"
	"github.com/navarrastar/leadpage/pkg/services"
)

var pageNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingTracker struct {
	mu          sync.Mutex
	pageViews   []string
	conversions []string
}

func (t *recordingTracker) TrackEvent(context.Context, string, map[string]any) {}

func (t *recordingTracker) TrackConversion(_ context.Context, action string, _ float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.conversions = append(t.conversions, action)
}

func (t *recordingTracker) TrackPageView(_ context.Context, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pageViews = append(t.pageViews, path)
}

func (t *recordingTracker) Close() {}

type testServer struct {
	router  *gin.Engine
	tracker *recordingTracker
}

func newTestServer(t *testing.T, rateBurst int) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	pageClock := clocktest.New(pageNow)
	tracker := &recordingTracker{}

	v, err := services.NewLeadValidator(phone.NewWhatsAppValidator())
	require.NoError(t, err)

	leads := services.NewLeadCaptureService(v, whatsapp.NewLinkBuilder("wa.me", "5565992934536"), tracker, clock.Real(), 10*time.Millisecond, log)
	countdown := services.NewCountdown(pageClock, services.DefaultCountdownWindow)
	h := NewHandlers(leads, countdown, tracker, pageClock, components.PageConfig{MeasurementID: "G-TEST"}, log)

	router := gin.New()
	static := fstest.MapFS{"js/landing.js": &fstest.MapFile{Data: []byte("// landing")}}
	RegisterRoutes(router, h, middleware.NewClientRateLimiter(60, rateBurst), static)

	return &testServer{router: router, tracker: tracker}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func validFormValues() url.Values {
	return url.Values{
		"name":            {"Ana Souza"},
		"whatsapp":        {"+55 65 92934536"},
		"company":         {"Souza & Filhos"},
		"challenge":       {"Atendimento manual"},
		"privacyAccepted": {"true"},
	}
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLandingPage(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `id="contact-form"`)
	assert.Contains(t, w.Body.String(), `data-unit="days">07<`)
	assert.Contains(t, w.Body.String(), "© 2026")
	assert.Equal(t, []string{"/"}, s.tracker.pageViews)
}

func TestSubmitContactForm_RedirectsToWhatsApp(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(postForm(validFormValues()))

	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "wa.me", loc.Host)
	assert.Equal(t, "/5565992934536", loc.Path)
	assert.Contains(t, loc.Query().Get("text"), "Souza & Filhos")
	assert.Equal(t, []string{services.ConversionAction}, s.tracker.conversions)
}

func TestSubmitContactForm_InvalidWhatsAppRerenders(t *testing.T) {
	s := newTestServer(t, 5)
	values := validFormValues()
	values.Set("whatsapp", "65 9293")
	values.Del("privacyAccepted")

	w := s.do(postForm(values))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `data-error-for="whatsapp"`)
	assert.Contains(t, body, `data-error-for="privacyPolicy"`)
	assert.Contains(t, body, `value="Ana Souza"`, "valid values survive the failed submit")
	assert.Empty(t, s.tracker.conversions)
}

func TestSubmitContactForm_MissingTextShowsToast(t *testing.T) {
	s := newTestServer(t, 5)
	values := validFormValues()
	values.Set("company", "")

	w := s.do(postForm(values))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "toast toast-error")
	assert.Empty(t, w.Header().Get("Location"))
	assert.Empty(t, s.tracker.conversions)
}

func TestSubmitLead_JSON(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(postJSON(`{"name":"Ana","whatsapp":"6592934536","company":"ACME","challenge":"Escalar vendas","privacyAccepted":true}`))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		State        string `json:"state"`
		DeepLink     string `json:"deepLink"`
		Notification struct {
			Kind string `json:"kind"`
		} `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "submitted", body.State)
	assert.True(t, strings.HasPrefix(body.DeepLink, "https://wa.me/5565992934536?text="))
	assert.Equal(t, "success", body.Notification.Kind)
}

func TestSubmitLead_ValidationErrors(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(postJSON(`{"name":"Ana","whatsapp":"abc","company":"ACME","challenge":"x","privacyAccepted":true}`))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		State  string            `json:"state"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "editing", body.State)
	assert.Equal(t, services.MsgInvalidWhatsApp, body.Errors["whatsapp"])
	assert.NotContains(t, body.Errors, "privacyPolicy")
}

func TestSubmitLead_MalformedJSON(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(postJSON(`{"name":`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitLead_RateLimited(t *testing.T) {
	s := newTestServer(t, 1)

	first := s.do(postJSON(`{}`))
	assert.Equal(t, http.StatusUnprocessableEntity, first.Code)

	second := s.do(postJSON(`{}`))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestCountdownEndpoint(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(httptest.NewRequest(http.MethodGet, "/api/countdown", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Remaining services.Remaining `json:"remaining"`
		Deadline  int64              `json:"deadline"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, services.Remaining{Days: 7}, body.Remaining)
	assert.Equal(t, pageNow.Add(services.DefaultCountdownWindow).UnixMilli(), body.Deadline)
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(httptest.NewRequest(http.MethodGet, "/static/js/landing.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "// landing", w.Body.String())
}
