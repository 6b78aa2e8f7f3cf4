package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_page_views_total",
		Help: "Total number of rendered landing pages",
	}, []string{"path"})

	LeadSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_lead_submissions_total",
		Help: "Lead form submissions by outcome",
	}, []string{"channel", "outcome"})

	LeadFieldErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_lead_field_errors_total",
		Help: "Field-level validation errors raised by the lead form",
	}, []string{"field"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_rate_limited_requests_total",
		Help: "Requests rejected by the per-client rate limiter",
	}, []string{"route"})

	CountdownRenewals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landing_countdown_renewals_total",
		Help: "Times the offer deadline rolled over to a new window",
	})
)

// Outcome labels for LeadSubmissions.
const (
	OutcomeSubmitted  = "submitted"
	OutcomeInvalid    = "invalid"
	OutcomeMissing    = "missing"
	OutcomeBadRequest = "bad_request"
	OutcomeAbandoned  = "abandoned"
)
