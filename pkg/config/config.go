package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultMeasurementID is used when GA_MEASUREMENT_ID is not set.
const DefaultMeasurementID = "G-XXXXXXXXXX"

// Config holds all application configuration values
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"debug"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Analytics AnalyticsConfig
	WhatsApp  WhatsAppConfig
	Leads     LeadsConfig

	// Length of the rolling offer deadline
	CountdownWindow time.Duration `env:"COUNTDOWN_WINDOW" envDefault:"168h"`
}

// AnalyticsConfig holds the GA4 Measurement Protocol settings
type AnalyticsConfig struct {
	MeasurementID string `env:"GA_MEASUREMENT_ID" envDefault:"G-XXXXXXXXXX"`
	// Without an API secret events are only logged
	APISecret string        `env:"GA_API_SECRET"`
	Endpoint  string        `env:"GA_ENDPOINT" envDefault:"https://www.google-analytics.com/mp/collect"`
	Timeout   time.Duration `env:"GA_TIMEOUT" envDefault:"5s"`
	Currency  string        `env:"GA_CURRENCY" envDefault:"BRL"`
}

// Enabled reports whether events should be sent upstream
func (a AnalyticsConfig) Enabled() bool {
	return a.APISecret != ""
}

// WhatsAppConfig holds the lead hand-off destination
type WhatsAppConfig struct {
	Host   string `env:"WHATSAPP_HOST" envDefault:"wa.me"`
	Number string `env:"WHATSAPP_NUMBER" envDefault:"5565992934536"`
}

// LeadsConfig tunes the contact form endpoints
type LeadsConfig struct {
	SubmitDelay   time.Duration `env:"SUBMIT_DELAY" envDefault:"800ms"`
	RatePerMinute int           `env:"CONTACT_RATE_PER_MINUTE" envDefault:"10"`
	RateBurst     int           `env:"CONTACT_RATE_BURST" envDefault:"3"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if cfg.Analytics.MeasurementID == "" {
		cfg.Analytics.MeasurementID = DefaultMeasurementID
	}
	if cfg.CountdownWindow <= 0 {
		return nil, fmt.Errorf("COUNTDOWN_WINDOW must be positive, got %s", cfg.CountdownWindow)
	}
	if cfg.Leads.RatePerMinute <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive, got %d", cfg.Leads.RatePerMinute)
	}
	return cfg, nil
}
