package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultMeasurementID, cfg.Analytics.MeasurementID)
	assert.False(t, cfg.Analytics.Enabled())
	assert.Equal(t, "wa.me", cfg.WhatsApp.Host)
	assert.Equal(t, 7*24*time.Hour, cfg.CountdownWindow)
	assert.Equal(t, 800*time.Millisecond, cfg.Leads.SubmitDelay)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GA_MEASUREMENT_ID", "G-TEST123")
	t.Setenv("GA_API_SECRET", "secret")
	t.Setenv("WHATSAPP_NUMBER", "5511999999999")
	t.Setenv("SUBMIT_DELAY", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "G-TEST123", cfg.Analytics.MeasurementID)
	assert.True(t, cfg.Analytics.Enabled())
	assert.Equal(t, "5511999999999", cfg.WhatsApp.Number)
	assert.Equal(t, 2*time.Second, cfg.Leads.SubmitDelay)
}

func TestLoadConfig_EmptyMeasurementIDFallsBack(t *testing.T) {
	t.Setenv("GA_MEASUREMENT_ID", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultMeasurementID, cfg.Analytics.MeasurementID)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("SUBMIT_DELAY", "soon")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("non-positive window", func(t *testing.T) {
		t.Setenv("COUNTDOWN_WINDOW", "0s")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "COUNTDOWN_WINDOW")
	})
}
