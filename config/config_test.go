package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseConfigDefaults tests the fallbacks applied when the yaml omits
// the timing settings
func TestParseConfigDefaults(t *testing.T) {
	v := viper.New()
	v.Set("server.port", "8080")

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.App.ReminderInterval)
	assert.Equal(t, time.Minute, cfg.App.ReportCacheTTL)
}

// TestParseConfigExplicitValues tests that configured values win over the
// fallbacks
func TestParseConfigExplicitValues(t *testing.T) {
	v := viper.New()
	v.Set("server.timeout", "15s")
	v.Set("app.reminder_interval", "1m")
	v.Set("app.report_cache_ttl", "10s")

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, time.Minute, cfg.App.ReminderInterval)
	assert.Equal(t, 10*time.Second, cfg.App.ReportCacheTTL)
}
