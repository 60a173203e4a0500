package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"dashboard": map[string]any{
			"timeZone": "UTC",
			"topN":     10,
		},
		"telemetry": map[string]any{
			"enabled": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DASHBOARD_TIMEZONE", want: "dashboard.timeZone"},
		{envKey: "DASHBOARD_TOPN", want: "dashboard.topN"},
		{envKey: "TELEMETRY_ENABLED", want: "telemetry.enabled"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "UTC", cfg.Dashboard.TimeZone)
	assert.Equal(t, 10, cfg.Dashboard.TopN)
	assert.NotNil(t, cfg.Telemetry)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Store.SlowQueryThreshold)
	assert.Equal(t, defaultPoolMonitorEvery, cfg.Store.PoolMonitorInterval)
	assert.False(t, cfg.Store.AutoMigrate)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Dashboard: &DashboardConfig{TimeZone: "Asia/Kolkata", TopN: 5},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "Asia/Kolkata", cfg.Dashboard.TimeZone)
	assert.Equal(t, 5, cfg.Dashboard.TopN)
}
