package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"10s", 10 * time.Second, false},
		{"5m", 5 * time.Minute, false},
		{"10", 10 * time.Second, false},
		{`"1h"`, time.Hour, false},
		{"'30'", 30 * time.Second, false},
		{"", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	// Pin the envs the host may already have.
	t.Setenv("PORT", "3000")
	t.Setenv("JWT_TTL", "1h")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL.Duration())
	assert.NotEmpty(t, cfg.CORS.AllowOrigin)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("JWT_TTL", "0")
	_, err := Load()
	assert.Error(t, err)
}
