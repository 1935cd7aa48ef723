package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesSetValues(t *testing.T) {
	t.Setenv("ADDRESS", ":8081")
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_VALIDITY", "1h30m")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":8081", c.EndpointAddr)
	assert.Equal(t, "postgres://env", c.DatabaseDSN)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 90*time.Minute, c.TokenValidityDuration)
}

func TestParseEnv_UnsetLeavesDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":3000", c.EndpointAddr)
	assert.Equal(t, "change-me-in-production", c.SecretKey)
}

func TestParseEnv_InvalidDurationIgnored(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
}
