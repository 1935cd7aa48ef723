package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args []string, fn func()) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"test"}, args...)
	defer func() { os.Args = oldArgs }()
	fn()
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, []string{"-a", ":9000", "-d", "postgres://flag", "-s", "flag-secret", "-t", "12"}, func() {
		var c Config
		c.LoadDefaults()
		parseFlags(&c)

		assert.Equal(t, ":9000", c.EndpointAddr)
		assert.Equal(t, "postgres://flag", c.DatabaseDSN)
		assert.Equal(t, "flag-secret", c.SecretKey)
		assert.Equal(t, 12*time.Hour, c.TokenValidityDuration)
	})
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	withArgs(t, nil, func() {
		var c Config
		c.LoadDefaults()
		parseFlags(&c)

		assert.Equal(t, ":3000", c.EndpointAddr)
		assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	})
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	withArgs(t, []string{"-unknown", "x", "-a", ":7000"}, func() {
		var c Config
		c.LoadDefaults()
		parseFlags(&c)

		assert.Equal(t, ":7000", c.EndpointAddr)
	})
}
