package config

import (
	"os"
	"time"
)

// parseEnv overlays Config with values from environment variables.
//
// Recognized variables:
//
//	ADDRESS        — HTTP bind address
//	DATABASE_DSN   — PostgreSQL DSN
//	JWT_SECRET     — token signing secret
//	TOKEN_VALIDITY — token lifetime in time.ParseDuration format ("24h")
//
// Unset variables leave the current value untouched; an unparsable
// TOKEN_VALIDITY is ignored rather than aborting startup.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
