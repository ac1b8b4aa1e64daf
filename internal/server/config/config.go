// Package config loads the development server configuration from the
// environment.
package config

import (
	"os"
	"time"
)

type Config struct {
	Addr       string
	JWTSecret  string
	TokenTTL   time.Duration
	CORSOrigin string
}

func Load() *Config {
	return &Config{
		Addr:       getEnv("PLANMATE_ADDR", ":8080"),
		JWTSecret:  getEnv("PLANMATE_JWT_SECRET", "planmate-dev-secret-change-in-production"),
		TokenTTL:   getDuration("PLANMATE_TOKEN_TTL", 24*time.Hour),
		CORSOrigin: getEnv("PLANMATE_CORS_ORIGIN", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
