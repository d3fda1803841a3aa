package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSOrigins_DefaultWhenUnset(t *testing.T) {
	cfg := Config{}

	assert.Equal(t,
		[]string{"http://localhost:3000", "http://127.0.0.1:3000"},
		cfg.CORSOrigins())
}

func TestCORSOrigins_SplitsAndTrims(t *testing.T) {
	cfg := Config{FrontendURL: "https://app.example.com, https://staging.example.com"}

	assert.Equal(t,
		[]string{"https://app.example.com", "https://staging.example.com"},
		cfg.CORSOrigins())
}

func TestCORSOrigins_SingleOrigin(t *testing.T) {
	cfg := Config{FrontendURL: "https://app.example.com"}

	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSOrigins())
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		DBHost: "db",
		DBPort: "5432",
		DBUser: "postgres",
		DBPass: "secret",
		DBName: "travelbuddy",
	}

	assert.Equal(t,
		"host=db user=postgres password=secret dbname=travelbuddy port=5432 sslmode=disable",
		cfg.PostgresDSN())
}
