// Package restcountries provides a client for the REST Countries public API.
package restcountries

import (
	"os"
	"time"
)

const defaultBaseURL = "https://restcountries.com/v2"

// Config holds configuration for the REST Countries API client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://restcountries.com/v2")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads REST Countries configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("REST_COUNTRIES_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return Config{
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
	}
}
