// Package exchangerate provides a client for the open.er-api.com exchange rate API.
package exchangerate

import (
	"os"
	"time"
)

const defaultBaseURL = "https://open.er-api.com/v6"

// Config holds configuration for the exchange rate API client.
type Config struct {
	BaseURL      string        // Base URL for the API (e.g., "https://open.er-api.com/v6")
	BaseCurrency string        // Currency all rates are relative to
	Timeout      time.Duration // HTTP request timeout
}

// LoadConfig loads exchange rate API configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("EXCHANGE_RATE_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return Config{
		BaseURL:      baseURL,
		BaseCurrency: "USD",
		Timeout:      30 * time.Second,
	}
}
