// Package di provides dependency injection factories for creating application components.
package di

import (
	"net/http"

	"country_backend/internal/platform/externalapi/exchangerate"
	"country_backend/internal/platform/externalapi/restcountries"
)

// NewCountrySource creates a configured REST Countries client.
// The HTTP client is shared across fetchers and must be long-lived.
func NewCountrySource(client *http.Client) *restcountries.RestCountriesSource {
	return restcountries.NewRestCountriesSource(restcountries.LoadConfig(), client)
}

// NewRateSource creates a configured exchange rate client.
func NewRateSource(client *http.Client) *exchangerate.ExchangeRateSource {
	return exchangerate.NewExchangeRateSource(exchangerate.LoadConfig(), client)
}
