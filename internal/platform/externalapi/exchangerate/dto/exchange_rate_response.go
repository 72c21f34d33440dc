// Package dto defines response types for the exchange rate API.
package dto

// ExchangeRateResponse はopen.er-api.comの最新レートレスポンスです。
type ExchangeRateResponse struct {
	Result            string             `json:"result"`
	Rates             map[string]float64 `json:"rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
}
