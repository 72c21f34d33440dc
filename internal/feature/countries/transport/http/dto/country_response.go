// Package dto はcountriesフィーチャーのHTTPレスポンス型を定義します。
package dto

import (
	"time"

	"country_backend/internal/feature/countries/domain/entity"
)

// timeFormat はAPIレスポンスのタイムスタンプ形式（ISO-8601 UTC）です。
const timeFormat = "2006-01-02T15:04:05Z"

// CountryResponse は国1件分のAPIレスポンスです。
type CountryResponse struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Capital         string   `json:"capital,omitempty"`
	Region          string   `json:"region,omitempty"`
	Population      int64    `json:"population"`
	CurrencyCode    string   `json:"currency_code"`
	ExchangeRate    *float64 `json:"exchange_rate"`
	EstimatedGDP    *float64 `json:"estimated_gdp"`
	FlagURL         string   `json:"flag_url,omitempty"`
	LastRefreshedAt string   `json:"last_refreshed_at"`
}

// FromEntity はドメインエンティティをレスポンスDTOに変換します。
func FromEntity(c entity.Country) CountryResponse {
	return CountryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Capital:         c.Capital,
		Region:          c.Region,
		Population:      c.Population,
		CurrencyCode:    c.CurrencyCode,
		ExchangeRate:    c.ExchangeRate,
		EstimatedGDP:    c.EstimatedGDP,
		FlagURL:         c.FlagURL,
		LastRefreshedAt: c.LastRefreshedAt.UTC().Format(timeFormat),
	}
}

// FormatTime は任意のタイムスタンプをレスポンス形式の文字列に変換します。
// nilの場合はnilを返します（JSONではnullになります）。
func FormatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(timeFormat)
	return &s
}
