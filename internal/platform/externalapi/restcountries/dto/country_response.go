// Package dto defines response types for the REST Countries API.
package dto

// CountryResponse はREST Countries APIの国1件分のレスポンスです。
type CountryResponse struct {
	Name       string             `json:"name"`
	Capital    string             `json:"capital"`
	Region     string             `json:"region"`
	Population int64              `json:"population"`
	Flag       string             `json:"flag"`
	Currencies []CurrencyResponse `json:"currencies"`
}

// CurrencyResponse は国が使用する通貨1件分のレスポンスです。
type CurrencyResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
