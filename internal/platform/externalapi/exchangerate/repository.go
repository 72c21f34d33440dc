package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"country_backend/internal/feature/countries/usecase"
	"country_backend/internal/platform/externalapi/exchangerate/dto"
)

// ExchangeRateSource はopen.er-api.comからUSD基準の為替レート表を取得するRateSource実装です。
type ExchangeRateSource struct {
	cfg    Config
	client *http.Client
}

// ExchangeRateSourceがRateSourceを実装していることをコンパイル時に検証します。
var _ usecase.RateSource = (*ExchangeRateSource)(nil)

// NewExchangeRateSource は指定された設定とHTTPクライアントでExchangeRateSourceの新しいインスタンスを生成します。
func NewExchangeRateSource(cfg Config, client *http.Client) *ExchangeRateSource {
	return &ExchangeRateSource{cfg: cfg, client: client}
}

// FetchRates は基準通貨に対する最新レート表（通貨コード→レート）を取得します。
// 到達不能・非2xx応答・デコード不能・プロバイダ側エラーはErrUpstreamUnavailableとして扱います。
func (s *ExchangeRateSource) FetchRates(ctx context.Context) (map[string]float64, error) {
	u := fmt.Sprintf("%s/latest/%s", s.cfg.BaseURL, s.cfg.BaseCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchangerate: %v: %w", err, usecase.ErrUpstreamUnavailable)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("exchangerate http %d: %w", res.StatusCode, usecase.ErrUpstreamUnavailable)
	}

	var body dto.ExchangeRateResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("exchangerate decode: %v: %w", err, usecase.ErrUpstreamUnavailable)
	}
	if body.Result == "error" {
		return nil, fmt.Errorf("exchangerate provider error: %w", usecase.ErrUpstreamUnavailable)
	}

	slog.Info("exchange rates fetched", "base", s.cfg.BaseCurrency,
		"count", len(body.Rates), "provider_updated", body.TimeLastUpdateUTC)

	if body.Rates == nil {
		return map[string]float64{}, nil
	}
	return body.Rates, nil
}
