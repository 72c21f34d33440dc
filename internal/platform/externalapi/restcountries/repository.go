package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"country_backend/internal/feature/countries/domain/entity"
	"country_backend/internal/feature/countries/usecase"
	"country_backend/internal/platform/externalapi/restcountries/dto"
)

// fetchFields は取得するフィールドを必要な分だけに絞るクエリパラメータです。
const fetchFields = "name,capital,region,population,flag,currencies"

// RestCountriesSource はREST Countries外部APIから国データを取得するCountrySource実装です。
type RestCountriesSource struct {
	cfg    Config
	client *http.Client
}

// RestCountriesSourceがCountrySourceを実装していることをコンパイル時に検証します。
var _ usecase.CountrySource = (*RestCountriesSource)(nil)

// NewRestCountriesSource は指定された設定とHTTPクライアントでRestCountriesSourceの新しいインスタンスを生成します。
func NewRestCountriesSource(cfg Config, client *http.Client) *RestCountriesSource {
	return &RestCountriesSource{cfg: cfg, client: client}
}

// FetchAll はREST Countries APIから全世界の国リストを取得し、
// entity.SourceCountryのスライスとして返します。
// 到達不能・非2xx応答・デコード不能な応答はErrUpstreamUnavailableとして扱います。
func (s *RestCountriesSource) FetchAll(ctx context.Context) ([]entity.SourceCountry, error) {
	q := url.Values{}
	q.Set("fields", fetchFields)
	u := fmt.Sprintf("%s/all?%s", s.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restcountries: %v: %w", err, usecase.ErrUpstreamUnavailable)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("restcountries http %d: %w", res.StatusCode, usecase.ErrUpstreamUnavailable)
	}

	var body []dto.CountryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("restcountries decode: %v: %w", err, usecase.ErrUpstreamUnavailable)
	}

	countries := make([]entity.SourceCountry, 0, len(body))
	for _, c := range body {
		// 通貨はコードのみ保持。先頭通貨の選択はusecase側で行う。
		codes := make([]string, 0, len(c.Currencies))
		for _, cur := range c.Currencies {
			codes = append(codes, cur.Code)
		}
		countries = append(countries, entity.SourceCountry{
			Name:          c.Name,
			Capital:       c.Capital,
			Region:        c.Region,
			Population:    c.Population,
			FlagURL:       c.Flag,
			CurrencyCodes: codes,
		})
	}
	return countries, nil
}
