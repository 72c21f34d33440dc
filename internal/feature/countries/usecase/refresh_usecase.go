package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/sync/singleflight"

	"country_backend/internal/feature/countries/domain/entity"
)

const (
	usdCode = "USD"

	// 推定GDPの乱数係数の範囲（両端含む）
	gdpMultiplierMin = 1000
	gdpMultiplierMax = 2000
)

// CountrySource は外部APIから全世界の国リストを取得するインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CountrySource interface {
	FetchAll(ctx context.Context) ([]entity.SourceCountry, error)
}

// RateSource はUSD基準の為替レート表（通貨コード→レート）を取得するインターフェイスです。
type RateSource interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// CountryWriter は取得済みデータの一括upsertを抽象化します。
type CountryWriter interface {
	UpsertBatch(ctx context.Context, countries []entity.Country) error
}

// SummaryReporter はサマリー画像の生成を抽象化します。
// 生成失敗はリフレッシュ処理を失敗させません。
type SummaryReporter interface {
	Generate(ctx context.Context) error
}

// RefreshUsecase は2つの外部ソースから最新データを取得し、
// 正規化済み国名をキーにDBへマージするリコンシリエーション処理を定義します。
type RefreshUsecase struct {
	countries CountrySource
	rates     RateSource
	repo      CountryWriter
	reporter  SummaryReporter

	// Seed はリフレッシュ1回ごとの乱数生成器のシードを返します。
	// テストでは固定値を返す関数に差し替えて再現性を確保できます。
	Seed func() int64

	sf singleflight.Group
}

// NewRefreshUsecase は新しい RefreshUsecase を作成します。
func NewRefreshUsecase(countries CountrySource, rates RateSource, repo CountryWriter, reporter SummaryReporter) *RefreshUsecase {
	return &RefreshUsecase{
		countries: countries,
		rates:     rates,
		repo:      repo,
		reporter:  reporter,
		Seed:      func() int64 { return time.Now().UnixNano() },
	}
}

// Refresh は同時に1つのリフレッシュだけが走るようsingleflightで直列化します。
// 実行中に呼ばれた場合は進行中のリフレッシュの結果を共有します。
// 開始後はコンテキストを切り離し、最初の呼び出し元の切断が
// 結果を共有する他の呼び出しまで失敗させないようにします。
// 実行時間の上限は外部APIクライアント側のタイムアウトに委ねます。
func (u *RefreshUsecase) Refresh(ctx context.Context) error {
	_, err, _ := u.sf.Do("refresh", func() (any, error) {
		return nil, u.refresh(context.WithoutCancel(ctx))
	})
	return err
}

// refresh は取得→変換→一括upsert→サマリー生成を1回実行します。
// どちらかの外部ソースの失敗で全体を中断します（部分マージはしない）。
func (u *RefreshUsecase) refresh(ctx context.Context) error {
	start := time.Now().UTC()

	fetched, err := u.countries.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch countries: %w", err)
	}

	rates, err := u.rates.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("fetch exchange rates: %w", err)
	}

	// 乱数生成器はリフレッシュ1回ごとに生成（リクエスト間で共有しない）
	rng := rand.New(rand.NewSource(u.Seed()))

	batch := make([]entity.Country, 0, len(fetched))
	for _, src := range fetched {
		code := firstCurrencyCode(src.CurrencyCodes)
		rate := resolveRate(code, rates)
		batch = append(batch, entity.Country{
			Name:            src.Name,
			NameKey:         entity.NormalizeName(src.Name),
			Capital:         src.Capital,
			Region:          src.Region,
			Population:      src.Population,
			CurrencyCode:    code,
			ExchangeRate:    rate,
			EstimatedGDP:    estimateGDP(src.Population, rate, rng),
			FlagURL:         src.FlagURL,
			LastRefreshedAt: start,
			CreatedAt:       start,
			UpdatedAt:       start,
		})
	}

	if err := u.repo.UpsertBatch(ctx, batch); err != nil {
		return fmt.Errorf("persist countries: %w", err)
	}

	// サマリー画像はベストエフォート。失敗してもリフレッシュは成功扱い。
	if err := u.reporter.Generate(ctx); err != nil {
		slog.Error("failed to generate summary image", "error", err)
	}

	slog.Info("countries refreshed", "count", len(batch), "duration", time.Since(start))
	return nil
}

// firstCurrencyCode は通貨リストの先頭コードを返します。リストが空なら空文字列です。
func firstCurrencyCode(codes []string) string {
	if len(codes) == 0 {
		return ""
	}
	return codes[0]
}

// resolveRate は通貨コードからUSD基準レートを決定します。
// コードが空またはUSDなら1、レート表に無いコードならnil（エラーにはしない）を返します。
func resolveRate(code string, rates map[string]float64) *float64 {
	if code == "" || code == usdCode {
		one := 1.0
		return &one
	}
	if r, ok := rates[code]; ok {
		return &r
	}
	return nil
}

// estimateGDP は population * R / rate を計算します。Rは[1000, 2000]の一様乱数です。
// レートが不明またはゼロの場合はnilを返します。
func estimateGDP(population int64, rate *float64, rng *rand.Rand) *float64 {
	if rate == nil || *rate == 0 {
		return nil
	}
	multiplier := float64(rng.Intn(gdpMultiplierMax-gdpMultiplierMin+1) + gdpMultiplierMin)
	gdp := float64(population) * multiplier / *rate
	return &gdp
}
