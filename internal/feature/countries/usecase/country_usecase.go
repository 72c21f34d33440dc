package usecase

import (
	"context"
	"time"

	"country_backend/internal/feature/countries/domain/entity"
)

// ListFilter は国一覧取得の絞り込み・並び替え条件です。
// 空文字のフィールドは条件なしとして扱います。
type ListFilter struct {
	Region   string
	Currency string
	Sort     string
}

// Status は件数と最終リフレッシュ時刻のスナップショットです。
// LastRefreshedAt はストアが空の場合にnilになります。
type Status struct {
	TotalCountries  int64
	LastRefreshedAt *time.Time
}

// CountryRepository abstracts the persistence layer for country data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CountryRepository interface {
	List(ctx context.Context, filter ListFilter) ([]entity.Country, error)
	FindByKey(ctx context.Context, nameKey string) (*entity.Country, error)
	DeleteByKey(ctx context.Context, nameKey string) (bool, error)
	Status(ctx context.Context) (Status, error)
}

// CountryUsecase は国データの参照・削除・ステータス取得のビジネスロジックを提供します。
type CountryUsecase struct {
	repo CountryRepository
}

// NewCountryUsecase は新しい CountryUsecase を作成します。
func NewCountryUsecase(repo CountryRepository) *CountryUsecase {
	return &CountryUsecase{repo: repo}
}

// List はフィルタ条件に一致する国の一覧を返します。
// 未知のソート指定はエラーにせず国名昇順にフォールバックします（adapters側で処理）。
func (u *CountryUsecase) List(ctx context.Context, filter ListFilter) ([]entity.Country, error) {
	return u.repo.List(ctx, filter)
}

// GetByName は国名で1件検索します。大文字小文字と前後の空白は無視します。
// 空白のみの名前、または一致なしの場合は ErrCountryNotFound を返します。
func (u *CountryUsecase) GetByName(ctx context.Context, name string) (*entity.Country, error) {
	key := entity.NormalizeName(name)
	if key == "" {
		return nil, ErrCountryNotFound
	}
	country, err := u.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotFound
	}
	return country, nil
}

// DeleteByName はGetByNameと同じ照合規則で1件削除します。
// 戻り値は行が削除されたかどうかです。空白のみの名前は常にfalseを返します。
func (u *CountryUsecase) DeleteByName(ctx context.Context, name string) (bool, error) {
	key := entity.NormalizeName(name)
	if key == "" {
		return false, nil
	}
	return u.repo.DeleteByKey(ctx, key)
}

// GetStatus は総件数と全行のlast_refreshed_atの最大値を返します。
func (u *CountryUsecase) GetStatus(ctx context.Context) (Status, error) {
	return u.repo.Status(ctx)
}
