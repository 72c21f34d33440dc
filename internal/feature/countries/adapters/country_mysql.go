// Package adapters はcountriesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"country_backend/internal/feature/countries/domain/entity"
	"country_backend/internal/feature/countries/usecase"
)

// countryMySQL はCountryRepository/CountryWriterインターフェースのMySQL実装です。
type countryMySQL struct {
	db *gorm.DB
}

var (
	_ usecase.CountryRepository = (*countryMySQL)(nil)
	_ usecase.CountryWriter     = (*countryMySQL)(nil)
)

// NewCountryRepository は指定されたDB接続でcountryMySQLリポジトリの新しいインスタンスを生成します。
func NewCountryRepository(db *gorm.DB) *countryMySQL {
	return &countryMySQL{db: db}
}

// upsertColumns はname_key衝突時に上書きするカラムです。
// created_at は初回INSERTの値を保持するため含めません。
var upsertColumns = []string{
	"name", "capital", "region", "population", "currency_code",
	"exchange_rate", "estimated_gdp", "flag_url", "last_refreshed_at", "updated_at",
}

// UpsertBatch は取得済みの国データを1ステートメントで一括upsertします。
// 正規化済み国名（name_key）が衝突した場合は既存行の全データフィールドを上書きします。
func (r *countryMySQL) UpsertBatch(ctx context.Context, countries []entity.Country) error {
	if len(countries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name_key"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(&countries).Error
}

// List はフィルタ条件に一致する国を指定の並び順で返します。
func (r *countryMySQL) List(ctx context.Context, filter usecase.ListFilter) ([]entity.Country, error) {
	q := r.db.WithContext(ctx).Model(&entity.Country{})
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}
	if filter.Currency != "" {
		q = q.Where("currency_code = ?", filter.Currency)
	}

	var countries []entity.Country
	if err := q.Order(orderClause(filter.Sort)).Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// orderClause はソート指定をORDER BY句に変換します。
// GDPソートはNULLを常に末尾に置きます。未知の値は国名昇順にフォールバックします。
func orderClause(sort string) string {
	switch strings.ToLower(sort) {
	case "gdp_desc":
		return "estimated_gdp IS NULL, estimated_gdp DESC"
	case "gdp_asc":
		return "estimated_gdp IS NULL, estimated_gdp ASC"
	case "population_desc":
		return "population DESC"
	case "population_asc":
		return "population ASC"
	case "name_desc":
		return "name DESC"
	default:
		return "name ASC"
	}
}

// FindByKey は正規化済み国名で1件検索します。一致なしの場合は (nil, nil) を返します。
func (r *countryMySQL) FindByKey(ctx context.Context, nameKey string) (*entity.Country, error) {
	var country entity.Country
	err := r.db.WithContext(ctx).Where("name_key = ?", nameKey).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// DeleteByKey は正規化済み国名で1件削除し、行が削除されたかどうかを返します。
func (r *countryMySQL) DeleteByKey(ctx context.Context, nameKey string) (bool, error) {
	result := r.db.WithContext(ctx).Where("name_key = ?", nameKey).Delete(&entity.Country{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Status は総件数とlast_refreshed_atの最大値を返します。
// ストアが空の場合、LastRefreshedAtはnilです。
func (r *countryMySQL) Status(ctx context.Context) (usecase.Status, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Country{}).Count(&total).Error; err != nil {
		return usecase.Status{}, err
	}

	status := usecase.Status{TotalCountries: total}
	if total == 0 {
		return status, nil
	}

	// 最大値は最新行から取る
	var latest entity.Country
	if err := r.db.WithContext(ctx).
		Order("last_refreshed_at DESC").
		First(&latest).Error; err != nil {
		return usecase.Status{}, err
	}
	t := latest.LastRefreshedAt.UTC()
	status.LastRefreshedAt = &t
	return status, nil
}

// TopByGDP は推定GDPの降順で上位limit件を返します。GDPがNULLの行は除外します。
func (r *countryMySQL) TopByGDP(ctx context.Context, limit int) ([]entity.Country, error) {
	var countries []entity.Country
	if err := r.db.WithContext(ctx).
		Where("estimated_gdp IS NOT NULL").
		Order("estimated_gdp DESC").
		Limit(limit).
		Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}
