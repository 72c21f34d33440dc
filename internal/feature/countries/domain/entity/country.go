// Package entity はcountriesフィーチャーのドメインモデルを定義します。
package entity

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Country は外部APIから集約した国情報と為替レートの永続化エンティティです。
// ExchangeRate と EstimatedGDP は不明な場合に nil になるためポインタで保持します。
type Country struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
	// NameKey は正規化済みの国名（trim + 小文字化）です。
	// 大文字小文字だけが異なる重複行を防ぐため、ユニーク制約はこちらに張ります。
	NameKey         string   `gorm:"size:255;not null;uniqueIndex"`
	Capital         string   `gorm:"size:255"`
	Region          string   `gorm:"size:100"`
	Population      int64    `gorm:"not null;default:0"`
	CurrencyCode    string   `gorm:"size:10"`
	ExchangeRate    *float64 `gorm:"type:decimal(18,6)"`
	EstimatedGDP    *float64 `gorm:"column:estimated_gdp;type:decimal(24,2)"`
	FlagURL         string   `gorm:"size:512"`
	LastRefreshedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName はgormに使用させるテーブル名を明示します。
func (Country) TableName() string {
	return "countries"
}

// BeforeSave はNameKeyが未設定の場合にNameから導出します。
func (c *Country) BeforeSave(tx *gorm.DB) error {
	if c.NameKey == "" {
		c.NameKey = NormalizeName(c.Name)
	}
	return nil
}

// NormalizeName は国名をマージ・検索キー用に正規化します（trim + 小文字化）。
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
