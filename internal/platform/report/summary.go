// Package report はストアのスナップショットをサマリー画像として描画します。
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"country_backend/internal/feature/countries/domain/entity"
	"country_backend/internal/feature/countries/usecase"
)

const (
	imageWidth  = 600
	imageHeight = 400
	imageName   = "summary.png"

	// サマリーに載せる推定GDP上位の件数
	topCount = 5
)

// SnapshotSource はサマリー描画に必要なストアのスナップショットを取得するインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (report), not the provider (adapters).
type SnapshotSource interface {
	Status(ctx context.Context) (usecase.Status, error)
	TopByGDP(ctx context.Context, limit int) ([]entity.Country, error)
}

// SummaryImageReporter は件数・最終リフレッシュ時刻・GDP上位5件を
// 固定レイアウトのPNGとしてキャッシュディレクトリに書き出すSummaryReporter実装です。
type SummaryImageReporter struct {
	source SnapshotSource
	dir    string
}

var _ usecase.SummaryReporter = (*SummaryImageReporter)(nil)

// NewSummaryImageReporter は指定された出力ディレクトリでレポーターを生成します。
func NewSummaryImageReporter(source SnapshotSource, dir string) *SummaryImageReporter {
	return &SummaryImageReporter{source: source, dir: dir}
}

// ImagePath は生成物のパスを返します。ファイルはリフレッシュ成功のたびに上書きされます。
func (r *SummaryImageReporter) ImagePath() string {
	return filepath.Join(r.dir, imageName)
}

// Generate はスナップショットを取得してサマリーPNGを描画・保存します。
// GDP上位が0件でもエラーにはなりません（エントリなしで描画します）。
// エラーの握りつぶしは呼び出し側（リフレッシュ処理）の責務です。
func (r *SummaryImageReporter) Generate(ctx context.Context) error {
	status, err := r.source.Status(ctx)
	if err != nil {
		return fmt.Errorf("load status: %w", err)
	}
	top, err := r.source.TopByGDP(ctx, topCount)
	if err != nil {
		return fmt.Errorf("load top countries: %w", err)
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	// 白背景
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	y := 30.0
	dc.DrawString("Country Currency API Summary", 20, y)
	y += 35
	dc.DrawString(fmt.Sprintf("Total Countries: %d", status.TotalCountries), 20, y)
	y += 25
	last := "N/A"
	if status.LastRefreshedAt != nil {
		last = status.LastRefreshedAt.Format("2006-01-02 15:04:05 UTC")
	}
	dc.DrawString("Last Refreshed: "+last, 20, y)
	y += 35
	dc.DrawString(fmt.Sprintf("Top %d Countries by GDP:", topCount), 20, y)
	y += 25

	for i, c := range top {
		dc.SetRGB(0, 0, 0)
		dc.DrawString(fmt.Sprintf("%d. %s", i+1, c.Name), 30, y)
		y += 16
		gdpText := "N/A"
		if c.EstimatedGDP != nil {
			gdpText = fmt.Sprintf("%.2f", *c.EstimatedGDP)
		}
		// GDPの行は濃い青
		dc.SetRGB(0, 0, 0.55)
		dc.DrawString("GDP: $"+gdpText, 30, y)
		y += 24
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := dc.SavePNG(r.ImagePath()); err != nil {
		return fmt.Errorf("save summary image: %w", err)
	}
	return nil
}
