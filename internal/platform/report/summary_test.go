package report_test

import (
	"context"
	"errors"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country_backend/internal/feature/countries/domain/entity"
	"country_backend/internal/feature/countries/usecase"
	"country_backend/internal/platform/report"
)

// mockSnapshotSource はSnapshotSourceインターフェースのモック実装です。
type mockSnapshotSource struct {
	StatusFunc   func(ctx context.Context) (usecase.Status, error)
	TopByGDPFunc func(ctx context.Context, limit int) ([]entity.Country, error)
}

func (m *mockSnapshotSource) Status(ctx context.Context) (usecase.Status, error) {
	return m.StatusFunc(ctx)
}

func (m *mockSnapshotSource) TopByGDP(ctx context.Context, limit int) ([]entity.Country, error) {
	return m.TopByGDPFunc(ctx, limit)
}

func fptr(f float64) *float64 { return &f }

// TestSummaryImageReporter_Generate はPNGが生成されデコード可能であることを検証します。
func TestSummaryImageReporter_Generate(t *testing.T) {
	t.Parallel()

	last := time.Date(2025, 10, 28, 7, 0, 0, 0, time.UTC)
	source := &mockSnapshotSource{
		StatusFunc: func(ctx context.Context) (usecase.Status, error) {
			return usecase.Status{TotalCountries: 3, LastRefreshedAt: &last}, nil
		},
		TopByGDPFunc: func(ctx context.Context, limit int) ([]entity.Country, error) {
			assert.Equal(t, 5, limit)
			return []entity.Country{
				{Name: "France", EstimatedGDP: fptr(9e10)},
				{Name: "Brazil", EstimatedGDP: fptr(3e10)},
				{Name: "Japan", EstimatedGDP: fptr(1e10)},
			}, nil
		},
	}
	reporter := report.NewSummaryImageReporter(source, t.TempDir())

	err := reporter.Generate(context.Background())

	require.NoError(t, err)

	f, err := os.Open(reporter.ImagePath())
	require.NoError(t, err, "summary image must exist")
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	require.NoError(t, err, "artifact must be a valid PNG")
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

// TestSummaryImageReporter_Generate_EmptyStore はGDP上位0件・空ストアでも
// エラーにならないことを検証します。
func TestSummaryImageReporter_Generate_EmptyStore(t *testing.T) {
	t.Parallel()

	source := &mockSnapshotSource{
		StatusFunc: func(ctx context.Context) (usecase.Status, error) {
			return usecase.Status{TotalCountries: 0}, nil
		},
		TopByGDPFunc: func(ctx context.Context, limit int) ([]entity.Country, error) {
			return nil, nil
		},
	}
	reporter := report.NewSummaryImageReporter(source, t.TempDir())

	err := reporter.Generate(context.Background())

	require.NoError(t, err)
	_, err = os.Stat(reporter.ImagePath())
	assert.NoError(t, err)
}

// TestSummaryImageReporter_Generate_SourceError はスナップショット取得失敗が
// エラーとして返ることを検証します（握りつぶすのは呼び出し側）。
func TestSummaryImageReporter_Generate_SourceError(t *testing.T) {
	t.Parallel()

	source := &mockSnapshotSource{
		StatusFunc: func(ctx context.Context) (usecase.Status, error) {
			return usecase.Status{}, errors.New("database connection failed")
		},
		TopByGDPFunc: func(ctx context.Context, limit int) ([]entity.Country, error) {
			return nil, nil
		},
	}
	reporter := report.NewSummaryImageReporter(source, t.TempDir())

	err := reporter.Generate(context.Background())

	assert.Error(t, err)
	_, statErr := os.Stat(reporter.ImagePath())
	assert.True(t, os.IsNotExist(statErr), "no artifact must be written on failure")
}

// TestSummaryImageReporter_Generate_Overwrite は2回目の生成で上書きされることを検証します。
func TestSummaryImageReporter_Generate_Overwrite(t *testing.T) {
	t.Parallel()

	total := int64(1)
	source := &mockSnapshotSource{
		StatusFunc: func(ctx context.Context) (usecase.Status, error) {
			return usecase.Status{TotalCountries: total}, nil
		},
		TopByGDPFunc: func(ctx context.Context, limit int) ([]entity.Country, error) {
			return nil, nil
		},
	}
	reporter := report.NewSummaryImageReporter(source, t.TempDir())

	require.NoError(t, reporter.Generate(context.Background()))
	info1, err := os.Stat(reporter.ImagePath())
	require.NoError(t, err)

	total = 2
	require.NoError(t, reporter.Generate(context.Background()))
	info2, err := os.Stat(reporter.ImagePath())
	require.NoError(t, err)

	// 同じパスに書き戻される
	assert.Equal(t, info1.Name(), info2.Name())
}
