// Package handler はcountriesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"country_backend/internal/feature/countries/domain/entity"
	"country_backend/internal/feature/countries/transport/http/dto"
	"country_backend/internal/feature/countries/usecase"
)

// CountryUsecase は国データの参照・削除のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CountryUsecase interface {
	List(ctx context.Context, filter usecase.ListFilter) ([]entity.Country, error)
	GetByName(ctx context.Context, name string) (*entity.Country, error)
	DeleteByName(ctx context.Context, name string) (bool, error)
}

// Refresher は外部ソースからのリフレッシュ処理のインターフェースを定義します。
type Refresher interface {
	Refresh(ctx context.Context) error
}

// CountryHandler は /countries 配下のHTTPリクエストを処理します。
type CountryHandler struct {
	uc        CountryUsecase
	refresher Refresher
	imagePath string
}

// NewCountryHandler は新しい CountryHandler を作成します。
// imagePathはサマリー画像の生成先パスです。
func NewCountryHandler(uc CountryUsecase, refresher Refresher, imagePath string) *CountryHandler {
	return &CountryHandler{uc: uc, refresher: refresher, imagePath: imagePath}
}

// Refresh は外部ソースからの再取得・マージを実行するAPIです。
//
// POST /countries/refresh
// 外部ソース到達不能の場合は503、それ以外の失敗は500を返します。
func (h *CountryHandler) Refresh(c *gin.Context) {
	if err := h.refresher.Refresh(c.Request.Context()); err != nil {
		slog.Error("refresh failed", "error", err)
		if errors.Is(err, usecase.ErrUpstreamUnavailable) {
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "external data source unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "countries refreshed successfully"})
}

// List は国一覧を取得するAPIです。
//
// GET /countries?region=&currency=&sort=
// フィルタ未指定は条件なし、未知のsort値は国名昇順として扱われます。
func (h *CountryHandler) List(c *gin.Context) {
	filter := usecase.ListFilter{
		Region:   c.Query("region"),
		Currency: c.Query("currency"),
		Sort:     c.Query("sort"),
	}

	countries, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("failed to list countries", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	out := make([]dto.CountryResponse, 0, len(countries))
	for _, country := range countries {
		out = append(out, dto.FromEntity(country))
	}
	c.JSON(http.StatusOK, out)
}

// GetByName は国名で1件取得するAPIです。照合は大文字小文字・前後空白を無視します。
//
// GET /countries/:name
func (h *CountryHandler) GetByName(c *gin.Context) {
	country, err := h.uc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, usecase.ErrCountryNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "country not found"})
			return
		}
		slog.Error("failed to get country", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*country))
}

// Delete は国名で1件削除するAPIです。対象が存在しない場合は404を返します。
//
// DELETE /countries/:name
func (h *CountryHandler) Delete(c *gin.Context) {
	deleted, err := h.uc.DeleteByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		slog.Error("failed to delete country", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "country not found"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "country deleted successfully"})
}

// Image は最後に生成されたサマリー画像を返すAPIです。未生成の場合は404です。
//
// GET /countries/image
func (h *CountryHandler) Image(c *gin.Context) {
	if _, err := os.Stat(h.imagePath); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "summary image not found"})
		return
	}
	c.Header("Content-Type", "image/png")
	c.File(h.imagePath)
}
