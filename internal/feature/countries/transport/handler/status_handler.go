package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"country_backend/internal/feature/countries/transport/http/dto"
	"country_backend/internal/feature/countries/usecase"
)

// StatusUsecase はサービスステータス取得のインターフェースを定義します。
type StatusUsecase interface {
	GetStatus(ctx context.Context) (usecase.Status, error)
}

// StatusHandler は /status のHTTPリクエストを処理します。
type StatusHandler struct {
	uc StatusUsecase
}

// NewStatusHandler は新しい StatusHandler を作成します。
func NewStatusHandler(uc StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// Get は総件数と最終リフレッシュ時刻を返すAPIです。
//
// GET /status
// last_refreshed_at はISO-8601 UTC形式、ストアが空の場合はnullです。
func (h *StatusHandler) Get(c *gin.Context) {
	status, err := h.uc.GetStatus(c.Request.Context())
	if err != nil {
		slog.Error("failed to get status", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{
		TotalCountries:  status.TotalCountries,
		LastRefreshedAt: dto.FormatTime(status.LastRefreshedAt),
	})
}
