package dto

// StatusResponse は /status エンドポイントのレスポンスです。
// LastRefreshedAt はストアが空の場合にnullになります。
type StatusResponse struct {
	TotalCountries  int64   `json:"total_countries"`
	LastRefreshedAt *string `json:"last_refreshed_at"`
}

// ErrorResponse はエラー時の共通レスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は成功メッセージの共通レスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}
