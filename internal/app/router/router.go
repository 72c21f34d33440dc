package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	countryhandler "country_backend/internal/feature/countries/transport/handler"
	platformhandler "country_backend/internal/platform/http/handler"
)

// NewRouter は全エンドポイントを登録したgin.Engineを生成します。
func NewRouter(country *countryhandler.CountryHandler, status *countryhandler.StatusHandler) *gin.Engine {
	r := gin.Default()

	// CORS追加
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	countries := r.Group("/countries")
	{
		// 外部ソースからの再取得・マージ
		countries.POST("/refresh", country.Refresh)
		// 一覧（region/currency/sortクエリ対応）
		countries.GET("", country.List)
		// サマリー画像（/countries/:name より静的パスが優先される）
		countries.GET("/image", country.Image)
		// 国名での取得・削除
		countries.GET("/:name", country.GetByName)
		countries.DELETE("/:name", country.Delete)
	}

	// サービスステータス
	r.GET("/status", status.Get)

	return r
}
