package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"country_backend/internal/app/di"
	"country_backend/internal/app/router"
	"country_backend/internal/feature/countries/adapters"
	countryhandler "country_backend/internal/feature/countries/transport/handler"
	"country_backend/internal/feature/countries/usecase"
	infradb "country_backend/internal/platform/db"
	infrahttp "country_backend/internal/platform/http"
	"country_backend/internal/platform/report"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// 外部APIクライアント（HTTPクライアントはプロセスで1つを共有）
	httpClient := infrahttp.NewHTTPClient(30 * time.Second)
	countrySource := di.NewCountrySource(httpClient)
	rateSource := di.NewRateSource(httpClient)

	// Repository
	countryRepo := adapters.NewCountryRepository(db)

	// サマリー画像レポーター
	cacheDir := os.Getenv("CACHE_DIR")
	if cacheDir == "" {
		cacheDir = "cache"
	}
	reporter := report.NewSummaryImageReporter(countryRepo, cacheDir)

	// Usecase
	countryUC := usecase.NewCountryUsecase(countryRepo)
	refreshUC := usecase.NewRefreshUsecase(countrySource, rateSource, countryRepo, reporter)

	// Handler
	countryH := countryhandler.NewCountryHandler(countryUC, refreshUC, reporter.ImagePath())
	statusH := countryhandler.NewStatusHandler(countryUC)

	// ルータ生成
	router := router.NewRouter(countryH, statusH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
