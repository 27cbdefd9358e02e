package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"kasir_backend/internal/app/router"
	authadapters "kasir_backend/internal/feature/auth/adapters"
	authhandler "kasir_backend/internal/feature/auth/transport/handler"
	authusecase "kasir_backend/internal/feature/auth/usecase"
	catalogadapters "kasir_backend/internal/feature/catalog/adapters"
	cataloghandler "kasir_backend/internal/feature/catalog/transport/handler"
	catalogusecase "kasir_backend/internal/feature/catalog/usecase"
	checkoutadapters "kasir_backend/internal/feature/checkout/adapters"
	checkouthandler "kasir_backend/internal/feature/checkout/transport/handler"
	checkoutusecase "kasir_backend/internal/feature/checkout/usecase"
	reportadapters "kasir_backend/internal/feature/report/adapters"
	reporthandler "kasir_backend/internal/feature/report/transport/handler"
	reportusecase "kasir_backend/internal/feature/report/usecase"
	"kasir_backend/internal/platform/clock"
	platformdb "kasir_backend/internal/platform/db"
	jwtmw "kasir_backend/internal/platform/jwt"
)

// tokenExpiration はログイントークンの有効期間です。
const tokenExpiration = 12 * time.Hour

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := platformdb.OpenDB()

	// 現地時刻（WIB）
	clk := clock.New()

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtmw.NewGenerator(secret, tokenExpiration)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	productRepo := catalogadapters.NewProductGorm(db)
	cartStore := checkoutadapters.NewCartMemory()
	checkoutCatalog := checkoutadapters.NewCatalogGorm(db)
	saleStore := checkoutadapters.NewSaleGorm(db)
	historyRepo := reportadapters.NewHistoryGorm(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	catalogUC := catalogusecase.NewCatalogUsecase(productRepo)
	parseWaktu := func(s string) (time.Time, bool) {
		return clock.ParseTimestamp(s, clk.Location())
	}
	checkoutUC := checkoutusecase.NewCheckoutUsecase(cartStore, checkoutCatalog, saleStore, clk, parseWaktu)
	reportUC := reportusecase.NewReportUsecase(historyRepo, clk)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	checkoutH := checkouthandler.NewCheckoutHandler(checkoutUC)
	reportH := reporthandler.NewReportHandler(reportUC, clk)

	// ルータ生成
	r := router.NewRouter(authH, catalogH, checkoutH, reportH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
