package router

import (
	authhandler "kasir_backend/internal/feature/auth/transport/handler"
	cataloghandler "kasir_backend/internal/feature/catalog/transport/handler"
	checkouthandler "kasir_backend/internal/feature/checkout/transport/handler"
	reporthandler "kasir_backend/internal/feature/report/transport/handler"
	"kasir_backend/internal/interface/handler"
	jwtmw "kasir_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, catalog *cataloghandler.CatalogHandler,
	checkout *checkouthandler.CheckoutHandler, report *reporthandler.ReportHandler) *gin.Engine {
	r := gin.Default()

	// CORS追加（レジ画面は別オリジンのSPA）
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規レジ担当者登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		// 商品管理
		auth.GET("/products", catalog.List)
		auth.POST("/products", catalog.Create)
		auth.PUT("/products/:id", catalog.Update)
		auth.POST("/products/:id/image", catalog.UploadImage)
		auth.DELETE("/products/:id", catalog.Delete)
		auth.DELETE("/products", catalog.Reset)

		// カートと会計
		auth.GET("/cart", checkout.ViewCart)
		auth.POST("/cart/items", checkout.AddItem)
		auth.DELETE("/cart/items/:index", checkout.RemoveItem)
		auth.DELETE("/cart", checkout.ClearCart)
		auth.POST("/checkout", checkout.Checkout)
		// 伝票番号はスラッシュを含むためワイルドカードで受ける
		auth.GET("/receipts/*nota", checkout.Receipt)

		// レポート
		auth.GET("/reports", report.Report)
		auth.GET("/reports/export", report.Export)
	}

	return r
}
