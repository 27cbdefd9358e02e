// Package api はHTTPハンドラーが共有するリクエスト/レスポンス型を定義します。
package api

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the uniform success-message payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries an issued JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest はレジ担当者アカウントの登録リクエストです。
// 元のレジ実装（register画面）と同じく確認用パスワードの一致を要求します。
type SignupRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest はログインリクエストです。
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProductRequest は商品の追加・編集リクエストです。
// Priceは"5.000"のような区切り付き文字列も受け付けるため文字列型です。
type ProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
	Stock int    `json:"stock" binding:"min=0"`
}

// ProductResponse は商品1件のレスポンスです。
type ProductResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Price          int    `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	Stock          int    `json:"stock"`
	Image          string `json:"image,omitempty"`
}

// CartAddRequest はカートへの商品追加リクエストです。
type CartAddRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Qty       int  `json:"qty" binding:"required,min=1"`
}

// CartLineResponse はカート1行のレスポンスです。
type CartLineResponse struct {
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Qty       int    `json:"qty"`
	LineTotal int    `json:"line_total"`
}

// CartResponse はカート全体のレスポンスです。
type CartResponse struct {
	Lines          []CartLineResponse `json:"lines"`
	Total          int                `json:"total"`
	TotalFormatted string             `json:"total_formatted"`
}

// CheckoutResponse は会計成功時のレスポンスです。
type CheckoutResponse struct {
	Invoice        string `json:"invoice"`
	Total          int    `json:"total"`
	TotalFormatted string `json:"total_formatted"`
	Receipt        string `json:"receipt"`
}

// SaleRowResponse は取引履歴1行の表示用レスポンスです。
type SaleRowResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Price          int    `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	Qty            int    `json:"qty"`
	Kasir          string `json:"kasir"`
	Waktu          string `json:"waktu"`
	Nota           string `json:"nota"`
}

// ReportSummaryResponse は集計サマリーのレスポンスです。
type ReportSummaryResponse struct {
	TotalSales          int    `json:"total_sales"`
	TotalSalesFormatted string `json:"total_sales_formatted"`
	ItemsSold           int    `json:"items_sold"`
	Transactions        int    `json:"transactions"`
}

// ReportResponse は取引レポートのレスポンスです。
type ReportResponse struct {
	Rows    []SaleRowResponse     `json:"rows"`
	Summary ReportSummaryResponse `json:"summary"`
}
