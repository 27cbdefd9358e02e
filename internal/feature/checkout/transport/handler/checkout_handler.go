// Package handler はcheckoutフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kasir_backend/internal/api"
	"kasir_backend/internal/feature/checkout/domain/entity"
	"kasir_backend/internal/feature/checkout/receipt"
	"kasir_backend/internal/feature/checkout/usecase"
	jwtmw "kasir_backend/internal/platform/jwt"
	"kasir_backend/internal/platform/money"
)

// CheckoutUsecase は会計のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CheckoutUsecase interface {
	AddToCart(ctx context.Context, operator string, productID uint, qty int) (entity.CartLine, error)
	ViewCart(operator string) ([]entity.CartLine, int)
	RemoveFromCart(operator string, index int) error
	ClearCart(operator string)
	Checkout(ctx context.Context, operator string) (*receipt.Receipt, error)
	Receipt(ctx context.Context, nota string) (*receipt.Receipt, error)
}

// CheckoutHandler はカート操作と会計のHTTPリクエストを処理します。
type CheckoutHandler struct {
	uc CheckoutUsecase
}

// NewCheckoutHandler は指定されたusecaseでCheckoutHandlerの新しいインスタンスを生成します。
func NewCheckoutHandler(uc CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// operator は認証済みリクエストからレジ担当者名を取り出します。
func operator(c *gin.Context) (string, bool) {
	name, ok := jwtmw.OperatorFrom(c)
	if !ok || name == "" {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return name, true
}

// toCartResponse はカート行を表示用レスポンスへ変換します。
func toCartResponse(lines []entity.CartLine, total int) api.CartResponse {
	out := make([]api.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, api.CartLineResponse{
			Name:      l.Name,
			Price:     l.Price,
			Qty:       l.Qty,
			LineTotal: l.Total(),
		})
	}
	return api.CartResponse{
		Lines:          out,
		Total:          total,
		TotalFormatted: money.Format(total),
	}
}

// ViewCart はログイン中の担当者のカートを返します。
func (h *CheckoutHandler) ViewCart(c *gin.Context) {
	name, ok := operator(c)
	if !ok {
		return
	}

	lines, total := h.uc.ViewCart(name)
	c.JSON(http.StatusOK, toCartResponse(lines, total))
}

// AddItem は商品をカートに1行追加します。
// - 数量は1以上
// - 追加時点の在庫を超える数量は409を返却
func (h *CheckoutHandler) AddItem(c *gin.Context) {
	name, ok := operator(c)
	if !ok {
		return
	}

	var req api.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	_, err := h.uc.AddToCart(c.Request.Context(), name, req.ProductID, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidQty):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "qty must be at least 1"})
		case errors.Is(err, usecase.ErrProductNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
		case usecase.IsStockShortage(err):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("failed to add cart item", "error", err, "operator", name)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to add cart item"})
		}
		return
	}

	lines, total := h.uc.ViewCart(name)
	c.JSON(http.StatusOK, toCartResponse(lines, total))
}

// RemoveItem はカートの指定位置の1行を取り除きます。
func (h *CheckoutHandler) RemoveItem(c *gin.Context) {
	name, ok := operator(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid line index"})
		return
	}

	if err := h.uc.RemoveFromCart(name, index); err != nil {
		if errors.Is(err, usecase.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "cart line not found"})
			return
		}
		slog.Error("failed to remove cart item", "error", err, "operator", name)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to remove cart item"})
		return
	}

	lines, total := h.uc.ViewCart(name)
	c.JSON(http.StatusOK, toCartResponse(lines, total))
}

// ClearCart はカートを空にします。
func (h *CheckoutHandler) ClearCart(c *gin.Context) {
	name, ok := operator(c)
	if !ok {
		return
	}

	h.uc.ClearCart(name)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Checkout は現在のカートを会計します。
// - カートが空の場合は400を返却
// - いずれかの行で在庫不足の場合は409を返却し、カートは保持される
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	name, ok := operator(c)
	if !ok {
		return
	}

	rcpt, err := h.uc.Checkout(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "cart is empty"})
		case usecase.IsStockShortage(err):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("failed to checkout", "error", err, "operator", name)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to checkout"})
		}
		return
	}

	slog.Info("checkout completed", "invoice", rcpt.Nota, "operator", name, "total", rcpt.Total)
	c.JSON(http.StatusCreated, api.CheckoutResponse{
		Invoice:        rcpt.Nota,
		Total:          rcpt.Total,
		TotalFormatted: money.Format(rcpt.Total),
		Receipt:        rcpt.Text(),
	})
}

// Receipt は既存取引のレシートを返します。
// 伝票番号はスラッシュを含むためワイルドカードパスで受けます。
//
// エンドポイント例:
// GET /receipts/CS/150424/0001?format=pdf
func (h *CheckoutHandler) Receipt(c *gin.Context) {
	nota := strings.TrimPrefix(c.Param("nota"), "/")
	if nota == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invoice number is required"})
		return
	}

	rcpt, err := h.uc.Receipt(c.Request.Context(), nota)
	if err != nil {
		if errors.Is(err, usecase.ErrNotaNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "invoice not found"})
			return
		}
		slog.Error("failed to load receipt", "error", err, "nota", nota)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load receipt"})
		return
	}

	switch c.DefaultQuery("format", "txt") {
	case "pdf":
		data, err := rcpt.PDF()
		if err != nil {
			slog.Error("failed to render pdf receipt", "error", err, "nota", nota)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{
				Error: "failed to render pdf, use format=txt instead",
			})
			return
		}
		filename := strings.ReplaceAll(nota, "/", "-") + ".pdf"
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", data)
	case "txt":
		c.String(http.StatusOK, rcpt.Text())
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "format must be txt or pdf"})
	}
}
