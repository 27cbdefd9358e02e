// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kasir_backend/internal/api"
	"kasir_backend/internal/feature/catalog/domain/entity"
	"kasir_backend/internal/feature/catalog/usecase"
	"kasir_backend/internal/platform/money"
)

// DefaultImageDir はIMAGE_DIR未設定時の商品画像の保存先です。
const DefaultImageDir = "images/produk"

// CatalogUsecase は商品管理のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	List(ctx context.Context, availableOnly bool) ([]entity.Product, error)
	Add(ctx context.Context, name, priceStr string, stock int) (*entity.Product, error)
	Edit(ctx context.Context, id uint, name, priceStr string, stock int) (*entity.Product, error)
	AttachImage(ctx context.Context, id uint, path string) error
	Remove(ctx context.Context, id uint) error
	Reset(ctx context.Context) error
}

// CatalogHandler は商品管理のHTTPリクエストを処理します。
type CatalogHandler struct {
	uc       CatalogUsecase
	imageDir string
}

// NewCatalogHandler は指定されたusecaseでCatalogHandlerの新しいインスタンスを生成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	dir := os.Getenv("IMAGE_DIR")
	if dir == "" {
		dir = DefaultImageDir
	}
	return &CatalogHandler{uc: uc, imageDir: dir}
}

// toResponse は商品エンティティを表示用レスポンスへ変換します。
func toResponse(p entity.Product) api.ProductResponse {
	return api.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		PriceFormatted: money.Format(p.Price),
		Stock:          p.Stock,
		Image:          p.Image,
	}
}

// List は商品一覧を返します。
//
// エンドポイント例:
// GET /products?available=true （レジ画面用: 在庫のある商品のみ）
func (h *CatalogHandler) List(c *gin.Context) {
	availableOnly := c.Query("available") == "true"

	products, err := h.uc.List(c.Request.Context(), availableOnly)
	if err != nil {
		slog.Error("failed to list products", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list products"})
		return
	}

	out := make([]api.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// Create は商品追加エンドポイントを処理します。
// - 価格は"5.000"のような区切り付き文字列を受け付ける
// - 価格が数値でない場合は400を返却
func (h *CatalogHandler) Create(c *gin.Context) {
	var req api.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	p, err := h.uc.Add(c.Request.Context(), req.Name, req.Price, req.Stock)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPrice) || errors.Is(err, usecase.ErrInvalidStock) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to create product", "error", err, "name", req.Name)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create product"})
		return
	}

	slog.Info("product created", "id", p.ID, "name", p.Name)
	c.JSON(http.StatusCreated, toResponse(*p))
}

// Update は商品編集エンドポイントを処理します。
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid product id"})
		return
	}

	var req api.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	p, err := h.uc.Edit(c.Request.Context(), id, req.Name, req.Price, req.Stock)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
		case errors.Is(err, usecase.ErrInvalidPrice), errors.Is(err, usecase.ErrInvalidStock):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("failed to update product", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, toResponse(*p))
}

// UploadImage は商品画像のアップロードを処理します。
// png/jpg/jpegのみ受け付け、衝突しないファイル名で保存します。
func (h *CatalogHandler) UploadImage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid product id"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image must be png, jpg or jpeg"})
		return
	}

	if err := os.MkdirAll(h.imageDir, 0o755); err != nil {
		slog.Error("failed to create image directory", "error", err, "dir", h.imageDir)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to store image"})
		return
	}

	path := filepath.Join(h.imageDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, path); err != nil {
		slog.Error("failed to save image", "error", err, "path", path)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to store image"})
		return
	}

	if err := h.uc.AttachImage(c.Request.Context(), id, path); err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
			return
		}
		slog.Error("failed to attach image", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to store image"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Delete は商品1件の削除エンドポイントを処理します。
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid product id"})
		return
	}

	if err := h.uc.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
			return
		}
		slog.Error("failed to delete product", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete product"})
		return
	}

	slog.Info("product deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Reset は全商品削除（データリセット）エンドポイントを処理します。
func (h *CatalogHandler) Reset(c *gin.Context) {
	if err := h.uc.Reset(c.Request.Context()); err != nil {
		slog.Error("failed to reset products", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to reset products"})
		return
	}

	slog.Info("product data reset")
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// parseID はパスパラメータ:idをuintに変換します。
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
