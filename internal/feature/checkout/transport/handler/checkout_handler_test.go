package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasir_backend/internal/api"
	"kasir_backend/internal/feature/checkout/domain/entity"
	"kasir_backend/internal/feature/checkout/receipt"
	"kasir_backend/internal/feature/checkout/usecase"
	jwtmw "kasir_backend/internal/platform/jwt"
)

// mockCheckoutUsecase is a mock implementation of the CheckoutUsecase interface.
type mockCheckoutUsecase struct {
	AddToCartFunc      func(ctx context.Context, operator string, productID uint, qty int) (entity.CartLine, error)
	ViewCartFunc       func(operator string) ([]entity.CartLine, int)
	RemoveFromCartFunc func(operator string, index int) error
	ClearCartFunc      func(operator string)
	CheckoutFunc       func(ctx context.Context, operator string) (*receipt.Receipt, error)
	ReceiptFunc        func(ctx context.Context, nota string) (*receipt.Receipt, error)
}

func (m *mockCheckoutUsecase) AddToCart(ctx context.Context, operator string, productID uint, qty int) (entity.CartLine, error) {
	if m.AddToCartFunc != nil {
		return m.AddToCartFunc(ctx, operator, productID, qty)
	}
	return entity.CartLine{}, nil
}

func (m *mockCheckoutUsecase) ViewCart(operator string) ([]entity.CartLine, int) {
	if m.ViewCartFunc != nil {
		return m.ViewCartFunc(operator)
	}
	return nil, 0
}

func (m *mockCheckoutUsecase) RemoveFromCart(operator string, index int) error {
	if m.RemoveFromCartFunc != nil {
		return m.RemoveFromCartFunc(operator, index)
	}
	return nil
}

func (m *mockCheckoutUsecase) ClearCart(operator string) {
	if m.ClearCartFunc != nil {
		m.ClearCartFunc(operator)
	}
}

func (m *mockCheckoutUsecase) Checkout(ctx context.Context, operator string) (*receipt.Receipt, error) {
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ctx, operator)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCheckoutUsecase) Receipt(ctx context.Context, nota string) (*receipt.Receipt, error) {
	if m.ReceiptFunc != nil {
		return m.ReceiptFunc(ctx, nota)
	}
	return nil, errors.New("not implemented")
}

// newTestRouter wires the handler behind a stub that plays the auth middleware's role.
func newTestRouter(h *CheckoutHandler, username string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if username != "" {
			c.Set(jwtmw.ContextUsername, username)
		}
		c.Next()
	})
	r.GET("/cart", h.ViewCart)
	r.POST("/cart/items", h.AddItem)
	r.DELETE("/cart/items/:index", h.RemoveItem)
	r.DELETE("/cart", h.ClearCart)
	r.POST("/checkout", h.Checkout)
	r.GET("/receipts/*nota", h.Receipt)
	return r
}

func testReceipt(t *testing.T) *receipt.Receipt {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	at := time.Date(2024, 4, 15, 10, 30, 0, 0, loc)
	return receipt.New("CS/150424/0001", at, []entity.CartLine{
		{Name: "Sawi Hijau", Price: 1000, Qty: 2},
		{Name: "Sawi Putih", Price: 2000, Qty: 1},
	})
}

func TestCheckoutHandler_ViewCart(t *testing.T) {
	t.Run("returns lines with totals", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			ViewCartFunc: func(operator string) ([]entity.CartLine, int) {
				assert.Equal(t, "budi", operator)
				return []entity.CartLine{{Name: "Sawi Hijau", Price: 1000, Qty: 2}}, 2000
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/cart", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res api.CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Lines, 1)
		assert.Equal(t, 2000, res.Lines[0].LineTotal)
		assert.Equal(t, "Rp2.000", res.TotalFormatted)
	})

	t.Run("missing operator is unauthorized", func(t *testing.T) {
		router := newTestRouter(NewCheckoutHandler(&mockCheckoutUsecase{}), "")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/cart", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCheckoutHandler_AddItem(t *testing.T) {
	body := func(id uint, qty int) *bytes.Buffer {
		b, _ := json.Marshal(api.CartAddRequest{ProductID: id, Qty: qty})
		return bytes.NewBuffer(b)
	}

	t.Run("adds and returns the updated cart", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			AddToCartFunc: func(ctx context.Context, operator string, productID uint, qty int) (entity.CartLine, error) {
				assert.Equal(t, uint(1), productID)
				assert.Equal(t, 2, qty)
				return entity.CartLine{Name: "Sawi Hijau", Price: 1000, Qty: 2}, nil
			},
			ViewCartFunc: func(operator string) ([]entity.CartLine, int) {
				return []entity.CartLine{{Name: "Sawi Hijau", Price: 1000, Qty: 2}}, 2000
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/cart/items", body(1, 2))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("stock shortage returns conflict", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			AddToCartFunc: func(ctx context.Context, operator string, productID uint, qty int) (entity.CartLine, error) {
				return entity.CartLine{}, &usecase.StockShortageError{Product: "Sawi Hijau"}
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/cart/items", body(1, 99))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Sawi Hijau")
	})

	t.Run("unknown product returns not found", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			AddToCartFunc: func(ctx context.Context, operator string, productID uint, qty int) (entity.CartLine, error) {
				return entity.CartLine{}, usecase.ErrProductNotFound
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/cart/items", body(42, 1))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed body returns bad request", func(t *testing.T) {
		router := newTestRouter(NewCheckoutHandler(&mockCheckoutUsecase{}), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/cart/items", bytes.NewBufferString(`{"qty":0}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCheckoutHandler_RemoveItem(t *testing.T) {
	t.Run("removes the line", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			RemoveFromCartFunc: func(operator string, index int) error {
				assert.Equal(t, 1, index)
				return nil
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/cart/items/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("out of range returns not found", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			RemoveFromCartFunc: func(operator string, index int) error {
				return usecase.ErrLineNotFound
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/cart/items/9", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric index returns bad request", func(t *testing.T) {
		router := newTestRouter(NewCheckoutHandler(&mockCheckoutUsecase{}), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/cart/items/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	t.Run("returns the invoice and receipt text", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			CheckoutFunc: func(ctx context.Context, operator string) (*receipt.Receipt, error) {
				return testReceipt(t), nil
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/checkout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res api.CheckoutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "CS/150424/0001", res.Invoice)
		assert.Equal(t, 4000, res.Total)
		assert.Equal(t, "Rp4.000", res.TotalFormatted)
		assert.Contains(t, res.Receipt, "Kasir Hijau")
	})

	t.Run("empty cart returns bad request", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			CheckoutFunc: func(ctx context.Context, operator string) (*receipt.Receipt, error) {
				return nil, usecase.ErrEmptyCart
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/checkout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("stock shortage returns conflict", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			CheckoutFunc: func(ctx context.Context, operator string) (*receipt.Receipt, error) {
				return nil, &usecase.StockShortageError{Product: "Sawi Hijau"}
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/checkout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCheckoutHandler_Receipt(t *testing.T) {
	t.Run("returns receipt text with a slashed invoice path", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			ReceiptFunc: func(ctx context.Context, nota string) (*receipt.Receipt, error) {
				assert.Equal(t, "CS/150424/0001", nota)
				return testReceipt(t), nil
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/receipts/CS/150424/0001", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "CS/150424/0001")
		assert.Contains(t, w.Body.String(), "TOTAL")
	})

	t.Run("pdf format returns a pdf document", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			ReceiptFunc: func(ctx context.Context, nota string) (*receipt.Receipt, error) {
				return testReceipt(t), nil
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/receipts/CS/150424/0001?format=pdf", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("unknown invoice returns not found", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			ReceiptFunc: func(ctx context.Context, nota string) (*receipt.Receipt, error) {
				return nil, usecase.ErrNotaNotFound
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/receipts/CS/999999/0001", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unsupported format returns bad request", func(t *testing.T) {
		mockUC := &mockCheckoutUsecase{
			ReceiptFunc: func(ctx context.Context, nota string) (*receipt.Receipt, error) {
				return testReceipt(t), nil
			},
		}
		router := newTestRouter(NewCheckoutHandler(mockUC), "budi")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/receipts/CS/150424/0001?format=docx", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
