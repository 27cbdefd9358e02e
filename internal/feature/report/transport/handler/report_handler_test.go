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
	"kasir_backend/internal/feature/report/domain/entity"
	"kasir_backend/internal/feature/report/usecase"
	"kasir_backend/internal/platform/clock"
)

// mockReportUsecase is a mock implementation of the ReportUsecase interface.
type mockReportUsecase struct {
	BuildFunc func(ctx context.Context, f usecase.Filter) (*entity.Report, error)
}

func (m *mockReportUsecase) Build(ctx context.Context, f usecase.Filter) (*entity.Report, error) {
	if m.BuildFunc != nil {
		return m.BuildFunc(ctx, f)
	}
	return &entity.Report{}, nil
}

func fixedClock(t *testing.T) clock.Clock {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return clock.NewFixed(time.Date(2024, 4, 15, 12, 0, 0, 0, loc))
}

func newTestRouter(h *ReportHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/reports", h.Report)
	r.GET("/reports/export", h.Export)
	return r
}

func testReport(t *testing.T) *entity.Report {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return &entity.Report{
		Period: "Semua Data",
		Rows: []entity.Record{
			{ID: 1, Name: "Sawi Hijau", Price: 1000, Qty: 2, Kasir: "budi",
				At: time.Date(2024, 4, 15, 10, 30, 0, 0, loc), Nota: "CS/150424/0001"},
		},
		Summary: entity.Summary{TotalSales: 2000, ItemsSold: 2, Transactions: 1},
	}
}

func TestReportHandler_Report(t *testing.T) {
	t.Run("returns rows and summary", func(t *testing.T) {
		mockUC := &mockReportUsecase{
			BuildFunc: func(ctx context.Context, f usecase.Filter) (*entity.Report, error) {
				assert.Equal(t, usecase.KindAll, f.Kind)
				return testReport(t), nil
			},
		}
		router := newTestRouter(NewReportHandler(mockUC, fixedClock(t)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res api.ReportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Rows, 1)
		assert.Equal(t, "Rp1.000", res.Rows[0].PriceFormatted)
		assert.Equal(t, "15/04/2024 10:30", res.Rows[0].Waktu)
		assert.Equal(t, "Rp2.000", res.Summary.TotalSalesFormatted)
		assert.Equal(t, 1, res.Summary.Transactions)
	})

	t.Run("passes query filters through", func(t *testing.T) {
		mockUC := &mockReportUsecase{
			BuildFunc: func(ctx context.Context, f usecase.Filter) (*entity.Report, error) {
				assert.Equal(t, usecase.KindWeekly, f.Kind)
				assert.Equal(t, 16, f.Week)
				assert.Equal(t, 2024, f.Year)
				return testReport(t), nil
			},
		}
		router := newTestRouter(NewReportHandler(mockUC, fixedClock(t)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports?period=weekly&week=16&year=2024", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("daily date is parsed in local time", func(t *testing.T) {
		mockUC := &mockReportUsecase{
			BuildFunc: func(ctx context.Context, f usecase.Filter) (*entity.Report, error) {
				assert.Equal(t, usecase.KindDaily, f.Kind)
				assert.Equal(t, 15, f.Date.Day())
				assert.Equal(t, "Asia/Jakarta", f.Date.Location().String())
				return testReport(t), nil
			},
		}
		router := newTestRouter(NewReportHandler(mockUC, fixedClock(t)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports?period=daily&date=2024-04-15", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown period returns bad request", func(t *testing.T) {
		router := newTestRouter(NewReportHandler(&mockReportUsecase{}, fixedClock(t)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports?period=yearly", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed date returns bad request", func(t *testing.T) {
		router := newTestRouter(NewReportHandler(&mockReportUsecase{}, fixedClock(t)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports?period=daily&date=15-04-2024", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("usecase error returns internal error", func(t *testing.T) {
		mockUC := &mockReportUsecase{
			BuildFunc: func(ctx context.Context, f usecase.Filter) (*entity.Report, error) {
				return nil, errors.New("db error")
			},
		}
		router := newTestRouter(NewReportHandler(mockUC, fixedClock(t)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestReportHandler_Export(t *testing.T) {
	mockUC := &mockReportUsecase{
		BuildFunc: func(ctx context.Context, f usecase.Filter) (*entity.Report, error) {
			return testReport(t), nil
		},
	}

	t.Run("csv is the default format", func(t *testing.T) {
		router := newTestRouter(NewReportHandler(mockUC, fixedClock(t)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports/export", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "laporan_transaksi_all.csv")
		assert.Contains(t, w.Body.String(), "id,nama,harga,qty,kasir,waktu,nota")
	})

	t.Run("pdf format", func(t *testing.T) {
		router := newTestRouter(NewReportHandler(mockUC, fixedClock(t)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports/export?period=daily&format=pdf", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "laporan_transaksi_daily.pdf")
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("unsupported format returns bad request", func(t *testing.T) {
		router := newTestRouter(NewReportHandler(mockUC, fixedClock(t)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports/export?format=xlsx", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
