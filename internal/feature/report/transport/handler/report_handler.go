// Package handler はreportフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kasir_backend/internal/api"
	"kasir_backend/internal/feature/report/domain/entity"
	"kasir_backend/internal/feature/report/export"
	"kasir_backend/internal/feature/report/usecase"
	"kasir_backend/internal/platform/clock"
	"kasir_backend/internal/platform/money"
)

// displayTimeLayout はレスポンス表記の時刻形式です。
const displayTimeLayout = "02/01/2006 15:04"

// ReportUsecase はレポートのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ReportUsecase interface {
	Build(ctx context.Context, f usecase.Filter) (*entity.Report, error)
}

// ReportHandler は取引レポートのHTTPリクエストを処理します。
type ReportHandler struct {
	uc  ReportUsecase
	clk clock.Clock
}

// NewReportHandler は指定されたusecaseでReportHandlerの新しいインスタンスを生成します。
func NewReportHandler(uc ReportUsecase, clk clock.Clock) *ReportHandler {
	return &ReportHandler{uc: uc, clk: clk}
}

// filterFromQuery はクエリパラメータからレポートフィルターを組み立てます。
//
// 例:
// GET /reports?period=daily&date=2024-04-15
// GET /reports?period=weekly&week=16&year=2024
// GET /reports?period=monthly&month=4&year=2024
func (h *ReportHandler) filterFromQuery(c *gin.Context) (usecase.Filter, error) {
	kind, err := usecase.ParseKind(c.DefaultQuery("period", string(usecase.KindAll)))
	if err != nil {
		return usecase.Filter{}, err
	}
	f := usecase.Filter{Kind: kind}

	if s := c.Query("date"); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, h.clk.Location())
		if err != nil {
			return usecase.Filter{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		f.Date = d
	}
	if s := c.Query("week"); s != "" {
		w, err := strconv.Atoi(s)
		if err != nil || w < 1 || w > 53 {
			return usecase.Filter{}, errors.New("week must be between 1 and 53")
		}
		f.Week = w
	}
	if s := c.Query("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			return usecase.Filter{}, errors.New("month must be between 1 and 12")
		}
		f.Month = time.Month(m)
	}
	if s := c.Query("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return usecase.Filter{}, errors.New("year must be a number")
		}
		f.Year = y
	}
	return f, nil
}

// toResponse はレポートを表示用レスポンスへ変換します。
func toResponse(rep *entity.Report) api.ReportResponse {
	rows := make([]api.SaleRowResponse, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		rows = append(rows, api.SaleRowResponse{
			ID:             r.ID,
			Name:           r.Name,
			Price:          r.Price,
			PriceFormatted: money.Format(r.Price),
			Qty:            r.Qty,
			Kasir:          r.Kasir,
			Waktu:          r.At.Format(displayTimeLayout),
			Nota:           r.Nota,
		})
	}
	return api.ReportResponse{
		Rows: rows,
		Summary: api.ReportSummaryResponse{
			TotalSales:          rep.Summary.TotalSales,
			TotalSalesFormatted: money.Format(rep.Summary.TotalSales),
			ItemsSold:           rep.Summary.ItemsSold,
			Transactions:        rep.Summary.Transactions,
		},
	}
}

// Report は対象期間の取引一覧と集計を返します。
func (h *ReportHandler) Report(c *gin.Context) {
	f, err := h.filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	rep, err := h.uc.Build(c.Request.Context(), f)
	if err != nil {
		slog.Error("failed to build report", "error", err, "period", f.Kind)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build report"})
		return
	}

	c.JSON(http.StatusOK, toResponse(rep))
}

// Export はレポートをCSVまたはPDFでダウンロードさせます。
// PDF生成に失敗した場合はCSV版の利用を促します。
func (h *ReportHandler) Export(c *gin.Context) {
	f, err := h.filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	rep, err := h.uc.Build(c.Request.Context(), f)
	if err != nil {
		slog.Error("failed to build report", "error", err, "period", f.Kind)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build report"})
		return
	}

	kind := f.Kind
	if kind == "" {
		kind = usecase.KindAll
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := export.CSV(rep)
		if err != nil {
			slog.Error("failed to render csv report", "error", err, "period", kind)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to render csv"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("laporan_transaksi_%s.csv", kind)))
		c.Data(http.StatusOK, "text/csv", data)
	case "pdf":
		data, err := export.PDF(rep, h.clk.Now())
		if err != nil {
			slog.Error("failed to render pdf report", "error", err, "period", kind)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{
				Error: "failed to render pdf, use format=csv instead",
			})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("laporan_transaksi_%s.pdf", kind)))
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "format must be csv or pdf"})
	}
}
