package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"kasir_backend/internal/feature/report/domain/entity"
	"kasir_backend/internal/platform/money"
)

// maxPDFRows はPDF表に載せる最大行数です。超過分はCSV版で参照します。
const maxPDFRows = 50

// truncate は表のセル幅に収まるよう文字列を切り詰めます。
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// PDF はレポートをA4縦のPDF文書として書き出します。
// 描画に失敗した場合はエラーを返し、呼び出し側はCSV版へ誘導します。
func PDF(rep *entity.Report, printedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(200, 10, "Laporan Riwayat Transaksi", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(200, 8, "Periode: "+rep.Period, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(15, 8, "ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Nama Produk", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Harga", "1", 0, "C", false, 0, "")
	pdf.CellFormat(15, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Kasir", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Waktu", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "No. Nota", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 7)
	rows := rep.Rows
	if len(rows) > maxPDFRows {
		rows = rows[:maxPDFRows]
	}
	for _, r := range rows {
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", r.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, truncate(r.Name, 15), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, money.Format(r.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", r.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, truncate(r.Kasir, 15), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, r.At.Format("02/01/06 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, truncate(r.Nota, 20), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(200, 8, "RINGKASAN:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(200, 6, "Total Penjualan: "+money.Format(rep.Summary.TotalSales), "", 1, "L", false, 0, "")
	pdf.CellFormat(200, 6, fmt.Sprintf("Total Item Terjual: %d pcs", rep.Summary.ItemsSold), "", 1, "L", false, 0, "")
	pdf.CellFormat(200, 6, fmt.Sprintf("Jumlah Transaksi: %d nota", rep.Summary.Transactions), "", 1, "L", false, 0, "")

	pdf.Ln(5)
	pdf.SetFont("Arial", "I", 8)
	stamp := fmt.Sprintf("%02d %s %d %s WIB",
		printedAt.Day(), entity.MonthName(printedAt.Month()), printedAt.Year(), printedAt.Format("15:04:05"))
	pdf.CellFormat(200, 6, "Dicetak pada: "+stamp, "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
