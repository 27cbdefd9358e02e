package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDF はテキストレシートを等幅フォントでそのまま写したPDFを返します。
// 描画に失敗した場合はエラーを返し、呼び出し側はテキスト版へ誘導します。
func (r *Receipt) PDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Courier", "", 10)

	for _, line := range r.TextLines() {
		pdf.CellFormat(0, 10, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
