// Package export はレポートのCSV・PDF書き出しを提供します。
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"kasir_backend/internal/feature/report/domain/entity"
	"kasir_backend/internal/platform/money"
)

// displayTimeLayout はレポート表記の時刻形式です。
const displayTimeLayout = "02/01/2006 15:04"

// CSV はレポートをCSV文書として書き出します。
// 単価は表示と同じRp表記、列順は元の帳票と同じです。
func CSV(rep *entity.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "nama", "harga", "qty", "kasir", "waktu", "nota"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range rep.Rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			money.Format(r.Price),
			strconv.Itoa(r.Qty),
			r.Kasir,
			r.At.Format(displayTimeLayout),
			r.Nota,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
