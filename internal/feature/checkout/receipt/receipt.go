// Package receipt は会計レシート（テキスト/PDF）の描画を実装します。
package receipt

import (
	"fmt"
	"strings"
	"time"

	"kasir_backend/internal/feature/checkout/domain/entity"
	"kasir_backend/internal/platform/money"
)

const (
	// StoreName はレシートヘッダーに印字する店名です。
	StoreName = "Kasir Hijau"

	// timeLayout はレシート上の時刻表記です（例: 15 Apr 24 10:30）。
	timeLayout = "02 Jan 06 15:04"

	ruleWidth = 30
)

// Receipt is one rendered checkout transaction.
type Receipt struct {
	Nota  string
	Time  time.Time
	Lines []entity.CartLine
	Total int
}

// New builds a receipt for the given transaction.
func New(nota string, at time.Time, lines []entity.CartLine) *Receipt {
	return &Receipt{
		Nota:  nota,
		Time:  at,
		Lines: lines,
		Total: entity.CartTotal(lines),
	}
}

// TextLines はレシート本文を1行ずつ返します。
// レイアウトは元のレジのstruk出力をそのまま踏襲しています。
func (r *Receipt) TextLines() []string {
	waktu := r.Time.Format(timeLayout)
	total := money.Format(r.Total)

	lines := []string{
		"         " + StoreName,
		strings.Repeat("=", ruleWidth),
		"No Nota : " + r.Nota,
		"Waktu   : " + waktu,
		strings.Repeat("-", ruleWidth),
	}

	for _, l := range r.Lines {
		lines = append(lines, fmt.Sprintf("%d %-18s %10s", l.Qty, l.Name, money.Format(l.Total())))
	}

	lines = append(lines,
		strings.Repeat("-", ruleWidth),
		fmt.Sprintf("Subtotal %d Produk  %10s", len(r.Lines), total),
		fmt.Sprintf("Total Tagihan        %10s", total),
		"",
		"Kartu Debit/Kredit",
		fmt.Sprintf("Total Bayar          %10s", total),
		strings.Repeat("=", ruleWidth),
		"Terbayar "+waktu,
		"Dicetak: Kasir",
	)

	return lines
}

// Text はレシート本文を1つの文字列で返します。
func (r *Receipt) Text() string {
	return strings.Join(r.TextLines(), "\n")
}
