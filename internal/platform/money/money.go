// Package money はルピア金額の表示フォーマットと入力パースを提供します。
package money

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidPrice is returned when a price string cannot be parsed
// into a non-negative integer rupiah amount.
var ErrInvalidPrice = errors.New("invalid price")

// Format は金額をPUEBI表記（例: Rp1.000）で返します。
// 千の位区切りはドットです。負数は元実装どおりRp0に丸めます。
func Format(amount int) string {
	if amount < 0 {
		return "Rp0"
	}
	s := strconv.Itoa(amount)
	// 右から3桁ごとにドットを挿入
	var b strings.Builder
	b.WriteString("Rp")
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte('.')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// ParsePrice は入力された価格文字列を整数ルピアに変換します。
// "5.000" や "5,000" のような区切り付き表記を受け付けます。
// 数値でない、または負数の場合はErrInvalidPriceを返します。
func ParsePrice(s string) (int, error) {
	cleaned := strings.NewReplacer(".", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, ErrInvalidPrice
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0, ErrInvalidPrice
	}
	return n, nil
}
