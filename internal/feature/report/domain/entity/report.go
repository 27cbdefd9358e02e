// Package entity はレポート機能のドメインモデルを定義します。
package entity

import "time"

// Record は時刻解釈済みの取引履歴1行です。
type Record struct {
	ID    uint
	Name  string
	Price int
	Qty   int
	Kasir string
	At    time.Time
	Nota  string
}

// Total はこの行の小計を返します。
func (r Record) Total() int { return r.Price * r.Qty }

// Summary は対象期間の集計値です。
type Summary struct {
	// TotalSales は売上合計（単価×数量の総和）です。
	TotalSales int
	// ItemsSold は売れた商品の総数量です。
	ItemsSold int
	// Transactions は伝票番号の異なり数です。
	Transactions int
}

// Report は期間ラベル・対象行・集計をまとめたレポートです。
type Report struct {
	Period  string
	Rows    []Record
	Summary Summary
}

// monthNames はレポート表記に使うインドネシア語の月名です。
var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName は月のインドネシア語名を返します。
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}
