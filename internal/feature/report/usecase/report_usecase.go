// Package usecase はreportフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"time"

	checkoutentity "kasir_backend/internal/feature/checkout/domain/entity"
	"kasir_backend/internal/feature/report/domain/entity"
	"kasir_backend/internal/platform/clock"
)

// HistoryRepository は取引履歴の読み出しを抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type HistoryRepository interface {
	// FindAll は全履歴行を時刻文字列の降順で返します。
	FindAll(ctx context.Context) ([]checkoutentity.Sale, error)
}

// Kind はレポートの期間種別です。
type Kind string

const (
	KindAll     Kind = "all"
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
)

// ParseKind は期間種別の文字列を検証して返します。
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindAll, KindDaily, KindWeekly, KindMonthly:
		return Kind(s), nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Filter はレポートの対象期間を指定します。
// ゼロ値のフィールドは現在時刻から補完されます。
type Filter struct {
	Kind Kind

	// Date はKindDailyの対象日です。
	Date time.Time

	// Week はKindWeeklyのISO週番号（1〜53）です。
	Week int

	// Month はKindMonthlyの対象月です。
	Month time.Month

	// Year はKindWeekly・KindMonthlyの対象年です。
	Year int
}

// reportUsecase はレポートのユースケースを実装します。
type reportUsecase struct {
	history HistoryRepository
	clk     clock.Clock
}

// NewReportUsecase はreportUsecaseの新しいインスタンスを生成します。
func NewReportUsecase(history HistoryRepository, clk clock.Clock) *reportUsecase {
	return &reportUsecase{history: history, clk: clk}
}

// Build は履歴を読み出して対象期間のレポートを組み立てます。
// 時刻文字列が解釈できない行は集計から除外されます。
func (u *reportUsecase) Build(ctx context.Context, f Filter) (*entity.Report, error) {
	if f.Kind == "" {
		f.Kind = KindAll
	}
	f = u.normalize(f)

	rows, err := u.history.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	loc := u.clk.Location()
	records := make([]entity.Record, 0, len(rows))
	for _, r := range rows {
		at, ok := clock.ParseTimestamp(r.Waktu, loc)
		if !ok {
			continue
		}
		if !f.matches(at) {
			continue
		}
		records = append(records, entity.Record{
			ID:    r.ID,
			Name:  r.Name,
			Price: r.Price,
			Qty:   r.Qty,
			Kasir: r.Kasir,
			At:    at,
			Nota:  r.Nota,
		})
	}

	return &entity.Report{
		Period:  f.label(),
		Rows:    records,
		Summary: summarize(records),
	}, nil
}

// normalize はフィルターのゼロ値フィールドを現在時刻で補完します。
func (u *reportUsecase) normalize(f Filter) Filter {
	now := u.clk.Now()
	switch f.Kind {
	case KindDaily:
		if f.Date.IsZero() {
			f.Date = now
		}
	case KindWeekly:
		year, week := now.ISOWeek()
		if f.Week == 0 {
			f.Week = week
		}
		if f.Year == 0 {
			f.Year = year
		}
	case KindMonthly:
		if f.Month == 0 {
			f.Month = now.Month()
		}
		if f.Year == 0 {
			f.Year = now.Year()
		}
	}
	return f
}

// matches は時刻がフィルターの期間に入るか判定します。
func (f Filter) matches(at time.Time) bool {
	switch f.Kind {
	case KindDaily:
		y1, m1, d1 := at.Date()
		y2, m2, d2 := f.Date.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case KindWeekly:
		year, week := at.ISOWeek()
		return week == f.Week && year == f.Year
	case KindMonthly:
		return at.Month() == f.Month && at.Year() == f.Year
	default:
		return true
	}
}

// label は期間の表示用ラベルを返します。
func (f Filter) label() string {
	switch f.Kind {
	case KindDaily:
		return f.Date.Format("2006-01-02")
	case KindWeekly:
		return fmt.Sprintf("Minggu ke-%d Tahun %d", f.Week, f.Year)
	case KindMonthly:
		return fmt.Sprintf("%s %d", entity.MonthName(f.Month), f.Year)
	default:
		return "Semua Data"
	}
}

// summarize は対象行の集計値を計算します。
func summarize(records []entity.Record) entity.Summary {
	var s entity.Summary
	notas := make(map[string]struct{})
	for _, r := range records {
		s.TotalSales += r.Total()
		s.ItemsSold += r.Qty
		notas[r.Nota] = struct{}{}
	}
	s.Transactions = len(notas)
	return s
}
