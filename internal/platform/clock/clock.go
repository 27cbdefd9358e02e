// Package clock はアプリ全体で使う現地時刻（WIB）を提供します。
package clock

import (
	"os"
	"time"
)

// DefaultZone はタイムゾーン未設定時のデフォルトです。
// 元のレジはインドネシア西部時間（Asia/Jakarta）で運用されています。
const DefaultZone = "Asia/Jakarta"

// EnvKeyZone はタイムゾーン名を指定する環境変数のキーです。
const EnvKeyZone = "TZ_NAME"

// Clock は現地civil時刻の取得を抽象化します。
// テストで固定時刻を注入できるよう、利用側はこのインターフェースに依存します。
type Clock interface {
	// Now は現地タイムゾーンでの現在時刻を返します。
	Now() time.Time
	// Location は現地タイムゾーンを返します。
	Location() *time.Location
}

// localClock はClockインターフェースの実装です。
type localClock struct {
	loc *time.Location
}

// New はTZ_NAME（未設定時はAsia/Jakarta）のタイムゾーンで動くClockを生成します。
// ゾーン名が解決できない場合はUTCにフォールバックします。
func New() Clock {
	name := os.Getenv(EnvKeyZone)
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.UTC
	}
	return &localClock{loc: loc}
}

// NewFixed は常に同じ時刻を返すClockを生成します。テスト用です。
func NewFixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time { return f.t }

func (f fixedClock) Location() *time.Location { return f.t.Location() }

// Now は現地タイムゾーンでの現在時刻を返します。
func (c *localClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location は現地タイムゾーンを返します。
func (c *localClock) Location() *time.Location {
	return c.loc
}

// DateKey は伝票番号テーブルの日付キー（ddmmyy）を返します。
func DateKey(t time.Time) string {
	return t.Format("020106")
}
