package clock

import (
	"strings"
	"time"
)

// timestampLayouts は履歴の時刻文字列として受け付ける形式です。
// 新規行はRFC3339で書かれますが、引き継いだデータには
// タイムゾーンなしのISO形式や日付のみの行が混在し得ます。
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp は履歴行の時刻文字列を寛容に解釈します。
// タイムゾーン付きの値はlocへ変換し、なしの値はlocの現地時刻として扱います。
// どの形式にも一致しない場合はfalseを返します。
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}
