// internal/model/date.go
package model

import (
	"strings"
	"time"
)

const (
	// InputDateLayout はCLIで受け付ける日付形式 (DD-MM-YYYY)
	InputDateLayout = "02-01-2006"
	// ISODateLayout はJSONと日付キーで使う形式 (YYYY-MM-DD)
	ISODateLayout = time.DateOnly
	// LabelDateLayout は表の日付ラベル (例: Apr 07)
	LabelDateLayout = "Jan 02"
)

// DateOnly は時刻部分を切り捨て、UTCの0時に揃えます。
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays は日付に n 日を加算します。
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}

// DaysBetween は from から to までの日数を返します (to が前なら負)。
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// ParseInputDate は DD-MM-YYYY 形式の開始日を解析します。
func ParseInputDate(s string) (time.Time, error) {
	t, err := time.Parse(InputDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

func FormatInputDate(t time.Time) string {
	return t.Format(InputDateLayout)
}
