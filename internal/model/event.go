// internal/model/event.go
package model

import (
	"fmt"
	"time"
)

type EventKind int

const (
	EventLearn EventKind = iota + 1 // 1
	EventReview                     // 2
)

func (k EventKind) String() string {
	switch k {
	case EventLearn:
		return "learn"
	case EventReview:
		return "review"
	default:
		return "unknown"
	}
}

// Event はセットから導出される学習/復習イベントです (保存はしない)。
type Event struct {
	Date         time.Time
	Kind         EventKind
	ReviewNumber int // 復習のみ 1..4
	SetName      string
}

// ReviewLabel は "Set 01 (R1)" 形式のラベルを返します。
func (e Event) ReviewLabel() string {
	return fmt.Sprintf("%s (R%d)", e.SetName, e.ReviewNumber)
}

// Activity は full_schedule の1行。JSON保存とカレンダー出力の両方で使う。
type Activity struct {
	Date   string `json:"Date"`
	Action string `json:"Action"`
}

// NewActivity はイベントをフラットな Activity に変換します。
func NewActivity(e Event) Activity {
	action := "Learn " + e.SetName
	if e.Kind == EventReview {
		action = "Review " + e.ReviewLabel()
	}
	return Activity{
		Date:   FormatISODate(e.Date),
		Action: action,
	}
}

// DayEntry は1日分の予定 (新規セットと復習のリスト)
type DayEntry struct {
	NewWords string   // 新規セットがない日は空文字
	Reviews  []string // "Set 01 (R1)" の並び
}

// TableRow は表示用の1行
type TableRow struct {
	Date     string
	NewWords string
	Reviews  string
}
