// internal/model/calendar.go
package model

import (
	"strings"
	"time"
)

type ActivityCategory int

const (
	CategoryOther ActivityCategory = iota
	CategoryLearn
	CategoryReview1
	CategoryReview2
	CategoryReview3
	CategoryReview4
)

// categoryStyle はカテゴリごとの絵文字とGoogleカレンダーの色ID
type categoryStyle struct {
	Glyph string
	Color string
}

var categoryStyles = map[ActivityCategory]categoryStyle{
	CategoryLearn:   {Glyph: "📚", Color: "9"},  // Blueberry
	CategoryReview1: {Glyph: "🔍", Color: "5"},  // Banana
	CategoryReview2: {Glyph: "🔄", Color: "6"},  // Tangerine
	CategoryReview3: {Glyph: "📝", Color: "7"},  // Peacock
	CategoryReview4: {Glyph: "✅", Color: "11"}, // Tomato
}

// ClassifyAction はアクション文字列の部分一致でカテゴリを決めます。
func ClassifyAction(action string) ActivityCategory {
	switch {
	case strings.Contains(action, "Learn"):
		return CategoryLearn
	case strings.Contains(action, "(R1)"):
		return CategoryReview1
	case strings.Contains(action, "(R2)"):
		return CategoryReview2
	case strings.Contains(action, "(R3)"):
		return CategoryReview3
	case strings.Contains(action, "(R4)"):
		return CategoryReview4
	default:
		return CategoryOther
	}
}

func (c ActivityCategory) Glyph() string {
	return categoryStyles[c].Glyph
}

func (c ActivityCategory) Color() string {
	return categoryStyles[c].Color
}

// CalendarEvent は終日イベント1件。End は Start の翌日 (排他的)。
type CalendarEvent struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Color       string
	Category    ActivityCategory
}
