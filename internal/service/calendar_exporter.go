// internal/service/calendar_exporter.go
package service

import (
	"fmt"

	"go_g5_schedule/internal/model"

	"github.com/google/uuid"
)

// CalendarExporter は Activity の一覧を終日カレンダーイベントに変換します。
type CalendarExporter struct {
	methodName string
	newID      func() string
}

func NewCalendarExporter(methodName string) *CalendarExporter {
	return &CalendarExporter{
		methodName: methodName,
		newID:      uuid.NewString,
	}
}

// Build は1アクティビティにつき1イベントを返します。UIDは毎回新しく振る。
func (e *CalendarExporter) Build(activities []model.Activity) ([]model.CalendarEvent, error) {
	events := make([]model.CalendarEvent, 0, len(activities))
	for _, a := range activities {
		start, err := model.ParseISODate(a.Date)
		if err != nil {
			return nil, fmt.Errorf("activity %q has invalid date %q: %w", a.Action, a.Date, model.ErrInvalidDateFormat)
		}

		category := model.ClassifyAction(a.Action)
		summary := a.Action
		if glyph := category.Glyph(); glyph != "" {
			summary = glyph + " " + a.Action
		}

		events = append(events, model.CalendarEvent{
			UID:         e.newID(),
			Summary:     summary,
			Description: fmt.Sprintf("%s - %s", e.methodName, a.Action),
			Start:       start,
			End:         model.AddDays(start, 1),
			Color:       category.Color(),
			Category:    category,
		})
	}
	return events, nil
}
