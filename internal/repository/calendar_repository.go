// internal/repository/calendar_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"go_g5_schedule/internal/middleware"
	"go_g5_schedule/internal/model"

	ics "github.com/arran4/golang-ical"
	"github.com/spf13/afero"
)

// CalendarWriter はカレンダーファイル出力の窓口です。
// スケジュール計算側はこのインターフェースにだけ依存する。
type CalendarWriter interface {
	WriteCalendar(ctx context.Context, events []model.CalendarEvent, path string) error
}

type icsCalendarWriter struct {
	fs        afero.Fs
	productID string
	now       func() time.Time // DTSTAMP 用
}

func NewICSCalendarWriter(fs afero.Fs, productID string) CalendarWriter {
	return &icsCalendarWriter{
		fs:        fs,
		productID: productID,
		now:       time.Now,
	}
}

func (w *icsCalendarWriter) WriteCalendar(ctx context.Context, events []model.CalendarEvent, path string) error {
	logger := middleware.GetLogger(ctx).With("path", path)

	cal := ics.NewCalendar()
	cal.SetProductId(w.productID)
	cal.SetMethod(ics.MethodPublish)

	stamp := w.now().UTC()
	for _, e := range events {
		event := cal.AddEvent(e.UID)
		event.SetDtStampTime(stamp)
		event.SetSummary(e.Summary)
		event.SetDescription(e.Description)
		// 終日イベント (DTSTART;VALUE=DATE)。DTEND は翌日。
		event.SetAllDayStartAt(e.Start)
		event.SetAllDayEndAt(e.End)
		if e.Color != "" {
			event.SetColor(e.Color)
		}
	}

	if err := writeFile(w.fs, path, []byte(cal.Serialize())); err != nil {
		logger.Error("Failed to write calendar file", "error", err)
		return fmt.Errorf("write %s: %w: %w", path, model.ErrIOFailure, err)
	}

	logger.Debug("Calendar file written", "events", len(events))
	return nil
}
