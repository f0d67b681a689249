// internal/service/schedule_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go_g5_schedule/internal/config"
	"go_g5_schedule/internal/middleware"
	"go_g5_schedule/internal/model"
	"go_g5_schedule/internal/repository"
)

type ScheduleService interface {
	Generate(ctx context.Context, req model.GenerateRequest) (*GenerateResult, error)
	ExportCalendar(ctx context.Context, schedule *Schedule, path string) error
	Load(ctx context.Context, path string) (*Schedule, error)
}

// GenerateResult は生成したスケジュールと表示用の行
type GenerateResult struct {
	Schedule  *Schedule
	Rows      []model.TableRow
	SetNumber int
	DayOffset int
}

type scheduleService struct {
	scheduleRepo   repository.ScheduleRepository
	calendarWriter repository.CalendarWriter // nil ならカレンダー出力は使えない
	exporter       *CalendarExporter
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, calendarWriter repository.CalendarWriter, cfg *config.Config) ScheduleService {
	return &scheduleService{
		scheduleRepo:   scheduleRepo,
		calendarWriter: calendarWriter,
		exporter:       NewCalendarExporter(cfg.Calendar.MethodName),
	}
}

// Generate は入力を検証してスケジュールを作り、JSONに保存します。
// 検証エラーの場合はファイルに触れない。
func (s *scheduleService) Generate(ctx context.Context, req model.GenerateRequest) (*GenerateResult, error) {
	logger := middleware.GetLogger(ctx).With("start_date", req.StartDate, "new_sets", req.NewSets, "set_number", req.SetNumber)

	startDate, err := model.ParseInputDate(req.StartDate)
	if err != nil {
		logger.Warn("Invalid start date", "error", err)
		return nil, model.NewAppError("INVALID_DATE_FORMAT", "start date must be in DD-MM-YYYY format", "start_date", model.ErrInvalidDateFormat)
	}
	if req.NewSets <= 0 {
		return nil, model.NewAppError("INVALID_COUNT", "number of new sets must be positive", "new_sets", model.ErrInvalidCount)
	}
	if req.SetNumber < 1 {
		return nil, model.NewAppError("INVALID_SET_NUMBER", "set number must be positive", "set_number", model.ErrInvalidSetNumber)
	}

	schedule := NewSchedule(startDate)
	if err := schedule.AddNewSets(req.NewSets, req.SetNumber); err != nil {
		return nil, model.NewAppError("INVALID_INPUT", "could not add sets", "", err)
	}

	if err := s.scheduleRepo.Save(ctx, req.OutputPath, schedule.ToDocument()); err != nil {
		logger.Error("Failed to save schedule", "path", req.OutputPath, "error", err)
		return nil, model.NewAppError("IO_FAILURE", "could not save schedule file", "output_path", err)
	}

	// 複数回に分けて実行しても日番号が続くようにずらす (1セット=1日)
	dayOffset := req.SetNumber - 1
	rows := schedule.ToTable(dayOffset)

	logger.Info("Schedule generated", "path", req.OutputPath, "days", len(rows))
	return &GenerateResult{
		Schedule:  schedule,
		Rows:      rows,
		SetNumber: req.SetNumber,
		DayOffset: dayOffset,
	}, nil
}

// ExportCalendar は full_schedule と同じ一覧からカレンダーファイルを作ります。
// 失敗しても保存済みのJSONは戻さない。
func (s *scheduleService) ExportCalendar(ctx context.Context, schedule *Schedule, path string) error {
	logger := middleware.GetLogger(ctx).With("path", path)

	if s.calendarWriter == nil {
		logger.Warn("Calendar writer is not configured")
		return model.NewAppError("MISSING_DEPENDENCY", "calendar export is not available", "", model.ErrMissingDependency)
	}

	events, err := s.exporter.Build(schedule.ActivityList())
	if err != nil {
		logger.Error("Failed to build calendar events", "error", err)
		return model.NewAppError("INVALID_INPUT", "could not build calendar events", "", err)
	}

	if err := s.calendarWriter.WriteCalendar(ctx, events, path); err != nil {
		logger.Error("Failed to write calendar", "error", err)
		if !errors.Is(err, model.ErrIOFailure) {
			err = fmt.Errorf("%w: %w", model.ErrIOFailure, err)
		}
		return model.NewAppError("IO_FAILURE", "could not write calendar file", "calendar", err)
	}

	logger.Info("Calendar exported", "events", len(events))
	return nil
}

// Load は保存済みのJSONからスケジュールを復元します。
func (s *scheduleService) Load(ctx context.Context, path string) (*Schedule, error) {
	logger := middleware.GetLogger(ctx).With("path", path)

	doc, err := s.scheduleRepo.Load(ctx, path)
	if err != nil {
		return nil, model.NewAppError("LOAD_FAILED", "could not read schedule file", "file", err)
	}

	schedule, err := ScheduleFromDocument(doc)
	if err != nil {
		logger.Warn("Schedule file has invalid content", "error", err)
		return nil, model.NewAppError("INVALID_INPUT", "schedule file has invalid content", "file", err)
	}

	logger.Debug("Schedule loaded", "sets", len(schedule.Sets()))
	return schedule, nil
}
