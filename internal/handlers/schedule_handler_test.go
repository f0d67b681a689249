// internal/handlers/schedule_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"go_g5_schedule/internal/cliutil"
	"go_g5_schedule/internal/config"
	"go_g5_schedule/internal/handlers"
	"go_g5_schedule/internal/model"
	"go_g5_schedule/internal/repository"
	"go_g5_schedule/internal/service"

	ics "github.com/arran4/golang-ical"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

// ScheduleHandlerTestSuite はメモリ上のファイルシステムで CLI 全体を通して動かします。
type ScheduleHandlerTestSuite struct {
	suite.Suite
	fs      afero.Fs
	cfg     *config.Config
	handler *handlers.ScheduleHandler
	out     *bytes.Buffer
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	s.cfg = config.Default()
	s.out = &bytes.Buffer{}
	s.handler = s.newHandler(repository.NewICSCalendarWriter(s.fs, s.cfg.Calendar.ProductID))
}

func (s *ScheduleHandlerTestSuite) newHandler(writer repository.CalendarWriter) *handlers.ScheduleHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewScheduleService(repository.NewFileScheduleRepository(s.fs), writer, s.cfg)
	h := handlers.NewScheduleHandler(svc, s.cfg, logger)
	h.SetClock(func() time.Time {
		return time.Date(2025, 4, 7, 15, 4, 5, 0, time.UTC)
	})
	return h
}

func (s *ScheduleHandlerTestSuite) run(h *handlers.ScheduleHandler, args ...string) error {
	s.out.Reset()
	root := h.NewRootCommand()
	root.SetOut(s.out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func (s *ScheduleHandlerTestSuite) readDocument(path string) *model.ScheduleDocument {
	data, err := afero.ReadFile(s.fs, path)
	s.Require().NoError(err)
	var doc model.ScheduleDocument
	s.Require().NoError(json.Unmarshal(data, &doc))
	return &doc
}

func (s *ScheduleHandlerTestSuite) TestGenerate_Default() {
	err := s.run(s.handler, "-d", "07-04-2025", "-n", "1")
	s.Require().NoError(err)

	out := s.out.String()
	s.Contains(out, "G5 Schedule (saved to g5_schedule.json):")
	s.Contains(out, "Starting with Set 01 on 07-04-2025")
	s.Contains(out, "Apr 07 (D1)")
	s.Contains(out, "Apr 21 (D15)")
	s.NotContains(out, "iCalendar")

	doc := s.readDocument("g5_schedule.json")
	s.Equal("2025-04-07", doc.StartDate)
	s.Len(doc.Sets, 1)
	s.Len(doc.FullSchedule, 5)
}

func (s *ScheduleHandlerTestSuite) TestGenerate_DefaultStartDateIsToday() {
	s.Require().NoError(s.run(s.handler, "-n", "2", "-o", "today.json"))

	s.Contains(s.out.String(), "Starting with Set 01 on 07-04-2025")
	s.Equal("2025-04-07", s.readDocument("today.json").StartDate)
}

func (s *ScheduleHandlerTestSuite) TestGenerate_ContinuesDayNumbering() {
	s.Require().NoError(s.run(s.handler, "-d", "10-04-2025", "-n", "2", "-s", "4", "--output", "week2.json"))

	out := s.out.String()
	s.Contains(out, "Starting with Set 04 on 10-04-2025")
	s.Contains(out, "Apr 10 (D4)")
	s.Contains(out, "Set 05")

	doc := s.readDocument("week2.json")
	s.Equal("Set 04", doc.Sets[0].Set)
	s.Equal("Set 05", doc.Sets[1].Set)
}

func (s *ScheduleHandlerTestSuite) TestGenerate_WithCalendar() {
	s.Require().NoError(s.run(s.handler, "-d", "07-04-2025", "-n", "1", "-c", "my_schedule"))

	out := s.out.String()
	s.Contains(out, "Schedule exported to iCalendar: my_schedule.ics")
	s.Contains(out, "4. Upload the .ics file")

	f, err := s.fs.Open("my_schedule.ics")
	s.Require().NoError(err)
	defer f.Close()
	cal, err := ics.ParseCalendar(f)
	s.Require().NoError(err)
	s.Len(cal.Events(), 5)
}

func (s *ScheduleHandlerTestSuite) TestGenerate_CalendarExtensionKept() {
	s.Require().NoError(s.run(s.handler, "-d", "07-04-2025", "-n", "1", "-c", "Plan.ICS"))

	s.Contains(s.out.String(), "Schedule exported to iCalendar: Plan.ICS")
	exists, err := afero.Exists(s.fs, "Plan.ICS")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *ScheduleHandlerTestSuite) TestGenerate_InvalidInput() {
	tests := []struct {
		name     string
		args     []string
		wantErr  error
		wantExit int
	}{
		{"異常系: 日付形式", []string{"-d", "2025-04-07", "-n", "1"}, model.ErrInvalidDateFormat, cliutil.ExitUsage},
		{"異常系: 件数0", []string{"-d", "07-04-2025", "-n", "0"}, model.ErrInvalidCount, cliutil.ExitUsage},
		{"異常系: 件数が負", []string{"-d", "07-04-2025", "-n", "-2"}, model.ErrInvalidCount, cliutil.ExitUsage},
		{"異常系: セット番号0", []string{"-d", "07-04-2025", "-n", "1", "-s", "0"}, model.ErrInvalidSetNumber, cliutil.ExitUsage},
		{"異常系: -n なし", []string{"-d", "07-04-2025"}, model.ErrInvalidInput, cliutil.ExitUsage},
		{"異常系: -n が数値でない", []string{"-n", "abc"}, model.ErrInvalidInput, cliutil.ExitUsage},
		{"異常系: 未知のフラグ", []string{"-n", "1", "--bogus"}, model.ErrInvalidInput, cliutil.ExitUsage},
		{"異常系: 位置引数", []string{"foo", "-n", "1"}, model.ErrInvalidInput, cliutil.ExitUsage},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.fs = afero.NewMemMapFs()
			h := s.newHandler(repository.NewICSCalendarWriter(s.fs, s.cfg.Calendar.ProductID))

			err := s.run(h, tt.args...)
			s.Require().Error(err)
			s.ErrorIs(err, tt.wantErr)
			s.Equal(tt.wantExit, cliutil.MapErrorToExitCode(err))

			// 表もファイルも出さない
			s.Empty(s.out.String())
			exists, _ := afero.Exists(s.fs, "g5_schedule.json")
			s.False(exists)
		})
	}
}

func (s *ScheduleHandlerTestSuite) TestGenerate_UnwritableOutput() {
	s.fs = afero.NewReadOnlyFs(afero.NewMemMapFs())
	h := s.newHandler(repository.NewICSCalendarWriter(s.fs, s.cfg.Calendar.ProductID))

	err := s.run(h, "-d", "07-04-2025", "-n", "1")
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrIOFailure)
	s.Equal(cliutil.ExitIOError, cliutil.MapErrorToExitCode(err))
	s.Empty(s.out.String())
}

func (s *ScheduleHandlerTestSuite) TestGenerate_CalendarDisabledKeepsJSON() {
	h := s.newHandler(nil)

	err := s.run(h, "-d", "07-04-2025", "-n", "1", "-c", "cal")
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrMissingDependency)
	s.Equal(cliutil.ExitUnavailable, cliutil.MapErrorToExitCode(err))

	// JSON は書かれたまま、表も出ている
	s.Contains(s.out.String(), "Apr 07 (D1)")
	exists, err := afero.Exists(s.fs, "g5_schedule.json")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *ScheduleHandlerTestSuite) TestShow() {
	s.Require().NoError(s.run(s.handler, "-d", "10-04-2025", "-n", "3", "-s", "4", "-o", "saved.json"))
	generated := s.out.String()

	s.Require().NoError(s.run(s.handler, "show", "-f", "saved.json"))
	shown := s.out.String()

	s.Contains(shown, "G5 Schedule (loaded from saved.json):")
	s.Contains(shown, "Starting with Set 04 on 10-04-2025")
	// 表の部分は生成時と同じ
	s.Equal(tableOf(generated), tableOf(shown))
}

func (s *ScheduleHandlerTestSuite) TestShow_SetNumberOverride() {
	s.Require().NoError(s.run(s.handler, "-d", "07-04-2025", "-n", "1"))

	s.Require().NoError(s.run(s.handler, "show", "--set-number", "10"))
	s.Contains(s.out.String(), "Apr 07 (D10)")

	err := s.run(s.handler, "show", "-s", "0")
	s.ErrorIs(err, model.ErrInvalidSetNumber)
}

func (s *ScheduleHandlerTestSuite) TestShow_WithCalendar() {
	s.Require().NoError(s.run(s.handler, "-d", "07-04-2025", "-n", "2"))
	s.Require().NoError(s.run(s.handler, "show", "-c", "again"))

	s.Contains(s.out.String(), "Schedule exported to iCalendar: again.ics")
	exists, err := afero.Exists(s.fs, "again.ics")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *ScheduleHandlerTestSuite) TestShow_MissingFile() {
	err := s.run(s.handler, "show", "-f", "nothing.json")
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrIOFailure)
}

func (s *ScheduleHandlerTestSuite) TestSubcommandArgsRejected() {
	for _, args := range [][]string{{"show", "extra"}, {"version", "extra"}} {
		err := s.run(s.handler, args...)
		s.Require().Error(err)
		s.ErrorIs(err, model.ErrInvalidInput)
		s.Equal(cliutil.ExitUsage, cliutil.MapErrorToExitCode(err))
	}
}

func (s *ScheduleHandlerTestSuite) TestVersion() {
	s.Require().NoError(s.run(s.handler, "version"))
	s.Equal("g5 version "+config.AppVersion+"\n", s.out.String())
}

// tableOf は出力のうちヘッダー行以降を返します。
func tableOf(out string) string {
	idx := strings.Index(out, "Date")
	if idx < 0 {
		return ""
	}
	return out[idx:]
}

func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
