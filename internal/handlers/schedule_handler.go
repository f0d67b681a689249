// internal/handlers/schedule_handler.go
package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"go_g5_schedule/internal/cliutil"
	"go_g5_schedule/internal/config"
	"go_g5_schedule/internal/middleware"
	"go_g5_schedule/internal/model"
	"go_g5_schedule/internal/service"

	"github.com/spf13/cobra"
)

// ScheduleHandler はコマンドライン引数をサービス呼び出しに変換します。
type ScheduleHandler struct {
	service service.ScheduleService
	cfg     *config.Config
	logger  *slog.Logger
	now     func() time.Time
}

func NewScheduleHandler(s service.ScheduleService, cfg *config.Config, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: s,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock は -d 省略時に使う現在時刻の取得元を差し替えます。
func (h *ScheduleHandler) SetClock(now func() time.Time) {
	h.now = now
}

type generateOptions struct {
	startDate string
	numSets   int
	setNumber int
	output    string
	calendar  string
}

type showOptions struct {
	file      string
	setNumber int
	calendar  string
}

// NewRootCommand は g5 コマンド (サブコマンド込み) を組み立てます。
func (h *ScheduleHandler) NewRootCommand() *cobra.Command {
	opts := &generateOptions{}
	withLog := middleware.CommandLogger(h.logger)

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Generate a G5 spaced repetition schedule",
		Long:          "Generate a G5 spaced repetition schedule. Each new set is reviewed 2, 4, 8 and 15 days into its cycle.",
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          withLog(h.runGenerate(opts)),
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return model.NewAppError("INVALID_FLAG", err.Error(), "", model.ErrInvalidInput)
	})

	flags := root.Flags()
	flags.StringVarP(&opts.startDate, "start-date", "d", "", "start date in DD-MM-YYYY format (default: today)")
	flags.IntVarP(&opts.numSets, "num-sets", "n", 0, "number of new sets to add (required)")
	flags.IntVarP(&opts.setNumber, "set-number", "s", 1, "number of the first new set")
	flags.StringVarP(&opts.output, "output", "o", h.cfg.Output.JSONPath, "output JSON file")
	flags.StringVarP(&opts.calendar, "calendar", "c", "", "export schedule to an iCalendar file for Google Calendar import")

	root.AddCommand(h.newShowCommand(withLog), h.newVersionCommand())
	return root
}

// noArgs は位置引数を受け付けません。フラグ誤りと同じ入力エラーとして扱う
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return model.NewAppError("INVALID_ARGS", fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath()), "", model.ErrInvalidInput)
	}
	return nil
}

func (h *ScheduleHandler) runGenerate(opts *generateOptions) middleware.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := middleware.GetLogger(ctx)

		if !cmd.Flags().Changed("num-sets") {
			return model.NewAppError("INVALID_FLAG", `required flag "num-sets" (-n) not set`, "new_sets", model.ErrInvalidInput)
		}

		startDate := opts.startDate
		if startDate == "" {
			startDate = model.FormatInputDate(h.now())
		}

		req := model.GenerateRequest{
			StartDate:  startDate,
			NewSets:    opts.numSets,
			SetNumber:  opts.setNumber,
			OutputPath: opts.output,
		}
		if err := cliutil.ValidateRequest(&req); err != nil {
			logger.Warn("Invalid arguments", "error", err)
			return err
		}

		result, err := h.service.Generate(ctx, req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nG5 Schedule (saved to %s):\n", req.OutputPath)
		fmt.Fprintf(out, "Starting with Set %02d on %s\n", result.SetNumber, req.StartDate)
		cliutil.RenderTable(out, result.Rows)

		if opts.calendar == "" {
			return nil
		}
		return h.exportCalendar(cmd, result.Schedule, opts.calendar)
	}
}

func (h *ScheduleHandler) exportCalendar(cmd *cobra.Command, schedule *service.Schedule, path string) error {
	calendarPath := cliutil.EnsureExtension(path, h.cfg.Output.CalendarExtension)
	if err := h.service.ExportCalendar(cmd.Context(), schedule, calendarPath); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nSchedule exported to iCalendar: %s\n", calendarPath)
	fmt.Fprintln(out, "You can import this file into Google Calendar:")
	fmt.Fprintln(out, "1. Go to Google Calendar website")
	fmt.Fprintln(out, "2. Click the '+' button next to 'Other calendars'")
	fmt.Fprintln(out, "3. Select 'Import'")
	fmt.Fprintln(out, "4. Upload the .ics file")
	return nil
}

func (h *ScheduleHandler) newShowCommand(withLog func(middleware.RunEFunc) middleware.RunEFunc) *cobra.Command {
	opts := &showOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the table of a saved schedule file",
		Args:  noArgs,
	}
	cmd.RunE = withLog(func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		schedule, err := h.service.Load(ctx, opts.file)
		if err != nil {
			return err
		}

		// 番号は先頭セットから求める。--set-number 指定時はそちらを優先
		setNumber := schedule.FirstSetNumber()
		if cmd.Flags().Changed("set-number") {
			if opts.setNumber < 1 {
				return model.NewAppError("INVALID_SET_NUMBER", "set number must be positive", "set_number", model.ErrInvalidSetNumber)
			}
			setNumber = opts.setNumber
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nG5 Schedule (loaded from %s):\n", opts.file)
		fmt.Fprintf(out, "Starting with Set %02d on %s\n", setNumber, model.FormatInputDate(schedule.StartDate()))
		cliutil.RenderTable(out, schedule.ToTable(setNumber-1))

		if opts.calendar == "" {
			return nil
		}
		return h.exportCalendar(cmd, schedule, opts.calendar)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", h.cfg.Output.JSONPath, "saved schedule JSON file")
	flags.IntVarP(&opts.setNumber, "set-number", "s", 1, "override the number used for day numbering")
	flags.StringVarP(&opts.calendar, "calendar", "c", "", "export the saved schedule to an iCalendar file")
	return cmd
}

func (h *ScheduleHandler) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			writeVersion(cmd.OutOrStdout())
		},
	}
}

func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "%s version %s\n", config.AppName, config.AppVersion)
}
