// cmd/g5/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"go_g5_schedule/internal/cliutil"
	"go_g5_schedule/internal/config"
	"go_g5_schedule/internal/handlers"
	"go_g5_schedule/internal/repository"
	"go_g5_schedule/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(tempLogger)

	configDir := os.Getenv("G5_CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		cliutil.HandleError(os.Stderr, err)
		return cliutil.ExitFailure
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// 相対パスはカレントディレクトリ基準
	fs, err := repository.NewFileSystem("", logger)
	if err != nil {
		cliutil.HandleError(os.Stderr, err)
		return cliutil.ExitIOError
	}

	scheduleRepo := repository.NewFileScheduleRepository(fs)
	var calendarWriter repository.CalendarWriter
	if cfg.Calendar.Enabled {
		calendarWriter = repository.NewICSCalendarWriter(fs, cfg.Calendar.ProductID)
	} else {
		logger.Debug("Calendar export disabled by configuration")
	}

	scheduleService := service.NewScheduleService(scheduleRepo, calendarWriter, cfg)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, cfg, logger)

	root := scheduleHandler.NewRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		cliutil.HandleError(os.Stderr, err)
		return cliutil.MapErrorToExitCode(err)
	}
	return cliutil.ExitOK
}

// newLogger は設定に基づいて slog ロガーを初期化します。
// APP_ENV=dev なら tint、それ以外は JSON。出力先は標準エラー (表は標準出力に出す)。
func newLogger(cfg *config.Config) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelWarn)
		slog.Warn("Unknown log level specified in config, defaulting to WARN", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	switch {
	case strings.ToLower(appEnv) == "dev":
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	case strings.ToLower(cfg.Log.Format) == "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	default:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}
