package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// RunEFunc は cobra.Command.RunE と同じ形の関数です。
type RunEFunc func(cmd *cobra.Command, args []string) error

// CommandLogger はコマンド実行のログ出力を一元管理するミドルウェアです。
// 実行ID付きのロガーをコンテキストに入れ、開始と終了をログに残します。
func CommandLogger(logger *slog.Logger) func(RunEFunc) RunEFunc {
	return func(next RunEFunc) RunEFunc {
		return func(cmd *cobra.Command, args []string) error {
			startTime := time.Now()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			runLogger := logger.With("run_id", uuid.NewString(), "command", cmd.CommandPath())
			cmd.SetContext(WithLogger(ctx, runLogger))

			runLogger.Info("Command started", "args", args)

			err := next(cmd, args)

			// ログレベルを決定
			level := slog.LevelInfo
			if err != nil {
				level = slog.LevelError
			}
			attrs := []any{"latency_ms", float64(time.Since(startTime).Nanoseconds()) / 1e6}
			if err != nil {
				attrs = append(attrs, "error", err)
			}
			runLogger.Log(cmd.Context(), level, "Command completed", attrs...)

			return err
		}
	}
}

// WithLogger はロガーを格納したコンテキストを返します。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
