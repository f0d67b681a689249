// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "g5"
	AppVersion = "0.2.0"
)

// デフォルト設定値
const (
	DefaultLogLevel          = "warn" // CLIなので通常は警告以上のみ
	DefaultLogFormat         = "json"
	DefaultOutputPath        = "g5_schedule.json"
	DefaultCalendarExtension = ".ics"
	DefaultCalendarEnabled   = true
	DefaultCalendarProductID = "-//G5 Schedule Generator//g5//EN"
	DefaultMethodName        = "G5 Spaced Repetition"
)

// EnvPrefix は環境変数の接頭辞 (例: G5_LOG_LEVEL)
const EnvPrefix = "G5"
