// internal/config/config.go
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json / text
}

type OutputConfig struct {
	JSONPath          string `mapstructure:"json_path"`
	CalendarExtension string `mapstructure:"calendar_extension"`
}

type CalendarConfig struct {
	Enabled    bool   `mapstructure:"enabled"` // false ならカレンダー出力を無効化
	ProductID  string `mapstructure:"product_id"`
	MethodName string `mapstructure:"method_name"` // イベント説明文に入る手法名
}

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

var Cfg Config

// LoadConfig は path 配下 (なければカレント) の config.yaml と G5_ 環境変数を読み込みます。
// 設定ファイルがなくてもエラーにはしない。
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // log.level -> G5_LOG_LEVEL
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("Config file not found, using defaults and environment variables")
		} else {
			slog.Error("Error reading config file", slog.Any("error", err))
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("Error unmarshalling config", slog.Any("error", err))
		return nil, err
	}

	normalize(&cfg)
	Cfg = cfg
	return &cfg, nil
}

// Default は設定ファイルを読まずにデフォルト値だけの設定を返します (テスト用)。
func Default() *Config {
	cfg := Config{Calendar: CalendarConfig{Enabled: DefaultCalendarEnabled}}
	normalize(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("output.json_path", DefaultOutputPath)
	v.SetDefault("output.calendar_extension", DefaultCalendarExtension)
	v.SetDefault("calendar.enabled", DefaultCalendarEnabled)
	v.SetDefault("calendar.product_id", DefaultCalendarProductID)
	v.SetDefault("calendar.method_name", DefaultMethodName)
}

// normalize は空の値をデフォルトで埋めます。
func normalize(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Output.JSONPath == "" {
		cfg.Output.JSONPath = DefaultOutputPath
	}
	if cfg.Output.CalendarExtension == "" {
		cfg.Output.CalendarExtension = DefaultCalendarExtension
	}
	if !strings.HasPrefix(cfg.Output.CalendarExtension, ".") {
		cfg.Output.CalendarExtension = "." + cfg.Output.CalendarExtension
	}
	if cfg.Calendar.ProductID == "" {
		cfg.Calendar.ProductID = DefaultCalendarProductID
	}
	if cfg.Calendar.MethodName == "" {
		cfg.Calendar.MethodName = DefaultMethodName
	}
}
