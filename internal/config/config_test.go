// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("正常系: 設定ファイルなしならデフォルト値", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
		assert.Equal(t, DefaultOutputPath, cfg.Output.JSONPath)
		assert.Equal(t, DefaultCalendarExtension, cfg.Output.CalendarExtension)
		assert.Equal(t, DefaultCalendarProductID, cfg.Calendar.ProductID)
		assert.Equal(t, DefaultMethodName, cfg.Calendar.MethodName)
		assert.True(t, cfg.Calendar.Enabled)
	})

	t.Run("正常系: config.yaml の値を読む", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "log:\n  level: debug\noutput:\n  json_path: course.json\n  calendar_extension: ical\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "course.json", cfg.Output.JSONPath)
		assert.Equal(t, ".ical", cfg.Output.CalendarExtension) // 先頭のドットを補う
		assert.Equal(t, cfg.Output.JSONPath, Cfg.Output.JSONPath)
	})

	t.Run("正常系: 環境変数が優先される", func(t *testing.T) {
		t.Setenv("G5_OUTPUT_JSON_PATH", "from_env.json")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "from_env.json", cfg.Output.JSONPath)
	})

	t.Run("正常系: カレンダー出力を無効化できる", func(t *testing.T) {
		t.Setenv("G5_CALENDAR_ENABLED", "false")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.False(t, cfg.Calendar.Enabled)
	})

	t.Run("異常系: 壊れたYAML", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0o644))

		cfg, err := LoadConfig(dir)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultOutputPath, cfg.Output.JSONPath)
	assert.True(t, cfg.Calendar.Enabled)
}
