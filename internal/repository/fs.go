package repository

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// NewFileSystem は出力ファイル用のファイルシステムを返します。
// baseDir を指定すると、相対パスはその下に解決される。
func NewFileSystem(baseDir string, appLogger *slog.Logger) (afero.Fs, error) {
	osFs := afero.NewOsFs()
	if baseDir == "" {
		appLogger.Debug("Using OS filesystem rooted at working directory")
		return osFs, nil
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		appLogger.Error("Failed to resolve output directory", slog.String("dir", baseDir), slog.Any("error", err))
		return nil, err
	}
	if err := osFs.MkdirAll(abs, 0o755); err != nil {
		appLogger.Error("Failed to create output directory", slog.String("dir", abs), slog.Any("error", err))
		return nil, err
	}

	appLogger.Debug("Using OS filesystem rooted at output directory", slog.String("dir", abs))
	return afero.NewBasePathFs(osFs, abs), nil
}

// writeFile はファイル全体を上書きします (追記やマージはしない)。
// 親ディレクトリは作らない。存在しなければ書き込みエラーになる。
func writeFile(fs afero.Fs, path string, data []byte) error {
	return afero.WriteFile(fs, path, data, os.FileMode(0o644))
}
