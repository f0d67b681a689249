// internal/repository/schedule_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go_g5_schedule/internal/middleware"
	"go_g5_schedule/internal/model"

	"github.com/spf13/afero"
)

type ScheduleRepository interface {
	Save(ctx context.Context, path string, doc *model.ScheduleDocument) error
	Load(ctx context.Context, path string) (*model.ScheduleDocument, error)
}

type fileScheduleRepository struct {
	fs afero.Fs
}

func NewFileScheduleRepository(fs afero.Fs) ScheduleRepository {
	return &fileScheduleRepository{fs: fs}
}

// Save はドキュメントをインデント2のJSONで書き出します。既存ファイルは丸ごと上書き。
func (r *fileScheduleRepository) Save(ctx context.Context, path string, doc *model.ScheduleDocument) error {
	logger := middleware.GetLogger(ctx).With("path", path)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}

	if err := writeFile(r.fs, path, data); err != nil {
		logger.Error("Failed to write schedule file", "error", err)
		return fmt.Errorf("write %s: %w: %w", path, model.ErrIOFailure, err)
	}

	logger.Debug("Schedule file written", "bytes", len(data), "sets", len(doc.Sets))
	return nil
}

func (r *fileScheduleRepository) Load(ctx context.Context, path string) (*model.ScheduleDocument, error) {
	logger := middleware.GetLogger(ctx).With("path", path)

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("Schedule file not found")
		} else {
			logger.Error("Failed to read schedule file", "error", err)
		}
		return nil, fmt.Errorf("read %s: %w: %w", path, model.ErrIOFailure, err)
	}

	var doc model.ScheduleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Error("Failed to decode schedule file", "error", err)
		return nil, fmt.Errorf("decode %s: %w: %w", path, model.ErrInvalidInput, err)
	}

	logger.Debug("Schedule file loaded", "sets", len(doc.Sets))
	return &doc, nil
}
