// internal/cliutil/response.go
package cliutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go_g5_schedule/internal/model"

	"github.com/olekukonko/tablewriter"
)

// 終了コード (sysexits.h に合わせる)
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 64
	ExitUnavailable = 69
	ExitIOError     = 74
)

// HandleError はエラーを利用者向けの1行にして w に書き出します。
func HandleError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintf(w, "Error: %s\n", appErr.Error())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// MapErrorToExitCode はアプリケーションエラーを終了コードにマッピングします
func MapErrorToExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *model.AppError
	// AppErrorの場合は、ラップされたエラーで判定する
	if errors.As(err, &appErr) && appErr.Unwrap() != nil {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrInvalidDateFormat),
		errors.Is(err, model.ErrInvalidCount),
		errors.Is(err, model.ErrInvalidSetNumber),
		errors.Is(err, model.ErrInvalidInput):
		return ExitUsage
	case errors.Is(err, model.ErrMissingDependency):
		return ExitUnavailable
	case errors.Is(err, model.ErrIOFailure):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// RenderTable は日ごとの行を枠なしの左寄せ表として書き出します。
func RenderTable(w io.Writer, rows []model.TableRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "New Words", "Reviews"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, r := range rows {
		table.Append([]string{r.Date, r.NewWords, r.Reviews})
	}
	table.Render()
}

// EnsureExtension は拡張子がなければ ext を付けます (大文字小文字は区別しない)。
func EnsureExtension(path, ext string) string {
	if ext == "" {
		return path
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	return path + ext
}
