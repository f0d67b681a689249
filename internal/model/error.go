// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidCount      = errors.New("number of new sets must be positive")
	ErrInvalidSetNumber  = errors.New("set number must be positive")
	ErrIOFailure         = errors.New("i/o failure")
	ErrMissingDependency = errors.New("missing dependency") // カレンダー出力先が未設定の場合
)

// AppError は利用者に見せるメッセージと原因エラーを保持します。
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap で errors.Is / errors.As から元のエラーに辿れるようにする
func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Err:     err,
	}
}
