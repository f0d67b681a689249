// internal/cliutil/validator.go
package cliutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_g5_schedule/internal/model"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// フラグ名付きで表示する
var fieldNameTranslations = map[string]string{
	"start_date":  "start date (-d)",
	"new_sets":    "number of new sets (-n)",
	"set_number":  "set number (-s)",
	"output_path": "output path (-o)",
}

// フィールドごとのエラー種別。ここにないものは ErrInvalidInput
var fieldSentinels = map[string]error{
	"start_date": model.ErrInvalidDateFormat,
	"new_sets":   model.ErrInvalidCount,
	"set_number": model.ErrInvalidSetNumber,
}

var fieldCodes = map[string]string{
	"start_date": "INVALID_DATE_FORMAT",
	"new_sets":   "INVALID_COUNT",
	"set_number": "INVALID_SET_NUMBER",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// DD-MM-YYYY 形式の日付
	if err := Validator.RegisterValidation("g5date", func(fl validator.FieldLevel) bool {
		_, err := model.ParseInputDate(fl.Field().String())
		return err == nil
	}); err != nil {
		log.Fatal(err)
	}

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		if err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateFieldName(fe.Field()), fe.Param())
			return t
		}); err != nil {
			log.Fatal(err)
		}
	}

	registerTranslation("required", "{0} is required")
	registerTranslation("g5date", "{0} must be a date in DD-MM-YYYY format")
	registerTranslation("gt", "{0} must be greater than {1}")
	registerTranslation("gte", "{0} must be {1} or greater")
}

func translateFieldName(field string) string {
	if name, ok := fieldNameTranslations[field]; ok {
		return name
	}
	return field
}

// ValidateRequest は生成リクエストを検証し、失敗した場合は AppError を返します。
func ValidateRequest(req *model.GenerateRequest) error {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return NewValidationError(errs)
	}
	return model.NewAppError("VALIDATION_ERROR", err.Error(), "", model.ErrInvalidInput)
}

// NewValidationError は検証エラーをまとめて1つの AppError にします。
// エラー種別は最初に失敗したフィールドで決まる。
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, fe := range errs {
		fields = append(fields, fe.Field())
		messages = append(messages, fe.Translate(Trans))
	}

	code := "VALIDATION_ERROR"
	sentinel := model.ErrInvalidInput
	if len(errs) > 0 {
		first := errs[0].Field()
		if s, ok := fieldSentinels[first]; ok {
			sentinel = s
			code = fieldCodes[first]
		}
	}

	return model.NewAppError(
		code,
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		sentinel,
	)
}
