// internal/model/schedule.go
package model

// ScheduleDocument は g5_schedule.json の中身。
// フィールド順がそのままJSONのキー順になる。
type ScheduleDocument struct {
	Sets         []SetRecord `json:"sets"`
	StartDate    string      `json:"start_date"`
	FullSchedule []Activity  `json:"full_schedule"`
}

// GenerateRequest はスケジュール生成の入力DTO
type GenerateRequest struct {
	StartDate  string `json:"start_date" validate:"required,g5date"`
	NewSets    int    `json:"new_sets" validate:"gt=0"`
	SetNumber  int    `json:"set_number" validate:"gte=1"`
	OutputPath string `json:"output_path" validate:"required"`
}
