// internal/model/set.go
package model

import (
	"fmt"
	"time"
)

// ReviewOffsets はG5法の復習日 (学習日を1日目として 2, 4, 8, 15 日目)
var ReviewOffsets = [4]int{2, 4, 8, 15}

// StudySet は1日に学習する新規セットを表します。生成後は変更しない。
type StudySet struct {
	name      string
	learnDate time.Time
}

func NewStudySet(name string, learnDate time.Time) StudySet {
	return StudySet{
		name:      name,
		learnDate: DateOnly(learnDate),
	}
}

func (s StudySet) Name() string {
	return s.name
}

func (s StudySet) LearnDate() time.Time {
	return s.learnDate
}

func (s StudySet) LearningEvent() Event {
	return Event{
		Date:    s.learnDate,
		Kind:    EventLearn,
		SetName: s.name,
	}
}

// ReviewEvents は R1..R4 の4件を返します。
func (s StudySet) ReviewEvents() []Event {
	events := make([]Event, 0, len(ReviewOffsets))
	for i, offset := range ReviewOffsets {
		events = append(events, Event{
			Date:         AddDays(s.learnDate, offset-1), // 1日目が学習日なので -1
			Kind:         EventReview,
			ReviewNumber: i + 1,
			SetName:      s.name,
		})
	}
	return events
}

// AllEvents は学習イベント、続けて R1..R4 の順で返します。
func (s StudySet) AllEvents() []Event {
	return append([]Event{s.LearningEvent()}, s.ReviewEvents()...)
}

func (s StudySet) ReviewDates() []time.Time {
	dates := make([]time.Time, 0, len(ReviewOffsets))
	for _, e := range s.ReviewEvents() {
		dates = append(dates, e.Date)
	}
	return dates
}

func (s StudySet) Record() SetRecord {
	reviewDays := make([]string, 0, len(ReviewOffsets))
	for _, d := range s.ReviewDates() {
		reviewDays = append(reviewDays, FormatISODate(d))
	}
	return SetRecord{
		Set:        s.name,
		LearnedOn:  FormatISODate(s.learnDate),
		ReviewDays: reviewDays,
	}
}

// SetRecord は保存ファイル内のセット1件
type SetRecord struct {
	Set        string   `json:"set"`
	LearnedOn  string   `json:"learned_on"`
	ReviewDays []string `json:"review_days"`
}

// StudySet は保存済みレコードからセットを復元します。
// review_days は learned_on から再計算されるため読み込まない。
func (r SetRecord) StudySet() (StudySet, error) {
	if r.Set == "" {
		return StudySet{}, fmt.Errorf("set record has no name: %w", ErrInvalidInput)
	}
	learnDate, err := ParseISODate(r.LearnedOn)
	if err != nil {
		return StudySet{}, fmt.Errorf("set %q has invalid learned_on %q: %w", r.Set, r.LearnedOn, ErrInvalidDateFormat)
	}
	return NewStudySet(r.Set, learnDate), nil
}

// FormatSetName は "Set 01" 形式の名前を返します (2桁ゼロ埋め)。
func FormatSetName(number int) string {
	return fmt.Sprintf("Set %02d", number)
}

// ParseSetNumber は "Set 07" から 7 を取り出します。
func ParseSetNumber(name string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(name, "Set %d", &n); err != nil {
		return 0, fmt.Errorf("cannot read set number from %q: %w", name, ErrInvalidInput)
	}
	return n, nil
}
