// internal/service/schedule.go
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go_g5_schedule/internal/model"
)

// Schedule は1回の生成で扱うセットの集合です。
type Schedule struct {
	startDate time.Time
	sets      []model.StudySet
}

func NewSchedule(startDate time.Time) *Schedule {
	return &Schedule{startDate: model.DateOnly(startDate)}
}

func (s *Schedule) StartDate() time.Time {
	return s.startDate
}

// Sets は内部スライスのコピーを返します。
func (s *Schedule) Sets() []model.StudySet {
	out := make([]model.StudySet, len(s.sets))
	copy(out, s.sets)
	return out
}

// AddNewSets は count 件のセットを1日ずつずらして追加します。
// 名前は startingNumber から連番 ("Set 01" ...)。
func (s *Schedule) AddNewSets(count, startingNumber int) error {
	if count < 1 {
		return model.ErrInvalidCount
	}
	if startingNumber < 1 {
		return model.ErrInvalidSetNumber
	}
	for i := 0; i < count; i++ {
		name := model.FormatSetName(startingNumber + i)
		s.sets = append(s.sets, model.NewStudySet(name, model.AddDays(s.startDate, i)))
	}
	return nil
}

// EventsByDate は全セットの全イベントを日付 (YYYY-MM-DD) ごとにまとめます。
// 同じ日に学習イベントが2件あると後のセットで上書きされる。復習は上書きせず追加していく。
func (s *Schedule) EventsByDate() map[string]*model.DayEntry {
	byDate, _ := s.groupByDate()
	return byDate
}

func (s *Schedule) groupByDate() (map[string]*model.DayEntry, map[string]time.Time) {
	byDate := make(map[string]*model.DayEntry)
	dates := make(map[string]time.Time)
	for _, set := range s.sets {
		for _, event := range set.AllEvents() {
			key := model.FormatISODate(event.Date)
			entry, ok := byDate[key]
			if !ok {
				entry = &model.DayEntry{Reviews: []string{}}
				byDate[key] = entry
				dates[key] = event.Date
			}
			if event.Kind == model.EventLearn {
				entry.NewWords = event.SetName
			} else {
				entry.Reviews = append(entry.Reviews, event.ReviewLabel())
			}
		}
	}
	return byDate, dates
}

// ToTable は日付の昇順で1日1行の表を作ります。
// 日番号 = (日付 - 開始日) + 1 + dayOffset
func (s *Schedule) ToTable(dayOffset int) []model.TableRow {
	byDate, dates := s.groupByDate()

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys) // YYYY-MM-DD なので文字列順 = 日付順

	rows := make([]model.TableRow, 0, len(keys))
	for _, key := range keys {
		entry, date := byDate[key], dates[key]
		dayNumber := model.DaysBetween(s.startDate, date) + 1 + dayOffset

		newWords := entry.NewWords
		if newWords == "" {
			newWords = "-"
		}
		reviews := "-"
		if len(entry.Reviews) > 0 {
			reviews = strings.Join(entry.Reviews, ", ")
		}

		rows = append(rows, model.TableRow{
			Date:     fmt.Sprintf("%s (D%d)", date.Format(model.LabelDateLayout), dayNumber),
			NewWords: newWords,
			Reviews:  reviews,
		})
	}
	return rows
}

// ActivityList は保存・カレンダー出力用のフラットな一覧です。
// セット順、セット内は学習→R1..R4。日付順には並べ替えない。
func (s *Schedule) ActivityList() []model.Activity {
	activities := make([]model.Activity, 0, len(s.sets)*(len(model.ReviewOffsets)+1))
	for _, set := range s.sets {
		for _, event := range set.AllEvents() {
			activities = append(activities, model.NewActivity(event))
		}
	}
	return activities
}

func (s *Schedule) ToDocument() *model.ScheduleDocument {
	records := make([]model.SetRecord, 0, len(s.sets))
	for _, set := range s.sets {
		records = append(records, set.Record())
	}
	return &model.ScheduleDocument{
		Sets:         records,
		StartDate:    model.FormatISODate(s.startDate),
		FullSchedule: s.ActivityList(),
	}
}

// ScheduleFromDocument は保存済みドキュメントからスケジュールを復元します。
// full_schedule は sets から再計算できるので読まない。
func ScheduleFromDocument(doc *model.ScheduleDocument) (*Schedule, error) {
	if doc == nil {
		return nil, fmt.Errorf("empty schedule document: %w", model.ErrInvalidInput)
	}
	start, err := model.ParseISODate(doc.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start_date %q: %w", doc.StartDate, model.ErrInvalidDateFormat)
	}

	schedule := NewSchedule(start)
	for _, record := range doc.Sets {
		set, err := record.StudySet()
		if err != nil {
			return nil, err
		}
		schedule.sets = append(schedule.sets, set)
	}
	return schedule, nil
}

// FirstSetNumber は先頭セットの番号を返します (セットがなければ 1)。
func (s *Schedule) FirstSetNumber() int {
	if len(s.sets) == 0 {
		return 1
	}
	n, err := model.ParseSetNumber(s.sets[0].Name())
	if err != nil || n < 1 {
		return 1
	}
	return n
}
