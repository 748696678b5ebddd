package studyplan

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrScheduleNotList — в колонке study_schedule лежит не JSON-массив.
var ErrScheduleNotList = errors.New("study_schedule не является списком")

// StudyRule — правило недельного повторения: день недели (0 — воскресенье), время HH:MM и тема.
type StudyRule struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Time      string `json:"time"`
	Topic     string `json:"topic,omitempty"`
}

// rawRule повторяет форму, в которой правило хранится в БД.
// Указатели нужны, чтобы отличить отсутствующее поле от нулевого значения.
// Длина темы здесь не ограничивается: лимит действует только на запись через API.
type rawRule struct {
	DayOfWeek *int    `json:"dayOfWeek" validate:"required,min=0,max=6"`
	Time      *string `json:"time" validate:"required,hhmm"`
	Topic     *string `json:"topic"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidations(v)
	return v
}

// RegisterValidations добавляет тег hhmm в переданный валидатор (например, движок gin binding).
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, _, err := parseClock(fl.Field().String())
		return err == nil
	})
}

// ParseSchedule разбирает содержимое study_schedule.
// Пустое значение и null дают пустой список. Некорректные элементы пропускаются,
// их количество возвращается в invalid.
func ParseSchedule(raw []byte) (rules []StudyRule, invalid int, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, 0, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, 0, ErrScheduleNotList
	}

	rules = make([]StudyRule, 0, len(items))
	for _, item := range items {
		var r rawRule
		if err := json.Unmarshal(item, &r); err != nil {
			invalid++
			continue
		}
		if err := validate.Struct(r); err != nil {
			invalid++
			continue
		}
		rule := StudyRule{DayOfWeek: *r.DayOfWeek, Time: strings.TrimSpace(*r.Time)}
		if r.Topic != nil {
			rule.Topic = strings.TrimSpace(*r.Topic)
		}
		rules = append(rules, rule)
	}
	return rules, invalid, nil
}

// EncodeSchedule сериализует правила для записи в study_schedule.
func EncodeSchedule(rules []StudyRule) ([]byte, error) {
	if rules == nil {
		rules = []StudyRule{}
	}
	b, err := json.Marshal(rules)
	if err != nil {
		return nil, errors.Wrap(err, "не удалось сериализовать расписание")
	}
	return b, nil
}

// At возвращает момент занятия в указанный день: дата дня + время правила, секунды обнулены.
func (r StudyRule) At(day time.Time) (time.Time, error) {
	hour, minute, err := parseClock(r.Time)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

// parseClock принимает "HH:MM" (час может быть однозначным) и "HH:MM:SS"; секунды отбрасываются.
func parseClock(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, errors.Errorf("неверный формат времени %q, ожидается HH:MM", s)
}
