package studyplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"study_hub/internal/models"
)

const (
	// WindowDays — длина окна вперёд: смещения 0..6 от текущей даты.
	WindowDays = 7

	StudyEventTitle      = "Individual Study"
	DefaultStudyTopic    = "Individual study session"
	StudyDurationMinutes = 60
	existenceCheckSpan   = time.Minute
	MessageNoProfiles    = "No profiles with study schedules found"
	MessageScheduledDone = "Scheduled studies created successfully"
)

// Store — хранилище профилей, членств и событий, с которым работает генератор.
type Store interface {
	// ProfilesWithSchedule возвращает профили с непустой колонкой study_schedule.
	ProfilesWithSchedule(ctx context.Context) ([]models.Profile, error)
	// FirstCommunityID возвращает сообщество первого найденного членства пользователя.
	FirstCommunityID(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)
	// StudyEventExists проверяет наличие занятия пользователя с event_date в [from, to).
	StudyEventExists(ctx context.Context, userID uuid.UUID, from, to time.Time) (bool, error)
	InsertEvents(ctx context.Context, events []models.Event) error
}

// Notifier получает созданные события пользователя (например, websocket-хаб).
type Notifier interface {
	StudyEventsCreated(userID uuid.UUID, events []models.Event)
}

type Option func(*Expander)

func WithNotifier(n Notifier) Option { return func(e *Expander) { e.notifier = n } }

func WithClock(now func() time.Time) Option { return func(e *Expander) { e.now = now } }

// WithLocation задаёт часовой пояс, в котором считаются границы дней.
func WithLocation(loc *time.Location) Option {
	return func(e *Expander) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// Expander разворачивает недельные правила пользователей в конкретные события
// на скользящее окно из WindowDays дней.
type Expander struct {
	store    Store
	notifier Notifier
	log      zerolog.Logger
	now      func() time.Time
	loc      *time.Location
}

func NewExpander(store Store, log zerolog.Logger, opts ...Option) *Expander {
	e := &Expander{
		store: store,
		log:   log.With().Str("component", "study_expander").Logger(),
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run выполняет один проход генерации. Ошибка возвращается только если не удалось
// получить список профилей; сбои по отдельным пользователям попадают в Summary.
func (e *Expander) Run(ctx context.Context) (Summary, error) {
	now := e.now().In(e.loc)

	profiles, err := e.store.ProfilesWithSchedule(ctx)
	if err != nil {
		return Summary{}, errors.Wrap(err, "не удалось получить профили с расписанием")
	}

	sum := Summary{ProfilesProcessed: len(profiles)}
	if len(profiles) == 0 {
		e.log.Info().Msg("профили с расписанием не найдены")
		return sum, nil
	}

	for _, p := range profiles {
		res := e.expandUser(ctx, p, now)
		switch res.Outcome {
		case OutcomeFailed:
			e.log.Error().Err(res.Err).Str("user_id", p.ID.String()).Msg("ошибка генерации занятий пользователя")
		case OutcomeSkipped:
			e.log.Debug().Str("user_id", p.ID.String()).Str("reason", string(res.Reason)).Msg("пользователь пропущен")
		case OutcomeCreated:
			if res.Created > 0 {
				e.log.Info().Str("user_id", p.ID.String()).Int("created", res.Created).Msg("созданы занятия")
			}
		}
		sum.add(res)
	}

	return sum, nil
}

func (e *Expander) expandUser(ctx context.Context, p models.Profile, now time.Time) UserResult {
	rules, invalid, err := ParseSchedule(p.StudySchedule)
	if invalid > 0 {
		e.log.Warn().Str("user_id", p.ID.String()).Int("invalid", invalid).Msg("некорректные правила расписания пропущены")
	}
	if err != nil || len(rules) == 0 {
		return skipped(p.ID, ReasonNoSchedule)
	}

	communityID, ok, err := e.store.FirstCommunityID(ctx, p.ID)
	if err != nil {
		return failed(p.ID, errors.Wrap(err, "поиск сообщества"))
	}
	if !ok {
		return skipped(p.ID, ReasonNoMembership)
	}

	var staged []models.Event
	for offset := 0; offset < WindowDays; offset++ {
		day := time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, now.Location())
		weekday := int(day.Weekday())

		for _, rule := range rules {
			if rule.DayOfWeek != weekday {
				continue
			}
			at, err := rule.At(day)
			if err != nil || !at.After(now) {
				continue
			}

			exists, err := e.store.StudyEventExists(ctx, p.ID, at, at.Add(existenceCheckSpan))
			if err != nil {
				return failed(p.ID, errors.Wrapf(err, "проверка занятия на %s", at.Format(time.RFC3339)))
			}
			if exists {
				continue
			}

			staged = append(staged, newStudyEvent(p.ID, communityID, rule, at))
		}
	}

	if len(staged) == 0 {
		return created(p.ID, 0)
	}

	if err := e.store.InsertEvents(ctx, staged); err != nil {
		return failed(p.ID, errors.Wrap(err, "вставка занятий"))
	}

	if e.notifier != nil {
		e.notifier.StudyEventsCreated(p.ID, staged)
	}
	return created(p.ID, len(staged))
}

func newStudyEvent(userID, communityID uuid.UUID, rule StudyRule, at time.Time) models.Event {
	topic := rule.Topic
	if topic == "" {
		topic = DefaultStudyTopic
	}
	return models.Event{
		Title:           StudyEventTitle,
		Description:     topic,
		StudyTopic:      topic,
		EventDate:       at,
		DurationMinutes: StudyDurationMinutes,
		EventType:       models.EventTypeIndividualStudy,
		Status:          models.EventStatusScheduled,
		CreatedBy:       userID,
		CommunityID:     communityID,
	}
}
