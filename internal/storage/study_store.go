package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"study_hub/internal/models"
)

// StudyStore реализует studyplan.Store поверх gorm.
type StudyStore struct {
	db *gorm.DB
}

func NewStudyStore(db *gorm.DB) *StudyStore {
	return &StudyStore{db: db}
}

// ProfilesWithSchedule возвращает профили с непустым расписанием: NULL, null и [] не выбираются.
func (s *StudyStore) ProfilesWithSchedule(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.WithContext(ctx).
		Where("study_schedule IS NOT NULL AND study_schedule NOT IN ('null'::jsonb, '[]'::jsonb)").
		Order("created_at ASC").
		Find(&profiles).Error; err != nil {
		return nil, errors.Wrap(err, "выборка профилей")
	}
	return profiles, nil
}

func (s *StudyStore) FirstCommunityID(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
	var member models.CommunityMember
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(1).
		Find(&member)
	if res.Error != nil {
		return uuid.Nil, false, errors.Wrapf(res.Error, "членство пользователя %s", userID)
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, false, nil
	}
	return member.CommunityID, true, nil
}

func (s *StudyStore) StudyEventExists(ctx context.Context, userID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("created_by = ? AND event_type = ? AND event_date >= ? AND event_date < ?",
			userID, models.EventTypeIndividualStudy, from, to).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "проверка существующего занятия")
	}
	return count > 0, nil
}

func (s *StudyStore) InsertEvents(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&events).Error; err != nil {
		return errors.Wrap(err, "пакетная вставка событий")
	}
	return nil
}

// UpcomingEvents возвращает ближайшие события пользователя начиная с from.
func (s *StudyStore) UpcomingEvents(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).
		Where("created_by = ? AND event_date >= ?", userID, from).
		Order("event_date ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, errors.Wrap(err, "выборка событий")
	}
	return events, nil
}
