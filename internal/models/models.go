package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Base — аналог gorm.Model с UUID-ключом.
type Base struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type Profile struct {
	Base
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string `gorm:"not null" json:"full_name"`
	PasswordHash string `gorm:"not null" json:"-"`
	// Недельное расписание самостоятельных занятий: [{dayOfWeek, time, topic}]
	StudySchedule datatypes.JSON `gorm:"type:jsonb" json:"study_schedule"`
}

// All возвращает список моделей для AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Profile{},
		&Community{},
		&CommunityMember{},
		&Event{},
		&InviteCode{},
	}
}
