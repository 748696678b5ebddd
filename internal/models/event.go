package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeIndividualStudy = "individual_study"
	EventStatusScheduled     = "scheduled"
)

type Event struct {
	Base
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	StudyTopic      string    `json:"study_topic"`
	EventDate       time.Time `gorm:"index:idx_events_owner_type_date,priority:3;not null" json:"event_date"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	EventType       string    `gorm:"index:idx_events_owner_type_date,priority:2;not null" json:"event_type"`
	Status          string    `gorm:"not null;default:'scheduled'" json:"status"` // attended/cancelled выставляет клиент
	CreatedBy       uuid.UUID `gorm:"type:uuid;index:idx_events_owner_type_date,priority:1;not null" json:"created_by"`
	CommunityID     uuid.UUID `gorm:"type:uuid;index;not null" json:"community_id"`
}
