package models

import (
	"time"

	"github.com/google/uuid"
)

type InviteCode struct {
	Base
	Code        string    `gorm:"uniqueIndex;size:16;not null" json:"code"`
	CommunityID uuid.UUID `gorm:"type:uuid;index;not null" json:"community_id"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	ExpiresAt   time.Time `gorm:"index;not null" json:"expires_at"`
}
