package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type Community struct {
	Base
	Name      string    `gorm:"not null" json:"name"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
}

type CommunityMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CommunityID uuid.UUID `gorm:"type:uuid;index;not null" json:"community_id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Role        string    `gorm:"not null;default:'member'" json:"role"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (m *CommunityMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// CanIssueInvites — владельцы и администраторы сообщества могут выпускать инвайт-коды.
func (m CommunityMember) CanIssueInvites() bool {
	return m.Role == RoleOwner || m.Role == RoleAdmin
}
