package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardAssignment links a team member to a card. At most one row exists per pair.
type CardAssignment struct {
	CardID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamMemberID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignedAt   time.Time

	TeamMember TeamMember `gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
}

func (a *CardAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now()
	}
	return nil
}
