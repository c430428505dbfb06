package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardAccess records that an email validated a board's access code.
// It is an audit trail only and never consulted for authorization.
type BoardAccess struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoardID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_board_accesses_board_email"`
	Email      string    `gorm:"not null;uniqueIndex:idx_board_accesses_board_email"`
	AccessedAt time.Time

	Board Board `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

func (a *BoardAccess) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AccessedAt.IsZero() {
		a.AccessedAt = time.Now()
	}
	return nil
}
