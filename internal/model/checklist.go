package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChecklistItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"not null"`
	Completed bool      `gorm:"not null"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}

func (i *ChecklistItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
