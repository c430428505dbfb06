package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultBoardBackground = "#0079bf"

type Board struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Description *string
	Background  string  `gorm:"not null"`
	AccessCode  *string `gorm:"uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lists   []List       `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
	Members []TeamMember `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
	Labels  []Label      `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Background == "" {
		b.Background = DefaultBoardBackground
	}
	return nil
}
