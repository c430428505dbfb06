package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Label struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoardID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"not null"`
	Color   string    `gorm:"not null"`
}

func (l *Label) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type CardLabel struct {
	CardID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	LabelID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Label Label `gorm:"foreignKey:LabelID;constraint:OnDelete:CASCADE"`
}
