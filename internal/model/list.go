package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type List struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"not null"`
	Position  int       `gorm:"not null"`
	Color     *string
	CreatedAt time.Time

	Cards []Card `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

func (l *List) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// DefaultList describes one of the columns every new board starts with.
type DefaultList struct {
	Title    string
	Position int
	Color    string
}

var DefaultLists = []DefaultList{
	{Title: "To Do", Position: 1000, Color: "#fef2f2"},
	{Title: "In Progress", Position: 2000, Color: "#fef3e2"},
	{Title: "Review", Position: 3000, Color: "#f0f9ff"},
	{Title: "Done", Position: 4000, Color: "#f0fdf4"},
}
