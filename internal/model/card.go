package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

type Card struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description *string
	Position    int `gorm:"not null"`
	DueDate     *time.Time
	Priority    string `gorm:"not null"`
	Status      string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Assignees []CardAssignment `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Labels    []CardLabel      `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Checklist []ChecklistItem  `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	if c.Status == "" {
		c.Status = StatusActive
	}
	return nil
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusCompleted, StatusArchived:
		return true
	}
	return false
}
