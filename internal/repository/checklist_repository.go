package repository

import (
	"context"
	"errors"

	"kanban/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChecklistRepositoryInterface interface {
	Create(ctx context.Context, item *model.ChecklistItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ChecklistItem, error)
	Update(ctx context.Context, item *model.ChecklistItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetMaxPosition(ctx context.Context, cardID uuid.UUID) (int, error)
}

var _ ChecklistRepositoryInterface = (*ChecklistRepository)(nil)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) Create(ctx context.Context, item *model.ChecklistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *ChecklistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	result := r.db.WithContext(ctx).First(&item, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrChecklistItemNotFound
		}
		return nil, result.Error
	}
	return &item, nil
}

func (r *ChecklistRepository) Update(ctx context.Context, item *model.ChecklistItem) error {
	result := r.db.WithContext(ctx).Model(item).Select("*").Updates(item)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChecklistItemNotFound
	}
	return nil
}

func (r *ChecklistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ChecklistItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChecklistItemNotFound
	}
	return nil
}

func (r *ChecklistRepository) GetMaxPosition(ctx context.Context, cardID uuid.UUID) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.ChecklistItem{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("card_id = ?", cardID).
		Scan(&maxPosition).Error

	return maxPosition.Max, err
}
