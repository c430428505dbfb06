package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban/internal/model"
)

type LabelRepositoryInterface interface {
	Create(ctx context.Context, label *model.Label) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Label, error)
	Update(ctx context.Context, label *model.Label) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ LabelRepositoryInterface = (*LabelRepository)(nil)

type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// Create adds a new label to the database
func (r *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

// GetByID retrieves a label by its ID
func (r *LabelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	var label model.Label
	result := r.db.WithContext(ctx).First(&label, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, result.Error
	}
	return &label, nil
}

// GetByBoardID retrieves all labels for a specific board
func (r *LabelRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Label, error) {
	var labels []model.Label
	result := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("name ASC").Find(&labels)
	if result.Error != nil {
		return nil, result.Error
	}
	return labels, nil
}

// Update changes the name and color of a label
func (r *LabelRepository) Update(ctx context.Context, label *model.Label) error {
	result := r.db.WithContext(ctx).Model(label).Select("name", "color").Updates(label)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLabelNotFound
	}
	return nil
}

// Delete removes a label; card attachments go with it.
func (r *LabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Label{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLabelNotFound
	}
	return nil
}
