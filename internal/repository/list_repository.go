package repository

import (
	"context"
	"errors"
	"fmt"

	"kanban/internal/model"
	"kanban/internal/position"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Reorder errors.
var (
	ErrListNotOnBoard  = errors.New("list does not belong to board")
	ErrDuplicateListID = errors.New("list listed twice")
)

type ListRepositoryInterface interface {
	Create(ctx context.Context, list *model.List) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.List, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.List, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.List, error)
	Update(ctx context.Context, list *model.List) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error)
	Reorder(ctx context.Context, boardID uuid.UUID, listIDs []uuid.UUID) error
}

var _ ListRepositoryInterface = (*ListRepository)(nil)

type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(list).Error
}

func (r *ListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.List, error) {
	var list model.List
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

// GetDetail returns the list with its cards in position order.
func (r *ListRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.List, error) {
	var list model.List
	db := withCardDetail(r.db.WithContext(ctx).Preload("Cards", byPosition), "Cards.")
	if err := db.Where("id = ?", id).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (r *ListRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	var lists []model.List
	db := withCardDetail(r.db.WithContext(ctx).Preload("Cards", byPosition), "Cards.")
	err := byPosition(db.Where("board_id = ?", boardID)).Find(&lists).Error
	return lists, err
}

func (r *ListRepository) Update(ctx context.Context, list *model.List) error {
	result := r.db.WithContext(ctx).Model(list).Omit(clause.Associations).Select("*").Updates(list)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListNotFound
	}
	return nil
}

func (r *ListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.List{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListNotFound
	}
	return nil
}

func (r *ListRepository) GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.List{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("board_id = ?", boardID).
		Scan(&maxPosition).Error

	return maxPosition.Max, err
}

// Reorder assigns dense positions to listIDs in the given order. Lists of the
// board missing from listIDs keep their relative order behind them, so every
// list ends up with a distinct key.
func (r *ListRepository) Reorder(ctx context.Context, boardID uuid.UUID, listIDs []uuid.UUID) error {
	given := make(map[uuid.UUID]bool, len(listIDs))
	for _, id := range listIDs {
		if given[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateListID, id)
		}
		given[id] = true
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []uuid.UUID
		err := tx.Model(&model.List{}).
			Where("board_id = ?", boardID).
			Order("position, created_at").
			Pluck("id", &current).Error
		if err != nil {
			return err
		}

		onBoard := make(map[uuid.UUID]bool, len(current))
		for _, id := range current {
			onBoard[id] = true
		}
		order := make([]uuid.UUID, 0, len(current))
		for _, id := range listIDs {
			if !onBoard[id] {
				return fmt.Errorf("%w: %s", ErrListNotOnBoard, id)
			}
			order = append(order, id)
		}
		for _, id := range current {
			if !given[id] {
				order = append(order, id)
			}
		}

		for i, id := range order {
			err := tx.Model(&model.List{}).
				Where("id = ? AND board_id = ?", id, boardID).
				Update("position", position.Dense(i)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
