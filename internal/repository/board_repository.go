package repository

import (
	"context"
	"errors"

	"kanban/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board) error
	GetAll(ctx context.Context) ([]model.Board, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetWithoutAccessCode(ctx context.Context) ([]model.Board, error)
	SetAccessCode(ctx context.Context, id uuid.UUID, code string) error
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create inserts the board and its Lists in one transaction.
func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(board).Error; err != nil {
			return err
		}
		if len(board.Lists) == 0 {
			return nil
		}
		for i := range board.Lists {
			board.Lists[i].BoardID = board.ID
		}
		return tx.Omit(clause.Associations).Create(&board.Lists).Error
	})
}

// GetAll returns every board with the full nested include shape, most recently updated first.
func (r *BoardRepository) GetAll(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	err := withBoardDetail(r.db.WithContext(ctx)).Order("updated_at DESC").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

// GetDetail returns the board with lists, cards, members and labels.
func (r *BoardRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := withBoardDetail(r.db.WithContext(ctx)).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	result := r.db.WithContext(ctx).Model(board).Omit(clause.Associations).Select("*").Updates(board)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBoardNotFound
	}
	return nil
}

// Delete removes the board; lists, cards, members and labels go with it.
func (r *BoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Board{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBoardNotFound
	}
	return nil
}

func (r *BoardRepository) GetWithoutAccessCode(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Where("access_code IS NULL").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) SetAccessCode(ctx context.Context, id uuid.UUID, code string) error {
	result := r.db.WithContext(ctx).Model(&model.Board{}).Where("id = ?", id).Update("access_code", code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBoardNotFound
	}
	return nil
}
