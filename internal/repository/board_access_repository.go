package repository

import (
	"context"
	"errors"
	"time"

	"kanban/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardAccessRepositoryInterface interface {
	Record(ctx context.Context, boardID uuid.UUID, email string) error
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.BoardAccess, error)
}

var _ BoardAccessRepositoryInterface = (*BoardAccessRepository)(nil)

type BoardAccessRepository struct {
	db *gorm.DB
}

func NewBoardAccessRepository(db *gorm.DB) *BoardAccessRepository {
	return &BoardAccessRepository{db: db}
}

// Record stores that email unlocked the board, refreshing accessed_at when
// the pair is already known.
func (r *BoardAccessRepository) Record(ctx context.Context, boardID uuid.UUID, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.BoardAccess
		err := tx.Where("board_id = ? AND email = ?", boardID, email).First(&existing).Error
		if err == nil {
			return tx.Model(&existing).Update("accessed_at", time.Now()).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Omit("Board").Create(&model.BoardAccess{BoardID: boardID, Email: email}).Error
	})
}

func (r *BoardAccessRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.BoardAccess, error) {
	var accesses []model.BoardAccess
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("accessed_at DESC").
		Find(&accesses).Error
	return accesses, err
}
