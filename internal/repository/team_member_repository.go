package repository

import (
	"context"
	"errors"

	"kanban/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMemberRepositoryInterface interface {
	Create(ctx context.Context, member *model.TeamMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.TeamMember, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.TeamMember, error)
	Update(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ TeamMemberRepositoryInterface = (*TeamMemberRepository)(nil)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("created_at ASC").Find(&members).Error
	return members, err
}

func (r *TeamMemberRepository) Update(ctx context.Context, member *model.TeamMember) error {
	result := r.db.WithContext(ctx).Model(member).Select("*").Updates(member)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

// Delete removes the member; its card assignments go with it.
func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}
