package repository

import (
	"context"
	"errors"

	"kanban/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardFilter narrows Find; nil fields are ignored.
type CardFilter struct {
	ListID  *uuid.UUID
	BoardID *uuid.UUID
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.Card, error)
	Find(ctx context.Context, filter CardFilter) ([]model.Card, error)
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetMaxPosition(ctx context.Context, listID uuid.UUID) (int, error)

	GetAssignment(ctx context.Context, cardID, teamMemberID uuid.UUID) (*model.CardAssignment, error)
	Assign(ctx context.Context, cardID, teamMemberID uuid.UUID) (*model.CardAssignment, error)
	Unassign(ctx context.Context, cardID, teamMemberID uuid.UUID) error

	AddLabel(ctx context.Context, cardID, labelID uuid.UUID) error
	RemoveLabel(ctx context.Context, cardID, labelID uuid.UUID) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(card).Error
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// GetDetail returns the card with assignees, labels and checklist.
func (r *CardRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := withCardDetail(r.db.WithContext(ctx), "").Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) Find(ctx context.Context, filter CardFilter) ([]model.Card, error) {
	var cards []model.Card
	db := withCardDetail(r.db.WithContext(ctx), "")
	if filter.ListID != nil {
		db = db.Where("cards.list_id = ?", *filter.ListID)
	}
	if filter.BoardID != nil {
		db = db.Joins("JOIN lists ON lists.id = cards.list_id").Where("lists.board_id = ?", *filter.BoardID)
	}
	err := db.Order("cards.position ASC").Order("cards.created_at ASC").Find(&cards).Error
	return cards, err
}

func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).Model(card).Omit(clause.Associations).Select("*").Updates(card)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *CardRepository) GetMaxPosition(ctx context.Context, listID uuid.UUID) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Card{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("list_id = ?", listID).
		Scan(&maxPosition).Error

	return maxPosition.Max, err
}

func (r *CardRepository) GetAssignment(ctx context.Context, cardID, teamMemberID uuid.UUID) (*model.CardAssignment, error) {
	var assignment model.CardAssignment
	err := r.db.WithContext(ctx).
		Where("card_id = ? AND team_member_id = ?", cardID, teamMemberID).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// Assign creates the assignment and returns it with its team member loaded.
func (r *CardRepository) Assign(ctx context.Context, cardID, teamMemberID uuid.UUID) (*model.CardAssignment, error) {
	assignment := &model.CardAssignment{CardID: cardID, TeamMemberID: teamMemberID}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error; err != nil {
		return nil, err
	}
	var member model.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", teamMemberID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	assignment.TeamMember = member
	return assignment, nil
}

func (r *CardRepository) Unassign(ctx context.Context, cardID, teamMemberID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("card_id = ? AND team_member_id = ?", cardID, teamMemberID).
		Delete(&model.CardAssignment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *CardRepository) AddLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO card_labels (card_id, label_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		cardID, labelID,
	).Error
}

func (r *CardRepository) RemoveLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM card_labels WHERE card_id = ? AND label_id = ?",
		cardID, labelID,
	).Error
}
