package handler_test

import (
	"context"

	"kanban/internal/model"
	"kanban/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBoardRepository struct {
	mock.Mock
}

var _ repository.BoardRepositoryInterface = (*MockBoardRepository)(nil)

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) GetAll(ctx context.Context) ([]model.Board, error) {
	args := m.Called(ctx)
	boards, _ := args.Get(0).([]model.Board)
	return boards, args.Error(1)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id)
	board, _ := args.Get(0).(*model.Board)
	return board, args.Error(1)
}

func (m *MockBoardRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id)
	board, _ := args.Get(0).(*model.Board)
	return board, args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardRepository) GetWithoutAccessCode(ctx context.Context) ([]model.Board, error) {
	args := m.Called(ctx)
	boards, _ := args.Get(0).([]model.Board)
	return boards, args.Error(1)
}

func (m *MockBoardRepository) SetAccessCode(ctx context.Context, id uuid.UUID, code string) error {
	args := m.Called(ctx, id, code)
	return args.Error(0)
}

type MockBoardAccessRepository struct {
	mock.Mock
}

func (m *MockBoardAccessRepository) Record(ctx context.Context, boardID uuid.UUID, email string) error {
	args := m.Called(ctx, boardID, email)
	return args.Error(0)
}

func (m *MockBoardAccessRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.BoardAccess, error) {
	args := m.Called(ctx, boardID)
	accesses, _ := args.Get(0).([]model.BoardAccess)
	return accesses, args.Error(1)
}

type MockListRepository struct {
	mock.Mock
}

var _ repository.ListRepositoryInterface = (*MockListRepository)(nil)

func (m *MockListRepository) Create(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.List, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).(*model.List)
	return list, args.Error(1)
}

func (m *MockListRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.List, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).(*model.List)
	return list, args.Error(1)
}

func (m *MockListRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	args := m.Called(ctx, boardID)
	lists, _ := args.Get(0).([]model.List)
	return lists, args.Error(1)
}

func (m *MockListRepository) Update(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListRepository) GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	args := m.Called(ctx, boardID)
	return args.Int(0), args.Error(1)
}

func (m *MockListRepository) Reorder(ctx context.Context, boardID uuid.UUID, listIDs []uuid.UUID) error {
	args := m.Called(ctx, boardID, listIDs)
	return args.Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

var _ repository.CardRepositoryInterface = (*MockCardRepository)(nil)

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, id)
	card, _ := args.Get(0).(*model.Card)
	return card, args.Error(1)
}

func (m *MockCardRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, id)
	card, _ := args.Get(0).(*model.Card)
	return card, args.Error(1)
}

func (m *MockCardRepository) Find(ctx context.Context, filter repository.CardFilter) ([]model.Card, error) {
	args := m.Called(ctx, filter)
	cards, _ := args.Get(0).([]model.Card)
	return cards, args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCardRepository) GetMaxPosition(ctx context.Context, listID uuid.UUID) (int, error) {
	args := m.Called(ctx, listID)
	return args.Int(0), args.Error(1)
}

func (m *MockCardRepository) GetAssignment(ctx context.Context, cardID, teamMemberID uuid.UUID) (*model.CardAssignment, error) {
	args := m.Called(ctx, cardID, teamMemberID)
	a, _ := args.Get(0).(*model.CardAssignment)
	return a, args.Error(1)
}

func (m *MockCardRepository) Assign(ctx context.Context, cardID, teamMemberID uuid.UUID) (*model.CardAssignment, error) {
	args := m.Called(ctx, cardID, teamMemberID)
	a, _ := args.Get(0).(*model.CardAssignment)
	return a, args.Error(1)
}

func (m *MockCardRepository) Unassign(ctx context.Context, cardID, teamMemberID uuid.UUID) error {
	args := m.Called(ctx, cardID, teamMemberID)
	return args.Error(0)
}

func (m *MockCardRepository) AddLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	args := m.Called(ctx, cardID, labelID)
	return args.Error(0)
}

func (m *MockCardRepository) RemoveLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	args := m.Called(ctx, cardID, labelID)
	return args.Error(0)
}

type MockTeamMemberRepository struct {
	mock.Mock
}

var _ repository.TeamMemberRepositoryInterface = (*MockTeamMemberRepository)(nil)

func (m *MockTeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	member, _ := args.Get(0).(*model.TeamMember)
	return member, args.Error(1)
}

func (m *MockTeamMemberRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.TeamMember, error) {
	args := m.Called(ctx, boardID)
	members, _ := args.Get(0).([]model.TeamMember)
	return members, args.Error(1)
}

func (m *MockTeamMemberRepository) Update(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLabelRepository struct {
	mock.Mock
}

var _ repository.LabelRepositoryInterface = (*MockLabelRepository)(nil)

func (m *MockLabelRepository) Create(ctx context.Context, label *model.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	args := m.Called(ctx, id)
	label, _ := args.Get(0).(*model.Label)
	return label, args.Error(1)
}

func (m *MockLabelRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Label, error) {
	args := m.Called(ctx, boardID)
	labels, _ := args.Get(0).([]model.Label)
	return labels, args.Error(1)
}

func (m *MockLabelRepository) Update(ctx context.Context, label *model.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockChecklistRepository struct {
	mock.Mock
}

var _ repository.ChecklistRepositoryInterface = (*MockChecklistRepository)(nil)

func (m *MockChecklistRepository) Create(ctx context.Context, item *model.ChecklistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockChecklistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ChecklistItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*model.ChecklistItem)
	return item, args.Error(1)
}

func (m *MockChecklistRepository) Update(ctx context.Context, item *model.ChecklistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockChecklistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChecklistRepository) GetMaxPosition(ctx context.Context, cardID uuid.UUID) (int, error) {
	args := m.Called(ctx, cardID)
	return args.Int(0), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Counts(ctx context.Context) (repository.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.Stats), args.Error(1)
}
