package store_test

import (
	"context"

	"kanban/internal/api"

	"github.com/stretchr/testify/mock"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListBoards(ctx context.Context) ([]api.Board, error) {
	args := m.Called(ctx)
	return args.Get(0).([]api.Board), args.Error(1)
}

func (m *MockBackend) GetBoard(ctx context.Context, id string) (api.Board, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(api.Board), args.Error(1)
}

func (m *MockBackend) CreateBoard(ctx context.Context, req api.CreateBoardRequest) (api.Board, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(api.Board), args.Error(1)
}

func (m *MockBackend) UpdateBoard(ctx context.Context, id string, req api.UpdateBoardRequest) (api.Board, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(api.Board), args.Error(1)
}

func (m *MockBackend) DeleteBoard(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ReorderLists(ctx context.Context, boardID string, listIDs []string) ([]api.List, error) {
	args := m.Called(ctx, boardID, listIDs)
	return args.Get(0).([]api.List), args.Error(1)
}

func (m *MockBackend) CreateList(ctx context.Context, req api.CreateListRequest) (api.List, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(api.List), args.Error(1)
}

func (m *MockBackend) UpdateList(ctx context.Context, id string, req api.UpdateListRequest) (api.List, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(api.List), args.Error(1)
}

func (m *MockBackend) DeleteList(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) CreateCard(ctx context.Context, req api.CreateCardRequest) (api.Card, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(api.Card), args.Error(1)
}

func (m *MockBackend) UpdateCard(ctx context.Context, id string, req api.UpdateCardRequest) (api.Card, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(api.Card), args.Error(1)
}

func (m *MockBackend) DeleteCard(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) AssignMember(ctx context.Context, cardID, teamMemberID string) (api.CardAssignment, error) {
	args := m.Called(ctx, cardID, teamMemberID)
	return args.Get(0).(api.CardAssignment), args.Error(1)
}

func (m *MockBackend) UnassignMember(ctx context.Context, cardID, teamMemberID string) error {
	args := m.Called(ctx, cardID, teamMemberID)
	return args.Error(0)
}

func (m *MockBackend) AddLabelToCard(ctx context.Context, cardID, labelID string) (api.Card, error) {
	args := m.Called(ctx, cardID, labelID)
	return args.Get(0).(api.Card), args.Error(1)
}

func (m *MockBackend) RemoveLabelFromCard(ctx context.Context, cardID, labelID string) (api.Card, error) {
	args := m.Called(ctx, cardID, labelID)
	return args.Get(0).(api.Card), args.Error(1)
}

func (m *MockBackend) CreateTeamMember(ctx context.Context, req api.CreateTeamMemberRequest) (api.TeamMember, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(api.TeamMember), args.Error(1)
}

func (m *MockBackend) UpdateTeamMember(ctx context.Context, id string, req api.UpdateTeamMemberRequest) (api.TeamMember, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(api.TeamMember), args.Error(1)
}

func (m *MockBackend) DeleteTeamMember(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) CreateLabel(ctx context.Context, req api.CreateLabelRequest) (api.Label, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(api.Label), args.Error(1)
}

func (m *MockBackend) UpdateLabel(ctx context.Context, id string, req api.UpdateLabelRequest) (api.Label, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(api.Label), args.Error(1)
}

func (m *MockBackend) DeleteLabel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) CreateChecklistItem(ctx context.Context, req api.CreateChecklistItemRequest) (api.ChecklistItem, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(api.ChecklistItem), args.Error(1)
}

func (m *MockBackend) UpdateChecklistItem(ctx context.Context, id string, req api.UpdateChecklistItemRequest) (api.ChecklistItem, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(api.ChecklistItem), args.Error(1)
}

func (m *MockBackend) DeleteChecklistItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
