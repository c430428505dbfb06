package handler_test

import (
	"net/http"
	"testing"

	"kanban/internal/api"
	"kanban/internal/handler"
	"kanban/internal/model"
	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cardMocks struct {
	cards   *MockCardRepository
	lists   *MockListRepository
	members *MockTeamMemberRepository
	labels  *MockLabelRepository
}

func setupCardTest() (*gin.Engine, cardMocks) {
	r := newEngine()
	m := cardMocks{
		cards:   new(MockCardRepository),
		lists:   new(MockListRepository),
		members: new(MockTeamMemberRepository),
		labels:  new(MockLabelRepository),
	}
	h := handler.NewCardHandler(m.cards, m.lists, m.members, m.labels, zap.NewNop())

	r.GET("/cards", h.GetAll)
	r.POST("/cards", h.Create)
	r.GET("/cards/:id", h.GetByID)
	r.PUT("/cards/:id", h.Update)
	r.DELETE("/cards/:id", h.Delete)
	r.POST("/cards/:id/assignments", h.Assign)
	r.DELETE("/cards/:id/assignments", h.Unassign)
	r.POST("/cards/:id/labels/:labelId", h.AddLabel)
	r.DELETE("/cards/:id/labels/:labelId", h.RemoveLabel)

	return r, m
}

func TestCardCreate_FieldsRequired(t *testing.T) {
	router, _ := setupCardTest()

	resp := performRequest(router, http.MethodPost, "/cards", api.CreateCardRequest{Title: "x"}, nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Card title and list ID are required", errorMessage(t, resp))
}

func TestCardCreate_EmptyBody(t *testing.T) {
	router, _ := setupCardTest()

	resp := performRequest(router, http.MethodPost, "/cards", nil, nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Card title and list ID are required", errorMessage(t, resp))
}

func TestCardCreate_MalformedDueDate(t *testing.T) {
	router, _ := setupCardTest()

	resp := performRequest(router, http.MethodPost, "/cards",
		`{"title":"x","listId":"`+uuid.NewString()+`","dueDate":"next tuesday"}`, nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid request", errorMessage(t, resp))
}

func TestCardCreate_InvalidPriority(t *testing.T) {
	router, _ := setupCardTest()
	priority := "urgent"

	resp := performRequest(router, http.MethodPost, "/cards",
		api.CreateCardRequest{Title: "x", ListID: uuid.NewString(), Priority: &priority}, nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid priority", errorMessage(t, resp))
}

func TestCardCreate_AppendsToList(t *testing.T) {
	// Arrange
	router, m := setupCardTest()
	listID := uuid.New()
	cardID := uuid.New()

	m.lists.On("GetByID", mock.Anything, listID).Return(&model.List{ID: listID}, nil)
	m.cards.On("GetMaxPosition", mock.Anything, listID).Return(2000, nil)
	m.cards.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.Position == 3000 && c.Title == "Write copy" && c.ListID == listID
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Card).ID = cardID
	}).Return(nil)
	m.cards.On("GetDetail", mock.Anything, cardID).Return(&model.Card{
		ID: cardID, ListID: listID, Title: "Write copy", Position: 3000,
		Priority: model.PriorityMedium, Status: model.StatusActive,
	}, nil)

	// Act
	resp := performRequest(router, http.MethodPost, "/cards",
		api.CreateCardRequest{Title: "Write copy", ListID: listID.String()}, nil)

	// Assert
	require.Equal(t, http.StatusCreated, resp.Code)
	card := decode[api.Card](t, resp)
	assert.Equal(t, 3000, card.Position)
	assert.Equal(t, "medium", card.Priority)
	assert.Empty(t, card.Assignees)
	m.cards.AssertExpectations(t)
}

func TestCardUpdate_MoveToOtherListGoesToEnd(t *testing.T) {
	// Arrange
	router, m := setupCardTest()
	cardID, from, to := uuid.New(), uuid.New(), uuid.New()

	m.cards.On("GetByID", mock.Anything, cardID).Return(&model.Card{ID: cardID, ListID: from, Position: 1000}, nil)
	m.lists.On("GetByID", mock.Anything, to).Return(&model.List{ID: to}, nil)
	m.cards.On("GetMaxPosition", mock.Anything, to).Return(5000, nil)
	m.cards.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.ListID == to && c.Position == 6000
	})).Return(nil)
	m.cards.On("GetDetail", mock.Anything, cardID).Return(&model.Card{ID: cardID, ListID: to, Position: 6000}, nil)

	// Act
	target := to.String()
	resp := performRequest(router, http.MethodPut, "/cards/"+cardID.String(), api.UpdateCardRequest{ListID: &target}, nil)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 6000, decode[api.Card](t, resp).Position)
	m.cards.AssertExpectations(t)
}

func TestCardUpdate_MoveWithExplicitPosition(t *testing.T) {
	router, m := setupCardTest()
	cardID, from, to := uuid.New(), uuid.New(), uuid.New()

	m.cards.On("GetByID", mock.Anything, cardID).Return(&model.Card{ID: cardID, ListID: from, Position: 1000}, nil)
	m.lists.On("GetByID", mock.Anything, to).Return(&model.List{ID: to}, nil)
	m.cards.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.ListID == to && c.Position == 1500
	})).Return(nil)
	m.cards.On("GetDetail", mock.Anything, cardID).Return(&model.Card{ID: cardID, ListID: to, Position: 1500}, nil)

	target, pos := to.String(), 1500
	resp := performRequest(router, http.MethodPut, "/cards/"+cardID.String(),
		api.UpdateCardRequest{ListID: &target, Position: &pos}, nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	m.cards.AssertNotCalled(t, "GetMaxPosition", mock.Anything, mock.Anything)
}

func TestCardUpdate_SameListKeepsPosition(t *testing.T) {
	router, m := setupCardTest()
	cardID, listID := uuid.New(), uuid.New()

	m.cards.On("GetByID", mock.Anything, cardID).Return(&model.Card{ID: cardID, ListID: listID, Position: 2000, Priority: "low"}, nil)
	m.cards.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.ListID == listID && c.Position == 2000 && c.Priority == "high"
	})).Return(nil)
	m.cards.On("GetDetail", mock.Anything, cardID).Return(&model.Card{ID: cardID, ListID: listID, Position: 2000, Priority: "high"}, nil)

	target, priority := listID.String(), "high"
	resp := performRequest(router, http.MethodPut, "/cards/"+cardID.String(),
		api.UpdateCardRequest{ListID: &target, Priority: &priority}, nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	m.lists.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCardUpdate_InvalidStatus(t *testing.T) {
	router, _ := setupCardTest()

	resp := performRequest(router, http.MethodPut, "/cards/"+uuid.NewString(), `{"status":"deleted"}`, nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid status", errorMessage(t, resp))
}

func TestCardAssign(t *testing.T) {
	cardID, memberID := uuid.New(), uuid.New()
	path := "/cards/" + cardID.String() + "/assignments"

	t.Run("member required", func(t *testing.T) {
		router, _ := setupCardTest()
		resp := performRequest(router, http.MethodPost, path, api.AssignRequest{}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Team member ID is required", errorMessage(t, resp))
	})

	t.Run("already assigned", func(t *testing.T) {
		router, m := setupCardTest()
		m.cards.On("GetByID", mock.Anything, cardID).Return(&model.Card{ID: cardID}, nil)
		m.members.On("GetByID", mock.Anything, memberID).Return(&model.TeamMember{ID: memberID}, nil)
		m.cards.On("GetAssignment", mock.Anything, cardID, memberID).Return(&model.CardAssignment{CardID: cardID, TeamMemberID: memberID}, nil)

		resp := performRequest(router, http.MethodPost, path, api.AssignRequest{TeamMemberID: memberID.String()}, nil)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Team member is already assigned to this card", errorMessage(t, resp))
		m.cards.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost race on unique key", func(t *testing.T) {
		router, m := setupCardTest()
		m.cards.On("GetByID", mock.Anything, cardID).Return(&model.Card{ID: cardID}, nil)
		m.members.On("GetByID", mock.Anything, memberID).Return(&model.TeamMember{ID: memberID}, nil)
		m.cards.On("GetAssignment", mock.Anything, cardID, memberID).Return(nil, repository.ErrAssignmentNotFound)
		m.cards.On("Assign", mock.Anything, cardID, memberID).Return(nil, &pgconn.PgError{Code: "23505"})

		resp := performRequest(router, http.MethodPost, path, api.AssignRequest{TeamMemberID: memberID.String()}, nil)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Team member is already assigned to this card", errorMessage(t, resp))
	})

	t.Run("assigned", func(t *testing.T) {
		router, m := setupCardTest()
		member := model.TeamMember{ID: memberID, Name: "Ada", Color: "#ef4444"}
		m.cards.On("GetByID", mock.Anything, cardID).Return(&model.Card{ID: cardID}, nil)
		m.members.On("GetByID", mock.Anything, memberID).Return(&member, nil)
		m.cards.On("GetAssignment", mock.Anything, cardID, memberID).Return(nil, repository.ErrAssignmentNotFound)
		m.cards.On("Assign", mock.Anything, cardID, memberID).
			Return(&model.CardAssignment{CardID: cardID, TeamMemberID: memberID, TeamMember: member}, nil)

		resp := performRequest(router, http.MethodPost, path, api.AssignRequest{TeamMemberID: memberID.String()}, nil)

		require.Equal(t, http.StatusCreated, resp.Code)
		assignment := decode[api.CardAssignment](t, resp)
		assert.Equal(t, "Ada", assignment.TeamMember.Name)
		assert.Equal(t, memberID.String(), assignment.TeamMemberID)
	})
}

func TestCardUnassign(t *testing.T) {
	cardID, memberID := uuid.New(), uuid.New()
	path := "/cards/" + cardID.String() + "/assignments"

	t.Run("member required", func(t *testing.T) {
		router, _ := setupCardTest()
		resp := performRequest(router, http.MethodDelete, path, nil, nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Team member ID is required", errorMessage(t, resp))
	})

	t.Run("missing assignment", func(t *testing.T) {
		router, m := setupCardTest()
		m.cards.On("Unassign", mock.Anything, cardID, memberID).Return(repository.ErrAssignmentNotFound)
		resp := performRequest(router, http.MethodDelete, path+"?teamMemberId="+memberID.String(), nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("removed", func(t *testing.T) {
		router, m := setupCardTest()
		m.cards.On("Unassign", mock.Anything, cardID, memberID).Return(nil)
		resp := performRequest(router, http.MethodDelete, path+"?teamMemberId="+memberID.String(), nil, nil)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"success":true}`, resp.Body.String())
	})
}

func TestCardAddLabel_OtherBoardRejected(t *testing.T) {
	// Arrange
	router, m := setupCardTest()
	cardID, labelID, listID := uuid.New(), uuid.New(), uuid.New()

	m.cards.On("GetByID", mock.Anything, cardID).Return(&model.Card{ID: cardID, ListID: listID}, nil)
	m.labels.On("GetByID", mock.Anything, labelID).Return(&model.Label{ID: labelID, BoardID: uuid.New()}, nil)
	m.lists.On("GetByID", mock.Anything, listID).Return(&model.List{ID: listID, BoardID: uuid.New()}, nil)

	// Act
	resp := performRequest(router, http.MethodPost, "/cards/"+cardID.String()+"/labels/"+labelID.String(), nil, nil)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	m.cards.AssertNotCalled(t, "AddLabel", mock.Anything, mock.Anything, mock.Anything)
}

func TestCardAddLabel(t *testing.T) {
	router, m := setupCardTest()
	cardID, labelID, listID, boardID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	label := model.Label{ID: labelID, BoardID: boardID, Name: "Bug", Color: "#ef4444"}

	m.cards.On("GetByID", mock.Anything, cardID).Return(&model.Card{ID: cardID, ListID: listID}, nil)
	m.labels.On("GetByID", mock.Anything, labelID).Return(&label, nil)
	m.lists.On("GetByID", mock.Anything, listID).Return(&model.List{ID: listID, BoardID: boardID}, nil)
	m.cards.On("AddLabel", mock.Anything, cardID, labelID).Return(nil)
	m.cards.On("GetDetail", mock.Anything, cardID).Return(&model.Card{
		ID: cardID, ListID: listID,
		Labels: []model.CardLabel{{CardID: cardID, LabelID: labelID, Label: label}},
	}, nil)

	resp := performRequest(router, http.MethodPost, "/cards/"+cardID.String()+"/labels/"+labelID.String(), nil, nil)

	require.Equal(t, http.StatusOK, resp.Code)
	card := decode[api.Card](t, resp)
	require.Len(t, card.Labels, 1)
	assert.Equal(t, "Bug", card.Labels[0].Label.Name)
}

func TestCardGetAll_Filters(t *testing.T) {
	router, m := setupCardTest()
	boardID := uuid.New()
	m.cards.On("Find", mock.Anything, mock.MatchedBy(func(f repository.CardFilter) bool {
		return f.ListID == nil && f.BoardID != nil && *f.BoardID == boardID
	})).Return([]model.Card{{ID: uuid.New(), Position: 1000}}, nil)

	resp := performRequest(router, http.MethodGet, "/cards?boardId="+boardID.String(), nil, nil)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[[]api.Card](t, resp), 1)
}
