package handler_test

import (
	"net/http"
	"testing"

	"kanban/internal/api"
	"kanban/internal/auth"
	"kanban/internal/handler"
	"kanban/internal/middleware"
	"kanban/internal/model"
	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupBoardTest() (*gin.Engine, *MockBoardRepository, *MockBoardAccessRepository) {
	r := newEngine()
	boardRepo := new(MockBoardRepository)
	accessRepo := new(MockBoardAccessRepository)
	h := handler.NewBoardHandler(boardRepo, accessRepo, zap.NewNop())

	r.Use(middleware.AdminContext(auth.Admin{Password: "letmein"}))
	r.GET("/boards", h.GetAll)
	r.POST("/boards", h.Create)
	r.GET("/boards/:id", h.GetByID)
	r.PUT("/boards/:id", h.Update)
	r.DELETE("/boards/:id", middleware.RequireAdmin(handler.AdminDeleteBoardsMessage), h.Delete)
	r.POST("/boards/:id/access", h.ValidateAccess)

	return r, boardRepo, accessRepo
}

func TestBoardCreate_TitleRequired(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest()

	// Act
	resp := performRequest(router, http.MethodPost, "/boards", api.CreateBoardRequest{Title: "   "}, nil)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Board title is required", errorMessage(t, resp))
	boardRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBoardCreate_Success(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest()
	boardID := uuid.New()

	boardRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		if b.Title != "Roadmap" || len(b.Lists) != 4 || b.AccessCode == nil || len(*b.AccessCode) != 16 {
			return false
		}
		return b.Lists[0].Title == "To Do" && b.Lists[0].Position == 1000 &&
			b.Lists[3].Title == "Done" && *b.Lists[3].Color == "#f0fdf4"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Board).ID = boardID
	}).Return(nil)

	code := "0123456789abcdef"
	boardRepo.On("GetDetail", mock.Anything, boardID).Return(&model.Board{
		ID:         boardID,
		Title:      "Roadmap",
		Background: model.DefaultBoardBackground,
		AccessCode: &code,
		Lists:      []model.List{{ID: uuid.New(), BoardID: boardID, Title: "To Do", Position: 1000}},
	}, nil)

	// Act
	resp := performRequest(router, http.MethodPost, "/boards", api.CreateBoardRequest{Title: " Roadmap "}, nil)

	// Assert
	require.Equal(t, http.StatusCreated, resp.Code)
	board := decode[api.Board](t, resp)
	assert.Equal(t, boardID.String(), board.ID)
	require.NotNil(t, board.AccessCode)
	assert.Equal(t, code, *board.AccessCode)
	assert.Len(t, board.Lists, 1)
	boardRepo.AssertExpectations(t)
}

func TestBoardCreate_KeepsGivenAccessCode(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest()
	code := "team-code"

	boardRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		return b.AccessCode != nil && *b.AccessCode == code && b.Background == "#123456"
	})).Return(nil)
	boardRepo.On("GetDetail", mock.Anything, mock.Anything).Return(&model.Board{Title: "x", AccessCode: &code}, nil)

	background := "#123456"

	// Act
	resp := performRequest(router, http.MethodPost, "/boards",
		api.CreateBoardRequest{Title: "x", AccessCode: &code, Background: &background}, nil)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	boardRepo.AssertExpectations(t)
}

func TestBoardGetByID_NotFound(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest()
	id := uuid.New()
	boardRepo.On("GetDetail", mock.Anything, id).Return(nil, repository.ErrBoardNotFound)

	// Act
	resp := performRequest(router, http.MethodGet, "/boards/"+id.String(), nil, nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Board not found", errorMessage(t, resp))
}

func TestBoardGetByID_MalformedID(t *testing.T) {
	router, _, _ := setupBoardTest()

	resp := performRequest(router, http.MethodGet, "/boards/not-a-uuid", nil, nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Board not found", errorMessage(t, resp))
}

func TestBoardGetAll_AccessCodeOnlyForAdmin(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest()
	code := "secret"
	boardRepo.On("GetAll", mock.Anything).Return([]model.Board{{ID: uuid.New(), Title: "A", AccessCode: &code}}, nil)

	// Act
	anon := performRequest(router, http.MethodGet, "/boards", nil, nil)
	admin := performRequest(router, http.MethodGet, "/boards", nil, map[string]string{"x-admin-session": "true"})

	// Assert
	require.Equal(t, http.StatusOK, anon.Code)
	assert.NotContains(t, anon.Body.String(), "accessCode")
	assert.Nil(t, decode[[]api.Board](t, anon)[0].AccessCode)

	require.Equal(t, http.StatusOK, admin.Code)
	boards := decode[[]api.Board](t, admin)
	require.NotNil(t, boards[0].AccessCode)
	assert.Equal(t, code, *boards[0].AccessCode)
}

func TestBoardGetAll_DatabaseError(t *testing.T) {
	router, boardRepo, _ := setupBoardTest()
	boardRepo.On("GetAll", mock.Anything).Return(nil, assert.AnError)

	resp := performRequest(router, http.MethodGet, "/boards", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "A database error occurred", errorMessage(t, resp))
}

func TestBoardUpdate_PartialFields(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest()
	id := uuid.New()
	desc := "old"
	boardRepo.On("GetByID", mock.Anything, id).Return(&model.Board{ID: id, Title: "Old", Description: &desc, Background: "#0079bf"}, nil)
	boardRepo.On("Update", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		return b.Title == "New" && b.Description == nil && b.Background == "#0079bf"
	})).Return(nil)
	boardRepo.On("GetDetail", mock.Anything, id).Return(&model.Board{ID: id, Title: "New", Background: "#0079bf"}, nil)

	// Act
	resp := performRequest(router, http.MethodPut, "/boards/"+id.String(), `{"title":"New","description":null}`, nil)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "New", decode[api.Board](t, resp).Title)
	boardRepo.AssertExpectations(t)
}

func TestBoardDelete_RequiresAdmin(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest()
	id := uuid.New()

	// Act
	resp := performRequest(router, http.MethodDelete, "/boards/"+id.String(), nil, nil)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Equal(t, "Admin authentication required to delete boards", errorMessage(t, resp))
	boardRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBoardDelete_AdminPassword(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest()
	id := uuid.New()
	boardRepo.On("Delete", mock.Anything, id).Return(nil)

	// Act
	resp := performRequest(router, http.MethodDelete, "/boards/"+id.String(), nil,
		map[string]string{"x-admin-password": "letmein"})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":true}`, resp.Body.String())
	boardRepo.AssertExpectations(t)
}

func TestBoardDelete_Missing(t *testing.T) {
	router, boardRepo, _ := setupBoardTest()
	id := uuid.New()
	boardRepo.On("Delete", mock.Anything, id).Return(repository.ErrBoardNotFound)

	resp := performRequest(router, http.MethodDelete, "/boards/"+id.String(), nil,
		map[string]string{"x-admin-session": "true"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBoardValidateAccess(t *testing.T) {
	code := "0123456789abcdef"
	id := uuid.New()

	t.Run("code required", func(t *testing.T) {
		router, _, _ := setupBoardTest()
		resp := performRequest(router, http.MethodPost, "/boards/"+id.String()+"/access", api.AccessRequest{}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Access code is required", errorMessage(t, resp))
	})

	t.Run("board missing", func(t *testing.T) {
		router, boardRepo, _ := setupBoardTest()
		boardRepo.On("GetByID", mock.Anything, id).Return(nil, repository.ErrBoardNotFound)
		resp := performRequest(router, http.MethodPost, "/boards/"+id.String()+"/access", api.AccessRequest{AccessCode: code}, nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Board not found", errorMessage(t, resp))
	})

	t.Run("wrong code", func(t *testing.T) {
		router, boardRepo, accessRepo := setupBoardTest()
		boardRepo.On("GetByID", mock.Anything, id).Return(&model.Board{ID: id, AccessCode: &code}, nil)
		resp := performRequest(router, http.MethodPost, "/boards/"+id.String()+"/access",
			api.AccessRequest{AccessCode: "nope", Email: "a@b.c"}, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, "Invalid access code", errorMessage(t, resp))
		accessRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("board without code", func(t *testing.T) {
		router, boardRepo, _ := setupBoardTest()
		boardRepo.On("GetByID", mock.Anything, id).Return(&model.Board{ID: id}, nil)
		resp := performRequest(router, http.MethodPost, "/boards/"+id.String()+"/access", api.AccessRequest{AccessCode: code}, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("valid code records email", func(t *testing.T) {
		router, boardRepo, accessRepo := setupBoardTest()
		boardRepo.On("GetByID", mock.Anything, id).Return(&model.Board{ID: id, AccessCode: &code}, nil)
		accessRepo.On("Record", mock.Anything, id, "dev@example.com").Return(nil)
		resp := performRequest(router, http.MethodPost, "/boards/"+id.String()+"/access",
			api.AccessRequest{AccessCode: code, Email: "dev@example.com"}, nil)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"success":true}`, resp.Body.String())
		accessRepo.AssertExpectations(t)
	})
}
