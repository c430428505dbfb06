package handler

import (
	"net/http"
	"strings"

	"kanban/internal/api"
	"kanban/internal/auth"
	"kanban/internal/middleware"
	"kanban/internal/model"
	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgBoardNotFound      = "Board not found"
	msgBoardTitleRequired = "Board title is required"
)

// AdminDeleteBoardsMessage is the 403 body for unauthenticated board deletion.
const AdminDeleteBoardsMessage = "Admin authentication required to delete boards"

type BoardHandler struct {
	boardRepo  repository.BoardRepositoryInterface
	accessRepo repository.BoardAccessRepositoryInterface
	log        *zap.Logger
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface, accessRepo repository.BoardAccessRepositoryInterface, log *zap.Logger) *BoardHandler {
	return &BoardHandler{
		boardRepo:  boardRepo,
		accessRepo: accessRepo,
		log:        log,
	}
}

// GetAll returns every board with lists, cards, members and labels.
func (h *BoardHandler) GetAll(c *gin.Context) {
	boards, err := h.boardRepo.GetAll(c.Request.Context())
	if err != nil {
		respondDBError(c, h.log, err, "")
		return
	}

	withCode := middleware.IsAdmin(c)
	response := make([]api.Board, len(boards))
	for i, board := range boards {
		response[i] = toBoard(board, withCode)
	}
	c.JSON(http.StatusOK, response)
}

// Create creates a board with the default lists. The response always carries
// the access code so the creator can share it.
func (h *BoardHandler) Create(c *gin.Context) {
	var req api.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBoardTitleRequired})
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBoardTitleRequired})
		return
	}

	board := &model.Board{
		Title:       title,
		Description: req.Description,
		AccessCode:  req.AccessCode,
	}
	if req.Background != nil {
		board.Background = *req.Background
	}
	if board.AccessCode == nil || *board.AccessCode == "" {
		code, err := auth.NewAccessCode()
		if err != nil {
			h.log.Error("generate access code", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
			return
		}
		board.AccessCode = &code
	}
	for _, l := range model.DefaultLists {
		color := l.Color
		board.Lists = append(board.Lists, model.List{Title: l.Title, Position: l.Position, Color: &color})
	}

	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		respondDBError(c, h.log, err, "")
		return
	}

	created, err := h.boardRepo.GetDetail(c.Request.Context(), board.ID)
	if err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}
	c.JSON(http.StatusCreated, toBoard(*created, true))
}

func (h *BoardHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id", msgBoardNotFound)
	if !ok {
		return
	}

	board, err := h.boardRepo.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}
	c.JSON(http.StatusOK, toBoard(*board, middleware.IsAdmin(c)))
}

// Update applies the fields present in the request.
func (h *BoardHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", msgBoardNotFound)
	if !ok {
		return
	}

	var req api.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgBoardTitleRequired})
			return
		}
		board.Title = title
	}
	if req.Description.Set {
		board.Description = req.Description.Value
	}
	if req.Background != nil && *req.Background != "" {
		board.Background = *req.Background
	}

	if err := h.boardRepo.Update(c.Request.Context(), board); err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}

	updated, err := h.boardRepo.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}
	c.JSON(http.StatusOK, toBoard(*updated, middleware.IsAdmin(c)))
}

// Delete removes a board and everything on it. Routed behind RequireAdmin.
func (h *BoardHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", msgBoardNotFound)
	if !ok {
		return
	}

	if err := h.boardRepo.Delete(c.Request.Context(), id); err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}
	success(c)
}

// ValidateAccess checks a board's access code. A matching email is recorded
// for auditing; a failed audit write does not deny access.
func (h *BoardHandler) ValidateAccess(c *gin.Context) {
	id, ok := pathID(c, "id", msgBoardNotFound)
	if !ok {
		return
	}

	var req api.AccessRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.AccessCode) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Access code is required"})
		return
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}

	if board.AccessCode == nil || *board.AccessCode != strings.TrimSpace(req.AccessCode) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid access code"})
		return
	}

	if email := strings.TrimSpace(req.Email); email != "" {
		if err := h.accessRepo.Record(c.Request.Context(), board.ID, email); err != nil {
			h.log.Warn("record board access", zap.Error(err), zap.String("board_id", board.ID.String()))
		}
	}
	success(c)
}
