package handler

import (
	"errors"
	"net/http"
	"strings"

	"kanban/internal/api"
	"kanban/internal/model"
	"kanban/internal/position"
	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgListNotFound      = "List not found"
	msgBoardIDRequired   = "Board ID is required"
	msgListFieldsNeeded  = "List title and board ID are required"
	msgListNotOnBoard    = "List does not belong to this board"
	msgReorderIncomplete = "List IDs must name every list of the board exactly once"
)

type ListHandler struct {
	listRepo  repository.ListRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
	log       *zap.Logger
}

func NewListHandler(listRepo repository.ListRepositoryInterface, boardRepo repository.BoardRepositoryInterface, log *zap.Logger) *ListHandler {
	return &ListHandler{
		listRepo:  listRepo,
		boardRepo: boardRepo,
		log:       log,
	}
}

// GetByBoard returns the board's lists with their cards, by position.
func (h *ListHandler) GetByBoard(c *gin.Context) {
	raw := c.Query("boardId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBoardIDRequired})
		return
	}
	boardID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
		return
	}

	lists, err := h.listRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		respondDBError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusOK, toLists(lists))
}

// Create appends a list to the board unless a position is given.
func (h *ListHandler) Create(c *gin.Context) {
	var req api.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgListFieldsNeeded})
		return
	}
	title := strings.TrimSpace(req.Title)
	boardID, err := uuid.Parse(req.BoardID)
	if title == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgListFieldsNeeded})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}

	list := &model.List{
		BoardID: boardID,
		Title:   title,
		Color:   req.Color,
	}
	if req.Position != nil {
		list.Position = *req.Position
	} else {
		max, err := h.listRepo.GetMaxPosition(ctx, boardID)
		if err != nil {
			respondDBError(c, h.log, err, "")
			return
		}
		list.Position = position.After(max)
	}

	if err := h.listRepo.Create(ctx, list); err != nil {
		respondDBError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusCreated, toList(*list))
}

func (h *ListHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", msgListNotFound)
	if !ok {
		return
	}

	var req api.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	list, err := h.listRepo.GetByID(ctx, id)
	if err != nil {
		respondDBError(c, h.log, err, msgListNotFound)
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "List title is required"})
			return
		}
		list.Title = title
	}
	if req.Position != nil {
		list.Position = *req.Position
	}
	if req.Color.Set {
		list.Color = req.Color.Value
	}

	if err := h.listRepo.Update(ctx, list); err != nil {
		respondDBError(c, h.log, err, msgListNotFound)
		return
	}

	updated, err := h.listRepo.GetDetail(ctx, id)
	if err != nil {
		respondDBError(c, h.log, err, msgListNotFound)
		return
	}
	c.JSON(http.StatusOK, toList(*updated))
}

// Delete removes the list and its cards.
func (h *ListHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", msgListNotFound)
	if !ok {
		return
	}

	if err := h.listRepo.Delete(c.Request.Context(), id); err != nil {
		respondDBError(c, h.log, err, msgListNotFound)
		return
	}
	success(c)
}

// Reorder renumbers the board's lists densely in the requested order.
func (h *ListHandler) Reorder(c *gin.Context) {
	boardID, ok := pathID(c, "id", msgBoardNotFound)
	if !ok {
		return
	}

	var req api.ReorderListsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.ListIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "List IDs are required"})
		return
	}

	ids := make([]uuid.UUID, len(req.ListIDs))
	for i, raw := range req.ListIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID"})
			return
		}
		ids[i] = id
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}

	lists, err := h.listRepo.GetByBoardID(ctx, boardID)
	if err != nil {
		respondDBError(c, h.log, err, "")
		return
	}
	if msg := checkReorder(lists, ids); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.listRepo.Reorder(ctx, boardID, ids); err != nil {
		switch {
		case errors.Is(err, repository.ErrListNotOnBoard):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgListNotOnBoard})
			return
		case errors.Is(err, repository.ErrDuplicateListID):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgReorderIncomplete})
			return
		}
		respondDBError(c, h.log, err, "")
		return
	}

	lists, err = h.listRepo.GetByBoardID(ctx, boardID)
	if err != nil {
		respondDBError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusOK, toLists(lists))
}

// checkReorder returns the error message when ids is not exactly the board's
// set of lists.
func checkReorder(lists []model.List, ids []uuid.UUID) string {
	onBoard := make(map[uuid.UUID]bool, len(lists))
	for _, l := range lists {
		onBoard[l.ID] = true
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !onBoard[id] {
			return msgListNotOnBoard
		}
		if seen[id] {
			return msgReorderIncomplete
		}
		seen[id] = true
	}
	if len(seen) != len(onBoard) {
		return msgReorderIncomplete
	}
	return ""
}
