package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban/internal/api"
	"kanban/internal/model"
	"kanban/internal/repository"
)

type LabelHandler struct {
	labelRepo repository.LabelRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
	log       *zap.Logger
}

func NewLabelHandler(labelRepo repository.LabelRepositoryInterface, boardRepo repository.BoardRepositoryInterface, log *zap.Logger) *LabelHandler {
	return &LabelHandler{
		labelRepo: labelRepo,
		boardRepo: boardRepo,
		log:       log,
	}
}

// GetByBoard handles retrieving all labels for a board
func (h *LabelHandler) GetByBoard(c *gin.Context) {
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

	labels, err := h.labelRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		respondDBError(c, h.log, err, "")
		return
	}

	response := make([]api.Label, len(labels))
	for i, l := range labels {
		response[i] = toLabel(l)
	}
	c.JSON(http.StatusOK, response)
}

// Create handles label creation
func (h *LabelHandler) Create(c *gin.Context) {
	const msgRequired = "Name, color and board ID are required"

	var req api.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgRequired})
		return
	}
	name := strings.TrimSpace(req.Name)
	boardID, err := uuid.Parse(req.BoardID)
	if name == "" || req.Color == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgRequired})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}

	label := &model.Label{BoardID: boardID, Name: name, Color: req.Color}
	if err := h.labelRepo.Create(ctx, label); err != nil {
		respondDBError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusCreated, toLabel(*label))
}

// Update handles updating a label
func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", msgLabelNotFound)
	if !ok {
		return
	}

	var req api.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	label, err := h.labelRepo.GetByID(ctx, id)
	if err != nil {
		respondDBError(c, h.log, err, msgLabelNotFound)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		label.Name = name
	}
	if req.Color != nil && *req.Color != "" {
		label.Color = *req.Color
	}

	if err := h.labelRepo.Update(ctx, label); err != nil {
		respondDBError(c, h.log, err, msgLabelNotFound)
		return
	}
	c.JSON(http.StatusOK, toLabel(*label))
}

// Delete handles deleting a label
func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", msgLabelNotFound)
	if !ok {
		return
	}

	if err := h.labelRepo.Delete(c.Request.Context(), id); err != nil {
		respondDBError(c, h.log, err, msgLabelNotFound)
		return
	}
	success(c)
}
