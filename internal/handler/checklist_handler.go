package handler

import (
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

const msgChecklistItemNotFound = "Checklist item not found"

type ChecklistHandler struct {
	itemRepo repository.ChecklistRepositoryInterface
	cardRepo repository.CardRepositoryInterface
	log      *zap.Logger
}

func NewChecklistHandler(itemRepo repository.ChecklistRepositoryInterface, cardRepo repository.CardRepositoryInterface, log *zap.Logger) *ChecklistHandler {
	return &ChecklistHandler{
		itemRepo: itemRepo,
		cardRepo: cardRepo,
		log:      log,
	}
}

// Create appends an item to the card's checklist.
func (h *ChecklistHandler) Create(c *gin.Context) {
	const msgRequired = "Content and cardId are required"

	var req api.CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgRequired})
		return
	}
	content := strings.TrimSpace(req.Content)
	cardID, err := uuid.Parse(req.CardID)
	if content == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgRequired})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.cardRepo.GetByID(ctx, cardID); err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}

	max, err := h.itemRepo.GetMaxPosition(ctx, cardID)
	if err != nil {
		respondDBError(c, h.log, err, "")
		return
	}

	item := &model.ChecklistItem{
		CardID:    cardID,
		Content:   content,
		Completed: req.Completed,
		Position:  position.After(max),
	}
	if err := h.itemRepo.Create(ctx, item); err != nil {
		respondDBError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusCreated, toChecklistItem(*item))
}

func (h *ChecklistHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", msgChecklistItemNotFound)
	if !ok {
		return
	}

	var req api.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	item, err := h.itemRepo.GetByID(ctx, id)
	if err != nil {
		respondDBError(c, h.log, err, msgChecklistItemNotFound)
		return
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
			return
		}
		item.Content = content
	}
	if req.Completed != nil {
		item.Completed = *req.Completed
	}
	if req.Position != nil {
		item.Position = *req.Position
	}

	if err := h.itemRepo.Update(ctx, item); err != nil {
		respondDBError(c, h.log, err, msgChecklistItemNotFound)
		return
	}
	c.JSON(http.StatusOK, toChecklistItem(*item))
}

func (h *ChecklistHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", msgChecklistItemNotFound)
	if !ok {
		return
	}

	if err := h.itemRepo.Delete(c.Request.Context(), id); err != nil {
		respondDBError(c, h.log, err, msgChecklistItemNotFound)
		return
	}
	success(c)
}
