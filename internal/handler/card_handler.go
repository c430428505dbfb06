package handler

import (
	"context"
	"errors"
	"io"
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
	msgCardNotFound        = "Card not found"
	msgCardFieldsNeeded    = "Card title and list ID are required"
	msgTeamMemberRequired  = "Team member ID is required"
	msgAlreadyAssigned     = "Team member is already assigned to this card"
	msgAssignmentNotFound  = "Assignment not found"
	msgTeamMemberNotFound  = "Team member not found"
	msgLabelNotFound       = "Label not found"
	msgInvalidPriority     = "Invalid priority"
	msgInvalidStatus       = "Invalid status"
	msgLabelNotOnCardBoard = "Label does not belong to this board"
)

type CardHandler struct {
	cardRepo   repository.CardRepositoryInterface
	listRepo   repository.ListRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	labelRepo  repository.LabelRepositoryInterface
	log        *zap.Logger
}

func NewCardHandler(
	cardRepo repository.CardRepositoryInterface,
	listRepo repository.ListRepositoryInterface,
	memberRepo repository.TeamMemberRepositoryInterface,
	labelRepo repository.LabelRepositoryInterface,
	log *zap.Logger,
) *CardHandler {
	return &CardHandler{
		cardRepo:   cardRepo,
		listRepo:   listRepo,
		memberRepo: memberRepo,
		labelRepo:  labelRepo,
		log:        log,
	}
}

// GetAll returns cards filtered by listId and/or boardId, by position.
func (h *CardHandler) GetAll(c *gin.Context) {
	var filter repository.CardFilter
	if raw := c.Query("listId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID"})
			return
		}
		filter.ListID = &id
	}
	if raw := c.Query("boardId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
			return
		}
		filter.BoardID = &id
	}

	cards, err := h.cardRepo.Find(c.Request.Context(), filter)
	if err != nil {
		respondDBError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusOK, toCards(cards))
}

// Create appends a card to the end of its list.
func (h *CardHandler) Create(c *gin.Context) {
	var req api.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := "Invalid request"
		if errors.Is(err, io.EOF) {
			msg = msgCardFieldsNeeded
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	title := strings.TrimSpace(req.Title)
	listID, err := uuid.Parse(req.ListID)
	if title == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgCardFieldsNeeded})
		return
	}
	if req.Priority != nil && !model.ValidPriority(*req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidPriority})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.listRepo.GetByID(ctx, listID); err != nil {
		respondDBError(c, h.log, err, msgListNotFound)
		return
	}

	max, err := h.cardRepo.GetMaxPosition(ctx, listID)
	if err != nil {
		respondDBError(c, h.log, err, "")
		return
	}

	card := &model.Card{
		ListID:      listID,
		Title:       title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Position:    position.After(max),
	}
	if req.Priority != nil {
		card.Priority = *req.Priority
	}

	if err := h.cardRepo.Create(ctx, card); err != nil {
		respondDBError(c, h.log, err, "")
		return
	}

	created, err := h.cardRepo.GetDetail(ctx, card.ID)
	if err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}
	c.JSON(http.StatusCreated, toCard(*created))
}

func (h *CardHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id", msgCardNotFound)
	if !ok {
		return
	}

	card, err := h.cardRepo.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}
	c.JSON(http.StatusOK, toCard(*card))
}

// Update applies the fields present in the request. Moving a card to another
// list without an explicit position puts it at the end of the target list.
func (h *CardHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", msgCardNotFound)
	if !ok {
		return
	}

	var req api.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Priority != nil && !model.ValidPriority(*req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidPriority})
		return
	}
	if req.Status != nil && !model.ValidStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidStatus})
		return
	}

	ctx := c.Request.Context()
	card, err := h.cardRepo.GetByID(ctx, id)
	if err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Card title is required"})
			return
		}
		card.Title = title
	}
	if req.Description.Set {
		card.Description = req.Description.Value
	}
	if req.DueDate.Set {
		card.DueDate = req.DueDate.Value
	}
	if req.Priority != nil {
		card.Priority = *req.Priority
	}
	if req.Status != nil {
		card.Status = *req.Status
	}
	if req.Position != nil {
		card.Position = *req.Position
	}
	if req.ListID != nil {
		listID, err := uuid.Parse(*req.ListID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": msgListNotFound})
			return
		}
		if listID != card.ListID {
			if _, err := h.listRepo.GetByID(ctx, listID); err != nil {
				respondDBError(c, h.log, err, msgListNotFound)
				return
			}
			if req.Position == nil {
				max, err := h.cardRepo.GetMaxPosition(ctx, listID)
				if err != nil {
					respondDBError(c, h.log, err, "")
					return
				}
				card.Position = position.After(max)
			}
			card.ListID = listID
		}
	}

	if err := h.cardRepo.Update(ctx, card); err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}

	updated, err := h.cardRepo.GetDetail(ctx, id)
	if err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}
	c.JSON(http.StatusOK, toCard(*updated))
}

func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", msgCardNotFound)
	if !ok {
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), id); err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}
	success(c)
}

// Assign adds a team member to the card's assignees.
func (h *CardHandler) Assign(c *gin.Context) {
	cardID, ok := pathID(c, "id", msgCardNotFound)
	if !ok {
		return
	}

	var req api.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TeamMemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTeamMemberRequired})
		return
	}
	memberID, err := uuid.Parse(req.TeamMemberID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgTeamMemberNotFound})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.cardRepo.GetByID(ctx, cardID); err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}
	if _, err := h.memberRepo.GetByID(ctx, memberID); err != nil {
		respondDBError(c, h.log, err, msgTeamMemberNotFound)
		return
	}

	_, err = h.cardRepo.GetAssignment(ctx, cardID, memberID)
	switch {
	case err == nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": msgAlreadyAssigned})
		return
	case repository.Classify(err) != repository.KindNotFound:
		respondDBError(c, h.log, err, "")
		return
	}

	assignment, err := h.cardRepo.Assign(ctx, cardID, memberID)
	if err != nil {
		if repository.Classify(err) == repository.KindUniqueViolation {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgAlreadyAssigned})
			return
		}
		respondDBError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusCreated, toAssignment(*assignment))
}

// Unassign removes the member given by the teamMemberId query parameter.
func (h *CardHandler) Unassign(c *gin.Context) {
	cardID, ok := pathID(c, "id", msgCardNotFound)
	if !ok {
		return
	}

	raw := c.Query("teamMemberId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTeamMemberRequired})
		return
	}
	memberID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgAssignmentNotFound})
		return
	}

	if err := h.cardRepo.Unassign(c.Request.Context(), cardID, memberID); err != nil {
		respondDBError(c, h.log, err, msgAssignmentNotFound)
		return
	}
	success(c)
}

// AddLabel attaches a label of the card's board and returns the card.
func (h *CardHandler) AddLabel(c *gin.Context) {
	h.changeLabel(c, h.cardRepo.AddLabel)
}

// RemoveLabel detaches a label and returns the card.
func (h *CardHandler) RemoveLabel(c *gin.Context) {
	h.changeLabel(c, h.cardRepo.RemoveLabel)
}

func (h *CardHandler) changeLabel(c *gin.Context, apply func(ctx context.Context, cardID, labelID uuid.UUID) error) {
	cardID, ok := pathID(c, "id", msgCardNotFound)
	if !ok {
		return
	}
	labelID, ok := pathID(c, "labelId", msgLabelNotFound)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	card, err := h.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}
	label, err := h.labelRepo.GetByID(ctx, labelID)
	if err != nil {
		respondDBError(c, h.log, err, msgLabelNotFound)
		return
	}
	list, err := h.listRepo.GetByID(ctx, card.ListID)
	if err != nil {
		respondDBError(c, h.log, err, msgListNotFound)
		return
	}
	if label.BoardID != list.BoardID {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgLabelNotOnCardBoard})
		return
	}

	if err := apply(ctx, cardID, labelID); err != nil {
		respondDBError(c, h.log, err, "")
		return
	}

	updated, err := h.cardRepo.GetDetail(ctx, cardID)
	if err != nil {
		respondDBError(c, h.log, err, msgCardNotFound)
		return
	}
	c.JSON(http.StatusOK, toCard(*updated))
}
