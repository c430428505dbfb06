package handler

import (
	"math/rand/v2"
	"net/http"
	"strings"

	"kanban/internal/api"
	"kanban/internal/model"
	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TeamMemberHandler struct {
	memberRepo repository.TeamMemberRepositoryInterface
	boardRepo  repository.BoardRepositoryInterface
	log        *zap.Logger
}

func NewTeamMemberHandler(memberRepo repository.TeamMemberRepositoryInterface, boardRepo repository.BoardRepositoryInterface, log *zap.Logger) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberRepo: memberRepo,
		boardRepo:  boardRepo,
		log:        log,
	}
}

func randomAvatarColor() string {
	return model.AvatarColors[rand.IntN(len(model.AvatarColors))]
}

func (h *TeamMemberHandler) GetByBoard(c *gin.Context) {
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

	members, err := h.memberRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		respondDBError(c, h.log, err, "")
		return
	}

	response := make([]api.TeamMember, len(members))
	for i, m := range members {
		response[i] = toTeamMember(m)
	}
	c.JSON(http.StatusOK, response)
}

// Create adds a member; a color is picked from the avatar palette when none is given.
func (h *TeamMemberHandler) Create(c *gin.Context) {
	const msgRequired = "Name and board ID are required"

	var req api.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgRequired})
		return
	}
	name := strings.TrimSpace(req.Name)
	boardID, err := uuid.Parse(req.BoardID)
	if name == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgRequired})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondDBError(c, h.log, err, msgBoardNotFound)
		return
	}

	member := &model.TeamMember{BoardID: boardID, Name: name, Color: randomAvatarColor()}
	if req.Color != nil && *req.Color != "" {
		member.Color = *req.Color
	}

	if err := h.memberRepo.Create(ctx, member); err != nil {
		respondDBError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusCreated, toTeamMember(*member))
}

func (h *TeamMemberHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", msgTeamMemberNotFound)
	if !ok {
		return
	}

	var req api.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	member, err := h.memberRepo.GetByID(ctx, id)
	if err != nil {
		respondDBError(c, h.log, err, msgTeamMemberNotFound)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		member.Name = name
	}
	if req.Color != nil && *req.Color != "" {
		member.Color = *req.Color
	}

	if err := h.memberRepo.Update(ctx, member); err != nil {
		respondDBError(c, h.log, err, msgTeamMemberNotFound)
		return
	}
	c.JSON(http.StatusOK, toTeamMember(*member))
}

// Delete removes the member and its card assignments.
func (h *TeamMemberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", msgTeamMemberNotFound)
	if !ok {
		return
	}

	if err := h.memberRepo.Delete(c.Request.Context(), id); err != nil {
		respondDBError(c, h.log, err, msgTeamMemberNotFound)
		return
	}
	success(c)
}
