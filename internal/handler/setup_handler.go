package handler

import (
	"net/http"

	"kanban/internal/api"
	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SetupHandler struct {
	statsRepo repository.StatsRepositoryInterface
	log       *zap.Logger
}

func NewSetupHandler(statsRepo repository.StatsRepositoryInterface, log *zap.Logger) *SetupHandler {
	return &SetupHandler{statsRepo: statsRepo, log: log}
}

// Status reports whether the schema is reachable, with row counts.
func (h *SetupHandler) Status(c *gin.Context) {
	stats, err := h.statsRepo.Counts(c.Request.Context())
	if err != nil {
		h.log.Warn("setup status check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Database tables are not set up. Run the migrations first.",
			"error":   repository.UserMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, api.SetupStatus{
		Success: true,
		Message: "Database is set up",
		Stats: api.SetupStats{
			Boards: stats.Boards,
			Lists:  stats.Lists,
			Cards:  stats.Cards,
		},
	})
}
