package handler

import (
	"net/http"

	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondDBError writes the classified persistence error. notFound replaces
// the generic not-found message when set.
func respondDBError(c *gin.Context, log *zap.Logger, err error, notFound string) {
	kind := repository.Classify(err)
	if kind == repository.KindNotFound {
		msg := notFound
		if msg == "" {
			msg = kind.Message()
		}
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
		return
	}

	log.Error("database error",
		zap.Error(err),
		zap.String("kind", kind.String()),
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": kind.Message()})
}

// pathID parses the :id route parameter. A malformed id cannot match any row,
// so it is answered with notFound.
func pathID(c *gin.Context, name, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return uuid.Nil, false
	}
	return id, true
}

func success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
