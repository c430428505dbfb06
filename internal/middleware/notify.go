package middleware

import (
	"net/http"
	"time"

	"kanban/internal/live"

	"github.com/gin-gonic/gin"
)

// readOnlyRoutes are POST routes that change no data.
var readOnlyRoutes = map[string]bool{
	"/admin/login":       true,
	"/boards/:id/access": true,
}

// Notify publishes a change event after every successful mutating request.
func Notify(pub live.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if readOnlyRoutes[c.FullPath()] {
			return
		}

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		pub.Publish(live.Event{
			Type:   live.EventChange,
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			At:     time.Now().UTC(),
		})
	}
}
