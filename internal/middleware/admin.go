package middleware

import (
	"net/http"
	"strings"

	"kanban/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	// AdminKey holds a bool in the gin context: whether the request carries admin credentials.
	AdminKey = "isAdmin"

	HeaderAdminSession  = "x-admin-session"
	HeaderAdminPassword = "x-admin-password"
)

// IsAdminRequest accepts any of: the admin session flag header, the admin
// password header, or a bearer admin token.
func IsAdminRequest(r *http.Request, admin auth.Admin) bool {
	if r.Header.Get(HeaderAdminSession) == "true" {
		return true
	}
	if password := r.Header.Get(HeaderAdminPassword); password != "" && admin.CheckPassword(password) {
		return true
	}
	if !admin.TokensEnabled() {
		return false
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return false
	}
	return admin.ParseToken(parts[1]) == nil
}

// AdminContext records in the context whether the request is an admin request.
func AdminContext(admin auth.Admin) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(AdminKey, IsAdminRequest(c.Request, admin))
		c.Next()
	}
}

// RequireAdmin aborts with 403 and message unless AdminContext marked the request as admin.
func RequireAdmin(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		c.Next()
	}
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(AdminKey)
}
