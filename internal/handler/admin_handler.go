package handler

import (
	"net/http"

	"kanban/internal/api"
	"kanban/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	admin auth.Admin
	log   *zap.Logger
}

func NewAdminHandler(admin auth.Admin, log *zap.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, log: log}
}

// Login checks the admin password. When session tokens are configured the
// response also carries a signed admin token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}
	if !h.admin.CheckPassword(req.Password) {
		h.log.Warn("admin login rejected", zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin password"})
		return
	}

	resp := api.LoginResponse{Success: true}
	if h.admin.TokensEnabled() {
		token, err := h.admin.GenerateToken()
		if err != nil {
			h.log.Error("sign admin token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		resp.Token = token
	}
	c.JSON(http.StatusOK, resp)
}
