package handlers

import (
	"github.com/compravenda/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the credential payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Login verifies credentials and returns an access/refresh pair.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Informe usuário e senha.")
		return
	}
	pair, _, err := h.UserAuthService.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, pair)
}

// Refresh exchanges a refresh token for a new pair.
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Informe o token de atualização.")
		return
	}
	pair, err := h.UserAuthService.Refresh(req.Refresh)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, pair)
}
