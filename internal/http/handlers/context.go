package handlers

import (
	"strconv"

	"github.com/compravenda/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getUserID reads the authenticated user id set by the JWT middleware.
// A missing or malformed value aborts the request with a 401.
func getUserID(c *gin.Context) (uint, bool) {
	value, ok := c.Get("user_id")
	if !ok {
		response.Unauthorized(c, "Credenciais de autenticação não fornecidas.")
		c.Abort()
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, "Credenciais de autenticação inválidas.")
		c.Abort()
		return 0, false
	}
	return id, true
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// parsePageQuery reads page/page_size query parameters with defaults.
func parsePageQuery(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
