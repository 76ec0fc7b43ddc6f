package handlers

import (
	"github.com/compravenda/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LookupCep proxies a postal code lookup to ViaCEP.
func (h *Handler) LookupCep(c *gin.Context) {
	result, err := h.CepService.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, result)
}
