package handlers

import (
	"errors"
	"net/http"

	"github.com/compravenda/api/internal/http/response"
	"github.com/compravenda/api/internal/logger"
	"github.com/compravenda/api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a sentinel service error to an HTTP response.
type mappedHandlerError struct {
	target error
	status int
	detail string
}

var commonErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, status: http.StatusNotFound, detail: "Produto não encontrado."},
	{target: service.ErrCartNotFound, status: http.StatusNotFound, detail: "Carrinho não encontrado."},
	{target: service.ErrCartEmpty, status: http.StatusBadRequest, detail: "O carrinho deve conter ao menos um item."},
	{target: service.ErrCartAlreadyOrdered, status: http.StatusBadRequest, detail: "Carrinho já vinculado a um pedido."},
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, detail: "Pedido não encontrado."},
	{target: service.ErrInvalidOrderStatus, status: http.StatusBadRequest, detail: "Status de pedido inválido."},
	{target: service.ErrUserNotFound, status: http.StatusNotFound, detail: "Usuário não encontrado."},
	{target: service.ErrUsernameTaken, status: http.StatusBadRequest, detail: "Nome de usuário já cadastrado."},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, detail: "Usuário ou senha inválidos."},
	{target: service.ErrUserInactive, status: http.StatusUnauthorized, detail: "Usuário inativo."},
	{target: service.ErrInvalidToken, status: http.StatusUnauthorized, detail: "Token inválido ou expirado."},
	{target: service.ErrInvalidCep, status: http.StatusBadRequest, detail: "CEP inválido. Informe 8 dígitos."},
	{target: service.ErrCepNotFound, status: http.StatusNotFound, detail: "CEP não encontrado."},
}

// stockRejection mirrors the per-item body of the cart endpoints.
type stockRejection struct {
	ProductID      uint   `json:"produto"`
	Quantity       int    `json:"quantidade"`
	Detail         string `json:"detail"`
	AvailableStock int    `json:"estoque_disponivel"`
}

// respondServiceError translates a service failure into the wire
// format: typed errors carry their own message or body, sentinels go
// through the rules table, anything else is a logged 500.
func respondServiceError(c *gin.Context, err error) {
	var oos *service.OutOfStockError
	if errors.As(err, &oos) {
		response.ErrorWithBody(c, http.StatusBadRequest, gin.H{
			"itens": []stockRejection{{
				ProductID:      oos.ProductID,
				Quantity:       oos.Requested,
				Detail:         "Produto não possui estoque",
				AvailableStock: oos.Available,
			}},
		})
		return
	}

	var rule *service.StatusRuleError
	if errors.As(err, &rule) {
		response.BadRequest(c, rule.Message)
		return
	}

	var validation *service.ValidationError
	if errors.As(err, &validation) {
		response.BadRequest(c, validation.Message)
		return
	}

	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		response.Error(c, upstream.StatusCode, "Falha na consulta ao serviço de CEP.")
		return
	}

	for _, mapped := range commonErrorRules {
		if errors.Is(err, mapped.target) {
			response.Error(c, mapped.status, mapped.detail)
			return
		}
	}

	logger.Errorw("unhandled service error",
		"path", c.FullPath(),
		"error", err,
	)
	response.Internal(c, "Erro interno do servidor.")
}
