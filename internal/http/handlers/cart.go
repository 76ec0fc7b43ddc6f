package handlers

import (
	"github.com/compravenda/api/internal/http/response"
	"github.com/compravenda/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CartRequest is the cart create/update payload.
type CartRequest struct {
	Items []service.CartItemInput `json:"itens" binding:"required"`
}

// GetActiveCart returns the user's cart not yet attached to an order.
func (h *Handler) GetActiveCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetActive(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, cart)
}

// CreateCart replaces the user's active cart with the requested items.
func (h *Handler) CreateCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados do carrinho inválidos.")
		return
	}
	cart, err := h.CartService.Checkout(uid, req.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, cart)
}

// UpdateCart rebuilds an existing cart from the requested items.
func (h *Handler) UpdateCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados do carrinho inválidos.")
		return
	}
	cart, err := h.CartService.Replace(uid, id, req.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, cart)
}

// DeleteCart discards a cart and returns its items to stock.
func (h *Handler) DeleteCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CartService.Delete(uid, id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
