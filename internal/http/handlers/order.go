package handlers

import (
	"github.com/compravenda/api/internal/http/response"
	"github.com/compravenda/api/internal/repository"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest is the order creation payload.
type CreateOrderRequest struct {
	CartIDs []uint `json:"carrinhos" binding:"required"`
}

// UpdateOrderRequest is the status update payload.
type UpdateOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder opens an order from the user's carts.
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados do pedido inválidos.")
		return
	}
	order, err := h.OrderService.Create(uid, req.CartIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// UpdateOrder moves an order to a new status.
func (h *Handler) UpdateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Informe o novo status do pedido.")
		return
	}
	order, err := h.OrderService.UpdateStatus(uid, id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, order)
}

// CancelOrder moves an order to the terminal cancelled status.
func (h *Handler) CancelOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Cancel(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, order)
}

// ListOrders returns the user's orders.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePageQuery(c)
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}
	orders, total, err := h.OrderService.List(uid, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder returns one of the user's orders.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, order)
}
