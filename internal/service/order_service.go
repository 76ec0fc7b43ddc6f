package service

import (
	"fmt"

	"github.com/compravenda/api/internal/constants"
	"github.com/compravenda/api/internal/logger"
	"github.com/compravenda/api/internal/models"
	"github.com/compravenda/api/internal/queue"
	"github.com/compravenda/api/internal/repository"

	"gorm.io/gorm"
)

// OrderService drives the order lifecycle. Status changes go through an
// explicit transition table instead of ad-hoc comparisons, and
// cancellation has its own rules because it is terminal.
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
	}
}

// allowedTransitions maps current status to the statuses the update
// endpoint may move to. Cancellation is absent on purpose: it only
// happens through Cancel.
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusOpen: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusShipped:    true,
		constants.OrderStatusDelivered:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusDelivered: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
	},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCanceled:  {},
}

// Create opens an order from the user's carts. Every cart must belong
// to the user and must not already be attached to another order.
func (s *OrderService) Create(userID uint, cartIDs []uint) (*models.Order, error) {
	if len(cartIDs) == 0 {
		return nil, ErrCartEmpty
	}

	var created *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)

		carts, err := cartRepo.ListByIDs(cartIDs)
		if err != nil {
			return err
		}
		if len(carts) != len(cartIDs) {
			return ErrCartNotFound
		}
		for _, cart := range carts {
			if cart.UserID != userID {
				return ErrCartNotFound
			}
			if !cart.IsActive() {
				return ErrCartAlreadyOrdered
			}
		}

		order := &models.Order{UserID: userID, Status: constants.OrderStatusOpen}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		if err := cartRepo.AttachToOrder(cartIDs, order.ID); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	full, err := s.orderRepo.GetByID(created.ID)
	if err != nil {
		return nil, err
	}
	s.notifyStatus(full)
	return full, nil
}

// UpdateStatus moves an order to a new status per the transition table.
func (s *OrderService) UpdateStatus(userID, orderID uint, status string) (*models.Order, error) {
	if !constants.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if order.Status == constants.OrderStatusCanceled {
		return nil, &StatusRuleError{Message: "Não é possível atualizar um pedido cancelado por este endpoint."}
	}
	if order.Status == status {
		return nil, &StatusRuleError{Message: fmt.Sprintf("Pedido já se encontra %s.", status)}
	}
	if status == constants.OrderStatusCanceled {
		return nil, &StatusRuleError{Message: "Utilize o endpoint de cancelamento para cancelar o pedido."}
	}
	if !allowedTransitions[order.Status][status] {
		return nil, &StatusRuleError{Message: fmt.Sprintf("Não é possível alterar o status de %s para %s.", order.Status, status)}
	}

	if err := s.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	s.notifyStatus(order)
	return order, nil
}

// Cancel moves an order to the terminal cancelled status. Orders
// already shipped or delivered stay untouched.
func (s *OrderService) Cancel(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	switch order.Status {
	case constants.OrderStatusCanceled:
		return nil, &StatusRuleError{Message: "Pedido já se encontra cancelado."}
	case constants.OrderStatusShipped:
		return nil, &StatusRuleError{Message: "Pedido não pode ser cancelado, pois já foi enviado."}
	case constants.OrderStatusDelivered:
		return nil, &StatusRuleError{Message: "Pedido não pode ser cancelado, pois já foi entregue."}
	}

	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCanceled); err != nil {
		return nil, err
	}
	order.Status = constants.OrderStatusCanceled
	s.notifyStatus(order)
	return order, nil
}

// Get returns an order owned by the user.
func (s *OrderService) Get(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns the user's orders.
func (s *OrderService) List(userID uint, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	filter.UserID = userID
	return s.orderRepo.List(filter)
}

// notifyStatus enqueues the status email. Enqueue failures only log so
// the state change itself is never rolled back by a queue hiccup.
func (s *OrderService) notifyStatus(order *models.Order) {
	if order == nil || s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
	})
	if err != nil {
		logger.Warnw("enqueue order status email failed", "order_id", order.ID, "error", err)
	}
}
