package queue

import (
	"encoding/json"

	"github.com/compravenda/api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusEmail notifies the customer when an order changes status.
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskProductLowStock alerts the store operator about low inventory.
	TaskProductLowStock = constants.TaskProductLowStock
)

// OrderStatusEmailPayload is the payload of the status email task.
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	UserID  uint   `json:"user_id"`
	Status  string `json:"status"`
}

// ProductLowStockPayload is the payload of the low stock alert task.
type ProductLowStockPayload struct {
	ProductID uint `json:"product_id"`
	Stock     int  `json:"stock"`
}

// NewOrderStatusEmailTask builds the status email task.
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewProductLowStockTask builds the low stock alert task.
func NewProductLowStockTask(payload ProductLowStockPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskProductLowStock, body), nil
}
