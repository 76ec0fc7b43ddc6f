package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/compravenda/api/internal/logger"
	"github.com/compravenda/api/internal/provider"
	"github.com/compravenda/api/internal/queue"
	"github.com/compravenda/api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer processes queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register binds task handlers to the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskProductLowStock, c.handleProductLowStock)
}

// emailSkippable reports whether a send failure means email is turned
// off rather than broken. Retrying such a task can never succeed.
func emailSkippable(err error) bool {
	return errors.Is(err, service.ErrEmailServiceDisabled) ||
		errors.Is(err, service.ErrEmailServiceNotConfigured)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID)
		return nil
	}

	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	if err := c.EmailService.SendOrderStatusEmail(user.Email, order.ID, status); err != nil {
		if emailSkippable(err) {
			logger.Debugw("worker_order_status_email_skip_disabled", "order_id", order.ID)
			return nil
		}
		logger.Warnw("worker_order_status_email_send_failed", "order_id", order.ID, "error", err)
		return err
	}
	logger.Infow("worker_order_status_email_sent", "order_id", order.ID, "status", status)
	return nil
}

func (c *Consumer) handleProductLowStock(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.ProductLowStockPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_low_stock_unmarshal_failed", "error", err)
		return err
	}
	if payload.ProductID == 0 {
		return nil
	}

	product, err := c.ProductRepo.GetByID(payload.ProductID)
	if err != nil {
		logger.Warnw("worker_low_stock_fetch_product_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	if product == nil {
		return nil
	}

	alertEmail := strings.TrimSpace(c.Config.Email.AlertEmail)
	if alertEmail == "" {
		logger.Debugw("worker_low_stock_skip_no_alert_email", "product_id", product.ID)
		return nil
	}
	if err := c.EmailService.SendLowStockAlert(alertEmail, product.ID, product.Description, product.Stock); err != nil {
		if emailSkippable(err) {
			logger.Debugw("worker_low_stock_skip_disabled", "product_id", product.ID)
			return nil
		}
		logger.Warnw("worker_low_stock_send_failed", "product_id", product.ID, "error", err)
		return err
	}
	logger.Infow("worker_low_stock_alert_sent", "product_id", product.ID, "stock", product.Stock)
	return nil
}
