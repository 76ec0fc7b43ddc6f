package constants

// Order status values. Wire values keep the Portuguese labels the public
// API has always exposed.
const (
	OrderStatusCanceled   = "Cancelado"
	OrderStatusOpen       = "Aberto"
	OrderStatusProcessing = "Processando"
	OrderStatusShipped    = "Enviado"
	OrderStatusDelivered  = "Entregue"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusCanceled,
	OrderStatusOpen,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// IsValidOrderStatus reports whether s is one of the known statuses.
func IsValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// Rating score bounds.
const (
	RatingScoreMin = 0.0
	RatingScoreMax = 5.0
)

// Queue names.
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// Task type names.
const (
	TaskOrderStatusEmail = "loja:order_status_email"
	TaskProductLowStock  = "loja:product_low_stock"
)

// JWT token type claims.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)
