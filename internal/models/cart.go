package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart is a user's in-progress selection. OrderID is null while the cart
// is active; once attached to an order the cart is immutable.
type Cart struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Total     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"valor_total"`
	OrderID   *uint          `gorm:"index" json:"pedido"`
	UserID    uint           `gorm:"index;not null" json:"usuario"`
	CreatedAt time.Time      `gorm:"index" json:"criado_em"`
	UpdatedAt time.Time      `json:"atualizado_em"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"itens,omitempty"`
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carrinhos"
}

// IsActive reports whether the cart is still detached from any order.
func (c *Cart) IsActive() bool {
	return c != nil && c.OrderID == nil
}
