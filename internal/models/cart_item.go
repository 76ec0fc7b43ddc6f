package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem is one line of a cart. UnitPrice snapshots the product price at
// reservation time; items are recreated wholesale on every cart update.
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CartID    uint           `gorm:"index;not null" json:"carrinho"`
	ProductID uint           `gorm:"index;not null" json:"produto"`
	Quantity  int            `gorm:"not null" json:"quantidade"`
	UnitPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"valor_produto"`
	Total     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"valor_total"`
	CreatedAt time.Time      `gorm:"index" json:"criado_em"`
	UpdatedAt time.Time      `json:"atualizado_em"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "carrinho_itens"
}
