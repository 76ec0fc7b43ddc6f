package models

import (
	"time"

	"gorm.io/gorm"
)

// Order groups one or more carts and tracks a status lifecycle.
type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Status    string         `gorm:"index;not null;default:'Aberto'" json:"status"`
	UserID    uint           `gorm:"index;not null" json:"usuario"`
	CreatedAt time.Time      `gorm:"index" json:"criado_em"`
	UpdatedAt time.Time      `json:"atualizado_em"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Carts []Cart `gorm:"foreignKey:OrderID" json:"carrinhos,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "pedidos"
}
