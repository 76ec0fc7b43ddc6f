package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog entry. Stock is only mutated by the cart
// reconciliation workflow, inside a transaction.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Description string         `gorm:"type:text;not null" json:"descricao"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"valor"`
	ExpiresOn   time.Time      `gorm:"type:date" json:"data_validade"`
	Stock       int            `gorm:"not null;default:0" json:"estoque"`
	CreatedAt   time.Time      `gorm:"index" json:"criado_em"`
	UpdatedAt   time.Time      `json:"atualizado_em"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "produtos"
}
