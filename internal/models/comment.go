package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a free-text note a user attached to a product.
type Comment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Message   string         `gorm:"type:text;not null" json:"mensagem"`
	UserID    uint           `gorm:"index;not null" json:"usuario"`
	ProductID uint           `gorm:"index;not null" json:"produto"`
	CreatedAt time.Time      `gorm:"index" json:"criado_em"`
	UpdatedAt time.Time      `json:"atualizado_em"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Comment) TableName() string {
	return "comentarios"
}
