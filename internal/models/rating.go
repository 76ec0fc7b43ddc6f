package models

import (
	"time"

	"gorm.io/gorm"
)

// Rating is a user's score for a product, in [0, 5].
type Rating struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Score     float64        `gorm:"not null" json:"nota"`
	Content   string         `gorm:"type:text;not null" json:"conteudo"`
	UserID    uint           `gorm:"index;not null" json:"usuario"`
	ProductID uint           `gorm:"index;not null" json:"produto"`
	CreatedAt time.Time      `gorm:"index" json:"criado_em"`
	UpdatedAt time.Time      `json:"atualizado_em"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Rating) TableName() string {
	return "avaliacoes"
}
