package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog holds a storefront article.
type Blog struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Titulo      string    `gorm:"column:titulo;not null"`
	Descripcion string    `gorm:"column:descripcion"`
	Contenido   string    `gorm:"column:contenido"`
	Imagen      string    `gorm:"column:imagen"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Blog) TableName() string { return "blogs" }

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
