package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products in the catalog.
type Category struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Nombre string    `gorm:"column:nombre;not null;uniqueIndex"`
}

func (Category) TableName() string { return "categorias" }

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
