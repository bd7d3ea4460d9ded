package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem ties a product and a quantity to a user's cart.
type CartItem struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UsuarioID  uuid.UUID `gorm:"column:usuario_id;type:uuid;not null"`
	ProductoID uuid.UUID `gorm:"column:producto_id;type:uuid;not null"`
	Producto   *Product  `gorm:"foreignKey:ProductoID"`
	Quantity   int       `gorm:"column:quantity;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CartItem) TableName() string { return "items_carrito" }

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}
