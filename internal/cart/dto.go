package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/carriedev/hazellab-backend/internal/products"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
)

// CartItemDTO is the transport shape for cart entries. Producto is populated
// eagerly on reads so clients never need a second catalog request.
type CartItemDTO struct {
	ID         uuid.UUID            `json:"id"`
	UsuarioID  uuid.UUID            `json:"usuarioId"`
	ProductoID uuid.UUID            `json:"productoId"`
	Producto   *products.ProductDTO `json:"producto,omitempty"`
	Quantity  int                  `json:"cantidad"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// FromModel maps the persisted cart item onto the transport DTO.
func FromModel(item *models.CartItem) *CartItemDTO {
	if item == nil {
		return nil
	}
	return &CartItemDTO{
		ID:         item.ID,
		UsuarioID:  item.UsuarioID,
		ProductoID: item.ProductoID,
		Producto:   products.FromModel(item.Producto),
		Quantity:   item.Quantity,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

func fromModels(items []models.CartItem) []CartItemDTO {
	out := make([]CartItemDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
