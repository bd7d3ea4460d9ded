package categories

import (
	"github.com/google/uuid"

	"github.com/carriedev/hazellab-backend/pkg/db/models"
)

// CategoryDTO is the transport shape for catalog categories.
type CategoryDTO struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
}

// FromModel maps the persisted category onto the transport DTO.
func FromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:     c.ID,
		Nombre: c.Nombre,
	}
}

func fromModels(categories []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		out = append(out, *FromModel(&categories[i]))
	}
	return out
}
