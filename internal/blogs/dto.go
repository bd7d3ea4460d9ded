package blogs

import (
	"time"

	"github.com/google/uuid"

	"github.com/carriedev/hazellab-backend/pkg/db/models"
)

// BlogDTO is the transport shape for storefront articles.
type BlogDTO struct {
	ID          uuid.UUID `json:"id"`
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion"`
	Contenido   string    `json:"contenido"`
	Imagen      string    `json:"imagen"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromModel maps the persisted blog onto the transport DTO.
func FromModel(b *models.Blog) *BlogDTO {
	if b == nil {
		return nil
	}
	return &BlogDTO{
		ID:          b.ID,
		Titulo:      b.Titulo,
		Descripcion: b.Descripcion,
		Contenido:   b.Contenido,
		Imagen:      b.Imagen,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func fromModels(blogs []models.Blog) []BlogDTO {
	out := make([]BlogDTO, 0, len(blogs))
	for i := range blogs {
		out = append(out, *FromModel(&blogs[i]))
	}
	return out
}
