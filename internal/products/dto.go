package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carriedev/hazellab-backend/internal/categories"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
)

// ProductDTO is the transport shape for catalog listings.
type ProductDTO struct {
	ID           uuid.UUID                `json:"id"`
	Name         string                   `json:"name"`
	BatchCode    string                   `json:"batchCode"`
	Description  string                   `json:"description"`
	ChemCode     string                   `json:"chemCode"`
	ExpDate      string                   `json:"expDate"`
	ElabDate     string                   `json:"elabDate"`
	Cost         decimal.Decimal          `json:"cost"`
	Stock        int                      `json:"stock"`
	StockCritico int                      `json:"stockCritico"`
	Proveedor    string                   `json:"proveedor"`
	Categoria    *categories.CategoryDTO  `json:"categoria,omitempty"`
	Image        string                   `json:"image"`
	ActiveStatus bool                     `json:"activeStatus"`
	Destacado    bool                     `json:"destacado"`
	CreationDate time.Time                `json:"creationDate"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// FromModel maps the persisted product onto the transport DTO.
func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		BatchCode:    p.BatchCode,
		Description:  p.Description,
		ChemCode:     p.ChemCode,
		ExpDate:      p.ExpDate,
		ElabDate:     p.ElabDate,
		Cost:         p.Cost,
		Stock:        p.Stock,
		StockCritico: p.StockCritico,
		Proveedor:    p.Proveedor,
		Categoria:    categories.FromModel(p.Categoria),
		Image:        p.Image,
		ActiveStatus: p.ActiveStatus,
		Destacado:    p.Destacado,
		CreationDate: p.CreationDate,
		UpdatedAt:    p.UpdatedAt,
	}
}

func fromModels(products []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, *FromModel(&products[i]))
	}
	return out
}
