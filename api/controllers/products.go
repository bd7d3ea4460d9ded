package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carriedev/hazellab-backend/api/responses"
	"github.com/carriedev/hazellab-backend/api/validators"
	productsvc "github.com/carriedev/hazellab-backend/internal/products"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
	"github.com/carriedev/hazellab-backend/pkg/logger"
)

// CreateProduct registers a catalog entry.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusCreated, product)
	}
}

func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, products)
	}
}

func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, product)
	}
}

func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, product)
	}
}

func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// DeactivateProduct performs the soft delete used by the storefront.
func DeactivateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Deactivate(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, product)
	}
}

// UpdateProductImage replaces only the stored image URL.
func UpdateProductImage(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productImageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		url := strings.TrimSpace(payload.Imagen)
		if url == "" || !strings.HasPrefix(url, "http") {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "la url de la imagen es inválida"))
			return
		}

		product, err := svc.UpdateImage(r.Context(), id, url)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, product)
	}
}

func ListFeaturedProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListFeatured(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, products)
	}
}

func ListLowStockProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListLowStock(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, products)
	}
}

func SearchProductsByName(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.SearchByName(r.Context(), validators.PathParam(r, "nombre"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, products)
	}
}

func SearchProductsByCategory(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoriaID, err := validators.ParseUUIDParam(r, "categoriaId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.SearchByCategory(r.Context(), categoriaID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, products)
	}
}

// SearchProductsByStatus filters by the activo query flag, optionally
// narrowed by a nombre fragment.
func SearchProductsByStatus(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, err := validators.ParseQueryBool(r, "activo")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var products []productsvc.ProductDTO
		if nombre := validators.OptionalQueryString(r, "nombre"); nombre != nil {
			products, err = svc.SearchByNameAndStatus(r.Context(), *nombre, active)
		} else {
			products, err = svc.SearchByStatus(r.Context(), active)
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, products)
	}
}

// AdvancedProductSearch combines the optional nombre and categoriaId filters.
func AdvancedProductSearch(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoriaID, err := validators.OptionalQueryUUID(r, "categoriaId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		nombre := validators.OptionalQueryString(r, "nombre")

		products, err := svc.AdvancedSearch(r.Context(), nombre, categoriaID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, products)
	}
}

type productRequest struct {
	Name         string          `json:"name" validate:"required"`
	BatchCode    string          `json:"batchCode"`
	Description  string          `json:"description"`
	ChemCode     string          `json:"chemCode"`
	ExpDate      string          `json:"expDate"`
	ElabDate     string          `json:"elabDate"`
	Cost         decimal.Decimal `json:"cost"`
	Stock        int             `json:"stock" validate:"min=0"`
	StockCritico int             `json:"stockCritico" validate:"min=0"`
	Proveedor    string          `json:"proveedor"`
	CategoriaID  *string         `json:"categoriaId,omitempty"`
	Image        string          `json:"image"`
	ActiveStatus *bool           `json:"activeStatus,omitempty"`
	Destacado    bool            `json:"destacado"`
}

type productImageRequest struct {
	Imagen string `json:"imagen" validate:"required"`
}

func (r productRequest) toInput() (productsvc.ProductInput, error) {
	input := productsvc.ProductInput{
		Name:         r.Name,
		BatchCode:    r.BatchCode,
		Description:  r.Description,
		ChemCode:     r.ChemCode,
		ExpDate:      r.ExpDate,
		ElabDate:     r.ElabDate,
		Cost:         r.Cost,
		Stock:        r.Stock,
		StockCritico: r.StockCritico,
		Proveedor:    r.Proveedor,
		Image:        r.Image,
		ActiveStatus: r.ActiveStatus,
		Destacado:    r.Destacado,
	}

	if r.CategoriaID != nil && strings.TrimSpace(*r.CategoriaID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*r.CategoriaID))
		if err != nil {
			return productsvc.ProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "categoría inválida")
		}
		input.CategoriaID = &id
	}

	return input, nil
}
