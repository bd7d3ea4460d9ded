package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/carriedev/hazellab-backend/pkg/db/models"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
)

// Products with stock strictly below this count surface on the low stock report.
const lowStockThreshold = 5

// Service exposes catalog management operations.
type Service interface {
	Create(ctx context.Context, input ProductInput) (*ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	List(ctx context.Context) ([]ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) (*ProductDTO, error)
	ListFeatured(ctx context.Context) ([]ProductDTO, error)
	ListLowStock(ctx context.Context) ([]ProductDTO, error)
	SearchByName(ctx context.Context, fragment string) ([]ProductDTO, error)
	SearchByCategory(ctx context.Context, categoriaID uuid.UUID) ([]ProductDTO, error)
	SearchByStatus(ctx context.Context, active bool) ([]ProductDTO, error)
	SearchByNameAndStatus(ctx context.Context, fragment string, active bool) ([]ProductDTO, error)
	AdvancedSearch(ctx context.Context, nombre *string, categoriaID *uuid.UUID) ([]ProductDTO, error)
}

// ProductInput holds the full replacement state for a product.
type ProductInput struct {
	Name         string
	BatchCode    string
	Description  string
	ChemCode     string
	ExpDate      string
	ElabDate     string
	Cost         decimal.Decimal
	Stock        int
	StockCritico int
	Proveedor    string
	CategoriaID  *uuid.UUID
	Image        string
	ActiveStatus *bool
	Destacado    bool
}

type categoryLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type service struct {
	repo       *Repository
	categories categoryLoader
}

// NewService constructs the catalog service.
func NewService(repo *Repository, categories categoryLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if categories == nil {
		return nil, fmt.Errorf("category loader required")
	}
	return &service{repo: repo, categories: categories}, nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*ProductDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "el nombre es obligatorio")
	}
	if err := s.ensureCategory(ctx, input.CategoriaID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:         input.Name,
		BatchCode:    input.BatchCode,
		Description:  input.Description,
		ChemCode:     input.ChemCode,
		ExpDate:      input.ExpDate,
		ElabDate:     input.ElabDate,
		Cost:         input.Cost,
		Stock:        input.Stock,
		StockCritico: input.StockCritico,
		Proveedor:    input.Proveedor,
		CategoriaID:  input.CategoriaID,
		Image:        input.Image,
		ActiveStatus: true,
		Destacado:    input.Destacado,
	}
	if input.ActiveStatus != nil {
		product.ActiveStatus = *input.ActiveStatus
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}
	return FromModel(created), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(product), nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return fromModels(products), nil
}

// Update replaces every mutable field. The creation date survives updates.
func (s *service) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*ProductDTO, error) {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "el nombre es obligatorio")
	}
	if err := s.ensureCategory(ctx, input.CategoriaID); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.BatchCode = input.BatchCode
	product.Description = input.Description
	product.ChemCode = input.ChemCode
	product.ExpDate = input.ExpDate
	product.ElabDate = input.ElabDate
	product.Cost = input.Cost
	product.Stock = input.Stock
	product.StockCritico = input.StockCritico
	product.Proveedor = input.Proveedor
	product.CategoriaID = input.CategoriaID
	product.Categoria = nil
	product.Image = input.Image
	product.Destacado = input.Destacado
	if input.ActiveStatus != nil {
		product.ActiveStatus = *input.ActiveStatus
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadProduct(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	return nil
}

func (s *service) Deactivate(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	product.ActiveStatus = false
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivating product")
	}
	return FromModel(product), nil
}

func (s *service) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) (*ProductDTO, error) {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Image = imageURL
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product image")
	}
	return FromModel(product), nil
}

func (s *service) ListFeatured(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing featured products")
	}
	return fromModels(products), nil
}

func (s *service) ListLowStock(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing low stock products")
	}
	return fromModels(products), nil
}

func (s *service) SearchByName(ctx context.Context, fragment string) ([]ProductDTO, error) {
	products, err := s.repo.SearchByName(ctx, fragment)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching products by name")
	}
	return fromModels(products), nil
}

func (s *service) SearchByCategory(ctx context.Context, categoriaID uuid.UUID) ([]ProductDTO, error) {
	products, err := s.repo.SearchByCategory(ctx, categoriaID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching products by category")
	}
	return fromModels(products), nil
}

func (s *service) SearchByStatus(ctx context.Context, active bool) ([]ProductDTO, error) {
	products, err := s.repo.SearchByStatus(ctx, active)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching products by status")
	}
	return fromModels(products), nil
}

func (s *service) SearchByNameAndStatus(ctx context.Context, fragment string, active bool) ([]ProductDTO, error) {
	products, err := s.repo.SearchByNameAndStatus(ctx, fragment, active)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching products by name and status")
	}
	return fromModels(products), nil
}

// AdvancedSearch dispatches on the filters that were actually supplied: both
// narrow by name and category, one narrows by that filter alone, none lists
// the whole catalog.
func (s *service) AdvancedSearch(ctx context.Context, nombre *string, categoriaID *uuid.UUID) ([]ProductDTO, error) {
	switch {
	case nombre != nil && categoriaID != nil:
		products, err := s.repo.SearchByNameAndCategory(ctx, *nombre, *categoriaID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "advanced product search")
		}
		return fromModels(products), nil
	case nombre != nil:
		return s.SearchByName(ctx, *nombre)
	case categoriaID != nil:
		return s.SearchByCategory(ctx, *categoriaID)
	default:
		return s.List(ctx)
	}
}

func (s *service) loadProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "producto no encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	return product, nil
}

func (s *service) ensureCategory(ctx context.Context, categoriaID *uuid.UUID) error {
	if categoriaID == nil {
		return nil
	}
	if _, err := s.categories.FindByID(ctx, *categoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "categoría no encontrada")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading category")
	}
	return nil
}
