package products

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	baserepo "github.com/carriedev/hazellab-backend/internal/repo"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
)

// Repository exposes product persistence operations. Reads preload the
// product's category so DTOs can nest it.
type Repository struct {
	baserepo.Base
}

// NewRepository constructs a products repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: baserepo.NewBase(db)}
}

func (r *Repository) query(ctx context.Context) *gorm.DB {
	return r.DB(ctx).Preload("Categoria")
}

// Create inserts a new product.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.DB(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, product.ID)
}

// FindByID loads a product by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.query(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns every stored product.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := r.query(ctx).Order("creation_date").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save persists the mutated product model without touching the preloaded
// category.
func (r *Repository) Save(ctx context.Context, product *models.Product) error {
	return r.DB(ctx).Omit(clause.Associations).Save(product).Error
}

// Delete removes the product row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

// ListFeatured returns products flagged as destacado.
func (r *Repository) ListFeatured(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := r.query(ctx).Where("destacado = ?", true).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListLowStock returns products whose stock is strictly below the threshold.
func (r *Repository) ListLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	var out []models.Product
	if err := r.query(ctx).Where("stock < ?", threshold).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName matches product names by case-insensitive substring.
func (r *Repository) SearchByName(ctx context.Context, fragment string) ([]models.Product, error) {
	var out []models.Product
	pattern := "%" + strings.ToLower(fragment) + "%"
	if err := r.query(ctx).Where("LOWER(name) LIKE ?", pattern).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByCategory returns products belonging to the category.
func (r *Repository) SearchByCategory(ctx context.Context, categoriaID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	if err := r.query(ctx).Where("categoria_id = ?", categoriaID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByStatus returns products with the given active flag.
func (r *Repository) SearchByStatus(ctx context.Context, active bool) ([]models.Product, error) {
	var out []models.Product
	if err := r.query(ctx).Where("active_status = ?", active).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByNameAndCategory intersects the name substring and category filters.
func (r *Repository) SearchByNameAndCategory(ctx context.Context, fragment string, categoriaID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	pattern := "%" + strings.ToLower(fragment) + "%"
	if err := r.query(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Where("categoria_id = ?", categoriaID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByNameAndStatus intersects the name substring and active flag filters.
func (r *Repository) SearchByNameAndStatus(ctx context.Context, fragment string, active bool) ([]models.Product, error) {
	var out []models.Product
	pattern := "%" + strings.ToLower(fragment) + "%"
	if err := r.query(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Where("active_status = ?", active).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
