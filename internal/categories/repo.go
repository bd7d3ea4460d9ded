package categories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	baserepo "github.com/carriedev/hazellab-backend/internal/repo"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
)

// Repository exposes category persistence operations.
type Repository struct {
	baserepo.Base
}

// NewRepository constructs a categories repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: baserepo.NewBase(db)}
}

// Create inserts a new category.
func (r *Repository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.DB(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// FindByID loads a category by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.DB(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns every stored category.
func (r *Repository) List(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := r.DB(ctx).Order("nombre").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save persists the mutated category model.
func (r *Repository) Save(ctx context.Context, category *models.Category) error {
	return r.DB(ctx).Save(category).Error
}

// Delete removes the category row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.Category{}, "id = ?", id).Error
}
