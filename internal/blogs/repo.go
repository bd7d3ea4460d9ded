package blogs

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	baserepo "github.com/carriedev/hazellab-backend/internal/repo"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
)

// Repository exposes blog persistence operations.
type Repository struct {
	baserepo.Base
}

// NewRepository constructs a blogs repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: baserepo.NewBase(db)}
}

// Create inserts a new blog.
func (r *Repository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if err := r.DB(ctx).Create(blog).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

// FindByID loads a blog by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	if err := r.DB(ctx).First(&blog, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// List returns every stored blog, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Blog, error) {
	var out []models.Blog
	if err := r.DB(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save persists the mutated blog model.
func (r *Repository) Save(ctx context.Context, blog *models.Blog) error {
	return r.DB(ctx).Save(blog).Error
}

// Delete removes the blog row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.Blog{}, "id = ?", id).Error
}
