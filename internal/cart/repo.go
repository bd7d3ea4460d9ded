package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	baserepo "github.com/carriedev/hazellab-backend/internal/repo"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
)

// Repository exposes cart item persistence operations. Reads preload the
// product and its category.
type Repository struct {
	baserepo.Base
}

// NewRepository constructs a cart repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: baserepo.NewBase(db)}
}

func (r *Repository) query(ctx context.Context) *gorm.DB {
	return r.DB(ctx).Preload("Producto").Preload("Producto.Categoria")
}

// Create inserts a new cart item.
func (r *Repository) Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if err := r.DB(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, item.ID)
}

// FindByID loads a cart item by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.query(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every stored cart item.
func (r *Repository) List(ctx context.Context) ([]models.CartItem, error) {
	var out []models.CartItem
	if err := r.query(ctx).Order("created_at").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUser returns the cart items belonging to the given user.
func (r *Repository) ListByUser(ctx context.Context, usuarioID uuid.UUID) ([]models.CartItem, error) {
	var out []models.CartItem
	if err := r.query(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("created_at").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save persists the mutated cart item model without touching the preloaded
// product.
func (r *Repository) Save(ctx context.Context, item *models.CartItem) error {
	return r.DB(ctx).Omit(clause.Associations).Save(item).Error
}

// Delete removes the cart item row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.CartItem{}, "id = ?", id).Error
}
