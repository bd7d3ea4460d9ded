package users

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	baserepo "github.com/carriedev/hazellab-backend/internal/repo"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
	"github.com/carriedev/hazellab-backend/pkg/enums"
)

// Repository exposes user-related persistence operations.
type Repository struct {
	baserepo.Base
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: baserepo.NewBase(db)}
}

// Create inserts a new user and returns the persisted model.
func (r *Repository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID loads a user by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves the user matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every stored user.
func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := r.DB(ctx).Order("created_at").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save persists the mutated user model.
func (r *Repository) Save(ctx context.Context, user *models.User) error {
	return r.DB(ctx).Save(user).Error
}

// Delete removes the user row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.User{}, "id = ?", id).Error
}

// SearchByUsername matches usernames by case-insensitive substring.
func (r *Repository) SearchByUsername(ctx context.Context, fragment string) ([]models.User, error) {
	var out []models.User
	pattern := "%" + strings.ToLower(fragment) + "%"
	if err := r.DB(ctx).
		Where("LOWER(username) LIKE ?", pattern).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByRole returns users holding the exact role.
func (r *Repository) SearchByRole(ctx context.Context, role enums.UserRole) ([]models.User, error) {
	var out []models.User
	if err := r.DB(ctx).Where("role = ?", role).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByStatus returns users with the exact status.
func (r *Repository) SearchByStatus(ctx context.Context, status enums.UserStatus) ([]models.User, error) {
	var out []models.User
	if err := r.DB(ctx).Where("status = ?", status).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
