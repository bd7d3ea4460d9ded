package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carriedev/hazellab-backend/pkg/db/models"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
)

// Service exposes cart management operations.
type Service interface {
	Create(ctx context.Context, input CreateCartItemInput) (*CartItemDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*CartItemDTO, error)
	List(ctx context.Context) ([]CartItemDTO, error)
	ListByUser(ctx context.Context, usuarioID uuid.UUID) ([]CartItemDTO, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*CartItemDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateCartItemInput holds the payload to add a product to a user's cart.
type CreateCartItemInput struct {
	UsuarioID  uuid.UUID
	ProductoID uuid.UUID
	Quantity   int
}

type userChecker interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type productChecker interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     *Repository
	users    userChecker
	products productChecker
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	Repo     *Repository
	Users    userChecker
	Products productChecker
}

// NewService constructs the cart service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("user checker required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product checker required")
	}
	return &service{
		repo:     params.Repo,
		users:    params.Users,
		products: params.Products,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateCartItemInput) (*CartItemDTO, error) {
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "la cantidad debe ser al menos 1")
	}
	if _, err := s.users.FindByID(ctx, input.UsuarioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "usuario no encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	if _, err := s.products.FindByID(ctx, input.ProductoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "producto no encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}

	created, err := s.repo.Create(ctx, &models.CartItem{
		UsuarioID:  input.UsuarioID,
		ProductoID: input.ProductoID,
		Quantity:   input.Quantity,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating cart item")
	}
	return FromModel(created), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*CartItemDTO, error) {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(item), nil
}

func (s *service) List(ctx context.Context) ([]CartItemDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing cart items")
	}
	return fromModels(items), nil
}

func (s *service) ListByUser(ctx context.Context, usuarioID uuid.UUID) ([]CartItemDTO, error) {
	items, err := s.repo.ListByUser(ctx, usuarioID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing user cart")
	}
	return fromModels(items), nil
}

// UpdateQuantity changes the item's quantity and nothing else: the owner and
// product bindings are immutable once the item exists.
func (s *service) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*CartItemDTO, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "la cantidad debe ser al menos 1")
	}

	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating cart item")
	}
	return FromModel(item), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadItem(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting cart item")
	}
	return nil
}

func (s *service) loadItem(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item de carrito no encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading cart item")
	}
	return item, nil
}
