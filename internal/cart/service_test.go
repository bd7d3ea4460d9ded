package cart

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/carriedev/hazellab-backend/internal/products"
	"github.com/carriedev/hazellab-backend/internal/users"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(conn),
		Users:    users.NewRepository(conn),
		Products: products.NewRepository(conn),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, conn
}

func mustCreateUser(t *testing.T, conn *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Username:     "comprador",
		Email:        fmt.Sprintf("comprador_%s@duoc.cl", uuid.NewString()),
		Rut:          "11.111.111-1",
		PasswordHash: "hash",
	}
	if err := conn.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateProduct(t *testing.T, conn *gorm.DB, name string) *models.Product {
	t.Helper()
	category := &models.Category{Nombre: fmt.Sprintf("cat-%s", uuid.NewString())}
	if err := conn.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	product := &models.Product{
		Name:        name,
		Stock:       10,
		CategoriaID: &category.ID,
	}
	if err := conn.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestCreateValidatesReferences(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	user := mustCreateUser(t, conn)
	product := mustCreateProduct(t, conn, "Etanol")

	if _, err := svc.Create(ctx, CreateCartItemInput{
		UsuarioID:  uuid.New(),
		ProductoID: product.ID,
		Quantity:   1,
	}); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for unknown user, got %v", err)
	}

	if _, err := svc.Create(ctx, CreateCartItemInput{
		UsuarioID:  user.ID,
		ProductoID: uuid.New(),
		Quantity:   1,
	}); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}

	if _, err := svc.Create(ctx, CreateCartItemInput{
		UsuarioID:  user.ID,
		ProductoID: product.ID,
		Quantity:   0,
	}); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}

	created, err := svc.Create(ctx, CreateCartItemInput{
		UsuarioID:  user.ID,
		ProductoID: product.ID,
		Quantity:   2,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Producto == nil || created.Producto.Name != "Etanol" {
		t.Fatalf("expected product preloaded on create, got %+v", created.Producto)
	}
}

func TestUpdateQuantityLeavesBindingsUntouched(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	user := mustCreateUser(t, conn)
	product := mustCreateProduct(t, conn, "Acetona")

	created, err := svc.Create(ctx, CreateCartItemInput{
		UsuarioID:  user.ID,
		ProductoID: product.ID,
		Quantity:   1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateQuantity(ctx, created.ID, 7)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	if updated.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", updated.Quantity)
	}
	if updated.UsuarioID != user.ID || updated.ProductoID != product.ID {
		t.Fatalf("owner/product bindings must not change: %+v", updated)
	}

	if _, err := svc.UpdateQuantity(ctx, created.ID, 0); pkgerrors.As(err) == nil ||
		pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
	if _, err := svc.UpdateQuantity(ctx, uuid.New(), 2); pkgerrors.As(err) == nil ||
		pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListByUserPreloadsProductAndCategory(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	owner := mustCreateUser(t, conn)
	other := mustCreateUser(t, conn)
	product := mustCreateProduct(t, conn, "Guantes")

	for _, u := range []*models.User{owner, other} {
		if _, err := svc.Create(ctx, CreateCartItemInput{
			UsuarioID:  u.ID,
			ProductoID: product.ID,
			Quantity:   1,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	items, err := svc.ListByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected only owner items, got %d", len(items))
	}
	item := items[0]
	if item.Producto == nil || item.Producto.Name != "Guantes" {
		t.Fatalf("expected product eagerly loaded, got %+v", item.Producto)
	}
	if item.Producto.Categoria == nil {
		t.Fatalf("expected product category eagerly loaded")
	}
}

func TestDeleteGuardsExistence(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, uuid.New()); pkgerrors.As(err) == nil ||
		pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	user := mustCreateUser(t, conn)
	product := mustCreateProduct(t, conn, "Pipeta")
	created, err := svc.Create(ctx, CreateCartItemInput{
		UsuarioID:  user.ID,
		ProductoID: product.ID,
		Quantity:   1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); pkgerrors.As(err) == nil ||
		pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
