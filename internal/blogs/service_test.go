package blogs

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/carriedev/hazellab-backend/pkg/db/models"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Blog{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestBlogCRUD(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, BlogInput{
		Titulo:      "Novedades de laboratorio",
		Descripcion: "resumen",
		Contenido:   "contenido largo",
		Imagen:      "https://cdn.example.com/blog.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Titulo != "Novedades de laboratorio" {
		t.Fatalf("unexpected titulo %q", got.Titulo)
	}

	updated, err := svc.Update(ctx, created.ID, BlogInput{
		Titulo:    "Actualizado",
		Contenido: "nuevo contenido",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Titulo != "Actualizado" || updated.Descripcion != "" {
		t.Fatalf("expected full replacement, got %+v", updated)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one blog, got %d", len(all))
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); pkgerrors.As(err) == nil ||
		pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestBlogValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, BlogInput{Titulo: " "}); pkgerrors.As(err) == nil ||
		pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Get(ctx, uuid.New()); pkgerrors.As(err) == nil ||
		pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
