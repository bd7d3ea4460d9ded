package blogs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carriedev/hazellab-backend/pkg/db/models"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
)

// Service exposes blog management operations.
type Service interface {
	Create(ctx context.Context, input BlogInput) (*BlogDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*BlogDTO, error)
	List(ctx context.Context) ([]BlogDTO, error)
	Update(ctx context.Context, id uuid.UUID, input BlogInput) (*BlogDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BlogInput holds the payload to create or replace a blog.
type BlogInput struct {
	Titulo      string
	Descripcion string
	Contenido   string
	Imagen      string
}

type service struct {
	repo *Repository
}

// NewService constructs the blog service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("blogs repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input BlogInput) (*BlogDTO, error) {
	if strings.TrimSpace(input.Titulo) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "el título es obligatorio")
	}

	created, err := s.repo.Create(ctx, &models.Blog{
		Titulo:      input.Titulo,
		Descripcion: input.Descripcion,
		Contenido:   input.Contenido,
		Imagen:      input.Imagen,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating blog")
	}
	return FromModel(created), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*BlogDTO, error) {
	blog, err := s.loadBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(blog), nil
}

func (s *service) List(ctx context.Context) ([]BlogDTO, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing blogs")
	}
	return fromModels(blogs), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input BlogInput) (*BlogDTO, error) {
	blog, err := s.loadBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Titulo) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "el título es obligatorio")
	}

	blog.Titulo = input.Titulo
	blog.Descripcion = input.Descripcion
	blog.Contenido = input.Contenido
	blog.Imagen = input.Imagen

	if err := s.repo.Save(ctx, blog); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating blog")
	}
	return FromModel(blog), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadBlog(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting blog")
	}
	return nil
}

func (s *service) loadBlog(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "blog no encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading blog")
	}
	return blog, nil
}
