package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	usersvc "github.com/carriedev/hazellab-backend/internal/users"
	"github.com/carriedev/hazellab-backend/pkg/enums"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
)

type stubUserService struct {
	createFn       func(ctx context.Context, input usersvc.CreateUserInput) (*usersvc.UserDTO, error)
	getFn          func(ctx context.Context, id uuid.UUID) (*usersvc.UserDTO, error)
	listFn         func(ctx context.Context) ([]usersvc.UserDTO, error)
	updateFn       func(ctx context.Context, id uuid.UUID, input usersvc.UpdateUserInput) (*usersvc.UserDTO, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	findByEmailFn  func(ctx context.Context, email string) (*usersvc.UserDTO, error)
	searchRoleFn   func(ctx context.Context, role enums.UserRole) ([]usersvc.UserDTO, error)
	searchStatusFn func(ctx context.Context, status enums.UserStatus) ([]usersvc.UserDTO, error)
}

func (s stubUserService) Create(ctx context.Context, input usersvc.CreateUserInput) (*usersvc.UserDTO, error) {
	return s.createFn(ctx, input)
}

func (s stubUserService) Get(ctx context.Context, id uuid.UUID) (*usersvc.UserDTO, error) {
	return s.getFn(ctx, id)
}

func (s stubUserService) List(ctx context.Context) ([]usersvc.UserDTO, error) {
	return s.listFn(ctx)
}

func (s stubUserService) Update(ctx context.Context, id uuid.UUID, input usersvc.UpdateUserInput) (*usersvc.UserDTO, error) {
	return s.updateFn(ctx, id, input)
}

func (s stubUserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s stubUserService) FindByEmail(ctx context.Context, email string) (*usersvc.UserDTO, error) {
	return s.findByEmailFn(ctx, email)
}

func (s stubUserService) SearchByUsername(ctx context.Context, fragment string) ([]usersvc.UserDTO, error) {
	return nil, nil
}

func (s stubUserService) SearchByRole(ctx context.Context, role enums.UserRole) ([]usersvc.UserDTO, error) {
	return s.searchRoleFn(ctx, role)
}

func (s stubUserService) SearchByStatus(ctx context.Context, status enums.UserStatus) ([]usersvc.UserDTO, error) {
	return s.searchStatusFn(ctx, status)
}

func TestCreateUserForwardsOptionalFields(t *testing.T) {
	var captured usersvc.CreateUserInput
	svc := stubUserService{
		createFn: func(ctx context.Context, input usersvc.CreateUserInput) (*usersvc.UserDTO, error) {
			captured = input
			return &usersvc.UserDTO{ID: uuid.New(), Email: input.Email}, nil
		},
	}

	body := []byte(`{"username":"Hazel","email":"hazel@duoc.cl","rut":"11.111.111-1","password":"Secret#1","role":"vendedor","region":"Metropolitana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", bytes.NewReader(body))
	resp := httptest.NewRecorder()

	CreateUser(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.Role == nil || *captured.Role != enums.UserRoleVendedor {
		t.Fatalf("expected role forwarded, got %v", captured.Role)
	}
	if captured.Status != nil {
		t.Fatalf("expected status left nil, got %v", captured.Status)
	}
	if captured.Region == nil || *captured.Region != "Metropolitana" {
		t.Fatalf("expected region forwarded, got %v", captured.Region)
	}
}

func TestCreateUserWithoutUsername(t *testing.T) {
	var captured usersvc.CreateUserInput
	svc := stubUserService{
		createFn: func(ctx context.Context, input usersvc.CreateUserInput) (*usersvc.UserDTO, error) {
			captured = input
			return &usersvc.UserDTO{ID: uuid.New(), Email: input.Email}, nil
		},
	}

	body := []byte(`{"rut":"12345678-9","email":"a@duoc.cl","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", bytes.NewReader(body))
	resp := httptest.NewRecorder()

	CreateUser(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.Username != "" {
		t.Fatalf("expected empty username, got %q", captured.Username)
	}
	if captured.Rut != "12345678-9" {
		t.Fatalf("expected rut forwarded, got %q", captured.Rut)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := stubUserService{
		createFn: func(ctx context.Context, input usersvc.CreateUserInput) (*usersvc.UserDTO, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	body := []byte(`{"username":"Hazel","email":"hazel@duoc.cl","rut":"11.111.111-1","password":"Secret#1","role":"gerente"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", bytes.NewReader(body))
	resp := httptest.NewRecorder()

	CreateUser(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetUserByEmail(t *testing.T) {
	svc := stubUserService{
		findByEmailFn: func(ctx context.Context, email string) (*usersvc.UserDTO, error) {
			if email != "hazel@duoc.cl" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &usersvc.UserDTO{ID: uuid.New(), Email: email}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios/email/hazel@duoc.cl", nil)
	req = withURLParam(req, "email", "hazel@duoc.cl")
	resp := httptest.NewRecorder()

	GetUserByEmail(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var user usersvc.UserDTO
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if user.Email != "hazel@duoc.cl" {
		t.Fatalf("unexpected email: %s", user.Email)
	}
}

func TestUpdateUserRejectsInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/usuarios/not-a-uuid", nil)
	req = withURLParam(req, "id", "not-a-uuid")
	resp := httptest.NewRecorder()

	UpdateUser(stubUserService{}, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := stubUserService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return pkgerrors.New(pkgerrors.CodeNotFound, "usuario no encontrado")
		},
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/api/usuarios/"+id, nil)
	req = withURLParam(req, "id", id)
	resp := httptest.NewRecorder()

	DeleteUser(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestSearchUsersByRoleParsesPath(t *testing.T) {
	svc := stubUserService{
		searchRoleFn: func(ctx context.Context, role enums.UserRole) ([]usersvc.UserDTO, error) {
			if role != enums.UserRoleAdmin {
				t.Fatalf("unexpected role: %s", role)
			}
			return []usersvc.UserDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios/buscar/rol/admin", nil)
	req = withURLParam(req, "role", "admin")
	resp := httptest.NewRecorder()

	SearchUsersByRole(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestSearchUsersByStatusRejectsUnknown(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios/buscar/estado/congelado", nil)
	req = withURLParam(req, "status", "congelado")
	resp := httptest.NewRecorder()

	SearchUsersByStatus(stubUserService{}, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
