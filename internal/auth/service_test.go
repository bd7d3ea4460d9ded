package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/carriedev/hazellab-backend/pkg/auth"
	"github.com/carriedev/hazellab-backend/pkg/config"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
	"github.com/carriedev/hazellab-backend/pkg/enums"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
)

type fakeUserRepo struct {
	findByEmail func(ctx context.Context, email string) (*models.User, error)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.findByEmail(ctx, email)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, encodedHash string) (bool, error) {
	return encodedHash == "hashed:"+password, nil
}

func activeUser() *models.User {
	return &models.User{
		ID:           uuid.New(),
		Username:     "admin",
		Email:        "admin@duoc.cl",
		PasswordHash: "hashed:clave123",
		Role:         enums.UserRoleAdmin,
		Status:       enums.UserStatusActivo,
	}
}

func newTestService(t *testing.T, user *models.User) Service {
	t.Helper()
	repo := &fakeUserRepo{
		findByEmail: func(ctx context.Context, email string) (*models.User, error) {
			if user != nil && email == user.Email {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, err := NewService(ServiceParams{
		UserRepo: repo,
		Hasher:   fakeHasher{},
		JWTConfig: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "hazellab",
			ExpirationMinutes: 30,
		},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestLoginSuccessStripsHashAndMintsToken(t *testing.T) {
	user := activeUser()
	svc := newTestService(t, user)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "clave123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if resp.User.Password != "" {
		t.Fatalf("expected password hash stripped from login response")
	}
	if resp.User.ID != user.ID {
		t.Fatalf("expected authenticated user returned")
	}

	claims, err := pkgauth.ParseAccessToken(config.JWTConfig{
		Secret:            "secret",
		Issuer:            "hazellab",
		ExpirationMinutes: 30,
	}, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != enums.UserRoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginUnknownEmailIsNotFound(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nadie@duoc.cl",
		Password: "clave123",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	user := activeUser()
	svc := newTestService(t, user)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "incorrecta",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if typed.Message() != "credenciales inválidas" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestLoginInactiveUser(t *testing.T) {
	user := activeUser()
	user.Status = enums.UserStatusInactivo
	svc := newTestService(t, user)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "clave123",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if typed.Message() != "usuario inactivo" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestLoginChecksPasswordBeforeStatus(t *testing.T) {
	user := activeUser()
	user.Status = enums.UserStatusInactivo
	svc := newTestService(t, user)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "incorrecta",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "credenciales inválidas" {
		t.Fatalf("expected credential failure to win, got %v", err)
	}
}
