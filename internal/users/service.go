package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carriedev/hazellab-backend/pkg/config"
	"github.com/carriedev/hazellab-backend/pkg/db"
	"github.com/carriedev/hazellab-backend/pkg/db/models"
	"github.com/carriedev/hazellab-backend/pkg/enums"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
)

// PasswordHasher abstracts credential hashing so callers can swap
// implementations in tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// Service exposes account management operations.
type Service interface {
	Create(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	List(ctx context.Context) ([]UserDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByEmail(ctx context.Context, email string) (*UserDTO, error)
	SearchByUsername(ctx context.Context, fragment string) ([]UserDTO, error)
	SearchByRole(ctx context.Context, role enums.UserRole) ([]UserDTO, error)
	SearchByStatus(ctx context.Context, status enums.UserStatus) ([]UserDTO, error)
}

// CreateUserInput holds the validated payload to register an account.
type CreateUserInput struct {
	Username        string
	Apellidos       string
	Email           string
	Rut             string
	Password        *string
	Role            *enums.UserRole
	Status          *enums.UserStatus
	Region          *string
	Comuna          *string
	FechaNacimiento *string
	Direccion       *string
}

// UpdateUserInput carries the full replacement state for an account. Email
// and Password are pointers: nil leaves the stored value untouched.
type UpdateUserInput struct {
	Username        string
	Apellidos       string
	Email           *string
	Rut             string
	Password        *string
	Role            enums.UserRole
	Status          enums.UserStatus
	Region          *string
	Comuna          *string
	FechaNacimiento *string
	Direccion       string
}

type service struct {
	repo           *Repository
	hasher         PasswordHasher
	allowedDomains []string
}

// NewService constructs the account service.
func NewService(repo *Repository, hasher PasswordHasher, accountCfg config.AccountConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if hasher == nil {
		return nil, fmt.Errorf("password hasher required")
	}
	if len(accountCfg.AllowedEmailDomains) == 0 {
		return nil, fmt.Errorf("at least one allowed email domain required")
	}
	return &service{
		repo:           repo,
		hasher:         hasher,
		allowedDomains: accountCfg.AllowedEmailDomains,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	if input.Password == nil || *input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "la contraseña es obligatoria")
	}
	if strings.TrimSpace(input.Rut) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "el rut es obligatorio")
	}
	if err := s.validateEmailDomain(input.Email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(*input.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user := &models.User{
		Username:        input.Username,
		Apellidos:       input.Apellidos,
		Email:           input.Email,
		Rut:             input.Rut,
		PasswordHash:    hash,
		Role:            enums.UserRoleCliente,
		Status:          enums.UserStatusActivo,
		Region:          input.Region,
		Comuna:          input.Comuna,
		FechaNacimiento: input.FechaNacimiento,
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if input.Direccion != nil {
		user.Direccion = *input.Direccion
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "el correo ya está registrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating user")
	}
	return FromModel(created), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(user), nil
}

func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing users")
	}
	return fromModels(users), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error) {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.Apellidos = input.Apellidos
	user.Rut = input.Rut
	user.Role = input.Role
	user.Status = input.Status
	user.Region = input.Region
	user.Comuna = input.Comuna
	user.FechaNacimiento = input.FechaNacimiento
	user.Direccion = input.Direccion

	if input.Email != nil {
		if err := s.validateEmailDomain(*input.Email); err != nil {
			return nil, err
		}
		user.Email = *input.Email
	}

	if input.Password != nil && *input.Password != "" {
		matches, verifyErr := s.hasher.Verify(*input.Password, user.PasswordHash)
		if verifyErr != nil || !matches {
			hash, hashErr := s.hasher.Hash(*input.Password)
			if hashErr != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, hashErr, "hashing password")
			}
			user.PasswordHash = hash
		}
	}

	if err := s.repo.Save(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "el correo ya está registrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating user")
	}
	return FromModel(user), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadUser(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting user")
	}
	return nil
}

func (s *service) FindByEmail(ctx context.Context, email string) (*UserDTO, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "usuario no encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding user by email")
	}
	return FromModel(user), nil
}

func (s *service) SearchByUsername(ctx context.Context, fragment string) ([]UserDTO, error) {
	users, err := s.repo.SearchByUsername(ctx, fragment)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching users by username")
	}
	return fromModels(users), nil
}

func (s *service) SearchByRole(ctx context.Context, role enums.UserRole) ([]UserDTO, error) {
	users, err := s.repo.SearchByRole(ctx, role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching users by role")
	}
	return fromModels(users), nil
}

func (s *service) SearchByStatus(ctx context.Context, status enums.UserStatus) ([]UserDTO, error) {
	users, err := s.repo.SearchByStatus(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching users by status")
	}
	return fromModels(users), nil
}

func (s *service) loadUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "usuario no encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	return user, nil
}

func (s *service) validateEmailDomain(email string) error {
	for _, suffix := range s.allowedDomains {
		if strings.HasSuffix(email, suffix) {
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeValidation,
		"correo no permitido, dominios válidos: "+strings.Join(s.allowedDomains, ", "))
}
