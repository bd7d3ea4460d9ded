package controllers

import (
	"net/http"
	"strings"

	"github.com/carriedev/hazellab-backend/api/responses"
	"github.com/carriedev/hazellab-backend/api/validators"
	usersvc "github.com/carriedev/hazellab-backend/internal/users"
	"github.com/carriedev/hazellab-backend/pkg/enums"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
	"github.com/carriedev/hazellab-backend/pkg/logger"
)

// CreateUser registers a new account.
func CreateUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, user)
	}
}

func ListUsers(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, users)
	}
}

func GetUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, user)
	}
}

// GetUserByEmail resolves an account from the email path segment.
func GetUserByEmail(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(validators.PathParam(r, "email"))
		if email == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "el correo es obligatorio"))
			return
		}

		user, err := svc.FindByEmail(r.Context(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, user)
	}
}

func UpdateUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, user)
	}
}

func DeleteUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// SearchUsersByUsername filters accounts by a name fragment.
func SearchUsersByUsername(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fragment := validators.PathParam(r, "username")
		users, err := svc.SearchByUsername(r.Context(), fragment)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, users)
	}
}

func SearchUsersByRole(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := enums.ParseUserRole(validators.PathParam(r, "role"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "rol inválido"))
			return
		}

		users, err := svc.SearchByRole(r.Context(), role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, users)
	}
}

func SearchUsersByStatus(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := enums.ParseUserStatus(validators.PathParam(r, "status"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "estado inválido"))
			return
		}

		users, err := svc.SearchByStatus(r.Context(), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, users)
	}
}

type createUserRequest struct {
	Username        string  `json:"username"`
	Apellidos       string  `json:"apellidos"`
	Email           string  `json:"email" validate:"required,email"`
	Rut             string  `json:"rut" validate:"required"`
	Password        *string `json:"password,omitempty"`
	Role            *string `json:"role,omitempty"`
	Status          *string `json:"status,omitempty"`
	Region          *string `json:"region,omitempty"`
	Comuna          *string `json:"comuna,omitempty"`
	FechaNacimiento *string `json:"fechaNacimiento,omitempty"`
	Direccion       *string `json:"direccion,omitempty"`
}

func (r createUserRequest) toInput() (usersvc.CreateUserInput, error) {
	input := usersvc.CreateUserInput{
		Username:        r.Username,
		Apellidos:       r.Apellidos,
		Email:           r.Email,
		Rut:             r.Rut,
		Password:        r.Password,
		Region:          r.Region,
		Comuna:          r.Comuna,
		FechaNacimiento: r.FechaNacimiento,
		Direccion:       r.Direccion,
	}

	if r.Role != nil {
		role, err := enums.ParseUserRole(*r.Role)
		if err != nil {
			return usersvc.CreateUserInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "rol inválido")
		}
		input.Role = &role
	}
	if r.Status != nil {
		status, err := enums.ParseUserStatus(*r.Status)
		if err != nil {
			return usersvc.CreateUserInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "estado inválido")
		}
		input.Status = &status
	}

	return input, nil
}

type updateUserRequest struct {
	Username        string  `json:"username" validate:"required"`
	Apellidos       string  `json:"apellidos"`
	Email           *string `json:"email,omitempty"`
	Rut             string  `json:"rut" validate:"required"`
	Password        *string `json:"password,omitempty"`
	Role            string  `json:"role" validate:"required"`
	Status          string  `json:"status" validate:"required"`
	Region          *string `json:"region,omitempty"`
	Comuna          *string `json:"comuna,omitempty"`
	FechaNacimiento *string `json:"fechaNacimiento,omitempty"`
	Direccion       string  `json:"direccion"`
}

func (r updateUserRequest) toInput() (usersvc.UpdateUserInput, error) {
	role, err := enums.ParseUserRole(r.Role)
	if err != nil {
		return usersvc.UpdateUserInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "rol inválido")
	}
	status, err := enums.ParseUserStatus(r.Status)
	if err != nil {
		return usersvc.UpdateUserInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "estado inválido")
	}

	return usersvc.UpdateUserInput{
		Username:        r.Username,
		Apellidos:       r.Apellidos,
		Email:           r.Email,
		Rut:             r.Rut,
		Password:        r.Password,
		Role:            role,
		Status:          status,
		Region:          r.Region,
		Comuna:          r.Comuna,
		FechaNacimiento: r.FechaNacimiento,
		Direccion:       r.Direccion,
	}, nil
}
