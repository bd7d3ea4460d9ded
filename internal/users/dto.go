package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/carriedev/hazellab-backend/pkg/db/models"
	"github.com/carriedev/hazellab-backend/pkg/enums"
)

// UserDTO is the transport shape for account endpoints. The password field
// carries the stored hash, never the plaintext.
type UserDTO struct {
	ID              uuid.UUID        `json:"id"`
	Username        string           `json:"username"`
	Apellidos       string           `json:"apellidos"`
	Email           string           `json:"email"`
	Rut             string           `json:"rut"`
	Password        string           `json:"password,omitempty"`
	Role            enums.UserRole   `json:"role"`
	Status          enums.UserStatus `json:"status"`
	Region          *string          `json:"region,omitempty"`
	Comuna          *string          `json:"comuna,omitempty"`
	FechaNacimiento *string          `json:"fechaNacimiento,omitempty"`
	Direccion       string           `json:"direccion"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// FromModel maps the persisted user onto the transport DTO.
func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		Apellidos:       u.Apellidos,
		Email:           u.Email,
		Rut:             u.Rut,
		Password:        u.PasswordHash,
		Role:            u.Role,
		Status:          u.Status,
		Region:          u.Region,
		Comuna:          u.Comuna,
		FechaNacimiento: u.FechaNacimiento,
		Direccion:       u.Direccion,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// Sanitized returns a copy with the password hash removed.
func (d *UserDTO) Sanitized() *UserDTO {
	if d == nil {
		return nil
	}
	clean := *d
	clean.Password = ""
	return &clean
}

func fromModels(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *FromModel(&users[i]))
	}
	return out
}
