package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carriedev/hazellab-backend/pkg/enums"
)

// User represents the canonical identity entity.
type User struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Username        string           `gorm:"column:username;not null"`
	Apellidos       string           `gorm:"column:apellidos;not null;default:''"`
	Email           string           `gorm:"column:email;not null;uniqueIndex"`
	Rut             string           `gorm:"column:rut;not null"`
	PasswordHash    string           `gorm:"column:password_hash;not null"`
	Role            enums.UserRole   `gorm:"column:role;not null;default:'cliente'"`
	Status          enums.UserStatus `gorm:"column:status;not null;default:'activo'"`
	Region          *string          `gorm:"column:region"`
	Comuna          *string          `gorm:"column:comuna"`
	FechaNacimiento *string          `gorm:"column:fecha_nacimiento"`
	Direccion       string           `gorm:"column:direccion;not null;default:''"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
