package enums

import "fmt"

// UserStatus gates whether an account may log in.
type UserStatus string

const (
	UserStatusActivo   UserStatus = "activo"
	UserStatusInactivo UserStatus = "inactivo"
)

var validUserStatuses = []UserStatus{
	UserStatusActivo,
	UserStatusInactivo,
}

// String implements fmt.Stringer.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known UserStatus.
func (s UserStatus) IsValid() bool {
	for _, candidate := range validUserStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsActive reports whether the account may log in.
func (s UserStatus) IsActive() bool {
	return s == UserStatusActivo
}

// ParseUserStatus converts raw input into a UserStatus.
func ParseUserStatus(value string) (UserStatus, error) {
	for _, candidate := range validUserStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user status %q", value)
}
