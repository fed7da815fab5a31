package entity

import "time"

// Tipos de usuario (tipo_usuario).
const (
	RoleOperator = 1
	RoleAdmin    = 2
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt
	Role         int
	CreatedAt    time.Time
}

// IsAdmin indica si el usuario administra el catálogo.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// ValidRole indica si role es un tipo_usuario conocido.
func ValidRole(role int) bool { return role == RoleOperator || role == RoleAdmin }
