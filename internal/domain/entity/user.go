package entity

import "time"

// Roles válidos para User.
const (
	RoleBodeguero = "bodeguero"
	RoleAdmin     = "admin"
	RoleGerente   = "gerente"
)

// User representa un colaborador de la bodega.
type User struct {
	ID           string
	Username     string // único
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         string // bodeguero, admin, gerente
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si el rol es uno de los permitidos.
func ValidRole(role string) bool {
	return role == RoleBodeguero || role == RoleAdmin || role == RoleGerente
}
