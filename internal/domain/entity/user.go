package entity

import "time"

// Role es el conjunto cerrado de roles del sistema. Cualquier valor fuera de
// estas constantes se trata como rol desconocido y nunca pasa el guard.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleUser       Role = "USER"
	RoleEmployee   Role = "EMPLOYEE"
)

// ParseRole convierte un string (claim JWT, payload) en Role.
// Devuelve ok=false para valores desconocidos en vez de dejarlos pasar.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin:
		return RoleSuperAdmin, true
	case RoleUser:
		return RoleUser, true
	case RoleEmployee:
		return RoleEmployee, true
	default:
		return "", false
	}
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }

// User representa una identidad del sistema (cuenta con rol).
// Las companies que posee cuelgan de User.ID (Company.UserID).
type User struct {
	ID           string
	Name         string
	Email        string    // único a nivel global
	PasswordHash string    // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
