package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleKasir = "kasir" // cajero; rol por defecto al registrarse
)

// User representa un usuario del sistema (cajero o administrador).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
