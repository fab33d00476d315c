// BYH Music Store | 2026
// entity.go

package customer

import (
	"time"
)

const (
	RoleCliente = "cliente"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Role         string    `db:"role"`
	Phone        *string   `db:"phone"`
	Address      *string   `db:"address"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
