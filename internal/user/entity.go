// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash *string   `db:"password_hash"`
	Picture      *string   `db:"picture"`
	Role         string    `db:"role"`
	Division     *string   `db:"division"`
	Region       *string   `db:"region"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == core.RoleAdminDirecteur
}

// HasPassword is false for accounts created through the OAuth exchange.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
