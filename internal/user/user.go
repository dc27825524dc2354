package user

import (
	"time"

	"github.com/ceac-fct/placement-management/internal/auth"
	"github.com/google/uuid"
)

// User is an account row as managed by administrators. The stored role is
// kept as written; resolution to an effective role happens on read.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive" gorm:"column:is_active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// EffectiveRole applies the same resolution the auth middleware uses, so
// the admin listing shows accounts with the role they actually operate with.
func (u *User) EffectiveRole() auth.Role {
	return auth.ResolveRole(u.Role)
}

func NewUser(dto CreateUserDTO, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.NewString(),
		Email:        dto.Email,
		Nombre:       dto.Nombre,
		Apellido:     dto.Apellido,
		PasswordHash: passwordHash,
		Role:         string(dto.Role),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
