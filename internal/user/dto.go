package user

import (
	"time"

	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/auth"
	"github.com/ceac-fct/placement-management/internal/core/common/validation"
)

type CreateUserDTO struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido"`
	Role     auth.Role `json:"role"`
}

type UpdateUserDTO struct {
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido"`
	Role     auth.Role `json:"role"`
	IsActive bool      `json:"isActive"`
}

// UserView is the listing shape returned to administrators. Role is the
// effective role after resolution, not the raw stored value.
type UserView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Nombre      string    `json:"nombre"`
	Apellido    string    `json:"apellido"`
	Role        auth.Role `json:"role"`
	RoleDisplay string    `json:"roleDisplay"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UsersResponse struct {
	Users []UserView `json:"users"`
}

func NewUserView(u *User) UserView {
	role := u.EffectiveRole()
	return UserView{
		ID:          u.ID,
		Email:       u.Email,
		Nombre:      u.Nombre,
		Apellido:    u.Apellido,
		Role:        role,
		RoleDisplay: role.DisplayName(),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

func (d CreateUserDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required().Email()
	v.Field("password", d.Password).Required().MinLength(8)
	v.Field("nombre", d.Nombre).Required().MaxLength(100)
	if err := v.Validate(); err != nil {
		return err
	}
	if !d.Role.IsValid() {
		return internal.NewValidationError("role must be admin, coordinador or registrador", internal.ErrCodeInvalidRole)
	}
	return nil
}

func (d UpdateUserDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("nombre", d.Nombre).Required().MaxLength(100)
	if err := v.Validate(); err != nil {
		return err
	}
	if !d.Role.IsValid() {
		return internal.NewValidationError("role must be admin, coordinador or registrador", internal.ErrCodeInvalidRole)
	}
	return nil
}
