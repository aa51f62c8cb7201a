package request

import (
	"hotel-backoffice/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=viewer operator admin"`
}

type ListUsersQuery struct {
	Role  string `form:"role" binding:"omitempty,oneof=viewer operator admin"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}
