package response

import (
	"time"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) (*UserResponse, error) {
	var out UserResponse
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromUserViews(vs []*queries.AuthorizedUserView) ([]UserResponse, error) {
	out := make([]UserResponse, 0, len(vs))
	if err := copyInto(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}
