//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backoffice/internal/domain/user"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var fixedNow = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

// LoginPassword is the plain text behind hashes built for login tests.
const LoginPassword = "password123"

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	usr := user.NewUser(email, u.PasswordHash, role, fixedNow)
	if !u.IsActive {
		usr.Deactivate(fixedNow)
	}
	return usr, nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		LastLogin:    pgtype.Timestamptz{},
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: fixedNow, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: fixedNow, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: LoginPassword}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
