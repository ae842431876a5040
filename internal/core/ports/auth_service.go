package ports

import (
	"context"

	"github.com/relutech/asset-management/internal/core/domain"
)

// RegisterInput carries a self-registration request. The two password
// fields must match; the created account is never an admin.
type RegisterInput struct {
	Username  string `validate:"required,max=30"`
	Email     string `validate:"required,email"`
	Password1 string `validate:"required,min=8"`
	Password2 string `validate:"required"`
}

// AuthService implements credential verification and session lifecycle.
type AuthService interface {
	// Login verifies the credential pair and returns a signed session
	// token. Unknown user and wrong password are indistinguishable:
	// both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
	// Logout revokes the session identified by jti.
	Logout(ctx context.Context, jti string) error
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
}
