package ports

import (
	"context"
	"time"

	"github.com/relutech/asset-management/internal/core/domain"
)

// AccountRepository defines the persistence contract for accounts.
// Uniqueness of email and username is enforced by the store; a
// violation surfaces as domain.ErrAccountExists.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// FindDeveloper resolves id to a non-admin account, or
	// domain.ErrDeveloperNotFound.
	FindDeveloper(ctx context.Context, id string) (*domain.Account, error)
	// ListDevelopers returns all non-admin accounts.
	ListDevelopers(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	HasSuperuser(ctx context.Context) (bool, error)
}
