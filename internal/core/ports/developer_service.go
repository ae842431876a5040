package ports

import (
	"context"

	"github.com/relutech/asset-management/internal/core/domain"
)

// CreateDeveloperInput carries the admin-side developer creation form.
type CreateDeveloperInput struct {
	Username  string `validate:"required,max=30"`
	Email     string `validate:"required,email"`
	Password1 string `validate:"required,min=8"`
	Password2 string `validate:"required"`
}

// UpdateDeveloperInput applies a partial update; nil fields are left
// untouched.
type UpdateDeveloperInput struct {
	Username *string `validate:"omitempty,min=1,max=30"`
	Email    *string `validate:"omitempty,email"`
	IsActive *bool
	IsAdmin  *bool
}

// DeveloperAssets pairs a developer with their hardware.
type DeveloperAssets struct {
	Developer domain.Account
	Assets    []domain.Asset
}

// DeveloperLicenses pairs a developer with their licenses.
type DeveloperLicenses struct {
	Developer domain.Account
	Licenses  []domain.License
}

// DeveloperOverview is the admin roster view: every non-admin account
// with its assets and its licenses, side by side.
type DeveloperOverview struct {
	Assets   []DeveloperAssets
	Licenses []DeveloperLicenses
}

// DashboardView is the per-caller dashboard. Developers is populated
// only for admin callers.
type DashboardView struct {
	Account    domain.Account
	Assets     []domain.Asset
	Licenses   []domain.License
	Developers []domain.Account
}

// DeveloperService defines developer account management. Every method
// takes the caller identity explicitly and consults the authorization
// policy before any lookup.
type DeveloperService interface {
	Overview(ctx context.Context, identity *domain.Identity) (*DeveloperOverview, error)
	// Create returns the full non-admin roster after creating the account.
	Create(ctx context.Context, identity *domain.Identity, input CreateDeveloperInput) ([]domain.Account, error)
	// Update returns the full non-admin roster after applying the update.
	Update(ctx context.Context, identity *domain.Identity, id string, input UpdateDeveloperInput) ([]domain.Account, error)
	// Delete removes the account and cascades to its assets and licenses.
	Delete(ctx context.Context, identity *domain.Identity, id string) error
	Dashboard(ctx context.Context, identity *domain.Identity) (*DashboardView, error)
}
