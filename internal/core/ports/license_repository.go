package ports

import (
	"context"

	"github.com/relutech/asset-management/internal/core/domain"
)

// LicenseRepository defines the persistence contract for software licenses.
type LicenseRepository interface {
	Create(ctx context.Context, license *domain.License) (*domain.License, error)
	ListAll(ctx context.Context) ([]domain.License, error)
	ListByDeveloper(ctx context.Context, developerID string) ([]domain.License, error)
	// FindForDeveloper resolves a license only when it belongs to the
	// given developer, or domain.ErrLicenseNotFound.
	FindForDeveloper(ctx context.Context, developerID, licenseID string) (*domain.License, error)
	Delete(ctx context.Context, id string) error
	// DeleteByDeveloper removes every license owned by the developer.
	DeleteByDeveloper(ctx context.Context, developerID string) error
}
