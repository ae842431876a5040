package ports

import (
	"context"

	"github.com/relutech/asset-management/internal/core/domain"
)

// AssignLicenseInput carries the fields of a new license assignment.
type AssignLicenseInput struct {
	Software string `validate:"required,max=50"`
}

// LicenseService mirrors AssetService for software licenses.
type LicenseService interface {
	List(ctx context.Context, identity *domain.Identity, developerID string) ([]domain.License, error)
	Assign(ctx context.Context, identity *domain.Identity, developerID string, input AssignLicenseInput) ([]domain.License, error)
	Remove(ctx context.Context, identity *domain.Identity, developerID, licenseID string) ([]domain.License, error)
}
