package ports

import (
	"context"

	"github.com/relutech/asset-management/internal/core/domain"
)

// AssignAssetInput carries the fields of a new hardware assignment.
type AssignAssetInput struct {
	Brand string `validate:"required,max=50"`
	Model string `validate:"required,max=50"`
	Type  string `validate:"required,oneof=laptop keyboard mouse headset monitor"`
}

// AssetService defines asset assignment operations. The caller
// identity is passed explicitly; all operations are admin-only.
type AssetService interface {
	// List returns one developer's assets when developerID is
	// non-empty, otherwise every asset in the system.
	List(ctx context.Context, identity *domain.Identity, developerID string) ([]domain.Asset, error)
	// Assign creates an asset bound to the developer and returns the
	// developer's updated asset list.
	Assign(ctx context.Context, identity *domain.Identity, developerID string, input AssignAssetInput) ([]domain.Asset, error)
	// Remove deletes one of the developer's assets and returns the
	// remaining list.
	Remove(ctx context.Context, identity *domain.Identity, developerID, assetID string) ([]domain.Asset, error)
}
