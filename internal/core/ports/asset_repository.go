package ports

import (
	"context"

	"github.com/relutech/asset-management/internal/core/domain"
)

// AssetRepository defines the persistence contract for hardware assets.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	ListAll(ctx context.Context) ([]domain.Asset, error)
	ListByDeveloper(ctx context.Context, developerID string) ([]domain.Asset, error)
	// FindForDeveloper resolves an asset only when it belongs to the
	// given developer, or domain.ErrAssetNotFound.
	FindForDeveloper(ctx context.Context, developerID, assetID string) (*domain.Asset, error)
	Delete(ctx context.Context, id string) error
	// DeleteByDeveloper removes every asset owned by the developer.
	DeleteByDeveloper(ctx context.Context, developerID string) error
}
