package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/relutech/asset-management/internal/api/metrics"
	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

// AssetService manages hardware assignments. All operations are
// admin-only; the developer lookup (404) precedes field validation
// (400), and the developer lookup precedes the asset lookup on remove.
type AssetService struct {
	accounts ports.AccountRepository
	assets   ports.AssetRepository
	logger   zerolog.Logger
}

func NewAssetService(accounts ports.AccountRepository, assets ports.AssetRepository, logger zerolog.Logger) *AssetService {
	return &AssetService{accounts: accounts, assets: assets, logger: logger}
}

func (s *AssetService) List(ctx context.Context, identity *domain.Identity, developerID string) ([]domain.Asset, error) {
	if err := domain.Authorize(identity, domain.OpListAssets).Err(); err != nil {
		return nil, err
	}
	if developerID == "" {
		return s.assets.ListAll(ctx)
	}
	developer, err := s.accounts.FindDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}
	return s.assets.ListByDeveloper(ctx, developer.ID)
}

func (s *AssetService) Assign(ctx context.Context, identity *domain.Identity, developerID string, input ports.AssignAssetInput) ([]domain.Asset, error) {
	if err := domain.Authorize(identity, domain.OpAssignAsset).Err(); err != nil {
		return nil, err
	}

	developer, err := s.accounts.FindDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}

	if err := checkStruct(input); err != nil {
		return nil, err
	}

	asset := &domain.Asset{
		Brand:       input.Brand,
		Model:       input.Model,
		Type:        domain.AssetType(input.Type),
		DeveloperID: developer.ID,
	}
	if _, err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}

	metrics.AssetsAssignedTotal.WithLabelValues(input.Type).Inc()
	s.logger.Info().
		Str("developer_id", developer.ID).
		Str("type", input.Type).
		Str("brand", input.Brand).
		Msg("asset assigned")

	return s.assets.ListByDeveloper(ctx, developer.ID)
}

func (s *AssetService) Remove(ctx context.Context, identity *domain.Identity, developerID, assetID string) ([]domain.Asset, error) {
	if err := domain.Authorize(identity, domain.OpRemoveAsset).Err(); err != nil {
		return nil, err
	}

	developer, err := s.accounts.FindDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}

	asset, err := s.assets.FindForDeveloper(ctx, developer.ID, assetID)
	if err != nil {
		return nil, err
	}

	if err := s.assets.Delete(ctx, asset.ID); err != nil {
		return nil, err
	}

	metrics.AssetsRemovedTotal.Inc()
	s.logger.Info().Str("developer_id", developer.ID).Str("asset_id", asset.ID).Msg("asset removed")

	return s.assets.ListByDeveloper(ctx, developer.ID)
}
