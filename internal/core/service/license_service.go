package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/relutech/asset-management/internal/api/metrics"
	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

// LicenseService mirrors AssetService for software licenses.
type LicenseService struct {
	accounts ports.AccountRepository
	licenses ports.LicenseRepository
	logger   zerolog.Logger
}

func NewLicenseService(accounts ports.AccountRepository, licenses ports.LicenseRepository, logger zerolog.Logger) *LicenseService {
	return &LicenseService{accounts: accounts, licenses: licenses, logger: logger}
}

func (s *LicenseService) List(ctx context.Context, identity *domain.Identity, developerID string) ([]domain.License, error) {
	if err := domain.Authorize(identity, domain.OpListLicenses).Err(); err != nil {
		return nil, err
	}
	if developerID == "" {
		return s.licenses.ListAll(ctx)
	}
	developer, err := s.accounts.FindDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}
	return s.licenses.ListByDeveloper(ctx, developer.ID)
}

func (s *LicenseService) Assign(ctx context.Context, identity *domain.Identity, developerID string, input ports.AssignLicenseInput) ([]domain.License, error) {
	if err := domain.Authorize(identity, domain.OpAssignLicense).Err(); err != nil {
		return nil, err
	}

	developer, err := s.accounts.FindDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}

	if err := checkStruct(input); err != nil {
		return nil, err
	}

	license := &domain.License{
		Software:    input.Software,
		DeveloperID: developer.ID,
	}
	if _, err := s.licenses.Create(ctx, license); err != nil {
		return nil, err
	}

	metrics.LicensesAssignedTotal.Inc()
	s.logger.Info().Str("developer_id", developer.ID).Str("software", input.Software).Msg("license assigned")

	return s.licenses.ListByDeveloper(ctx, developer.ID)
}

func (s *LicenseService) Remove(ctx context.Context, identity *domain.Identity, developerID, licenseID string) ([]domain.License, error) {
	if err := domain.Authorize(identity, domain.OpRemoveLicense).Err(); err != nil {
		return nil, err
	}

	developer, err := s.accounts.FindDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}

	license, err := s.licenses.FindForDeveloper(ctx, developer.ID, licenseID)
	if err != nil {
		return nil, err
	}

	if err := s.licenses.Delete(ctx, license.ID); err != nil {
		return nil, err
	}

	metrics.LicensesRemovedTotal.Inc()
	s.logger.Info().Str("developer_id", developer.ID).Str("license_id", license.ID).Msg("license removed")

	return s.licenses.ListByDeveloper(ctx, developer.ID)
}
