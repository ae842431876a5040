package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/relutech/asset-management/internal/api/metrics"
	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

// DeveloperService manages developer accounts. Authorization is
// checked before any lookup or validation; the precedence is
// authorization → not-found → field validation.
type DeveloperService struct {
	accounts ports.AccountRepository
	assets   ports.AssetRepository
	licenses ports.LicenseRepository
	logger   zerolog.Logger
}

func NewDeveloperService(accounts ports.AccountRepository, assets ports.AssetRepository, licenses ports.LicenseRepository, logger zerolog.Logger) *DeveloperService {
	return &DeveloperService{
		accounts: accounts,
		assets:   assets,
		licenses: licenses,
		logger:   logger,
	}
}

// Overview returns every non-admin account twice: once with its assets
// and once with its licenses. The double roster mirrors the dashboard
// the admin UI renders.
func (s *DeveloperService) Overview(ctx context.Context, identity *domain.Identity) (*ports.DeveloperOverview, error) {
	if err := domain.Authorize(identity, domain.OpListDevelopers).Err(); err != nil {
		return nil, err
	}

	developers, err := s.accounts.ListDevelopers(ctx)
	if err != nil {
		return nil, err
	}

	overview := &ports.DeveloperOverview{
		Assets:   make([]ports.DeveloperAssets, 0, len(developers)),
		Licenses: make([]ports.DeveloperLicenses, 0, len(developers)),
	}
	for _, dev := range developers {
		devAssets, err := s.assets.ListByDeveloper(ctx, dev.ID)
		if err != nil {
			return nil, err
		}
		devLicenses, err := s.licenses.ListByDeveloper(ctx, dev.ID)
		if err != nil {
			return nil, err
		}
		overview.Assets = append(overview.Assets, ports.DeveloperAssets{Developer: dev, Assets: devAssets})
		overview.Licenses = append(overview.Licenses, ports.DeveloperLicenses{Developer: dev, Licenses: devLicenses})
	}
	return overview, nil
}

func (s *DeveloperService) Create(ctx context.Context, identity *domain.Identity, input ports.CreateDeveloperInput) ([]domain.Account, error) {
	if err := domain.Authorize(identity, domain.OpCreateDeveloper).Err(); err != nil {
		return nil, err
	}

	if err := validateNewAccount(ctx, s.accounts, input.Username, input.Email, input.Password1, input.Password2); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	// always a developer, regardless of what the request claimed
	account := &domain.Account{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
		IsActive:     true,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return nil, domain.ValidationError{"username": {"An account with that username or email already exists."}}
		}
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues("admin").Inc()
	s.logger.Info().Str("username", created.Username).Str("created_by", identity.Username).Msg("developer created")

	return s.accounts.ListDevelopers(ctx)
}

func (s *DeveloperService) Update(ctx context.Context, identity *domain.Identity, id string, input ports.UpdateDeveloperInput) ([]domain.Account, error) {
	if err := domain.Authorize(identity, domain.OpUpdateDeveloper).Err(); err != nil {
		return nil, err
	}

	developer, err := s.accounts.FindDeveloper(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkStruct(input); err != nil {
		return nil, err
	}

	if input.Username != nil {
		developer.Username = *input.Username
	}
	if input.Email != nil {
		developer.Email = *input.Email
	}
	if input.IsActive != nil {
		developer.IsActive = *input.IsActive
	}
	if input.IsAdmin != nil {
		developer.IsAdmin = *input.IsAdmin
	}
	developer.UpdatedAt = time.Now().UTC()

	if _, err := s.accounts.Update(ctx, developer); err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return nil, domain.ValidationError{"username": {"An account with that username or email already exists."}}
		}
		return nil, err
	}

	s.logger.Info().Str("developer_id", id).Str("updated_by", identity.Username).Msg("developer updated")

	return s.accounts.ListDevelopers(ctx)
}

// Delete removes the developer account and cascades to every asset and
// license it owns. The store has no foreign keys, so the cascade is
// orchestrated here: equipment first, account last.
func (s *DeveloperService) Delete(ctx context.Context, identity *domain.Identity, id string) error {
	if err := domain.Authorize(identity, domain.OpDeleteDeveloper).Err(); err != nil {
		return err
	}

	developer, err := s.accounts.FindDeveloper(ctx, id)
	if err != nil {
		return err
	}

	if err := s.assets.DeleteByDeveloper(ctx, developer.ID); err != nil {
		return err
	}
	if err := s.licenses.DeleteByDeveloper(ctx, developer.ID); err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, developer.ID); err != nil {
		return err
	}

	s.logger.Info().Str("developer_id", id).Str("deleted_by", identity.Username).Msg("developer deleted")
	return nil
}

// Dashboard assembles the caller's own view: profile plus assigned
// equipment, and for admins the developer roster as well.
func (s *DeveloperService) Dashboard(ctx context.Context, identity *domain.Identity) (*ports.DashboardView, error) {
	if err := domain.Authorize(identity, domain.OpViewDashboard).Err(); err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, identity.AccountID)
	if err != nil {
		return nil, err
	}

	ownAssets, err := s.assets.ListByDeveloper(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	ownLicenses, err := s.licenses.ListByDeveloper(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	view := &ports.DashboardView{
		Account:  *account,
		Assets:   ownAssets,
		Licenses: ownLicenses,
	}

	if identity.IsAdmin {
		roster, err := s.accounts.ListDevelopers(ctx)
		if err != nil {
			return nil, err
		}
		view.Developers = roster
	}

	return view, nil
}
