// Package bootstrap seeds the initial superuser account at startup so
// a fresh deployment has an admin to log in with.
package bootstrap

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/relutech/asset-management/internal/api/metrics"
	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
	"github.com/relutech/asset-management/internal/infrastructure/config"
)

// Superuser creates the configured superuser account when none exists
// yet. A superuser is always an admin. No-op when bootstrap
// credentials are absent or a superuser is already present.
func Superuser(ctx context.Context, accounts ports.AccountRepository, cfg config.BootstrapConfig, log zerolog.Logger) error {
	if cfg.AdminUsername == "" || cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	exists, err := accounts.HasSuperuser(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	created, err := accounts.Create(ctx, &domain.Account{
		Email:        cfg.AdminEmail,
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		IsActive:     true,
		IsAdmin:      true,
		IsSuperuser:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if err == domain.ErrAccountExists {
			// another replica won the race
			return nil
		}
		return err
	}

	metrics.AccountsCreatedTotal.WithLabelValues("bootstrap").Inc()
	log.Info().Str("username", created.Username).Msg("superuser bootstrapped")
	return nil
}
