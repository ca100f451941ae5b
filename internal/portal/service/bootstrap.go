package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/solclone/portal/internal/portal/domain"
	"github.com/solclone/portal/internal/portal/store"
	"github.com/solclone/portal/pkg/cryptox"
	"github.com/solclone/portal/pkg/idx"
	"github.com/solclone/portal/pkg/slogx"
)

// SeedAdmin is one entry of the configured administrator seed list.
type SeedAdmin struct {
	Username string
	Password string
}

// BootstrapService creates the seed administrator accounts at process start.
// The seed list is injected from configuration so test suites can supply a
// fixed or empty set.
type BootstrapService struct {
	Store store.Store
	Seeds []SeedAdmin
}

// Run creates each seeded administrator whose username is not yet present.
// It is idempotent: running twice never duplicates or resets an account.
func (s *BootstrapService) Run(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	for _, seed := range s.Seeds {
		_, err := s.Store.Admins().GetAdminByUsername(ctx, seed.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("failed to look up seed admin %q: %w", seed.Username, err)
		}

		hash, err := cryptox.HashPassword(seed.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %q: %w", seed.Username, err)
		}

		err = s.Store.Admins().CreateAdmin(ctx, domain.Admin{
			ID:           idx.New().String(),
			Username:     seed.Username,
			PasswordHash: hash,
			IsFirstLogin: true,
		})
		if err != nil {
			// Another instance may have won the race; the unique index on
			// username is the arbiter.
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("failed to create seed admin %q: %w", seed.Username, err)
		}

		log.Info("created admin account", slog.String("username", seed.Username))
	}

	return nil
}
