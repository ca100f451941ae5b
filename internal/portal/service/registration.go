package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/solclone/portal/internal/portal/domain"
	"github.com/solclone/portal/internal/portal/store"
	"github.com/solclone/portal/pkg/idx"
	"github.com/solclone/portal/pkg/slogx"
)

const (
	// referralCodeLength is the number of leading wallet-address characters
	// that form the referral code.
	referralCodeLength = 8
)

// referralPoints is the fixed credit a referrer earns per registration.
var referralPoints = decimal.NewFromInt(100)

var (
	ErrAlreadyRegistered = errors.New("wallet address already registered")
	ErrReferralCodeTaken = errors.New("referral code already taken")
	ErrUserNotFound      = errors.New("user not found")
)

// RegistrationService registers wallet addresses as users, derives referral
// codes, links referrers and credits referral points.
type RegistrationService struct {
	Store store.Store
}

// ReferralCodeFor derives the deterministic referral code for a wallet
// address: a fixed-length uppercase prefix.
func ReferralCodeFor(walletAddress string) string {
	code := walletAddress
	if len(code) > referralCodeLength {
		code = code[:referralCodeLength]
	}
	return strings.ToUpper(code)
}

// Register creates a user for the wallet address. When referredBy resolves to
// an existing referral code the referrer is credited exactly one ledger entry
// of 100 points, source "referral", atomically with the insert. A referredBy
// value that matches no referral code is stored verbatim and the credit is
// silently skipped (logged as a warning). Resolution happens before the
// insert, so a wallet presenting its own derived code earns nothing.
func (s *RegistrationService) Register(
	ctx context.Context,
	walletAddress string,
	referredBy string,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByWallet(ctx, walletAddress); err == nil {
		return domain.Account{}, ErrAlreadyRegistered
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, fmt.Errorf("failed to check wallet: %w", err)
	}

	user := domain.User{
		ID:            idx.New().String(),
		WalletAddress: walletAddress,
		ReferralCode:  ReferralCodeFor(walletAddress),
	}
	if referredBy != "" {
		user.ReferredBy = &referredBy
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// The referrer must already exist when registration starts: resolving
		// before the insert keeps a wallet from referring itself via its own
		// freshly derived code.
		var referrer *domain.User
		if referredBy != "" {
			found, err := tx.Users().GetUserByReferralCode(ctx, referredBy)
			switch {
			case err == nil:
				referrer = &found
			case errors.Is(err, store.ErrNotFound):
				// Stored verbatim without a credit; kept as best-effort
				// behavior, surfaced only in the logs.
				log.Warn("referral code did not resolve, no credit issued",
					slog.String("wallet_address", walletAddress),
					slog.String("referred_by", referredBy),
				)
			default:
				return fmt.Errorf("failed to resolve referral code: %w", err)
			}
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}

		if referrer == nil {
			return nil
		}

		return tx.Ledger().CreateEntry(ctx, domain.LedgerEntry{
			ID:     idx.New().String(),
			UserID: referrer.ID,
			Points: referralPoints,
			Source: domain.PointsSourceReferral,
		})
	})
	if err != nil {
		// Two registrations can race past the existence check; the unique
		// indexes decide the winner. The wallet lookup tells a wallet
		// duplicate apart from a referral-code prefix collision.
		if errors.Is(err, store.ErrAlreadyExists) {
			if _, lookupErr := s.Store.Users().GetUserByWallet(ctx, walletAddress); lookupErr == nil {
				return domain.Account{}, ErrAlreadyRegistered
			}
			return domain.Account{}, ErrReferralCodeTaken
		}
		return domain.Account{}, fmt.Errorf("failed to register user: %w", err)
	}

	return s.AccountByWallet(ctx, walletAddress)
}

// StoreReferralLink is a variant entry point used when a wallet connects
// through a referral link before full registration. Same uniqueness rule and
// credit behavior as Register.
func (s *RegistrationService) StoreReferralLink(
	ctx context.Context,
	walletAddress string,
	referredBy string,
) (domain.Account, error) {
	return s.Register(ctx, walletAddress, referredBy)
}

// AccountByWallet returns the user row plus its points balance.
func (s *RegistrationService) AccountByWallet(ctx context.Context, walletAddress string) (domain.Account, error) {
	user, err := s.Store.Users().GetUserByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrUserNotFound
		}
		return domain.Account{}, fmt.Errorf("failed to load user: %w", err)
	}

	points, err := s.Store.Ledger().TotalForUser(ctx, user.ID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("failed to sum points: %w", err)
	}

	return domain.Account{User: user, Points: points}, nil
}

// ListAccounts returns every registered user ordered by creation time
// ascending, each with its points balance.
func (s *RegistrationService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	totals, err := s.Store.Ledger().TotalsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum points: %w", err)
	}

	accounts := make([]domain.Account, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, domain.Account{User: u, Points: totals[u.ID]})
	}
	return accounts, nil
}
