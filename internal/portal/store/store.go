package store

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/solclone/portal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. Uniqueness races (two registrations for the same wallet, two
// admins with the same username) are resolved purely by the driver's unique
// indexes, surfaced as ErrAlreadyExists; no application-level locking.
type Store interface {
	Admins() Admins
	Users() Users
	Ledger() Ledger
	Sessions() Sessions
	ActivityLogs() ActivityLogs
	Verifications() Verifications
	Conversions() Conversions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back if fn returns an
	// error and committing otherwise. This is the recommended way to run
	// multi-step operations that must be atomic (e.g., user insert plus
	// referral credit).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Admins interface {
	// GetAdminByID returns an administrator by id.
	GetAdminByID(ctx context.Context, id string) (domain.Admin, error)

	// GetAdminByUsername is used during login and bootstrap.
	GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error)

	// CreateAdmin inserts a new administrator (id is provided by app via ULID).
	CreateAdmin(ctx context.Context, a domain.Admin) error

	// RecordLoginFailure persists the failed-attempt counter and, when the
	// lockout threshold was reached, the locked_until timestamp.
	RecordLoginFailure(ctx context.Context, adminID string, failedAttempts int, lockedUntil *time.Time) error

	// RecordLoginSuccess resets failed_attempts to zero and sets last_login.
	RecordLoginSuccess(ctx context.Context, adminID string, at time.Time) error

	// UpdatePasswordHash replaces the password hash and clears is_first_login.
	UpdatePasswordHash(ctx context.Context, adminID string, newHash string) error

	// UpdateSecondFactorSecret stores a new TOTP secret and marks the second
	// factor enabled. Any previously stored secret is overwritten.
	UpdateSecondFactorSecret(ctx context.Context, adminID string, secret string) error
}

type Users interface {
	// CreateUser inserts a new user row. Duplicate wallet addresses, referral
	// codes or telegram ids surface as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByWallet returns a user by wallet address.
	GetUserByWallet(ctx context.Context, walletAddress string) (domain.User, error)

	// GetUserByReferralCode resolves a referral code to its owner.
	GetUserByReferralCode(ctx context.Context, code string) (domain.User, error)

	// ListUsers returns all users ordered by created_at ascending.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateLastVerification sets the last_verification timestamp.
	UpdateLastVerification(ctx context.Context, userID string, at time.Time) error

	// UpdateTelegramID links a telegram account to the user.
	UpdateTelegramID(ctx context.Context, userID string, telegramID string) error
}

type Ledger interface {
	// CreateEntry appends a ledger entry. Entries are never updated or deleted.
	CreateEntry(ctx context.Context, e domain.LedgerEntry) error

	// ListEntriesForUser returns a user's entries ordered by timestamp ascending.
	ListEntriesForUser(ctx context.Context, userID string) ([]domain.LedgerEntry, error)

	// TotalForUser sums a user's points; zero for users with no entries.
	TotalForUser(ctx context.Context, userID string) (decimal.Decimal, error)

	// TotalsByUser sums points grouped by user id.
	TotalsByUser(ctx context.Context) (map[string]decimal.Decimal, error)
}

type Sessions interface {
	// CreateSession stores a new session record keyed by token fingerprint.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns a session that has not yet expired.
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)

	// DeleteSession removes a session (logout).
	DeleteSession(ctx context.Context, tokenHash string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type ActivityLogs interface {
	// CreateEntry appends an audit record.
	CreateEntry(ctx context.Context, e domain.ActivityLogEntry) error

	// ListRecent returns the newest entries first, up to limit.
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityLogEntry, error)
}

type Verifications interface {
	// CreateVerification records a wallet balance verification.
	CreateVerification(ctx context.Context, v domain.WalletVerification) error

	// LatestForUser returns the most recent verification for a user.
	LatestForUser(ctx context.Context, userID string) (domain.WalletVerification, error)
}

type Conversions interface {
	// CreateConversionRequest stores a new pending conversion.
	CreateConversionRequest(ctx context.Context, c domain.ConversionRequest) error

	// ListByStatus returns conversion requests with the given status,
	// oldest first.
	ListByStatus(ctx context.Context, status string) ([]domain.ConversionRequest, error)

	// MarkProcessed transitions a request to a terminal status and records
	// the processing admin and time.
	MarkProcessed(ctx context.Context, id string, status string, processedBy string, at time.Time) error
}
