package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/solclone/portal/internal/portal/domain"
	"github.com/solclone/portal/internal/portal/store"
	"github.com/solclone/portal/pkg/cryptox"
	"github.com/solclone/portal/pkg/slogx"
)

const (
	// maxFailedAttempts is the number of consecutive password failures that
	// trigger a lockout.
	maxFailedAttempts = 5

	// lockoutDuration is how long an account stays locked after the threshold
	// is reached.
	lockoutDuration = 30 * time.Minute

	// DefaultSessionTTL is the fixed session lifetime. There is no sliding
	// renewal; logout or expiry are the only ways a session ends.
	DefaultSessionTTL = 24 * time.Hour
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountLocked       = errors.New("account is locked")
	ErrInvalidSecondFactor = errors.New("invalid 2FA code")
	ErrSessionExpired      = errors.New("session expired or not found")
)

// AuthService validates administrator credentials, enforces the lockout
// policy, verifies time-based one-time codes and manages the server-side
// session lifecycle.
type AuthService struct {
	Store      store.Store
	Activity   *ActivityService
	Issuer     string // issuer name for TOTP enrollment
	SessionTTL time.Duration
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL <= 0 {
		return DefaultSessionTTL
	}
	return s.SessionTTL
}

// Login authenticates an administrator. The outcome is three-variant:
// full success (session established), second-factor-required (valid password,
// 2FA enabled, no code supplied; the client must resubmit full credentials
// plus the code), or an error.
//
// A locked account rejects the attempt without consuming it. A password
// mismatch increments failed_attempts and, at the threshold, sets
// locked_until to now plus the lockout duration.
func (s *AuthService) Login(
	ctx context.Context,
	username, password, totpCode, ipAddress string,
) (domain.LoginResult, error) {
	now := time.Now()
	log := slogx.FromContext(ctx)

	admin, err := s.Store.Admins().GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.LoginResult{}, ErrInvalidCredentials
		}
		return domain.LoginResult{}, fmt.Errorf("failed to load admin: %w", err)
	}

	if admin.Locked(now) {
		log.Warn("login attempt on locked account",
			slog.String("username", username),
			slog.Time("locked_until", *admin.LockedUntil),
		)
		return domain.LoginResult{}, ErrAccountLocked
	}

	if err := cryptox.VerifyPassword(password, admin.PasswordHash); err != nil {
		failed := admin.FailedAttempts + 1
		var lockedUntil *time.Time
		if failed >= maxFailedAttempts {
			t := now.Add(lockoutDuration)
			lockedUntil = &t
			log.Warn("account locked after repeated failures",
				slog.String("username", username),
				slog.Int("failed_attempts", failed),
			)
		}
		if err := s.Store.Admins().RecordLoginFailure(ctx, admin.ID, failed, lockedUntil); err != nil {
			return domain.LoginResult{}, fmt.Errorf("failed to record login failure: %w", err)
		}
		return domain.LoginResult{}, ErrInvalidCredentials
	}

	if admin.TwoFactorEnabled {
		if totpCode == "" {
			// Nothing is persisted for this intermediate state; the client
			// re-submits the full credentials together with the code.
			return domain.LoginResult{SecondFactorRequired: true}, nil
		}
		if admin.TwoFactorSecret == nil || !totp.Validate(totpCode, *admin.TwoFactorSecret) {
			return domain.LoginResult{}, ErrInvalidSecondFactor
		}
	}

	if err := s.Store.Admins().RecordLoginSuccess(ctx, admin.ID, now); err != nil {
		return domain.LoginResult{}, fmt.Errorf("failed to record login success: %w", err)
	}

	token, session, err := s.createSession(ctx, admin.ID, now)
	if err != nil {
		return domain.LoginResult{}, err
	}

	s.Activity.Record(ctx, admin.ID, domain.ActionLogin, ipAddress,
		fmt.Sprintf("Admin %s logged in", admin.Username))

	profile := admin.Profile()
	profile.LastLogin = &now

	return domain.LoginResult{
		Admin:        profile,
		SessionToken: token,
		Session:      session,
	}, nil
}

func (s *AuthService) createSession(
	ctx context.Context,
	adminID string,
	now time.Time,
) (string, domain.Session, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := domain.Session{
		TokenHash: cryptox.FingerprintToken(token),
		AdminID:   adminID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", domain.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return token, session, nil
}

// AdminBySession resolves a session cookie token to the administrator's
// public profile. Expired or destroyed sessions yield ErrSessionExpired.
func (s *AuthService) AdminBySession(ctx context.Context, token string) (domain.AdminProfile, error) {
	session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AdminProfile{}, ErrSessionExpired
		}
		return domain.AdminProfile{}, fmt.Errorf("failed to load session: %w", err)
	}

	admin, err := s.Store.Admins().GetAdminByID(ctx, session.AdminID)
	if err != nil {
		return domain.AdminProfile{}, fmt.Errorf("failed to load admin for session: %w", err)
	}
	return admin.Profile(), nil
}

// Logout destroys the session. It always succeeds: an unknown token simply
// has nothing to destroy, and the audit entry is best-effort.
func (s *AuthService) Logout(ctx context.Context, token, ipAddress string) {
	hash := cryptox.FingerprintToken(token)

	if session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, hash); err == nil {
		if admin, err := s.Store.Admins().GetAdminByID(ctx, session.AdminID); err == nil {
			s.Activity.Record(ctx, admin.ID, domain.ActionLogout, ipAddress,
				fmt.Sprintf("Admin %s logged out", admin.Username))
		}
	}

	if err := s.Store.Sessions().DeleteSession(ctx, hash); err != nil {
		slogx.FromContext(ctx).Error("failed to delete session", "error", err)
	}
}

// ChangePassword replaces the administrator's password after verifying the
// current one, and clears the first-login flag.
func (s *AuthService) ChangePassword(
	ctx context.Context,
	adminID, currentPassword, newPassword, ipAddress string,
) error {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to load admin: %w", err)
	}

	if err := cryptox.VerifyPassword(currentPassword, admin.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Store.Admins().UpdatePasswordHash(ctx, admin.ID, newHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.Activity.Record(ctx, admin.ID, domain.ActionPasswordChange, ipAddress,
		fmt.Sprintf("Admin %s changed password", admin.Username))
	return nil
}

// EnrollSecondFactor generates a fresh TOTP secret, marks the second factor
// enabled and persists it. There is a single active secret per administrator:
// re-enrollment immediately invalidates every code minted under the previous
// secret.
func (s *AuthService) EnrollSecondFactor(
	ctx context.Context,
	adminID, ipAddress string,
) (domain.SecondFactorEnrollment, error) {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return domain.SecondFactorEnrollment{}, fmt.Errorf("failed to load admin: %w", err)
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: admin.Username,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.SecondFactorEnrollment{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	if err := s.Store.Admins().UpdateSecondFactorSecret(ctx, admin.ID, key.Secret()); err != nil {
		return domain.SecondFactorEnrollment{}, fmt.Errorf("failed to store 2FA secret: %w", err)
	}

	s.Activity.Record(ctx, admin.ID, domain.ActionTwoFactorEnabled, ipAddress,
		fmt.Sprintf("Admin %s enabled 2FA", admin.Username))

	return domain.SecondFactorEnrollment{
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
	}, nil
}
