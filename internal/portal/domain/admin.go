package domain

import "time"

// Admin is a dashboard administrator account.
type Admin struct {
	ID               string
	Username         string
	PasswordHash     string     // argon2id encoded
	IsFirstLogin     bool       // cleared on first password change
	TwoFactorEnabled bool
	TwoFactorSecret  *string    // TOTP secret (nullable, base32 encoded)
	LastLogin        *time.Time
	FailedAttempts   int
	LockedUntil      *time.Time // only blocks logins while strictly in the future
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Locked reports whether the account is locked out at the given instant.
// A locked_until value in the past is ignored.
func (a Admin) Locked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

// Profile returns the public view of the account, with no secrets.
func (a Admin) Profile() AdminProfile {
	return AdminProfile{
		ID:               a.ID,
		Username:         a.Username,
		IsFirstLogin:     a.IsFirstLogin,
		TwoFactorEnabled: a.TwoFactorEnabled,
		LastLogin:        a.LastLogin,
	}
}

// AdminProfile is the administrator representation returned to clients.
// It never carries the password hash or the second-factor secret.
type AdminProfile struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	IsFirstLogin     bool       `json:"isFirstLogin"`
	TwoFactorEnabled bool       `json:"twoFactorEnabled"`
	LastLogin        *time.Time `json:"lastLogin,omitempty"`
}
