package domain

import "time"

// Activity log actions recorded for security-relevant admin operations.
const (
	ActionLogin            = "login"
	ActionLogout           = "logout"
	ActionPasswordChange   = "password_change"
	ActionTwoFactorEnabled = "2fa_enabled"
)

// ActivityLogEntry is an append-only audit record of an administrative action.
type ActivityLogEntry struct {
	ID        string
	AdminID   string
	Action    string
	IPAddress *string
	Timestamp time.Time
	Details   *string
}
