package domain

import "time"

// Session is a server-side admin session record. Only the SHA-256 fingerprint
// of the opaque cookie token is stored. Expiry is fixed at creation; there is
// no sliding renewal.
type Session struct {
	TokenHash string
	AdminID   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
