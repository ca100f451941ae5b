package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an end-user wallet registration. The wallet address is the natural
// external identity; rows are immutable after creation except for the
// verification timestamp and telegram linkage.
type User struct {
	ID               string     `json:"id"`
	WalletAddress    string     `json:"walletAddress"`
	TelegramID       *string    `json:"telegramId,omitempty"`
	ReferralCode     string     `json:"referralCode"`
	ReferredBy       *string    `json:"referredBy,omitempty"`
	LastVerification *time.Time `json:"lastVerification,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Account is a user row together with its points balance from the ledger.
type Account struct {
	User

	Points decimal.Decimal `json:"points"`
}
