package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger entry sources.
const (
	PointsSourceHolding  = "holding"
	PointsSourceReferral = "referral"
	PointsSourceBonus    = "bonus"
)

// LedgerEntry is a single point-earning event. The ledger is append-only; a
// user's balance is the sum of their entries.
type LedgerEntry struct {
	ID        string
	UserID    string
	Points    decimal.Decimal
	Source    string // holding, referral or bonus
	Timestamp time.Time
}
