package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion request statuses.
const (
	ConversionStatusPending   = "pending"
	ConversionStatusApproved  = "approved"
	ConversionStatusCompleted = "completed"
	ConversionStatusRejected  = "rejected"
)

// WalletVerification records an on-chain balance check for a user. The table
// is reserved for the balance-verification workflow; no endpoint consumes it
// in this revision.
type WalletVerification struct {
	ID           string
	UserID       string
	CloneBalance decimal.Decimal
	Timestamp    time.Time
}

// ConversionRequest is a points-to-SOL conversion awaiting admin processing.
// Reserved alongside WalletVerification.
type ConversionRequest struct {
	ID           string
	UserID       string
	PointsAmount decimal.Decimal
	SolanaAmount decimal.Decimal
	Status       string
	CreatedAt    time.Time
	ProcessedAt  *time.Time
	ProcessedBy  *string // admin id
}
