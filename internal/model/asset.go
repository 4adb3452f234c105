package model

import "time"

// TotalBasisPoints is the full ownership of an asset. Every asset's
// ownership table sums to exactly this value at all times.
const TotalBasisPoints int64 = 10000

// Status represents the lifecycle state of an asset.
type Status string

const (
	StatusActive       Status = "active"
	StatusSettled      Status = "settled"
	StatusDefaulted    Status = "defaulted"
	StatusRestructured Status = "restructured"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSettled, StatusDefaulted, StatusRestructured:
		return true
	}
	return false
}

// Tradeable reports whether ownership transfers are permitted in this status.
// Only active assets trade; a restructured asset must return to active first.
func (s Status) Tradeable() bool {
	return s == StatusActive
}

// CanTransitionTo reports whether the lifecycle state machine permits moving
// from s to next. Settled and defaulted are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusActive:
		return next == StatusSettled || next == StatusDefaulted || next == StatusRestructured
	case StatusRestructured:
		return next == StatusActive
	}
	return false
}

// AssetRecord is one tokenized loan and its current fractional ownership.
// ID, ExternalRef, Originator, TotalValue, and CreatedAt are immutable after
// registration; only Ownership and Status change, through the ledger
// operations.
type AssetRecord struct {
	ID          string `json:"id"`
	ExternalRef string `json:"external_ref"`
	Originator  string `json:"originator"`
	// TotalValue is the face value of the loan in minor currency units.
	TotalValue int64 `json:"total_value"`
	// Ownership maps holder identity to their share in basis points.
	// Entries are always in the range [1, 10000] and sum to 10000.
	Ownership map[string]int64 `json:"ownership"`
	Status    Status           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Share returns the holder's current share in basis points, or 0 if the
// holder has no entry in the ownership table.
func (a *AssetRecord) Share(holder string) int64 {
	return a.Ownership[holder]
}

// Holders returns the number of distinct holders in the ownership table.
func (a *AssetRecord) Holders() int {
	return len(a.Ownership)
}

// AssetFilter narrows ListAssets results.
type AssetFilter struct {
	// Holder restricts results to assets in which the identity holds a share.
	Holder string
	// Originator restricts results to assets registered by the identity.
	Originator string
	Status     []Status
	Limit      int
	Offset     int
}
