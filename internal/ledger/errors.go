// Package ledger implements the ownership arithmetic for fractional loan
// assets: applying transfers to an ownership table, replaying transfer
// history, and enforcing the conservation invariant (shares always sum to
// 10000 basis points).
package ledger

import (
	"errors"
	"fmt"
)

// Domain errors returned by ledger operations. Transport layers map these to
// status codes; none of them indicate a bug, only a rejected call.
var (
	// ErrUnauthorized means the caller lacks the capability for the operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAssetNotFound means the referenced asset does not exist.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrDuplicateAsset means an asset with the given ID is already registered.
	ErrDuplicateAsset = errors.New("asset already registered")
	// ErrInvalidAmount means a monetary amount was zero or negative.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidFraction means basis points were outside [1, 10000].
	ErrInvalidFraction = errors.New("invalid fraction")
	// ErrInvalidTransfer means the transfer request was semantically invalid
	// (e.g. a self-transfer).
	ErrInvalidTransfer = errors.New("invalid transfer")
	// ErrInsufficientOwnership means the sender's share is smaller than the
	// fraction being moved.
	ErrInsufficientOwnership = errors.New("insufficient ownership")
	// ErrAssetNotTradeable means the asset's lifecycle status forbids transfers.
	ErrAssetNotTradeable = errors.New("asset not tradeable")
	// ErrInvalidTransition means the lifecycle state machine forbids the
	// requested status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ConsistencyError reports a violated conservation invariant: the ownership
// table of an asset no longer sums to 10000 basis points. It is never
// reachable through valid inputs; observing one means a logic bug, so it is
// surfaced as a distinct type and must abort the whole operation.
type ConsistencyError struct {
	AssetID string
	Sum     int64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("ledger consistency violation on %s: ownership sums to %d, want 10000", e.AssetID, e.Sum)
}
