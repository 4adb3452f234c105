package ledger

import (
	"fmt"

	"github.com/openlend/loanledger/internal/model"
)

// Sum returns the total basis points held across all entries of an ownership
// table.
func Sum(ownership map[string]int64) int64 {
	var sum int64
	for _, bp := range ownership {
		sum += bp
	}
	return sum
}

// CheckInvariant verifies that the ownership table sums to exactly 10000
// basis points and contains no zero or negative entries. A failure is a
// *ConsistencyError, not a normal rejection.
func CheckInvariant(assetID string, ownership map[string]int64) error {
	for _, bp := range ownership {
		if bp <= 0 {
			return &ConsistencyError{AssetID: assetID, Sum: Sum(ownership)}
		}
	}
	if sum := Sum(ownership); sum != model.TotalBasisPoints {
		return &ConsistencyError{AssetID: assetID, Sum: sum}
	}
	return nil
}

// ApplyTransfer validates and applies a fractional transfer on the asset's
// ownership table in place. Preconditions are checked in the order the
// ledger defines them: tradeability, fraction bounds, sender share,
// self-transfer. On any error the table is left untouched.
func ApplyTransfer(asset *model.AssetRecord, from, to string, basisPoints int64) error {
	if !asset.Status.Tradeable() {
		return fmt.Errorf("%w: asset %s is %s", ErrAssetNotTradeable, asset.ID, asset.Status)
	}
	if basisPoints <= 0 || basisPoints > model.TotalBasisPoints {
		return fmt.Errorf("%w: %d basis points", ErrInvalidFraction, basisPoints)
	}
	senderShare := asset.Ownership[from]
	if senderShare < basisPoints {
		return fmt.Errorf("%w: %s holds %d of %d basis points", ErrInsufficientOwnership, from, senderShare, basisPoints)
	}
	if to == from {
		return fmt.Errorf("%w: cannot transfer to self", ErrInvalidTransfer)
	}
	if to == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidTransfer)
	}

	// Sellers whose share reaches zero leave the table entirely.
	if senderShare == basisPoints {
		delete(asset.Ownership, from)
	} else {
		asset.Ownership[from] = senderShare - basisPoints
	}
	asset.Ownership[to] += basisPoints

	return CheckInvariant(asset.ID, asset.Ownership)
}

// Replay rebuilds an ownership table by applying the transfer history, in
// sequence order, to the initial 100%-to-originator state. The result must
// equal the stored table for the audit-trail guarantee to hold.
func Replay(assetID, originator string, history []*model.TransferEvent) (map[string]int64, error) {
	ownership := map[string]int64{originator: model.TotalBasisPoints}

	var prevSeq int64
	for _, ev := range history {
		if ev.AssetID != assetID {
			return nil, fmt.Errorf("replay %s: event %d belongs to asset %s", assetID, ev.Sequence, ev.AssetID)
		}
		if ev.Sequence != prevSeq+1 {
			return nil, fmt.Errorf("replay %s: sequence gap, got %d after %d", assetID, ev.Sequence, prevSeq)
		}
		prevSeq = ev.Sequence

		share := ownership[ev.From]
		if share < ev.BasisPoints {
			return nil, fmt.Errorf("replay %s: event %d moves %d basis points but %s holds %d",
				assetID, ev.Sequence, ev.BasisPoints, ev.From, share)
		}
		if share == ev.BasisPoints {
			delete(ownership, ev.From)
		} else {
			ownership[ev.From] = share - ev.BasisPoints
		}
		ownership[ev.To] += ev.BasisPoints
	}

	if err := CheckInvariant(assetID, ownership); err != nil {
		return nil, err
	}
	return ownership, nil
}

// Equal reports whether two ownership tables hold identical shares.
func Equal(a, b map[string]int64) bool {
	if len(a) != len(b) {
		return false
	}
	for holder, bp := range a {
		if b[holder] != bp {
			return false
		}
	}
	return true
}
