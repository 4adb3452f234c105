package server

import (
	"context"
	"fmt"
	"time"

	"github.com/openlend/loanledger/internal/events"
	"github.com/openlend/loanledger/internal/ledger"
	"github.com/openlend/loanledger/internal/model"
	"github.com/openlend/loanledger/internal/store"
)

type transferInput struct {
	Caller      string
	AssetID     string
	To          string
	BasisPoints int64
	Price       int64
}

// transferOwnership moves a fraction of an asset from the caller to the
// recipient and appends the resulting event to the asset's history. The
// whole operation runs in a single transaction so the ownership table
// and the history never diverge.
func (s *LedgerServer) transferOwnership(ctx context.Context, in transferInput) (*model.TransferEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Caller == "" {
		return nil, inputError("caller is required")
	}
	if in.AssetID == "" {
		return nil, inputError("asset id is required")
	}

	var (
		transfer *model.TransferEvent
		asset    *model.AssetRecord
	)
	err := s.store.RunInTransaction(ctx, func(tx store.Store) error {
		var err error
		asset, err = tx.GetAsset(ctx, in.AssetID)
		if err != nil {
			return fmt.Errorf("get asset: %w", err)
		}
		if asset == nil {
			return fmt.Errorf("%w: %s", ledger.ErrAssetNotFound, in.AssetID)
		}
		if err := ledger.ApplyTransfer(asset, in.Caller, in.To, in.BasisPoints); err != nil {
			return err
		}
		seq, err := tx.NextSequence(ctx, in.AssetID)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		transfer = &model.TransferEvent{
			AssetID:     in.AssetID,
			From:        in.Caller,
			To:          in.To,
			BasisPoints: in.BasisPoints,
			Price:       in.Price,
			Sequence:    seq,
			ExecutedAt:  time.Now().UTC(),
		}
		if err := tx.AppendTransfer(ctx, transfer); err != nil {
			return fmt.Errorf("append transfer: %w", err)
		}
		asset.UpdatedAt = transfer.ExecutedAt
		if err := tx.UpdateAsset(ctx, asset); err != nil {
			return fmt.Errorf("update asset: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordAndPublish(ctx, events.TopicOwnershipTransferred, in.AssetID, in.Caller, events.OwnershipTransferred{
		Transfer:  transfer,
		Ownership: asset.Ownership,
	})
	return transfer, nil
}
