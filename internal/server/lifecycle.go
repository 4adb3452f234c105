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

type updateStatusInput struct {
	Caller  string
	AssetID string
	Status  model.Status
}

// updateStatus moves an asset through its lifecycle. Only the asset's
// originator may change its status, and only along the permitted
// transitions.
func (s *LedgerServer) updateStatus(ctx context.Context, in updateStatusInput) (*model.AssetRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Caller == "" {
		return nil, inputError("caller is required")
	}
	if !in.Status.IsValid() {
		return nil, inputError(fmt.Sprintf("unknown status %q", in.Status))
	}

	var (
		asset *model.AssetRecord
		old   model.Status
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
		if in.Caller != asset.Originator {
			return fmt.Errorf("%w: only the originator %s may update the status", ledger.ErrUnauthorized, asset.Originator)
		}
		if !asset.Status.CanTransitionTo(in.Status) {
			return fmt.Errorf("%w: %s -> %s", ledger.ErrInvalidTransition, asset.Status, in.Status)
		}
		old = asset.Status
		asset.Status = in.Status
		asset.UpdatedAt = time.Now().UTC()
		if err := tx.UpdateAsset(ctx, asset); err != nil {
			return fmt.Errorf("update asset: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordAndPublish(ctx, events.TopicLifecycleUpdated, asset.ID, in.Caller, events.LifecycleUpdated{
		AssetID:   asset.ID,
		OldStatus: old,
		NewStatus: asset.Status,
		UpdatedBy: in.Caller,
	})
	return asset, nil
}
