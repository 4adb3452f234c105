package server

import (
	"context"
	"fmt"
	"time"

	"github.com/openlend/loanledger/internal/events"
	"github.com/openlend/loanledger/internal/idgen"
	"github.com/openlend/loanledger/internal/ledger"
	"github.com/openlend/loanledger/internal/model"
	"github.com/openlend/loanledger/internal/store"
)

type registerAssetInput struct {
	Caller      string
	AssetID     string
	ExternalRef string
	TotalValue  int64
}

// registerAsset records a new loan asset with the caller holding the
// entire ownership. The caller must be an authorized originator.
func (s *LedgerServer) registerAsset(ctx context.Context, in registerAssetInput) (*model.AssetRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Caller == "" {
		return nil, inputError("caller is required")
	}
	ok, err := s.store.IsOriginator(ctx, in.Caller)
	if err != nil {
		return nil, fmt.Errorf("check originator: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an authorized originator", ledger.ErrUnauthorized, in.Caller)
	}

	id := in.AssetID
	if id == "" {
		id, err = idgen.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate asset id: %w", err)
		}
	}

	now := time.Now().UTC()
	asset := &model.AssetRecord{
		ID:          id,
		ExternalRef: in.ExternalRef,
		Originator:  in.Caller,
		TotalValue:  in.TotalValue,
		Ownership:   map[string]int64{in.Caller: model.TotalBasisPoints},
		Status:      model.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.store.RunInTransaction(ctx, func(tx store.Store) error {
		existing, err := tx.GetAsset(ctx, id)
		if err != nil {
			return fmt.Errorf("get asset: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", ledger.ErrDuplicateAsset, id)
		}
		if in.ExternalRef != "" {
			byRef, err := tx.GetAssetByRef(ctx, in.ExternalRef)
			if err != nil {
				return fmt.Errorf("get asset by ref: %w", err)
			}
			if byRef != nil {
				return fmt.Errorf("%w: external reference %s already registered as %s", ledger.ErrDuplicateAsset, in.ExternalRef, byRef.ID)
			}
		}
		if in.TotalValue <= 0 {
			return fmt.Errorf("%w: total value must be positive, got %d", ledger.ErrInvalidAmount, in.TotalValue)
		}
		if err := model.ValidateAsset(asset); err != nil {
			return inputError(err.Error())
		}
		if err := tx.CreateAsset(ctx, asset); err != nil {
			return fmt.Errorf("create asset: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordAndPublish(ctx, events.TopicAssetRegistered, asset.ID, in.Caller, events.AssetRegistered{Asset: asset})
	return asset, nil
}

type originatorInput struct {
	Caller   string
	Identity string
}

// authorizeOriginator adds an identity to the set allowed to register
// assets. Only the configured admin may call this.
func (s *LedgerServer) authorizeOriginator(ctx context.Context, in originatorInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Identity == "" {
		return inputError("identity is required")
	}
	if in.Caller != s.admin {
		return fmt.Errorf("%w: only %s may manage originators", ledger.ErrUnauthorized, s.admin)
	}
	o := &model.Originator{Identity: in.Identity, AuthorizedBy: in.Caller, AuthorizedAt: time.Now().UTC()}
	if err := s.store.AddOriginator(ctx, o); err != nil {
		return fmt.Errorf("add originator: %w", err)
	}
	s.recordAndPublish(ctx, events.TopicOriginatorAuthorized, "", in.Caller, events.OriginatorAuthorized{
		Identity: in.Identity, AuthorizedBy: in.Caller, AuthorizedAt: o.AuthorizedAt,
	})
	return nil
}

// revokeOriginator removes an identity from the originator set. Assets
// the identity already registered are unaffected.
func (s *LedgerServer) revokeOriginator(ctx context.Context, in originatorInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Identity == "" {
		return inputError("identity is required")
	}
	if in.Caller != s.admin {
		return fmt.Errorf("%w: only %s may manage originators", ledger.ErrUnauthorized, s.admin)
	}
	if err := s.store.RemoveOriginator(ctx, in.Identity); err != nil {
		return fmt.Errorf("remove originator: %w", err)
	}
	s.recordAndPublish(ctx, events.TopicOriginatorRevoked, "", in.Caller, events.OriginatorRevoked{
		Identity: in.Identity, RevokedBy: in.Caller, RevokedAt: time.Now().UTC(),
	})
	return nil
}
