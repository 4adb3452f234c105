package store

import (
	"context"

	"github.com/openlend/loanledger/internal/model"
)

// Store defines the persistence interface for the ledger. Assets, transfer
// history, the authorization set, and the event log are owned exclusively by
// the store; all mutation goes through the ledger operations.
//
// Lookup methods return (nil, nil) when the record does not exist.
type Store interface {
	// Assets
	CreateAsset(ctx context.Context, asset *model.AssetRecord) error
	GetAsset(ctx context.Context, id string) (*model.AssetRecord, error)
	GetAssetByRef(ctx context.Context, externalRef string) (*model.AssetRecord, error)
	ListAssets(ctx context.Context, filter model.AssetFilter) ([]*model.AssetRecord, int, error) // returns assets, total count, error
	UpdateAsset(ctx context.Context, asset *model.AssetRecord) error

	// Transfer history (append-only)
	AppendTransfer(ctx context.Context, transfer *model.TransferEvent) error
	GetTransfers(ctx context.Context, assetID string) ([]*model.TransferEvent, error)
	NextSequence(ctx context.Context, assetID string) (int64, error)

	// Authorization set
	AddOriginator(ctx context.Context, originator *model.Originator) error
	RemoveOriginator(ctx context.Context, identity string) error
	IsOriginator(ctx context.Context, identity string) (bool, error)
	ListOriginators(ctx context.Context) ([]*model.Originator, error)

	// Event log
	RecordEvent(ctx context.Context, event *model.Event) error
	GetEvents(ctx context.Context, assetID string) ([]*model.Event, error)

	// Transaction support
	RunInTransaction(ctx context.Context, fn func(tx Store) error) error

	// Lifecycle
	Close() error
}
