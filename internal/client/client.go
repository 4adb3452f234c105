// Package client provides a transport-agnostic interface for the loan ledger
// service and an HTTP/JSON implementation that talks to the ledger REST API.
package client

import (
	"context"

	"github.com/openlend/loanledger/internal/model"
)

// LedgerClient is the interface that all CLI commands use to communicate
// with the ledger server. It is implemented by HTTPClient (default) and can
// be backed by any transport.
type LedgerClient interface {
	// Registry
	RegisterAsset(ctx context.Context, req *RegisterAssetRequest) (*model.AssetRecord, error)
	GetAsset(ctx context.Context, id string) (*model.AssetRecord, error)
	ListAssets(ctx context.Context, req *ListAssetsRequest) (*ListAssetsResponse, error)

	// Transfers
	Transfer(ctx context.Context, req *TransferRequest) (*model.TransferEvent, error)
	GetOwnership(ctx context.Context, id string) (map[string]int64, error)
	GetHistory(ctx context.Context, id string) ([]*model.TransferEvent, error)

	// Lifecycle
	UpdateStatus(ctx context.Context, id, caller, status string) (*model.AssetRecord, error)

	// Originators
	AuthorizeOriginator(ctx context.Context, caller, identity string) error
	RevokeOriginator(ctx context.Context, caller, identity string) error
	ListOriginators(ctx context.Context) ([]*model.Originator, error)
	IsOriginator(ctx context.Context, identity string) (bool, error)

	// Events
	GetEvents(ctx context.Context, assetID string) ([]*model.Event, error)

	// Health
	Health(ctx context.Context) (string, string, error)

	// Lifecycle
	Close() error
}

// RegisterAssetRequest holds parameters for registering a loan asset.
type RegisterAssetRequest struct {
	Caller      string `json:"caller"`
	AssetID     string `json:"asset_id,omitempty"`
	ExternalRef string `json:"external_ref"`
	TotalValue  int64  `json:"total_value"`
}

// TransferRequest holds parameters for transferring a fraction of an asset.
type TransferRequest struct {
	AssetID     string `json:"-"`
	Caller      string `json:"caller"`
	To          string `json:"to"`
	BasisPoints int64  `json:"basis_points"`
	Price       int64  `json:"price,omitempty"`
}

// ListAssetsRequest holds filter parameters for listing assets.
type ListAssetsRequest struct {
	Holder     string
	Originator string
	Status     []string
	Limit      int
	Offset     int
}

// ListAssetsResponse is the response from ListAssets.
type ListAssetsResponse struct {
	Assets []*model.AssetRecord `json:"assets"`
	Total  int                  `json:"total"`
}
