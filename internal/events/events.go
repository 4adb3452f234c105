package events

import (
	"context"
	"time"

	"github.com/openlend/loanledger/internal/model"
)

// Event topic constants
const (
	TopicAssetRegistered      = "ledger.asset.registered"
	TopicOwnershipTransferred = "ledger.ownership.transferred"
	TopicLifecycleUpdated     = "ledger.lifecycle.updated"
	TopicOriginatorAuthorized = "ledger.originator.authorized"
	TopicOriginatorRevoked    = "ledger.originator.revoked"
)

// Event types

type AssetRegistered struct {
	Asset *model.AssetRecord `json:"asset"`
}

type OwnershipTransferred struct {
	Transfer *model.TransferEvent `json:"transfer"`
	// Ownership is the table after the transfer was applied.
	Ownership map[string]int64 `json:"ownership"`
}

type LifecycleUpdated struct {
	AssetID   string       `json:"asset_id"`
	OldStatus model.Status `json:"old_status"`
	NewStatus model.Status `json:"new_status"`
	UpdatedBy string       `json:"updated_by"`
}

type OriginatorAuthorized struct {
	Identity     string    `json:"identity"`
	AuthorizedBy string    `json:"authorized_by"`
	AuthorizedAt time.Time `json:"authorized_at"`
}

type OriginatorRevoked struct {
	Identity  string    `json:"identity"`
	RevokedBy string    `json:"revoked_by"`
	RevokedAt time.Time `json:"revoked_at"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
