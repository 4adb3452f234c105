package model

import (
	"encoding/json"
	"time"
)

// Event is a persisted ledger event record, mirroring what is published to
// NATS. The events table is the append-only log external indexers read from.
type Event struct {
	ID        int64           `json:"id"`
	Topic     string          `json:"topic"`
	AssetID   string          `json:"asset_id"`
	Actor     string          `json:"actor,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Originator is one entry in the authorization set: an identity permitted to
// register new assets.
type Originator struct {
	Identity     string    `json:"identity"`
	AuthorizedBy string    `json:"authorized_by,omitempty"`
	AuthorizedAt time.Time `json:"authorized_at"`
}
