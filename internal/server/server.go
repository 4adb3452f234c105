// Package server implements the ledger operations and their HTTP surface.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/openlend/loanledger/internal/events"
	"github.com/openlend/loanledger/internal/model"
	"github.com/openlend/loanledger/internal/store"
)

// Version is reported by the health endpoint and the CLI.
const Version = "1.0.0"

// LedgerServer holds the shared state for all ledger operations. The
// transport layers (HTTP handlers, CLI) translate requests into the
// input structs defined alongside each operation and call the
// corresponding method.
type LedgerServer struct {
	store     store.Store
	publisher events.Publisher
	admin     string

	// mu serializes mutating operations so that read-modify-write
	// cycles on an asset's ownership table never interleave.
	mu sync.Mutex
}

// NewLedgerServer creates a server backed by the given store. Events are
// published via publisher; admin names the identity allowed to manage
// the originator set.
func NewLedgerServer(st store.Store, publisher events.Publisher, admin string) *LedgerServer {
	if publisher == nil {
		publisher = &events.NoopPublisher{}
	}
	return &LedgerServer{store: st, publisher: publisher, admin: admin}
}

// Store exposes the underlying store for read-only query handlers.
func (s *LedgerServer) Store() store.Store {
	return s.store
}

// recordAndPublish persists an event to the store and publishes it to
// NATS. Both operations are best-effort: a failure is logged but does
// not fail the ledger operation that already committed.
func (s *LedgerServer) recordAndPublish(ctx context.Context, topic, assetID, actor string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("marshal event payload", "topic", topic, "error", err)
		return
	}
	event := &model.Event{Topic: topic, AssetID: assetID, Actor: actor, Payload: data}
	if err := s.store.RecordEvent(ctx, event); err != nil {
		slog.Warn("record event", "topic", topic, "asset_id", assetID, "error", err)
	}
	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		slog.Warn("publish event", "topic", topic, "asset_id", assetID, "error", err)
	}
}

// inputError marks a request as malformed. The HTTP layer maps it to a
// 400 response; other errors from the store surface as 500s unless they
// match one of the ledger sentinels.
type inputError string

func (e inputError) Error() string { return string(e) }
