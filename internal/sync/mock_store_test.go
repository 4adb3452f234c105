package sync

import (
	"context"
	"time"

	"github.com/openlend/loanledger/internal/model"
	"github.com/openlend/loanledger/internal/store"
)

// mockStore is an in-memory store for export tests.
type mockStore struct {
	assets      map[string]*model.AssetRecord
	transfers   map[string][]*model.TransferEvent
	originators map[string]*model.Originator
	events      []*model.Event
}

func newMockStore() *mockStore {
	return &mockStore{
		assets:      make(map[string]*model.AssetRecord),
		transfers:   make(map[string][]*model.TransferEvent),
		originators: make(map[string]*model.Originator),
	}
}

func (m *mockStore) CreateAsset(_ context.Context, asset *model.AssetRecord) error {
	m.assets[asset.ID] = asset
	return nil
}

func (m *mockStore) GetAsset(_ context.Context, id string) (*model.AssetRecord, error) {
	return m.assets[id], nil
}

func (m *mockStore) GetAssetByRef(_ context.Context, externalRef string) (*model.AssetRecord, error) {
	for _, a := range m.assets {
		if a.ExternalRef == externalRef {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockStore) ListAssets(_ context.Context, _ model.AssetFilter) ([]*model.AssetRecord, int, error) {
	var result []*model.AssetRecord
	for _, a := range m.assets {
		result = append(result, a)
	}
	return result, len(result), nil
}

func (m *mockStore) UpdateAsset(_ context.Context, asset *model.AssetRecord) error {
	m.assets[asset.ID] = asset
	return nil
}

func (m *mockStore) AppendTransfer(_ context.Context, transfer *model.TransferEvent) error {
	m.transfers[transfer.AssetID] = append(m.transfers[transfer.AssetID], transfer)
	return nil
}

func (m *mockStore) GetTransfers(_ context.Context, assetID string) ([]*model.TransferEvent, error) {
	return m.transfers[assetID], nil
}

func (m *mockStore) NextSequence(_ context.Context, assetID string) (int64, error) {
	return int64(len(m.transfers[assetID])) + 1, nil
}

func (m *mockStore) AddOriginator(_ context.Context, o *model.Originator) error {
	m.originators[o.Identity] = o
	return nil
}

func (m *mockStore) RemoveOriginator(_ context.Context, identity string) error {
	delete(m.originators, identity)
	return nil
}

func (m *mockStore) IsOriginator(_ context.Context, identity string) (bool, error) {
	_, ok := m.originators[identity]
	return ok, nil
}

func (m *mockStore) ListOriginators(_ context.Context) ([]*model.Originator, error) {
	var result []*model.Originator
	for _, o := range m.originators {
		result = append(result, o)
	}
	return result, nil
}

func (m *mockStore) RecordEvent(_ context.Context, event *model.Event) error {
	event.CreatedAt = time.Now().UTC()
	m.events = append(m.events, event)
	return nil
}

func (m *mockStore) GetEvents(_ context.Context, assetID string) ([]*model.Event, error) {
	var result []*model.Event
	for _, e := range m.events {
		if e.AssetID == assetID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockStore) RunInTransaction(_ context.Context, fn func(tx store.Store) error) error {
	return fn(m)
}

func (m *mockStore) Close() error { return nil }
