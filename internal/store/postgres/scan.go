package postgres

import (
	"encoding/json"

	"github.com/openlend/loanledger/internal/model"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanAsset scans a single row into a model.AssetRecord.
// The row must contain columns in the order defined by assetColumns.
// Holdings are loaded separately.
func scanAsset(row scannable) (*model.AssetRecord, error) {
	var a model.AssetRecord
	err := row.Scan(
		&a.ID,
		&a.ExternalRef,
		&a.Originator,
		&a.TotalValue,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// scanAssetWithTotal scans a row produced by queryListAssets, which prefixes
// the asset columns with a window-function total count.
func scanAssetWithTotal(row scannable) (*model.AssetRecord, int, error) {
	var a model.AssetRecord
	var total int
	err := row.Scan(
		&total,
		&a.ID,
		&a.ExternalRef,
		&a.Originator,
		&a.TotalValue,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, 0, err
	}
	return &a, total, nil
}

func scanTransfer(row scannable) (*model.TransferEvent, error) {
	var t model.TransferEvent
	err := row.Scan(
		&t.AssetID,
		&t.Sequence,
		&t.From,
		&t.To,
		&t.BasisPoints,
		&t.Price,
		&t.ExecutedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanEvent(row scannable) (*model.Event, error) {
	var e model.Event
	var payload []byte
	err := row.Scan(
		&e.ID,
		&e.Topic,
		&e.AssetID,
		&e.Actor,
		&payload,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(payload) > 0 {
		e.Payload = json.RawMessage(payload)
	}
	return &e, nil
}

// jsonbBytes converts a RawMessage to a driver value suitable for a jsonb
// column, mapping empty payloads to NULL.
func jsonbBytes(m json.RawMessage) any {
	if len(m) == 0 {
		return nil
	}
	return []byte(m)
}
