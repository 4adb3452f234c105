package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/openlend/loanledger/internal/model"
	"github.com/openlend/loanledger/internal/store"
)

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version         string    `json:"version"`
	Type            string    `json:"type"`
	Timestamp       time.Time `json:"timestamp"`
	AssetCount      int       `json:"asset_count"`
	TransferCount   int       `json:"transfer_count"`
	OriginatorCount int       `json:"originator_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ExportJSONL writes all assets, their transfer histories, and the
// originator set from the store as JSONL to w. Assets are sorted by ID;
// transfers follow their asset in sequence order.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	// Fetch all assets (no filter, no limit).
	assets, _, err := s.ListAssets(ctx, model.AssetFilter{})
	if err != nil {
		return fmt.Errorf("list assets: %w", err)
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].ID < assets[j].ID
	})

	transfers := make(map[string][]*model.TransferEvent, len(assets))
	transferCount := 0
	for _, a := range assets {
		history, err := s.GetTransfers(ctx, a.ID)
		if err != nil {
			return fmt.Errorf("get transfers for %s: %w", a.ID, err)
		}
		transfers[a.ID] = history
		transferCount += len(history)
	}

	originators, err := s.ListOriginators(ctx)
	if err != nil {
		return fmt.Errorf("list originators: %w", err)
	}
	sort.Slice(originators, func(i, j int) bool {
		return originators[i].Identity < originators[j].Identity
	})

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:         "1",
		Type:            "header",
		Timestamp:       time.Now().UTC(),
		AssetCount:      len(assets),
		TransferCount:   transferCount,
		OriginatorCount: len(originators),
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	for _, a := range assets {
		if err := enc.Encode(record{Type: "asset", Data: a}); err != nil {
			return fmt.Errorf("encode asset %s: %w", a.ID, err)
		}
		for _, tr := range transfers[a.ID] {
			if err := enc.Encode(record{Type: "transfer", Data: tr}); err != nil {
				return fmt.Errorf("encode transfer %s/%d: %w", a.ID, tr.Sequence, err)
			}
		}
	}

	for _, o := range originators {
		if err := enc.Encode(record{Type: "originator", Data: o}); err != nil {
			return fmt.Errorf("encode originator %s: %w", o.Identity, err)
		}
	}

	return nil
}
