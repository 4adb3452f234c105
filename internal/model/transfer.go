package model

import "time"

// TransferEvent is one executed ownership transfer. Transfers are append-only
// and numbered per asset starting at 1; replaying them in sequence order from
// the initial 100%-to-originator state reproduces the current ownership table.
type TransferEvent struct {
	AssetID     string `json:"asset_id"`
	From        string `json:"from"`
	To          string `json:"to"`
	BasisPoints int64  `json:"basis_points"`
	// Price is the amount agreed for this transfer in minor currency units.
	// Informational only; the ledger does not settle payments.
	Price      int64     `json:"price"`
	Sequence   int64     `json:"sequence"`
	ExecutedAt time.Time `json:"executed_at"`
}
