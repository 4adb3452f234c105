package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/openlend/loanledger/internal/model"
)

// assetColumns is the column list used for SELECT statements on the assets table.
const assetColumns = `id, external_ref, originator, total_value, status, created_at, updated_at`

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryCreateAsset(ctx context.Context, db executor, a *model.AssetRecord) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO assets (
			id, external_ref, originator, total_value, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`,
		a.ID,
		a.ExternalRef,
		a.Originator,
		a.TotalValue,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return replaceHoldings(ctx, db, a.ID, a.Ownership)
}

func queryGetAsset(ctx context.Context, db executor, id string) (*model.AssetRecord, error) {
	row := db.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)
	return scanAssetWithHoldings(ctx, db, row)
}

func queryGetAssetByRef(ctx context.Context, db executor, externalRef string) (*model.AssetRecord, error) {
	row := db.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM assets WHERE external_ref = $1`, externalRef)
	return scanAssetWithHoldings(ctx, db, row)
}

func scanAssetWithHoldings(ctx context.Context, db executor, row *sql.Row) (*model.AssetRecord, error) {
	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	ownership, err := queryGetHoldings(ctx, db, a.ID)
	if err != nil {
		return nil, err
	}
	a.Ownership = ownership
	return a, nil
}

func queryGetHoldings(ctx context.Context, db executor, assetID string) (map[string]int64, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT holder, basis_points FROM holdings WHERE asset_id = $1`, assetID)
	if err != nil {
		return nil, fmt.Errorf("get holdings: %w", err)
	}
	defer rows.Close()

	ownership := make(map[string]int64)
	for rows.Next() {
		var holder string
		var bp int64
		if err := rows.Scan(&holder, &bp); err != nil {
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		ownership[holder] = bp
	}
	return ownership, rows.Err()
}

// replaceHoldings rewrites the holdings rows for an asset to match the given
// ownership table. Callers run this inside a transaction so readers never see
// a partially written table.
func replaceHoldings(ctx context.Context, db executor, assetID string, ownership map[string]int64) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM holdings WHERE asset_id = $1`, assetID); err != nil {
		return fmt.Errorf("clear holdings: %w", err)
	}
	for holder, bp := range ownership {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO holdings (asset_id, holder, basis_points) VALUES ($1, $2, $3)`,
			assetID, holder, bp); err != nil {
			return fmt.Errorf("insert holding %s: %w", holder, err)
		}
	}
	return nil
}

func queryListAssets(ctx context.Context, db executor, filter model.AssetFilter) ([]*model.AssetRecord, int, error) {
	var (
		whereClauses []string
		args         []any
		argIdx       int
	)

	nextArg := func() string {
		argIdx++
		return fmt.Sprintf("$%d", argIdx)
	}

	if len(filter.Status) > 0 {
		placeholders := make([]string, len(filter.Status))
		for i, s := range filter.Status {
			placeholders[i] = nextArg()
			args = append(args, string(s))
		}
		whereClauses = append(whereClauses, "status IN ("+strings.Join(placeholders, ", ")+")")
	}

	if filter.Originator != "" {
		whereClauses = append(whereClauses, "originator = "+nextArg())
		args = append(args, filter.Originator)
	}

	if filter.Holder != "" {
		p := nextArg()
		whereClauses = append(whereClauses,
			fmt.Sprintf("EXISTS (SELECT 1 FROM holdings WHERE holdings.asset_id = assets.id AND holdings.holder = %s)", p))
		args = append(args, filter.Holder)
	}

	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	// Single query with COUNT(*) OVER() to get total and rows atomically.
	dataQuery := "SELECT COUNT(*) OVER() AS total_count, " + assetColumns + " FROM assets" + whereSQL + " ORDER BY created_at, id"

	if filter.Limit > 0 {
		dataQuery += " LIMIT " + nextArg()
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		dataQuery += " OFFSET " + nextArg()
		args = append(args, filter.Offset)
	}

	rows, err := db.QueryContext(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []*model.AssetRecord
	var total int
	for rows.Next() {
		a, t, err := scanAssetWithTotal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan assets: %w", err)
		}
		total = t
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan assets: %w", err)
	}

	for _, a := range assets {
		ownership, err := queryGetHoldings(ctx, db, a.ID)
		if err != nil {
			return nil, 0, err
		}
		a.Ownership = ownership
	}

	return assets, total, nil
}

func queryUpdateAsset(ctx context.Context, db executor, a *model.AssetRecord) error {
	err := db.QueryRowContext(ctx, `
		UPDATE assets SET
			status = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		a.ID,
		string(a.Status),
	).Scan(&a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return sql.ErrNoRows
	}
	if err != nil {
		return err
	}
	return replaceHoldings(ctx, db, a.ID, a.Ownership)
}

func queryAppendTransfer(ctx context.Context, db executor, t *model.TransferEvent) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO transfers (
			asset_id, sequence, from_holder, to_holder, basis_points, price, executed_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`,
		t.AssetID,
		t.Sequence,
		t.From,
		t.To,
		t.BasisPoints,
		t.Price,
		t.ExecutedAt,
	)
	return err
}

func queryGetTransfers(ctx context.Context, db executor, assetID string) ([]*model.TransferEvent, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT asset_id, sequence, from_holder, to_holder, basis_points, price, executed_at
		FROM transfers WHERE asset_id = $1 ORDER BY sequence`, assetID)
	if err != nil {
		return nil, fmt.Errorf("get transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*model.TransferEvent
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

func queryNextSequence(ctx context.Context, db executor, assetID string) (int64, error) {
	var next int64
	err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sequence), 0) + 1 FROM transfers WHERE asset_id = $1`,
		assetID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next, nil
}

func queryAddOriginator(ctx context.Context, db executor, o *model.Originator) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO originators (identity, authorized_by, authorized_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (identity) DO NOTHING`,
		o.Identity,
		o.AuthorizedBy,
		o.AuthorizedAt,
	)
	return err
}

func queryRemoveOriginator(ctx context.Context, db executor, identity string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM originators WHERE identity = $1`, identity)
	return err
}

func queryIsOriginator(ctx context.Context, db executor, identity string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM originators WHERE identity = $1)`, identity).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("is originator: %w", err)
	}
	return exists, nil
}

func queryListOriginators(ctx context.Context, db executor) ([]*model.Originator, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT identity, authorized_by, authorized_at FROM originators ORDER BY authorized_at, identity`)
	if err != nil {
		return nil, fmt.Errorf("list originators: %w", err)
	}
	defer rows.Close()

	var originators []*model.Originator
	for rows.Next() {
		var o model.Originator
		if err := rows.Scan(&o.Identity, &o.AuthorizedBy, &o.AuthorizedAt); err != nil {
			return nil, fmt.Errorf("scan originator: %w", err)
		}
		originators = append(originators, &o)
	}
	return originators, rows.Err()
}

func queryRecordEvent(ctx context.Context, db executor, e *model.Event) error {
	return db.QueryRowContext(ctx, `
		INSERT INTO events (topic, asset_id, actor, payload, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`,
		e.Topic,
		e.AssetID,
		e.Actor,
		jsonbBytes(e.Payload),
	).Scan(&e.ID, &e.CreatedAt)
}

func queryGetEvents(ctx context.Context, db executor, assetID string) ([]*model.Event, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, topic, asset_id, actor, payload, created_at
		FROM events WHERE asset_id = $1 ORDER BY id`, assetID)
	if err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
