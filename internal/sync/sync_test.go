package sync

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/openlend/loanledger/internal/model"
)

// mockDestination records calls to Write.
type mockDestination struct {
	writes atomic.Int64
	last   atomic.Value // []byte
}

func (d *mockDestination) Write(_ context.Context, data []byte) error {
	d.writes.Add(1)
	cp := make([]byte, len(data))
	copy(cp, data)
	d.last.Store(cp)
	return nil
}

func TestSchedulerStartStop(t *testing.T) {
	ms := newMockStore()
	now := time.Now().UTC()
	ms.assets["ln-1"] = &model.AssetRecord{
		ID: "ln-1", ExternalRef: "loan-1", Originator: "acme", TotalValue: 100000,
		Ownership: map[string]int64{"acme": 10000}, Status: model.StatusActive,
		CreatedAt: now, UpdatedAt: now,
	}
	ms.originators["acme"] = &model.Originator{Identity: "acme", AuthorizedBy: "admin", AuthorizedAt: now}

	dest := &mockDestination{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sched := NewScheduler(ms, []Destination{dest}, 50*time.Millisecond, logger)
	sched.Start()

	// Wait for at least the initial export + one tick.
	time.Sleep(120 * time.Millisecond)
	sched.Stop()

	if writes := dest.writes.Load(); writes < 2 {
		t.Fatalf("expected at least 2 writes, got %d", writes)
	}

	// Verify last written data is valid JSONL.
	data, ok := dest.last.Load().([]byte)
	if !ok || len(data) == 0 {
		t.Fatal("expected non-empty data")
	}

	lines := nonEmptyLines(string(data))
	// 1 header + 1 asset + 1 originator = 3
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	sched := NewScheduler(newMockStore(), nil, time.Minute, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	sched.Stop()
}
