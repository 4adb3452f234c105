package ledger

import (
	"errors"
	"testing"

	"github.com/openlend/loanledger/internal/model"
)

func activeAsset(ownership map[string]int64) *model.AssetRecord {
	return &model.AssetRecord{
		ID:          "ln-test1",
		ExternalRef: "LOAN-1",
		Originator:  "acme",
		TotalValue:  1_000_000,
		Ownership:   ownership,
		Status:      model.StatusActive,
	}
}

func TestApplyTransfer_SplitsShare(t *testing.T) {
	a := activeAsset(map[string]int64{"acme": 10000})
	if err := ApplyTransfer(a, "acme", "fund-1", 2500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Ownership["acme"] != 7500 || a.Ownership["fund-1"] != 2500 {
		t.Fatalf("unexpected ownership: %v", a.Ownership)
	}
}

func TestApplyTransfer_ExactShareRemovesSender(t *testing.T) {
	a := activeAsset(map[string]int64{"acme": 7000, "fund-1": 3000})
	if err := ApplyTransfer(a, "fund-1", "fund-2", 3000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.Ownership["fund-1"]; ok {
		t.Error("expected fund-1 removed from ownership table after selling full share")
	}
	if a.Ownership["fund-2"] != 3000 {
		t.Errorf("fund-2 share = %d, want 3000", a.Ownership["fund-2"])
	}
}

func TestApplyTransfer_MergesIntoExistingHolder(t *testing.T) {
	a := activeAsset(map[string]int64{"acme": 6000, "fund-1": 4000})
	if err := ApplyTransfer(a, "acme", "fund-1", 1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Ownership["fund-1"] != 5000 {
		t.Errorf("fund-1 share = %d, want 5000", a.Ownership["fund-1"])
	}
}

func TestApplyTransfer_InsufficientOwnershipBoundary(t *testing.T) {
	a := activeAsset(map[string]int64{"acme": 7000, "fund-1": 3000})
	err := ApplyTransfer(a, "fund-1", "fund-2", 3001)
	if !errors.Is(err, ErrInsufficientOwnership) {
		t.Fatalf("expected ErrInsufficientOwnership, got %v", err)
	}
	// Table unchanged on rejection.
	if a.Ownership["fund-1"] != 3000 || a.Ownership["acme"] != 7000 {
		t.Errorf("ownership mutated on failed transfer: %v", a.Ownership)
	}
}

func TestApplyTransfer_UnknownSender(t *testing.T) {
	a := activeAsset(map[string]int64{"acme": 10000})
	if err := ApplyTransfer(a, "stranger", "fund-1", 100); !errors.Is(err, ErrInsufficientOwnership) {
		t.Fatalf("expected ErrInsufficientOwnership, got %v", err)
	}
}

func TestApplyTransfer_FractionBounds(t *testing.T) {
	for _, bp := range []int64{0, -1, 10001} {
		a := activeAsset(map[string]int64{"acme": 10000})
		if err := ApplyTransfer(a, "acme", "fund-1", bp); !errors.Is(err, ErrInvalidFraction) {
			t.Errorf("ApplyTransfer with %d basis points: expected ErrInvalidFraction, got %v", bp, err)
		}
	}
}

func TestApplyTransfer_SelfTransfer(t *testing.T) {
	a := activeAsset(map[string]int64{"acme": 10000})
	if err := ApplyTransfer(a, "acme", "acme", 100); !errors.Is(err, ErrInvalidTransfer) {
		t.Fatalf("expected ErrInvalidTransfer, got %v", err)
	}
}

func TestApplyTransfer_NotTradeable(t *testing.T) {
	for _, st := range []model.Status{model.StatusSettled, model.StatusDefaulted, model.StatusRestructured} {
		a := activeAsset(map[string]int64{"acme": 10000})
		a.Status = st
		if err := ApplyTransfer(a, "acme", "fund-1", 100); !errors.Is(err, ErrAssetNotTradeable) {
			t.Errorf("status %s: expected ErrAssetNotTradeable, got %v", st, err)
		}
	}
}

func TestApplyTransfer_ChecksPrecedence(t *testing.T) {
	// Tradeability is checked before fraction bounds.
	a := activeAsset(map[string]int64{"acme": 10000})
	a.Status = model.StatusDefaulted
	if err := ApplyTransfer(a, "acme", "fund-1", 0); !errors.Is(err, ErrAssetNotTradeable) {
		t.Fatalf("expected ErrAssetNotTradeable to win over ErrInvalidFraction, got %v", err)
	}
	// Fraction bounds are checked before sender share.
	a = activeAsset(map[string]int64{"acme": 10000})
	if err := ApplyTransfer(a, "stranger", "fund-1", 10001); !errors.Is(err, ErrInvalidFraction) {
		t.Fatalf("expected ErrInvalidFraction to win over ErrInsufficientOwnership, got %v", err)
	}
	// Sender share is checked before self-transfer.
	a = activeAsset(map[string]int64{"acme": 10000})
	if err := ApplyTransfer(a, "stranger", "stranger", 100); !errors.Is(err, ErrInsufficientOwnership) {
		t.Fatalf("expected ErrInsufficientOwnership to win over ErrInvalidTransfer, got %v", err)
	}
}

func TestApplyTransfer_ConservationAfterManyTransfers(t *testing.T) {
	a := activeAsset(map[string]int64{"acme": 10000})
	steps := []struct {
		from, to string
		bp       int64
	}{
		{"acme", "fund-1", 2500},
		{"acme", "fund-2", 1000},
		{"fund-1", "fund-2", 500},
		{"fund-2", "acme", 1500},
		{"acme", "fund-3", 8000},
	}
	for i, s := range steps {
		if err := ApplyTransfer(a, s.from, s.to, s.bp); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if sum := Sum(a.Ownership); sum != model.TotalBasisPoints {
			t.Fatalf("step %d: ownership sums to %d", i, sum)
		}
	}
}

func TestCheckInvariant(t *testing.T) {
	if err := CheckInvariant("ln-1", map[string]int64{"a": 4000, "b": 6000}); err != nil {
		t.Errorf("unexpected error for valid table: %v", err)
	}

	err := CheckInvariant("ln-1", map[string]int64{"a": 4000, "b": 5000})
	var ce *ConsistencyError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConsistencyError, got %v", err)
	}
	if ce.Sum != 9000 || ce.AssetID != "ln-1" {
		t.Errorf("unexpected consistency error: %+v", ce)
	}

	if err := CheckInvariant("ln-1", map[string]int64{"a": 10500, "b": -500}); err == nil {
		t.Error("expected error for negative share")
	}
}

func TestReplay_ReproducesOwnership(t *testing.T) {
	history := []*model.TransferEvent{
		{AssetID: "ln-1", From: "acme", To: "fund-1", BasisPoints: 2500, Sequence: 1},
		{AssetID: "ln-1", From: "fund-1", To: "fund-2", BasisPoints: 1000, Sequence: 2},
		{AssetID: "ln-1", From: "acme", To: "fund-2", BasisPoints: 7500, Sequence: 3},
	}
	got, err := Replay("ln-1", "acme", history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]int64{"fund-1": 1500, "fund-2": 8500}
	if !Equal(got, want) {
		t.Errorf("replayed ownership = %v, want %v", got, want)
	}
}

func TestReplay_EmptyHistoryIsOriginator(t *testing.T) {
	got, err := Replay("ln-1", "acme", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(got, map[string]int64{"acme": 10000}) {
		t.Errorf("replayed ownership = %v, want 100%% to originator", got)
	}
}

func TestReplay_SequenceGap(t *testing.T) {
	history := []*model.TransferEvent{
		{AssetID: "ln-1", From: "acme", To: "fund-1", BasisPoints: 2500, Sequence: 1},
		{AssetID: "ln-1", From: "acme", To: "fund-2", BasisPoints: 1000, Sequence: 3},
	}
	if _, err := Replay("ln-1", "acme", history); err == nil {
		t.Error("expected error for sequence gap")
	}
}

func TestReplay_OverdrawnHistory(t *testing.T) {
	history := []*model.TransferEvent{
		{AssetID: "ln-1", From: "acme", To: "fund-1", BasisPoints: 8000, Sequence: 1},
		{AssetID: "ln-1", From: "acme", To: "fund-2", BasisPoints: 8000, Sequence: 2},
	}
	if _, err := Replay("ln-1", "acme", history); err == nil {
		t.Error("expected error for history that overdraws a holder")
	}
}

func TestReplay_WrongAsset(t *testing.T) {
	history := []*model.TransferEvent{
		{AssetID: "ln-2", From: "acme", To: "fund-1", BasisPoints: 100, Sequence: 1},
	}
	if _, err := Replay("ln-1", "acme", history); err == nil {
		t.Error("expected error for event from another asset")
	}
}

func TestEqual(t *testing.T) {
	for _, tc := range []struct {
		a, b map[string]int64
		want bool
	}{
		{map[string]int64{"x": 1}, map[string]int64{"x": 1}, true},
		{map[string]int64{"x": 1}, map[string]int64{"x": 2}, false},
		{map[string]int64{"x": 1}, map[string]int64{"y": 1}, false},
		{map[string]int64{}, map[string]int64{}, true},
		{map[string]int64{"x": 1}, map[string]int64{"x": 1, "y": 2}, false},
	} {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
