package kl

import (
	"errors"
	"testing"
)

func TestCheckGodThreshold_StrictCrossing(t *testing.T) {
	tests := []struct {
		name       string
		oldKL      int
		newKL      int
		wantCharge bool
	}{
		{"crosses threshold", 12, 13, true},
		{"crosses from well below", 0, 20, true},
		{"already at threshold", 13, 14, false},
		{"already above threshold", 15, 20, false},
		{"stays below", 10, 12, false},
		{"drops below", 14, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(0)
			pool.CheckGodThreshold(tt.oldKL, tt.newKL)

			wantCharges := 0
			if tt.wantCharge {
				wantCharges = 1
			}
			if pool.GodCharges != wantCharges {
				t.Errorf("GodCharges = %d, want %d", pool.GodCharges, wantCharges)
			}
			if pool.ThresholdTriggeredThisTurn != tt.wantCharge {
				t.Errorf("ThresholdTriggeredThisTurn = %v, want %v",
					pool.ThresholdTriggeredThisTurn, tt.wantCharge)
			}
		})
	}
}

func TestCheckGodThreshold_IdempotentPerTurn(t *testing.T) {
	pool := NewPool(0)

	pool.CheckGodThreshold(12, 13)
	pool.CheckGodThreshold(12, 13)
	if pool.GodCharges != 1 {
		t.Errorf("GodCharges after double check = %d, want 1", pool.GodCharges)
	}

	// A new turn resets the flag and allows another grant.
	pool.ResetThresholdTrigger()
	pool.CheckGodThreshold(10, 15)
	if pool.GodCharges != 2 {
		t.Errorf("GodCharges after new-turn crossing = %d, want 2", pool.GodCharges)
	}
}

func TestCheckGodThreshold_Cap(t *testing.T) {
	pool := NewPool(0)

	for i := 0; i < 5; i++ {
		pool.ResetThresholdTrigger()
		pool.CheckGodThreshold(12, 13)
	}
	if pool.GodCharges != MaxGodCharges {
		t.Errorf("GodCharges = %d, want cap %d", pool.GodCharges, MaxGodCharges)
	}
}

func TestCheckGodThreshold_WastedTriggerAtCap(t *testing.T) {
	pool := NewPool(0)
	pool.GodCharges = MaxGodCharges

	pool.CheckGodThreshold(12, 13)
	if pool.GodCharges != MaxGodCharges {
		t.Errorf("GodCharges = %d, want %d", pool.GodCharges, MaxGodCharges)
	}
	// The trigger flag is still marked even though no charge was granted.
	if !pool.ThresholdTriggeredThisTurn {
		t.Error("expected threshold trigger flag to be set at the cap")
	}
}

func TestCanSpendCharges(t *testing.T) {
	pool := NewPool(0)
	pool.GodCharges = 2

	tests := []struct {
		name   string
		amount int
		turn   int
		want   bool
	}{
		{"valid spend", 1, 4, true},
		{"full balance", 2, 5, true},
		{"zero amount", 0, 5, false},
		{"negative amount", -1, 5, false},
		{"before unlock turn", 1, 3, false},
		{"turn one", 2, 1, false},
		{"insufficient balance", 3, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pool.CanSpendCharges(tt.amount, tt.turn); got != tt.want {
				t.Errorf("CanSpendCharges(%d, %d) = %v, want %v",
					tt.amount, tt.turn, got, tt.want)
			}
		})
	}
}

func TestSpendCharges(t *testing.T) {
	pool := NewPool(0)
	pool.GodCharges = 3

	if err := pool.SpendCharges(2, 4); err != nil {
		t.Fatalf("SpendCharges(2, 4) failed: %v", err)
	}
	if pool.GodCharges != 1 {
		t.Errorf("GodCharges = %d, want 1", pool.GodCharges)
	}
}

func TestSpendCharges_FailuresAreAtomic(t *testing.T) {
	pool := NewPool(0)
	pool.GodCharges = 2

	for _, c := range []struct {
		amount int
		turn   int
	}{
		{1, 3},  // turn gate
		{3, 4},  // balance
		{0, 4},  // non-positive amount
		{-2, 4}, // negative amount
	} {
		err := pool.SpendCharges(c.amount, c.turn)
		if !errors.Is(err, ErrIllegalSpend) {
			t.Errorf("SpendCharges(%d, %d): got %v, want ErrIllegalSpend", c.amount, c.turn, err)
		}
		if pool.GodCharges != 2 {
			t.Errorf("failed spend mutated GodCharges to %d, want 2", pool.GodCharges)
		}
	}
}
