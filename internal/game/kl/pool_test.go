package kl

import (
	"errors"
	"testing"
)

func TestPool_Recalculate(t *testing.T) {
	tests := []struct {
		name       string
		base       int
		shardCount int
		want       int
	}{
		{"base only", 3, 0, 3},
		{"base plus shards", 3, 4, 7},
		{"clamped at max", 20, 20, MaxKL},
		{"exactly max", 30, 1, MaxKL},
		{"negative base clamped at zero", -5, 2, 0},
		{"zero everything", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.base)
			got := pool.Recalculate(tt.shardCount)
			if got != tt.want {
				t.Errorf("Recalculate(%d) with base %d = %d, want %d",
					tt.shardCount, tt.base, got, tt.want)
			}
		})
	}
}

func TestPool_RecalculateHasNoSideEffects(t *testing.T) {
	pool := NewPool(5)
	pool.Current = 2

	got := pool.Recalculate(3)
	if got != 8 {
		t.Errorf("Recalculate(3) = %d, want 8", got)
	}
	if pool.Current != 2 {
		t.Errorf("Recalculate mutated Current to %d, want 2", pool.Current)
	}

	// Re-running with the same inputs yields the same result.
	if again := pool.Recalculate(3); again != got {
		t.Errorf("second Recalculate(3) = %d, want %d", again, got)
	}
}

func TestPool_RecalculateModifiers(t *testing.T) {
	pool := NewPool(2)
	pool.StaticModifiers = append(pool.StaticModifiers, func() int { return 3 })
	pool.StartOfTurnModifiers = append(pool.StartOfTurnModifiers, func() int { return 1 })

	if got := pool.Recalculate(1); got != 7 {
		t.Errorf("Recalculate(1) with modifiers = %d, want 7", got)
	}

	// Modifier output is clamped like everything else.
	pool.StaticModifiers = append(pool.StaticModifiers, func() int { return 100 })
	if got := pool.Recalculate(0); got != MaxKL {
		t.Errorf("Recalculate(0) with large modifier = %d, want %d", got, MaxKL)
	}
}

func TestPool_Pay(t *testing.T) {
	pool := NewPool(5)
	pool.Current = 5

	if err := pool.Pay(3); err != nil {
		t.Fatalf("Pay(3) failed: %v", err)
	}
	if pool.Current != 2 {
		t.Errorf("Current after Pay(3) = %d, want 2", pool.Current)
	}

	if err := pool.Pay(0); err != nil {
		t.Fatalf("Pay(0) failed: %v", err)
	}
	if pool.Current != 2 {
		t.Errorf("Current after Pay(0) = %d, want 2", pool.Current)
	}
}

func TestPool_PayInsufficient(t *testing.T) {
	pool := NewPool(5)
	pool.Current = 2

	err := pool.Pay(3)
	if !errors.Is(err, ErrIllegalCost) {
		t.Fatalf("Pay(3) with 2 KL: got %v, want ErrIllegalCost", err)
	}
	if pool.Current != 2 {
		t.Errorf("failed payment mutated Current to %d, want 2", pool.Current)
	}
}

func TestPool_PayNegativeCost(t *testing.T) {
	pool := NewPool(5)
	pool.Current = 5

	err := pool.Pay(-1)
	if !errors.Is(err, ErrIllegalCost) {
		t.Fatalf("Pay(-1): got %v, want ErrIllegalCost", err)
	}
	if pool.Current != 5 {
		t.Errorf("failed payment mutated Current to %d, want 5", pool.Current)
	}
}
