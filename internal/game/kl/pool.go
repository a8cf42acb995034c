// Package kl implements the KL resource system: the per-turn resource pool
// recalculated at the start of each turn, and the God Charges banked by
// crossing the KL threshold.
package kl

import (
	"errors"
	"fmt"
)

const (
	// MaxKL is the upper clamp for a recalculated KL pool.
	MaxKL = 31

	// GodThreshold is the KL value whose strict crossing grants a God Charge.
	GodThreshold = 13

	// MaxGodCharges caps a player's banked God Charges.
	MaxGodCharges = 3

	// ChargeUnlockTurn is the first turn on which God Charges may be spent.
	ChargeUnlockTurn = 4
)

var (
	// ErrIllegalCost indicates a resource cost that cannot be paid, or a
	// negative cost (always an engine-data error).
	ErrIllegalCost = errors.New("illegal cost")

	// ErrIllegalSpend indicates a God Charge spend that violates the
	// turn-gate or balance precondition.
	ErrIllegalSpend = errors.New("illegal spend")
)

// Modifier is an extension point feeding extra KL into Recalculate.
// Card effects register modifiers here instead of changing the base formula.
type Modifier func() int

// Pool holds a player's KL resource state.
type Pool struct {
	Base    int
	Current int

	GodCharges                 int
	ThresholdTriggeredThisTurn bool

	// StaticModifiers contribute to every recalculation.
	StaticModifiers []Modifier
	// StartOfTurnModifiers contribute to the start-of-turn recalculation.
	StartOfTurnModifiers []Modifier
}

// NewPool creates a pool with the given base value and an empty current pool.
func NewPool(base int) *Pool {
	return &Pool{Base: base}
}

// Recalculate returns the KL total for the current board: base value plus one
// per shard, plus the modifier hooks, clamped to [0, MaxKL]. It has no side
// effects; the caller assigns the result.
func (p *Pool) Recalculate(shardCount int) int {
	total := p.Base + shardCount
	for _, m := range p.StaticModifiers {
		total += m()
	}
	for _, m := range p.StartOfTurnModifiers {
		total += m()
	}
	if total < 0 {
		return 0
	}
	if total > MaxKL {
		return MaxKL
	}
	return total
}

// Pay deducts a card cost from the current pool. The cost is validated before
// any mutation, so a failed payment leaves the pool unchanged.
func (p *Pool) Pay(cost int) error {
	if cost < 0 {
		return fmt.Errorf("negative cost %d: %w", cost, ErrIllegalCost)
	}
	if cost > p.Current {
		return fmt.Errorf("cost %d exceeds available KL %d: %w", cost, p.Current, ErrIllegalCost)
	}
	p.Current -= cost
	return nil
}

// ResetThresholdTrigger clears the per-turn threshold flag. Called once per
// start phase, before the recalculation.
func (p *Pool) ResetThresholdTrigger() {
	p.ThresholdTriggeredThisTurn = false
}
