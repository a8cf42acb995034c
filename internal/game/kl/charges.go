package kl

import "fmt"

// CheckGodThreshold grants a God Charge when the recalculated KL strictly
// crosses the threshold (oldKL below it, newKL at or above it). The per-turn
// trigger flag makes the check idempotent within a turn: a second crossing in
// the same turn is a no-op. A player already at the charge cap still marks
// the trigger but gains nothing.
func (p *Pool) CheckGodThreshold(oldKL, newKL int) {
	if p.ThresholdTriggeredThisTurn {
		return
	}
	if oldKL >= GodThreshold || newKL < GodThreshold {
		return
	}
	p.ThresholdTriggeredThisTurn = true
	if p.GodCharges < MaxGodCharges {
		p.GodCharges++
	}
}

// CanSpendCharges reports whether amount God Charges may be spent on the
// given turn. Charges are frozen until ChargeUnlockTurn regardless of when
// they were earned.
func (p *Pool) CanSpendCharges(amount, turnNumber int) bool {
	if amount <= 0 {
		return false
	}
	if turnNumber < ChargeUnlockTurn {
		return false
	}
	return p.GodCharges >= amount
}

// SpendCharges deducts amount God Charges. There are no partial spends: the
// full precondition is checked first and a failure changes nothing.
func (p *Pool) SpendCharges(amount, turnNumber int) error {
	if !p.CanSpendCharges(amount, turnNumber) {
		return fmt.Errorf("cannot spend %d god charges on turn %d (have %d): %w",
			amount, turnNumber, p.GodCharges, ErrIllegalSpend)
	}
	p.GodCharges -= amount
	return nil
}
