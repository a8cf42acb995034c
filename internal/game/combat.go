package game

import "fmt"

// AttackAssignment pairs one attacker with an optional blocker. An empty
// BlockerID means the attack is unblocked.
type AttackAssignment struct {
	AttackerID string `json:"attacker_id"`
	BlockerID  string `json:"blocker_id,omitempty"`
}

// ResolveCombat resolves a declared attack in a single shot:
//
//  1. Every attacker and blocker is resolved on its owner's avatar line
//     before anything is mutated, then all attackers tap at once.
//  2. Blocked pairs deal damage simultaneously: each side's power is marked
//     on the other. Unblocked attacker power accumulates into one total
//     instead of being applied per attacker.
//  3. The unblocked total is subtracted from the defending player's essence
//     in one step, floored at 0.
//  4. Both avatar lines are re-scanned for cards whose marked damage meets
//     their guard; the dead are relocated to the Crypt.
//
// Death is evaluated only after all combat damage has been applied, so
// damage from different attackers in the same combat stacks before any card
// leaves the line.
func (g *GameState) ResolveCombat(attackingPlayerID, defendingPlayerID string, assignments []AttackAssignment) error {
	attacker, err := g.Player(attackingPlayerID)
	if err != nil {
		return err
	}
	defender, err := g.Player(defendingPlayerID)
	if err != nil {
		return err
	}

	attackers := make([]*Card, len(assignments))
	blockers := make([]*Card, len(assignments))
	for i, a := range assignments {
		card := findCard(attacker.AvatarLine, a.AttackerID)
		if card == nil {
			return fmt.Errorf("attacker %s on avatar line of %s: %w",
				a.AttackerID, attackingPlayerID, ErrNotFound)
		}
		attackers[i] = card

		if a.BlockerID == "" {
			continue
		}
		blocker := findCard(defender.AvatarLine, a.BlockerID)
		if blocker == nil {
			return fmt.Errorf("blocker %s on avatar line of %s: %w",
				a.BlockerID, defendingPlayerID, ErrNotFound)
		}
		blockers[i] = blocker
	}

	for _, atk := range attackers {
		atk.Tapped = true
	}

	unblocked := 0
	for i, atk := range attackers {
		blocker := blockers[i]
		if blocker == nil {
			unblocked += atk.PowerValue()
			continue
		}

		// Simultaneous damage: both marks land regardless of either
		// creature's fate.
		blocker.DamageMarked += atk.PowerValue()
		atk.DamageMarked += blocker.PowerValue()
	}

	defender.Essence -= unblocked
	if defender.Essence < 0 {
		defender.Essence = 0
	}

	for _, p := range []*Player{attacker, defender} {
		if err := g.sweepDead(p); err != nil {
			return err
		}
	}
	return nil
}

// sweepDead relocates every lethally damaged card on the player's avatar
// line to the Crypt. The dead ids are snapshotted before any relocation so
// the scan never iterates a line being mutated.
func (g *GameState) sweepDead(p *Player) error {
	var dead []string
	for _, card := range p.AvatarLine {
		if card.DamageMarked >= card.GuardValue() {
			dead = append(dead, card.ID)
		}
	}
	for _, id := range dead {
		if err := g.SendToCrypt(p.ID, id); err != nil {
			return err
		}
	}
	return nil
}
