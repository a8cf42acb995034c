package game

import (
	"fmt"

	"github.com/pantheon-tcg/pantheon-server-go/internal/game/rules"
)

// AdvanceTurn moves the game to the next turn and runs the start phase for
// the new active player. From the uninitialized state (turn 0) it begins the
// game: turn 1, active player = designated first player. Afterwards it
// increments the turn number and rotates the active player through the
// player order, cyclically.
func (g *GameState) AdvanceTurn() error {
	if len(g.Players) == 0 {
		return fmt.Errorf("no players in game: %w", ErrInvalidConfiguration)
	}

	if g.TurnNumber == 0 {
		g.TurnNumber = 1
		g.ActivePlayerID = g.FirstPlayerID
	} else {
		g.TurnNumber++
		g.ActivePlayerID = rules.NewRotation(g.playerOrder()).Next(g.ActivePlayerID)
	}

	active, err := g.ActivePlayer()
	if err != nil {
		return err
	}

	g.runStartPhase(active)
	return nil
}

// runStartPhase executes the fixed start-of-turn sequence for the new active
// player: untap, draw, threshold-flag reset, KL recalculation.
func (g *GameState) runStartPhase(p *Player) {
	for _, step := range rules.StartSequence() {
		switch step {
		case rules.StepUntap:
			g.untapStep(p)
		case rules.StepDraw:
			g.drawStep(p)
		case rules.StepResetThreshold:
			p.KL.ResetThresholdTrigger()
		case rules.StepRecalculateKL:
			oldKL := p.KL.Current
			newKL := p.KL.Recalculate(len(p.ShardRow))
			p.KL.Current = newKL
			p.KL.CheckGodThreshold(oldKL, newKL)
		}
	}
	p.TurnsTaken++
}

// untapStep clears tapped on the domain occupant and every card in the three
// board rows.
func (g *GameState) untapStep(p *Player) {
	for _, acc := range boardZones {
		for _, card := range acc.cards(p) {
			card.Tapped = false
		}
	}
}

// drawStep moves the front card of the veiled deck into hand. The designated
// first player skips their turn-1 draw, and an empty deck is a no-op rather
// than a failure.
func (g *GameState) drawStep(p *Player) {
	if g.TurnNumber == 1 && p.ID == g.FirstPlayerID {
		return
	}
	if len(p.VeiledDeck) == 0 {
		return
	}
	card := p.VeiledDeck[0]
	p.VeiledDeck = p.VeiledDeck[1:]
	card.Zone = ZoneHand
	p.Hand = append(p.Hand, card)
}
