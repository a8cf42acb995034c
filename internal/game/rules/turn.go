// Package rules holds the turn-progression primitives the engine's state
// transitions are built on.
package rules

import "fmt"

// StartStep is one step of the start-of-turn phase.
type StartStep int

const (
	StepUntap StartStep = iota
	StepDraw
	StepResetThreshold
	StepRecalculateKL
)

var startStepNames = map[StartStep]string{
	StepUntap:          "UNTAP",
	StepDraw:           "DRAW",
	StepResetThreshold: "RESET_THRESHOLD",
	StepRecalculateKL:  "RECALCULATE_KL",
}

func (s StartStep) String() string {
	if name, ok := startStepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STEP_%d", int(s))
}

// startSequence is the fixed order the start phase runs in. Untap precedes
// draw, and the threshold flag is reset before the recalculation that may
// set it again.
var startSequence = []StartStep{
	StepUntap,
	StepDraw,
	StepResetThreshold,
	StepRecalculateKL,
}

// StartSequence returns the start-phase step order.
func StartSequence() []StartStep {
	sequence := make([]StartStep, len(startSequence))
	copy(sequence, startSequence)
	return sequence
}

// Rotation computes round-robin active-player rotation over a fixed player
// order.
type Rotation struct {
	order []string
}

// NewRotation creates a rotation over the given player order.
func NewRotation(order []string) *Rotation {
	return &Rotation{order: append([]string(nil), order...)}
}

// Next returns the player after current, wrapping after the last entry.
// When current cannot be located (a corrupted-state case), rotation defaults
// to the first player in the order.
func (r *Rotation) Next(current string) string {
	if len(r.order) == 0 {
		return ""
	}
	for i, id := range r.order {
		if id == current {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.order[0]
}
