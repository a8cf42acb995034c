package game

import "errors"

var (
	// ErrNotFound indicates a referenced game, player, card, or zone
	// occupant does not exist where expected.
	ErrNotFound = errors.New("not found")

	// ErrInvalidConfiguration indicates a game was created without players,
	// or an operation requires exactly two players but more or fewer are
	// present.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
