package game

// Test helpers for building game states without going through the facade.

func testDeity(baseKL, essence int) CardData {
	return CardData{
		Name:            "Test Deity",
		Category:        CategoryDeity,
		BaseKL:          baseKL,
		StartingEssence: essence,
	}
}

func testSetup(id string, deck ...CardData) PlayerSetup {
	return PlayerSetup{
		ID:    id,
		Name:  id,
		Deity: testDeity(2, 20),
		Deck:  deck,
	}
}

// newDuelState builds a started-looking two-player state without running any
// turns: turn number and active player stay at their uninitialized values
// unless the test advances turns itself.
func newDuelState(t interface{ Fatalf(string, ...interface{}) }) *GameState {
	g, err := NewGameState([]PlayerSetup{testSetup("alice"), testSetup("bob")}, "alice")
	if err != nil {
		t.Fatalf("failed to build duel state: %v", err)
	}
	return g
}

func avatarCard(id, power, guard string, owner string) *Card {
	return &Card{
		ID:           id,
		Name:         id,
		Category:     CategoryAvatar,
		Power:        power,
		Guard:        guard,
		OwnerID:      owner,
		ControllerID: owner,
		Zone:         ZoneAvatarLine,
	}
}

func handCard(id, category string, cost int, owner string) *Card {
	return &Card{
		ID:           id,
		Name:         id,
		Category:     category,
		Cost:         cost,
		OwnerID:      owner,
		ControllerID: owner,
		Zone:         ZoneHand,
	}
}

// putInHand appends a card to the player's hand with its zone set.
func putInHand(p *Player, c *Card) *Card {
	c.Zone = ZoneHand
	p.Hand = append(p.Hand, c)
	return c
}

// putOnLine appends a card to the player's avatar line.
func putOnLine(p *Player, c *Card) *Card {
	c.Zone = ZoneAvatarLine
	p.AvatarLine = append(p.AvatarLine, c)
	return c
}
