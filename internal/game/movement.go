package game

import "fmt"

// Movement operations relocate cards between zones. Cost payment happens
// after the card is located but before it is moved, so any failure leaves
// the card in its pre-call zone and the player's KL untouched.

// PlayDomain plays a Domain card from hand. An existing domain occupant is
// unconditionally relocated to the Crypt first; replacement is not a player
// choice.
func (g *GameState) PlayDomain(playerID, cardID string) error {
	p, err := g.Player(playerID)
	if err != nil {
		return err
	}

	card := findCard(handAccessor.cards(p), cardID)
	if card == nil {
		return fmt.Errorf("card %s in hand of %s: %w", cardID, playerID, ErrNotFound)
	}

	if err := p.KL.Pay(card.Cost); err != nil {
		return fmt.Errorf("play domain %s: %w", cardID, err)
	}

	if prev := p.Domain; prev != nil {
		domainAccessor.remove(p, prev.ID)
		prev.Zone = ZoneCrypt
		cryptAccessor.add(p, prev)
	}

	handAccessor.remove(p, cardID)
	card.Zone = ZoneDomain
	card.ControllerID = playerID
	domainAccessor.add(p, card)
	return nil
}

// PlayShard plays a card from hand to the shard row.
func (g *GameState) PlayShard(playerID, cardID string) error {
	return g.playToRow(playerID, cardID, shardRowAccessor)
}

// PlayAvatar plays a card from hand to the avatar line.
func (g *GameState) PlayAvatar(playerID, cardID string) error {
	return g.playToRow(playerID, cardID, avatarLineAccessor)
}

// PlayRelicOrSupport plays a card from hand to the relic/support zone.
func (g *GameState) PlayRelicOrSupport(playerID, cardID string) error {
	return g.playToRow(playerID, cardID, relicAccessor)
}

func (g *GameState) playToRow(playerID, cardID string, dest zoneAccessor) error {
	p, err := g.Player(playerID)
	if err != nil {
		return err
	}

	card := findCard(handAccessor.cards(p), cardID)
	if card == nil {
		return fmt.Errorf("card %s in hand of %s: %w", cardID, playerID, ErrNotFound)
	}

	if err := p.KL.Pay(card.Cost); err != nil {
		return fmt.Errorf("play %s to %s: %w", cardID, dest.zone, err)
	}

	handAccessor.remove(p, cardID)
	card.Zone = dest.zone
	card.ControllerID = playerID
	dest.add(p, card)
	return nil
}

// SendToCrypt relocates a card in play to the Crypt. Board zones are searched
// in a fixed order: shard row, avatar line, relic/support, domain. Hand and
// deck are not searched.
func (g *GameState) SendToCrypt(playerID, cardID string) error {
	p, err := g.Player(playerID)
	if err != nil {
		return err
	}

	for _, acc := range boardZones {
		if card := acc.remove(p, cardID); card != nil {
			card.Zone = ZoneCrypt
			cryptAccessor.add(p, card)
			return nil
		}
	}
	return fmt.Errorf("card %s on board of %s: %w", cardID, playerID, ErrNotFound)
}

// SendToNull banishes a card to the Null zone, searching the hand first and
// then the board zones in the same order SendToCrypt uses.
func (g *GameState) SendToNull(playerID, cardID string) error {
	p, err := g.Player(playerID)
	if err != nil {
		return err
	}

	for _, acc := range nullSearchZones {
		if card := acc.remove(p, cardID); card != nil {
			card.Zone = ZoneNull
			nullAccessor.add(p, card)
			return nil
		}
	}
	return fmt.Errorf("card %s of %s: %w", cardID, playerID, ErrNotFound)
}

func findCard(cards []*Card, cardID string) *Card {
	for _, c := range cards {
		if c.ID == cardID {
			return c
		}
	}
	return nil
}
