package game

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/pantheon-tcg/pantheon-server-go/internal/game/kl"
)

// Card categories. Category is free-form external data; these are the values
// the engine itself cares about.
const (
	CategoryDeity  = "Deity"
	CategoryDomain = "Domain"
	CategoryShard  = "Shard"
	CategoryAvatar = "Avatar"
	CategoryRelic  = "Relic"
)

// CardData is the externally supplied definition a card instance is built
// from. Power and Guard are strings so that "no stated value" is
// distinguishable from zero.
type CardData struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Subtypes []string `json:"subtypes,omitempty"`
	Domain   string   `json:"domain,omitempty"`
	Cost     int      `json:"cost"`
	Power    string   `json:"power,omitempty"`
	Guard    string   `json:"guard,omitempty"`

	// Deity-only attributes.
	StartingEssence int `json:"starting_essence,omitempty"`
	BaseKL          int `json:"base_kl,omitempty"`

	Abilities []string `json:"abilities,omitempty"`
	Token     bool     `json:"token,omitempty"`
}

// Card is a single card instance owned by exactly one player. It is created
// once, mutated in place by movement and combat, and never deleted: leaving
// play means relocation to the Crypt or Null zone.
type Card struct {
	ID       string
	Name     string
	Category string
	Subtypes []string
	Domain   string
	Cost     int
	Power    string
	Guard    string

	StartingEssence int
	BaseKL          int

	Abilities []string
	Token     bool

	OwnerID      string
	ControllerID string
	Zone         Zone
	DamageMarked int
	Tapped       bool
	Modifiers    []string
}

// NewCard builds a card instance from external card data. Instance ids are
// generated when the data supplies none.
func NewCard(data CardData, ownerID string) *Card {
	id := data.ID
	if id == "" {
		id = uuid.New().String()
	}
	return &Card{
		ID:              id,
		Name:            data.Name,
		Category:        data.Category,
		Subtypes:        append([]string(nil), data.Subtypes...),
		Domain:          data.Domain,
		Cost:            data.Cost,
		Power:           data.Power,
		Guard:           data.Guard,
		StartingEssence: data.StartingEssence,
		BaseKL:          data.BaseKL,
		Abilities:       append([]string(nil), data.Abilities...),
		Token:           data.Token,
		OwnerID:         ownerID,
		ControllerID:    ownerID,
	}
}

// PowerValue returns the card's combat power; an unstated power is 0.
func (c *Card) PowerValue() int {
	if v, err := strconv.Atoi(c.Power); err == nil {
		return v
	}
	return 0
}

// GuardValue returns the card's damage-resistance threshold; a card with no
// stated guard dies to any damage.
func (c *Card) GuardValue() int {
	if v, err := strconv.Atoi(c.Guard); err == nil {
		return v
	}
	return 1
}

// Player is one participant. Zone containers exclusively own their cards; a
// card appears in exactly one container at a time, matching its Zone field.
type Player struct {
	ID    string
	Name  string
	Deity *Card

	Essence int
	KL      *kl.Pool

	Hand         []*Card
	VeiledDeck   []*Card
	Crypt        []*Card
	Null         []*Card
	Domain       *Card
	ShardRow     []*Card
	AvatarLine   []*Card
	RelicSupport []*Card

	TurnsTaken int
}

// PlayerSetup is the external data a player is built from.
type PlayerSetup struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Deity CardData   `json:"deity"`
	Deck  []CardData `json:"deck"`
}

// NewPlayer builds a player from setup data: the deity is fixed for the
// game, essence and base KL come from it, and the deck order is preserved
// (draws come from the front).
func NewPlayer(setup PlayerSetup) (*Player, error) {
	if setup.ID == "" {
		return nil, fmt.Errorf("player setup missing id: %w", ErrInvalidConfiguration)
	}

	deity := NewCard(setup.Deity, setup.ID)
	deity.Zone = ZoneDeity

	p := &Player{
		ID:         setup.ID,
		Name:       setup.Name,
		Deity:      deity,
		Essence:    deity.StartingEssence,
		KL:         kl.NewPool(deity.BaseKL),
		VeiledDeck: make([]*Card, 0, len(setup.Deck)),
	}

	for _, data := range setup.Deck {
		card := NewCard(data, setup.ID)
		card.Zone = ZoneVeiledDeck
		p.VeiledDeck = append(p.VeiledDeck, card)
	}

	return p, nil
}

// GameState is the root aggregate. Player order defines turn rotation;
// TurnNumber 0 means the game has not started and the active player is unset.
type GameState struct {
	Players        []*Player
	ActivePlayerID string
	FirstPlayerID  string
	TurnNumber     int
}

// NewGameState builds a game from one or more player setups. firstPlayerID
// defaults to the first setup's id when empty.
func NewGameState(setups []PlayerSetup, firstPlayerID string) (*GameState, error) {
	if len(setups) == 0 {
		return nil, fmt.Errorf("no players supplied: %w", ErrInvalidConfiguration)
	}

	g := &GameState{Players: make([]*Player, 0, len(setups))}
	seen := make(map[string]bool, len(setups))
	for _, setup := range setups {
		if seen[setup.ID] {
			return nil, fmt.Errorf("duplicate player id %q: %w", setup.ID, ErrInvalidConfiguration)
		}
		seen[setup.ID] = true

		p, err := NewPlayer(setup)
		if err != nil {
			return nil, err
		}
		g.Players = append(g.Players, p)
	}

	if firstPlayerID == "" {
		firstPlayerID = g.Players[0].ID
	}
	if !seen[firstPlayerID] {
		return nil, fmt.Errorf("first player %q is not in the game: %w", firstPlayerID, ErrInvalidConfiguration)
	}
	g.FirstPlayerID = firstPlayerID

	return g, nil
}

// Player returns the player with the given id.
func (g *GameState) Player(id string) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
}

// ActivePlayer returns the player whose turn it is. It fails when the game
// has not started or the active player id no longer resolves.
func (g *GameState) ActivePlayer() (*Player, error) {
	if g.ActivePlayerID == "" {
		return nil, fmt.Errorf("no active player: %w", ErrNotFound)
	}
	return g.Player(g.ActivePlayerID)
}

// Opponent returns the single other player in a strictly two-player game.
func (g *GameState) Opponent(playerID string) (*Player, error) {
	if len(g.Players) != 2 {
		return nil, fmt.Errorf("opponent lookup requires exactly 2 players, have %d: %w",
			len(g.Players), ErrInvalidConfiguration)
	}
	if _, err := g.Player(playerID); err != nil {
		return nil, err
	}
	for _, p := range g.Players {
		if p.ID != playerID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("opponent of %s: %w", playerID, ErrNotFound)
}

// SpendGodCharges spends a player's banked God Charges, gated on the current
// turn number.
func (g *GameState) SpendGodCharges(playerID string, amount int) error {
	p, err := g.Player(playerID)
	if err != nil {
		return err
	}
	return p.KL.SpendCharges(amount, g.TurnNumber)
}

func (g *GameState) playerOrder() []string {
	order := make([]string, len(g.Players))
	for i, p := range g.Players {
		order[i] = p.ID
	}
	return order
}
