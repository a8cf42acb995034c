package game

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Options configures engine-level game setup behavior.
type Options struct {
	// OpeningHandSize is the number of cards each player draws when a game
	// starts, before turn 1. The designated first player's turn-1 draw skip
	// is unaffected. 0 disables opening hands.
	OpeningHandSize int
}

// Engine is the external facade over the rules core. It hosts any number of
// games; each game's state is single-writer, guarded by a per-game lock, and
// every operation runs to completion before returning.
type Engine struct {
	logger *zap.Logger
	opts   Options

	mu    sync.RWMutex
	games map[string]*gameSession
}

type gameSession struct {
	mu    sync.Mutex
	state *GameState
}

// NewEngine creates a new engine.
func NewEngine(logger *zap.Logger, opts Options) *Engine {
	return &Engine{
		logger: logger,
		opts:   opts,
		games:  make(map[string]*gameSession),
	}
}

// StartGame builds the initial game state from externally supplied player
// setups. The game begins uninitialized: turn 0, no active player until the
// first AdvanceTurn. firstPlayerID defaults to the first setup's id.
func (e *Engine) StartGame(gameID string, setups []PlayerSetup, firstPlayerID string) error {
	state, err := NewGameState(setups, firstPlayerID)
	if err != nil {
		return err
	}

	for _, p := range state.Players {
		for i := 0; i < e.opts.OpeningHandSize && len(p.VeiledDeck) > 0; i++ {
			card := p.VeiledDeck[0]
			p.VeiledDeck = p.VeiledDeck[1:]
			card.Zone = ZoneHand
			p.Hand = append(p.Hand, card)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.games[gameID]; exists {
		return fmt.Errorf("game %s already exists: %w", gameID, ErrInvalidConfiguration)
	}
	e.games[gameID] = &gameSession{state: state}

	e.logger.Info("game started",
		zap.String("game_id", gameID),
		zap.Int("players", len(state.Players)),
		zap.String("first_player", state.FirstPlayerID),
	)
	return nil
}

// EndGame removes a game from the engine.
func (e *Engine) EndGame(gameID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.games[gameID]; !exists {
		return fmt.Errorf("game %s: %w", gameID, ErrNotFound)
	}
	delete(e.games, gameID)
	e.logger.Info("game ended", zap.String("game_id", gameID))
	return nil
}

func (e *Engine) session(gameID string) (*gameSession, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrNotFound)
	}
	return s, nil
}

// withGame runs op against the named game's state under its lock.
func (e *Engine) withGame(gameID string, op func(*GameState) error) error {
	s, err := e.session(gameID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return op(s.state)
}

// AdvanceTurn advances the named game to its next turn.
func (e *Engine) AdvanceTurn(gameID string) error {
	err := e.withGame(gameID, func(g *GameState) error {
		if err := g.AdvanceTurn(); err != nil {
			return err
		}
		e.logger.Debug("turn advanced",
			zap.String("game_id", gameID),
			zap.Int("turn", g.TurnNumber),
			zap.String("active_player", g.ActivePlayerID),
		)
		return nil
	})
	return err
}

// PlayDomain plays a domain card from the player's hand.
func (e *Engine) PlayDomain(gameID, playerID, cardID string) error {
	return e.playCard(gameID, playerID, cardID, "domain",
		func(g *GameState) error { return g.PlayDomain(playerID, cardID) })
}

// PlayShard plays a shard from the player's hand.
func (e *Engine) PlayShard(gameID, playerID, cardID string) error {
	return e.playCard(gameID, playerID, cardID, "shard",
		func(g *GameState) error { return g.PlayShard(playerID, cardID) })
}

// PlayAvatar plays an avatar from the player's hand.
func (e *Engine) PlayAvatar(gameID, playerID, cardID string) error {
	return e.playCard(gameID, playerID, cardID, "avatar",
		func(g *GameState) error { return g.PlayAvatar(playerID, cardID) })
}

// PlayRelicOrSupport plays a relic or support card from the player's hand.
func (e *Engine) PlayRelicOrSupport(gameID, playerID, cardID string) error {
	return e.playCard(gameID, playerID, cardID, "relic_support",
		func(g *GameState) error { return g.PlayRelicOrSupport(playerID, cardID) })
}

func (e *Engine) playCard(gameID, playerID, cardID, kind string, op func(*GameState) error) error {
	err := e.withGame(gameID, op)
	if err != nil {
		e.logger.Debug("play rejected",
			zap.String("game_id", gameID),
			zap.String("player_id", playerID),
			zap.String("card_id", cardID),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return err
	}
	e.logger.Debug("card played",
		zap.String("game_id", gameID),
		zap.String("player_id", playerID),
		zap.String("card_id", cardID),
		zap.String("kind", kind),
	)
	return nil
}

// SendToCrypt relocates a card already on the board to the Crypt.
func (e *Engine) SendToCrypt(gameID, playerID, cardID string) error {
	return e.withGame(gameID, func(g *GameState) error {
		return g.SendToCrypt(playerID, cardID)
	})
}

// SendToNull banishes a card to the Null zone.
func (e *Engine) SendToNull(gameID, playerID, cardID string) error {
	return e.withGame(gameID, func(g *GameState) error {
		return g.SendToNull(playerID, cardID)
	})
}

// SpendGodCharges spends a player's banked God Charges.
func (e *Engine) SpendGodCharges(gameID, playerID string, amount int) error {
	return e.withGame(gameID, func(g *GameState) error {
		return g.SpendGodCharges(playerID, amount)
	})
}

// ResolveCombat resolves a declared attack.
func (e *Engine) ResolveCombat(gameID, attackingPlayerID, defendingPlayerID string, assignments []AttackAssignment) error {
	return e.withGame(gameID, func(g *GameState) error {
		defender, err := g.Player(defendingPlayerID)
		if err != nil {
			return err
		}
		essenceBefore := defender.Essence

		if err := g.ResolveCombat(attackingPlayerID, defendingPlayerID, assignments); err != nil {
			return err
		}
		e.logger.Debug("combat resolved",
			zap.String("game_id", gameID),
			zap.String("attacker", attackingPlayerID),
			zap.String("defender", defendingPlayerID),
			zap.Int("assignments", len(assignments)),
			zap.Int("defender_essence", defender.Essence),
		)
		if essenceBefore > 0 && defender.Essence == 0 {
			e.logger.Info("defender essence depleted",
				zap.String("game_id", gameID),
				zap.String("defender", defendingPlayerID),
			)
		}
		return nil
	})
}
