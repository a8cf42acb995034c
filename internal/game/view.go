package game

// GameView is a snapshot of a game built for one requesting player. Opponent
// hands and decks are redacted to counts.
type GameView struct {
	GameID         string       `json:"game_id"`
	TurnNumber     int          `json:"turn_number"`
	ActivePlayerID string       `json:"active_player_id"`
	FirstPlayerID  string       `json:"first_player_id"`
	Players        []PlayerView `json:"players"`
}

// PlayerView is one player's visible state.
type PlayerView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Essence    int    `json:"essence"`
	BaseKL     int    `json:"base_kl"`
	CurrentKL  int    `json:"current_kl"`
	GodCharges int    `json:"god_charges"`
	TurnsTaken int    `json:"turns_taken"`

	DeckCount int        `json:"deck_count"`
	HandCount int        `json:"hand_count"`
	Hand      []CardView `json:"hand,omitempty"` // requester only

	Deity        *CardView  `json:"deity"`
	Domain       *CardView  `json:"domain,omitempty"`
	ShardRow     []CardView `json:"shard_row"`
	AvatarLine   []CardView `json:"avatar_line"`
	RelicSupport []CardView `json:"relic_support"`
	Crypt        []CardView `json:"crypt"`
	Null         []CardView `json:"null_zone"`
}

// CardView is a card in any visible zone.
type CardView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Subtypes     []string `json:"subtypes,omitempty"`
	Domain       string   `json:"domain,omitempty"`
	Cost         int      `json:"cost"`
	Power        string   `json:"power,omitempty"`
	Guard        string   `json:"guard,omitempty"`
	Zone         string   `json:"zone"`
	Tapped       bool     `json:"tapped"`
	Damage       int      `json:"damage"`
	OwnerID      string   `json:"owner_id"`
	ControllerID string   `json:"controller_id"`
	Token        bool     `json:"token,omitempty"`
}

// GetGameView builds the game view for the requesting player. An empty
// requester id yields a fully redacted spectator view.
func (e *Engine) GetGameView(gameID, requestingPlayerID string) (*GameView, error) {
	s, err := e.session(gameID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.state
	view := &GameView{
		GameID:         gameID,
		TurnNumber:     g.TurnNumber,
		ActivePlayerID: g.ActivePlayerID,
		FirstPlayerID:  g.FirstPlayerID,
		Players:        make([]PlayerView, 0, len(g.Players)),
	}

	for _, p := range g.Players {
		pv := PlayerView{
			ID:           p.ID,
			Name:         p.Name,
			Essence:      p.Essence,
			BaseKL:       p.KL.Base,
			CurrentKL:    p.KL.Current,
			GodCharges:   p.KL.GodCharges,
			TurnsTaken:   p.TurnsTaken,
			DeckCount:    len(p.VeiledDeck),
			HandCount:    len(p.Hand),
			ShardRow:     buildCardViews(p.ShardRow),
			AvatarLine:   buildCardViews(p.AvatarLine),
			RelicSupport: buildCardViews(p.RelicSupport),
			Crypt:        buildCardViews(p.Crypt),
			Null:         buildCardViews(p.Null),
		}
		if p.Deity != nil {
			dv := buildCardView(p.Deity)
			pv.Deity = &dv
		}
		if p.Domain != nil {
			dv := buildCardView(p.Domain)
			pv.Domain = &dv
		}
		if p.ID == requestingPlayerID {
			pv.Hand = buildCardViews(p.Hand)
		}
		view.Players = append(view.Players, pv)
	}

	return view, nil
}

func buildCardViews(cards []*Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, buildCardView(c))
	}
	return views
}

func buildCardView(c *Card) CardView {
	return CardView{
		ID:           c.ID,
		Name:         c.Name,
		Category:     c.Category,
		Subtypes:     append([]string(nil), c.Subtypes...),
		Domain:       c.Domain,
		Cost:         c.Cost,
		Power:        c.Power,
		Guard:        c.Guard,
		Zone:         c.Zone.String(),
		Tapped:       c.Tapped,
		Damage:       c.DamageMarked,
		OwnerID:      c.OwnerID,
		ControllerID: c.ControllerID,
		Token:        c.Token,
	}
}
