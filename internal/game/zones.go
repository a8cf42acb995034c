package game

import "fmt"

// Zone is the closed set of locations a card can occupy.
type Zone int

const (
	ZoneHand Zone = iota
	ZoneVeiledDeck
	ZoneCrypt
	ZoneNull
	ZoneDomain
	ZoneShardRow
	ZoneAvatarLine
	ZoneRelicSupport
	ZoneDeity
)

var zoneNames = map[Zone]string{
	ZoneHand:         "HAND",
	ZoneVeiledDeck:   "VEILED_DECK",
	ZoneCrypt:        "CRYPT",
	ZoneNull:         "NULL_ZONE",
	ZoneDomain:       "DOMAIN_ZONE",
	ZoneShardRow:     "SHARD_ROW",
	ZoneAvatarLine:   "AVATAR_LINE",
	ZoneRelicSupport: "RELIC_SUPPORT_ZONE",
	ZoneDeity:        "DEITY",
}

func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("ZONE_%d", int(z))
}

// zoneAccessor gives every zone container a uniform get/remove/add surface so
// that zone-search logic iterates an ordered table instead of repeating
// per-zone code in every operation.
type zoneAccessor struct {
	zone   Zone
	cards  func(p *Player) []*Card
	remove func(p *Player, cardID string) *Card
	add    func(p *Player, c *Card)
}

// sliceZone builds an accessor over a multi-slot zone container.
func sliceZone(zone Zone, field func(p *Player) *[]*Card) zoneAccessor {
	return zoneAccessor{
		zone: zone,
		cards: func(p *Player) []*Card {
			return *field(p)
		},
		remove: func(p *Player, cardID string) *Card {
			slot := field(p)
			for i, c := range *slot {
				if c.ID == cardID {
					*slot = append((*slot)[:i], (*slot)[i+1:]...)
					return c
				}
			}
			return nil
		},
		add: func(p *Player, c *Card) {
			slot := field(p)
			*slot = append(*slot, c)
		},
	}
}

// slotZone builds an accessor over a single-slot zone container.
func slotZone(zone Zone, field func(p *Player) **Card) zoneAccessor {
	return zoneAccessor{
		zone: zone,
		cards: func(p *Player) []*Card {
			if c := *field(p); c != nil {
				return []*Card{c}
			}
			return nil
		},
		remove: func(p *Player, cardID string) *Card {
			slot := field(p)
			if c := *slot; c != nil && c.ID == cardID {
				*slot = nil
				return c
			}
			return nil
		},
		add: func(p *Player, c *Card) {
			*field(p) = c
		},
	}
}

var (
	handAccessor       = sliceZone(ZoneHand, func(p *Player) *[]*Card { return &p.Hand })
	veiledDeckAccessor = sliceZone(ZoneVeiledDeck, func(p *Player) *[]*Card { return &p.VeiledDeck })
	cryptAccessor      = sliceZone(ZoneCrypt, func(p *Player) *[]*Card { return &p.Crypt })
	nullAccessor       = sliceZone(ZoneNull, func(p *Player) *[]*Card { return &p.Null })
	shardRowAccessor   = sliceZone(ZoneShardRow, func(p *Player) *[]*Card { return &p.ShardRow })
	avatarLineAccessor = sliceZone(ZoneAvatarLine, func(p *Player) *[]*Card { return &p.AvatarLine })
	relicAccessor      = sliceZone(ZoneRelicSupport, func(p *Player) *[]*Card { return &p.RelicSupport })
	domainAccessor     = slotZone(ZoneDomain, func(p *Player) **Card { return &p.Domain })
)

// boardZones is the fixed search order for cards in play.
var boardZones = []zoneAccessor{
	shardRowAccessor,
	avatarLineAccessor,
	relicAccessor,
	domainAccessor,
}

// nullSearchZones is the search order for banishing: hand first, then board.
var nullSearchZones = []zoneAccessor{
	handAccessor,
	shardRowAccessor,
	avatarLineAccessor,
	relicAccessor,
	domainAccessor,
}
