package game

import (
	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
)

// PlayerStat is the full view of a single player's holdings.
// Only the owner (and the presentation sink) should see the money vector.
type PlayerStat struct {
	Index      int                 `json:"index"`
	Money      currency.Money      `json:"money"`
	MoneyValue int                 `json:"moneyValue"`
	Cows       map[cattle.Type]int `json:"cows"`
	Sets       []cattle.Type       `json:"sets"`
	Score      int                 `json:"score"`
	Eliminated bool                `json:"eliminated"`
}

// PublicStat is what every player may know about an opponent: cow cards are
// open information, money composition is not.
type PublicStat struct {
	Index          int                 `json:"index"`
	MoneyCardCount int                 `json:"moneyCardCount"`
	Cows           map[cattle.Type]int `json:"cows"`
	Sets           []cattle.Type       `json:"sets"`
	Score          int                 `json:"score"`
	Eliminated     bool                `json:"eliminated"`
}

// View is the state handed to a decision source when asking for a choice
type View struct {
	Self           PlayerStat   `json:"self"`
	Players        []PublicStat `json:"players"`
	Turn           int          `json:"turn"`
	CurrentPlayer  int          `json:"currentPlayer"`
	StackRemaining int          `json:"stackRemaining"`
	InflationStage int          `json:"inflationStage"`
	// CurrentCard is the card under auction, if an auction round is running
	CurrentCard *cattle.Type `json:"currentCard,omitempty"`
	// HighBid is the standing highest bid during an auction round
	HighBid int `json:"highBid"`
}

func (g *Game) playerStat(p *Player) PlayerStat {
	return PlayerStat{
		Index:      p.Index,
		Money:      p.Money(),
		MoneyValue: p.MoneyValue(),
		Cows:       p.Cows(),
		Sets:       p.CompletedSets(),
		Score:      p.Score(),
		Eliminated: p.Eliminated(),
	}
}

func (g *Game) publicStat(p *Player) PublicStat {
	return PublicStat{
		Index:          p.Index,
		MoneyCardCount: p.MoneyCardCount(),
		Cows:           p.Cows(),
		Sets:           p.CompletedSets(),
		Score:          p.Score(),
		Eliminated:     p.Eliminated(),
	}
}

// PlayerStats returns a full snapshot of every player
func (g *Game) PlayerStats() []PlayerStat {
	stats := make([]PlayerStat, len(g.players))
	for i, p := range g.players {
		stats[i] = g.playerStat(p)
	}

	return stats
}

// View returns the game as seen by the given player
func (g *Game) View(player int) View {
	players := make([]PublicStat, len(g.players))
	for i, p := range g.players {
		players[i] = g.publicStat(p)
	}

	return View{
		Self:           g.playerStat(g.players[player]),
		Players:        players,
		Turn:           g.turn,
		CurrentPlayer:  g.current,
		StackRemaining: g.stack.Remaining(),
		InflationStage: g.bank.Stage(),
	}
}
