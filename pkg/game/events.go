package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"kuhhandel/pkg/cattle"
)

// EventType identifies what happened
type EventType string

// event type constants
const (
	EventCardDrawn     EventType = "cardDrawn"
	EventLastCard      EventType = "lastCard"
	EventDonkey        EventType = "donkey"
	EventBidPlaced     EventType = "bidPlaced"
	EventBidRejected   EventType = "bidRejected"
	EventPass          EventType = "pass"
	EventAuctionWon    EventType = "auctionWon"
	EventBuyBack       EventType = "buyBack"
	EventRoundCancel   EventType = "roundCancelled"
	EventRoundFailure  EventType = "roundFailure"
	EventTradeResolved EventType = "tradeResolved"
	EventTradeDraw     EventType = "tradeDraw"
	EventEliminated    EventType = "eliminated"
	EventGameOver      EventType = "gameOver"
)

// Event is a structured message for the presentation sink. The core never
// renders anything itself.
type Event struct {
	UUID    string       `json:"uuid"`
	Type    EventType    `json:"type"`
	Player  int          `json:"player"` // -1 when not about a single player
	Card    *cattle.Type `json:"card,omitempty"`
	Amount  int          `json:"amount,omitempty"`
	Stage   int          `json:"stage,omitempty"`
	Scores  []int        `json:"scores,omitempty"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

func newEvent(t EventType, player int, format string, a ...interface{}) Event {
	return Event{
		UUID:    uuid.New().String(),
		Type:    t,
		Player:  player,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// Events returns the channel the game emits structured events on.
// The channel is buffered; if no sink is draining it, further events are
// dropped rather than stalling the engine.
func (g *Game) Events() <-chan Event {
	return g.events
}

func (g *Game) emit(e Event) {
	select {
	case g.events <- e:
	default:
		g.log.WithField("type", e.Type).Warn("event channel full, dropping event")
	}
}
