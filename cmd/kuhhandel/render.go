package main

import (
	"github.com/pterm/pterm"

	"kuhhandel/pkg/game"
)

// renderer drains the game's event stream and prints it
type renderer struct {
	game *game.Game
	quit chan struct{}
}

func newRenderer(g *game.Game) *renderer {
	return &renderer{
		game: g,
		quit: make(chan struct{}),
	}
}

// start begins rendering events in the background. The returned channel is
// closed once the renderer has drained and exited.
func (r *renderer) start() <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		for {
			select {
			case e := <-r.game.Events():
				r.render(e)
			case <-r.quit:
				// drain whatever is still buffered
				for {
					select {
					case e := <-r.game.Events():
						r.render(e)
					default:
						return
					}
				}
			}
		}
	}()

	return done
}

func (r *renderer) stop() {
	close(r.quit)
}

func (r *renderer) render(e game.Event) {
	switch e.Type {
	case game.EventCardDrawn:
		pterm.DefaultSection.Println(e.Message)
	case game.EventDonkey:
		pterm.Warning.Println(e.Message)
	case game.EventLastCard:
		pterm.Warning.Println(e.Message)
	case game.EventBidRejected, game.EventRoundFailure:
		pterm.Error.Println(e.Message)
	case game.EventAuctionWon, game.EventBuyBack, game.EventTradeResolved:
		pterm.Success.Println(e.Message)
	case game.EventEliminated, game.EventGameOver:
		pterm.DefaultBox.Println(e.Message)
	default:
		pterm.Info.Println(e.Message)
	}
}
