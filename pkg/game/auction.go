package game

// Bid is one player's offer during an auction round
type Bid struct {
	Player int `json:"player"`
	Amount int `json:"amount"`
}

// Auction runs one bidding round for a drawn cow card. Eligible bidders are
// every player except the auctioneer, in clockwise order starting after the
// auctioneer; each stays in the round until they pass.
//
// No money moves at bid time. Deduction happens at settlement only.
type Auction struct {
	auctioneer int
	remaining  []int
	bids       []Bid
}

// NewAuction returns an auction round with the given auctioneer and the
// eligible bidders in seating order
func NewAuction(auctioneer int, bidders []int) *Auction {
	return &Auction{
		auctioneer: auctioneer,
		remaining:  append([]int{}, bidders...),
	}
}

// Auctioneer returns the index of the player running the auction
func (a *Auction) Auctioneer() int {
	return a.auctioneer
}

// Remaining returns the bidders still in the round, in order
func (a *Auction) Remaining() []int {
	return append([]int{}, a.remaining...)
}

// HighBid returns the current highest bid amount, or 0 if nobody has bid
func (a *Auction) HighBid() int {
	high := 0
	for _, b := range a.bids {
		if b.Amount > high {
			high = b.Amount
		}
	}

	return high
}

// PlaceBid records a bid for the player. The amount must strictly exceed
// the current highest bid (so the opening bid must exceed 0), and the
// player's total money value must cover it.
func (a *Auction) PlaceBid(p *Player, amount int) error {
	if amount <= a.HighBid() {
		return ErrBidTooLow
	}

	if p.MoneyValue() < amount {
		return ErrInsufficientFunds
	}

	a.bids = append(a.bids, Bid{Player: p.Index, Amount: amount})
	return nil
}

// Pass removes the player from the remaining-bidder set
func (a *Auction) Pass(player int) {
	for i, idx := range a.remaining {
		if idx == player {
			a.remaining = append(a.remaining[:i], a.remaining[i+1:]...)
			return
		}
	}
}

// IsComplete returns true once at most one bidder remains
func (a *Auction) IsComplete() bool {
	return len(a.remaining) <= 1
}

// WinningBid returns the earliest-placed maximal bid. If nobody ever bid,
// the auctioneer keeps the card for free: (auctioneer, 0).
func (a *Auction) WinningBid() Bid {
	if len(a.bids) == 0 {
		return Bid{Player: a.auctioneer, Amount: 0}
	}

	winning := a.bids[0]
	for _, b := range a.bids[1:] {
		if b.Amount > winning.Amount {
			winning = b
		}
	}

	return winning
}

// CanBuyBack returns true if the auctioneer may reclaim the card by paying
// the winning bid: their money value must strictly exceed the bid amount.
func (a *Auction) CanBuyBack(auctioneer *Player) bool {
	return auctioneer.MoneyValue() > a.WinningBid().Amount
}
