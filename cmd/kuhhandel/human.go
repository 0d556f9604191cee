package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
	"kuhhandel/pkg/game"
)

const (
	choiceAuction = "auction a card"
	choiceTrade   = "challenge a trade"
	choiceStats   = "show the table"
)

// consoleSource prompts a human at the terminal for every decision
type consoleSource struct {
	index int
	table currency.Table
}

func newConsoleSource(index int, table currency.Table) *consoleSource {
	return &consoleSource{
		index: index,
		table: table,
	}
}

func (c *consoleSource) ChooseAction(v game.View) (game.Action, error) {
	pterm.DefaultSection.Printfln("%s, turn %d", playerName(c.index), v.Turn)
	c.printHolding(v)

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{choiceAuction, choiceTrade, choiceStats}).
		Show("What will you do?")
	if err != nil {
		return 0, err
	}

	switch choice {
	case choiceAuction:
		return game.ActionAuction, nil
	case choiceTrade:
		return game.ActionTrade, nil
	default:
		c.printTable(v)
		return game.ActionStats, nil
	}
}

func (c *consoleSource) BidDecision(v game.View) (int, bool, error) {
	if v.CurrentCard != nil {
		pterm.Info.Printfln("%s: on the block %s, high bid %d, you hold %d",
			playerName(c.index), *v.CurrentCard, v.HighBid, v.Self.MoneyValue)
	}

	for {
		answer, err := pterm.DefaultInteractiveTextInput.
			Show(pterm.Sprintf("%s, your bid (empty to pass)", playerName(c.index)))
		if err != nil {
			return 0, false, err
		}

		answer = strings.TrimSpace(answer)
		if answer == "" || strings.EqualFold(answer, "pass") {
			return 0, true, nil
		}

		amount, err := strconv.Atoi(answer)
		if err != nil || amount <= 0 {
			pterm.Error.Println("enter a positive amount or leave empty to pass")
			continue
		}

		return amount, false, nil
	}
}

func (c *consoleSource) BuyBackDecision(v game.View, winning game.Bid) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		Show(pterm.Sprintf("%s, buy the card back for %d?", playerName(c.index), winning.Amount))
}

func (c *consoleSource) ChoosePayment(v game.View, amount int) (currency.Money, error) {
	pterm.Info.Printfln("%s, you owe %d. Your money: %s",
		playerName(c.index), amount, formatMoney(c.table, v.Self.Money))

	return c.promptMoney("Pay with (counts per denomination, or \"cancel\")", v.Self.Money)
}

func (c *consoleSource) TradeDecision(v game.View, joint map[int][]cattle.Type) (game.TradeDecision, error) {
	contenders := make([]string, 0, len(joint))
	for i := range v.Players {
		if _, ok := joint[i]; ok {
			contenders = append(contenders, playerName(i))
		}
	}

	who, err := pterm.DefaultInteractiveSelect.
		WithOptions(contenders).
		Show("Challenge whom?")
	if err != nil {
		return game.TradeDecision{}, err
	}

	contender := -1
	for i := range v.Players {
		if playerName(i) == who {
			contender = i
			break
		}
	}

	types := joint[contender]
	names := make([]string, len(types))
	for i, ct := range types {
		names[i] = ct.String()
	}

	picked, err := pterm.DefaultInteractiveSelect.
		WithOptions(names).
		Show("Over which cows?")
	if err != nil {
		return game.TradeDecision{}, err
	}

	cowType := types[0]
	for i, name := range names {
		if name == picked {
			cowType = types[i]
			break
		}
	}

	quantity := 1
	if v.Self.Cows[cowType] >= 2 && v.Players[contender].Cows[cowType] >= 2 {
		both, err := pterm.DefaultInteractiveConfirm.
			Show("Contest two at once?")
		if err != nil {
			return game.TradeDecision{}, err
		}

		if both {
			quantity = 2
		}
	}

	return game.TradeDecision{
		Contender: contender,
		CowType:   cowType,
		Quantity:  quantity,
	}, nil
}

func (c *consoleSource) TradeOffer(v game.View, revealedCardCount int) (currency.Money, error) {
	if revealedCardCount == game.NotRevealed {
		pterm.Info.Printfln("%s, seal your offer. Your money: %s",
			playerName(c.index), formatMoney(c.table, v.Self.Money))
	} else {
		pterm.Info.Printfln("%s, the challenger offers %d cards. Your money: %s",
			playerName(c.index), revealedCardCount, formatMoney(c.table, v.Self.Money))
	}

	return c.promptMoney("Offer (counts per denomination)", v.Self.Money)
}

// promptMoney reads one count per denomination, space separated. Trailing
// denominations may be omitted.
func (c *consoleSource) promptMoney(prompt string, holding currency.Money) (currency.Money, error) {
	for {
		answer, err := pterm.DefaultInteractiveTextInput.Show(prompt)
		if err != nil {
			return nil, err
		}

		answer = strings.TrimSpace(answer)
		if strings.EqualFold(answer, "cancel") {
			return nil, game.ErrCancelled
		}

		fields := strings.Fields(answer)
		if len(fields) > len(c.table) {
			pterm.Error.Printfln("at most %d counts expected", len(c.table))
			continue
		}

		money := currency.NewMoney(c.table)
		ok := true
		for i, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil || n < 0 || n > holding[i] {
				pterm.Error.Printfln("bad count %q for denomination %d", field, c.table[i])
				ok = false
				break
			}

			money[i] = n
		}

		if !ok {
			continue
		}

		return money, nil
	}
}

func (c *consoleSource) printHolding(v game.View) {
	pterm.Info.Printfln("Money: %s (total %d)", formatMoney(c.table, v.Self.Money), v.Self.MoneyValue)
	if len(v.Self.Cows) > 0 {
		pterm.Info.Printfln("Cows: %s", formatCows(v.Self.Cows))
	}
}

func (c *consoleSource) printTable(v game.View) {
	rows := pterm.TableData{{"Player", "Money cards", "Cows", "Score"}}
	for _, p := range v.Players {
		name := playerName(p.Index)
		if p.Eliminated {
			name += " (out)"
		}

		rows = append(rows, []string{
			name,
			strconv.Itoa(p.MoneyCardCount),
			formatCows(p.Cows),
			strconv.Itoa(p.Score),
		})
	}

	pterm.Info.Printfln("Stack: %d cards, inflation stage %d", v.StackRemaining, v.InflationStage)
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func formatMoney(table currency.Table, money currency.Money) string {
	parts := make([]string, 0, len(money))
	for i, count := range money {
		if count == 0 {
			continue
		}

		parts = append(parts, pterm.Sprintf("%d×%d", count, table[i]))
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, ", ")
}

func formatCows(cows map[cattle.Type]int) string {
	types := make([]cattle.Type, 0, len(cows))
	for ct := range cows {
		types = append(types, ct)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	parts := make([]string, len(types))
	for i, ct := range types {
		parts[i] = pterm.Sprintf("%d×%s", cows[ct], ct)
	}

	return strings.Join(parts, ", ")
}
