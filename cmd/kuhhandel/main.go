package main

import (
	"math/rand"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"kuhhandel/internal/config"
	"kuhhandel/internal/rng"
	"kuhhandel/pkg/game"
)

// Version is the build version
var Version = "v0.0.0-dev"

// CLI are the command line options
type CLI struct {
	Players  int    `short:"p" help:"Number of seats at the table" default:"3"`
	Humans   int    `short:"H" help:"Number of human players; bots fill the rest" default:"1"`
	Seed     int64  `short:"s" help:"Shuffle seed for a reproducible game (0 = random)" default:"0"`
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	setupLogger(cli.LogLevel)

	cfg := config.Instance()
	opts := cfg.GameOptions()
	opts.Seed = cli.Seed

	if cli.Humans > cli.Players {
		logrus.Fatal("more humans than seats")
	}

	g, err := game.NewGame(logrus.StandardLogger(), cli.Players, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	pterm.DefaultHeader.Println("Kuhhandel " + Version)
	pterm.Info.Printfln("%d players (%d human), stack of %d cards", cli.Players, cli.Humans, g.Stack().Remaining())

	sources := make([]game.DecisionSource, cli.Players)
	for i := range sources {
		if i < cli.Humans {
			sources[i] = newConsoleSource(i, opts.Denominations)
			continue
		}

		var generator rng.Generator = rng.Crypto{}
		if cli.Seed > 0 {
			generator = rand.New(rand.NewSource(cli.Seed + int64(i)))
		}

		sources[i] = game.NewRandomBot(opts.Denominations, generator)
	}

	runner, err := game.NewRunner(g, sources)
	if err != nil {
		logrus.WithError(err).Fatal("could not create runner")
	}

	render := newRenderer(g)
	done := render.start()

	if err := runner.Run(); err != nil {
		logrus.WithError(err).Fatal("game aborted")
	}

	render.stop()
	<-done

	printFinalScores(g)
	ctx.Exit(0)
}

func setupLogger(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).Fatal("invalid log level")
	}

	logrus.SetLevel(parsed)
}

func printFinalScores(g *game.Game) {
	scores, err := g.FinalScores()
	if err != nil {
		return
	}

	rows := pterm.TableData{{"Player", "Score", "Money", "Sets"}}
	for _, stat := range g.PlayerStats() {
		rows = append(rows, []string{
			playerName(stat.Index),
			pterm.Sprintf("%d", stat.Score),
			pterm.Sprintf("%d", stat.MoneyValue),
			pterm.Sprintf("%v", stat.Sets),
		})
	}

	pterm.DefaultSection.Println("Final scores")
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	best, winner := -1, -1
	for i, s := range scores {
		if s > best {
			best, winner = s, i
		}
	}

	pterm.Success.Printfln("%s wins with %d points", playerName(winner), best)
}

func playerName(index int) string {
	return pterm.Sprintf("Player %d", index)
}
