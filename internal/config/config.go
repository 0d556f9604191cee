package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"kuhhandel/internal/util"
	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
	"kuhhandel/pkg/game"
)

// Config provides the game configuration for Kuhhandel
type Config struct {
	loaded bool

	// CowTypes are the cow card values; the lowest is the donkey
	CowTypes []int `yaml:"cowTypes" envconfig:"cow_types"`
	// CopiesPerCow is how many cards of each type the stack holds
	CopiesPerCow int `yaml:"copiesPerCow" envconfig:"copies_per_cow"`
	// Denominations is the ascending money card value table
	Denominations []int `yaml:"denominations" envconfig:"denominations"`
	// StartingMoney is the per-denomination card count each player starts with
	StartingMoney []int `yaml:"startingMoney" envconfig:"starting_money"`
	// MinPlayers and MaxPlayers bound the table size
	MinPlayers int `yaml:"minPlayers" envconfig:"min_players"`
	MaxPlayers int `yaml:"maxPlayers" envconfig:"max_players"`
	// AutomaticPayment makes the solver pick payment cards
	AutomaticPayment *bool `yaml:"automaticPayment" envconfig:"automatic_payment"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error: the defaults stand, with any
// environment overrides applied on top.
func Load() error {
	config = defaults()

	configFile := util.Getenv("KUHHANDEL_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("kuhhandel", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaults() Config {
	auto := true

	return Config{
		CowTypes:         []int{10, 20, 40, 70, 100},
		CopiesPerCow:     4,
		Denominations:    []int{0, 10, 50, 100, 200, 500},
		StartingMoney:    []int{3, 3, 5, 0, 0, 0},
		MinPlayers:       2,
		MaxPlayers:       4,
		AutomaticPayment: &auto,
	}
}

// GameOptions converts the configuration into engine options
func (c Config) GameOptions() game.Options {
	types := make([]cattle.Type, len(c.CowTypes))
	for i, v := range c.CowTypes {
		types[i] = cattle.Type(v)
	}

	table := make(currency.Table, len(c.Denominations))
	copy(table, c.Denominations)

	starting := make(currency.Money, len(c.StartingMoney))
	copy(starting, c.StartingMoney)

	return game.Options{
		CowTypes:         types,
		CopiesPerCow:     c.CopiesPerCow,
		Denominations:    table,
		StartingMoney:    starting,
		MinPlayers:       c.MinPlayers,
		MaxPlayers:       c.MaxPlayers,
		AutomaticPayment: c.AutomaticPayment == nil || *c.AutomaticPayment,
	}
}
