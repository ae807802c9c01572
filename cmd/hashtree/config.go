package main

import (
	"fmt"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const defaultLogLevel = "info"

var defaultWords = []string{
	"Ronald", "Bruh", "Dylan", "Ana", "Victor", "Willard", "Thomas",
}

// config defines the configuration options for hashtree.
type config struct {
	AllowDuplicates bool     `long:"dups" description:"Keep duplicate hashes instead of dropping them"`
	Remove          []string `short:"r" long:"remove" description:"Remove the hash of this word after loading (may be repeated)"`
	Rebalance       bool     `long:"rebalance" description:"Rebalance the tree before listing it"`
	Draw            bool     `long:"draw" description:"Draw the tree shape"`
	Dump            bool     `long:"dump" description:"Dump the ascending hashes in full"`
	DebugLevel      string   `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`

	Args struct {
		Words []string `positional-arg-name:"word"`
	} `positional-args:"yes"`
}

// loadConfig parses args into a config, filling in the defaults.
func loadConfig(args []string) (*config, *flags.Parser, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, parser, err
	}

	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		return nil, parser, fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}
	if len(cfg.Args.Words) == 0 {
		cfg.Args.Words = defaultWords
	}
	return &cfg, parser, nil
}
