// hashtree hashes words into 64 bit keys, loads them into a search tree and
// lists the tree in both directions.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"

	"github.com/e11jah/bst"
)

var log = btclog.Disabled

// run loads the hashes of cfg's words and writes the listings to out.
func run(cfg *config, out io.Writer) error {
	tree := bst.New[uint64](cfg.AllowDuplicates)
	words := make(map[uint64]string, len(cfg.Args.Words))

	for _, w := range cfg.Args.Words {
		h := xxhash.Sum64String(w)
		inserted, err := tree.Insert(h)
		if err != nil {
			return err
		}
		if !inserted {
			log.Debugf("Skipping duplicate %q", w)
			continue
		}
		words[h] = w
	}
	log.Infof("Loaded %d hashes, height %d", tree.Size(), tree.Height())

	for _, w := range cfg.Remove {
		removed, err := tree.Remove(xxhash.Sum64String(w))
		if err != nil {
			return err
		}
		if !removed {
			log.Warnf("No hash for %q in tree", w)
			continue
		}
		log.Infof("Removed %q", w)
	}
	log.Infof("Tree holds %d hashes, height %d", tree.Size(), tree.Height())

	if cfg.Rebalance {
		tree.Rebalance()
		log.Infof("Rebalanced to height %d", tree.Height())
	}

	if err := list(out, "reverse", tree.TraverseReverse(), words); err != nil {
		return err
	}
	if err := list(out, "forward", tree.TraverseForward(), words); err != nil {
		return err
	}

	if cfg.Draw {
		tree.Fprint(out)
	}
	if cfg.Dump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}
		dumper.Fdump(out, tree.Keys())
	}

	if err := tree.Check(); err != nil {
		return err
	}
	return nil
}

func list(out io.Writer, title string, it bst.Iterator[uint64], words map[uint64]string) error {
	fmt.Fprintf(out, "%s:\n", title)
	for it.HasNext() {
		h, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %016x %s\n", h, words[h])
	}
	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	backendLogger := btclog.NewBackend(os.Stdout)
	defer os.Stdout.Sync()
	log = backendLogger.Logger("MAIN")
	treeLog := backendLogger.Logger("BSTR")

	cfg, parser, err := loadConfig(os.Args[1:])
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
			return nil
		}
		log.Error(err)
		return err
	}

	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log.SetLevel(level)
	treeLog.SetLevel(level)
	bst.UseLogger(treeLog)

	if err := run(cfg, os.Stdout); err != nil {
		log.Error(err)
		return err
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
