package main

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, _, err := loadConfig([]string{"--dups", "-r", "Ana", "-r", "Bruh", "--rebalance", "x", "y"})
	require.NoError(t, err)
	assert.True(t, cfg.AllowDuplicates)
	assert.True(t, cfg.Rebalance)
	assert.Equal(t, []string{"Ana", "Bruh"}, cfg.Remove)
	assert.Equal(t, []string{"x", "y"}, cfg.Args.Words)
	assert.Equal(t, defaultLogLevel, cfg.DebugLevel)

	cfg, _, err = loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultWords, cfg.Args.Words)

	_, _, err = loadConfig([]string{"-d", "loud"})
	assert.Error(t, err)

	_, _, err = loadConfig([]string{"--help"})
	e, ok := err.(*flags.Error)
	require.True(t, ok)
	assert.Equal(t, flags.ErrHelp, e.Type)
}

func TestRun(t *testing.T) {
	cfg, _, err := loadConfig([]string{"-r", "Bruh", "-r", "Nobody", "--rebalance", "--draw", "--dump"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	text := out.String()

	parts := strings.SplitN(text, "forward:\n", 2)
	require.Len(t, parts, 2)
	reverse, forward := parts[0], parts[1]

	bruh := fmt.Sprintf("%016x", xxhash.Sum64String("Bruh"))
	assert.NotContains(t, reverse, bruh)

	var rev, fwd []string
	for _, w := range defaultWords {
		if w == "Bruh" {
			continue
		}
		line := fmt.Sprintf("  %016x %s\n", xxhash.Sum64String(w), w)
		assert.Contains(t, reverse, line)
		assert.Contains(t, forward, line)
		rev = append(rev, line)
		fwd = append(fwd, line)
	}

	// listings are ordered by hash
	assertOrdered(t, forward, fwd, false)
	assertOrdered(t, reverse, rev, true)
}

func assertOrdered(t *testing.T, text string, lines []string, descending bool) {
	t.Helper()
	prev := -1
	for _, line := range sortedByHash(lines, descending) {
		idx := strings.Index(text, line)
		require.True(t, idx > prev, line)
		prev = idx
	}
}

// fixed width hex orders like the hashes themselves
func sortedByHash(lines []string, descending bool) []string {
	out := append([]string(nil), lines...)
	sort.Slice(out, func(i, j int) bool {
		if descending {
			return out[i] > out[j]
		}
		return out[i] < out[j]
	})
	return out
}
