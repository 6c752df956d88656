// Package strategy provides the concrete selection, counting and betting
// policies and a name-keyed registry for each capability. The driver looks
// strategies up by stable name instead of discovering implementations by
// reflection.
package strategy

import (
	"fmt"
	"sort"

	"github.com/mfields/blackjacksim/internal/game"
)

var (
	selections = map[string]func() game.SelectionStrategy{}
	countings  = map[string]func() game.CountingStrategy{}
	bettings   = map[string]func() game.BettingStrategy{}
)

// RegisterSelection registers a selection strategy constructor under name.
// Registering the same name twice is a programming error.
func RegisterSelection(name string, build func() game.SelectionStrategy) {
	if _, dup := selections[name]; dup {
		panic(fmt.Sprintf("strategy: duplicate selection %q", name))
	}
	selections[name] = build
}

// RegisterCounting registers a counting strategy constructor under name.
func RegisterCounting(name string, build func() game.CountingStrategy) {
	if _, dup := countings[name]; dup {
		panic(fmt.Sprintf("strategy: duplicate counting %q", name))
	}
	countings[name] = build
}

// RegisterBetting registers a betting strategy constructor under name.
func RegisterBetting(name string, build func() game.BettingStrategy) {
	if _, dup := bettings[name]; dup {
		panic(fmt.Sprintf("strategy: duplicate betting %q", name))
	}
	bettings[name] = build
}

// NewSelection builds the selection strategy registered under name.
func NewSelection(name string) (game.SelectionStrategy, error) {
	build, ok := selections[name]
	if !ok {
		return nil, fmt.Errorf("unknown selection strategy %q (available: %v)", name, SelectionNames())
	}
	return build(), nil
}

// NewCounting builds the counting strategy registered under name.
func NewCounting(name string) (game.CountingStrategy, error) {
	build, ok := countings[name]
	if !ok {
		return nil, fmt.Errorf("unknown counting strategy %q (available: %v)", name, CountingNames())
	}
	return build(), nil
}

// NewBetting builds the betting strategy registered under name.
func NewBetting(name string) (game.BettingStrategy, error) {
	build, ok := bettings[name]
	if !ok {
		return nil, fmt.Errorf("unknown betting strategy %q (available: %v)", name, BettingNames())
	}
	return build(), nil
}

// SelectionNames returns the registered selection strategy names, sorted.
func SelectionNames() []string {
	return sortedKeys(selections)
}

// CountingNames returns the registered counting strategy names, sorted.
func CountingNames() []string {
	return sortedKeys(countings)
}

// BettingNames returns the registered betting strategy names, sorted.
func BettingNames() []string {
	return sortedKeys(bettings)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
