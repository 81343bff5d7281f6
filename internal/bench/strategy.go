package bench

import (
	"fmt"
	"strings"
)

// Strategy selects the broad phase that feeds candidate pairs to the circle test
type Strategy int

const (
	AllPairs       Strategy = iota // every pair, O(n²)
	CellNeighbours                 // every pair, skipped unless the centers are in adjacent cells
	Grid                           // aabbgrid.Grid
)

var strategyNames = map[Strategy]string{
	AllPairs:       "all_pairs",
	CellNeighbours: "cell_neighbours",
	Grid:           "grid",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// ParseStrategies parses every name, preserving order
func ParseStrategies(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
