package turmite

import (
	"fmt"
	"sort"

	"turmites/internal/core"
)

// The preset catalog: two-state turmites with well-known long-run shapes.
// Each table lists its four rules in agent-major order, i.e.
// (agent 0, cell 0), (agent 0, cell 1), (agent 1, cell 0), (agent 1, cell 1).
var presets = map[string][]Rule{
	"langton": {
		{Write: 1, Turn: TurnRight, Next: 0},
		{Write: 0, Turn: TurnLeft, Next: 0},
		{Write: 1, Turn: TurnRight, Next: 0},
		{Write: 0, Turn: TurnLeft, Next: 0},
	},
	"fibonacci": {
		{Write: 1, Turn: TurnLeft, Next: 1},
		{Write: 1, Turn: TurnLeft, Next: 1},
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnNone, Next: 0},
	},
	"chaotic-one": {
		{Write: 1, Turn: TurnRight, Next: 0},
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnNone, Next: 0},
		{Write: 0, Turn: TurnNone, Next: 1},
	},
	"chaotic-two": {
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnLeft, Next: 1},
		{Write: 1, Turn: TurnNone, Next: 0},
		{Write: 0, Turn: TurnNone, Next: 1},
	},
	"chaotic-three": {
		{Write: 1, Turn: TurnLeft, Next: 1},
		{Write: 0, Turn: TurnLeft, Next: 1},
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnLeft, Next: 0},
	},
	"chaotic-four": {
		{Write: 1, Turn: TurnLeft, Next: 1},
		{Write: 0, Turn: TurnLeft, Next: 1},
		{Write: 1, Turn: TurnNone, Next: 0},
		{Write: 1, Turn: TurnNone, Next: 1},
	},
	"coral": {
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 1, Turn: TurnLeft, Next: 1},
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnLeft, Next: 0},
	},
	"square-one": {
		{Write: 1, Turn: TurnLeft, Next: 0},
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnRight, Next: 0},
		{Write: 0, Turn: TurnLeft, Next: 1},
	},
	"square-two": {
		{Write: 0, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnLeft, Next: 0},
		{Write: 1, Turn: TurnNone, Next: 0},
		{Write: 1, Turn: TurnReverse, Next: 1},
	},
	"counter-one": {
		{Write: 0, Turn: TurnNone, Next: 1},
		{Write: 0, Turn: TurnReverse, Next: 1},
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnNone, Next: 1},
	},
	"counter-two": {
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnNone, Next: 1},
		{Write: 0, Turn: TurnNone, Next: 0},
		{Write: 1, Turn: TurnLeft, Next: 1},
	},
	"spiral-one": {
		{Write: 1, Turn: TurnNone, Next: 1},
		{Write: 1, Turn: TurnLeft, Next: 0},
		{Write: 1, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnNone, Next: 0},
	},
	"spiral-two": {
		{Write: 1, Turn: TurnLeft, Next: 0},
		{Write: 0, Turn: TurnRight, Next: 1},
		{Write: 1, Turn: TurnRight, Next: 0},
		{Write: 0, Turn: TurnLeft, Next: 1},
	},
	"spiral-three": {
		{Write: 1, Turn: TurnReverse, Next: 0},
		{Write: 0, Turn: TurnNone, Next: 1},
		{Write: 0, Turn: TurnLeft, Next: 0},
		{Write: 0, Turn: TurnRight, Next: 1},
	},
	"ladder": {
		{Write: 0, Turn: TurnNone, Next: 1},
		{Write: 1, Turn: TurnReverse, Next: 1},
		{Write: 1, Turn: TurnLeft, Next: 0},
		{Write: 1, Turn: TurnNone, Next: 1},
	},
	"dixie": {
		{Write: 0, Turn: TurnRight, Next: 1},
		{Write: 0, Turn: TurnLeft, Next: 0},
		{Write: 1, Turn: TurnReverse, Next: 1},
		{Write: 0, Turn: TurnRight, Next: 0},
	},
}

// Preset returns the named two-state table.
func Preset(name string) (*Table, error) {
	rules, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset table %q: %w", name, core.ErrIncompleteRuleTable)
	}
	return NewTable(name, 2, rules)
}

// Presets lists the available preset names in stable order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RandomPreset draws one of the preset tables using the provided RNG.
func RandomPreset(rng *core.RNG) *Table {
	names := Presets()
	name := names[rng.IntN(len(names))]
	t, err := Preset(name)
	if err != nil {
		// Presets are validated by tests; a failure here is a programming error.
		panic(err)
	}
	return t
}
