package turmite

import (
	"fmt"

	"turmites/internal/core"
)

// Turn is the relative rotation an agent applies to its heading.
type Turn uint8

const (
	// TurnNone keeps the current heading.
	TurnNone Turn = iota
	// TurnLeft rotates the heading counter-clockwise.
	TurnLeft
	// TurnRight rotates the heading clockwise.
	TurnRight
	// TurnReverse flips the heading.
	TurnReverse
)

// String returns the turn name used in diagnostics.
func (t Turn) String() string {
	switch t {
	case TurnNone:
		return "none"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnReverse:
		return "reverse"
	}
	return fmt.Sprintf("turn(%d)", uint8(t))
}

// Rule is a single transition: the state written to the cell the agent is
// standing on, the turn applied to its heading, and its next internal state.
type Rule struct {
	Write uint8
	Turn  Turn
	Next  uint8
}

// Table maps every (cell state, agent state) pair to a Rule. Tables are
// immutable after construction and total over [0, States) x [0, States):
// completeness is validated once at build time, so Resolve never fails for
// in-range inputs.
type Table struct {
	name   string
	states uint8
	// rules is agent-major: rules[agent*states+cell].
	rules []Rule
}

// NewTable validates and builds a rule table. The rules slice must hold
// exactly states*states entries in agent-major order, and every written cell
// state and next agent state must be below the state count.
func NewTable(name string, states uint8, rules []Rule) (*Table, error) {
	if states < 2 {
		return nil, fmt.Errorf("table %q with %d states: %w", name, states, core.ErrInvalidStateCount)
	}
	want := int(states) * int(states)
	if len(rules) != want {
		return nil, fmt.Errorf("table %q has %d of %d entries: %w", name, len(rules), want, core.ErrIncompleteRuleTable)
	}
	for i, r := range rules {
		if r.Write >= states || r.Next >= states {
			return nil, fmt.Errorf("table %q entry %d writes state %d, next %d (max %d): %w",
				name, i, r.Write, r.Next, states-1, core.ErrInvalidState)
		}
		if r.Turn > TurnReverse {
			return nil, fmt.Errorf("table %q entry %d has unknown turn %d: %w",
				name, i, r.Turn, core.ErrIncompleteRuleTable)
		}
	}
	t := &Table{name: name, states: states}
	t.rules = append(t.rules, rules...)
	return t, nil
}

// Name identifies the table.
func (t *Table) Name() string { return t.name }

// States reports the table's state count on both axes.
func (t *Table) States() uint8 { return t.states }

// Resolve returns the rule for the given cell and agent states. It is a pure
// lookup; out-of-range inputs indicate a grid/table mismatch.
func (t *Table) Resolve(cell, agent uint8) (Rule, error) {
	if cell >= t.states || agent >= t.states {
		return Rule{}, fmt.Errorf("resolve cell=%d agent=%d on %d-state table %q: %w",
			cell, agent, t.states, t.name, core.ErrCorruptState)
	}
	return t.rules[int(agent)*int(t.states)+int(cell)], nil
}

// Cyclic builds the default generalized-Langton table for n states: the agent
// turns right on even cell states and left on odd ones, repaints the cell with
// the next state modulo n, and cycles its own internal state the same way.
// For n=2 with a single agent state this reduces to the classic Langton rule.
func Cyclic(n uint8) (*Table, error) {
	if n < 2 {
		return nil, fmt.Errorf("cyclic table with %d states: %w", n, core.ErrInvalidStateCount)
	}
	rules := make([]Rule, 0, int(n)*int(n))
	for agent := 0; agent < int(n); agent++ {
		for cell := 0; cell < int(n); cell++ {
			turn := TurnRight
			if cell%2 == 1 {
				turn = TurnLeft
			}
			rules = append(rules, Rule{
				Write: uint8((cell + 1) % int(n)),
				Turn:  turn,
				Next:  uint8((agent + 1) % int(n)),
			})
		}
	}
	return NewTable(fmt.Sprintf("cyclic-%d", n), n, rules)
}
