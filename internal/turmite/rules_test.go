package turmite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turmites/internal/core"
)

func TestPresetsAreTotal(t *testing.T) {
	names := Presets()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "langton")

	for _, name := range names {
		table, err := Preset(name)
		require.NoError(t, err, "preset %s", name)
		assert.Equal(t, name, table.Name())
		require.EqualValues(t, 2, table.States())

		for cell := uint8(0); cell < 2; cell++ {
			for agent := uint8(0); agent < 2; agent++ {
				rule, err := table.Resolve(cell, agent)
				require.NoError(t, err, "%s resolve(%d,%d)", name, cell, agent)
				assert.Less(t, rule.Write, uint8(2))
				assert.Less(t, rule.Next, uint8(2))
			}
		}
	}
}

func TestPresetLangton(t *testing.T) {
	table, err := Preset("langton")
	require.NoError(t, err)

	for agent := uint8(0); agent < 2; agent++ {
		onEmpty, err := table.Resolve(0, agent)
		require.NoError(t, err)
		assert.Equal(t, Rule{Write: 1, Turn: TurnRight, Next: 0}, onEmpty)

		onFilled, err := table.Resolve(1, agent)
		require.NoError(t, err)
		assert.Equal(t, Rule{Write: 0, Turn: TurnLeft, Next: 0}, onFilled)
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := Preset("does-not-exist")
	require.ErrorIs(t, err, core.ErrIncompleteRuleTable)
}

func TestCyclicTotalOverDomain(t *testing.T) {
	for n := uint8(2); n <= 9; n++ {
		table, err := Cyclic(n)
		require.NoError(t, err, "cyclic(%d)", n)
		require.Equal(t, n, table.States())

		for cell := uint8(0); cell < n; cell++ {
			for agent := uint8(0); agent < n; agent++ {
				rule, err := table.Resolve(cell, agent)
				require.NoError(t, err, "cyclic(%d) resolve(%d,%d)", n, cell, agent)
				assert.Equal(t, (cell+1)%n, rule.Write)
				assert.Equal(t, (agent+1)%n, rule.Next)
				if cell%2 == 0 {
					assert.Equal(t, TurnRight, rule.Turn)
				} else {
					assert.Equal(t, TurnLeft, rule.Turn)
				}
			}
		}
	}

	_, err := Cyclic(1)
	require.ErrorIs(t, err, core.ErrInvalidStateCount)
}

func TestNewTableValidation(t *testing.T) {
	full := []Rule{{}, {}, {}, {}}

	_, err := NewTable("short", 2, full[:3])
	require.ErrorIs(t, err, core.ErrIncompleteRuleTable)

	_, err = NewTable("tiny", 1, full[:1])
	require.ErrorIs(t, err, core.ErrInvalidStateCount)

	bad := append([]Rule(nil), full...)
	bad[2].Write = 5
	_, err = NewTable("overflow", 2, bad)
	require.ErrorIs(t, err, core.ErrInvalidState)

	bad = append([]Rule(nil), full...)
	bad[1].Next = 2
	_, err = NewTable("next-overflow", 2, bad)
	require.ErrorIs(t, err, core.ErrInvalidState)

	bad = append([]Rule(nil), full...)
	bad[0].Turn = Turn(9)
	_, err = NewTable("bad-turn", 2, bad)
	require.ErrorIs(t, err, core.ErrIncompleteRuleTable)

	table, err := NewTable("ok", 2, full)
	require.NoError(t, err)

	_, err = table.Resolve(2, 0)
	require.ErrorIs(t, err, core.ErrCorruptState)
	_, err = table.Resolve(0, 2)
	require.ErrorIs(t, err, core.ErrCorruptState)
}

func TestRandomPresetIsSeeded(t *testing.T) {
	a := RandomPreset(core.NewRNG(17))
	b := RandomPreset(core.NewRNG(17))
	c := RandomPreset(core.NewRNG(18))

	require.Equal(t, a.Name(), b.Name())
	// Different seeds usually differ; at minimum both draws must be valid.
	assert.Contains(t, Presets(), a.Name())
	assert.Contains(t, Presets(), c.Name())
}

func TestConfigFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":         "64",
		"h":         "48",
		"states":    "4",
		"topology":  "torus",
		"table":     "cyclic",
		"max_ticks": "1000",
		"agents":    "3",
		"seed":      "-5",
		"randomize": "true",
	})

	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.EqualValues(t, 4, cfg.States)
	assert.Equal(t, core.TopologyTorus, cfg.Topology)
	assert.Equal(t, "cyclic", cfg.Table)
	assert.EqualValues(t, 1000, cfg.MaxTicks)
	assert.Equal(t, 3, cfg.Agents)
	assert.EqualValues(t, -5, cfg.Seed)
	assert.True(t, cfg.Randomize)

	// Garbage and omissions fall back to defaults.
	cfg = FromMap(map[string]string{"w": "zero", "states": "1"})
	def := DefaultConfig()
	assert.Equal(t, def.Width, cfg.Width)
	assert.Equal(t, def.States, cfg.States)

	assert.Equal(t, def, FromMap(nil))
}
