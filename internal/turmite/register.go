package turmite

import "turmites/internal/core"

// Every preset table is exposed as its own registered behavior, alongside the
// N-state cyclic generator and a seeded random preset draw. Entrypoints pick
// one by name from core.Sims.
func init() {
	for _, name := range Presets() {
		name := name
		core.Register(name, func(cfg map[string]string) (core.Sim, error) {
			c := FromMap(cfg)
			c.Table = name
			c.States = 2
			return NewWithConfig(c)
		})
	}
	core.Register("cyclic", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		c.Table = "cyclic"
		return NewWithConfig(c)
	})
	core.Register("random", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		c.Table = "random"
		c.States = 2
		return NewWithConfig(c)
	})
}
