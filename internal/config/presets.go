package config

import "sort"

var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"fast-ball": func(c *Config) {
		c.Game.BallSpeed = 5
		c.Game.PowerFactor = 1.15
	},
	"wide-board": func(c *Config) {
		c.Game.BoardWidth = 1200
		c.Ticks = 5400
	},
	"twitchy": func(c *Config) {
		c.Fuzzy.DeadZone = 0.2
		c.Fuzzy.CutoffFraction = 0
		c.Fuzzy.BoostGain = 1.3
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
