package config

import (
	"fmt"
	"sort"
)

// Enemy types the level builder knows about
var knownEnemyTypes = map[string]bool{
	"pufferfish": true,
	"jellyfish":  true,
	"boss":       true,
}

// LevelConfig is the root config for levels/<name>.yaml
type LevelConfig struct {
	Name   string         `yaml:"name"`
	Player PositionConfig `yaml:"player"`

	Lights      []LayerConfig `yaml:"lights"`
	Backgrounds []LayerConfig `yaml:"backgrounds"`

	Spawn   SpawnConfig   `yaml:"spawn"`
	Enemies []EnemyConfig `yaml:"enemies"`
	Boss    BossConfig    `yaml:"boss"`

	Coins   PickupConfig `yaml:"coins"`
	Poisons PickupConfig `yaml:"poisons"`

	DefaultDifficulty string                      `yaml:"defaultDifficulty"`
	Difficulties      map[string]DifficultyConfig `yaml:"difficulties"`
}

// LayerConfig is a background or light image.
type LayerConfig struct {
	Sprite string  `yaml:"sprite"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnConfig bounds the random placement and speeds of enemies.
type SpawnConfig struct {
	X      RangeConfig `yaml:"x"`
	Y      RangeConfig `yaml:"y"`
	XSpeed RangeConfig `yaml:"xSpeed"`
	YSpeed RangeConfig `yaml:"ySpeed"`
}

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DifficultyConfig holds the per-type stats for one difficulty. Enemy
// stats are keyed by the roster's stats name.
type DifficultyConfig struct {
	Player  StatsConfig            `yaml:"player"`
	Boss    StatsConfig            `yaml:"boss"`
	Enemies map[string]StatsConfig `yaml:"enemies"`

	// HPMultiplier and DamageMultiplier scale enemies and boss; 0 means 1
	HPMultiplier     float64 `yaml:"hpMultiplier"`
	DamageMultiplier float64 `yaml:"damageMultiplier"`
}

type StatsConfig struct {
	HP     int `yaml:"hp"`
	Damage int `yaml:"damage"`
}

// DifficultyNames returns the configured difficulties in sorted order
func (c *LevelConfig) DifficultyNames() []string {
	names := make([]string, 0, len(c.Difficulties))
	for name := range c.Difficulties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Difficulty returns the named stats, falling back to the default.
func (c *LevelConfig) Difficulty(name string) (string, DifficultyConfig, error) {
	if name == "" {
		name = c.DefaultDifficulty
	}
	d, ok := c.Difficulties[name]
	if !ok {
		return "", DifficultyConfig{}, fmt.Errorf("unknown difficulty %q", name)
	}
	return name, d, nil
}

// Validate checks ranges, enemy types and difficulty coverage.
func (c *LevelConfig) Validate() error {
	for name, r := range map[string]RangeConfig{
		"spawn.x":      c.Spawn.X,
		"spawn.y":      c.Spawn.Y,
		"spawn.xSpeed": c.Spawn.XSpeed,
		"spawn.ySpeed": c.Spawn.YSpeed,
	} {
		if r.Min > r.Max {
			return fmt.Errorf("%s range invalid: min(%.1f) > max(%.1f)", name, r.Min, r.Max)
		}
	}

	for i, e := range c.Enemies {
		if !knownEnemyTypes[e.Type] {
			return fmt.Errorf("enemy %d: unknown type %q", i, e.Type)
		}
		if e.Stats == "" {
			return fmt.Errorf("enemy %d: stats is required", i)
		}
	}

	if c.Boss.Width <= 0 {
		return fmt.Errorf("boss width must be positive, got %.1f", c.Boss.Width)
	}

	if len(c.Difficulties) == 0 {
		return fmt.Errorf("no difficulties configured")
	}
	if _, ok := c.Difficulties[c.DefaultDifficulty]; !ok {
		return fmt.Errorf("default difficulty %q is not configured", c.DefaultDifficulty)
	}
	for _, name := range c.DifficultyNames() {
		d := c.Difficulties[name]
		if d.Player.HP <= 0 {
			return fmt.Errorf("difficulty %s: player hp must be positive", name)
		}
		for _, e := range c.Enemies {
			if _, ok := d.Enemies[e.Stats]; !ok {
				return fmt.Errorf("difficulty %s: missing stats for %q", name, e.Stats)
			}
		}
	}
	return nil
}
