package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Timings TimingsConfig `yaml:"timings"`
	Render  RenderConfig  `yaml:"render"`
	Player  PlayerConfig  `yaml:"player"`
	HUD     HUDConfig     `yaml:"hud"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	TPS          int `yaml:"tps"`
}

type TimingsConfig struct {
	StartDelayMs     float64 `yaml:"startDelayMs"`
	BossGraceMs      float64 `yaml:"bossGraceMs"`
	CollisionPadding float64 `yaml:"collisionPadding"`
	ProjectileMargin float64 `yaml:"projectileMargin"`
}

type RenderConfig struct {
	// Placeholders draws coloured rectangles for sprites that failed to load
	Placeholders bool `yaml:"placeholders"`
	// AssetRoot is the directory sprite paths are relative to
	AssetRoot string `yaml:"assetRoot"`
}

type HUDConfig struct {
	LifeBar    StepFramesConfig `yaml:"lifeBar"`
	BossBar    StepFramesConfig `yaml:"bossBar"`
	PoisonIcon FrameSetConfig   `yaml:"poisonIcon"`
	CoinIcon   FrameSetConfig   `yaml:"coinIcon"`
	BossName   string           `yaml:"bossName"`
}

// Validate checks the values the simulation cannot clamp on its own.
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.TPS < 0 {
		return fmt.Errorf("display tps must not be negative, got %d", c.Display.TPS)
	}
	if c.Timings.StartDelayMs < 0 || c.Timings.BossGraceMs < 0 {
		return fmt.Errorf("timings must not be negative")
	}
	if c.Player.Width <= 0 {
		return fmt.Errorf("player width must be positive, got %.1f", c.Player.Width)
	}
	if c.Player.SpeedX < 0 || c.Player.SpeedY < 0 {
		return fmt.Errorf("player speeds must not be negative")
	}
	return nil
}

// Ratio is a height/width ratio written either as a number or as "h/w".
type Ratio float64

// UnmarshalYAML implements yaml.Unmarshaler
func (r *Ratio) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: ratio must be a scalar", node.Line)
	}
	v, err := ParseRatio(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = Ratio(v)
	return nil
}

// ParseRatio parses "300/211" or "1.42".
func ParseRatio(s string) (float64, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ratio %q: %w", s, err)
	}
	if !ok {
		return n, nil
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ratio %q: %w", s, err)
	}
	if d == 0 {
		return 0, fmt.Errorf("invalid ratio %q: zero denominator", s)
	}
	return n / d, nil
}

// FrameSetConfig lists animation frames either explicitly or as a
// pattern: "boss/floating/{n}.png" with count 13 expands to 1..13.
type FrameSetConfig struct {
	Pattern string   `yaml:"pattern"`
	Count   int      `yaml:"count"`
	FPS     float64  `yaml:"fps"`
	Frames  []string `yaml:"frames"`
}

// Paths returns the frame paths. Explicit frames win over the pattern.
func (f FrameSetConfig) Paths() []string {
	if len(f.Frames) > 0 {
		return f.Frames
	}
	if f.Pattern == "" || f.Count <= 0 {
		return nil
	}
	if !strings.Contains(f.Pattern, "{n}") {
		return []string{f.Pattern}
	}
	paths := make([]string, f.Count)
	for i := range paths {
		paths[i] = strings.ReplaceAll(f.Pattern, "{n}", strconv.Itoa(i+1))
	}
	return paths
}

// StepFramesConfig names one sprite per status bar step, e.g.
// "hud/life/{step}.png".
type StepFramesConfig struct {
	Pattern string `yaml:"pattern"`
}

// Expand returns step -> path for the given steps, nil without a pattern.
func (s StepFramesConfig) Expand(steps []int) map[int]string {
	if s.Pattern == "" {
		return nil
	}
	frames := make(map[int]string, len(steps))
	for _, step := range steps {
		frames[step] = strings.ReplaceAll(s.Pattern, "{step}", strconv.Itoa(step))
	}
	return frames
}
