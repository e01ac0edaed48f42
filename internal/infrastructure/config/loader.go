package config

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config holds all loaded configurations
type Config struct {
	Game  *GameConfig
	Level *LevelConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string { return l.basePath }

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads a level YAML file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	path := "levels/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads game.yaml and the named level
func (l *Loader) LoadAll(level string) (*Config, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	lvl, err := l.LoadLevel(level)
	if err != nil {
		return nil, err
	}

	return &Config{
		Game:  game,
		Level: lvl,
	}, nil
}

// SpritePaths lists every sprite the configs reference, deduplicated
// and sorted, for preloading.
func (c *Config) SpritePaths() []string {
	seen := make(map[string]bool)
	add := func(paths ...string) {
		for _, p := range paths {
			if p != "" {
				seen[p] = true
			}
		}
	}
	addSet := func(sets ...FrameSetConfig) {
		for _, s := range sets {
			add(s.Paths()...)
		}
	}

	if g := c.Game; g != nil {
		ps := g.Player.Sprites
		addSet(ps.Swim, ps.Idle, ps.IdleLong)
		for _, m := range []map[string]FrameSetConfig{ps.Hurt, ps.Dead, ps.Attack} {
			for _, s := range m {
				addSet(s)
			}
		}
		add(ps.Bubble, ps.PoisonBubble)
		addSet(g.HUD.PoisonIcon, g.HUD.CoinIcon)
		for _, steps := range []StepFramesConfig{g.HUD.LifeBar, g.HUD.BossBar} {
			for _, p := range steps.Expand([]int{0, 20, 40, 60, 80, 100}) {
				add(p)
			}
		}
	}

	if l := c.Level; l != nil {
		for _, layer := range append(append([]LayerConfig{}, l.Backgrounds...), l.Lights...) {
			add(layer.Sprite)
		}
		for _, e := range l.Enemies {
			addSet(e.Sprites.Swim, e.Sprites.Hurt, e.Sprites.Dead)
		}
		b := l.Boss.Sprites
		addSet(b.Introduce, b.Floating, b.Attack, b.Hurt, b.Dead)
		addSet(l.Coins.Frames, l.Poisons.Frames)
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
