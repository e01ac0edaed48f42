package system

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/younwookim/sharkie/internal/application/hud"
	"github.com/younwookim/sharkie/internal/domain/entity"
	"github.com/younwookim/sharkie/internal/infrastructure/config"
)

const (
	defaultEnemyWidth  = 100
	defaultAspectRatio = 2.0 / 3.0
)

var enemyTypes = map[string]entity.EnemyType{
	"pufferfish": entity.EnemyPufferfish,
	"jellyfish":  entity.EnemyJellyfish,
	"boss":       entity.EnemyBossTag,
}

// HUDFrames are the sprites the HUD widgets draw with
type HUDFrames struct {
	LifeBar  map[int]string
	BossBar  map[int]string
	Poison   entity.FrameSet
	Coin     entity.FrameSet
	BossName string
}

// Level is everything one playthrough is built from.
type Level struct {
	Name       string
	Difficulty string

	Player       *entity.Player
	Boss         *entity.Boss
	Enemies      []*entity.Enemy
	Collectibles []*entity.Collectible
	Backgrounds  []*entity.Decoration
	Lights       []*entity.Decoration

	HUD HUDFrames
}

// LevelOptions selects the difficulty and the randomness source.
type LevelOptions struct {
	Difficulty string
	Rand       *rand.Rand
	Clock      entity.Clock
}

// LoadLevel converts the configs into entities. Enemies without a fixed
// position, and every enemy speed, are drawn from opts.Rand.
func LoadLevel(game *config.GameConfig, cfg *config.LevelConfig, opts LevelOptions) (*Level, error) {
	name, stats, err := cfg.Difficulty(opts.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", cfg.Name, err)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	hpMul, dmgMul := multiplier(stats.HPMultiplier), multiplier(stats.DamageMultiplier)

	lvl := &Level{Name: cfg.Name, Difficulty: name}

	playerDamage := stats.Player.Damage
	if playerDamage <= 0 {
		playerDamage = 1
	}
	lvl.Player = entity.NewPlayer(cfg.Player.X, cfg.Player.Y,
		playerTuning(game.Player), playerSprites(game.Player.Sprites),
		entity.NewCombat(stats.Player.HP, playerDamage), opts.Clock)

	canvasH := float64(game.Display.ScreenHeight)
	lvl.Backgrounds = loadLayers(cfg.Backgrounds, canvasH)
	lvl.Lights = loadLayers(cfg.Lights, canvasH)

	for i, e := range cfg.Enemies {
		s := stats.Enemies[e.Stats]
		combat := entity.NewCombat(s.HP, s.Damage)
		combat.ApplyMultipliers(hpMul, dmgMul)
		lvl.Enemies = append(lvl.Enemies, loadEnemy(entity.EntityID(i+1), e, cfg.Spawn, combat, rng))
	}

	bossCombat := entity.NewCombat(stats.Boss.HP, stats.Boss.Damage)
	bossCombat.ApplyMultipliers(hpMul, dmgMul)
	lvl.Boss = entity.NewBoss(cfg.Boss.X, cfg.Boss.Y, cfg.Boss.Width, ratioOr(cfg.Boss.AspectRatio),
		entity.BossSprites{
			Introduce: frameSet(cfg.Boss.Sprites.Introduce),
			Floating:  frameSet(cfg.Boss.Sprites.Floating),
			Attack:    frameSet(cfg.Boss.Sprites.Attack),
			Hurt:      frameSet(cfg.Boss.Sprites.Hurt),
			Dead:      frameSet(cfg.Boss.Sprites.Dead),
		}, bossCombat, opts.Clock)

	lvl.Collectibles = append(lvl.Collectibles, loadPickups(entity.CollectibleCoin, cfg.Coins)...)
	lvl.Collectibles = append(lvl.Collectibles, loadPickups(entity.CollectiblePoison, cfg.Poisons)...)

	lvl.HUD = HUDFrames{
		LifeBar:  game.HUD.LifeBar.Expand(hud.Steps),
		BossBar:  game.HUD.BossBar.Expand(hud.Steps),
		Poison:   frameSet(game.HUD.PoisonIcon),
		Coin:     frameSet(game.HUD.CoinIcon),
		BossName: game.HUD.BossName,
	}
	return lvl, nil
}

// Layers returns every background and light layer
func (l *Level) Layers() []entity.Positioned {
	layers := make([]entity.Positioned, 0, len(l.Backgrounds)+len(l.Lights))
	for _, d := range l.Backgrounds {
		layers = append(layers, d)
	}
	for _, d := range l.Lights {
		layers = append(layers, d)
	}
	return layers
}

func loadEnemy(id entity.EntityID, e config.EnemyConfig, spawn config.SpawnConfig, combat entity.Combat, rng *rand.Rand) *entity.Enemy {
	x := randomIn(rng, spawn.X, true)
	if e.X != nil {
		x = *e.X
	}
	y := randomIn(rng, spawn.Y, true)
	if e.Y != nil {
		y = *e.Y
	}
	width := e.Width
	if width <= 0 {
		width = defaultEnemyWidth
	}

	enemy := entity.NewEnemy(id, enemyTypes[e.Type], x, y, width, ratioOr(e.AspectRatio), entity.EnemySprites{
		Swim: frameSet(e.Sprites.Swim),
		Hurt: frameSet(e.Sprites.Hurt),
		Dead: frameSet(e.Sprites.Dead),
	}, combat)
	enemy.XSpeed = round2(randomIn(rng, spawn.XSpeed, false))
	enemy.YSpeed = round2(randomIn(rng, spawn.YSpeed, false))
	enemy.SetDirections(false, rng.Intn(2) == 0)
	return enemy
}

func loadPickups(typ entity.CollectibleType, cfg config.PickupConfig) []*entity.Collectible {
	frames := frameSet(cfg.Frames)
	items := make([]*entity.Collectible, 0, len(cfg.Positions))
	for _, p := range cfg.Positions {
		items = append(items, entity.NewCollectible(typ, p.X, p.Y, cfg.Width, cfg.Value, frames))
	}
	return items
}

func loadLayers(cfgs []config.LayerConfig, canvasH float64) []*entity.Decoration {
	layers := make([]*entity.Decoration, 0, len(cfgs))
	for _, c := range cfgs {
		h := c.Height
		if h <= 0 {
			h = canvasH
		}
		layers = append(layers, entity.NewDecoration(c.Sprite, c.X, c.Y, c.Width, h))
	}
	return layers
}

func playerTuning(cfg config.PlayerConfig) entity.PlayerTuning {
	t := entity.DefaultPlayerTuning()
	if cfg.Width > 0 {
		t.Width = cfg.Width
	}
	if cfg.AspectRatio > 0 {
		t.AspectRatio = float64(cfg.AspectRatio)
	}
	if cfg.Hitbox.Width > 0 && cfg.Hitbox.Height > 0 {
		t.Hitbox = entity.HitboxRect{
			OffsetX: cfg.Hitbox.OffsetX,
			OffsetY: cfg.Hitbox.OffsetY,
			Width:   cfg.Hitbox.Width,
			Height:  cfg.Hitbox.Height,
		}
	}
	if cfg.SpeedX > 0 {
		t.SpeedX = cfg.SpeedX
	}
	if cfg.SpeedY > 0 {
		t.SpeedY = cfg.SpeedY
	}
	if cfg.HurtCooldownMs > 0 {
		t.HurtCooldownMs = cfg.HurtCooldownMs
	}
	if cfg.AttackCooldownMs > 0 {
		t.AttackCooldownMs = cfg.AttackCooldownMs
	}
	if cfg.MaxCoins > 0 {
		t.MaxCoins = cfg.MaxCoins
	}
	if cfg.MaxPoisonBottles > 0 {
		t.MaxPoisonBottles = cfg.MaxPoisonBottles
	}
	if cfg.FinSlapReach > 0 {
		t.FinSlapReach = cfg.FinSlapReach
	}
	return t
}

func playerSprites(cfg config.PlayerSpritesConfig) entity.PlayerSprites {
	s := entity.PlayerSprites{
		Swim:         frameSet(cfg.Swim),
		Idle:         frameSet(cfg.Idle),
		IdleLong:     frameSet(cfg.IdleLong),
		Hurt:         map[entity.HurtVariant]entity.FrameSet{},
		Dead:         map[entity.HurtVariant]entity.FrameSet{},
		Attack:       map[entity.AttackVariant]entity.FrameSet{},
		Bubble:       cfg.Bubble,
		PoisonBubble: cfg.PoisonBubble,
	}
	for _, v := range []entity.HurtVariant{entity.HurtElectricShock, entity.HurtPoisoned} {
		if fs, ok := cfg.Hurt[v.String()]; ok {
			s.Hurt[v] = frameSet(fs)
		}
		if fs, ok := cfg.Dead[v.String()]; ok {
			s.Dead[v] = frameSet(fs)
		}
	}
	for _, v := range []entity.AttackVariant{
		entity.AttackFinSlap,
		entity.AttackBubbleTrap,
		entity.AttackBubbleTrapPoisoned,
		entity.AttackBubbleTrapNoBubble,
	} {
		if fs, ok := cfg.Attack[v.String()]; ok {
			s.Attack[v] = frameSet(fs)
		}
	}
	return s
}

func frameSet(cfg config.FrameSetConfig) entity.FrameSet {
	return entity.FrameSet{Frames: cfg.Paths(), FPS: cfg.FPS}
}

func ratioOr(r config.Ratio) float64 {
	if r > 0 {
		return float64(r)
	}
	return defaultAspectRatio
}

func multiplier(m float64) float64 {
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 1
	}
	return m
}

// randomIn draws from [min, max]; whole numbers for positions.
func randomIn(rng *rand.Rand, r config.RangeConfig, whole bool) float64 {
	if whole {
		lo, hi := math.Ceil(r.Min), math.Floor(r.Max)
		if hi <= lo {
			return lo
		}
		return lo + float64(rng.Intn(int(hi-lo)+1))
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
