package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sharkie/internal/domain/entity"
	"github.com/younwookim/sharkie/internal/infrastructure/config"
)

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll("level1")
	require.NoError(t, err)
	return cfg
}

func TestLoadLevel_Level1(t *testing.T) {
	cfg := loadTestConfig(t)
	clock := &entity.SimClock{}

	lvl, err := LoadLevel(cfg.Game, cfg.Level, LevelOptions{Rand: rand.New(rand.NewSource(7)), Clock: clock})
	require.NoError(t, err)

	assert.Equal(t, "medium", lvl.Difficulty)
	assert.Equal(t, 20, lvl.Player.MaxHP)
	assert.Equal(t, 1, lvl.Player.Damage)
	assert.Equal(t, 250.0, lvl.Player.Width)

	require.Len(t, lvl.Enemies, 3)
	for i, e := range lvl.Enemies {
		assert.Equal(t, entity.EntityID(i+1), e.ID)
		assert.GreaterOrEqual(t, e.X, 250.0)
		assert.LessOrEqual(t, e.X, 2200.0)
		assert.GreaterOrEqual(t, e.Y, 100.0)
		assert.LessOrEqual(t, e.Y, 400.0)
		assert.Equal(t, e.X, float64(int(e.X)), "whole-pixel spawn")
		assert.GreaterOrEqual(t, e.XSpeed, 0.4)
		assert.LessOrEqual(t, e.XSpeed, 1.4)
		assert.GreaterOrEqual(t, e.YSpeed, 0.3)
		assert.LessOrEqual(t, e.YSpeed, 1.2)
		assert.InDelta(t, e.XSpeed, float64(int(e.XSpeed*100+0.5))/100, 1e-9)
	}
	assert.Equal(t, entity.EnemyJellyfish, lvl.Enemies[0].EnemyType)
	assert.Equal(t, entity.EnemyPufferfish, lvl.Enemies[1].EnemyType)
	assert.Equal(t, 8, lvl.Enemies[2].MaxHP, "super jellyfish stats")
	assert.Equal(t, 125.0, lvl.Enemies[2].Width)

	assert.Equal(t, 20, lvl.Boss.MaxHP)
	assert.Equal(t, 4, lvl.Boss.Damage)
	assert.Equal(t, 450.0, lvl.Boss.Width)

	assert.Len(t, lvl.Collectibles, 13)
	assert.Equal(t, entity.CollectibleCoin, lvl.Collectibles[0].Type)
	assert.Equal(t, 40.0, lvl.Collectibles[0].Width)
	assert.Equal(t, entity.CollectiblePoison, lvl.Collectibles[12].Type)
	assert.Equal(t, 45.0, lvl.Collectibles[12].Width)

	assert.Len(t, lvl.Backgrounds, 16)
	assert.Len(t, lvl.Lights, 4)
	assert.Len(t, lvl.Layers(), 20)
	assert.Equal(t, 480.0, lvl.Lights[0].Height())

	assert.Equal(t, "hud/bar/purple-life-60.png", lvl.HUD.LifeBar[60])
	assert.Len(t, lvl.HUD.Poison.Frames, 8)
	assert.Equal(t, "Willy the Whale", lvl.HUD.BossName)
}

func TestLoadLevel_SeedIsDeterministic(t *testing.T) {
	cfg := loadTestConfig(t)
	a, err := LoadLevel(cfg.Game, cfg.Level, LevelOptions{Rand: rand.New(rand.NewSource(42)), Clock: &entity.SimClock{}})
	require.NoError(t, err)
	b, err := LoadLevel(cfg.Game, cfg.Level, LevelOptions{Rand: rand.New(rand.NewSource(42)), Clock: &entity.SimClock{}})
	require.NoError(t, err)

	for i := range a.Enemies {
		assert.Equal(t, a.Enemies[i].X, b.Enemies[i].X)
		assert.Equal(t, a.Enemies[i].Y, b.Enemies[i].Y)
		assert.Equal(t, a.Enemies[i].XSpeed, b.Enemies[i].XSpeed)
	}
}

func TestLoadLevel_Difficulties(t *testing.T) {
	cfg := loadTestConfig(t)

	tests := []struct {
		difficulty string
		playerHP   int
		pufferHP   int
		bossHP     int
	}{
		{"easy", 20, 2, 10},
		{"medium", 20, 4, 20},
		{"hard", 10, 4, 20},
		{"impossible", 1, 4, 20},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			lvl, err := LoadLevel(cfg.Game, cfg.Level, LevelOptions{Difficulty: tt.difficulty, Clock: &entity.SimClock{}})
			require.NoError(t, err)
			assert.Equal(t, tt.difficulty, lvl.Difficulty)
			assert.Equal(t, tt.playerHP, lvl.Player.HP)
			assert.Equal(t, tt.pufferHP, lvl.Enemies[1].MaxHP)
			assert.Equal(t, tt.bossHP, lvl.Boss.MaxHP)
		})
	}

	_, err := LoadLevel(cfg.Game, cfg.Level, LevelOptions{Difficulty: "nightmare"})
	assert.ErrorContains(t, err, "unknown difficulty")
}

func TestLoadLevel_FixedPositionsAndMultipliers(t *testing.T) {
	x, y := 300.0, 120.0
	game := &config.GameConfig{Display: config.DisplayConfig{ScreenWidth: 720, ScreenHeight: 480}}
	lvl := &config.LevelConfig{
		Name:    "custom",
		Enemies: []config.EnemyConfig{{Type: "boss", Stats: "minion", X: &x, Y: &y}},
		Boss:    config.BossConfig{Width: 450},
		Lights:  []config.LayerConfig{{Sprite: "l.png", X: 0, Width: 720}},
		Spawn: config.SpawnConfig{
			XSpeed: config.RangeConfig{Min: 1, Max: 1},
			YSpeed: config.RangeConfig{Min: 0.5, Max: 0.5},
		},
		DefaultDifficulty: "normal",
		Difficulties: map[string]config.DifficultyConfig{
			"normal": {
				Player:           config.StatsConfig{HP: 10},
				Boss:             config.StatsConfig{HP: 10, Damage: 2},
				Enemies:          map[string]config.StatsConfig{"minion": {HP: 4, Damage: 2}},
				HPMultiplier:     2,
				DamageMultiplier: 1.5,
			},
		},
	}

	got, err := LoadLevel(game, lvl, LevelOptions{Clock: &entity.SimClock{}})
	require.NoError(t, err)

	e := got.Enemies[0]
	assert.Equal(t, entity.EnemyBossTag, e.EnemyType)
	assert.Equal(t, 300.0, e.X)
	assert.Equal(t, 120.0, e.Y)
	assert.Equal(t, 1.0, e.XSpeed)
	assert.Equal(t, 0.5, e.YSpeed)
	assert.Equal(t, 100.0, e.Width, "default width")
	assert.Equal(t, 8, e.MaxHP)
	assert.Equal(t, 3, e.Damage)
	assert.Equal(t, 4, e.BaseMaxHP)

	assert.Equal(t, 20, got.Boss.MaxHP)
	assert.Equal(t, 3, got.Boss.Damage)
	assert.Equal(t, 1, got.Player.Damage, "player damage defaults to 1")
	assert.Equal(t, 480.0, got.Lights[0].Height(), "layers default to canvas height")
	assert.Equal(t, entity.DefaultPlayerTuning().Width, got.Player.Width)
	assert.Nil(t, got.HUD.LifeBar)
}

func TestRandomIn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := randomIn(rng, config.RangeConfig{Min: 250, Max: 260}, true)
		assert.GreaterOrEqual(t, v, 250.0)
		assert.LessOrEqual(t, v, 260.0)
		assert.Equal(t, v, float64(int(v)))
	}
	assert.Equal(t, 5.0, randomIn(rng, config.RangeConfig{Min: 5, Max: 5}, true))
	assert.Equal(t, 1.23, round2(1.234))
	assert.Equal(t, 1.0, multiplier(0))
	assert.Equal(t, 2.0, multiplier(2))
}
