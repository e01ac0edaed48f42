// Package world runs one playthrough of a level: it owns every entity
// and manager and advances them on a single simulation clock.
package world

import (
	"log"
	"math/rand"

	"github.com/younwookim/sharkie/internal/application/hud"
	"github.com/younwookim/sharkie/internal/application/render"
	"github.com/younwookim/sharkie/internal/application/state"
	"github.com/younwookim/sharkie/internal/application/system"
	"github.com/younwookim/sharkie/internal/domain/entity"
	"github.com/younwookim/sharkie/internal/infrastructure/config"
)

// Settings are the world's timing and debug knobs.
type Settings struct {
	CanvasWidth  float64
	CanvasHeight float64

	StartDelayMs     float64
	BossGraceMs      float64
	CollisionPadding float64
	ProjectileMargin float64

	Render render.Options
}

// DefaultSettings returns the stock 720x480 settings
func DefaultSettings() Settings {
	return Settings{
		CanvasWidth:      720,
		CanvasHeight:     480,
		StartDelayMs:     2500,
		BossGraceMs:      system.DefaultBossGraceMs,
		CollisionPadding: system.DefaultCollisionPadding,
		ProjectileMargin: system.DefaultProjectileMargin,
	}
}

// SettingsFrom reads the settings from game.yaml
func SettingsFrom(g *config.GameConfig) Settings {
	return Settings{
		CanvasWidth:      float64(g.Display.ScreenWidth),
		CanvasHeight:     float64(g.Display.ScreenHeight),
		StartDelayMs:     g.Timings.StartDelayMs,
		BossGraceMs:      g.Timings.BossGraceMs,
		CollisionPadding: g.Timings.CollisionPadding,
		ProjectileMargin: g.Timings.ProjectileMargin,
		Render:           render.Options{Placeholders: g.Render.Placeholders},
	}
}

// World is the orchestrator of a running level.
type World struct {
	settings Settings
	clock    *entity.SimClock
	level    *system.Level

	player       *entity.Player
	boss         *entity.Boss
	enemies      []*entity.Enemy
	backgrounds  []*entity.Decoration
	lights       []*entity.Decoration
	input        entity.Input
	camera       *system.Camera
	collisions   *system.CollisionManager
	collectibles *system.CollectibleManager
	projectiles  *system.ProjectileManager
	playerHud    *hud.PlayerHud
	bossHud      *hud.BossHud

	worldLeft, worldRight float64

	frozen bool
	paused bool

	inStartDelay  bool
	startDeadline float64

	bossSequenceStarted bool
	bossVisible         bool
	bossFightActive     bool

	endState     hud.EndState
	pendingState hud.EndState

	lastFrameAt float64
	started     bool
	destroyed   bool
}

// Load builds the level from configs and wraps it in a world. The seed
// drives enemy placement and speeds.
func Load(cfg *config.Config, difficulty string, seed int64) (*World, error) {
	clock := &entity.SimClock{}
	lvl, err := system.LoadLevel(cfg.Game, cfg.Level, system.LevelOptions{
		Difficulty: difficulty,
		Rand:       rand.New(rand.NewSource(seed)),
		Clock:      clock,
	})
	if err != nil {
		return nil, err
	}
	return New(lvl, clock, SettingsFrom(cfg.Game)), nil
}

// New wires a built level into a world. Enemies, boss and player movement
// stay frozen until the start delay has passed.
func New(lvl *system.Level, clock *entity.SimClock, s Settings) *World {
	w := &World{
		settings:     s,
		clock:        clock,
		level:        lvl,
		player:       lvl.Player,
		boss:         lvl.Boss,
		enemies:      lvl.Enemies,
		backgrounds:  lvl.Backgrounds,
		lights:       lvl.Lights,
		collisions:   system.NewCollisionManager(s.CollisionPadding, clock),
		collectibles: system.NewCollectibleManager(lvl.Collectibles),
		projectiles:  system.NewProjectileManager(s.ProjectileMargin),
		endState:     hud.EndNone,
		pendingState: hud.EndNone,
	}

	w.worldLeft, w.worldRight = system.WorldBounds(s.CanvasWidth, lvl.Layers()...)
	w.camera = system.NewCamera(s.CanvasWidth, w.worldLeft, w.worldRight)

	w.playerHud = hud.NewPlayerHud(w.player, lvl.HUD.LifeBar, lvl.HUD.Poison, lvl.HUD.Coin)
	w.bossHud = hud.NewBossHud(w.boss, s.CanvasWidth, s.CanvasHeight, lvl.HUD.BossBar)
	if lvl.HUD.BossName != "" {
		w.bossHud.Name = lvl.HUD.BossName
	}

	w.collisions.OnEnemy = w.onEnemyContact
	w.collisions.OnBoss = w.onBossContact

	w.player.Attach(w, &w.input)
	w.camera.Follow(w.player.X, w.player.Width)

	for _, e := range w.enemies {
		e.SetArena(w.worldLeft, w.worldRight, s.CanvasHeight)
		e.Start()
	}
	w.freezeEnemies()
	w.boss.Freeze()

	w.inStartDelay = true
	w.startDeadline = clock.NowMs() + s.StartDelayMs
	return w
}

// IsFrozen reports the world freeze used by the boss intro and end states
func (w *World) IsFrozen() bool { return w.frozen }

// IsPaused reports the user pause
func (w *World) IsPaused() bool { return w.paused }

func (w *World) stopped() bool { return w.frozen || w.paused }

// Bounds returns the horizontal world extent
func (w *World) Bounds() (left, right float64) { return w.worldLeft, w.worldRight }

// CanvasHeight returns the vertical extent of the world
func (w *World) CanvasHeight() float64 { return w.settings.CanvasHeight }

// FollowPlayer centers the camera on the player. Reaching the right end
// of the world starts the boss intro once.
func (w *World) FollowPlayer() {
	w.camera.Follow(w.player.X, w.player.Width)
	if !w.bossSequenceStarted && w.camera.ArrivedAtRightEdge() {
		w.startBossIntro()
	}
}

// AddProjectile adds a projectile from any source
func (w *World) AddProjectile(src entity.ProjectileSource) bool {
	return w.projectiles.Add(src, w.player.DirectionLeft)
}

// ResolveFinSlap damages the first live enemy inside reach, or the boss
// when no enemy was hit.
func (w *World) ResolveFinSlap(reach entity.Rect, damage int) {
	for _, e := range w.enemies {
		if !e.IsDead() && reach.Intersects(e.Hitbox()) {
			e.TakeDamage(damage)
			return
		}
	}
	if w.bossVisible && !w.boss.IsDead() && reach.Intersects(w.boss.Hitbox()) {
		w.boss.TakeDamage(damage)
	}
}

// SetInput replaces the directional input the player reads
func (w *World) SetInput(in entity.Input) { w.input = in }

// SetPaused pauses or resumes. Resuming keeps whatever the boss intro,
// the start delay or a pending end state still holds frozen.
func (w *World) SetPaused(paused bool) {
	if paused == w.paused {
		return
	}
	w.paused = paused

	if paused {
		w.freezeEnemies()
		w.collectibles.Freeze()
		w.playerHud.Freeze()
		w.boss.Freeze()
		return
	}

	w.collectibles.Unfreeze()
	w.playerHud.Unfreeze()
	if !w.frozen && !w.inStartDelay {
		w.unfreezeEnemies()
	}
	keepBossFrozen := w.pendingState != hud.EndNone || w.endState != hud.EndNone
	if !keepBossFrozen && !w.inStartDelay {
		w.boss.Unfreeze()
	}
}

// TogglePause flips the pause state. Ignored once the game has ended.
func (w *World) TogglePause() {
	if w.endState != hud.EndNone {
		return
	}
	w.SetPaused(!w.paused)
}

// ToggleHitboxes flips the hitbox overlay
func (w *World) ToggleHitboxes() {
	w.settings.Render.Hitboxes = !w.settings.Render.Hitboxes
}

// HandleIntent applies a discrete action. Returns true when the intent
// asks for a restart that is allowed now.
func (w *World) HandleIntent(in system.Intent) bool {
	switch in.(type) {
	case system.PauseIntent:
		w.TogglePause()
	case system.ToggleHitboxesIntent:
		w.ToggleHitboxes()
	case system.RestartIntent:
		return w.endState != hud.EndNone
	default:
		system.ApplyPlayerIntent(w.player, in)
	}
	return false
}

// EndState returns the outcome, EndNone while playing
func (w *World) EndState() hud.EndState { return w.endState }

// State maps the world flags onto a session phase.
func (w *World) State() state.GameState {
	switch {
	case w.endState == hud.EndWin:
		return state.StateStageClear
	case w.endState == hud.EndLose:
		return state.StateGameOver
	case w.pendingState == hud.EndLose:
		return state.StateDying
	case w.paused:
		return state.StatePaused
	case w.inStartDelay:
		return state.StateStarting
	case w.bossSequenceStarted && !w.bossFightActive:
		return state.StateBossIntro
	default:
		return state.StatePlaying
	}
}

// Destroy stops every driver of every owned entity and manager.
func (w *World) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.player.Destroy()
	w.boss.Destroy()
	for _, e := range w.enemies {
		e.Destroy()
	}
	w.collectibles.Destroy()
	w.projectiles.Destroy()
	w.playerHud.Destroy()
	w.collisions.Reset()
}

// Accessors used by the frontends and tests.

func (w *World) Player() *entity.Player                  { return w.player }
func (w *World) Boss() *entity.Boss                      { return w.boss }
func (w *World) Enemies() []*entity.Enemy                { return w.enemies }
func (w *World) Collectibles() []*entity.Collectible     { return w.collectibles.Items() }
func (w *World) Projectiles() []*entity.Projectile       { return w.projectiles.Projectiles() }
func (w *World) Camera() *system.Camera                  { return w.camera }
func (w *World) Collisions() *system.CollisionManager    { return w.collisions }
func (w *World) Clock() entity.Clock                     { return w.clock }
func (w *World) Level() *system.Level                    { return w.level }
func (w *World) BossVisible() bool                       { return w.bossVisible }
func (w *World) BossFightActive() bool                   { return w.bossFightActive }
func (w *World) InStartDelay() bool                      { return w.inStartDelay }
func (w *World) PendingEndState() hud.EndState           { return w.pendingState }
func (w *World) Hitboxes() bool                          { return w.settings.Render.Hitboxes }
func (w *World) Settings() Settings                      { return w.settings }

func (w *World) freezeEnemies() {
	for _, e := range w.enemies {
		e.Freeze()
	}
}

func (w *World) unfreezeEnemies() {
	for _, e := range w.enemies {
		e.Unfreeze()
	}
}

func (w *World) startBossIntro() {
	w.bossSequenceStarted = true
	w.bossVisible = true
	w.bossFightActive = false
	w.frozen = true
	w.freezeEnemies()

	_, viewRight := w.camera.ViewBounds()
	w.boss.AlignForIntro(w.player.Hitbox(), viewRight, w.settings.CanvasHeight)
	w.boss.ClampWithin(w.worldLeft, w.worldRight, w.settings.CanvasHeight)
	log.Printf("Boss intro started at x=%.0f", w.boss.X)
	w.boss.PlayIntroduceOnce(w.onBossIntroComplete)
}

func (w *World) onBossIntroComplete() {
	w.frozen = false
	w.bossFightActive = true
	w.collisions.StartGrace(w.settings.BossGraceMs)
	if !w.paused {
		w.unfreezeEnemies()
	}
}

func (w *World) onEnemyContact(e *entity.Enemy) {
	variant := entity.HurtElectricShock
	if e.EnemyType == entity.EnemyPufferfish {
		variant = entity.HurtPoisoned
	}
	w.player.TakeDamage(e.Damage, variant)
}

// onBossContact lets the boss attack only when the contact actually hurt.
func (w *World) onBossContact(b *entity.Boss) {
	before := w.player.HP
	w.player.TakeDamage(b.Damage, entity.HurtElectricShock)
	if w.player.HP < before {
		b.PlayAttackOnce(nil)
	}
}
