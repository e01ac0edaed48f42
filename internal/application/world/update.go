package world

import (
	"log"

	"github.com/younwookim/sharkie/internal/application/hud"
)

// Update advances the world to the render timestamp now (ms). The first
// call only anchors the timestamp. A timestamp that runs backwards counts
// as no time passing.
func (w *World) Update(now float64) {
	if w.destroyed {
		return
	}
	dt := 0.0
	if w.started {
		dt = max(0, now-w.lastFrameAt)
	}
	w.started = true
	w.lastFrameAt = now
	w.Step(dt)
}

// Step advances the world by dtMs of simulation time. The clock keeps
// running while paused, so cooldowns and the boss grace window expire
// during a pause; only the drivers stand still.
func (w *World) Step(dtMs float64) {
	if w.destroyed {
		return
	}
	w.clock.Add(dtMs)
	w.releaseStartDelay()

	w.advanceDrivers(dtMs)
	w.updateBossChase(dtMs)
	w.updateCollisions()
	w.updatePickups()
	w.updateProjectiles(dtMs)

	w.playerHud.Sync(w.player)
	w.bossHud.Sync(w.bossVisible)
	w.updateEndState()
	w.removeFinishedEnemies()
}

// releaseStartDelay ends the opening pause once its deadline passed. While
// the user is paused the release waits for the first unpaused frame.
func (w *World) releaseStartDelay() {
	if !w.inStartDelay || w.paused || w.clock.NowMs() < w.startDeadline {
		return
	}
	w.inStartDelay = false
	if w.endState == hud.EndNone && w.pendingState == hud.EndNone {
		if !w.frozen {
			w.unfreezeEnemies()
		}
		w.boss.Unfreeze()
	}
	w.player.StartMovement()
}

func (w *World) advanceDrivers(dtMs float64) {
	w.player.Update(dtMs)
	for _, e := range w.enemies {
		e.Update(dtMs)
	}
	w.boss.Update(dtMs)
	w.collectibles.Advance(dtMs)
	w.playerHud.Update(dtMs)
}

func (w *World) updateBossChase(dtMs float64) {
	if w.stopped() || !w.bossVisible || !w.bossFightActive {
		return
	}
	if w.player.IsDead() || w.boss.IsDead() {
		return
	}
	w.boss.ChaseStep(w.player.Hitbox(), dtMs, w.worldLeft, w.worldRight, w.settings.CanvasHeight)
}

func (w *World) updateCollisions() {
	if w.stopped() {
		w.collisions.Reset()
		return
	}
	w.collisions.Update(w.player, w.enemies, w.boss, w.bossVisible)
}

func (w *World) updatePickups() {
	if w.stopped() {
		return
	}
	w.collectibles.Update(w.player)
}

func (w *World) updateProjectiles(dtMs float64) {
	if w.stopped() {
		return
	}
	w.projectiles.Update(dtMs, w.enemies, w.boss, w.bossVisible, w.worldLeft, w.worldRight)
}

// updateEndState resolves win and lose. A lose is only shown once the
// player's death animation has played out.
func (w *World) updateEndState() {
	if w.pendingState == hud.EndLose && w.endState == hud.EndNone {
		if w.player.IsDeadAnimationFinished() {
			w.endState = hud.EndLose
			log.Printf("Game over: %s", w.endState)
		}
		return
	}
	if w.endState != hud.EndNone || w.pendingState != hud.EndNone {
		return
	}

	if w.player.IsDead() {
		w.pendingState = hud.EndLose
		w.frozen = true
		w.bossFightActive = false
		w.freezeEnemies()
		w.boss.Freeze()
		return
	}

	if w.bossVisible && w.boss.IsDead() {
		w.endState = hud.EndWin
		w.frozen = true
		w.bossFightActive = false
		w.freezeEnemies()
		w.boss.Freeze()
		w.collectibles.Freeze()
		w.playerHud.Freeze()
		log.Printf("Game over: %s", w.endState)
	}
}

func (w *World) removeFinishedEnemies() {
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if e.ShouldRemove {
			e.Destroy()
			continue
		}
		kept = append(kept, e)
	}
	clear(w.enemies[len(kept):])
	w.enemies = kept
}
