package world

import (
	"github.com/younwookim/sharkie/internal/application/hud"
	"github.com/younwookim/sharkie/internal/application/render"
)

// Render draws the world back to front: layers, pickups, enemies,
// projectiles, boss and player in world space, then the overlays.
func (w *World) Render(s render.Surface) {
	cw, ch := s.Size()
	s.FillRect(0, 0, cw, ch, render.Water)

	off := w.camera.Offset()
	opts := w.settings.Render

	for _, d := range w.backgrounds {
		render.DrawEntity(s, d, off, opts)
	}
	for _, d := range w.lights {
		render.DrawEntity(s, d, off, opts)
	}
	for _, c := range w.collectibles.Items() {
		render.DrawEntity(s, c, off, opts)
		if opts.Hitboxes {
			render.DrawHitbox(s, c.Hitbox(), off, false)
		}
	}
	for _, e := range w.enemies {
		render.DrawEntity(s, e, off, opts)
		if opts.Hitboxes {
			render.DrawHitbox(s, e.Hitbox(), off, w.collisions.IsCollidingWithEnemy(e))
		}
	}
	for _, p := range w.projectiles.Projectiles() {
		render.DrawEntity(s, p, off, opts)
	}
	if w.bossVisible {
		render.DrawEntity(s, w.boss, off, opts)
		if opts.Hitboxes {
			render.DrawHitbox(s, w.boss.Hitbox(), off, w.collisions.IsCollidingWithBoss())
		}
	}
	render.DrawEntity(s, w.player, off, opts)
	if opts.Hitboxes {
		render.DrawHitbox(s, w.player.Hitbox(), off, w.collisions.HasAnyCollision())
	}

	w.playerHud.Draw(s)
	w.bossHud.Draw(s, w.bossVisible)
	hud.DrawEndScreen(s, w.endState)
}

// Draw advances to now and renders the frame.
func (w *World) Draw(now float64, s render.Surface) {
	w.Update(now)
	w.Render(s)
}
