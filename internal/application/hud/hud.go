// Package hud draws the screen-space overlays: player status, boss health
// and the end screen.
package hud

import (
	"math"

	"github.com/younwookim/sharkie/internal/application/render"
	"github.com/younwookim/sharkie/internal/domain/entity"
)

// PlayerHud shows the player's life bar and poison/coin totals.
type PlayerHud struct {
	Bars     []*StatusBar
	Counters []*Counter
}

// Layout positions for the default player HUD
const (
	hudMargin   = 20
	hudGap      = 12
	hudBarWidth = 250
)

// NewPlayerHud lays out a life bar with the poison and coin counters to its right.
func NewPlayerHud(player *entity.Player, barFrames map[int]string, poison, coin entity.FrameSet) *PlayerHud {
	bar := NewStatusBar("purple", hudMargin, hudMargin, hudBarWidth, player.MaxHP, barFrames)
	iconY := hudMargin + math.Floor((bar.Height()-DefaultIconSize)/2)
	poisonX := float64(hudMargin + hudBarWidth + hudGap)
	coinX := poisonX + DefaultIconSize + 120

	h := &PlayerHud{
		Bars: []*StatusBar{bar},
		Counters: []*Counter{
			NewCounter(CounterPoison, poisonX, iconY, DefaultIconSize, poison),
			NewCounter(CounterCoin, coinX, iconY, DefaultIconSize, coin),
		},
	}
	h.Sync(player)
	return h
}

// Sync copies the player's totals into the widgets
func (h *PlayerHud) Sync(player *entity.Player) {
	for _, b := range h.Bars {
		b.SetMaxValue(player.MaxHP)
		b.SetValue(player.HP)
	}
	for _, c := range h.Counters {
		switch c.Type {
		case CounterPoison:
			c.SetValue(player.PoisonBottles)
		case CounterCoin:
			c.SetValue(player.Coins)
		}
	}
}

// Update advances counter animations
func (h *PlayerHud) Update(dtMs float64) {
	for _, c := range h.Counters {
		c.Update(dtMs)
	}
}

// Draw draws every widget
func (h *PlayerHud) Draw(s render.Surface) {
	for _, b := range h.Bars {
		b.Draw(s)
	}
	for _, c := range h.Counters {
		c.Draw(s)
	}
}

// Freeze suspends counter animations
func (h *PlayerHud) Freeze() {
	for _, c := range h.Counters {
		c.Freeze()
	}
}

// Unfreeze resumes counter animations
func (h *PlayerHud) Unfreeze() {
	for _, c := range h.Counters {
		c.Unfreeze()
	}
}

// Destroy stops counter animations
func (h *PlayerHud) Destroy() {
	for _, c := range h.Counters {
		c.Destroy()
	}
}

// DefaultBossName is shown above the boss bar
const DefaultBossName = "Willy the Whale"

const (
	bossBarWidth        = 420
	bossBarMarginBottom = 18
)

// BossHud shows the boss health bar once the boss is visible.
type BossHud struct {
	Name             string
	boss             *entity.Boss
	bar              *StatusBar
	frames           map[int]string
	canvasW, canvasH float64
}

// NewBossHud creates the boss HUD. The bar is built on first draw.
func NewBossHud(boss *entity.Boss, canvasW, canvasH float64, frames map[int]string) *BossHud {
	return &BossHud{Name: DefaultBossName, boss: boss, frames: frames, canvasW: canvasW, canvasH: canvasH}
}

// Sync copies boss hp while the boss is visible
func (h *BossHud) Sync(visible bool) {
	if !visible || h.bar == nil {
		return
	}
	h.bar.SetMaxValue(h.boss.MaxHP)
	h.bar.SetValue(h.boss.HP)
}

// Bar returns the health bar, nil before the first visible draw
func (h *BossHud) Bar() *StatusBar { return h.bar }

// Draw draws the bar and name when visible
func (h *BossHud) Draw(s render.Surface, visible bool) {
	if !visible {
		return
	}
	h.ensureBar()
	h.bar.Draw(s)

	nameY := math.Max(28, math.Floor(h.bar.Y+h.bar.Height()*0.22+30))
	_, th := s.TextSize(h.Name)
	render.DrawTextCentered(s, h.Name, math.Round(h.canvasW/2)+1, nameY-th/2+1, render.TextShadow)
	render.DrawTextCentered(s, h.Name, math.Round(h.canvasW/2), nameY-th/2, render.Text)
}

func (h *BossHud) ensureBar() {
	if h.bar != nil {
		return
	}
	barH := math.Floor(bossBarWidth * BarAspect)
	x := math.Floor((h.canvasW - bossBarWidth) / 2)
	y := math.Floor(h.canvasH - barH - bossBarMarginBottom)
	h.bar = NewStatusBar("orange", x, y, bossBarWidth, h.boss.MaxHP, h.frames)
	h.bar.SetValue(h.boss.HP)
}

// EndState is the outcome of a world
type EndState string

const (
	EndNone EndState = "none"
	EndWin  EndState = "win"
	EndLose EndState = "lose"
)

// End screen texts
const (
	WinTitle    = "YOU WIN"
	LoseTitle   = "TRY AGAIN"
	RestartHint = "Click / Enter / Space / R"
)

// DrawEndScreen dims the canvas and shows the outcome. No-op for EndNone.
func DrawEndScreen(s render.Surface, state EndState) {
	if state != EndWin && state != EndLose {
		return
	}
	w, h := s.Size()
	s.FillRect(0, 0, w, h, render.Overlay)

	title := LoseTitle
	if state == EndWin {
		title = WinTitle
	}
	render.DrawTextCentered(s, title, w/2, h*0.45, render.Text)
	render.DrawTextCentered(s, RestartHint, w/2, h*0.58, render.Text)
}
