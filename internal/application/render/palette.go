package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/younwookim/sharkie/internal/domain/entity"
)

// Size of one glyph of the debug font
const (
	GlyphWidth  = 6
	GlyphHeight = 16
)

var (
	Water           = colornames.Midnightblue
	Light           = color.RGBA{135, 206, 250, 40}
	HitboxIdle      = colornames.Blue
	HitboxColliding = colornames.Red
	Text            = colornames.White
	TextShadow      = color.RGBA{0, 0, 0, 190}
	Overlay         = color.RGBA{0, 0, 0, 166}
	BarBackground   = color.RGBA{0, 0, 0, 140}
	BarBorder       = color.RGBA{255, 255, 255, 217}
	BossBarFill     = color.RGBA{255, 69, 58, 230}
)

var kindColors = map[entity.Kind]color.RGBA{
	entity.KindDecoration:  colornames.Darkslateblue,
	entity.KindPlayer:      colornames.Slategray,
	entity.KindEnemy:       colornames.Orange,
	entity.KindBoss:        colornames.Darkviolet,
	entity.KindProjectile:  colornames.Lightcyan,
	entity.KindCollectible: colornames.Gold,
}

// KindColor returns the placeholder colour for an entity kind
func KindColor(k entity.Kind) color.RGBA {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return colornames.Magenta
}

var barColors = map[string]color.RGBA{
	"purple": colornames.Mediumpurple,
	"green":  colornames.Limegreen,
	"orange": colornames.Darkorange,
}

// BarColor returns the fill colour for a status bar colour name
func BarColor(name string) color.RGBA {
	if c, ok := barColors[name]; ok {
		return c
	}
	return BossBarFill
}
