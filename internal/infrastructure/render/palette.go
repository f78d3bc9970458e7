package render

import (
	"image/color"

	"github.com/younwookim/starship/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{5, 5, 20, 255}
	colorShip       = color.RGBA{120, 200, 255, 255}
	colorCockpit    = color.RGBA{255, 255, 255, 255}
	colorPlayerShot = color.RGBA{0, 255, 255, 255}
	colorEnemyShot  = color.RGBA{255, 100, 100, 255}
	colorDebris     = color.RGBA{150, 150, 150, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 220, 100, 255}
	colorHealthLow  = color.RGBA{230, 70, 60, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 128}
	colorGameOver   = color.RGBA{100, 0, 0, 180}
)

var patternColors = map[entity.Pattern]color.RGBA{
	entity.PatternStraight: {255, 80, 80, 255},
	entity.PatternZigZag:   {255, 170, 60, 255},
	entity.PatternCircular: {200, 90, 255, 255},
}

var particleColors = map[entity.ParticleKind]color.RGBA{
	entity.ParticleThrust:    {255, 180, 60, 255},
	entity.ParticleExplosion: {255, 110, 30, 255},
	entity.ParticleImpact:    {255, 255, 200, 255},
}

// enemyColor returns the pattern colour, whitening as hit-points drop
func enemyColor(p entity.Pattern, health float64) color.RGBA {
	c, ok := patternColors[p]
	if !ok {
		c = patternColors[entity.PatternStraight]
	}
	return lerp(color.RGBA{255, 255, 255, 255}, c, health)
}

// depthScale maps depth in [0, 1] to a sprite scale in [0.4, 1]
func depthScale(depth float64) float32 {
	return float32(0.4 + 0.6*clamp01(depth))
}

// shade scales the colour towards black by depth in [0, 1]
func shade(c color.RGBA, depth float64) color.RGBA {
	return lerp(color.RGBA{0, 0, 0, c.A}, c, 0.35+0.65*depth)
}

// fade applies alpha with pre-multiplied channels
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = clamp01(alpha)
	return color.RGBA{
		uint8(float64(c.R) * alpha),
		uint8(float64(c.G) * alpha),
		uint8(float64(c.B) * alpha),
		uint8(float64(c.A) * alpha),
	}
}

func healthColor(ratio float64) color.RGBA {
	if ratio < 0.3 {
		return colorHealthLow
	}
	return colorHealthFG
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
