// Package render draws session snapshots with Ebitengine vector shapes.
//
// The "3D" is faked: three parallax star layers scroll at different speeds
// and debris is shaded by its depth factor.
package render

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/starship/internal/application/session"
	"github.com/younwookim/starship/internal/domain/entity"
)

const starsPerLayer = 60

// Renderer implements scene.Renderer
type Renderer struct {
	screenW int
	screenH int
	title   string
	stars   *Starfield

	// idle drives the backdrop outside of a session
	idle float64
	tps  float64
}

// New creates a renderer for a screenW×screenH logical screen
func New(screenW, screenH, tps int, title string, rng *rand.Rand) *Renderer {
	return &Renderer{
		screenW: screenW,
		screenH: screenH,
		title:   title,
		stars:   NewStarfield(rng, screenW, screenH, starsPerLayer),
		tps:     float64(max(tps, 1)),
	}
}

// DrawMenu renders the title screen
func (r *Renderer) DrawMenu(screen *ebiten.Image, highScore int) {
	r.idle += 1 / r.tps
	screen.Fill(colorBG)
	r.drawStars(screen, r.idle)

	text := fmt.Sprintf("%s\n\nENTER / SPACE: Start\nQ: Quit", r.title)
	if highScore > 0 {
		text += fmt.Sprintf("\n\nHigh score: %d", highScore)
	}
	ebitenutil.DebugPrintAt(screen, text, r.screenW/2-70, r.screenH/2-40)
}

// DrawPlaying renders one frame of a running session
func (r *Renderer) DrawPlaying(screen *ebiten.Image, snap *session.Snapshot, paused bool) {
	screen.Fill(colorBG)
	r.drawStars(screen, snap.Elapsed)

	for i := range snap.Particles {
		drawParticle(screen, &snap.Particles[i])
	}
	for i := range snap.Entities {
		drawEntity(screen, &snap.Entities[i])
	}
	if snap.Alive {
		drawShip(screen, &snap.Player)
	}

	r.drawHUD(screen, snap)

	if paused {
		vector.DrawFilledRect(screen, 0, 0, float32(r.screenW), float32(r.screenH), colorOverlay, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", r.screenW/2-50, r.screenH/2-20)
	}
}

// DrawGameOver renders the final snapshot under a red overlay
func (r *Renderer) DrawGameOver(screen *ebiten.Image, snap *session.Snapshot, highScore int) {
	r.idle += 1 / r.tps
	screen.Fill(colorBG)
	r.drawStars(screen, snap.Elapsed+r.idle)
	for i := range snap.Entities {
		drawEntity(screen, &snap.Entities[i])
	}

	vector.DrawFilledRect(screen, 0, 0, float32(r.screenW), float32(r.screenH), colorGameOver, false)
	ebitenutil.DebugPrintAt(screen, GameOverText(snap, highScore), r.screenW/2-70, r.screenH/2-40)
}

func (r *Renderer) drawStars(screen *ebiten.Image, t float64) {
	for l, layer := range r.stars.Layers {
		c := colorBG
		c.R, c.G, c.B = layer.Brightness, layer.Brightness, layer.Brightness
		for _, p := range r.stars.Positions(l, t) {
			vector.DrawFilledRect(screen, float32(p[0]), float32(p[1]), layer.Size, layer.Size, c, false)
		}
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap *session.Snapshot) {
	barX, barY := float32(10), float32(r.screenH-24)
	barW, barH := float32(200), float32(12)
	ratio := 0.0
	if snap.MaxHealth > 0 {
		ratio = float64(snap.Health) / float64(snap.MaxHealth)
	}

	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(clamp01(ratio)), barH, healthColor(ratio), false)

	ebitenutil.DebugPrintAt(screen, HUDText(snap), 10, 10)
	ebitenutil.DebugPrintAt(screen, "WASD/Arrows: Move | Space: Fire | ESC: Pause | Q: Quit", 10, r.screenH-44)
}

// HUDText is the score line drawn in the top-left corner
func HUDText(snap *session.Snapshot) string {
	return fmt.Sprintf("Score: %d  Tier: %d  Health: %d/%d  Time: %.0fs",
		snap.Score, snap.Tier, snap.Health, snap.MaxHealth, snap.Elapsed)
}

// GameOverText is the summary on the game over screen
func GameOverText(snap *session.Snapshot, highScore int) string {
	return fmt.Sprintf("GAME OVER\n\nScore: %d\nTier reached: %d\nHigh score: %d\n\nR / ENTER: Menu\nQ: Quit",
		snap.Score, snap.Tier, max(highScore, snap.Score))
}

// drawShip draws the starship as a hull rectangle with a nose and cockpit
func drawShip(screen *ebiten.Image, v *session.EntityView) {
	x, y := float32(v.Pos.X), float32(v.Pos.Y)
	w, h := float32(v.Shape.W), float32(v.Shape.H)

	vector.DrawFilledRect(screen, x-w/4, y-h/4, w/2, h*3/4, colorShip, false)
	vector.StrokeLine(screen, x-w/2, y+h/2, x, y-h/2, 2, colorShip, true)
	vector.StrokeLine(screen, x+w/2, y+h/2, x, y-h/2, 2, colorShip, true)
	vector.StrokeLine(screen, x-w/2, y+h/2, x+w/2, y+h/2, 2, colorShip, true)
	vector.DrawFilledCircle(screen, x, y-h/8, w/8, colorCockpit, true)
}

func drawEntity(screen *ebiten.Image, v *session.EntityView) {
	x, y := float32(v.Pos.X), float32(v.Pos.Y)

	switch v.Category {
	case entity.CategoryEnemy:
		w, h := float32(v.Shape.W), float32(v.Shape.H)
		c := enemyColor(v.Pattern, v.Health)
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, c, false)
		vector.StrokeLine(screen, x-w/2, y-h/2, x, y+h/2, 2, c, true)
		vector.StrokeLine(screen, x+w/2, y-h/2, x, y+h/2, 2, c, true)
	case entity.CategoryProjectile:
		w, h := float32(v.Shape.W), float32(v.Shape.H)
		c := colorEnemyShot
		if v.Owner == entity.OwnerPlayer {
			c = colorPlayerShot
		}
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, c, false)
	case entity.CategoryDebris:
		// Depth is derived from size, so far debris is already smaller;
		// the drawn radius stays equal to the collision radius.
		r := float32(v.Shape.R)
		c := shade(colorDebris, v.Depth)
		vector.DrawFilledCircle(screen, x, y, r, c, true)
		// A spoke shows the rotation
		sx := x + r*float32(math.Cos(v.Angle))
		sy := y + r*float32(math.Sin(v.Angle))
		vector.StrokeLine(screen, x, y, sx, sy, 1, shade(colorBG, 1), true)
	}
}

// drawParticle shrinks and fades a particle over its lifetime and by depth
func drawParticle(screen *ebiten.Image, p *entity.Particle) {
	a := p.Alpha()
	c := shade(fade(particleColors[p.Kind], a), p.Depth)
	size := float32(p.Size*(0.5+0.5*a)) * depthScale(p.Depth)
	vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), size/2, c, false)
}
