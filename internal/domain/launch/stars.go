package launch

import "math/rand"

// StarKind selects the glyph and color of a star
type StarKind int

const (
	StarBright StarKind = iota
	StarDim
	StarBlue
)

// Glyph returns the rune and color role used to draw the star kind
func (k StarKind) Glyph() (rune, Role) {
	switch k {
	case StarBright:
		return '*', RoleStarBright
	case StarDim:
		return '.', RoleStarDim
	default:
		return '✦', RoleStarBlue
	}
}

type Star struct {
	X, Y int
	Kind StarKind
}

type point struct{ x, y int }

// NewStarField scatters n stars over a w x h grid.
// Stars landing on an occupied cell replace the earlier star, so the
// field may hold fewer than n entries.
func NewStarField(rng *rand.Rand, n, w, h int) []Star {
	index := make(map[point]int, n)
	stars := make([]Star, 0, n)
	for i := 0; i < n; i++ {
		s := Star{X: rng.Intn(w), Y: rng.Intn(h), Kind: StarKind(rng.Intn(3))}
		p := point{s.X, s.Y}
		if j, ok := index[p]; ok {
			stars[j] = s
			continue
		}
		index[p] = len(stars)
		stars = append(stars, s)
	}
	return stars
}

// DrawStars draws every star that does not twinkle out this frame.
// Each star is independently skipped with probability twinkle.
func DrawStars(f *Frame, stars []Star, rng *rand.Rand, twinkle float64) {
	for _, s := range stars {
		if rng.Float64() < twinkle {
			continue
		}
		r, role := s.Kind.Glyph()
		f.Set(s.X, s.Y, r, role)
	}
}
