package entity

// ShapeKind selects how a Shape is interpreted
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Shape is a bounding shape centred on an entity's position.
// Boxes use W and H, circles use R.
type Shape struct {
	Kind ShapeKind
	W, H float64
	R    float64
}

// Box returns an axis-aligned box shape of the given size
func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, W: w, H: h}
}

// Circle returns a circle shape of the given radius
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, R: r}
}

// Overlaps tests two shapes placed at a and b for intersection.
// Touching edges do not count as overlap.
func Overlaps(a Vec2, sa Shape, b Vec2, sb Shape) bool {
	switch {
	case sa.Kind == ShapeBox && sb.Kind == ShapeBox:
		return boxBox(a, sa, b, sb)
	case sa.Kind == ShapeCircle && sb.Kind == ShapeCircle:
		d := a.Sub(b)
		r := sa.R + sb.R
		return d.X*d.X+d.Y*d.Y < r*r
	case sa.Kind == ShapeBox:
		return boxCircle(a, sa, b, sb)
	default:
		return boxCircle(b, sb, a, sa)
	}
}

func boxBox(a Vec2, sa Shape, b Vec2, sb Shape) bool {
	return abs(a.X-b.X) < (sa.W+sb.W)/2 &&
		abs(a.Y-b.Y) < (sa.H+sb.H)/2
}

// boxCircle clamps the circle centre onto the box and compares distances
func boxCircle(box Vec2, sb Shape, c Vec2, sc Shape) bool {
	hw, hh := sb.W/2, sb.H/2
	nx := clamp(c.X, box.X-hw, box.X+hw)
	ny := clamp(c.Y, box.Y-hh, box.Y+hh)
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy < sc.R*sc.R
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
