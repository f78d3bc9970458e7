package entity

// Body is the state every simulated entity shares: identity, kinematics,
// bounding shape and the alive flag.
// Pos is the centre of the shape in screen pixels, Vel is pixels per second.
type Body struct {
	ID    EntityID
	Pos   Vec2
	Vel   Vec2
	Shape Shape
	Alive bool
}

// NewBody creates a live body at pos with the given shape
func NewBody(id EntityID, pos Vec2, shape Shape) Body {
	return Body{ID: id, Pos: pos, Shape: shape, Alive: true}
}

// Advance moves the body by its velocity over dt seconds
func (b *Body) Advance(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Kill marks the body dead. Dead bodies are skipped by collision and swept
// from the world at the end of the tick.
func (b *Body) Kill() {
	b.Alive = false
}

// Overlaps reports whether two live bodies intersect
func (b *Body) Overlaps(o *Body) bool {
	if !b.Alive || !o.Alive {
		return false
	}
	return Overlaps(b.Pos, b.Shape, o.Pos, o.Shape)
}

// Extent returns the half-width and half-height of the body's bounding box
func (b *Body) Extent() (float64, float64) {
	if b.Shape.Kind == ShapeCircle {
		return b.Shape.R, b.Shape.R
	}
	return b.Shape.W / 2, b.Shape.H / 2
}

// OutOfBounds reports whether the body lies entirely outside the
// w x h screen grown by margin on every side.
func (b *Body) OutOfBounds(w, h, margin float64) bool {
	ex, ey := b.Extent()
	return b.Pos.X+ex < -margin || b.Pos.X-ex > w+margin ||
		b.Pos.Y+ey < -margin || b.Pos.Y-ey > h+margin
}
