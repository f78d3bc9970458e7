package render

import (
	"math"
	"math/rand"
)

// star is one point of a parallax layer in screen space at zero scroll
type star struct {
	x, y float64
}

// Layer is a band of stars scrolling down at one speed.
// Farther layers are slower, smaller and dimmer.
type Layer struct {
	Speed      float64 // px/s
	Size       float32
	Brightness uint8
	stars      []star
}

// Starfield is the pseudo-3D backdrop made of parallax layers
type Starfield struct {
	Layers []Layer
	width  float64
	height float64
}

// NewStarfield scatters count stars per layer over a w×h screen
func NewStarfield(rng *rand.Rand, w, h, count int) *Starfield {
	sf := &Starfield{
		width:  float64(w),
		height: float64(h),
		Layers: []Layer{
			{Speed: 15, Size: 1, Brightness: 90},
			{Speed: 45, Size: 1.5, Brightness: 160},
			{Speed: 110, Size: 2, Brightness: 240},
		},
	}
	for i := range sf.Layers {
		sf.Layers[i].stars = make([]star, count)
		for j := range sf.Layers[i].stars {
			sf.Layers[i].stars[j] = star{x: rng.Float64() * sf.width, y: rng.Float64() * sf.height}
		}
	}
	return sf
}

// Positions returns the screen positions of layer l's stars after t seconds of scrolling.
// Stars wrap at the bottom edge, so every position is inside the screen.
func (sf *Starfield) Positions(l int, t float64) [][2]float64 {
	layer := sf.Layers[l]
	offset := math.Mod(t*layer.Speed, sf.height)
	out := make([][2]float64, len(layer.stars))
	for i, s := range layer.stars {
		y := s.y + offset
		if y >= sf.height {
			y -= sf.height
		}
		out[i] = [2]float64{s.x, y}
	}
	return out
}
