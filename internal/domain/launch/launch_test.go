package launch

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func testParams() Params {
	return Params{
		Width:          80,
		Height:         30,
		StarCount:      150,
		TwinkleChance:  0.05,
		AscentPerFrame: 0.3,
		ResetBelow:     -5,
		StartOffset:    10,
	}
}

func TestFrame_SetClips(t *testing.T) {
	f := NewFrame(4, 3)

	assert.True(t, f.Set(0, 0, 'a', RoleInfo))
	assert.False(t, f.Set(-1, 0, 'b', RoleInfo))
	assert.False(t, f.Set(4, 0, 'b', RoleInfo))
	assert.False(t, f.Set(0, 3, 'b', RoleInfo))
	assert.Len(t, f.Cells, 12)
	assert.Equal(t, "a   ", f.Row(0))

	f.Clear()
	assert.Equal(t, ' ', f.At(0, 0).Rune)
	assert.Equal(t, RoleReset, f.At(0, 0).Role)
}

func TestNewStarField_InsideGridAndUnique(t *testing.T) {
	stars := NewStarField(testRNG(), 150, 80, 30)

	require.NotEmpty(t, stars)
	assert.LessOrEqual(t, len(stars), 150)

	seen := make(map[[2]int]bool)
	for _, s := range stars {
		assert.GreaterOrEqual(t, s.X, 0)
		assert.Less(t, s.X, 80)
		assert.GreaterOrEqual(t, s.Y, 0)
		assert.Less(t, s.Y, 30)
		key := [2]int{s.X, s.Y}
		assert.False(t, seen[key], "one star per cell")
		seen[key] = true
	}
}

func TestStarKind_Glyph(t *testing.T) {
	tests := []struct {
		kind StarKind
		r    rune
		role Role
	}{
		{StarBright, '*', RoleStarBright},
		{StarDim, '.', RoleStarDim},
		{StarBlue, '✦', RoleStarBlue},
	}
	for _, tt := range tests {
		r, role := tt.kind.Glyph()
		assert.Equal(t, tt.r, r)
		assert.Equal(t, tt.role, role)
	}
}

func TestDrawStars_Twinkle(t *testing.T) {
	stars := []Star{{X: 1, Y: 1, Kind: StarBright}}

	f := NewFrame(3, 3)
	DrawStars(f, stars, testRNG(), 0)
	assert.Equal(t, '*', f.At(1, 1).Rune, "never twinkles with chance 0")

	f.Clear()
	DrawStars(f, stars, testRNG(), 1)
	assert.Equal(t, ' ', f.At(1, 1).Rune, "always twinkles with chance 1")
}

func TestDrawRocket_FlamesFollowFramePhase(t *testing.T) {
	tests := []struct {
		frame      int
		flame      rune
		outerDrawn bool
	}{
		{0, '|', true},
		{1, '│', false},
		{2, '║', true},
		{3, '|', true},
		{4, '│', false},
	}

	for _, tt := range tests {
		f := NewFrame(80, 30)
		DrawRocket(f, 40, 10, tt.frame)

		assert.Equal(t, '^', f.At(40, 10).Rune)
		assert.Equal(t, RoleRocketTip, f.At(40, 10).Role)
		assert.Equal(t, tt.flame, f.At(40, 15).Rune, "frame %d", tt.frame)
		assert.Equal(t, RoleFlameHot, f.At(40, 15).Role)
		assert.Equal(t, tt.flame, f.At(40, 16).Rune)
		assert.Equal(t, '\\', f.At(38, 16).Rune)
		assert.Equal(t, '/', f.At(42, 16).Rune)

		if tt.outerDrawn {
			assert.Equal(t, tt.flame, f.At(40, 17).Rune, "frame %d", tt.frame)
			assert.Equal(t, '\\', f.At(37, 17).Rune)
			assert.Equal(t, RoleFlameOuter, f.At(43, 17).Role)
		} else {
			assert.Equal(t, ' ', f.At(40, 17).Rune, "frame %d", tt.frame)
		}
	}
}

func TestDrawRocket_ClippedAtEdges(t *testing.T) {
	f := NewFrame(10, 5)

	assert.NotPanics(t, func() {
		DrawRocket(f, 0, -3, 0)
		DrawRocket(f, 9, 3, 2)
		DrawRocket(f, -20, 40, 1)
	})
	assert.Len(t, f.Cells, 50, "buffer never grows")
	assert.Equal(t, '=', f.At(0, 1).Rune, "engine row of the rocket at y=-3 is visible")
}

func TestSequence_StartsOnPad(t *testing.T) {
	s := NewSequence(testParams(), testRNG())

	assert.Equal(t, 20.0, s.RocketY())
	assert.Equal(t, 10, s.Altitude())
	assert.Equal(t, 0, s.FrameCount())
	assert.NotEmpty(t, s.Stars())
}

func TestSequence_Ascends(t *testing.T) {
	s := NewSequence(testParams(), testRNG())

	for i := 0; i < 10; i++ {
		s.Advance()
	}
	assert.InDelta(t, 17.0, s.RocketY(), 1e-9)
	assert.Equal(t, 10, s.FrameCount())
	assert.Equal(t, 30-s.RocketRow(), s.Altitude())
}

func TestSequence_ResetsBelowTop(t *testing.T) {
	s := NewSequence(testParams(), testRNG())
	before := s.Stars()

	// 20 - 0.3n < -5 first holds at n = 84
	for i := 0; i < 83; i++ {
		s.Advance()
	}
	assert.Equal(t, 0, s.Laps())
	assert.Less(t, s.RocketY(), -4.0)

	s.Advance()
	assert.Equal(t, 1, s.Laps())
	assert.Equal(t, 20.0, s.RocketY())
	assert.NotEqual(t, before, s.Stars(), "star field regenerated")
}

func TestSequence_RenderAndFooter(t *testing.T) {
	s := NewSequence(testParams(), testRNG())

	f := s.Render()
	assert.Equal(t, 80, f.Width)
	assert.Equal(t, 30, f.Height)
	assert.Equal(t, '^', f.At(40, 20).Rune)

	s.Advance()
	assert.Equal(t, "Frame: 0001 │ Altitude:  11 units │ Press q to exit", s.Footer())
}
