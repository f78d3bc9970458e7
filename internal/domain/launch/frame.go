// Package launch models the terminal launch sequence: a rocket climbing
// through a twinkling star field, drawn into a fixed grid of cells.
package launch

// Role is the color role of a cell. Renderers map roles to concrete styles.
type Role int

const (
	RoleReset Role = iota
	RoleRocketTip
	RoleRocketBody
	RoleRocketFins
	RoleRocketEngine
	RoleFlameHot
	RoleFlameInner
	RoleFlameOuter
	RoleStarBright
	RoleStarDim
	RoleStarBlue
	RoleTitle
	RoleInfo
)

// Cell is one character position of the frame
type Cell struct {
	Rune rune
	Role Role
}

var blank = Cell{Rune: ' ', Role: RoleReset}

// Frame is a Width x Height grid of cells, row-major
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewFrame allocates a blank frame
func NewFrame(w, h int) *Frame {
	f := &Frame{Width: w, Height: h, Cells: make([]Cell, w*h)}
	f.Clear()
	return f
}

// Clear resets every cell to a blank space
func (f *Frame) Clear() {
	for i := range f.Cells {
		f.Cells[i] = blank
	}
}

// Set writes a cell. Writes outside the grid are clipped and report false.
func (f *Frame) Set(x, y int, r rune, role Role) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	f.Cells[y*f.Width+x] = Cell{Rune: r, Role: role}
	return true
}

// At returns the cell at (x, y), or a blank cell outside the grid
func (f *Frame) At(x, y int) Cell {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return blank
	}
	return f.Cells[y*f.Width+x]
}

// Row returns the runes of row y as a string
func (f *Frame) Row(y int) string {
	rs := make([]rune, f.Width)
	for x := 0; x < f.Width; x++ {
		rs[x] = f.At(x, y).Rune
	}
	return string(rs)
}
