package terminal

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/starship/internal/domain/launch"
)

// Screen renders launch frames on a tcell screen.
// Row 0 is the header, then the bordered frame, then the footer.
type Screen struct {
	screen tcell.Screen
	once   sync.Once
}

// NewScreen initializes the terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenWith(s)
}

// NewScreenWith takes over an uninitialized tcell screen
func NewScreenWith(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Render implements launcher.Renderer
func (s *Screen) Render(f *launch.Frame, header, footer string) error {
	s.screen.Clear()

	border := Style(launch.RoleReset)
	s.putString(0, 0, header, Style(launch.RoleTitle))
	s.putString(0, 1, rule(f.Width), border)
	for y := 0; y < f.Height; y++ {
		s.screen.SetContent(0, y+2, railRune, nil, border)
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			s.screen.SetContent(x+1, y+2, c.Rune, nil, Style(c.Role))
		}
		s.screen.SetContent(f.Width+1, y+2, railRune, nil, border)
	}
	s.putString(0, f.Height+2, rule(f.Width), border)
	s.putString(0, f.Height+3, footer, Style(launch.RoleInfo))

	s.screen.Show()
	return nil
}

func (s *Screen) putString(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// WatchKeys polls terminal events until the screen is closed and calls
// cancel on a quit key. Resizes redraw the screen.
func (s *Screen) WatchKeys(ctx context.Context, cancel context.CancelFunc) {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuitKey(ev) {
					cancel()
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

// Close restores the terminal. Safe to call more than once.
func (s *Screen) Close() error {
	s.once.Do(s.screen.Fini)
	return nil
}
