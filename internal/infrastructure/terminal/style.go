// Package terminal presents launch frames on a terminal: through a tcell
// screen locally, or as raw ANSI text on any writer (an SSH session).
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/starship/internal/domain/launch"
)

var colorOrange = tcell.NewRGBColor(255, 140, 0)

var roleStyles = map[launch.Role]tcell.Style{
	launch.RoleReset:        tcell.StyleDefault,
	launch.RoleRocketTip:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	launch.RoleRocketBody:   tcell.StyleDefault.Foreground(tcell.ColorSilver),
	launch.RoleRocketFins:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	launch.RoleRocketEngine: tcell.StyleDefault.Foreground(tcell.ColorGray),
	launch.RoleFlameHot:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	launch.RoleFlameInner:   tcell.StyleDefault.Foreground(colorOrange),
	launch.RoleFlameOuter:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	launch.RoleStarBright:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	launch.RoleStarDim:      tcell.StyleDefault.Foreground(tcell.ColorGray),
	launch.RoleStarBlue:     tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	launch.RoleTitle:        tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	launch.RoleInfo:         tcell.StyleDefault.Foreground(tcell.ColorGreen),
}

// Style returns the tcell style of a colour role
func Style(r launch.Role) tcell.Style {
	if s, ok := roleStyles[r]; ok {
		return s
	}
	return tcell.StyleDefault
}

// SGR sequences for the writer renderer
var roleSGR = map[launch.Role]string{
	launch.RoleReset:        "\033[0m",
	launch.RoleRocketTip:    "\033[1;97m",
	launch.RoleRocketBody:   "\033[37m",
	launch.RoleRocketFins:   "\033[31m",
	launch.RoleRocketEngine: "\033[90m",
	launch.RoleFlameHot:     "\033[1;93m",
	launch.RoleFlameInner:   "\033[38;5;208m",
	launch.RoleFlameOuter:   "\033[91m",
	launch.RoleStarBright:   "\033[1;97m",
	launch.RoleStarDim:      "\033[90m",
	launch.RoleStarBlue:     "\033[1;94m",
	launch.RoleTitle:        "\033[1;96m",
	launch.RoleInfo:         "\033[32m",
}

// SGR returns the ANSI select-graphic-rendition sequence of a colour role
func SGR(r launch.Role) string {
	if s, ok := roleSGR[r]; ok {
		return s
	}
	return roleSGR[launch.RoleReset]
}

// IsQuitKey reports whether ev stops the animation: q, Escape or Ctrl+C
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// IsQuitByte is IsQuitKey for raw terminal input
func IsQuitByte(b byte) bool {
	return b == 'q' || b == 'Q' || b == 0x1b || b == 0x03
}
