package terminal

import (
	"io"
	"strings"

	"github.com/younwookim/starship/internal/domain/launch"
)

const (
	ruleRune = '─'
	railRune = '│'
)

// ChromeRows is the number of rows drawn around a frame: header, two rules, footer
const ChromeRows = 4

// rule is the horizontal border of a frame w cells wide, rails included
func rule(w int) string {
	return strings.Repeat(string(ruleRune), w+2)
}

// WriteFarewell prints the closing lines. Call it after the terminal is restored.
func WriteFarewell(w io.Writer) error {
	var b strings.Builder
	b.WriteString("\r\n")
	b.WriteString(SGR(launch.RoleTitle) + launch.Farewell[0] + SGR(launch.RoleReset) + "\r\n")
	b.WriteString(SGR(launch.RoleInfo) + "   " + launch.Farewell[1] + SGR(launch.RoleReset) + "\r\n\r\n")
	_, err := io.WriteString(w, b.String())
	return err
}
