package terminal

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/younwookim/starship/internal/domain/launch"
)

const (
	seqClear      = "\033[2J"
	seqHome       = "\033[H"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// Writer renders launch frames as ANSI text. Lines end in CRLF so the
// output is correct on a PTY without output post-processing.
type Writer struct {
	w       *bufio.Writer
	started bool
	line    strings.Builder
}

// NewWriter wraps w, typically an SSH session
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 16384)}
}

// Render implements launcher.Renderer. Each frame is one flushed write.
func (wr *Writer) Render(f *launch.Frame, header, footer string) error {
	if !wr.started {
		wr.w.WriteString(seqHideCursor + seqClear)
		wr.started = true
	}
	wr.w.WriteString(seqHome)
	wr.w.WriteString(SGR(launch.RoleTitle) + header + SGR(launch.RoleReset) + "\r\n")
	wr.w.WriteString(rule(f.Width) + "\r\n")

	for y := 0; y < f.Height; y++ {
		wr.w.WriteRune(railRune)
		wr.w.WriteString(wr.row(f, y))
		wr.w.WriteRune(railRune)
		wr.w.WriteString("\r\n")
	}
	wr.w.WriteString(rule(f.Width) + "\r\n")

	wr.w.WriteString(SGR(launch.RoleInfo) + footer + SGR(launch.RoleReset))
	return wr.w.Flush()
}

// row renders one line, emitting a colour sequence only when the role changes
func (wr *Writer) row(f *launch.Frame, y int) string {
	wr.line.Reset()
	current := launch.RoleReset
	for x := 0; x < f.Width; x++ {
		c := f.At(x, y)
		if c.Role != current && c.Rune != ' ' {
			wr.line.WriteString(SGR(c.Role))
			current = c.Role
		}
		wr.line.WriteRune(c.Rune)
	}
	if current != launch.RoleReset {
		wr.line.WriteString(SGR(launch.RoleReset))
	}
	return wr.line.String()
}

// Close resets colours and shows the cursor again
func (wr *Writer) Close() error {
	wr.w.WriteString(SGR(launch.RoleReset) + seqShowCursor + "\r\n")
	return wr.w.Flush()
}

// WatchReader reads raw input from r and calls cancel on a quit byte or
// when r fails. It returns when ctx is done or r is exhausted.
func WatchReader(ctx context.Context, r io.Reader, cancel context.CancelFunc) {
	go func() {
		defer cancel()
		buf := make([]byte, 64)
		for ctx.Err() == nil {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				if IsQuitByte(b) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
}
