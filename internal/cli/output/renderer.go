// Package output renders command output in text or markdown form with
// optional terminal styling.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	// ModeAuto picks text on a terminal and markdown otherwise.
	ModeAuto Mode = "auto"
	// ModeText is styled terminal output.
	ModeText Mode = "text"
	// ModeMarkdown is plain output suitable for piping into documents.
	ModeMarkdown Mode = "markdown"
)

// Renderer writes command output in a consistent format.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer. An empty or unknown mode is treated
// as ModeAuto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown:
	default:
		mode = ModeAuto
	}
	r := &Renderer{out: out, errOut: errOut, mode: mode}
	r.styles = newStyles(r.EffectiveMode() == ModeText && isTerminal(out))
	return r
}

// EffectiveMode resolves ModeAuto against the output destination.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if isTerminal(r.out) {
		return ModeText
	}
	return ModeMarkdown
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Out exposes the underlying writer for table renderers.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Styles returns the style set matching the renderer's mode.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Errorf writes formatted output to standard error.
func (r *Renderer) Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.errOut, format, a...)
}

// StatusLine prints one name/status line, styled in text mode.
func (r *Renderer) StatusLine(name, status, detail string) {
	marker := "-"
	style := r.styles.Muted
	switch status {
	case "success":
		marker, style = "✓", r.styles.Success
	case "error":
		marker, style = "✗", r.styles.Error
	}

	line := fmt.Sprintf("  %s %s", marker, name)
	if detail != "" {
		line += " (" + detail + ")"
	}
	_, _ = fmt.Fprintln(r.out, style.Render(line))
}
