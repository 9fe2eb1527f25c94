package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{name: "explicit text", mode: ModeText, want: ModeText},
		{name: "explicit markdown", mode: ModeMarkdown, want: ModeMarkdown},
		{name: "auto on a buffer falls back to markdown", mode: ModeAuto, want: ModeMarkdown},
		{name: "unknown mode behaves as auto", mode: Mode("bogus"), want: ModeMarkdown},
		{name: "empty mode behaves as auto", mode: Mode(""), want: ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestStylesPlainOffTerminal(t *testing.T) {
	r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), ModeText)

	// No terminal behind the writer: styles must not emit escape codes.
	assert.Equal(t, "hello", r.Styles().Header1.Render("hello"))
	assert.Equal(t, "hello", r.Styles().Error.Render("hello"))
}

func TestWriters(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := NewRenderer(out, errOut, ModeMarkdown)

	r.Println("line")
	r.Printf("value=%d\n", 7)
	r.Errorf("oops: %s\n", "broken")

	assert.Equal(t, "line\nvalue=7\n", out.String())
	assert.Equal(t, "oops: broken\n", errOut.String())
}

func TestStatusLine(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, new(bytes.Buffer), ModeMarkdown)

	r.StatusLine("proftree.yaml", "success", "")
	r.StatusLine("scenario.yaml", "error", "malformed")

	assert.Contains(t, out.String(), "✓ proftree.yaml")
	assert.Contains(t, out.String(), "✗ scenario.yaml (malformed)")
}
