// Package whitespace renders styled filler areas: runs of characters
// (spaces by default) cycled to an exact display width, optionally wrapped
// in ANSI styling, per spec §4.5.
package whitespace

import (
	"strings"

	"github.com/whit3rabbit/lipgloss-go/color"
	"github.com/whit3rabbit/lipgloss-go/internal/measure"
	"github.com/whit3rabbit/lipgloss-go/renderer"
)

// Whitespace generates styled filler text of an exact display width.
type Whitespace struct {
	r     *renderer.Renderer
	style string
	chars string
}

// Option configures a Whitespace at construction time.
type Option func(*Whitespace)

// New builds a Whitespace bound to r, applying opts in order.
func New(r *renderer.Renderer, opts ...Option) Whitespace {
	w := Whitespace{r: r}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Render fills width display columns by cycling through the configured
// characters (a single space by default), wrapping the result in any
// configured SGR styling. A character that would overshoot width is
// dropped and the remainder padded with spaces, so the output is always
// exactly width columns wide.
func (w Whitespace) Render(width int) string {
	chars := w.chars
	if chars == "" {
		chars = " "
	}
	runes := []rune(chars)

	var b strings.Builder
	i, j := 0, 0
	for i < width {
		ch := runes[j]
		chWidth := measure.Width(string(ch))
		if i+chWidth > width {
			break
		}
		b.WriteRune(ch)
		j++
		if j >= len(runes) {
			j = 0
		}
		i += chWidth
	}

	out := b.String()
	if short := width - measure.WidthVisible(out); short > 0 {
		out += strings.Repeat(" ", short)
	}

	if w.style != "" {
		return w.style + out + "\x1b[0m"
	}
	return out
}

func (w *Whitespace) appendSGR(seg string) {
	if w.style == "" {
		w.style = "\x1b[" + seg + "m"
		return
	}
	base := strings.TrimSuffix(w.style, "m")
	w.style = base + ";" + seg + "m"
}

// WithForeground sets the foreground color of whitespace characters.
func WithForeground(c color.TerminalColor) Option {
	return func(w *Whitespace) {
		tok := c.Token(w.r)
		if tok == "" {
			return
		}
		w.appendSGR(color.SGRForeground(tok, w.r.ColorProfile()))
	}
}

// WithBackground sets the background color of whitespace characters.
func WithBackground(c color.TerminalColor) Option {
	return func(w *Whitespace) {
		tok := c.Token(w.r)
		if tok == "" {
			return
		}
		w.appendSGR(color.SGRBackground(tok, w.r.ColorProfile()))
	}
}

// WithUnderline adds underline styling to whitespace characters.
func WithUnderline() Option {
	return func(w *Whitespace) { w.appendSGR("4") }
}

// WithStrikethrough adds strikethrough styling to whitespace characters.
func WithStrikethrough() Option {
	return func(w *Whitespace) { w.appendSGR("9") }
}

// WithChars sets the characters cycled through to fill the whitespace,
// replacing the default space.
func WithChars(s string) Option {
	return func(w *Whitespace) { w.chars = s }
}
