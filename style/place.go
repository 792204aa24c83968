package style

import (
	"strings"

	"github.com/whit3rabbit/lipgloss-go/internal/measure"
	"github.com/whit3rabbit/lipgloss-go/renderer"
	"github.com/whit3rabbit/lipgloss-go/whitespace"
)

// PlaceHorizontal pads s on the left/right to width display columns using
// hPos, filling the gap with ws (a whitespace.Whitespace filler, which may
// carry its own color). If s is already at least width wide, it is
// returned unchanged (spec §4.8).
func PlaceHorizontal(width int, hPos float64, s string, ws whitespace.Whitespace) string {
	lines, contentW := measure.GetLines(s)
	gap := width - contentW
	if gap <= 0 {
		return s
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		lineGap := width - measure.WidthVisible(l)
		if lineGap <= 0 {
			out[i] = l
			continue
		}
		left, right := splitGap(lineGap, hPos)
		out[i] = ws.Render(left) + l + ws.Render(right)
	}
	return strings.Join(out, "\n")
}

// PlaceVertical pads s on the top/bottom to height lines using vPos,
// filling new lines with ws at the content's own visible width. If s
// already has at least height lines, it is returned unchanged.
func PlaceVertical(height int, vPos float64, s string, ws whitespace.Whitespace) string {
	lines, contentW := measure.GetLines(s)
	gap := height - len(lines)
	if gap <= 0 {
		return s
	}
	top, bottom := splitGap(gap, vPos)
	fillLine := ws.Render(contentW)
	var out []string
	for i := 0; i < top; i++ {
		out = append(out, fillLine)
	}
	out = append(out, lines...)
	for i := 0; i < bottom; i++ {
		out = append(out, fillLine)
	}
	return strings.Join(out, "\n")
}

// Place centers (or otherwise positions) s within a width x height box,
// applying horizontal placement before vertical (spec §4.8).
func Place(width, height int, hPos, vPos float64, s string, ws whitespace.Whitespace) string {
	return PlaceVertical(height, vPos, PlaceHorizontal(width, hPos, s, ws), ws)
}

// NewWhitespace is a convenience constructor for a default-profile
// whitespace filler bound to the process-wide renderer, for callers that
// don't need custom fill styling.
func NewWhitespace(opts ...whitespace.Option) whitespace.Whitespace {
	return whitespace.New(renderer.Default(), opts...)
}
