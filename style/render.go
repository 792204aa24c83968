package style

import (
	"math"
	"strings"

	"github.com/whit3rabbit/lipgloss-go/color"
	"github.com/whit3rabbit/lipgloss-go/internal/measure"
	"github.com/whit3rabbit/lipgloss-go/whitespace"
)

// Render runs str (or the style's stored literal, if str is empty and one
// was set via SetString) through the fourteen-stage pipeline of spec §4.7
// and returns the finished block. Render never fails: invalid colors and
// out-of-range dimensions degrade silently to their best-effort output
// (spec §7).
func (s Style) Render(str string) string {
	if str == "" {
		if v := s.GetString(); v != "" {
			str = v
		}
	}

	// 1. Newline normalization.
	str = strings.ReplaceAll(str, "\r\n", "\n")
	str = strings.ReplaceAll(str, "\r", "\n")

	// 2. Inline.
	if s.GetInline() {
		str = strings.ReplaceAll(str, "\n", "")
	}

	// 3. Transform.
	if fn := s.GetTransform(); fn != nil {
		str = fn(str)
	}

	// 4. Tab handling.
	str = expandTabs(str, s.GetTabWidth())

	lines := strings.Split(str, "\n")

	// 5. Max-height truncation.
	if mh := s.GetMaxHeight(); mh > 0 && len(lines) > mh {
		lines = lines[:mh]
	}

	// 6. Max-width truncation.
	if mw := s.GetMaxWidth(); mw > 0 {
		for i, l := range lines {
			lines[i] = measure.TruncateVisible(l, mw)
		}
	}

	// 7. Word wrap.
	width := s.GetWidth()
	padL, padR := s.GetPaddingLeft(), s.GetPaddingRight()
	if width > 0 {
		contentW := width - padL - padR
		if contentW < 0 {
			contentW = 0
		}
		var wrapped []string
		for _, l := range lines {
			wrapped = append(wrapped, measure.WordWrap(l, contentW)...)
		}
		lines = wrapped
	}

	// 8. Horizontal padding.
	if padL > 0 || padR > 0 {
		left := strings.Repeat(" ", padL)
		right := strings.Repeat(" ", padR)
		for i, l := range lines {
			lines[i] = left + l + right
		}
	}

	// 9. Vertical padding.
	if pt := s.GetPaddingTop(); pt > 0 {
		lines = append(makeBlankLines(pt, 0), lines...)
	}
	if pb := s.GetPaddingBottom(); pb > 0 {
		lines = append(lines, makeBlankLines(pb, 0)...)
	}

	// 10. Layout-first alignment.
	if width > 0 {
		hPos := s.GetAlignHorizontal()
		for i, l := range lines {
			gap := width - measure.WidthVisible(l)
			if gap <= 0 {
				continue
			}
			left, right := splitGap(gap, hPos)
			lines[i] = strings.Repeat(" ", left) + l + strings.Repeat(" ", right)
		}
	}

	// 11. Height alignment.
	if height := s.GetHeight(); height > 0 && len(lines) < height {
		gap := height - len(lines)
		vPos := s.GetAlignVertical()
		top, bottom := splitGap(gap, vPos)
		_, maxW := measure.GetLinesVisible(strings.Join(lines, "\n"))
		lines = append(makeBlankLines(top, maxW), lines...)
		lines = append(lines, makeBlankLines(bottom, maxW)...)
	}

	// 12. Border assembly.
	lines = s.applyBorder(lines)

	// 13. SGR styling pass.
	lines = s.applyStyling(lines)

	out := strings.Join(lines, "\n")

	// 14. Margins.
	out = s.applyMargins(out)

	return out
}

func expandTabs(s string, tabWidth int) string {
	switch {
	case tabWidth == 0:
		return strings.ReplaceAll(s, "\t", "")
	case tabWidth > 0:
		return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	default:
		return s
	}
}

func makeBlankLines(n, width int) []string {
	if n <= 0 {
		return nil
	}
	blank := ""
	if width > 0 {
		blank = strings.Repeat(" ", width)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = blank
	}
	return out
}

// splitGap divides gap cells between a leading and trailing share according
// to pos in [0,1], rounding the leading share (spec §4.7 stages 10-11).
func splitGap(gap int, pos float64) (lead, trail int) {
	lead = int(math.Round(float64(gap) * pos))
	if lead < 0 {
		lead = 0
	}
	if lead > gap {
		lead = gap
	}
	return lead, gap - lead
}

// applyBorder draws the configured border around lines, per spec §4.7
// stage 12.
func (s Style) applyBorder(lines []string) []string {
	hasTop, hasRight, hasBottom, hasLeft := s.GetBorderTop(), s.GetBorderRight(), s.GetBorderBottom(), s.GetBorderLeft()
	if !hasTop && !hasRight && !hasBottom && !hasLeft {
		return lines
	}
	b := s.GetBorderStyle()

	_, w := measure.GetLinesVisible(strings.Join(lines, "\n"))

	var out []string
	if hasTop {
		left := pick(hasLeft, b.TopLeft, b.Top)
		right := pick(hasRight, b.TopRight, b.Top)
		row := left + strings.Repeat(orSpace(b.Top), w) + right
		out = append(out, wrapSGR(s.edgeSGR(Top), row))
	}
	for _, l := range lines {
		line := l
		if hasLeft {
			line = wrapSGR(s.edgeSGR(Left), b.Left) + line
		}
		if hasRight {
			pad := w - measure.WidthVisible(l)
			if pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			line += wrapSGR(s.edgeSGR(Right), b.Right)
		}
		out = append(out, line)
	}
	if hasBottom {
		left := pick(hasLeft, b.BottomLeft, b.Bottom)
		right := pick(hasRight, b.BottomRight, b.Bottom)
		row := left + strings.Repeat(orSpace(b.Bottom), w) + right
		out = append(out, wrapSGR(s.edgeSGR(Bottom), row))
	}
	return out
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

func orSpace(s string) string {
	if s == "" {
		return " "
	}
	return s
}

// applyStyling wraps lines in SGR escapes, per spec §4.7 stage 13: the
// whole line if background or color-whitespace is set, otherwise only the
// non-whitespace core.
func (s Style) applyStyling(lines []string) []string {
	prefix := sgrPrefix(s)
	if prefix == "" {
		return lines
	}
	wrapWhole := !isNoColor(s.GetBackground()) || s.GetColorWhitespace()
	out := make([]string, len(lines))
	for i, l := range lines {
		if wrapWhole {
			out[i] = wrapSGR(prefix, l)
			continue
		}
		lead := leadingSpaces(l)
		trail := trailingSpaces(l[len(lead):])
		core := l[len(lead) : len(l)-len(trail)]
		if core == "" {
			out[i] = l
			continue
		}
		out[i] = lead + wrapSGR(prefix, core) + trail
	}
	return out
}

func leadingSpaces(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[:i]
}

func trailingSpaces(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == ' ' {
		i--
	}
	return s[i:]
}

// applyMargins applies top/right/bottom/left margins outside the border,
// per spec §4.7 stage 14.
func (s Style) applyMargins(block string) string {
	mt, mr, mb, ml := s.GetMarginTop(), s.GetMarginRight(), s.GetMarginBottom(), s.GetMarginLeft()
	if mt == 0 && mr == 0 && mb == 0 && ml == 0 {
		return block
	}

	var fillColor color.TerminalColor = color.NoColor{}
	if mbg := s.GetMarginBackground(); !isNoColor(mbg) {
		fillColor = mbg
	} else if bg := s.GetBackground(); !isNoColor(bg) {
		fillColor = bg
	}

	r := s.Renderer()
	var wsOpts []whitespace.Option
	if !isNoColor(fillColor) {
		wsOpts = append(wsOpts, whitespace.WithBackground(fillColor))
	}
	ws := whitespace.New(r, wsOpts...)

	lines, maxW := measure.GetLines(block)
	totalW := maxW + ml + mr

	var out []string
	if mt > 0 {
		row := ws.Render(totalW)
		for i := 0; i < mt; i++ {
			out = append(out, row)
		}
	}
	for _, l := range lines {
		line := l
		if ml > 0 {
			line = ws.Render(ml) + line
		}
		if mr > 0 {
			pad := maxW - measure.WidthVisible(l)
			if pad > 0 {
				line += ws.Render(pad)
			}
			line += ws.Render(mr)
		}
		out = append(out, line)
	}
	if mb > 0 {
		row := ws.Render(totalW)
		for i := 0; i < mb; i++ {
			out = append(out, row)
		}
	}
	return strings.Join(out, "\n")
}
