package style

import (
	"strings"

	"github.com/whit3rabbit/lipgloss-go/color"
)

const sgrReset = "\x1b[0m"

func isNoColor(c color.TerminalColor) bool {
	if c == nil {
		return true
	}
	_, ok := c.(color.NoColor)
	return ok
}

// attrCodes returns the SGR parameter codes for s's boolean attributes, in
// the fixed order required by spec §4.7's SGR encoding table.
func attrCodes(s Style) []string {
	var codes []string
	if s.GetBold() {
		codes = append(codes, "1")
	}
	if s.GetFaint() {
		codes = append(codes, "2")
	}
	if s.GetItalic() {
		codes = append(codes, "3")
	}
	if s.GetUnderline() {
		codes = append(codes, "4")
	}
	if s.GetBlink() {
		codes = append(codes, "5")
	}
	if s.GetReverse() {
		codes = append(codes, "7")
	}
	if s.GetStrikethrough() {
		codes = append(codes, "9")
	}
	return codes
}

// sgrPrefix builds the full "ESC[...m" escape for s's attributes plus its
// main foreground/background colors, or "" if nothing is set.
func sgrPrefix(s Style) string {
	r := s.Renderer()
	profile := r.ColorProfile()
	codes := attrCodes(s)
	if fg := s.GetForeground(); !isNoColor(fg) {
		if seg := color.SGRForeground(fg.Token(r), profile); seg != "" {
			codes = append(codes, seg)
		}
	}
	if bg := s.GetBackground(); !isNoColor(bg) {
		if seg := color.SGRBackground(bg.Token(r), profile); seg != "" {
			codes = append(codes, seg)
		}
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// edgeForeground resolves the effective foreground color for border edge
// e, per spec §4.7 stage 12: the per-edge color if set; else, if all four
// per-edge colors are unset, the main foreground; otherwise no color.
// There is no separate combined border color: BorderForeground sets all
// four per-edge colors.
func (s Style) edgeForeground(e Edge) color.TerminalColor {
	props := [4]propKey{borderTopForegroundProp, borderRightForegroundProp, borderBottomForegroundProp, borderLeftForegroundProp}
	if s.has(props[e]) {
		return s.borderFg[e]
	}
	anySet := s.has(props[0]) || s.has(props[1]) || s.has(props[2]) || s.has(props[3])
	if !anySet {
		return s.GetForeground()
	}
	return color.NoColor{}
}

func (s Style) edgeBackground(e Edge) color.TerminalColor {
	props := [4]propKey{borderTopBackgroundProp, borderRightBackgroundProp, borderBottomBackgroundProp, borderLeftBackgroundProp}
	if s.has(props[e]) {
		return s.borderBg[e]
	}
	anySet := s.has(props[0]) || s.has(props[1]) || s.has(props[2]) || s.has(props[3])
	if !anySet {
		return s.GetBackground()
	}
	return color.NoColor{}
}

// edgeSGR builds the "ESC[...m" prefix for edge e's effective colors, or ""
// if neither is set.
func (s Style) edgeSGR(e Edge) string {
	r := s.Renderer()
	profile := r.ColorProfile()
	var codes []string
	if fg := s.edgeForeground(e); !isNoColor(fg) {
		if seg := color.SGRForeground(fg.Token(r), profile); seg != "" {
			codes = append(codes, seg)
		}
	}
	if bg := s.edgeBackground(e); !isNoColor(bg) {
		if seg := color.SGRBackground(bg.Token(r), profile); seg != "" {
			codes = append(codes, seg)
		}
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// wrapSGR wraps text in prefix and a trailing reset, or returns text
// unchanged if prefix is empty.
func wrapSGR(prefix, text string) string {
	if prefix == "" {
		return text
	}
	return prefix + text + sgrReset
}
