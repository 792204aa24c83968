package style

import (
	"github.com/whit3rabbit/lipgloss-go/border"
	"github.com/whit3rabbit/lipgloss-go/color"
)

// Bold sets the bold text attribute.
func (s Style) Bold(v bool) Style { return s.set(boldProp).attrSet(attrBold, v) }

// Italic sets the italic text attribute.
func (s Style) Italic(v bool) Style { return s.set(italicProp).attrSet(attrItalic, v) }

// Underline sets the underline text attribute.
func (s Style) Underline(v bool) Style { return s.set(underlineProp).attrSet(attrUnderline, v) }

// Strikethrough sets the strikethrough text attribute.
func (s Style) Strikethrough(v bool) Style {
	return s.set(strikethroughProp).attrSet(attrStrikethrough, v)
}

// Reverse sets the reverse-video text attribute.
func (s Style) Reverse(v bool) Style { return s.set(reverseProp).attrSet(attrReverse, v) }

// Blink sets the blinking text attribute.
func (s Style) Blink(v bool) Style { return s.set(blinkProp).attrSet(attrBlink, v) }

// Faint sets the faint (dim) text attribute.
func (s Style) Faint(v bool) Style { return s.set(faintProp).attrSet(attrFaint, v) }

// UnderlineSpaces controls whether whitespace is underlined along with text.
func (s Style) UnderlineSpaces(v bool) Style {
	return s.set(underlineSpacesProp).attrSet(attrUnderlineSpaces, v)
}

// StrikethroughSpaces controls whether whitespace is struck through along
// with text.
func (s Style) StrikethroughSpaces(v bool) Style {
	return s.set(strikethroughSpacesProp).attrSet(attrStrikethroughSpaces, v)
}

// ColorWhitespace controls whether whitespace inherits the foreground and
// background colors.
func (s Style) ColorWhitespace(v bool) Style {
	return s.set(colorWhitespaceProp).attrSet(attrColorWhitespace, v)
}

// Inline sets inline rendering mode: all line feeds are stripped before any
// other processing (spec §4.7 stage 2).
func (s Style) Inline(v bool) Style { return s.set(inlineProp).attrSet(attrInline, v) }

// Foreground sets the text color.
func (s Style) Foreground(c color.TerminalColor) Style {
	s = s.set(foregroundProp)
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c color.TerminalColor) Style {
	s = s.set(backgroundProp)
	s.bg = c
	return s
}

// Width sets a fixed display width, enabling word wrap and horizontal
// alignment against it (spec §4.7 stages 7, 10).
func (s Style) Width(v int) Style { s.width = clampNonNegative(v); return s.set(widthProp) }

// Height sets a fixed display height, enabling vertical alignment (spec
// §4.7 stage 11).
func (s Style) Height(v int) Style { s.height = clampNonNegative(v); return s.set(heightProp) }

// MaxWidth caps the display width per line via truncation (spec §4.7 stage 6).
func (s Style) MaxWidth(v int) Style {
	s.maxWidth = clampNonNegative(v)
	return s.set(maxWidthProp)
}

// MaxHeight caps the number of lines via truncation (spec §4.7 stage 5).
func (s Style) MaxHeight(v int) Style {
	s.maxHeight = clampNonNegative(v)
	return s.set(maxHeightProp)
}

// Align sets both horizontal and vertical alignment in one call.
func (s Style) Align(h, v float64) Style {
	return s.AlignHorizontal(h).AlignVertical(v)
}

// AlignHorizontal sets the horizontal alignment fraction in [0,1].
func (s Style) AlignHorizontal(v float64) Style {
	s.alignHorizontal = clampUnit(v)
	return s.set(alignHorizontalProp)
}

// AlignVertical sets the vertical alignment fraction in [0,1].
func (s Style) AlignVertical(v float64) Style {
	s.alignVertical = clampUnit(v)
	return s.set(alignVerticalProp)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PaddingTop sets top padding, in cells.
func (s Style) PaddingTop(v int) Style {
	s.paddingTop = clampNonNegative(v)
	return s.set(paddingTopProp)
}

// PaddingRight sets right padding, in cells.
func (s Style) PaddingRight(v int) Style {
	s.paddingRight = clampNonNegative(v)
	return s.set(paddingRightProp)
}

// PaddingBottom sets bottom padding, in cells.
func (s Style) PaddingBottom(v int) Style {
	s.paddingBottom = clampNonNegative(v)
	return s.set(paddingBottomProp)
}

// PaddingLeft sets left padding, in cells.
func (s Style) PaddingLeft(v int) Style {
	s.paddingLeft = clampNonNegative(v)
	return s.set(paddingLeftProp)
}

// Padding applies the CSS shorthand rule (spec §4.5) across 1-4 values:
// all sides / vertical,horizontal / top,horizontal,bottom /
// top,right,bottom,left. Any other count leaves the style unchanged.
func (s Style) Padding(values ...int) Style {
	t, r, b, l, ok := shorthand(values)
	if !ok {
		return s
	}
	return s.PaddingTop(t).PaddingRight(r).PaddingBottom(b).PaddingLeft(l)
}

// MarginTop sets top margin, in cells.
func (s Style) MarginTop(v int) Style {
	s.marginTop = clampNonNegative(v)
	return s.set(marginTopProp)
}

// MarginRight sets right margin, in cells.
func (s Style) MarginRight(v int) Style {
	s.marginRight = clampNonNegative(v)
	return s.set(marginRightProp)
}

// MarginBottom sets bottom margin, in cells.
func (s Style) MarginBottom(v int) Style {
	s.marginBottom = clampNonNegative(v)
	return s.set(marginBottomProp)
}

// MarginLeft sets left margin, in cells.
func (s Style) MarginLeft(v int) Style {
	s.marginLeft = clampNonNegative(v)
	return s.set(marginLeftProp)
}

// Margin applies the same 1-4 value CSS shorthand rule as Padding.
func (s Style) Margin(values ...int) Style {
	t, r, b, l, ok := shorthand(values)
	if !ok {
		return s
	}
	return s.MarginTop(t).MarginRight(r).MarginBottom(b).MarginLeft(l)
}

// MarginBackground sets the fill color used for margin cells.
func (s Style) MarginBackground(c color.TerminalColor) Style {
	s = s.set(marginBackgroundProp)
	s.marginBg = c
	return s
}

// Border sets the border glyph set. sides, if given, enables exactly the
// listed edges in top/right/bottom/left order (extra args are ignored,
// missing ones default to false); with no sides, all four edges are
// enabled.
func (s Style) Border(b border.Border, sides ...bool) Style {
	s = s.set(borderStyleProp)
	s.borderStyle = b
	if len(sides) == 0 {
		return s.BorderTop(true).BorderRight(true).BorderBottom(true).BorderLeft(true)
	}
	get := func(i int) bool {
		if i < len(sides) {
			return sides[i]
		}
		return false
	}
	return s.BorderTop(get(0)).BorderRight(get(1)).BorderBottom(get(2)).BorderLeft(get(3))
}

// BorderTop enables or disables the top border edge.
func (s Style) BorderTop(v bool) Style { return s.set(borderTopProp).attrSet(attrBorderTop, v) }

// BorderRight enables or disables the right border edge.
func (s Style) BorderRight(v bool) Style {
	return s.set(borderRightProp).attrSet(attrBorderRight, v)
}

// BorderBottom enables or disables the bottom border edge.
func (s Style) BorderBottom(v bool) Style {
	return s.set(borderBottomProp).attrSet(attrBorderBottom, v)
}

// BorderLeft enables or disables the left border edge.
func (s Style) BorderLeft(v bool) Style { return s.set(borderLeftProp).attrSet(attrBorderLeft, v) }

// BorderForeground sets the foreground color for all four border edges at
// once.
func (s Style) BorderForeground(c color.TerminalColor) Style {
	return s.BorderTopForeground(c).BorderRightForeground(c).
		BorderBottomForeground(c).BorderLeftForeground(c)
}

// BorderBackground sets the background color for all four border edges at
// once.
func (s Style) BorderBackground(c color.TerminalColor) Style {
	return s.BorderTopBackground(c).BorderRightBackground(c).
		BorderBottomBackground(c).BorderLeftBackground(c)
}

// BorderTopForeground sets the top border edge's foreground color.
func (s Style) BorderTopForeground(c color.TerminalColor) Style {
	s = s.set(borderTopForegroundProp)
	s.borderFg[Top] = c
	return s
}

// BorderRightForeground sets the right border edge's foreground color.
func (s Style) BorderRightForeground(c color.TerminalColor) Style {
	s = s.set(borderRightForegroundProp)
	s.borderFg[Right] = c
	return s
}

// BorderBottomForeground sets the bottom border edge's foreground color.
func (s Style) BorderBottomForeground(c color.TerminalColor) Style {
	s = s.set(borderBottomForegroundProp)
	s.borderFg[Bottom] = c
	return s
}

// BorderLeftForeground sets the left border edge's foreground color.
func (s Style) BorderLeftForeground(c color.TerminalColor) Style {
	s = s.set(borderLeftForegroundProp)
	s.borderFg[Left] = c
	return s
}

// BorderTopBackground sets the top border edge's background color.
func (s Style) BorderTopBackground(c color.TerminalColor) Style {
	s = s.set(borderTopBackgroundProp)
	s.borderBg[Top] = c
	return s
}

// BorderRightBackground sets the right border edge's background color.
func (s Style) BorderRightBackground(c color.TerminalColor) Style {
	s = s.set(borderRightBackgroundProp)
	s.borderBg[Right] = c
	return s
}

// BorderBottomBackground sets the bottom border edge's background color.
func (s Style) BorderBottomBackground(c color.TerminalColor) Style {
	s = s.set(borderBottomBackgroundProp)
	s.borderBg[Bottom] = c
	return s
}

// BorderLeftBackground sets the left border edge's background color.
func (s Style) BorderLeftBackground(c color.TerminalColor) Style {
	s = s.set(borderLeftBackgroundProp)
	s.borderBg[Left] = c
	return s
}

// TabWidth sets how many spaces a tab expands to. 0 deletes tabs outright;
// a negative value preserves tabs as-is (spec §4.7 stage 4).
func (s Style) TabWidth(v int) Style {
	s.tabWidth = v
	return s.set(tabWidthProp)
}

// Transform sets a function applied to the full string early in the render
// pipeline (spec §4.7 stage 3).
func (s Style) Transform(fn func(string) string) Style {
	s.transform = fn
	return s.set(transformProp)
}

// SetString stores a literal that Render uses whenever it is called with
// an empty string argument.
func (s Style) SetString(v string) Style {
	s.value = v
	return s.set(valueProp)
}

// shorthand expands a 1-4 value CSS shorthand slice into (top, right,
// bottom, left). Any other length reports ok=false, per spec §4.5.
func shorthand(values []int) (top, right, bottom, left int, ok bool) {
	switch len(values) {
	case 1:
		return values[0], values[0], values[0], values[0], true
	case 2:
		return values[0], values[1], values[0], values[1], true
	case 3:
		return values[0], values[1], values[2], values[1], true
	case 4:
		return values[0], values[1], values[2], values[3], true
	default:
		return 0, 0, 0, 0, false
	}
}
