package style

import (
	"github.com/whit3rabbit/lipgloss-go/border"
	"github.com/whit3rabbit/lipgloss-go/color"
)

// Every getter below returns the stored value when its property bit is
// set, and a sentinel default otherwise (spec §3.2): 0 for dimensions,
// PositionLeft/PositionTop for alignment, border.Hidden for the border set,
// color.NoColor{} for colors.

func (s Style) GetBold() bool   { return s.has(boldProp) && s.attr(attrBold) }
func (s Style) GetItalic() bool { return s.has(italicProp) && s.attr(attrItalic) }
func (s Style) GetUnderline() bool {
	return s.has(underlineProp) && s.attr(attrUnderline)
}
func (s Style) GetStrikethrough() bool {
	return s.has(strikethroughProp) && s.attr(attrStrikethrough)
}
func (s Style) GetReverse() bool { return s.has(reverseProp) && s.attr(attrReverse) }
func (s Style) GetBlink() bool   { return s.has(blinkProp) && s.attr(attrBlink) }
func (s Style) GetFaint() bool   { return s.has(faintProp) && s.attr(attrFaint) }
func (s Style) GetUnderlineSpaces() bool {
	return s.has(underlineSpacesProp) && s.attr(attrUnderlineSpaces)
}
func (s Style) GetStrikethroughSpaces() bool {
	return s.has(strikethroughSpacesProp) && s.attr(attrStrikethroughSpaces)
}
func (s Style) GetColorWhitespace() bool {
	return s.has(colorWhitespaceProp) && s.attr(attrColorWhitespace)
}
func (s Style) GetInline() bool { return s.has(inlineProp) && s.attr(attrInline) }

func (s Style) GetForeground() color.TerminalColor {
	if s.has(foregroundProp) && s.fg != nil {
		return s.fg
	}
	return color.NoColor{}
}

func (s Style) GetBackground() color.TerminalColor {
	if s.has(backgroundProp) && s.bg != nil {
		return s.bg
	}
	return color.NoColor{}
}

func (s Style) GetWidth() int {
	if s.has(widthProp) {
		return s.width
	}
	return 0
}

func (s Style) GetHeight() int {
	if s.has(heightProp) {
		return s.height
	}
	return 0
}

func (s Style) GetMaxWidth() int {
	if s.has(maxWidthProp) {
		return s.maxWidth
	}
	return 0
}

func (s Style) GetMaxHeight() int {
	if s.has(maxHeightProp) {
		return s.maxHeight
	}
	return 0
}

func (s Style) GetAlignHorizontal() float64 {
	if s.has(alignHorizontalProp) {
		return s.alignHorizontal
	}
	return PositionLeft
}

func (s Style) GetAlignVertical() float64 {
	if s.has(alignVerticalProp) {
		return s.alignVertical
	}
	return PositionTop
}

func (s Style) GetPaddingTop() int {
	if s.has(paddingTopProp) {
		return s.paddingTop
	}
	return 0
}

func (s Style) GetPaddingRight() int {
	if s.has(paddingRightProp) {
		return s.paddingRight
	}
	return 0
}

func (s Style) GetPaddingBottom() int {
	if s.has(paddingBottomProp) {
		return s.paddingBottom
	}
	return 0
}

func (s Style) GetPaddingLeft() int {
	if s.has(paddingLeftProp) {
		return s.paddingLeft
	}
	return 0
}

func (s Style) GetMarginTop() int {
	if s.has(marginTopProp) {
		return s.marginTop
	}
	return 0
}

func (s Style) GetMarginRight() int {
	if s.has(marginRightProp) {
		return s.marginRight
	}
	return 0
}

func (s Style) GetMarginBottom() int {
	if s.has(marginBottomProp) {
		return s.marginBottom
	}
	return 0
}

func (s Style) GetMarginLeft() int {
	if s.has(marginLeftProp) {
		return s.marginLeft
	}
	return 0
}

func (s Style) GetMarginBackground() color.TerminalColor {
	if s.has(marginBackgroundProp) && s.marginBg != nil {
		return s.marginBg
	}
	return color.NoColor{}
}

func (s Style) GetBorderStyle() border.Border {
	if s.has(borderStyleProp) {
		return s.borderStyle
	}
	return border.Hidden
}

func (s Style) GetBorderTop() bool    { return s.has(borderTopProp) && s.attr(attrBorderTop) }
func (s Style) GetBorderRight() bool  { return s.has(borderRightProp) && s.attr(attrBorderRight) }
func (s Style) GetBorderBottom() bool { return s.has(borderBottomProp) && s.attr(attrBorderBottom) }
func (s Style) GetBorderLeft() bool   { return s.has(borderLeftProp) && s.attr(attrBorderLeft) }

func (s Style) getBorderFg(e Edge, p propKey) color.TerminalColor {
	if s.has(p) && s.borderFg[e] != nil {
		return s.borderFg[e]
	}
	return color.NoColor{}
}

func (s Style) getBorderBg(e Edge, p propKey) color.TerminalColor {
	if s.has(p) && s.borderBg[e] != nil {
		return s.borderBg[e]
	}
	return color.NoColor{}
}

func (s Style) GetBorderTopForeground() color.TerminalColor {
	return s.getBorderFg(Top, borderTopForegroundProp)
}
func (s Style) GetBorderRightForeground() color.TerminalColor {
	return s.getBorderFg(Right, borderRightForegroundProp)
}
func (s Style) GetBorderBottomForeground() color.TerminalColor {
	return s.getBorderFg(Bottom, borderBottomForegroundProp)
}
func (s Style) GetBorderLeftForeground() color.TerminalColor {
	return s.getBorderFg(Left, borderLeftForegroundProp)
}
func (s Style) GetBorderTopBackground() color.TerminalColor {
	return s.getBorderBg(Top, borderTopBackgroundProp)
}
func (s Style) GetBorderRightBackground() color.TerminalColor {
	return s.getBorderBg(Right, borderRightBackgroundProp)
}
func (s Style) GetBorderBottomBackground() color.TerminalColor {
	return s.getBorderBg(Bottom, borderBottomBackgroundProp)
}
func (s Style) GetBorderLeftBackground() color.TerminalColor {
	return s.getBorderBg(Left, borderLeftBackgroundProp)
}

func (s Style) GetTabWidth() int {
	if s.has(tabWidthProp) {
		return s.tabWidth
	}
	return TabWidthDefault
}

func (s Style) GetTransform() func(string) string {
	if s.has(transformProp) {
		return s.transform
	}
	return nil
}

func (s Style) GetString() string {
	if s.has(valueProp) {
		return s.value
	}
	return ""
}

// GetHorizontalPadding returns the sum of left and right padding.
func (s Style) GetHorizontalPadding() int { return s.GetPaddingLeft() + s.GetPaddingRight() }

// GetVerticalPadding returns the sum of top and bottom padding.
func (s Style) GetVerticalPadding() int { return s.GetPaddingTop() + s.GetPaddingBottom() }

// GetHorizontalMargins returns the sum of left and right margin.
func (s Style) GetHorizontalMargins() int { return s.GetMarginLeft() + s.GetMarginRight() }

// GetVerticalMargins returns the sum of top and bottom margin.
func (s Style) GetVerticalMargins() int { return s.GetMarginTop() + s.GetMarginBottom() }

// GetHorizontalBorderSize returns the display width consumed by enabled
// left/right border edges.
func (s Style) GetHorizontalBorderSize() int {
	b := s.GetBorderStyle()
	w := 0
	if s.GetBorderLeft() {
		w += b.LeftSize()
	}
	if s.GetBorderRight() {
		w += b.RightSize()
	}
	return w
}

// GetVerticalBorderSize returns the number of lines consumed by enabled
// top/bottom border edges.
func (s Style) GetVerticalBorderSize() int {
	n := 0
	if s.GetBorderTop() {
		n++
	}
	if s.GetBorderBottom() {
		n++
	}
	return n
}
