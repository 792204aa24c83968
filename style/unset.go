package style

import "github.com/whit3rabbit/lipgloss-go/border"

// Unset-family methods clear both the "is this set" bit and any stored
// value/color, reverting the property to its sentinel default (spec §4.5).

func (s Style) UnsetBold() Style              { return s.clear(boldProp).attrSet(attrBold, false) }
func (s Style) UnsetItalic() Style            { return s.clear(italicProp).attrSet(attrItalic, false) }
func (s Style) UnsetUnderline() Style         { return s.clear(underlineProp).attrSet(attrUnderline, false) }
func (s Style) UnsetStrikethrough() Style {
	return s.clear(strikethroughProp).attrSet(attrStrikethrough, false)
}
func (s Style) UnsetReverse() Style { return s.clear(reverseProp).attrSet(attrReverse, false) }
func (s Style) UnsetBlink() Style   { return s.clear(blinkProp).attrSet(attrBlink, false) }
func (s Style) UnsetFaint() Style   { return s.clear(faintProp).attrSet(attrFaint, false) }
func (s Style) UnsetUnderlineSpaces() Style {
	return s.clear(underlineSpacesProp).attrSet(attrUnderlineSpaces, false)
}
func (s Style) UnsetStrikethroughSpaces() Style {
	return s.clear(strikethroughSpacesProp).attrSet(attrStrikethroughSpaces, false)
}
func (s Style) UnsetColorWhitespace() Style {
	return s.clear(colorWhitespaceProp).attrSet(attrColorWhitespace, false)
}
func (s Style) UnsetInline() Style { return s.clear(inlineProp).attrSet(attrInline, false) }

func (s Style) UnsetForeground() Style { s = s.clear(foregroundProp); s.fg = nil; return s }
func (s Style) UnsetBackground() Style { s = s.clear(backgroundProp); s.bg = nil; return s }

func (s Style) UnsetWidth() Style     { s = s.clear(widthProp); s.width = 0; return s }
func (s Style) UnsetHeight() Style    { s = s.clear(heightProp); s.height = 0; return s }
func (s Style) UnsetMaxWidth() Style  { s = s.clear(maxWidthProp); s.maxWidth = 0; return s }
func (s Style) UnsetMaxHeight() Style { s = s.clear(maxHeightProp); s.maxHeight = 0; return s }

func (s Style) UnsetAlign() Style { return s.UnsetAlignHorizontal().UnsetAlignVertical() }
func (s Style) UnsetAlignHorizontal() Style {
	s = s.clear(alignHorizontalProp)
	s.alignHorizontal = 0
	return s
}
func (s Style) UnsetAlignVertical() Style {
	s = s.clear(alignVerticalProp)
	s.alignVertical = 0
	return s
}

func (s Style) UnsetPadding() Style {
	return s.UnsetPaddingTop().UnsetPaddingRight().UnsetPaddingBottom().UnsetPaddingLeft()
}
func (s Style) UnsetPaddingTop() Style {
	s = s.clear(paddingTopProp)
	s.paddingTop = 0
	return s
}
func (s Style) UnsetPaddingRight() Style {
	s = s.clear(paddingRightProp)
	s.paddingRight = 0
	return s
}
func (s Style) UnsetPaddingBottom() Style {
	s = s.clear(paddingBottomProp)
	s.paddingBottom = 0
	return s
}
func (s Style) UnsetPaddingLeft() Style {
	s = s.clear(paddingLeftProp)
	s.paddingLeft = 0
	return s
}

func (s Style) UnsetMargin() Style {
	return s.UnsetMarginTop().UnsetMarginRight().UnsetMarginBottom().UnsetMarginLeft()
}
func (s Style) UnsetMarginTop() Style {
	s = s.clear(marginTopProp)
	s.marginTop = 0
	return s
}
func (s Style) UnsetMarginRight() Style {
	s = s.clear(marginRightProp)
	s.marginRight = 0
	return s
}
func (s Style) UnsetMarginBottom() Style {
	s = s.clear(marginBottomProp)
	s.marginBottom = 0
	return s
}
func (s Style) UnsetMarginLeft() Style {
	s = s.clear(marginLeftProp)
	s.marginLeft = 0
	return s
}
func (s Style) UnsetMarginBackground() Style {
	s = s.clear(marginBackgroundProp)
	s.marginBg = nil
	return s
}

func (s Style) UnsetBorderStyle() Style {
	s = s.clear(borderStyleProp)
	s.borderStyle = border.Border{}
	return s
}
func (s Style) UnsetBorderTop() Style {
	return s.clear(borderTopProp).attrSet(attrBorderTop, false)
}
func (s Style) UnsetBorderRight() Style {
	return s.clear(borderRightProp).attrSet(attrBorderRight, false)
}
func (s Style) UnsetBorderBottom() Style {
	return s.clear(borderBottomProp).attrSet(attrBorderBottom, false)
}
func (s Style) UnsetBorderLeft() Style {
	return s.clear(borderLeftProp).attrSet(attrBorderLeft, false)
}

func (s Style) UnsetBorderForeground() Style {
	return s.UnsetBorderTopForeground().UnsetBorderRightForeground().
		UnsetBorderBottomForeground().UnsetBorderLeftForeground()
}
func (s Style) UnsetBorderBackground() Style {
	return s.UnsetBorderTopBackground().UnsetBorderRightBackground().
		UnsetBorderBottomBackground().UnsetBorderLeftBackground()
}
func (s Style) UnsetBorderTopForeground() Style {
	s = s.clear(borderTopForegroundProp)
	s.borderFg[Top] = nil
	return s
}
func (s Style) UnsetBorderRightForeground() Style {
	s = s.clear(borderRightForegroundProp)
	s.borderFg[Right] = nil
	return s
}
func (s Style) UnsetBorderBottomForeground() Style {
	s = s.clear(borderBottomForegroundProp)
	s.borderFg[Bottom] = nil
	return s
}
func (s Style) UnsetBorderLeftForeground() Style {
	s = s.clear(borderLeftForegroundProp)
	s.borderFg[Left] = nil
	return s
}
func (s Style) UnsetBorderTopBackground() Style {
	s = s.clear(borderTopBackgroundProp)
	s.borderBg[Top] = nil
	return s
}
func (s Style) UnsetBorderRightBackground() Style {
	s = s.clear(borderRightBackgroundProp)
	s.borderBg[Right] = nil
	return s
}
func (s Style) UnsetBorderBottomBackground() Style {
	s = s.clear(borderBottomBackgroundProp)
	s.borderBg[Bottom] = nil
	return s
}
func (s Style) UnsetBorderLeftBackground() Style {
	s = s.clear(borderLeftBackgroundProp)
	s.borderBg[Left] = nil
	return s
}

func (s Style) UnsetTabWidth() Style {
	s = s.clear(tabWidthProp)
	s.tabWidth = 0
	return s
}
func (s Style) UnsetTransform() Style {
	s = s.clear(transformProp)
	s.transform = nil
	return s
}
func (s Style) UnsetString() Style {
	s = s.clear(valueProp)
	s.value = ""
	return s
}
