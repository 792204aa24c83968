package style

// Inherit copies every property that is set on other but not set on s,
// leaving s's own values untouched where both are set. Padding, margins,
// and the stored literal are never inherited (spec §4.5). As a special
// case, if other has a background set and s has no margin background set,
// s's margin background takes other's background -- so a bordered box
// inheriting a colored parent fills its margin the same color by default.
func (s Style) Inherit(other Style) Style {
	out := s

	copyBool := func(p propKey, a uint32, get func(Style) bool) {
		if other.has(p) && !out.has(p) {
			out = out.set(p)
			out = out.attrSet(a, get(other))
		}
	}
	copyBool(boldProp, attrBold, Style.GetBold)
	copyBool(italicProp, attrItalic, Style.GetItalic)
	copyBool(underlineProp, attrUnderline, Style.GetUnderline)
	copyBool(strikethroughProp, attrStrikethrough, Style.GetStrikethrough)
	copyBool(reverseProp, attrReverse, Style.GetReverse)
	copyBool(blinkProp, attrBlink, Style.GetBlink)
	copyBool(faintProp, attrFaint, Style.GetFaint)
	copyBool(underlineSpacesProp, attrUnderlineSpaces, Style.GetUnderlineSpaces)
	copyBool(strikethroughSpacesProp, attrStrikethroughSpaces, Style.GetStrikethroughSpaces)
	copyBool(colorWhitespaceProp, attrColorWhitespace, Style.GetColorWhitespace)
	copyBool(inlineProp, attrInline, Style.GetInline)
	copyBool(borderTopProp, attrBorderTop, Style.GetBorderTop)
	copyBool(borderRightProp, attrBorderRight, Style.GetBorderRight)
	copyBool(borderBottomProp, attrBorderBottom, Style.GetBorderBottom)
	copyBool(borderLeftProp, attrBorderLeft, Style.GetBorderLeft)

	if other.has(foregroundProp) && !out.has(foregroundProp) {
		out = out.Foreground(other.fg)
	}

	if other.has(backgroundProp) {
		if !out.has(marginBackgroundProp) {
			out = out.MarginBackground(other.bg)
		}
		if !out.has(backgroundProp) {
			out = out.Background(other.bg)
		}
	}

	if other.has(widthProp) && !out.has(widthProp) {
		out = out.Width(other.width)
	}
	if other.has(heightProp) && !out.has(heightProp) {
		out = out.Height(other.height)
	}
	if other.has(maxWidthProp) && !out.has(maxWidthProp) {
		out = out.MaxWidth(other.maxWidth)
	}
	if other.has(maxHeightProp) && !out.has(maxHeightProp) {
		out = out.MaxHeight(other.maxHeight)
	}
	if other.has(alignHorizontalProp) && !out.has(alignHorizontalProp) {
		out = out.AlignHorizontal(other.alignHorizontal)
	}
	if other.has(alignVerticalProp) && !out.has(alignVerticalProp) {
		out = out.AlignVertical(other.alignVertical)
	}

	if other.has(borderStyleProp) && !out.has(borderStyleProp) {
		out.props |= borderStyleProp
		out.borderStyle = other.borderStyle
	}
	if other.has(borderTopForegroundProp) && !out.has(borderTopForegroundProp) {
		out = out.BorderTopForeground(other.borderFg[Top])
	}
	if other.has(borderRightForegroundProp) && !out.has(borderRightForegroundProp) {
		out = out.BorderRightForeground(other.borderFg[Right])
	}
	if other.has(borderBottomForegroundProp) && !out.has(borderBottomForegroundProp) {
		out = out.BorderBottomForeground(other.borderFg[Bottom])
	}
	if other.has(borderLeftForegroundProp) && !out.has(borderLeftForegroundProp) {
		out = out.BorderLeftForeground(other.borderFg[Left])
	}
	if other.has(borderTopBackgroundProp) && !out.has(borderTopBackgroundProp) {
		out = out.BorderTopBackground(other.borderBg[Top])
	}
	if other.has(borderRightBackgroundProp) && !out.has(borderRightBackgroundProp) {
		out = out.BorderRightBackground(other.borderBg[Right])
	}
	if other.has(borderBottomBackgroundProp) && !out.has(borderBottomBackgroundProp) {
		out = out.BorderBottomBackground(other.borderBg[Bottom])
	}
	if other.has(borderLeftBackgroundProp) && !out.has(borderLeftBackgroundProp) {
		out = out.BorderLeftBackground(other.borderBg[Left])
	}

	if other.has(tabWidthProp) && !out.has(tabWidthProp) {
		out = out.TabWidth(other.tabWidth)
	}
	if other.has(transformProp) && !out.has(transformProp) {
		out = out.Transform(other.transform)
	}

	// Padding, margins (besides the background special case above), and
	// the stored literal are deliberately never inherited.
	return out
}
