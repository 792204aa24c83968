// Package style implements the Style value object and the block rendering
// pipeline described in spec §3.2 and §4.5-§4.7: a bitfield-tracked property
// bag, built up through chained setters, that turns a plain string into a
// bordered, padded, aligned, colored terminal block.
//
// # Quick Start
//
//	s := style.New().
//		Bold(true).
//		Foreground(color.Color("205")).
//		Padding(0, 1).
//		Border(border.Rounded)
//	fmt.Println(s.Render("Hello, world!"))
//
// # Architecture
//
// A Style never mutates: every setter returns an independent copy with one
// more bit set in its property bitfield (spec §3.2). Render walks the
// fourteen stages of spec §4.7 in order, each stage threading a slice of
// lines to the next. Join, Place, and the table/tree packages call Render
// as a subroutine and then operate on its output line by line.
package style

import (
	"github.com/whit3rabbit/lipgloss-go/border"
	"github.com/whit3rabbit/lipgloss-go/color"
	"github.com/whit3rabbit/lipgloss-go/renderer"
)

// propKey is a bit position in Style.props: one bit per recognized
// property, marking whether it has been explicitly set (spec §3.2).
type propKey uint64

const (
	boldProp propKey = 1 << iota
	italicProp
	underlineProp
	strikethroughProp
	reverseProp
	blinkProp
	faintProp
	underlineSpacesProp
	strikethroughSpacesProp
	colorWhitespaceProp
	inlineProp
	foregroundProp
	backgroundProp
	widthProp
	heightProp
	maxWidthProp
	maxHeightProp
	alignHorizontalProp
	alignVerticalProp
	paddingTopProp
	paddingRightProp
	paddingBottomProp
	paddingLeftProp
	marginTopProp
	marginRightProp
	marginBottomProp
	marginLeftProp
	marginBackgroundProp
	borderStyleProp
	borderTopProp
	borderRightProp
	borderBottomProp
	borderLeftProp
	borderTopForegroundProp
	borderRightForegroundProp
	borderBottomForegroundProp
	borderLeftForegroundProp
	borderTopBackgroundProp
	borderRightBackgroundProp
	borderBottomBackgroundProp
	borderLeftBackgroundProp
	tabWidthProp
	transformProp
	valueProp
)

// attrs bitfield flags: boolean text attributes and per-side border
// visibility, stored separately from the "is it set" props bitfield so a
// boolean property can be explicitly set to false (spec §3.2).
const (
	attrBold uint32 = 1 << iota
	attrItalic
	attrUnderline
	attrStrikethrough
	attrReverse
	attrBlink
	attrFaint
	attrUnderlineSpaces
	attrStrikethroughSpaces
	attrColorWhitespace
	attrInline
	attrBorderTop
	attrBorderRight
	attrBorderBottom
	attrBorderLeft
)

// Edge indexes the four sides of a box in top/right/bottom/left order, used
// for per-edge border color slots.
type Edge int

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

// Position constants map exactly to the h/v alignment fractions of spec
// §4.7 stage 10/11.
const (
	PositionTop    = 0.0
	PositionLeft   = 0.0
	PositionCenter = 0.5
	PositionBottom = 1.0
	PositionRight  = 1.0
)

// TabWidthDefault is the default tab expansion width (spec §3.2).
const TabWidthDefault = 4

// Style is an immutable value object: every setter returns a new Style,
// never mutating the receiver. The zero value is a usable, empty Style
// equivalent to New().
type Style struct {
	r *renderer.Renderer

	props propKey
	attrs uint32

	fg       color.TerminalColor
	bg       color.TerminalColor
	marginBg color.TerminalColor
	borderFg [4]color.TerminalColor
	borderBg [4]color.TerminalColor

	width, height       int
	maxWidth, maxHeight int

	paddingTop, paddingRight, paddingBottom, paddingLeft int
	marginTop, marginRight, marginBottom, marginLeft     int

	tabWidth int

	alignHorizontal, alignVertical float64

	borderStyle border.Border

	transform func(string) string
	value     string
}

// New creates an empty Style bound to the process-wide default renderer.
func New() Style {
	return Style{r: renderer.Default()}
}

// NewWithRenderer creates an empty Style bound to an explicit renderer,
// instead of the process-wide default.
func NewWithRenderer(r *renderer.Renderer) Style {
	return Style{r: r}
}

// Renderer returns the renderer this Style resolves colors against.
func (s Style) Renderer() *renderer.Renderer {
	if s.r == nil {
		return renderer.Default()
	}
	return s.r
}

// has reports whether prop's bit is set in s.props.
func (s Style) has(p propKey) bool { return s.props&p != 0 }

// set returns a copy of s with prop's bit set.
func (s Style) set(p propKey) Style {
	s.props |= p
	return s
}

// clear returns a copy of s with prop's bit (and, where applicable, the
// stored value) cleared.
func (s Style) clear(p propKey) Style {
	s.props &^= p
	return s
}

func (s Style) attrSet(a uint32, v bool) Style {
	if v {
		s.attrs |= a
	} else {
		s.attrs &^= a
	}
	return s
}

func (s Style) attr(a uint32) bool { return s.attrs&a != 0 }

// Equal reports whether s and o carry the same properties and values.
// Colors are compared by their RGBA values; the transform function and the
// bound renderer are not compared.
func (s Style) Equal(o Style) bool {
	if s.props != o.props || s.attrs != o.attrs {
		return false
	}
	if s.width != o.width || s.height != o.height ||
		s.maxWidth != o.maxWidth || s.maxHeight != o.maxHeight ||
		s.paddingTop != o.paddingTop || s.paddingRight != o.paddingRight ||
		s.paddingBottom != o.paddingBottom || s.paddingLeft != o.paddingLeft ||
		s.marginTop != o.marginTop || s.marginRight != o.marginRight ||
		s.marginBottom != o.marginBottom || s.marginLeft != o.marginLeft ||
		s.tabWidth != o.tabWidth ||
		s.alignHorizontal != o.alignHorizontal || s.alignVertical != o.alignVertical {
		return false
	}
	if s.borderStyle != o.borderStyle {
		return false
	}
	if s.value != o.value {
		return false
	}
	if !colorEqual(s.fg, o.fg) || !colorEqual(s.bg, o.bg) || !colorEqual(s.marginBg, o.marginBg) {
		return false
	}
	for i := 0; i < 4; i++ {
		if !colorEqual(s.borderFg[i], o.borderFg[i]) || !colorEqual(s.borderBg[i], o.borderBg[i]) {
			return false
		}
	}
	return true
}

func colorEqual(a, b color.TerminalColor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, ga, ba, aa := a.RGBA()
	rb, gb, bb, ab := b.RGBA()
	return ra == rb && ga == gb && ba == bb && aa == ab
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
