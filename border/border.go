// Package border defines the glyph sets used to draw box borders around
// styled blocks, per spec §3.2 and §4.4.
package border

import "github.com/mattn/go-runewidth"

// Border holds every glyph needed to draw a complete box border, including
// corners, edges, and the junction characters used when borders are tiled
// (as in table rendering).
type Border struct {
	Top    string
	Bottom string
	Left   string
	Right  string

	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	MiddleLeft   string
	MiddleRight  string
	Middle       string
	MiddleTop    string
	MiddleBottom string
}

// TopSize returns the display width needed for the top edge: the widest of
// the top-left corner, top edge, and top-right corner glyphs.
func (b Border) TopSize() int {
	return edgeWidth(b.TopLeft, b.Top, b.TopRight)
}

// RightSize returns the display width needed for the right edge.
func (b Border) RightSize() int {
	return edgeWidth(b.TopRight, b.Right, b.BottomRight)
}

// BottomSize returns the display width needed for the bottom edge.
func (b Border) BottomSize() int {
	return edgeWidth(b.BottomLeft, b.Bottom, b.BottomRight)
}

// LeftSize returns the display width needed for the left edge.
func (b Border) LeftSize() int {
	return edgeWidth(b.TopLeft, b.Left, b.BottomLeft)
}

func edgeWidth(parts ...string) int {
	max := 0
	for _, p := range parts {
		if w := maxRuneWidth(p); w > max {
			max = w
		}
	}
	return max
}

func maxRuneWidth(s string) int {
	max := 0
	for _, r := range s {
		if w := runewidth.RuneWidth(r); w > max {
			max = w
		}
	}
	return max
}

// Normal is the standard single-line box-drawing border.
var Normal = Border{
	Top: "─", Bottom: "─", Left: "│", Right: "│",
	TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	MiddleLeft: "├", MiddleRight: "┤", Middle: "┼", MiddleTop: "┬", MiddleBottom: "┴",
}

// Rounded is Normal with rounded corners.
var Rounded = Border{
	Top: "─", Bottom: "─", Left: "│", Right: "│",
	TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
	MiddleLeft: "├", MiddleRight: "┤", Middle: "┼", MiddleTop: "┬", MiddleBottom: "┴",
}

// Block is a solid border built entirely of full-block glyphs.
var Block = Border{
	Top: "█", Bottom: "█", Left: "█", Right: "█",
	TopLeft: "█", TopRight: "█", BottomLeft: "█", BottomRight: "█",
	MiddleLeft: "█", MiddleRight: "█", Middle: "█", MiddleTop: "█", MiddleBottom: "█",
}

// Thick uses heavy box-drawing glyphs.
var Thick = Border{
	Top: "━", Bottom: "━", Left: "┃", Right: "┃",
	TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛",
	MiddleLeft: "┣", MiddleRight: "┫", Middle: "╋", MiddleTop: "┳", MiddleBottom: "┻",
}

// Double uses double-line box-drawing glyphs.
var Double = Border{
	Top: "═", Bottom: "═", Left: "║", Right: "║",
	TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
	MiddleLeft: "╠", MiddleRight: "╣", Middle: "╬", MiddleTop: "╦", MiddleBottom: "╩",
}

// Hidden reserves border space with blanks instead of drawing glyphs.
var Hidden = Border{
	Top: " ", Bottom: " ", Left: " ", Right: " ",
	TopLeft: " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
	MiddleLeft: " ", MiddleRight: " ", Middle: " ", MiddleTop: " ", MiddleBottom: " ",
}

// Markdown uses ASCII characters compatible with Markdown table syntax.
var Markdown = Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "|", TopRight: "|", BottomLeft: "|", BottomRight: "|",
	MiddleLeft: "|", MiddleRight: "|", Middle: "|", MiddleTop: "|", MiddleBottom: "|",
}

// ASCII uses only basic ASCII characters for maximum compatibility.
var ASCII = Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	MiddleLeft: "+", MiddleRight: "+", Middle: "+", MiddleTop: "+", MiddleBottom: "+",
}

// OuterHalfBlock uses half-block glyphs that sit outside the content frame.
// It has no junction glyphs, since it is not meant to be tiled.
var OuterHalfBlock = Border{
	Top: "▀", Bottom: "▄", Left: "▌", Right: "▐",
	TopLeft: "▛", TopRight: "▜", BottomLeft: "▙", BottomRight: "▟",
}

// InnerHalfBlock uses half-block glyphs that sit inside the content frame.
// It has no junction glyphs, since it is not meant to be tiled.
var InnerHalfBlock = Border{
	Top: "▄", Bottom: "▀", Left: "▐", Right: "▌",
	TopLeft: "▗", TopRight: "▖", BottomLeft: "▝", BottomRight: "▘",
}
