// Package color implements the color value model described in spec §3.1
// and the quantization/blending pipeline in spec §4.2: a small sum type of
// color representations (plain index/hex, adaptive, "complete") that all
// resolve to a profile-appropriate SGR token through the TerminalColor
// capability, plus CIE L*a*b* blending and a handful of color utilities.
package color

import (
	"fmt"
	"strconv"

	"github.com/whit3rabbit/lipgloss-go/renderer"
)

// TerminalColor is implemented by every color representation in this
// package. Token resolves the color to a string appropriate for a given
// renderer's color profile (a hex string for TrueColor, a numeric string
// for ANSI/ANSI256, or the empty string for NoColor). RGBA returns the
// color's approximate 8-bit RGB components plus a 16-bit alpha, following
// Go's color.RGBA convention; colors with no precise definition resolve to
// opaque black.
type TerminalColor interface {
	Token(r *renderer.Renderer) string
	RGBA() (r, g, b, a uint32)
}

// TokenDefault resolves c against the process-wide default renderer.
func TokenDefault(c TerminalColor) string {
	return c.Token(renderer.Default())
}

// NoColor is the absence of color: it always resolves to the empty token.
type NoColor struct{}

func (NoColor) Token(*renderer.Renderer) string { return "" }
func (NoColor) RGBA() (r, g, b, a uint32)       { return 0, 0, 0, 0xFFFF }

// Color is a color specified either as a decimal ANSI/ANSI256 index
// ("9", "196") or as a hex string ("#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA").
// It resolves to whatever token its target profile calls for.
type Color string

func (c Color) Token(r *renderer.Renderer) string {
	return resolveToken(string(c), r.ColorProfile())
}

func (c Color) RGBA() (r, g, b, a uint32) {
	if cr, cg, cb, ca, ok := parseHexRGBA(string(c)); ok {
		return cr, cg, cb, ca
	}
	if idx, err := strconv.ParseUint(string(c), 10, 32); err == nil {
		ir, ig, ib := ansi256ToRGB(uint8(idx % 256))
		return uint32(ir), uint32(ig), uint32(ib), 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// ANSIColor is a raw ANSI/ANSI256 index (0-255), bypassing hex parsing
// entirely.
type ANSIColor uint32

func (c ANSIColor) Token(r *renderer.Renderer) string {
	return resolveToken(strconv.FormatUint(uint64(c), 10), r.ColorProfile())
}

func (c ANSIColor) RGBA() (r, g, b, a uint32) {
	ir, ig, ib := ansi256ToRGB(uint8(uint32(c) % 256))
	return uint32(ir), uint32(ig), uint32(ib), 0xFFFF
}

// AdaptiveColor picks between two color specs based on the renderer's
// background polarity.
type AdaptiveColor struct {
	Light string
	Dark  string
}

func (c AdaptiveColor) pick(dark bool) Color {
	if dark {
		return Color(c.Dark)
	}
	return Color(c.Light)
}

func (c AdaptiveColor) Token(r *renderer.Renderer) string {
	return c.pick(r.HasDarkBackground()).Token(r)
}

func (c AdaptiveColor) RGBA() (r, g, b, a uint32) {
	return c.pick(renderer.Default().HasDarkBackground()).RGBA()
}

// CompleteColor specifies one color spec per profile directly, skipping
// quantization. RGBA conversions always use the TrueColor field.
type CompleteColor struct {
	TrueColor string
	ANSI256   string
	ANSI      string
}

func (c CompleteColor) Token(r *renderer.Renderer) string {
	switch r.ColorProfile() {
	case renderer.TrueColor:
		return c.TrueColor
	case renderer.ANSI256:
		return c.ANSI256
	case renderer.ANSI:
		return c.ANSI
	default:
		return ""
	}
}

func (c CompleteColor) RGBA() (r, g, b, a uint32) {
	return Color(c.TrueColor).RGBA()
}

// CompleteAdaptiveColor combines CompleteColor with background-polarity
// selection.
type CompleteAdaptiveColor struct {
	Light CompleteColor
	Dark  CompleteColor
}

func (c CompleteAdaptiveColor) pick(dark bool) CompleteColor {
	if dark {
		return c.Dark
	}
	return c.Light
}

func (c CompleteAdaptiveColor) Token(r *renderer.Renderer) string {
	return c.pick(r.HasDarkBackground()).Token(r)
}

func (c CompleteAdaptiveColor) RGBA() (r, g, b, a uint32) {
	return c.pick(renderer.Default().HasDarkBackground()).RGBA()
}

// LightDark returns a selector function that picks light or dark depending
// on isDark, the way the renderer's background polarity would.
func LightDark(isDark bool) func(light, dark TerminalColor) TerminalColor {
	return func(light, dark TerminalColor) TerminalColor {
		if isDark {
			return dark
		}
		return light
	}
}

// Complete returns a selector function that picks among ansi/ansi256/trueColor
// depending on profile.
func Complete(profile renderer.Profile) func(ansi, ansi256, trueColor TerminalColor) TerminalColor {
	return func(ansi, ansi256, trueColor TerminalColor) TerminalColor {
		switch profile {
		case renderer.TrueColor:
			return trueColor
		case renderer.ANSI256:
			return ansi256
		case renderer.ANSI:
			return ansi
		default:
			return NoColor{}
		}
	}
}

// Hex formats 8-bit RGB components as a "#rrggbb" string.
func Hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
