package color

import "github.com/lucasb-eyer/go-colorful"

// Alpha returns hex with its alpha component scaled by factor (0.0-1.0),
// expressed as an "#RRGGBBAA" string. factor is clamped to [0, 1].
func Alpha(hex string, factor float64) string {
	r, g, b, a, ok := parseHexRGBA(hex)
	if !ok {
		return hex
	}
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	na := uint32(float64(a) * factor)
	return hexWithAlpha(uint8(r), uint8(g), uint8(b), uint8(na/257))
}

// Lighten moves hex towards white in CIE L*a*b* space by the given amount
// (0.0-1.0).
func Lighten(hex string, amount float64) string {
	return lightenDarken(hex, amount, true)
}

// Darken moves hex towards black in CIE L*a*b* space by the given amount
// (0.0-1.0).
func Darken(hex string, amount float64) string {
	return lightenDarken(hex, amount, false)
}

func lightenDarken(hex string, amount float64, lighten bool) string {
	c := parseColorful(hex)
	l, a, b := c.Lab()
	if lighten {
		l += amount
	} else {
		l -= amount
	}
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return colorful.Lab(l, a, b).Clamped().Hex()
}

// Complementary returns the hue-rotated (180 degrees) complementary color of
// hex, computed in HSL space.
func Complementary(hex string) string {
	c := parseColorful(hex)
	h, s, l := c.Hsl()
	h += 180
	if h >= 360 {
		h -= 360
	}
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// IsDarkColor reports whether hex is perceptually dark, per spec §4.2.4:
// true when its weighted luminance 0.299*R + 0.587*G + 0.114*B (8-bit
// channels) is below 127.5, half of full scale. Unparsable input counts as
// opaque black, and so as dark.
func IsDarkColor(hex string) bool {
	r, g, b, _, ok := parseHexRGBA(hex)
	if !ok {
		return true
	}
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return lum < 127.5
}

func hexWithAlpha(r, g, b, a uint8) string {
	const hexChars = "0123456789abcdef"
	buf := make([]byte, 9)
	buf[0] = '#'
	put := func(i int, v uint8) {
		buf[i] = hexChars[v>>4]
		buf[i+1] = hexChars[v&0xf]
	}
	put(1, r)
	put(3, g)
	put(5, b)
	put(7, a)
	return string(buf)
}
