package color

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/whit3rabbit/lipgloss-go/renderer"
)

// cubeLevels mirrors termenv's i2cv table: the 6 possible channel values in
// the xterm 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// ansi16RGB is the standard 16-color ANSI palette, used both for rendering
// ANSI256 index 0-15 and as the candidate set for nearest-ANSI16 matching.
var ansi16RGB = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// v2ci maps a single 8-bit channel to its 6x6x6 cube axis index, per
// termenv's v2ci function.
func v2ci(v uint8) int {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	default:
		q := (int(v) - 35) / 40
		if q < 0 {
			q = 0
		}
		if q > 5 {
			q = 5
		}
		return q
	}
}

func dist2(r1, g1, b1, r2, g2, b2 int) int {
	dr, dg, db := r1-r2, g1-g2, b1-b2
	return dr*dr + dg*dg + db*db
}

// rgbToANSI256 maps an 8-bit RGB triple to its nearest xterm-256 palette
// index, per spec §4.2.2's xterm-256 nearest-index algorithm (grounded in
// termenv's TrueColor -> ANSI256 conversion).
func rgbToANSI256(r, g, b uint8) uint8 {
	qr, qg, qb := v2ci(r), v2ci(g), v2ci(b)
	ci := 36*qr + 6*qg + qb

	cr, cg, cb := int(cubeLevels[qr]), int(cubeLevels[qg]), int(cubeLevels[qb])

	average := (int(r) + int(g) + int(b)) / 3
	grayIdx := roundClampInt(float64(average-3)/10.0, 0, 23)
	if average > 238 {
		grayIdx = 23
	}
	gv := 8 + 10*grayIdx

	cubeDist := dist2(int(r), int(g), int(b), cr, cg, cb)
	grayDist := dist2(int(r), int(g), int(b), gv, gv, gv)

	if cubeDist <= grayDist {
		return uint8(16 + ci)
	}
	return uint8(232 + grayIdx)
}

func roundClampInt(v float64, lo, hi int) int {
	r := int(v + 0.5)
	if v < 0 {
		r = -int(-v + 0.5)
	}
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}

// rgbToANSI16 maps an 8-bit RGB triple to the nearest of the 16 basic ANSI
// colors using CIE L*a*b* Euclidean distance, per spec §4.2.2.
func rgbToANSI16(r, g, b uint8) uint8 {
	src := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	srcL, srcA, srcB := src.Lab()

	best := 0
	bestDist := -1.0
	for i, c := range ansi16RGB {
		cand := colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
		cl, ca, cb := cand.Lab()
		dl, da, db := srcL-cl, srcA-ca, srcB-cb
		d := dl*dl + da*da + db*db
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

// ansi256ToRGB expands an ANSI256 index back to 8-bit RGB: the 16 basic
// colors, the 6x6x6 cube, or the 24-step grayscale ramp.
func ansi256ToRGB(idx uint8) (r, g, b uint8) {
	switch {
	case idx <= 15:
		c := ansi16RGB[idx]
		return c[0], c[1], c[2]
	case idx <= 231:
		i := idx - 16
		ri, gi, bi := i/36, (i%36)/6, i%6
		return cubeLevels[ri], cubeLevels[gi], cubeLevels[bi]
	default:
		v := uint8(8 + 10*(idx-232))
		return v, v, v
	}
}

// parseHexRGBA parses a "#RGB", "#RGBA", "#RRGGBB", or "#RRGGBBAA" string
// into 8-bit RGB plus a 16-bit alpha (0xFFFF when fully opaque or absent).
// Short forms expand by digit-doubling. Returns ok=false on any parse
// failure.
func parseHexRGBA(s string) (r, g, b, a uint32, ok bool) {
	if len(s) == 0 || s[0] != '#' {
		return 0, 0, 0, 0, false
	}
	hex := s[1:]
	expand := func(c byte) (byte, byte) { return c, c }

	hexByte := func(hi, lo byte) (uint8, bool) {
		h, ok1 := hexDigit(hi)
		l, ok2 := hexDigit(lo)
		if !ok1 || !ok2 {
			return 0, false
		}
		return h<<4 | l, true
	}

	switch len(hex) {
	case 3, 4:
		rh, rl := expand(hex[0])
		gh, gl := expand(hex[1])
		bh, bl := expand(hex[2])
		rr, ok1 := hexByte(rh, rl)
		gg, ok2 := hexByte(gh, gl)
		bb, ok3 := hexByte(bh, bl)
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, 0, false
		}
		aa := uint32(0xFFFF)
		if len(hex) == 4 {
			ah, al := expand(hex[3])
			av, ok4 := hexByte(ah, al)
			if !ok4 {
				return 0, 0, 0, 0, false
			}
			aa = uint32(av) * 257
		}
		return uint32(rr), uint32(gg), uint32(bb), aa, true
	case 6, 8:
		rr, ok1 := hexByte(hex[0], hex[1])
		gg, ok2 := hexByte(hex[2], hex[3])
		bb, ok3 := hexByte(hex[4], hex[5])
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, 0, false
		}
		aa := uint32(0xFFFF)
		if len(hex) == 8 {
			av, ok4 := hexByte(hex[6], hex[7])
			if !ok4 {
				return 0, 0, 0, 0, false
			}
			aa = uint32(av) * 257
		}
		return uint32(rr), uint32(gg), uint32(bb), aa, true
	default:
		return 0, 0, 0, 0, false
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// resolveToken converts a raw color token (a hex string or a decimal
// index) into the string appropriate for profile, per spec §4.2.2.
func resolveToken(s string, profile renderer.Profile) string {
	switch profile {
	case renderer.NoColor:
		return ""
	case renderer.TrueColor:
		if idx, err := strconv.ParseUint(s, 10, 32); err == nil {
			r, g, b := ansi256ToRGB(uint8(idx % 256))
			return Hex(r, g, b)
		}
		return s
	case renderer.ANSI256:
		if idx, err := strconv.ParseUint(s, 10, 32); err == nil {
			return strconv.FormatUint(idx%256, 10)
		}
		if r, g, b, _, ok := parseHexRGBA(s); ok {
			return strconv.Itoa(int(rgbToANSI256(uint8(r), uint8(g), uint8(b))))
		}
		return s
	case renderer.ANSI:
		if idx, err := strconv.ParseUint(s, 10, 32); err == nil {
			if isDirectANSICode(idx) || idx <= 15 {
				return strconv.FormatUint(idx, 10)
			}
			return strconv.FormatUint(idx%16, 10)
		}
		if r, g, b, _, ok := parseHexRGBA(s); ok {
			return strconv.Itoa(int(rgbToANSI16(uint8(r), uint8(g), uint8(b))))
		}
		return s
	default:
		return ""
	}
}

func isDirectANSICode(idx uint64) bool {
	return (idx >= 30 && idx <= 37) || (idx >= 90 && idx <= 97) ||
		(idx >= 40 && idx <= 47) || (idx >= 100 && idx <= 107)
}

// SGRForeground returns the SGR parameter(s) (without the leading/trailing
// "ESC[" / "m") for setting the foreground to token under profile, per
// spec §4.7's SGR encoding rules. Returns "" if the token is empty/invalid.
func SGRForeground(token string, profile renderer.Profile) string {
	return sgrFor(token, profile, true)
}

// SGRBackground is the background analogue of SGRForeground.
func SGRBackground(token string, profile renderer.Profile) string {
	return sgrFor(token, profile, false)
}

func sgrFor(token string, profile renderer.Profile, fg bool) string {
	if token == "" {
		return ""
	}
	switch profile {
	case renderer.TrueColor:
		if r, g, b, _, ok := parseHexRGBA(token); ok {
			if fg {
				return "38;2;" + joinUints(r, g, b)
			}
			return "48;2;" + joinUints(r, g, b)
		}
		return ""
	case renderer.ANSI256:
		idx, err := strconv.ParseUint(token, 10, 16)
		if err != nil {
			return ""
		}
		if fg {
			return "38;5;" + strconv.FormatUint(idx, 10)
		}
		return "48;5;" + strconv.FormatUint(idx, 10)
	case renderer.ANSI:
		idx, err := strconv.ParseUint(token, 10, 16)
		if err != nil {
			return ""
		}
		return ansiCode(uint8(idx), fg)
	default:
		return ""
	}
}

func joinUints(a, b, c uint32) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(a), 10))
	sb.WriteByte(';')
	sb.WriteString(strconv.FormatUint(uint64(b), 10))
	sb.WriteByte(';')
	sb.WriteString(strconv.FormatUint(uint64(c), 10))
	return sb.String()
}

// ansiCode maps a 0-15 (or direct 30-37/90-97/40-47/100-107) index to its
// SGR parameter for foreground or background.
func ansiCode(idx uint8, fg bool) string {
	v := int(idx)
	if isDirectANSICode(uint64(v)) {
		return strconv.Itoa(v)
	}
	switch {
	case v <= 7:
		if fg {
			return strconv.Itoa(30 + v)
		}
		return strconv.Itoa(40 + v)
	case v <= 15:
		if fg {
			return strconv.Itoa(90 + v - 8)
		}
		return strconv.Itoa(100 + v - 8)
	default:
		if fg {
			return "39"
		}
		return "49"
	}
}
