package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Blend1D produces a gradient of steps hex colors interpolated through
// stops in CIE L*a*b* space, per spec §4.2.3 / §3.1. Fewer than 2 steps is
// treated as 2. Empty stops yield nothing; a single stop repeats. The
// first and last produced colors are bit-exact copies of the first and
// last stops.
func Blend1D(steps int, stops []string) []string {
	if steps < 2 {
		steps = 2
	}
	var nonEmpty []string
	for _, s := range stops {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) == 0 {
		return nil
	}
	if len(nonEmpty) == 1 {
		out := make([]string, steps)
		for i := range out {
			out[i] = nonEmpty[0]
		}
		return out
	}

	segments := len(nonEmpty) - 1
	base := steps / segments
	remainder := steps % segments

	out := make([]string, 0, steps)
	for seg := 0; seg < segments; seg++ {
		size := base
		if seg < remainder {
			size++
		}
		a := parseColorful(nonEmpty[seg])
		b := parseColorful(nonEmpty[seg+1])
		for k := 0; k < size; k++ {
			var factor float64
			if size > 1 {
				factor = float64(k) / float64(size-1)
			}
			if factor == 0 {
				out = append(out, nonEmpty[seg])
				continue
			}
			if factor == 1 {
				out = append(out, nonEmpty[seg+1])
				continue
			}
			blended := a.BlendLab(b, factor).Clamped()
			out = append(out, blended.Hex())
		}
	}
	return out
}

// Blend2D builds a 2-D gradient of w*h hex colors (row-major) by sampling a
// 1-D gradient of length max(w,h) along a line at angleDeg degrees, per
// spec §4.2.3.
func Blend2D(w, h int, angleDeg float64, stops []string) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	length := w
	if h > length {
		length = h
	}
	palette := Blend1D(length, stops)
	if len(palette) == 0 {
		return nil
	}

	for angleDeg < 0 {
		angleDeg += 360
	}
	for angleDeg >= 360 {
		angleDeg -= 360
	}
	theta := angleDeg * (math.Pi / 180.0)
	cos, sin := math.Cos(theta), math.Sin(theta)

	cx := (float64(w) - 1) / 2
	cy := (float64(h) - 1) / 2
	diag := math.Sqrt(float64(w)*float64(w) + float64(h)*float64(h))

	out := make([]string, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rx := (float64(x)-cx)*cos - (float64(y)-cy)*sin
			norm := (rx + diag/2) / diag
			if norm < 0 {
				norm = 0
			}
			if norm > 1 {
				norm = 1
			}
			idx := int(norm * float64(len(palette)-1))
			out = append(out, palette[idx])
		}
	}
	return out
}

func parseColorful(s string) colorful.Color {
	r, g, b, _, ok := parseHexRGBA(s)
	if !ok {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
