package color

import (
	"testing"

	"github.com/whit3rabbit/lipgloss-go/renderer"
)

func newRenderer(p renderer.Profile) *renderer.Renderer {
	r := renderer.New()
	r.SetColorProfile(p)
	return r
}

func TestColorTokenANSI256(t *testing.T) {
	r := newRenderer(renderer.ANSI256)
	c := Color("9")
	if got := c.Token(r); got != "9" {
		t.Fatalf("got %q, want %q", got, "9")
	}
}

func TestColorTokenTrueColorHex(t *testing.T) {
	r := newRenderer(renderer.TrueColor)
	c := Color("#ff0000")
	if got := c.Token(r); got != "#ff0000" {
		t.Fatalf("got %q, want %q", got, "#ff0000")
	}
}

func TestColorTokenNoColor(t *testing.T) {
	r := newRenderer(renderer.NoColor)
	c := Color("#ff0000")
	if got := c.Token(r); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestColorTokenTrueColorFromIndex(t *testing.T) {
	r := newRenderer(renderer.TrueColor)
	c := Color("9")
	if got := c.Token(r); got != "#ff0000" {
		t.Fatalf("got %q, want #ff0000", got)
	}
}

func TestColorTokenANSI256FromHex(t *testing.T) {
	r := newRenderer(renderer.ANSI256)
	c := Color("#808080")
	if got := c.Token(r); got != "102" {
		t.Fatalf("got %q, want 102", got)
	}
}

func TestSGRForegroundTrueColor(t *testing.T) {
	if got := SGRForeground("#ff0000", renderer.TrueColor); got != "38;2;255;0;0" {
		t.Fatalf("got %q", got)
	}
}

func TestSGRForegroundANSI256(t *testing.T) {
	if got := SGRForeground("9", renderer.ANSI256); got != "38;5;9" {
		t.Fatalf("got %q", got)
	}
}

func TestSGRForegroundANSI(t *testing.T) {
	if got := SGRForeground("9", renderer.ANSI); got != "91" {
		t.Fatalf("got %q", got)
	}
	if got := SGRBackground("1", renderer.ANSI); got != "41" {
		t.Fatalf("got %q", got)
	}
}

func TestAdaptiveColor(t *testing.T) {
	r := newRenderer(renderer.TrueColor)
	r.SetHasDarkBackground(true)
	c := AdaptiveColor{Light: "#000000", Dark: "#ffffff"}
	if got := c.Token(r); got != "#ffffff" {
		t.Fatalf("got %q, want #ffffff", got)
	}
	r.SetHasDarkBackground(false)
	if got := c.Token(r); got != "#000000" {
		t.Fatalf("got %q, want #000000", got)
	}
}

func TestCompleteColor(t *testing.T) {
	c := CompleteColor{TrueColor: "#112233", ANSI256: "17", ANSI: "4"}
	if got := c.Token(newRenderer(renderer.TrueColor)); got != "#112233" {
		t.Fatalf("got %q", got)
	}
	if got := c.Token(newRenderer(renderer.ANSI256)); got != "17" {
		t.Fatalf("got %q", got)
	}
	if got := c.Token(newRenderer(renderer.ANSI)); got != "4" {
		t.Fatalf("got %q", got)
	}
}

func TestRGBToANSI256Table(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint8
	}{
		{64, 64, 64, 238},
		{95, 95, 95, 59},
		{135, 135, 135, 102},
		{255, 0, 0, 196},
		{0, 255, 0, 46},
		{0, 0, 255, 21},
		{128, 128, 128, 102},
		{192, 192, 192, 251},
	}
	for _, c := range cases {
		if got := rgbToANSI256(c.r, c.g, c.b); got != c.want {
			t.Errorf("rgbToANSI256(%d,%d,%d) = %d, want %d", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestParseHexRGBA(t *testing.T) {
	cases := []struct {
		in               string
		r, g, b          uint32
		a                uint32
		ok               bool
	}{
		{"#fff", 255, 255, 255, 0xFFFF, true},
		{"#000", 0, 0, 0, 0xFFFF, true},
		{"#ff0000", 255, 0, 0, 0xFFFF, true},
		{"#ff000080", 255, 0, 0, 0x8080, true},
		{"bogus", 0, 0, 0, 0, false},
	}
	for _, c := range cases {
		r, g, b, a, ok := parseHexRGBA(c.in)
		if ok != c.ok {
			t.Fatalf("%s: ok=%v, want %v", c.in, ok, c.ok)
		}
		if !ok {
			continue
		}
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("%s: got (%d,%d,%d), want (%d,%d,%d)", c.in, r, g, b, c.r, c.g, c.b)
		}
		if c.in == "#ff000080" && a != c.a {
			t.Errorf("%s: alpha got %d, want %d", c.in, a, c.a)
		}
	}
}
