package whitespace

import (
	"strings"
	"testing"

	"github.com/whit3rabbit/lipgloss-go/color"
	"github.com/whit3rabbit/lipgloss-go/renderer"
)

func TestBasicRender(t *testing.T) {
	w := New(renderer.New())
	if got := w.Render(5); got != "     " {
		t.Fatalf("got %q", got)
	}
}

func TestCustomChars(t *testing.T) {
	w := New(renderer.New(), WithChars("."))
	if got := w.Render(3); got != "..." {
		t.Fatalf("got %q", got)
	}
}

func TestCyclesChars(t *testing.T) {
	w := New(renderer.New(), WithChars("ab"))
	if got := w.Render(5); got != "ababa" {
		t.Fatalf("got %q", got)
	}
}

func TestForegroundColor(t *testing.T) {
	r := renderer.New()
	r.SetColorProfile(renderer.ANSI256)
	w := New(r, WithForeground(color.Color("9")))
	got := w.Render(3)
	if !strings.HasPrefix(got, "\x1b[38;5;9m") {
		t.Fatalf("missing fg prefix: %q", got)
	}
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Fatalf("missing reset suffix: %q", got)
	}
}

func TestCombinedForegroundBackground(t *testing.T) {
	r := renderer.New()
	r.SetColorProfile(renderer.ANSI256)
	w := New(r, WithForeground(color.Color("1")), WithBackground(color.Color("2")))
	got := w.Render(1)
	const prefix = "\x1b[38;5;1;48;5;2m"
	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("got %q, want prefix %q", got, prefix)
	}
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Fatalf("missing reset: %q", got)
	}
}

func TestNoColorProducesNoSGR(t *testing.T) {
	r := renderer.New()
	r.SetColorProfile(renderer.NoColor)
	w := New(r, WithForeground(color.Color("9")))
	if got := w.Render(3); got != "   " {
		t.Fatalf("expected plain spaces under NoColor, got %q", got)
	}
}
