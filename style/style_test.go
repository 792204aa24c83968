package style

import (
	"testing"

	"github.com/whit3rabbit/lipgloss-go/border"
	"github.com/whit3rabbit/lipgloss-go/color"
	"github.com/whit3rabbit/lipgloss-go/renderer"
)

func newTestRenderer(p renderer.Profile) *renderer.Renderer {
	r := renderer.New()
	r.SetColorProfile(p)
	return r
}

func TestRenderPlainText(t *testing.T) {
	s := NewWithRenderer(newTestRenderer(renderer.NoColor))
	if got := s.Render("Hello World!"); got != "Hello World!" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderANSI256Foreground(t *testing.T) {
	r := newTestRenderer(renderer.ANSI256)
	s := NewWithRenderer(r).Foreground(color.Color("9"))
	want := "\x1b[38;5;9mX\x1b[0m"
	if got := s.Render("X"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderTrueColorForeground(t *testing.T) {
	r := newTestRenderer(renderer.TrueColor)
	s := NewWithRenderer(r).Foreground(color.Color("#5A56E0"))
	want := "\x1b[38;2;90;86;224mhello\x1b[0m"
	if got := s.Render("hello"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderNoColor(t *testing.T) {
	r := newTestRenderer(renderer.NoColor)
	s := NewWithRenderer(r).Foreground(color.Color("#5A56E0"))
	if got := s.Render("hello"); got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderBorderWithPadding(t *testing.T) {
	r := newTestRenderer(renderer.NoColor)
	s := NewWithRenderer(r).Border(border.Normal).Padding(0, 1, 0, 1)
	want := "┌────┐\n│ Hi │\n└────┘"
	if got := s.Render("Hi"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPaddingShorthand(t *testing.T) {
	a := New().Padding(2)
	b := New().Padding(2, 2)
	c := New().Padding(2, 2, 2, 2)
	if a.GetPaddingTop() != b.GetPaddingTop() || b.GetPaddingTop() != c.GetPaddingTop() {
		t.Fatal("shorthand forms should agree")
	}
	if a.GetPaddingLeft() != 2 || a.GetPaddingRight() != 2 {
		t.Fatalf("expected uniform padding, got %+v", a)
	}
}

func TestPaddingShorthandInvalidCountNoop(t *testing.T) {
	s := New().Padding(1, 2, 3, 4, 5)
	if s.GetPaddingTop() != 0 {
		t.Fatalf("5-value shorthand should be a no-op, got top=%d", s.GetPaddingTop())
	}
}

func TestUnsetRevertsToSentinel(t *testing.T) {
	s := New().Bold(true).UnsetBold()
	if s.GetBold() {
		t.Fatal("expected bold unset")
	}
	s2 := New().Width(10).UnsetWidth()
	if s2.GetWidth() != 0 {
		t.Fatalf("expected width 0 after unset, got %d", s2.GetWidth())
	}
}

func TestInheritSkipsPaddingMarginsAndValue(t *testing.T) {
	parent := New().Bold(true).PaddingLeft(4).MarginLeft(4).SetString("parent")
	child := New().Inherit(parent)

	if !child.GetBold() {
		t.Fatal("expected bold to be inherited")
	}
	if child.GetPaddingLeft() != 0 {
		t.Fatalf("padding must never be inherited, got %d", child.GetPaddingLeft())
	}
	if child.GetMarginLeft() != 0 {
		t.Fatalf("margin must never be inherited, got %d", child.GetMarginLeft())
	}
	if child.GetString() != "" {
		t.Fatalf("stored literal must never be inherited, got %q", child.GetString())
	}
}

func TestInheritIsIdempotent(t *testing.T) {
	a := New().Italic(true)
	b := New().Bold(true).Foreground(color.Color("1"))
	once := a.Inherit(b)
	twice := once.Inherit(b)
	if !once.Equal(twice) {
		t.Fatal("inherit should be idempotent over unset-only fields")
	}
}

func TestInheritBackgroundSeedsMarginBackground(t *testing.T) {
	parent := New().Background(color.Color("5"))
	child := New().Inherit(parent)
	if child.GetMarginBackground().(color.Color) != color.Color("5") {
		t.Fatalf("expected margin background to pick up parent's background, got %#v", child.GetMarginBackground())
	}
}

func TestInheritDoesNotOverrideExplicitMarginBackground(t *testing.T) {
	parent := New().Background(color.Color("5"))
	child := New().MarginBackground(color.Color("9")).Inherit(parent)
	if child.GetMarginBackground().(color.Color) != color.Color("9") {
		t.Fatalf("explicit margin background must win, got %#v", child.GetMarginBackground())
	}
}

func TestTabWidthZeroDeletesTabs(t *testing.T) {
	s := New().TabWidth(0)
	if got := s.Render("a\tb"); got != "ab" {
		t.Fatalf("got %q", got)
	}
}

func TestTabWidthDefaultExpandsToFour(t *testing.T) {
	s := New()
	if got := s.Render("a\tb"); got != "a    b" {
		t.Fatalf("got %q", got)
	}
}

func TestTabWidthNegativePreserves(t *testing.T) {
	s := New().TabWidth(-1)
	if got := s.Render("a\tb"); got != "a\tb" {
		t.Fatalf("got %q", got)
	}
}

func TestMaxHeightTruncates(t *testing.T) {
	s := New().MaxHeight(2)
	got := s.Render("a\nb\nc\nd")
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestInlineStripsNewlines(t *testing.T) {
	s := New().Inline(true)
	if got := s.Render("a\nb\nc"); got != "abc" {
		t.Fatalf("got %q", got)
	}
}

func TestWordWrap(t *testing.T) {
	s := New().Width(5)
	got := s.Render("hello world")
	want := "hello\nworld"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestHorizontalAlignmentCenter(t *testing.T) {
	s := New().Width(11).AlignHorizontal(PositionCenter)
	got := s.Render("hi")
	want := "     hi    "
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestHeightAlignmentBottom(t *testing.T) {
	s := New().Height(3).AlignVertical(PositionBottom)
	got := s.Render("x")
	want := " \n \nx"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNegativeDimensionsClampToZero(t *testing.T) {
	s := New().Width(-5).Height(-3).PaddingTop(-2)
	if s.GetWidth() != 0 || s.GetHeight() != 0 || s.GetPaddingTop() != 0 {
		t.Fatalf("expected negative dimensions clamped to 0, got %+v", s)
	}
}

func TestJoinHorizontalPadsEachBlockToOwnWidth(t *testing.T) {
	out := JoinHorizontal(PositionTop, "aa\nb", "x")
	for _, line := range splitLines(out) {
		if WidthVisibleForTest(line) == 0 {
			t.Fatalf("unexpected empty line in %q", out)
		}
	}
}

func TestJoinEmptyAndSingle(t *testing.T) {
	if JoinHorizontal(PositionTop) != "" {
		t.Fatal("empty join should be empty string")
	}
	if JoinHorizontal(PositionTop, "only") != "only" {
		t.Fatal("single-element join should be identity")
	}
}

func splitLines(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			out = append(out, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	out = append(out, cur)
	return out
}

// WidthVisibleForTest avoids importing internal/measure twice in the test
// file; it mirrors measure.Width for plain ASCII test fixtures.
func WidthVisibleForTest(s string) int { return len([]rune(s)) }

func TestStyleRangesAppliesDistinctStyles(t *testing.T) {
	r := newTestRenderer(renderer.ANSI256)
	red := NewWithRenderer(r).Foreground(color.Color("1"))
	out := Ranges("hello", NewRange(0, 2, red))
	want := red.Render("he") + "llo"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}
