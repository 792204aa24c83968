package border

import "testing"

func TestNormalBorderFields(t *testing.T) {
	b := Normal
	if b.Top != "─" || b.Left != "│" || b.TopLeft != "┌" || b.Middle != "┼" {
		t.Fatalf("unexpected normal border fields: %+v", b)
	}
}

func TestEdgeSizesSingleCell(t *testing.T) {
	for _, b := range []Border{Normal, Rounded, Block, Thick, Double, ASCII, Markdown, OuterHalfBlock, InnerHalfBlock} {
		if b.TopSize() != 1 || b.RightSize() != 1 || b.BottomSize() != 1 || b.LeftSize() != 1 {
			t.Fatalf("expected all edge sizes 1, got top=%d right=%d bottom=%d left=%d",
				b.TopSize(), b.RightSize(), b.BottomSize(), b.LeftSize())
		}
	}
}

func TestEdgeSizeAccountsForWideRune(t *testing.T) {
	b := Border{Top: "太", Bottom: "-", Left: "|", Right: "|", TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+"}
	if b.TopSize() < 2 {
		t.Fatalf("expected top size >= 2 for wide rune, got %d", b.TopSize())
	}
	if b.RightSize() != 1 || b.BottomSize() != 1 || b.LeftSize() != 1 {
		t.Fatalf("expected other edges width 1")
	}
}

func TestHalfBlockBordersHaveNoJoiners(t *testing.T) {
	for _, b := range []Border{OuterHalfBlock, InnerHalfBlock} {
		if b.MiddleLeft != "" || b.MiddleRight != "" || b.Middle != "" || b.MiddleTop != "" || b.MiddleBottom != "" {
			t.Fatalf("expected empty joiners for half-block border, got %+v", b)
		}
	}
}

func TestEdgeSizeMatchesManualComputation(t *testing.T) {
	manualMax := func(parts ...string) int {
		max := 0
		for _, p := range parts {
			if w := maxRuneWidth(p); w > max {
				max = w
			}
		}
		return max
	}
	for _, b := range []Border{Normal, Thick, Double, ASCII, Markdown, OuterHalfBlock} {
		if got, want := b.TopSize(), manualMax(b.TopLeft, b.Top, b.TopRight); got != want {
			t.Errorf("TopSize: got %d want %d", got, want)
		}
		if got, want := b.RightSize(), manualMax(b.TopRight, b.Right, b.BottomRight); got != want {
			t.Errorf("RightSize: got %d want %d", got, want)
		}
		if got, want := b.BottomSize(), manualMax(b.BottomLeft, b.Bottom, b.BottomRight); got != want {
			t.Errorf("BottomSize: got %d want %d", got, want)
		}
		if got, want := b.LeftSize(), manualMax(b.TopLeft, b.Left, b.BottomLeft); got != want {
			t.Errorf("LeftSize: got %d want %d", got, want)
		}
	}
}
