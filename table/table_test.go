package table

import (
	"strings"
	"testing"

	"github.com/whit3rabbit/lipgloss-go/border"
	"github.com/whit3rabbit/lipgloss-go/internal/measure"
	"github.com/whit3rabbit/lipgloss-go/style"
)

func TestNewDefaults(t *testing.T) {
	tb := New()
	if !tb.borderTop || !tb.borderBottom || !tb.borderLeft || !tb.borderRight || !tb.borderHeader || !tb.borderColumn {
		t.Fatal("expected every border edge enabled by default except row separators")
	}
	if tb.borderRow {
		t.Fatal("expected row separators disabled by default")
	}
	if !tb.wrap {
		t.Fatal("expected wrap enabled by default")
	}
}

func TestHeadersAndRows(t *testing.T) {
	tb := New().Headers("Name", "Age").Row("Alice", "30").Row("Bob", "25")
	if tb.data.Rows() != 2 || tb.data.Columns() != 2 {
		t.Fatalf("unexpected shape: rows=%d cols=%d", tb.data.Rows(), tb.data.Columns())
	}
	if tb.data.At(0, 0) != "Alice" || tb.data.At(1, 1) != "25" {
		t.Fatalf("unexpected data: %+v", tb.data)
	}
}

func TestClearRows(t *testing.T) {
	tb := New().Row("A", "B").Row("C", "D").ClearRows()
	if tb.data.Rows() != 0 {
		t.Fatalf("expected empty after ClearRows, got %d rows", tb.data.Rows())
	}
}

func TestRenderContainsHeaderAndData(t *testing.T) {
	tb := New().Headers("Name", "Age", "City").
		Row("Alice", "30", "New York").
		Row("Bob", "25", "London")
	out := tb.Render()
	if !strings.Contains(out, "Name") || !strings.Contains(out, "Alice") || !strings.Contains(out, "Bob") {
		t.Fatalf("missing expected content: %q", out)
	}
	if !strings.Contains(out, "╭") {
		t.Fatalf("expected rounded top-left corner by default, got %q", out)
	}
}

func TestRenderNoBorders(t *testing.T) {
	tb := New().Headers("Name", "Age").Row("Alice", "30").
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).BorderColumn(false)
	out := tb.Render()
	if strings.Contains(out, "╭") || strings.Contains(out, "│") {
		t.Fatalf("expected no border glyphs, got %q", out)
	}
	if !strings.Contains(out, "Alice") {
		t.Fatalf("expected data present, got %q", out)
	}
}

func TestRenderRespectsWidthConstraint(t *testing.T) {
	tb := New().Headers("Name", "Age", "City").
		Row("Alice Johnson", "28", "New York").
		Row("Bob Smith", "35", "London").
		Width(25)
	out := tb.Render()
	for _, line := range strings.Split(out, "\n") {
		if w := measure.WidthVisible(line); w > 25 {
			t.Fatalf("line %q has width %d > 25", line, w)
		}
	}
}

func TestTableShrinkConvergesToExactWidth(t *testing.T) {
	// Three columns with natural widths [5, 8, 20], table_width = 20,
	// column borders enabled: must converge to widths summing to
	// 20 - 4 = 16 (spec §8 scenario 6).
	tb := New().
		Row(strings.Repeat("a", 5), strings.Repeat("b", 8), strings.Repeat("c", 20)).
		Width(20)
	rows := tb.rowsMatrix()
	r := newResizer(20, nil, rows)
	widths, _ := r.optimizedWidths()
	total := 0
	for _, w := range widths {
		total += w
	}
	borderCost := r.totalHorizontalBorder()
	if total+borderCost != 20 {
		t.Fatalf("expected widths to sum to 20-%d=%d, got total=%d (+border=%d)", borderCost, 20-borderCost, total, total+borderCost)
	}
}

func TestTextWrappingProducesMultipleLines(t *testing.T) {
	tb := New().Headers("Short", "VeryLongContentThatShouldWrap").
		Row("A", "This is a very long piece of content that should wrap across multiple lines when the table width is constrained").
		Width(30).Wrap(true)
	out := tb.Render()
	if n := len(strings.Split(out, "\n")); n <= 3 {
		t.Fatalf("expected wrapping to produce more than 3 lines, got %d", n)
	}
}

func TestTextTruncationProducesEllipsis(t *testing.T) {
	tb := New().Headers("Short", "Long").
		Row("A", "This is a very long piece of content that should be truncated").
		Width(25).Wrap(false)
	out := tb.Render()
	if !strings.Contains(out, "…") {
		t.Fatalf("expected ellipsis for truncated content, got %q", out)
	}
}

func TestHeaderRowStyleFuncBoldsHeaderOnly(t *testing.T) {
	if !HeaderRowStyleFunc(HeaderRow, 0).GetBold() {
		t.Fatal("expected header row bold")
	}
	if HeaderRowStyleFunc(0, 0).GetBold() {
		t.Fatal("expected data rows unstyled")
	}
}

func TestColumnStyleFuncAppliesOverride(t *testing.T) {
	fn := ColumnStyleFunc(map[int]style.Style{1: style.New().Italic(true)})
	if !fn(0, 1).GetItalic() {
		t.Fatal("expected column 1 to inherit italic override")
	}
	if fn(0, 0).GetItalic() {
		t.Fatal("expected column 0 to be unaffected")
	}
}

func TestEmptyTableRendersNothing(t *testing.T) {
	tb := New()
	out := tb.Render()
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected empty table to render nothing, got %q", out)
	}
}

func TestBorderOverrideAppliesGlyphs(t *testing.T) {
	tb := New().Border(border.ASCII).Headers("A").Row("1")
	out := tb.Render()
	if !strings.Contains(out, "+") {
		t.Fatalf("expected ASCII border glyphs, got %q", out)
	}
}
