package tree

import (
	"strings"
	"testing"

	"github.com/whit3rabbit/lipgloss-go/style"
)

func TestLeafBasic(t *testing.T) {
	l := NewLeaf("hello", false)
	if l.Value() != "hello" || l.Hidden() {
		t.Fatalf("unexpected leaf: %+v", l)
	}
	if l.Children().Length() != 0 {
		t.Fatal("expected leaf to have no children")
	}
}

func TestSimpleTreeRender(t *testing.T) {
	tr := New().Root("Root").Child("A", "B")
	got := tr.String()
	want := "Root\n├── A\n└── B"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNestedTreeIndentation(t *testing.T) {
	inner := New().Root("B").Child("C", "D")
	tr := New().Root("Root").Child("A", inner)
	got := tr.String()
	want := "Root\n├── A\n└── B\n   ├── C\n   └── D"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRootlessTreeHasNoHeadingLine(t *testing.T) {
	tr := New().Child("A", "B")
	got := tr.String()
	if strings.HasPrefix(got, "Root") {
		t.Fatalf("did not expect a root heading line, got %q", got)
	}
	want := "├── A\n└── B"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestHiddenChildSkipped(t *testing.T) {
	tr := New().Root("Root").Child("A", "B", "C")
	tr2, ok := tr.children[1].(Leaf)
	if !ok {
		t.Fatal("expected second child to be a Leaf")
	}
	tr.children[1] = NewLeaf(tr2.Value(), true)
	got := tr.String()
	if strings.Contains(got, "B") {
		t.Fatalf("expected hidden child to be excluded, got %q", got)
	}
	want := "Root\n├── A\n└── C"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestListConstructor(t *testing.T) {
	l := List("one", "two", "three")
	got := l.String()
	want := "├── one\n├── two\n└── three"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCustomEnumeratorUsedVerbatim(t *testing.T) {
	star := func(children Children, index int) string { return "*" }
	tr := New().Root("Root").Enumerator(star).Child("A", "B")
	got := tr.String()
	if !strings.Contains(got, "* A") || !strings.Contains(got, "* B") {
		t.Fatalf("expected custom enumerator glyph verbatim, got %q", got)
	}
}

func TestOffsetLimitsVisibleChildren(t *testing.T) {
	tr := New().Root("Root").Child("A", "B", "C", "D").Offset(1, 1)
	got := tr.String()
	if strings.Contains(got, "A") || strings.Contains(got, "D") {
		t.Fatalf("expected A and D excluded by offset, got %q", got)
	}
	if !strings.Contains(got, "B") || !strings.Contains(got, "C") {
		t.Fatalf("expected B and C present, got %q", got)
	}
}

func TestItemStyleOverrideAppliedToAllItems(t *testing.T) {
	bold := style.New().Bold(true)
	tr := New().Root("Root").ItemStyle(bold).Child("A", "B")
	got := tr.String()
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected bold SGR codes in output, got %q", got)
	}
}

func TestChildAcceptsNestedTreeNode(t *testing.T) {
	sub := New().Root("").Child("x", "y")
	tr := New().Child(sub)
	if tr.Children().Length() != 1 {
		t.Fatalf("expected one child, got %d", tr.Children().Length())
	}
}

func TestEmptyValueContainerDoesNotEmitLine(t *testing.T) {
	container := New().Root("").Child("x", "y")
	tr := New().Root("Root").Child(container)
	got := tr.String()
	if !strings.Contains(got, "x") || !strings.Contains(got, "y") {
		t.Fatalf("expected container's children to render, got %q", got)
	}
	if strings.Count(got, "\n") != 2 {
		t.Fatalf("expected container itself to contribute no heading line, got %q", got)
	}
}
