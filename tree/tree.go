// Package tree renders hierarchical Leaf/Tree node structures into
// prefix-glyph-decorated multi-line strings (spec §3.4, §4.10).
package tree

import "github.com/whit3rabbit/lipgloss-go/style"

// Node is the capability set every tree node satisfies: a string value
// (empty for pure containers), an ordered Children view, and a hidden
// flag. Per-node rendering overrides (enumerator, indenter, item/
// enumerator style or style function) are optional and discovered via the
// overrider interface below; Leaf never implements them, Tree always does.
type Node interface {
	Value() string
	Children() Children
	Hidden() bool
}

// Children is an ordered, possibly-filtered view over child nodes.
type Children interface {
	At(i int) Node
	Length() int
}

// Enumerator computes the prefix glyph shown before a child's item at the
// given index within children. A return value of one of the built-in
// branch glyphs ("├──", "└──", "╰──") is treated specially: the renderer
// substitutes the correct mid/last variant by calling the enumerator
// against a synthetic two-child collection (spec §4.10). Any other return
// value is used verbatim as a custom prefix.
type Enumerator func(children Children, index int) string

// Indenter computes the string used to indent a node's children one level
// deeper, keyed on the same (children, index) pair as Enumerator.
type Indenter func(children Children, index int) string

// StyleFunc computes the Style applied to an enumerator glyph or item
// value at the given index within children.
type StyleFunc func(children Children, index int) style.Style

// DefaultEnumerator draws a classic box-drawing tree: "├──" for every
// child but the last, "└──" for the last. The space after the glyph comes
// from the default enumerator style's right padding.
func DefaultEnumerator(children Children, index int) string {
	if index == children.Length()-1 {
		return "└──"
	}
	return "├──"
}

// DefaultIndenter extends the vertical line ("│  ") under every child but
// the last, and blank space ("   ") under the last.
func DefaultIndenter(children Children, index int) string {
	if index == children.Length()-1 {
		return "   "
	}
	return "│  "
}

func defaultEnumeratorStyleFunc(_ Children, _ int) style.Style {
	return style.New().PaddingRight(1)
}

func defaultItemStyleFunc(_ Children, _ int) style.Style {
	return style.New()
}

// nodeChildren is a plain in-memory Children backed by a node slice.
type nodeChildren struct {
	nodes []Node
}

func (c *nodeChildren) At(i int) Node {
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return c.nodes[i]
}

func (c *nodeChildren) Length() int { return len(c.nodes) }

// NewChildren wraps a fixed node slice as a Children.
func NewChildren(nodes ...Node) Children {
	return &nodeChildren{nodes: append([]Node(nil), nodes...)}
}

// dummyChildren synthesizes a collection of a fixed length with no actual
// nodes, used to probe an Enumerator/Indenter for its "mid" (index 0 of 2)
// or "last" (index 1 of 2) branch glyph in isolation (spec §4.10).
type dummyChildren struct{ n int }

func (d dummyChildren) At(i int) Node { return nil }
func (d dummyChildren) Length() int   { return d.n }

// Leaf is a node with no children.
type Leaf struct {
	value  string
	hidden bool
}

// NewLeaf constructs a Leaf.
func NewLeaf(value string, hidden bool) Leaf {
	return Leaf{value: value, hidden: hidden}
}

func (l Leaf) Value() string      { return l.value }
func (l Leaf) Children() Children { return NewChildren() }
func (l Leaf) Hidden() bool       { return l.hidden }

// overrider is implemented by nodes that carry per-node rendering
// overrides; Tree implements it, Leaf does not.
type overrider interface {
	OverrideEnumerator() (Enumerator, bool)
	OverrideIndenter() (Indenter, bool)
	OverrideEnumeratorStyle() (style.Style, bool)
	OverrideItemStyle() (style.Style, bool)
	OverrideEnumeratorStyleFunc() (StyleFunc, bool)
	OverrideItemStyleFunc() (StyleFunc, bool)
}

// Tree is a Node that can carry children plus per-instance rendering
// overrides. Builder methods return new values.
type Tree struct {
	value            string
	hidden           bool
	offStart, offEnd int
	children         []Node

	enumerator Enumerator
	indenter   Indenter

	rootStyle           style.Style
	itemStyle           *style.Style
	enumeratorStyle     *style.Style
	itemStyleFunc       StyleFunc
	enumeratorStyleFunc StyleFunc
}

// New returns an empty Tree.
func New() Tree {
	return Tree{rootStyle: style.New()}
}

// Root sets the tree's own displayed value.
func (t Tree) Root(v string) Tree { t.value = v; return t }

// Hide marks the tree hidden (it and all its children render nothing).
func (t Tree) Hide(hidden bool) Tree { t.hidden = hidden; return t }

// Offset restricts the visible children to [start, length-end).
func (t Tree) Offset(start, end int) Tree {
	if start > end {
		start, end = end, start
	}
	t.offStart, t.offEnd = start, end
	return t
}

// Child appends one or more children. Strings become Leaf values; other
// Node values (including Tree) are added as-is.
func (t Tree) Child(children ...interface{}) Tree {
	for _, c := range children {
		switch v := c.(type) {
		case string:
			t.children = append(t.children, NewLeaf(v, false))
		case Node:
			t.children = append(t.children, v)
		}
	}
	return t
}

func (t Tree) Enumerator(e Enumerator) Tree { t.enumerator = e; return t }
func (t Tree) Indenter(i Indenter) Tree     { t.indenter = i; return t }

func (t Tree) RootStyle(s style.Style) Tree { t.rootStyle = s; return t }

func (t Tree) ItemStyle(s style.Style) Tree       { t.itemStyle = &s; return t }
func (t Tree) EnumeratorStyle(s style.Style) Tree { t.enumeratorStyle = &s; return t }

func (t Tree) ItemStyleFunc(f StyleFunc) Tree       { t.itemStyleFunc = f; return t }
func (t Tree) EnumeratorStyleFunc(f StyleFunc) Tree { t.enumeratorStyleFunc = f; return t }

func (t Tree) Value() string { return t.value }

func (t Tree) Hidden() bool { return t.hidden }

// Children returns the visible (offset-applied, hidden-filtered) slice of
// direct children.
func (t Tree) Children() Children {
	start := t.offStart
	end := len(t.children)
	if t.offEnd > 0 {
		end -= t.offEnd
	}
	if end > len(t.children) {
		end = len(t.children)
	}
	if start > end {
		start = end
	}
	var out []Node
	for i := start; i < end; i++ {
		if t.children[i].Hidden() {
			continue
		}
		out = append(out, t.children[i])
	}
	return NewChildren(out...)
}

func (t Tree) OverrideEnumerator() (Enumerator, bool) { return t.enumerator, t.enumerator != nil }
func (t Tree) OverrideIndenter() (Indenter, bool)     { return t.indenter, t.indenter != nil }
func (t Tree) OverrideEnumeratorStyle() (style.Style, bool) {
	if t.enumeratorStyle == nil {
		return style.Style{}, false
	}
	return *t.enumeratorStyle, true
}
func (t Tree) OverrideItemStyle() (style.Style, bool) {
	if t.itemStyle == nil {
		return style.Style{}, false
	}
	return *t.itemStyle, true
}
func (t Tree) OverrideEnumeratorStyleFunc() (StyleFunc, bool) {
	return t.enumeratorStyleFunc, t.enumeratorStyleFunc != nil
}
func (t Tree) OverrideItemStyleFunc() (StyleFunc, bool) {
	return t.itemStyleFunc, t.itemStyleFunc != nil
}

// String renders the tree using a fresh Renderer seeded from its own
// overrides, matching Tree's fmt::Display impl in the reference source.
func (t Tree) String() string {
	r := NewRenderer()
	if e, ok := t.OverrideEnumerator(); ok {
		r = r.Enumerator(e)
	}
	if i, ok := t.OverrideIndenter(); ok {
		r = r.Indenter(i)
	}
	ts := TreeStyle{
		EnumeratorFunc: defaultEnumeratorStyleFunc,
		ItemFunc:       defaultItemStyleFunc,
		Root:           t.rootStyle,
	}
	if f, ok := t.OverrideEnumeratorStyleFunc(); ok {
		ts.EnumeratorFunc = f
	}
	if f, ok := t.OverrideItemStyleFunc(); ok {
		ts.ItemFunc = f
	}
	if s, ok := t.OverrideEnumeratorStyle(); ok {
		ts.EnumeratorBase = &s
	}
	if s, ok := t.OverrideItemStyle(); ok {
		ts.ItemBase = &s
	}
	r = r.Style(ts)
	return r.Render(t, true, "")
}

// List builds a flat Tree (no root value) whose children are the given
// strings/Nodes, a convenience constructor over Tree (spec §3.4).
func List(items ...interface{}) Tree {
	return New().Child(items...)
}
