package tree

import (
	"strings"

	"github.com/whit3rabbit/lipgloss-go/internal/measure"
	"github.com/whit3rabbit/lipgloss-go/style"
)

// TreeStyle bundles the styling knobs a Renderer applies while walking a
// tree: a per-visible-index style function for enumerator glyphs and item
// values, an optional base style that replaces the function entirely when
// set (spec §4.10 "base style replaces function style" precedence), and
// the style applied to the root node's own value.
type TreeStyle struct {
	EnumeratorFunc StyleFunc
	ItemFunc       StyleFunc
	EnumeratorBase *style.Style
	ItemBase       *style.Style
	Root           style.Style
}

// Renderer walks a Node tree and produces its textual form. Builder methods
// return new values; Render performs the recursive walk.
type Renderer struct {
	ts         TreeStyle
	enumerator Enumerator
	indenter   Indenter
}

// NewRenderer returns a Renderer configured with the package defaults.
func NewRenderer() Renderer {
	return Renderer{
		ts: TreeStyle{
			EnumeratorFunc: defaultEnumeratorStyleFunc,
			ItemFunc:       defaultItemStyleFunc,
			Root:           style.New(),
		},
		enumerator: DefaultEnumerator,
		indenter:   DefaultIndenter,
	}
}

func (r Renderer) Style(ts TreeStyle) Renderer      { r.ts = ts; return r }
func (r Renderer) Enumerator(e Enumerator) Renderer { r.enumerator = e; return r }
func (r Renderer) Indenter(i Indenter) Renderer     { r.indenter = i; return r }

func isBranchGlyph(s string) bool {
	return s == "├──" || s == "└──" || s == "╰──"
}

// hasVisibleLine reports whether node or any descendant would render a
// non-empty line, used to decide whether a sibling counts as "later" when
// computing which visible child is last in the visual sequence.
func hasVisibleLine(n Node) bool {
	if n == nil || n.Hidden() {
		return false
	}
	if n.Value() != "" {
		return true
	}
	ch := n.Children()
	for i := 0; i < ch.Length(); i++ {
		if hasVisibleLine(ch.At(i)) {
			return true
		}
	}
	return false
}

func getEnumerator(n Node) (Enumerator, bool) {
	if o, ok := n.(overrider); ok {
		return o.OverrideEnumerator()
	}
	return nil, false
}

func getIndenter(n Node) (Indenter, bool) {
	if o, ok := n.(overrider); ok {
		return o.OverrideIndenter()
	}
	return nil, false
}

func getEnumeratorStyle(n Node) (style.Style, bool) {
	if o, ok := n.(overrider); ok {
		return o.OverrideEnumeratorStyle()
	}
	return style.Style{}, false
}

func getItemStyle(n Node) (style.Style, bool) {
	if o, ok := n.(overrider); ok {
		return o.OverrideItemStyle()
	}
	return style.Style{}, false
}

func getEnumeratorStyleFunc(n Node) (StyleFunc, bool) {
	if o, ok := n.(overrider); ok {
		return o.OverrideEnumeratorStyleFunc()
	}
	return nil, false
}

func getItemStyleFunc(n Node) (StyleFunc, bool) {
	if o, ok := n.(overrider); ok {
		return o.OverrideItemStyleFunc()
	}
	return nil, false
}

// Render walks node and produces its text form. root controls whether
// node's own value (if non-empty) is printed as a heading line; prefix is
// the accumulated indentation from all ancestor levels.
func (r Renderer) Render(node Node, root bool, prefix string) string {
	if node == nil || node.Hidden() {
		return ""
	}

	var strs []string
	children := node.Children()
	n := children.Length()

	enumerator := r.enumerator
	if e, ok := getEnumerator(node); ok {
		enumerator = e
	}
	indenter := r.indenter
	if i, ok := getIndenter(node); ok {
		indenter = i
	}

	if root && node.Value() != "" {
		strs = append(strs, r.ts.Root.Render(node.Value()))
	}

	var visibleNodes []Node
	for i := 0; i < n; i++ {
		c := children.At(i)
		if c == nil || c.Hidden() || c.Value() == "" {
			continue
		}
		visibleNodes = append(visibleNodes, c)
	}
	filteredChildren := NewChildren(visibleNodes...)
	visChildren := filteredChildren

	isLastVec := make([]bool, len(visibleNodes))
	for vi := range visibleNodes {
		last := true
		seen := 0
		for i := 0; i < n; i++ {
			c := children.At(i)
			if c == nil || c.Hidden() {
				continue
			}
			if c.Value() != "" {
				if seen == vi {
					for j := i + 1; j < n; j++ {
						if next := children.At(j); next != nil && hasVisibleLine(next) {
							last = false
							break
						}
					}
					break
				}
				seen++
			}
		}
		isLastVec[vi] = last
	}

	lastDisplayIndent := ""

	for i := 0; i < n; i++ {
		child := children.At(i)
		if child == nil || child.Hidden() {
			continue
		}

		hasDisplayIdx := child.Value() != ""
		displayIdx := 0
		if hasDisplayIdx {
			count := 0
			for j := 0; j < i; j++ {
				if prev := children.At(j); prev != nil && !prev.Hidden() && prev.Value() != "" {
					count++
				}
			}
			displayIdx = count
		}

		enumStyleFunc := r.ts.EnumeratorFunc
		if f, ok := getEnumeratorStyleFunc(node); ok {
			enumStyleFunc = f
		}
		itemStyleFunc := r.ts.ItemFunc
		if f, ok := getItemStyleFunc(node); ok {
			itemStyleFunc = f
		}

		enumBase := r.ts.EnumeratorBase
		if s, ok := getEnumeratorStyle(node); ok {
			enumBase = &s
		}
		itemBase := r.ts.ItemBase
		if s, ok := getItemStyle(node); ok {
			itemBase = &s
		}

		var rawIndent string
		if hasDisplayIdx {
			rawIndent = indenter(filteredChildren, displayIdx)
		} else {
			rawIndent = lastDisplayIndent
		}
		indent := rawIndent

		userPref := enumerator(visChildren, displayIdx)
		var nodePrefix string
		if !isBranchGlyph(userPref) {
			nodePrefix = userPref
		} else {
			dc := dummyChildren{n: 2}
			isLast := displayIdx >= len(isLastVec) || isLastVec[displayIdx]
			if isLast {
				nodePrefix = enumerator(dc, 1)
			} else {
				nodePrefix = enumerator(dc, 0)
			}
		}

		if enumBase != nil {
			nodePrefix = enumBase.Render(nodePrefix)
		} else {
			enumResult := enumStyleFunc(visChildren, displayIdx)
			enumLead := enumResult.Render("")
			if enumLead != "" && strings.TrimSpace(enumLead) != "" {
				defaultStyled := style.New().PaddingRight(1).Render(nodePrefix)
				if !strings.HasSuffix(enumLead, " ") {
					nodePrefix = enumLead + " " + defaultStyled
				} else {
					nodePrefix = enumLead + defaultStyled
				}
			} else {
				nodePrefix = enumResult.Render(nodePrefix)
			}
		}

		item := child.Value()
		if itemBase != nil {
			item = itemBase.Render(item)
		} else {
			itemResult := itemStyleFunc(visChildren, displayIdx)
			itemLead := itemResult.Render("")
			if itemLead != "" {
				if !strings.HasSuffix(itemLead, " ") {
					item = itemLead + " " + item
				} else {
					item = itemLead + item
				}
			} else {
				item = itemResult.Render(item)
			}
		}

		multilinePrefix := prefix

		itemHeight := measure.Height(item)
		nodePrefixHeight := measure.Height(nodePrefix)
		for itemHeight > nodePrefixHeight {
			nodePrefix = style.JoinVertical(0, nodePrefix, indent)
			nodePrefixHeight = measure.Height(nodePrefix)
		}

		multilinePrefixHeight := measure.Height(multilinePrefix)
		for nodePrefixHeight > multilinePrefixHeight {
			multilinePrefix = style.JoinVertical(0, multilinePrefix, prefix)
			multilinePrefixHeight = measure.Height(multilinePrefix)
		}

		if child.Value() != "" {
			line := style.JoinHorizontal(0, multilinePrefix, nodePrefix, item)
			strs = append(strs, line)
			lastDisplayIndent = rawIndent
		}

		if child.Children().Length() > 0 {
			childPrefix := prefix + indent

			_, hasEnumStyle := getEnumeratorStyle(child)
			_, hasItemStyle := getItemStyle(child)
			_, hasEnumStyleFunc := getEnumeratorStyleFunc(child)
			_, hasItemStyleFunc := getItemStyleFunc(child)
			hasStyleOverrides := hasEnumStyle || hasItemStyle || hasEnumStyleFunc || hasItemStyleFunc

			childRenderer := NewRenderer()
			if !hasStyleOverrides {
				childRenderer = childRenderer.Enumerator(r.enumerator).Indenter(r.indenter)
			}
			if e, ok := getEnumerator(child); ok {
				childRenderer = childRenderer.Enumerator(e)
			}
			if idn, ok := getIndenter(child); ok {
				childRenderer = childRenderer.Indenter(idn)
			}

			childEnumFunc := defaultEnumeratorStyleFunc
			if f, ok := getEnumeratorStyleFunc(child); ok {
				childEnumFunc = f
			}
			childItemFunc := defaultItemStyleFunc
			if f, ok := getItemStyleFunc(child); ok {
				childItemFunc = f
			}
			childEnumBase := r.ts.EnumeratorBase
			if s, ok := getEnumeratorStyle(child); ok {
				childEnumBase = &s
			}
			childItemBase := r.ts.ItemBase
			if s, ok := getItemStyle(child); ok {
				childItemBase = &s
			}

			childRenderer = childRenderer.Style(TreeStyle{
				EnumeratorFunc: childEnumFunc,
				ItemFunc:       childItemFunc,
				Root:           style.New(),
				EnumeratorBase: childEnumBase,
				ItemBase:       childItemBase,
			})

			childOutput := childRenderer.Render(child, false, childPrefix)

			if child.Value() == "" {
				futureExists := false
				for j := i + 1; j < n; j++ {
					if next := children.At(j); next != nil && next.Value() == "" && hasVisibleLine(next) {
						futureExists = true
						break
					}
				}
				if futureExists {
					dc := dummyChildren{n: 2}
					lastBranch := enumerator(dc, 1)
					midBranch := enumerator(dc, 0)
					lookFor := childPrefix + lastBranch
					if pos := strings.LastIndex(childOutput, lookFor); pos >= 0 {
						lineStart := 0
						if nl := strings.LastIndex(childOutput[:pos], "\n"); nl >= 0 {
							lineStart = nl + 1
						}
						if lineStart == pos {
							childOutput = childOutput[:pos] + childPrefix + midBranch + childOutput[pos+len(lookFor):]
						}
					}
				}
			}

			if childOutput != "" {
				strs = append(strs, childOutput)
			}
		}
	}

	return strings.Join(strs, "\n")
}
