package measure

import "strings"

type atom struct {
	text    string
	ctrl    bool
	isSpace bool
	width   int
}

func atomize(s string) []atom {
	var atoms []atom
	for _, seg := range Scan(s) {
		if seg.IsCtrl {
			atoms = append(atoms, atom{text: seg.Text, ctrl: true})
			continue
		}
		for _, g := range graphemes(seg.Text) {
			atoms = append(atoms, atom{text: g, isSpace: g == " ", width: Width(g)})
		}
	}
	return atoms
}

// token is a maximal run of non-space atoms (a "word", possibly carrying
// leading/trailing control sequences) or a single space atom.
type token struct {
	atoms   []atom
	isSpace bool
	width   int
}

func tokenize(atoms []atom) []token {
	var tokens []token
	var cur []atom
	flush := func() {
		if len(cur) > 0 {
			w := 0
			for _, a := range cur {
				w += a.width
			}
			tokens = append(tokens, token{atoms: cur, width: w})
			cur = nil
		}
	}
	for _, a := range atoms {
		if a.isSpace {
			flush()
			tokens = append(tokens, token{atoms: []atom{a}, isSpace: true, width: 1})
			continue
		}
		cur = append(cur, a)
	}
	flush()
	return tokens
}

func render(atoms []atom) string {
	var b strings.Builder
	for _, a := range atoms {
		b.WriteString(a.text)
	}
	return b.String()
}

// WordWrap wraps a single line (no '\n') to content_w display columns,
// preserving ANSI escape sequences verbatim. It implements spec §4.7 stage
// 7: tokens longer than the width are hard-wrapped; a space between words
// is only emitted once the current line already holds a non-space cell.
func WordWrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	tokens := tokenize(atomize(s))
	if len(tokens) == 0 {
		return []string{""}
	}

	var lines []string
	var cur []atom
	curW := 0
	pendingSpace := false

	finishLine := func() {
		lines = append(lines, render(cur))
		cur = nil
		curW = 0
		pendingSpace = false
	}

	for _, tok := range tokens {
		if tok.isSpace {
			if curW > 0 {
				pendingSpace = true
			}
			continue
		}
		if tok.width > width {
			// Hard-wrap this token across as many lines as needed.
			if curW > 0 {
				finishLine()
			}
			remaining := tok.atoms
			for len(remaining) > 0 {
				w := 0
				i := 0
				for i < len(remaining) {
					aw := remaining[i].width
					if w+aw > width && w > 0 {
						break
					}
					w += aw
					i++
					if w >= width {
						break
					}
				}
				if i == 0 {
					i = 1 // always make progress
				}
				lines = append(lines, render(remaining[:i]))
				remaining = remaining[i:]
			}
			continue
		}
		extra := 0
		if pendingSpace {
			extra = 1
		}
		if curW > 0 && curW+extra+tok.width > width {
			finishLine()
			extra = 0
		}
		if pendingSpace && extra == 1 {
			cur = append(cur, atom{text: " ", isSpace: true, width: 1})
			curW++
			pendingSpace = false
		}
		cur = append(cur, tok.atoms...)
		curW += tok.width
	}
	lines = append(lines, render(cur))
	return lines
}
