package style

import (
	"sort"
	"strings"
)

// Range names a half-open rune index range [Start, End) of a string and
// the Style to apply to it (GLOSSARY "Half-open range").
type Range struct {
	Start, End int
	Style      Style
}

// NewRange constructs a Range.
func NewRange(start, end int, s Style) Range {
	return Range{Start: start, End: end, Style: s}
}

// Ranges renders str, applying each range's Style to its slice of runes and
// leaving runes outside any range unstyled. Overlapping or out-of-order
// ranges are resolved by sorting on Start and clamping each range to begin
// no earlier than the previous range's End.
func Ranges(str string, ranges ...Range) string {
	runes := []rune(str)
	sorted := append([]Range(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var b strings.Builder
	pos := 0
	for _, rg := range sorted {
		start, end := rg.Start, rg.End
		if start < pos {
			start = pos
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start >= end {
			continue
		}
		if start > pos {
			b.WriteString(string(runes[pos:start]))
		}
		b.WriteString(rg.Style.Render(string(runes[start:end])))
		pos = end
	}
	if pos < len(runes) {
		b.WriteString(string(runes[pos:]))
	}
	return b.String()
}

// Runes renders str, applying matched to every rune whose index appears in
// indices and unmatched to every other rune. Adjacent runes sharing the
// same matched/unmatched status are grouped into a single styled run
// rather than rendered one rune at a time.
func Runes(str string, indices []int, matched, unmatched Style) string {
	runes := []rune(str)
	if len(runes) == 0 {
		return ""
	}
	idxSet := make(map[int]bool, len(indices))
	for _, i := range indices {
		idxSet[i] = true
	}

	var b strings.Builder
	i := 0
	for i < len(runes) {
		isMatch := idxSet[i]
		j := i + 1
		for j < len(runes) && idxSet[j] == isMatch {
			j++
		}
		st := unmatched
		if isMatch {
			st = matched
		}
		b.WriteString(st.Render(string(runes[i:j])))
		i = j
	}
	return b.String()
}
