package style

import (
	"strings"

	"github.com/whit3rabbit/lipgloss-go/internal/measure"
)

// JoinHorizontal lays blocks out side by side, padding each to the tallest
// block's line count according to vPos before concatenating lines (spec
// §4.8). An empty slice yields "", a single block is returned unchanged.
func JoinHorizontal(vPos float64, blocks ...string) string {
	switch len(blocks) {
	case 0:
		return ""
	case 1:
		return blocks[0]
	}

	type block struct {
		lines []string
		width int
	}
	parts := make([]block, len(blocks))
	maxH := 0
	for i, b := range blocks {
		lines, w := measure.GetLines(b)
		parts[i] = block{lines: lines, width: w}
		if len(lines) > maxH {
			maxH = len(lines)
		}
	}

	for i := range parts {
		gap := maxH - len(parts[i].lines)
		if gap <= 0 {
			continue
		}
		blank := strings.Repeat(" ", parts[i].width)
		switch {
		case vPos <= 0:
			for j := 0; j < gap; j++ {
				parts[i].lines = append(parts[i].lines, blank)
			}
		case vPos >= 1:
			top := make([]string, gap)
			for j := range top {
				top[j] = blank
			}
			parts[i].lines = append(top, parts[i].lines...)
		default:
			top, bottom := splitGap(gap, vPos)
			topLines := make([]string, top)
			for j := range topLines {
				topLines[j] = blank
			}
			bottomLines := make([]string, bottom)
			for j := range bottomLines {
				bottomLines[j] = blank
			}
			parts[i].lines = append(append(topLines, parts[i].lines...), bottomLines...)
		}
	}

	rows := make([]string, maxH)
	for row := 0; row < maxH; row++ {
		var sb strings.Builder
		for _, p := range parts {
			line := ""
			if row < len(p.lines) {
				line = p.lines[row]
			}
			sb.WriteString(line)
			if pad := p.width - measure.WidthVisible(line); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
		rows[row] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// JoinVertical stacks blocks top to bottom, padding each produced line with
// spaces to the widest block's visible width, the gap split between left
// and right according to hPos (spec §4.8).
func JoinVertical(hPos float64, blocks ...string) string {
	switch len(blocks) {
	case 0:
		return ""
	case 1:
		return blocks[0]
	}

	var allLines [][]string
	maxW := 0
	for _, b := range blocks {
		lines, w := measure.GetLines(b)
		allLines = append(allLines, lines)
		if w > maxW {
			maxW = w
		}
	}

	var out []string
	for _, lines := range allLines {
		for _, l := range lines {
			gap := maxW - measure.WidthVisible(l)
			if gap <= 0 {
				out = append(out, l)
				continue
			}
			left, right := splitGap(gap, hPos)
			out = append(out, strings.Repeat(" ", left)+l+strings.Repeat(" ", right))
		}
	}
	return strings.Join(out, "\n")
}
