package table

import (
	"sort"

	"github.com/whit3rabbit/lipgloss-go/internal/measure"
)

// column carries the width statistics the solver needs for one table
// column: the minimum/maximum/median cell display width across every row
// (header included) and the horizontal padding/fixed-width floors imposed
// by any cell style, mirroring lipgloss-table's ResizerColumn.
type column struct {
	min, max, median int
	xPadding         int
	fixedWidth       int
}

// resizer computes the final column widths and row heights for a render
// pass, grounded in lipgloss-table/src/resizing.rs's Resizer.
type resizer struct {
	tableWidth   int
	allRows      [][]string
	rowHeights   []int
	columns      []column
	wrap         bool
	borderColumn bool
	yPaddings    [][]int
	hasHeaders   bool
}

func newResizer(tableWidth int, headers []string, rows [][]string) *resizer {
	r := &resizer{tableWidth: tableWidth, wrap: true, borderColumn: true}
	if len(headers) > 0 {
		r.allRows = append(r.allRows, headers)
		r.hasHeaders = true
	}
	r.allRows = append(r.allRows, rows...)

	maxCols := 0
	for _, row := range r.allRows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	r.columns = make([]column, maxCols)
	for j := 0; j < maxCols; j++ {
		widths := make([]int, 0, len(r.allRows))
		col := column{}
		for _, row := range r.allRows {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			w := measure.WidthVisible(cell)
			widths = append(widths, w)
			if w > col.max {
				col.max = w
			}
		}
		col.min = minInt(widths)
		col.median = medianInt(widths)
		r.columns[j] = col
	}

	r.rowHeights = make([]int, len(r.allRows))
	for i := range r.rowHeights {
		r.rowHeights[i] = 1
	}
	r.yPaddings = make([][]int, len(r.allRows))
	for i, row := range r.allRows {
		r.yPaddings[i] = make([]int, len(row))
	}
	return r
}

func minInt(vs []int) int {
	if len(vs) == 0 {
		return 0
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func medianInt(vs []int) int {
	if len(vs) == 0 {
		return 0
	}
	sorted := append([]int(nil), vs...)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// totalHorizontalBorder is the number of vertical border glyphs the
// current column count costs: one between every pair plus the two edges.
func (r *resizer) totalHorizontalBorder() int {
	if r.borderColumn && len(r.columns) > 0 {
		return len(r.columns) + 1
	}
	return 0
}

func (r *resizer) maxColumnWidths() []int {
	widths := make([]int, len(r.columns))
	for j, c := range r.columns {
		if c.fixedWidth > 0 {
			widths[j] = c.fixedWidth
		} else {
			widths[j] = c.max + c.xPadding
		}
	}
	return widths
}

func (r *resizer) maxTotal() int {
	total := r.totalHorizontalBorder()
	for _, c := range r.columns {
		total += c.max + c.xPadding
	}
	return total
}

func (r *resizer) detectTableWidth() int {
	return r.maxTotal()
}

// optimizedWidths is the solver entry point: expand if the natural total
// fits within tableWidth, otherwise shrink in three phases (spec §4.9).
func (r *resizer) optimizedWidths() ([]int, []int) {
	var widths []int
	if r.maxTotal() <= r.tableWidth {
		widths = r.expandTableWidth()
	} else {
		widths = r.shrinkTableWidth()
	}
	heights := r.expandRowHeights(widths)
	return widths, heights
}

func sumInt(vs []int) int {
	s := 0
	for _, v := range vs {
		s += v
	}
	return s
}

func (r *resizer) expandTableWidth() []int {
	widths := r.maxColumnWidths()
	for sumInt(widths)+r.totalHorizontalBorder() < r.tableWidth {
		idx, narrowest := -1, int(^uint(0)>>1)
		for j, w := range widths {
			if r.columns[j].fixedWidth > 0 {
				continue
			}
			if w < narrowest {
				narrowest, idx = w, j
			}
		}
		if idx < 0 {
			break
		}
		widths[idx]++
	}
	return widths
}

func (r *resizer) shrinkTableWidth() []int {
	widths := r.maxColumnWidths()
	r.shrinkBiggestColumns(widths, true)
	r.shrinkToMedian(widths)
	r.shrinkBiggestColumns(widths, false)
	return widths
}

func (r *resizer) shrinkBiggestColumns(widths []int, veryBigOnly bool) {
	for sumInt(widths)+r.totalHorizontalBorder() > r.tableWidth {
		idx, biggest := -1, 0
		for j, w := range widths {
			if r.columns[j].fixedWidth > 0 {
				continue
			}
			if veryBigOnly && w < r.tableWidth/2 {
				continue
			}
			if w > biggest {
				biggest, idx = w, j
			}
		}
		if idx < 0 {
			return
		}
		if widths[idx] <= 0 {
			return
		}
		widths[idx]--
	}
}

func (r *resizer) shrinkToMedian(widths []int) {
	for sumInt(widths)+r.totalHorizontalBorder() > r.tableWidth {
		idx, maxDiff := -1, 0
		for j, w := range widths {
			if r.columns[j].fixedWidth > 0 {
				continue
			}
			medianWidth := r.columns[j].median + r.columns[j].xPadding
			if w > medianWidth {
				if diff := w - medianWidth; diff > maxDiff {
					maxDiff, idx = diff, j
				}
			}
		}
		if idx < 0 {
			idx = -1
			biggest := 0
			for j, w := range widths {
				if r.columns[j].fixedWidth > 0 {
					continue
				}
				if w > biggest {
					biggest, idx = w, j
				}
			}
			if idx < 0 {
				return
			}
		}
		if widths[idx] <= 0 {
			return
		}
		widths[idx]--
	}
}

func (r *resizer) expandRowHeights(colWidths []int) []int {
	heights := append([]int(nil), r.rowHeights...)
	for i, row := range r.allRows {
		if r.hasHeaders && i == 0 {
			continue
		}
		for j, cell := range row {
			if j >= len(colWidths) {
				continue
			}
			contentWidth := colWidths[j] - r.columns[j].xPadding
			if contentWidth < 0 {
				contentWidth = 0
			}
			h := detectContentHeight(cell, contentWidth)
			if j < len(r.yPaddings[i]) {
				h += r.yPaddings[i][j]
			}
			if h > heights[i] {
				heights[i] = h
			}
		}
	}
	return heights
}

// detectContentHeight mirrors lipgloss-table's wrap-aware line counter:
// explicit newlines each contribute at least one line, and any line wider
// than width is counted by simulating the greedy word-wrap fill.
func detectContentHeight(content string, width int) int {
	if width == 0 {
		return 1
	}
	total := 0
	for _, line := range splitLinesKeepEmpty(content) {
		if line == "" {
			total++
			continue
		}
		total += wrappedLineHeight(line, width)
	}
	if total < 1 {
		total = 1
	}
	return total
}

func splitLinesKeepEmpty(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			out = append(out, cur)
			cur = ""
			continue
		}
		if r == '\r' {
			continue
		}
		cur += string(r)
	}
	out = append(out, cur)
	return out
}

func wrappedLineHeight(line string, width int) int {
	if measure.WidthVisible(line) <= width {
		return 1
	}
	return len(measure.WordWrap(line, width))
}
