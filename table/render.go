package table

import (
	"strings"

	"github.com/whit3rabbit/lipgloss-go/internal/measure"
	"github.com/whit3rabbit/lipgloss-go/style"
)

func (t Table) rowsMatrix() [][]string {
	n := t.data.Rows()
	cols := t.data.Columns()
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, cols)
		for j := 0; j < cols; j++ {
			row[j] = t.data.At(i, j)
		}
		rows[i] = row
	}
	return rows
}

// Render runs the width/height solver and assembles the bordered grid
// (spec §4.9).
func (t Table) Render() string {
	hasHeaders := len(t.headers) > 0
	rows := t.rowsMatrix()

	r := newResizer(t.width, t.headers, rows)
	r.wrap = t.wrap
	r.borderColumn = t.borderColumn

	for i, row := range r.allRows {
		rowIndex := i
		if hasHeaders {
			rowIndex = i - 1
		}
		for j := range row {
			if j >= len(r.columns) {
				continue
			}
			st := t.cellStyle(rowIndex, j)

			topMargin, rightMargin, bottomMargin, leftMargin := nonNeg(st.GetMarginTop()), nonNeg(st.GetMarginRight()), nonNeg(st.GetMarginBottom()), nonNeg(st.GetMarginLeft())
			topPad, rightPad, bottomPad, leftPad := nonNeg(st.GetPaddingTop()), nonNeg(st.GetPaddingRight()), nonNeg(st.GetPaddingBottom()), nonNeg(st.GetPaddingLeft())

			xPad := leftMargin + rightMargin + leftPad + rightPad
			if xPad > r.columns[j].xPadding {
				r.columns[j].xPadding = xPad
			}

			if w := st.GetWidth(); w > 0 && w > r.columns[j].fixedWidth {
				r.columns[j].fixedWidth = w
			}
			if h := st.GetHeight(); h > 0 && h > r.rowHeights[i] {
				r.rowHeights[i] = h
			}

			yPad := topMargin + bottomMargin + topPad + bottomPad
			if j < len(r.yPaddings[i]) {
				r.yPaddings[i][j] = yPad
			}
		}
	}

	if r.tableWidth <= 0 {
		r.tableWidth = r.detectTableWidth()
	}

	widths, heights := r.optimizedWidths()
	if len(widths) == 0 {
		return ""
	}

	var b strings.Builder
	if t.borderTop {
		b.WriteString(t.constructBorderLine(widths, t.brd.TopLeft, t.brd.Top, t.brd.MiddleTop, t.brd.TopRight))
		b.WriteByte('\n')
	}

	if hasHeaders {
		b.WriteString(t.constructRowContent(t.headers, HeaderRow, widths))
		b.WriteByte('\n')
		if t.borderHeader {
			b.WriteString(t.constructBorderLine(widths, t.brd.MiddleLeft, t.brd.Middle, t.brd.Middle, t.brd.MiddleRight))
			b.WriteByte('\n')
		}
	}

	headerLines := 0
	if t.borderTop {
		headerLines++
	}
	if hasHeaders {
		headerLines++
		if t.borderHeader {
			headerLines++
		}
	}
	if t.borderBottom {
		headerLines++
	}
	availableLines := -1
	if t.useManualHeight && t.height > 0 {
		availableLines = t.height - headerLines
		if availableLines < 0 {
			availableLines = 0
		}
	}

	dataRows := t.data.Rows()
	heightOffset := 0
	if hasHeaders {
		heightOffset = 1
	}

	linesUsed := 0
	for i := t.offset; i < dataRows; i++ {
		if availableLines >= 0 && linesUsed >= availableLines {
			b.WriteString(t.constructOverflowRow(widths))
			break
		}

		rowData := make([]string, t.data.Columns())
		for j := range rowData {
			rowData[j] = t.data.At(i, j)
		}
		b.WriteString(t.constructRowContent(rowData, i, widths))

		h := 1
		if idx := i + heightOffset; idx < len(heights) {
			h = heights[idx]
		}
		linesUsed += h

		if t.borderRow && i < dataRows-1 && (availableLines < 0 || linesUsed < availableLines) {
			b.WriteByte('\n')
			b.WriteString(t.constructBorderLine(widths, t.brd.MiddleLeft, t.brd.Middle, t.brd.Middle, t.brd.MiddleRight))
			linesUsed++
		}
		if i < dataRows-1 {
			b.WriteByte('\n')
		}
	}

	out := b.String()
	if t.borderBottom {
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		out += t.constructBorderLine(widths, t.brd.BottomLeft, t.brd.Bottom, t.brd.MiddleBottom, t.brd.BottomRight)
	}
	return out
}

func nonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func (t Table) constructBorderLine(widths []int, left, fill, mid, right string) string {
	var parts []string
	if t.borderLeft {
		parts = append(parts, left)
	}
	for i, w := range widths {
		parts = append(parts, strings.Repeat(blankOr(fill), w))
		if i < len(widths)-1 && t.borderColumn {
			parts = append(parts, mid)
		}
	}
	if t.borderRight {
		parts = append(parts, right)
	}
	return t.borderStyle.Render(strings.Join(parts, ""))
}

func blankOr(s string) string {
	if s == "" {
		return " "
	}
	return s
}

func (t Table) constructRowContent(rowData []string, rowIndex int, widths []int) string {
	var parts []string
	if t.borderLeft {
		parts = append(parts, t.brd.Left)
	}
	for j, cellContent := range rowData {
		if j >= len(widths) {
			break
		}
		cellWidth := widths[j]
		st := t.cellStyle(rowIndex, j)
		parts = append(parts, t.styleCellContent(cellContent, cellWidth, st))
		if t.borderColumn && j < len(rowData)-1 {
			parts = append(parts, t.brd.Left)
		}
	}
	if t.borderRight {
		parts = append(parts, t.brd.Right)
	}
	return strings.Join(parts, "")
}

func (t Table) constructOverflowRow(widths []int) string {
	var parts []string
	if t.borderLeft {
		parts = append(parts, t.brd.Left)
	}
	for i, w := range widths {
		ellipsis := "…"
		pad := w - measure.WidthVisible(ellipsis)
		if pad < 0 {
			pad = 0
		}
		parts = append(parts, ellipsis+strings.Repeat(" ", pad))
		if t.borderColumn && i < len(widths)-1 {
			parts = append(parts, t.brd.Left)
		}
	}
	if t.borderRight {
		parts = append(parts, t.brd.Right)
	}
	return strings.Join(parts, "")
}

func (t Table) styleCellContent(content string, width int, cellStyle style.Style) string {
	var fitted string
	if t.wrap {
		fitted = wrapCellContent(content, width)
	} else {
		fitted = truncateCellContent(content, width)
	}
	return cellStyle.Width(width).Render(fitted)
}

func wrapCellContent(content string, width int) string {
	if width == 0 {
		return ""
	}
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	var out []string
	for _, l := range lines {
		if l == "" {
			out = append(out, "")
			continue
		}
		if measure.WidthVisible(l) <= width {
			out = append(out, l)
			continue
		}
		out = append(out, measure.WordWrap(l, width)...)
	}
	return strings.Join(out, "\n")
}

func truncateCellContent(content string, width int) string {
	if measure.WidthVisible(content) <= width {
		return content
	}
	if width <= 0 {
		return ""
	}
	if width == 1 {
		return "…"
	}
	return measure.TruncateVisible(content, width-1) + "…"
}
