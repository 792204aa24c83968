package table

import (
	"github.com/whit3rabbit/lipgloss-go/border"
	"github.com/whit3rabbit/lipgloss-go/color"
	"github.com/whit3rabbit/lipgloss-go/style"
)

// HeaderRow is the reserved row index passed to a StyleFunc when styling
// the header row (spec §3.5).
const HeaderRow = -1

// Data is the abstract row source a Table renders. Rows/Columns report the
// current shape; At returns the cell content at (row, col), row-major,
// zero-based, header row excluded.
type Data interface {
	Rows() int
	Columns() int
	At(row, col int) string
}

// StringData is a Data backed by an in-memory [][]string grid. Rows may
// have varying lengths; Columns reports the widest row.
type StringData struct {
	rows [][]string
}

// NewStringData wraps an existing grid.
func NewStringData(rows [][]string) *StringData {
	return &StringData{rows: rows}
}

// Append adds a single row.
func (d *StringData) Append(row []string) *StringData {
	d.rows = append(d.rows, row)
	return d
}

func (d *StringData) Rows() int { return len(d.rows) }

func (d *StringData) Columns() int {
	max := 0
	for _, r := range d.rows {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}

func (d *StringData) At(row, col int) string {
	if row < 0 || row >= len(d.rows) {
		return ""
	}
	r := d.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// StyleFunc determines the Style applied to the cell at (row, col). row is
// HeaderRow for the header.
type StyleFunc func(row, col int) style.Style

// DefaultStyleFunc returns an unstyled cell.
func DefaultStyleFunc(row, col int) style.Style { return style.New() }

// HeaderRowStyleFunc bolds the header row and leaves data rows unstyled,
// ported from lipgloss-table's header_row_style.
func HeaderRowStyleFunc(row, col int) style.Style {
	if row == HeaderRow {
		return style.New().Bold(true)
	}
	return style.New()
}

// ZebraStyleFunc bolds the header and alternates a background color on
// even data rows, ported from lipgloss-table's zebra_style.
func ZebraStyleFunc(row, col int) style.Style {
	switch {
	case row == HeaderRow:
		return style.New().Bold(true)
	case row%2 == 0:
		return style.New().Background(color.Color("#f0f0f0"))
	default:
		return style.New()
	}
}

// ColumnStyleFunc builds a StyleFunc that bolds the header and applies a
// per-column override for the given column indices, ported from
// lipgloss-table's column_style_func.
func ColumnStyleFunc(columnStyles map[int]style.Style) StyleFunc {
	return func(row, col int) style.Style {
		base := style.New()
		if row == HeaderRow {
			base = base.Bold(true)
		}
		if s, ok := columnStyles[col]; ok {
			base = base.Inherit(s)
		}
		return base
	}
}

// Table renders headers and row data into a bordered grid (spec §3.5).
type Table struct {
	styleFunc   StyleFunc
	brd         border.Border
	borderStyle style.Style

	borderTop, borderBottom, borderLeft, borderRight bool
	borderHeader, borderColumn, borderRow            bool

	headers []string
	data    Data

	width           int
	height          int
	useManualHeight bool
	offset          int
	wrap            bool
}

// New returns a Table with rounded borders, every edge enabled except row
// separators, wrapping on, and no rows.
func New() Table {
	return Table{
		styleFunc:    DefaultStyleFunc,
		brd:          border.Rounded,
		borderStyle:  style.New(),
		borderTop:    true,
		borderBottom: true,
		borderLeft:   true,
		borderRight:  true,
		borderHeader: true,
		borderColumn: true,
		borderRow:    false,
		data:         &StringData{},
		wrap:         true,
	}
}

func (t Table) ClearRows() Table {
	t.data = &StringData{}
	return t
}

func (t Table) StyleFunc(fn StyleFunc) Table {
	t.styleFunc = fn
	return t
}

func (t Table) Border(b border.Border) Table {
	t.brd = b
	return t
}

func (t Table) BorderStyle(s style.Style) Table {
	t.borderStyle = s
	return t
}

func (t Table) BorderTop(v bool) Table    { t.borderTop = v; return t }
func (t Table) BorderBottom(v bool) Table { t.borderBottom = v; return t }
func (t Table) BorderLeft(v bool) Table   { t.borderLeft = v; return t }
func (t Table) BorderRight(v bool) Table  { t.borderRight = v; return t }
func (t Table) BorderHeader(v bool) Table { t.borderHeader = v; return t }
func (t Table) BorderColumn(v bool) Table { t.borderColumn = v; return t }
func (t Table) BorderRow(v bool) Table    { t.borderRow = v; return t }

func (t Table) Headers(h ...string) Table {
	t.headers = append([]string(nil), h...)
	return t
}

// Row appends a single row of cell content to the table's data, converting
// it to a StringData-backed source if it wasn't already one.
func (t Table) Row(cells ...string) Table {
	sd, ok := t.data.(*StringData)
	if !ok {
		sd = toStringData(t.data)
	}
	sd.Append(append([]string(nil), cells...))
	t.data = sd
	return t
}

// Rows appends multiple rows at once.
func (t Table) Rows(rows [][]string) Table {
	for _, r := range rows {
		t = t.Row(r...)
	}
	return t
}

// Data replaces the table's data source outright.
func (t Table) Data(d Data) Table {
	t.data = d
	return t
}

func (t Table) Width(w int) Table {
	if w < 0 {
		w = 0
	}
	t.width = w
	return t
}

func (t Table) Height(h int) Table {
	if h < 0 {
		h = 0
	}
	t.height = h
	t.useManualHeight = h > 0
	return t
}

func (t Table) Offset(o int) Table {
	if o < 0 {
		o = 0
	}
	t.offset = o
	return t
}

func (t Table) Wrap(w bool) Table {
	t.wrap = w
	return t
}

func toStringData(d Data) *StringData {
	rows := make([][]string, d.Rows())
	cols := d.Columns()
	for i := range rows {
		row := make([]string, cols)
		for j := range row {
			row[j] = d.At(i, j)
		}
		rows[i] = row
	}
	return &StringData{rows: rows}
}

func (t Table) cellStyle(row, col int) style.Style {
	if t.styleFunc == nil {
		return style.New()
	}
	return t.styleFunc(row, col)
}
