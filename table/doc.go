// Package table renders a grid of string cells into a bordered, column-
// aligned block.
//
// A Table holds an optional header row, an abstract Data source addressed
// by (row, col), a Border and per-edge enable flags, an optional fixed
// width/height, a row offset for scrolling, a wrap flag, and a per-cell
// StyleFunc keyed on (row, col) with HeaderRow == -1 for the header.
//
// Render performs two passes: the column-width and row-height solver
// (resizer.go, ported from the reference width/shrink/expand algorithm)
// followed by grid assembly (render.go), which draws borders, separators,
// and cell content using style.Style as the per-cell rendering primitive.
package table
