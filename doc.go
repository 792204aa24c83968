// Package lipgloss provides a terminal text styling and layout engine.
//
// Given a Style value and an input string, Render produces a string
// interleaved with ANSI SGR escape sequences, positioned and decorated so
// that a VT-100/xterm-compatible terminal draws a styled rectangular
// block: padded, bordered, aligned, colorized, and margined.
//
// # Package Structure
//
//   - color: the TerminalColor sum type, xterm-256/ANSI16 quantization,
//     CIE L*a*b* blending, and color utility functions
//   - border: glyph sets for box borders and their per-edge display widths
//   - whitespace: a configurable, optionally styled filler for blank space
//   - renderer: the process-wide color-profile/background-polarity singleton
//   - style: the Style value object and its fourteen-stage render pipeline,
//     plus the Join/Place layout primitives and Ranges/Runes helpers
//   - table: the column-width/row-height solver and grid assembly engine
//   - tree: the hierarchical prefix-glyph renderer for trees and lists
//   - internal/measure: shared ANSI-aware width/height measurement
//
// There is no CLI, no file format, and no persistent state: every public
// operation is pure CPU work completing synchronously in the caller's
// goroutine. The only shared mutable state is the renderer's process-wide
// default instance, guarded by a read/write lock.
package lipgloss
