// Package tree renders Leaf/Tree node hierarchies into indented,
// branch-glyph-decorated text, the way `tree` or `ls -R` present a
// directory listing.
//
// A Tree carries an optional root value, zero or more children (Leaf
// values or nested Trees), and optional per-instance overrides for its
// enumerator (branch glyph) and indenter (continuation prefix) functions
// and their styles. Render walks the tree once, computing which children
// are visible (non-hidden, non-empty-valued), which of those is last in
// the visual sequence so the correct branch glyph is chosen, and extending
// multi-line item values and prefixes to stay vertically aligned.
package tree
