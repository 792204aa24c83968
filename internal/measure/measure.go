// Package measure provides ANSI-aware, Unicode display-width-accurate string
// measurement and truncation. It underlies every package in this module that
// needs to reason about how many terminal cells a string occupies.
package measure

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// maxSeqLen bounds how many bytes an escape sequence scan will consume
// before giving up, so a pathological or truncated sequence can't make
// measurement do unbounded work.
const maxSeqLen = 256

// Width returns the display width of s in terminal cells, per UAX #11. It
// does NOT strip ANSI escape sequences; a string containing raw ESC bytes
// will have those bytes' (zero, since they're control bytes) width counted
// incorrectly unless the caller has already stripped them. Use WidthVisible
// for styled strings.
func Width(s string) int {
	w := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Runes()
		cw := runewidth.RuneWidth(cluster[0])
		if cw < 0 {
			cw = 0
		}
		w += cw
	}
	return w
}

// Height returns the number of lines in s: the count of '\n' plus one. An
// empty string has height 1.
func Height(s string) int {
	return strings.Count(s, "\n") + 1
}

// StripANSI removes CSI/SGR and related terminal control sequences from s,
// leaving only the visible text content.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// WidthVisible returns the display width of s after stripping ANSI escape
// sequences.
func WidthVisible(s string) int {
	return Width(StripANSI(s))
}

// GetLines splits s on '\n' without stripping ANSI sequences, returning the
// raw lines and the maximum visible width among them.
func GetLines(s string) ([]string, int) {
	lines := strings.Split(s, "\n")
	maxW := 0
	for _, l := range lines {
		if w := WidthVisible(l); w > maxW {
			maxW = w
		}
	}
	return lines, maxW
}

// GetLinesVisible splits s on '\n', stripping ANSI sequences from each line,
// and returns the cleaned lines plus the maximum visible width among them.
func GetLinesVisible(s string) ([]string, int) {
	lines := strings.Split(s, "\n")
	cleaned := make([]string, len(lines))
	maxW := 0
	for i, l := range lines {
		c := StripANSI(l)
		cleaned[i] = c
		if w := Width(c); w > maxW {
			maxW = w
		}
	}
	return cleaned, maxW
}

// isCSIFinal reports whether b terminates a CSI sequence (the final byte
// range is 0x40-0x7E, i.e. '@'-'~', excluding '[' which only ever appears as
// the sequence introducer).
func isCSIFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7E && b != '['
}

// scanEscape scans a single escape sequence starting at runes[i] (which must
// be ESC) and returns the index one past its last byte. It honors the
// contract in spec §4.1: consume bytes until a CSI final byte or 'm' is
// found, or until maxSeqLen runes have been consumed as a safety cap.
func scanEscape(runes []rune, i int) int {
	start := i
	i++ // skip ESC
	if i < len(runes) && runes[i] == '[' {
		i++
		for i < len(runes) && i-start < maxSeqLen {
			if runes[i] <= 0xFF && isCSIFinal(byte(runes[i])) {
				return i + 1
			}
			i++
		}
		return i
	}
	// Non-CSI escape (e.g. OSC, single-char escape): consume until a
	// plausible terminator or the safety cap.
	for i < len(runes) && i-start < maxSeqLen {
		if runes[i] == 'm' {
			return i + 1
		}
		i++
	}
	return i
}

// Segment is a piece of a string classified as either visible text or a
// preserved ANSI escape sequence.
type Segment struct {
	Text   string
	IsCtrl bool
}

// Scan splits s into a sequence of visible-text and escape-sequence
// Segments, in order. It is the shared primitive behind truncation and
// word-wrap so that escape sequences are always preserved verbatim and
// never counted against display width.
func Scan(s string) []Segment {
	runes := []rune(s)
	var segs []Segment
	var textBuf strings.Builder
	flush := func() {
		if textBuf.Len() > 0 {
			segs = append(segs, Segment{Text: textBuf.String()})
			textBuf.Reset()
		}
	}
	for i := 0; i < len(runes); {
		if runes[i] == 0x1b {
			flush()
			end := scanEscape(runes, i)
			segs = append(segs, Segment{Text: string(runes[i:end]), IsCtrl: true})
			i = end
			continue
		}
		textBuf.WriteRune(runes[i])
		i++
	}
	flush()
	return segs
}

// TruncateVisible truncates s to at most width display columns, preserving
// any ANSI escape sequences found within the kept prefix verbatim. Escape
// sequences trailing after the cut point are dropped (spec §4.7 stage 6).
func TruncateVisible(s string, width int) string {
	if width <= 0 {
		return ""
	}
	segs := Scan(s)
	var out strings.Builder
	cur := 0
	for _, seg := range segs {
		if seg.IsCtrl {
			out.WriteString(seg.Text)
			continue
		}
		for _, g := range graphemes(seg.Text) {
			gw := Width(g)
			if cur+gw > width {
				return out.String()
			}
			out.WriteString(g)
			cur += gw
		}
	}
	return out.String()
}

func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
