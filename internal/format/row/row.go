// Package row assembles fixed-width display rows. Widths are measured in
// terminal cells rather than runes so wide characters and styled segments
// line up with the character grid.
package row

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Cells returns the display cell width of text, ignoring ANSI sequences.
func Cells(text string) int {
	if strings.ContainsRune(text, '\x1b') {
		return ansi.StringWidth(text)
	}
	return runewidth.StringWidth(text)
}

// Pad returns text padded with spaces (or truncated) to exactly width cells.
func Pad(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = Truncate(text, width)
	gap := width - Cells(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

// Truncate cuts text to at most width cells, ANSI-aware when needed.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Cells(text) <= width {
		return text
	}
	if strings.ContainsRune(text, '\x1b') {
		return ansi.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, "")
}

// Join concatenates cells separated by sep and pads the result to width.
func Join(cells []string, sep string, width int) string {
	return Pad(strings.Join(cells, sep), width)
}
