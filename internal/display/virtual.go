package display

import (
	"strings"

	"github.com/atomicstack/lcdmenu/internal/format/row"
)

const (
	selectorGlyph     = '>'
	selectorEditGlyph = '*'
	upIndicator       = '^'
	downIndicator     = 'v'
)

// Virtual is an in-memory character-cell surface. It backs the terminal UI
// and doubles as a headless fake in tests.
type Virtual struct {
	cols, rows int
	cells      [][]rune

	cursorRow  int
	editMode   bool
	blinkerCol int
	blinkerOn  bool
}

// NewVirtual allocates a blank surface of the given dimensions.
func NewVirtual(cols, rows int) *Virtual {
	v := &Virtual{cols: cols, rows: rows}
	v.cells = make([][]rune, rows)
	for i := range v.cells {
		v.cells[i] = make([]rune, cols)
	}
	v.Clear()
	return v
}

func (v *Virtual) Cols() int { return v.cols }
func (v *Virtual) Rows() int { return v.rows }

// Clear blanks the grid. The blinker and edit-mode flag are untouched;
// callers redraw after clearing.
func (v *Virtual) Clear() {
	for _, line := range v.cells {
		for i := range line {
			line[i] = ' '
		}
	}
}

// DrawRow writes text starting at column 1 and blanks through the
// second-to-last column.
func (v *Virtual) DrawRow(rowIdx int, text string) {
	v.write(rowIdx, text)
}

// DrawItem writes "label<sep>value" starting at column 1.
func (v *Virtual) DrawItem(rowIdx int, label string, sep rune, value string) {
	v.write(rowIdx, label+string(sep)+value)
}

func (v *Virtual) write(rowIdx int, text string) {
	if rowIdx < 0 || rowIdx >= v.rows {
		return
	}
	line := v.cells[rowIdx]
	runes := []rune(text)
	for col := 1; col < v.cols-1; col++ {
		if idx := col - 1; idx < len(runes) {
			line[col] = runes[idx]
		} else {
			line[col] = ' '
		}
	}
}

// DrawSelector marks the focused row and places the selection glyph.
func (v *Virtual) DrawSelector(rowIdx int, editing bool) {
	if rowIdx < 0 || rowIdx >= v.rows {
		return
	}
	for i := range v.cells {
		v.cells[i][0] = ' '
	}
	glyph := selectorGlyph
	if editing {
		glyph = selectorEditGlyph
	}
	v.cells[rowIdx][0] = rune(glyph)
	v.cursorRow = rowIdx
}

func (v *Virtual) DrawUpIndicator() {
	v.cells[0][v.cols-1] = upIndicator
}

func (v *Virtual) DrawDownIndicator() {
	v.cells[v.rows-1][v.cols-1] = downIndicator
}

func (v *Virtual) CursorRow() int { return v.cursorRow }

func (v *Virtual) EditMode() bool { return v.editMode }

func (v *Virtual) SetEditMode(enabled bool) { v.editMode = enabled }

func (v *Virtual) BlinkerPosition() int { return v.blinkerCol }

// ResetBlinker moves the blinker column. The row follows the focused row.
func (v *Virtual) ResetBlinker(col int) {
	if col < 0 {
		col = 0
	}
	if col > v.cols-1 {
		col = v.cols - 1
	}
	v.blinkerCol = col
}

func (v *Virtual) DrawBlinker() { v.blinkerOn = true }

func (v *Virtual) ClearBlinker() { v.blinkerOn = false }

// BlinkerVisible reports whether the blinker should currently be rendered.
func (v *Virtual) BlinkerVisible() bool { return v.blinkerOn }

// BlinkerRow returns the row the blinker sits on.
func (v *Virtual) BlinkerRow() int { return v.cursorRow }

// Line returns the contents of one row, padded to the surface width.
func (v *Virtual) Line(rowIdx int) string {
	if rowIdx < 0 || rowIdx >= v.rows {
		return ""
	}
	return row.Pad(string(v.cells[rowIdx]), v.cols)
}

// Lines returns every row of the grid.
func (v *Virtual) Lines() []string {
	out := make([]string, v.rows)
	for i := range v.cells {
		out[i] = v.Line(i)
	}
	return out
}

// String renders the grid as plain text, one line per row.
func (v *Virtual) String() string {
	return strings.Join(v.Lines(), "\n")
}
