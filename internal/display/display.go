// Package display defines the character-cell surface menu items draw onto.
//
// A surface is a fixed grid of rows and columns. Column 0 of each row is
// reserved for the selection glyph, the last column for scroll indicators.
// The surface also owns the two pieces of edit-session state that belong to
// the display rather than any one item: the edit-mode flag and the blinker
// (the rendered caret, as opposed to the logical cursor index an editable
// item keeps for itself).
package display

// Surface is the drawing contract consumed by menu items and the navigator.
type Surface interface {
	Cols() int
	Rows() int

	// Clear blanks every cell.
	Clear()
	// DrawRow writes text starting at column 1, blanking the rest of the
	// item area.
	DrawRow(row int, text string)
	// DrawItem writes "label<sep>value" starting at column 1.
	DrawItem(row int, label string, sep rune, value string)
	// DrawSelector places the selection glyph in column 0 of row and marks
	// row as the focused row for subsequent blinker placement.
	DrawSelector(row int, editing bool)
	DrawUpIndicator()
	DrawDownIndicator()

	// CursorRow returns the row last marked by DrawSelector. Items redraw
	// themselves there while processing commands.
	CursorRow() int

	EditMode() bool
	SetEditMode(enabled bool)

	BlinkerPosition() int
	// ResetBlinker moves the blinker to the given column on the focused row.
	ResetBlinker(col int)
	DrawBlinker()
	ClearBlinker()
}
