// Package ui contains the Bubble Tea program that renders the character
// display in a terminal.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses are translated into single-byte menu commands
//     (internal/ui/input.go) and fed to the navigator one at a time; each
//     command is fully processed, including redraw and blinker placement,
//     before the next one is accepted.
//   - Blink messages from the bubbles cursor model drive the visibility
//     phase of the blinker cell.
//
// State ownership:
//   - All menu and item state lives behind internal/menu and internal/item;
//     the model here only holds the virtual surface, the blink cursor, and
//     the terminal dimensions.
//   - The rendered frame is a direct projection of the surface grid; no
//     drawable state is kept in the view layer.
package ui
