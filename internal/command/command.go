// Package command defines the single-byte input codes routed through the
// menu. Codes below 128 overlap ASCII control characters; codes above 127
// are reserved for navigation and never collide with printable input.
package command

const (
	Backspace byte = 8
	Enter     byte = 10
	Back      byte = 27
	Up        byte = 128
	Down      byte = 129
	Right     byte = 130
	Left      byte = 131
	Clear     byte = 132
)

// IsPrintable reports whether the code carries a printable ASCII character.
func IsPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// Name returns a label for a command code, used in trace logs.
func Name(c byte) string {
	switch c {
	case Backspace:
		return "backspace"
	case Enter:
		return "enter"
	case Back:
		return "back"
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	case Left:
		return "left"
	case Clear:
		return "clear"
	}
	if IsPrintable(c) {
		return string(rune(c))
	}
	return "unknown"
}
