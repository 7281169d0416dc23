package terminal

// Key codes read from a raw-mode terminal
const (
	KeyCtrlD     = 0x04
	KeyBackspace = 0x08 // Ctrl-H
	KeyTab       = 0x09
	KeyNewline   = 0x0a
	KeyReturn    = 0x0d
	KeyEscape    = 0x1b
	KeyDelete    = 0x7f // what most terminals send for Backspace
)

// Escape sequences written to the display
const (
	// EraseChar moves the cursor back one cell, blanks it and moves back again
	EraseChar = "\b \b"
)
