package core

// Color is a display/identity tag for world objects and screen cells.
// The simulation uses it only as an opaque tag (letter slots carry one);
// the terminal renderer maps it to ANSI 256-color styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorOrange
	ColorGray
)
