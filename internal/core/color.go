package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value onto an ANSI color.
type Color uint8

// Palette. The first seven named hues double as the piece colors.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDim // Ghost pieces and inactive UI
)
