package core

// Color is the foreground color of a screen cell. The zero value keeps the
// terminal's own foreground.
type Color uint8

// Palette used by the game renderer and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
	ColorOrange
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	NumColors
)

// ansiCodes maps each color to its ANSI 256-color index.
var ansiCodes = [NumColors]string{
	ColorRed:          "1",
	ColorCyan:         "6",
	ColorMagenta:      "5",
	ColorWhite:        "7",
	ColorGray:         "245",
	ColorOrange:       "208",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorBrightWhite:  "15",
}

// ANSI returns the ANSI 256-color index of c, or "" for ColorDefault and
// values outside the palette.
func (c Color) ANSI() string {
	if c >= NumColors {
		return ""
	}
	return ansiCodes[c]
}
