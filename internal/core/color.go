package core

// Color represents a foreground color for a screen cell.
// Values are ANSI 256-color codes, except 0 which leaves the terminal default.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault   Color = 0
	ColorBlack           = ColorDefault // Drawing in black erases cells
	ColorRed       Color = 9
	ColorGreen     Color = 10
	ColorYellow    Color = 11
	ColorBlue      Color = 12
	ColorWhite     Color = 15
	ColorDarkRed   Color = 88
	ColorBrown     Color = 130
	ColorCrimson   Color = 160
	ColorOrange    Color = 208
	ColorPink      Color = 224
	ColorLightGray Color = 250
)

// PaletteColor maps n onto the 6x6x6 color cube (codes 16-231).
// Used for effects that pick random colors.
func PaletteColor(n int) Color {
	if n < 0 {
		n = -n
	}
	return Color(16 + n%216)
}
