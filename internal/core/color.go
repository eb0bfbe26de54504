package core

// Color is a foreground color a palette may apply to a piece of text.
// Uses ANSI color numbers for terminal compatibility.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorGray
)

// ANSI returns the ANSI color number as understood by lipgloss.Color.
// ColorDefault has no number and returns an empty string.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}
