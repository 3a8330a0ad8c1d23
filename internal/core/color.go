package core

// Color is the style of a screen cell. Most values are plain ANSI
// foregrounds; the highlight values also carry a background.
type Color uint8

// Cell styles used by games.
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

	ColorCursor    // reverse video, marks the cursor cell
	ColorSelection // dark on yellow, marks an in-progress selection
	ColorFound     // dark on green, marks letters of found words
	ColorHint      // dark on magenta, marks a hinted letter

	ColorHUD         // status bar
	ColorFrame       // grid border and rules
	ColorHeading     // word list title
	ColorWordPending // word still to find
	ColorWordFound   // word already found
	ColorWordMissed  // word revealed after giving up
)
