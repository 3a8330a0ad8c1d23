package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

// ansiCodes are the terminal palette indexes of the plain foreground colors.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Word search palette. Letters sit dark on a colored background so a
// highlighted word reads as one band across the grid.
var (
	ink = lipgloss.Color("0")

	cursorStyle    = lipgloss.NewStyle().Reverse(true).Bold(true)
	selectionStyle = lipgloss.NewStyle().Foreground(ink).Background(lipgloss.Color("220")).Bold(true)
	foundStyle     = lipgloss.NewStyle().Foreground(ink).Background(lipgloss.Color("71"))
	hintStyle      = lipgloss.NewStyle().Foreground(ink).Background(lipgloss.Color("177")).Bold(true)

	hudStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true)
	frameStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("66"))
	headingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true).Underline(true)
	wordPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	wordFoundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("71")).Strikethrough(true)
	wordMissedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true)
)

// colorStyles maps every core.Color to the style used to draw it.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault:     lipgloss.NewStyle(),
		core.ColorCursor:      cursorStyle,
		core.ColorSelection:   selectionStyle,
		core.ColorFound:       foundStyle,
		core.ColorHint:        hintStyle,
		core.ColorHUD:         hudStyle,
		core.ColorFrame:       frameStyle,
		core.ColorHeading:     headingStyle,
		core.ColorWordPending: wordPendingStyle,
		core.ColorWordFound:   wordFoundStyle,
		core.ColorWordMissed:  wordMissedStyle,
	}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// styleFor returns the style for c, falling back to the terminal default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var out, run strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				out.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			out.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}
	return out.String()
}
