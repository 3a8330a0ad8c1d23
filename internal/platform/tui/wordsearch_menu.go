package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

// LevelSelectModel lets users pick the starting campaign level. Levels past
// the first uncleared one are locked.
type LevelSelectModel struct {
	cursor    int
	unlocked  int // highest playable level, 1-indexed
	best      map[int]storage.LevelProgress
	width     int
	height    int
	keyMapper *KeyMapper
	level     int
	choosing  bool
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a level selector reading progress from store.
// A nil store unlocks every level.
func NewLevelSelectModel(store *storage.Store, width, height int) LevelSelectModel {
	m := LevelSelectModel{
		unlocked:  wordsearch.LevelCount(),
		best:      make(map[int]storage.LevelProgress),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}

	if store != nil {
		if n, err := store.UnlockedLevel(wordsearch.IDCampaign); err == nil {
			m.unlocked = min(n, wordsearch.LevelCount())
		}
		if progress, err := store.CampaignProgress(wordsearch.IDCampaign); err == nil {
			for _, lp := range progress {
				m.best[lp.Level] = lp
			}
		}
	}
	m.cursor = m.unlocked - 1
	return m
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.unlocked-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.level = m.cursor + 1 // 1-indexed
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	lockedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	clearedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i := range wordsearch.LevelCount() {
		n := i + 1
		lvl, _ := wordsearch.LevelAt(n)

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %-15s %2dx%-2d %-8s", cursor, n, lvl.Name, lvl.Size, lvl.Size, lvl.Directions.Symbols())

		switch best, cleared := m.best[n]; {
		case cleared:
			line += fmt.Sprintf(" ✓ %5d  %s", best.BestScore, best.BestDuration.Round(time.Second))
			b.WriteString(centerStyled(clearedStyle.Render(line), len([]rune(line)), m.width))
		case n > m.unlocked:
			line += " locked"
			b.WriteString(centerStyled(lockedStyle.Render(line), len([]rune(line)), m.width))
		default:
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen level, or 0 while still choosing.
func (m LevelSelectModel) Selected() int {
	if m.choosing {
		return 0
	}
	return m.level
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the campaign level selector and returns the chosen
// level, or 0 if the user backed out.
func RunLevelSelector(store *storage.Store, cfg core.RuntimeConfig) (int, error) {
	model := NewLevelSelectModel(store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return 0, nil
	}
	return m.Selected(), nil
}
