package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.wordsearch/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Logger receives server events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      filepath.Join("~", config.AppDir, "scores.db"),
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
	}
}

// SSHServer wraps a Wish SSH server serving word search sessions.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "wordsearch-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, config.AppDir, "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: logging wraps the PTY check which
	// wraps the program.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, cfg, sshSession.User()).WithLogger(s.logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.Shutdown()
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the part of the flow a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLevels
	screenScores
	screenGame
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It backs both SSH sessions and the local menu command.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	username   string
	sessionID  string
	logger     *log.Logger
	screen     sessionScreen
	menu       MenuModel
	levels     LevelSelectModel
	scores     ScoreboardModel
	gameModel  *Model
	difficulty config.DifficultyPreset
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: uuid.NewString(),
		logger:    log.New(io.Discard),
		menu:      NewMenuModel(store, cfg),
	}
}

// WithLogger returns a copy of m logging through logger.
func (m SessionModel) WithLogger(logger *log.Logger) SessionModel {
	if logger != nil {
		m.logger = logger.With("session", m.sessionID, "user", m.username)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenLevels:
		return m.updateLevels(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. Child models quit their own
// program when run alone, so their commands are dropped on screen changes.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		m.difficulty = m.menu.Difficulty()
		gameID := m.menu.Selected().GameID
		if gameID == wordsearch.IDCampaign {
			m.levels = NewLevelSelectModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.screen = screenLevels
			return m, m.levels.Init()
		}
		return m.startGame(gameID, 0)
	}

	return m, cmd
}

func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevels, cmd := m.levels.Update(msg)
	if levels, ok := newLevels.(LevelSelectModel); ok {
		m.levels = levels
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.levels.WantsBack():
		return m.backToMenu()
	case m.levels.Selected() > 0:
		return m.startGame(wordsearch.IDCampaign, m.levels.Selected())
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scores, ok := newScores.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// startGame creates the chosen mode with the session's own settings so
// concurrent sessions never share them.
func (m SessionModel) startGame(gameID string, level int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		m.logger.Error("cannot create game", "game", gameID, "error", err)
		return m.backToMenu()
	}

	if s, ok := game.(interface{ SetDifficulty(config.DifficultyPreset) }); ok {
		s.SetDifficulty(m.difficulty)
	}
	if s, ok := game.(interface{ StartAt(int) }); ok && level > 0 {
		s.StartAt(level)
	}

	m.logger.Info("game started", "game", gameID, "level", level, "difficulty", m.difficulty)

	gameModel := NewModel(game, m.store, m.config).WithLogger(m.logger)
	m.gameModel = &gameModel
	m.screen = screenGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.logger.Info("game ended", "game", m.gameModel.game.ID(), "score", m.gameModel.game.State().Score)
		m.config = m.gameModel.Config()
		m.gameModel = nil
		return m.backToMenu()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// backToMenu shows a fresh main menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config).WithDifficulty(m.difficulty)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenLevels:
		return m.levels.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs the menu, level select, scoreboard and games in one
// program, the same flow SSH users get.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewSessionModel(store, cfg, os.Getenv("USER")).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
