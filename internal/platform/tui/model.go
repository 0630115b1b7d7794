package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/audio"
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Options configures a game program.
type Options struct {
	Store    *storage.Store // May be nil; the game then runs without persistence
	Settings config.Settings
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Bell     io.Writer         // Sink for audio cues; nil disables sound
	Level    config.Difficulty // Jump straight to this level when set
}

// Model is the Bubble Tea model for the memory game.
type Model struct {
	engine     *memory.Engine
	sched      *Scheduler
	view       *boardView
	player     *audio.Player
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	board      *core.Screen
	keys       KeyMap
	help       help.Model
	levels     []config.Difficulty
	levelIdx   int
	cursor     int
	startLevel config.Difficulty
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel wires an engine to the terminal adapters.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := NewScheduler()
	view := newBoardView()
	player := audio.NewPlayer(opts.Bell, opts.Settings.Audio, logger)

	engine := memory.NewEngine(memory.Options{
		Presenter: view,
		Audio:     player,
		Store:     storage.NewPersistence(opts.Store, logger),
		Scheduler: sched,
		Logger:    logger,
		Rand:      rand.New(rand.NewSource(cfg.Seed)),
	})

	h := help.New()
	h.ShowAll = false

	m := Model{
		engine:     engine,
		sched:      sched,
		view:       view,
		player:     player,
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		board:      core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		keys:       DefaultKeyMap(),
		help:       h,
		levels:     config.Difficulties(),
		startLevel: opts.Level,
	}
	for i, d := range m.levels {
		if d == opts.Level {
			m.levelIdx = i
		}
	}
	return m
}

// Init shows the start screen, or enters the requested level directly.
func (m Model) Init() tea.Cmd {
	m.engine.Boot()
	if m.startLevel != config.DifficultyNone {
		m.engine.Start()
		m.engine.ChooseLevel(m.startLevel)
	}
	return m.sched.Drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case timerFiredMsg:
		m.sched.Fire(msg.id)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m = m.handleResize(msg)
	}

	return m, tea.Batch(cmd, m.sched.Drain())
}

// handleKey routes a key press according to the visible screen.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.handleScoreboardKey(msg)
	}

	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionMute:
		m.engine.ToggleMute()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.view.screen {
	case memory.ScreenStart:
		switch action {
		case core.ActionConfirm:
			m.engine.Start()
		case core.ActionScores:
			m.openScoreboard()
		}

	case memory.ScreenLevel:
		if level, ok := levelShortcut(msg); ok {
			m.chooseLevel(level)
			return m, nil
		}
		switch action {
		case core.ActionUp:
			m.levelIdx = core.Clamp(m.levelIdx-1, 0, len(m.levels)-1)
		case core.ActionDown:
			m.levelIdx = core.Clamp(m.levelIdx+1, 0, len(m.levels)-1)
		case core.ActionConfirm:
			m.chooseLevel(m.levels[m.levelIdx])
		case core.ActionScores:
			m.openScoreboard()
		case core.ActionBack:
			m.engine.Boot()
		}

	case memory.ScreenGame:
		m.handleGameAction(action)
	}

	return m, nil
}

// handleGameAction applies an action on the game screen.
func (m *Model) handleGameAction(action core.Action) {
	if m.view.modal != modalNone {
		switch action {
		case core.ActionRestart, core.ActionConfirm:
			m.engine.ModalRestart()
			m.cursor = 0
		case core.ActionBack:
			m.engine.ModalBack()
		}
		return
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.moveCursor(action)
	case core.ActionConfirm:
		m.engine.HandleCardClick(m.cursor)
	case core.ActionPause:
		m.engine.TogglePause()
	case core.ActionRestart:
		m.engine.Restart()
		m.cursor = 0
	case core.ActionBack:
		m.engine.Back()
	}
}

// moveCursor moves the card cursor, wrapping around rows and columns.
func (m *Model) moveCursor(action core.Action) {
	n := len(m.view.cards)
	cols := m.view.columns
	if n == 0 || cols <= 0 {
		return
	}

	row, col := m.cursor/cols, m.cursor%cols
	rows := (n + cols - 1) / cols

	switch action {
	case core.ActionUp:
		row = (row - 1 + rows) % rows
	case core.ActionDown:
		row = (row + 1) % rows
	case core.ActionLeft:
		col = (col - 1 + cols) % cols
	case core.ActionRight:
		col = (col + 1) % cols
	}

	m.cursor = core.Clamp(row*cols+col, 0, n-1)
}

// handleMouse flips the card under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.scoreboard != nil || m.view.screen != memory.ScreenGame || m.view.modal != modalNone {
		return m
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}

	index, ok := m.grid().IndexAt(msg.X, msg.Y-headerHeight)
	if !ok {
		return m
	}
	m.cursor = index
	m.engine.HandleCardClick(index)
	return m
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.board.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		sb, _ := m.scoreboard.Update(msg)
		m.scoreboard = &sb
	}
	return m
}

func (m Model) handleScoreboardKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	switch {
	case sb.IsQuitting():
		m.scoreboard = nil
		return m.quit()
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

func (m *Model) openScoreboard() {
	level := config.DifficultyEasy
	if m.levelIdx < len(m.levels) {
		level = m.levels[m.levelIdx]
	}
	sb := NewScoreboardModel(m.store, level, m.config.ScreenW, m.config.ScreenH)
	m.scoreboard = &sb
}

func (m *Model) chooseLevel(level config.Difficulty) {
	for i, d := range m.levels {
		if d == level {
			m.levelIdx = i
		}
	}
	m.cursor = 0
	m.engine.ChooseLevel(level)
}

// quit saves a game in progress and ends the program.
func (m Model) quit() (Model, tea.Cmd) {
	if m.view.screen == memory.ScreenGame {
		m.engine.Save()
		m.engine.StopTimer()
	}
	m.quitting = true
	m.logger.Info("quitting")
	return m, tea.Quit
}

// grid returns the current card layout inside the board area.
func (m Model) grid() core.Grid {
	return boardGrid(len(m.view.cards), m.view.columns, m.board.Width(), m.board.Height())
}

// boardHeight is the number of rows left for cards.
func boardHeight(screenH int) int {
	return core.Max(screenH-headerHeight-footerHeight, 1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	width := m.config.ScreenW
	switch m.view.screen {
	case memory.ScreenStart:
		return startView(m.view.highScore, width)
	case memory.ScreenLevel:
		return levelView(m.levels, m.levelIdx, m.view.highScore, width)
	}

	state := m.engine.State()
	// The engine also pauses while a mismatched pair is face up.
	paused := state.Paused && len(state.Selection) < 2
	header := statsLine(m.view, paused, m.player.Muted(), width)

	var body string
	if m.view.modal != modalNone {
		body = renderModal(m.view, m.board.Width(), m.board.Height())
	} else {
		drawBoard(m.board, m.grid(), m.view.cards, m.cursor)
		body = RenderScreen(m.board)
	}

	helpView := dimStyle.Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", helpView)
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
