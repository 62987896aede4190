package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/shapeduel/internal/game"
	"github.com/lox/shapeduel/internal/statistics"
)

const maxGaugeWidth = 30

// Options configures a TUIModel
type Options struct {
	HistorySize int                    // entries shown per side, default 3
	Stats       *statistics.Statistics // session sidebar, nil hides it
	Logger      *log.Logger
}

// TUIModel is the Bubble Tea model for the game screen.
// It only renders engine state; every key press maps to at most one engine call.
type TUIModel struct {
	engine *game.Engine
	stats  *statistics.Statistics
	logger *log.Logger

	keys        keyMap
	help        help.Model
	playerBar   progress.Model
	opponentBar progress.Model

	historySize int
	quitting    bool

	// Dimensions
	width  int
	height int
}

// NewTUIModel creates a model bound to engine
func NewTUIModel(engine *game.Engine, opts Options) *TUIModel {
	if opts.HistorySize <= 0 {
		opts.HistorySize = game.DefaultHistoryShown
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	m := &TUIModel{
		engine:      engine,
		stats:       opts.Stats,
		logger:      logger.WithPrefix("tui"),
		keys:        newKeyMap(),
		help:        help.New(),
		playerBar:   newGauge(playerGaugeColor),
		opponentBar: newGauge(opponentGaugeColor),
		historySize: opts.HistorySize,
	}
	m.keys.setOver(engine.State().Over())
	return m
}

func newGauge(color string) progress.Model {
	return progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
		progress.WithWidth(maxGaugeWidth),
	)
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		gauge := max(10, min(maxGaugeWidth, (msg.Width-30)/2))
		m.playerBar.Width = gauge
		m.opponentBar.Width = gauge
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Circle):
			m.choose(game.Circle)
		case key.Matches(msg, m.keys.Square):
			m.choose(game.Square)
		case key.Matches(msg, m.keys.Triangle):
			m.choose(game.Triangle)
		case key.Matches(msg, m.keys.Retry):
			m.engine.Retry()
			m.keys.setOver(false)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *TUIModel) choose(symbol game.Symbol) {
	state, err := m.engine.Choose(symbol)
	if errors.Is(err, game.ErrGameOver) {
		m.logger.Debug("Ignoring stale input", "symbol", symbol)
	} else if err != nil {
		m.logger.Error("Choice rejected", "symbol", symbol, "error", err)
	}
	m.keys.setOver(state.Over())
}

// Quitting reports whether the user asked to leave
func (m *TUIModel) Quitting() bool {
	return m.quitting
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 {
		return "Loading..."
	}

	state := m.engine.State()

	var main strings.Builder
	main.WriteString(HeaderStyle.Render(fmt.Sprintf("ROUND %d", state.Round)))
	main.WriteString("\n\n")
	main.WriteString(m.renderGauges(state))
	main.WriteString("\n\n")
	main.WriteString(PromptStyle.Render("Pick a symbol"))
	main.WriteString("\n")
	main.WriteString(m.renderButtons(state))
	main.WriteString("\n")
	main.WriteString(m.renderResult(state))
	main.WriteString("\n")
	if state.Over() {
		main.WriteString(WarningStyle.Render("Retry?"))
		main.WriteString(InfoStyle.Render(" press r"))
	}
	main.WriteString("\n\n")
	main.WriteString(m.renderHistory(state))

	body := main.String()
	if m.stats != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, SidebarStyle.Render(m.renderSidebar()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys))
}

// renderGauges draws the two HP bars side by side
func (m *TUIModel) renderGauges(state game.State) string {
	player := fmt.Sprintf("%s\n%s %3d HP",
		LabelStyle.Render("PLAYER"),
		m.playerBar.ViewAs(float64(state.PlayerHP)/game.MaxHP),
		state.PlayerHP)
	opponent := fmt.Sprintf("%s\n%s %3d HP",
		LabelStyle.Render("OPPONENT"),
		m.opponentBar.ViewAs(float64(state.OpponentHP)/game.MaxHP),
		state.OpponentHP)

	return lipgloss.JoinHorizontal(lipgloss.Top, player, "    ", opponent)
}

// renderButtons draws the three symbol buttons, greyed out once the game is over
func (m *TUIModel) renderButtons(state game.State) string {
	bindings := []key.Binding{m.keys.Circle, m.keys.Square, m.keys.Triangle}
	buttons := make([]string, 0, len(game.Symbols))
	for i, sym := range game.Symbols {
		label := fmt.Sprintf("%s %s", bindings[i].Help().Key, GlyphFor(sym, false).Rune)
		if state.Over() {
			buttons = append(buttons, DisabledButtonStyle.Render(label))
			continue
		}
		buttons = append(buttons, ButtonStyle.BorderForeground(GlyphFor(sym, false).Color).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// renderResult shows the opponent's last pick alongside the message while the game runs
func (m *TUIModel) renderResult(state game.State) string {
	if state.Played() && state.Active {
		return fmt.Sprintf("Your opponent plays: %s %s",
			GlyphFor(state.LastOpponent, false).Render(),
			ResultStyle.Render(state.Message))
	}
	switch state.Message {
	case game.MessageGameOver:
		return ErrorStyle.Render(state.Message)
	case game.MessageWin, game.MessagePerfectWin:
		return SuccessStyle.Render(state.Message)
	}
	return ResultStyle.Render(state.Message)
}

// renderHistory renders the most recent entries for each side
func (m *TUIModel) renderHistory(state game.State) string {
	var content strings.Builder
	content.WriteString(LabelStyle.Render("History"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("%-10s%s\n", "Player:", renderGlyphs(HistoryGlyphs(state.PlayerHistory, m.historySize))))
	content.WriteString(fmt.Sprintf("%-10s%s", "Opponent:", renderGlyphs(HistoryGlyphs(state.OpponentHistory, m.historySize))))
	return content.String()
}

func renderGlyphs(glyphs []Glyph) string {
	parts := make([]string, len(glyphs))
	for i, g := range glyphs {
		parts[i] = g.Render()
	}
	return strings.Join(parts, " ")
}

// renderSidebar creates the session statistics content
func (m *TUIModel) renderSidebar() string {
	s := m.stats
	var content strings.Builder
	content.WriteString(InfoStyle.Render("Session"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("Games:   %d\n", s.Games))
	content.WriteString(fmt.Sprintf("Wins:    %d\n", s.Wins))
	content.WriteString(fmt.Sprintf("Losses:  %d\n", s.Losses))
	content.WriteString(fmt.Sprintf("Perfect: %d\n", s.PerfectWins))
	content.WriteString(fmt.Sprintf("Rounds:  %d", s.RoundsPlayed))
	return content.String()
}
