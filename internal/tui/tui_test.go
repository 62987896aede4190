package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/shapeduel/internal/game"
	"github.com/lox/shapeduel/internal/statistics"
)

func newTestModel(t *testing.T, opponent ...game.Symbol) (*TUIModel, *game.Engine) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	engine := game.NewEngine(game.WithOpponent(game.NewScriptedOpponent(opponent...)))
	m := NewTUIModel(engine, Options{Logger: logger})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, engine
}

func press(m *TUIModel, keys string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return cmd
}

func TestTUIChoose(t *testing.T) {
	t.Run("number keys play symbols", func(t *testing.T) {
		m, engine := newTestModel(t, game.Triangle)

		press(m, "1")
		s := engine.State()
		assert.Equal(t, game.Circle, s.LastPlayer)
		assert.Equal(t, 2, s.Round)
		assert.Equal(t, 80, s.OpponentHP)

		press(m, "2")
		assert.Equal(t, game.Square, engine.State().LastPlayer)

		press(m, "3")
		assert.Equal(t, game.Triangle, engine.State().LastPlayer)
		assert.Equal(t, 4, engine.State().Round)
	})

	t.Run("letter keys play symbols", func(t *testing.T) {
		m, engine := newTestModel(t, game.Circle)

		press(m, "t")
		assert.Equal(t, game.Triangle, engine.State().LastPlayer)
		press(m, "s")
		assert.Equal(t, game.Square, engine.State().LastPlayer)
		press(m, "c")
		assert.Equal(t, game.Circle, engine.State().LastPlayer)
	})

	t.Run("other keys are ignored", func(t *testing.T) {
		m, engine := newTestModel(t, game.Circle)

		press(m, "x")
		press(m, "r")
		assert.Equal(t, game.NewState(), engine.State())
	})
}

func TestTUIGameOverAndRetry(t *testing.T) {
	m, engine := newTestModel(t, game.Square)

	for i := 0; i < 5; i++ {
		press(m, "1")
	}
	over := engine.State()
	require.True(t, over.Over())
	assert.Equal(t, game.MessageGameOver, over.Message)

	// symbol keys are dead while the game is over
	press(m, "1")
	press(m, "3")
	assert.Equal(t, over, engine.State())

	view := m.View()
	assert.Contains(t, view, "GAME OVER.")
	assert.Contains(t, view, "Retry?")
	assert.NotContains(t, view, "Your opponent plays")

	press(m, "r")
	assert.Equal(t, game.NewState(), engine.State())
	assert.NotContains(t, m.View(), "Retry?")

	press(m, "1")
	assert.Equal(t, 2, engine.State().Round)
}

func TestTUIView(t *testing.T) {
	t.Run("loading before size is known", func(t *testing.T) {
		engine := game.NewEngine(game.WithOpponent(game.NewScriptedOpponent(game.Circle)))
		m := NewTUIModel(engine, Options{})
		assert.Equal(t, "Loading...", m.View())
	})

	t.Run("initial screen", func(t *testing.T) {
		m, _ := newTestModel(t, game.Circle)
		view := m.View()

		assert.Contains(t, view, "ROUND 1")
		assert.Contains(t, view, "PLAYER")
		assert.Contains(t, view, "OPPONENT")
		assert.Contains(t, view, "100 HP")
		assert.Contains(t, view, "Pick a symbol")
		assert.Contains(t, view, "History")
		assert.NotContains(t, view, "Your opponent plays")
		assert.NotContains(t, view, "Retry?")
	})

	t.Run("after a round", func(t *testing.T) {
		m, _ := newTestModel(t, game.Square)
		press(m, "1")
		view := m.View()

		assert.Contains(t, view, "ROUND 2")
		assert.Contains(t, view, "Your opponent plays: □ You lose 20 HP")
		assert.Contains(t, view, " 80 HP")
	})

	t.Run("history shows last three, newest first, winner filled", func(t *testing.T) {
		m, _ := newTestModel(t, game.Triangle, game.Square, game.Circle, game.Triangle)
		for i := 0; i < 4; i++ {
			press(m, "1")
		}
		view := m.View()

		// rounds: win, loss, draw, win -> newest first: win, draw, loss
		assert.Contains(t, view, "Player:   ● ○ ○")
		assert.Contains(t, view, "Opponent: △ ○ ■")
	})

	t.Run("perfect win message", func(t *testing.T) {
		m, _ := newTestModel(t, game.Triangle)
		for i := 0; i < 5; i++ {
			press(m, "1")
		}
		view := m.View()
		assert.Contains(t, view, "YOU WIN! PERFECT")
		assert.Contains(t, view, "ROUND 5")
	})
}

func TestTUIStatsSidebar(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	stats := &statistics.Statistics{}
	engine := game.NewEngine(game.WithOpponent(game.NewScriptedOpponent(game.Triangle)))
	engine.GetEventBus().Subscribe(stats)

	m := NewTUIModel(engine, Options{Stats: stats, Logger: logger})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	for i := 0; i < 5; i++ {
		press(m, "c")
	}

	view := m.View()
	assert.Contains(t, view, "Session")
	assert.Contains(t, view, "Wins:    1")
	assert.Contains(t, view, "Perfect: 1")
	assert.Contains(t, view, "Rounds:  5")
}

func TestTUIQuit(t *testing.T) {
	tests := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}

	for _, msg := range tests {
		t.Run(msg.String(), func(t *testing.T) {
			m, _ := newTestModel(t, game.Circle)
			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.Quitting())
			assert.Empty(t, m.View())
		})
	}
}

func TestTUIHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, game.Circle)

	assert.False(t, m.help.ShowAll)
	press(m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "help")
}
