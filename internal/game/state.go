package game

const (
	// MaxHP is the starting and maximum health of each side
	MaxHP = 100
	// Damage is the HP lost by the losing side of a round
	Damage = 20
)

// Result messages shown after each transaction
const (
	MessageDraw        = "DRAW"
	MessageOpponentHit = "Opponent loses 20 HP"
	MessagePlayerHit   = "You lose 20 HP"
	MessageGameOver    = "GAME OVER."
	MessageWin         = "YOU WIN!"
	MessagePerfectWin  = "YOU WIN! PERFECT"
)

// DefaultHistoryShown is how many history entries per side the display shows
const DefaultHistoryShown = 3

// HistoryEntry records what one side played in one round and whether it won
type HistoryEntry struct {
	Symbol Symbol
	Won    bool
}

// State is a snapshot of a game session
type State struct {
	PlayerHP   int
	OpponentHP int
	Round      int
	Active     bool
	Message    string

	// LastPlayer and LastOpponent are NoSymbol until the first round resolves
	LastPlayer   Symbol
	LastOpponent Symbol

	PlayerHistory   []HistoryEntry
	OpponentHistory []HistoryEntry
}

// NewState returns the initial state of a fresh game
func NewState() State {
	return State{
		PlayerHP:        MaxHP,
		OpponentHP:      MaxHP,
		Round:           1,
		Active:          true,
		PlayerHistory:   []HistoryEntry{},
		OpponentHistory: []HistoryEntry{},
	}
}

// Over reports whether the game has ended
func (s State) Over() bool {
	return !s.Active
}

// Played reports whether at least one round has been resolved since the last reset
func (s State) Played() bool {
	return s.LastPlayer != NoSymbol
}

// Clone returns a deep copy so callers can't reach the engine's slices
func (s State) Clone() State {
	c := s
	c.PlayerHistory = append([]HistoryEntry{}, s.PlayerHistory...)
	c.OpponentHistory = append([]HistoryEntry{}, s.OpponentHistory...)
	return c
}

// Recent returns up to n of the latest entries, most recent first
func Recent(entries []HistoryEntry, n int) []HistoryEntry {
	if n <= 0 || len(entries) == 0 {
		return []HistoryEntry{}
	}
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]HistoryEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		out = append(out, entries[i])
	}
	return out
}

func clampHP(hp int) int {
	return max(0, min(MaxHP, hp))
}
