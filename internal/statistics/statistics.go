package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/shapeduel/internal/game"
)

// GameResult represents the outcome of one finished game
type GameResult struct {
	Won     bool
	Perfect bool // won without losing any HP
	Rounds  int  // rounds played, as shown on the final screen
}

// Statistics tallies games and rounds across a session.
// It is not safe for concurrent use; simulation workers keep one each and Merge.
type Statistics struct {
	Games       int
	Wins        int
	Losses      int
	PerfectWins int

	RoundsPlayed int
	RoundWins    int
	RoundLosses  int
	RoundDraws   int

	// Pick counts indexed by game.Symbol, index 0 unused
	PlayerPicks   [4]int
	OpponentPicks [4]int

	SumRounds  float64
	SumRounds2 float64 // Sum of squares for variance calculation
	Lengths    []int   // Rounds per finished game, for median
}

// Add incorporates a finished game
func (s *Statistics) Add(result GameResult) {
	s.Games++
	if result.Won {
		s.Wins++
		if result.Perfect {
			s.PerfectWins++
		}
	} else {
		s.Losses++
	}

	r := float64(result.Rounds)
	s.SumRounds += r
	s.SumRounds2 += r * r
	s.Lengths = append(s.Lengths, result.Rounds)
}

// AddRound incorporates a single resolved round
func (s *Statistics) AddRound(player, opponent game.Symbol, outcome game.Outcome) {
	s.RoundsPlayed++
	switch outcome {
	case game.PlayerWins:
		s.RoundWins++
	case game.OpponentWins:
		s.RoundLosses++
	default:
		s.RoundDraws++
	}
	if player.Valid() {
		s.PlayerPicks[player]++
	}
	if opponent.Valid() {
		s.OpponentPicks[opponent]++
	}
}

// OnEvent feeds the statistics straight from an engine's event bus
func (s *Statistics) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundResolvedEvent:
		s.AddRound(e.Player, e.Opponent, e.Outcome)
	case game.GameOverEvent:
		s.Add(GameResult{
			Won:     e.Winner == game.PlayerWins,
			Perfect: e.Perfect,
			Rounds:  e.Rounds,
		})
	}
}

// Merge adds other's tallies into s
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.PerfectWins += other.PerfectWins
	s.RoundsPlayed += other.RoundsPlayed
	s.RoundWins += other.RoundWins
	s.RoundLosses += other.RoundLosses
	s.RoundDraws += other.RoundDraws
	for i := range s.PlayerPicks {
		s.PlayerPicks[i] += other.PlayerPicks[i]
		s.OpponentPicks[i] += other.OpponentPicks[i]
	}
	s.SumRounds += other.SumRounds
	s.SumRounds2 += other.SumRounds2
	s.Lengths = append(s.Lengths, other.Lengths...)
}

// WinRate returns the fraction of finished games the player won
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// PickShare returns the fraction of rounds in which the player chose sym
func (s *Statistics) PickShare(sym game.Symbol) float64 {
	if s.RoundsPlayed == 0 || !sym.Valid() {
		return 0
	}
	return float64(s.PlayerPicks[sym]) / float64(s.RoundsPlayed)
}

// MeanRounds returns the mean game length in rounds
func (s *Statistics) MeanRounds() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Games)
}

// Variance returns the sample variance of game length
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanRounds()
	return (s.SumRounds2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of game length
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// MedianRounds returns the median game length
func (s *Statistics) MedianRounds() float64 {
	if len(s.Lengths) == 0 {
		return 0
	}
	sorted := make([]int, len(s.Lengths))
	copy(sorted, s.Lengths)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

// Validate checks that the tallies are consistent with each other
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses != s.Games {
		return fmt.Errorf("wins (%d) + losses (%d) does not match games (%d)", s.Wins, s.Losses, s.Games)
	}
	if s.PerfectWins > s.Wins {
		return fmt.Errorf("perfect wins (%d) exceed wins (%d)", s.PerfectWins, s.Wins)
	}
	if s.RoundWins+s.RoundLosses+s.RoundDraws != s.RoundsPlayed {
		return fmt.Errorf("round outcomes (%d/%d/%d) do not add up to rounds played (%d)",
			s.RoundWins, s.RoundLosses, s.RoundDraws, s.RoundsPlayed)
	}
	if len(s.Lengths) != s.Games {
		return fmt.Errorf("lengths array (%d) does not match games (%d)", len(s.Lengths), s.Games)
	}

	var player, opponent int
	for _, sym := range game.Symbols {
		player += s.PlayerPicks[sym]
		opponent += s.OpponentPicks[sym]
	}
	if player != s.RoundsPlayed || opponent != s.RoundsPlayed {
		return fmt.Errorf("pick counts (%d player, %d opponent) do not match rounds played (%d)",
			player, opponent, s.RoundsPlayed)
	}

	// Abandoned games contribute rounds but no length
	if s.SumRounds > float64(s.RoundsPlayed) {
		return fmt.Errorf("game lengths (%.0f) exceed rounds played (%d)", s.SumRounds, s.RoundsPlayed)
	}
	return nil
}
