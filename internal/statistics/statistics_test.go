package statistics

import (
	"math"
	"testing"

	"github.com/lox/shapeduel/internal/game"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.WinRate() != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate())
	}
	if stats.MeanRounds() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.MeanRounds())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.MedianRounds() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.MedianRounds())
	}
	if stats.PickShare(game.Circle) != 0 {
		t.Errorf("Expected pick share of 0 for empty stats, got %f", stats.PickShare(game.Circle))
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Empty stats should validate, got %v", err)
	}
}

func TestStatistics_Games(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Won: true, Perfect: true, Rounds: 5})
	stats.Add(GameResult{Won: true, Rounds: 9})
	stats.Add(GameResult{Won: false, Rounds: 7})

	if stats.Games != 3 || stats.Wins != 2 || stats.Losses != 1 || stats.PerfectWins != 1 {
		t.Errorf("Unexpected tallies: %+v", stats)
	}
	if math.Abs(stats.WinRate()-2.0/3.0) > 1e-9 {
		t.Errorf("Expected win rate 2/3, got %f", stats.WinRate())
	}
	if stats.MeanRounds() != 7 {
		t.Errorf("Expected mean of 7, got %f", stats.MeanRounds())
	}
	if stats.Variance() != 4 {
		t.Errorf("Expected variance of 4, got %f", stats.Variance())
	}
	if stats.StdDev() != 2 {
		t.Errorf("Expected stddev of 2, got %f", stats.StdDev())
	}
	if stats.MedianRounds() != 7 {
		t.Errorf("Expected median of 7, got %f", stats.MedianRounds())
	}
}

func TestStatistics_FromEngineEvents(t *testing.T) {
	stats := &Statistics{}
	engine := game.NewEngine(game.WithOpponent(game.NewScriptedOpponent(game.Triangle, game.Circle)))
	engine.GetEventBus().Subscribe(stats)

	// circle vs triangle wins, circle vs circle draws; five wins needed
	for i := 0; i < 9; i++ {
		if _, err := engine.Choose(game.Circle); err != nil {
			t.Fatalf("round %d: %v", i+1, err)
		}
	}

	if stats.Games != 1 || stats.Wins != 1 || stats.PerfectWins != 1 {
		t.Errorf("Expected one perfect win, got %+v", stats)
	}
	if stats.RoundsPlayed != 9 || stats.RoundWins != 5 || stats.RoundDraws != 4 {
		t.Errorf("Unexpected round tallies: %+v", stats)
	}
	if stats.PlayerPicks[game.Circle] != 9 {
		t.Errorf("Expected 9 circle picks, got %d", stats.PlayerPicks[game.Circle])
	}
	if stats.OpponentPicks[game.Triangle] != 5 || stats.OpponentPicks[game.Circle] != 4 {
		t.Errorf("Unexpected opponent picks: %v", stats.OpponentPicks)
	}
	if stats.Lengths[0] != 9 {
		t.Errorf("Expected game length 9, got %d", stats.Lengths[0])
	}
	if stats.PickShare(game.Circle) != 1 {
		t.Errorf("Expected circle share of 1, got %f", stats.PickShare(game.Circle))
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Stats should validate: %v", err)
	}

	// retry mid-game leaves rounds without a game
	engine.Retry()
	if _, err := engine.Choose(game.Square); err != nil {
		t.Fatal(err)
	}
	engine.Retry()
	if stats.Games != 1 || stats.RoundsPlayed != 10 {
		t.Errorf("Abandoned game should only add a round: %+v", stats)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Stats should validate after abandoned game: %v", err)
	}
}

func TestStatistics_Merge(t *testing.T) {
	a := &Statistics{}
	a.AddRound(game.Circle, game.Square, game.OpponentWins)
	a.Add(GameResult{Won: false, Rounds: 1})

	b := &Statistics{}
	b.AddRound(game.Triangle, game.Square, game.PlayerWins)
	b.Add(GameResult{Won: true, Rounds: 1})

	a.Merge(b)
	if a.Games != 2 || a.Wins != 1 || a.Losses != 1 || a.RoundsPlayed != 2 {
		t.Errorf("Unexpected merged tallies: %+v", a)
	}
	if a.OpponentPicks[game.Square] != 2 {
		t.Errorf("Expected 2 square picks for opponent, got %d", a.OpponentPicks[game.Square])
	}
	if len(a.Lengths) != 2 {
		t.Errorf("Expected 2 lengths, got %d", len(a.Lengths))
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Merged stats should validate: %v", err)
	}
}

func TestStatistics_ValidateCatchesMismatch(t *testing.T) {
	tests := []struct {
		name  string
		stats Statistics
	}{
		{"wins without games", Statistics{Wins: 1}},
		{"perfect exceeds wins", Statistics{Games: 1, Wins: 1, PerfectWins: 2, Lengths: []int{5}}},
		{"rounds mismatch", Statistics{RoundsPlayed: 2, RoundWins: 1}},
		{"picks mismatch", Statistics{RoundsPlayed: 1, RoundDraws: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.stats.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
