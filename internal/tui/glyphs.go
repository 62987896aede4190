package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/shapeduel/internal/game"
)

// Glyph describes how one history entry or button is drawn
type Glyph struct {
	Rune  string
	Color lipgloss.Color
}

// Render draws the glyph in its colour
func (g Glyph) Render() string {
	return lipgloss.NewStyle().Foreground(g.Color).Render(g.Rune)
}

type glyphKey struct {
	symbol game.Symbol
	won    bool
}

// symbolColors maps game.Symbol.Color names to terminal colours
var symbolColors = map[string]lipgloss.Color{
	"red":   lipgloss.Color("#FF6B6B"),
	"green": lipgloss.Color("#04B575"),
	"blue":  lipgloss.Color("#4D96FF"),
}

// Outline glyphs for plain entries, filled ones for the side that won the round
var glyphs = map[glyphKey]Glyph{
	{game.Circle, false}:   {Rune: "○", Color: symbolColors["red"]},
	{game.Circle, true}:    {Rune: "●", Color: symbolColors["red"]},
	{game.Square, false}:   {Rune: "□", Color: symbolColors["green"]},
	{game.Square, true}:    {Rune: "■", Color: symbolColors["green"]},
	{game.Triangle, false}: {Rune: "△", Color: symbolColors["blue"]},
	{game.Triangle, true}:  {Rune: "▲", Color: symbolColors["blue"]},
}

// GlyphFor looks up the display descriptor for a symbol
func GlyphFor(symbol game.Symbol, won bool) Glyph {
	if g, ok := glyphs[glyphKey{symbol, won}]; ok {
		return g
	}
	return Glyph{Rune: "?", Color: lipgloss.Color("#626262")}
}

// HistoryGlyphs returns the glyphs for the last n entries, most recent first
func HistoryGlyphs(entries []game.HistoryEntry, n int) []Glyph {
	recent := game.Recent(entries, n)
	out := make([]Glyph, len(recent))
	for i, e := range recent {
		out[i] = GlyphFor(e.Symbol, e.Won)
	}
	return out
}
