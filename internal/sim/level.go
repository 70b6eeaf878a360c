package sim

import "github.com/ardentis/runeway/internal/core"

// Target is the ordered sequence of characters a level asks the player to
// collect, with a display color per slot. The simulation depends only on
// its length and per-index identity.
type Target struct {
	word   []rune
	colors []core.Color
}

// targetPalette cycles across letter slots so adjacent letters differ.
var targetPalette = []core.Color{
	core.ColorBrightCyan,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightGreen,
	core.ColorOrange,
	core.ColorBrightRed,
}

var targetWords = map[int]string{
	1: "RUN",
	2: "SPRINT",
	3: "RUNEWAY",
}

// TargetForLevel returns the target word for a level (1-based). Levels
// beyond the configured range reuse the last word.
func TargetForLevel(level int) Target {
	word, ok := targetWords[level]
	if !ok {
		word = targetWords[len(targetWords)]
	}

	runes := []rune(word)
	colors := make([]core.Color, len(runes))
	for i := range runes {
		colors[i] = targetPalette[i%len(targetPalette)]
	}
	return Target{word: runes, colors: colors}
}

// Len returns the number of characters in the target word.
func (t Target) Len() int {
	return len(t.word)
}

// Glyph returns the character at the given slot.
func (t Target) Glyph(i int) rune {
	return t.word[i]
}

// Color returns the display color of the given slot.
func (t Target) Color(i int) core.Color {
	return t.colors[i]
}

// Word returns the full target word as a string.
func (t Target) Word() string {
	return string(t.word)
}
