package tui

import (
	"strings"
	"testing"

	"github.com/ardentis/runeway/internal/core"
)

func TestRenderScreenKeepsCellRunes(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.SetCell(0, 0, '@', core.ColorBrightCyan)
	s.DrawTextColored(0, 1, "gems", core.ColorBrightYellow)

	out := RenderScreen(s)

	// Styling may be stripped in non-TTY environments; the runes and the
	// row structure must survive regardless.
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 rendered rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "@") {
		t.Errorf("Row 0 lost the player rune: %q", lines[0])
	}
	if !strings.Contains(lines[1], "gems") {
		t.Errorf("Row 1 lost its text: %q", lines[1])
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		d        float64
		expected string
	}{
		{0, "0"},
		{42.4, "42"},
		{999.4, "999"},
		{1000, "1.0k"},
		{2345, "2.3k"},
	}

	for _, tc := range tests {
		if got := formatDistance(tc.d); got != tc.expected {
			t.Errorf("formatDistance(%v) = %q, expected %q", tc.d, got, tc.expected)
		}
	}
}
