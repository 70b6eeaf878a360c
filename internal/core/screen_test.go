package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with default-colored spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("New screen not blank at (%d, %d): %+v", x, y, cell)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorBrightCyan)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorBrightCyan {
		t.Errorf("GetCell(5, 5).Color = %v, expected bright cyan", cell.Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return a default space
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear left %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Fatalf("Resize to (5, 5) produced (%d, %d)", s.Width(), s.Height())
	}
	if s.GetCell(2, 3).Rune != 'A' {
		t.Error("Content inside the new bounds lost on shrink")
	}

	s.Resize(20, 20)
	if s.GetCell(2, 3).Rune != 'A' {
		t.Error("Content lost on grow")
	}
	if s.GetCell(15, 15).Rune != ' ' {
		t.Error("Grown area not blank")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "hello")

	for i, r := range "hello" {
		if got := s.GetCell(2+i, 1).Rune; got != r {
			t.Errorf("Cell (%d, 1) = %q, expected %q", 2+i, got, r)
		}
	}

	// Clipping past the right edge must not panic
	s.DrawText(18, 0, "overflow")
	if s.GetCell(19, 0).Rune != 'v' {
		t.Errorf("Expected clipped text to reach the edge, got %q", s.GetCell(19, 0).Rune)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.GetCell(4, 1).Rune != 'a' {
		t.Errorf("Centered text starts at %q, expected 'a' at x=4", s.GetCell(4, 1).Rune)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4)

	if s.GetCell(1, 1).Rune != '┌' {
		t.Errorf("Top-left corner = %q", s.GetCell(1, 1).Rune)
	}
	if s.GetCell(5, 1).Rune != '┐' {
		t.Errorf("Top-right corner = %q", s.GetCell(5, 1).Rune)
	}
	if s.GetCell(1, 4).Rune != '└' {
		t.Errorf("Bottom-left corner = %q", s.GetCell(1, 4).Rune)
	}
	if s.GetCell(5, 4).Rune != '┘' {
		t.Errorf("Bottom-right corner = %q", s.GetCell(5, 4).Rune)
	}
	if s.GetCell(3, 1).Rune != '─' || s.GetCell(1, 2).Rune != '│' {
		t.Error("Box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("Line 0 = %q", lines[0])
	}
	if lines[1] != "  b" {
		t.Errorf("Line 1 = %q", lines[1])
	}
}
