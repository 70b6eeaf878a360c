package sim

import "testing"

func TestTargetWordsGrow(t *testing.T) {
	prev := 0
	for level := 1; level <= 3; level++ {
		target := TargetForLevel(level)
		if target.Len() <= prev {
			t.Errorf("Level %d word %q not longer than the previous one", level, target.Word())
		}
		prev = target.Len()
	}
}

func TestTargetBeyondRangeReusesLastWord(t *testing.T) {
	last := TargetForLevel(3)
	beyond := TargetForLevel(99)
	if beyond.Word() != last.Word() {
		t.Errorf("Level 99 word %q, want %q", beyond.Word(), last.Word())
	}
}

func TestTargetSlotsMatchWord(t *testing.T) {
	target := TargetForLevel(2)
	word := []rune(target.Word())
	for i := 0; i < target.Len(); i++ {
		if target.Glyph(i) != word[i] {
			t.Errorf("Slot %d glyph %q, want %q", i, target.Glyph(i), word[i])
		}
	}
}

func TestAdjacentSlotColorsDiffer(t *testing.T) {
	target := TargetForLevel(3)
	for i := 1; i < target.Len(); i++ {
		if target.Color(i) == target.Color(i-1) {
			t.Errorf("Slots %d and %d share a color", i-1, i)
		}
	}
}
