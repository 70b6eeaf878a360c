package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.5, 0, 1, 0},
		{1.5, 0, 1, 1},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsF(t *testing.T) {
	if AbsF(-3.5) != 3.5 {
		t.Errorf("AbsF(-3.5) = %v, expected 3.5", AbsF(-3.5))
	}
	if AbsF(3.5) != 3.5 {
		t.Errorf("AbsF(3.5) = %v, expected 3.5", AbsF(3.5))
	}
	if AbsF(0) != 0 {
		t.Errorf("AbsF(0) = %v, expected 0", AbsF(0))
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 10, 0, 0},    // at start
		{0, 10, 1, 10},   // at end
		{0, 10, 0.5, 5},  // midpoint
		{0, 10, 1.5, 10}, // t clamped above
		{0, 10, -0.5, 0}, // t clamped below
		{10, 0, 0.5, 5},  // reversed endpoints
	}

	for _, tc := range tests {
		result := Lerp(tc.a, tc.b, tc.t)
		if result != tc.expected {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v",
				tc.a, tc.b, tc.t, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min returned the larger value")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max returned the smaller value")
	}
}
