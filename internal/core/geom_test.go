package core

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
	}{
		{"same point", Point{100, 100}, Point{100, 100}, 0},
		{"horizontal", Point{100, 100}, Point{200, 100}, 100},
		{"vertical", Point{50, 10}, Point{50, 40}, 30},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Dist(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestStepToward(t *testing.T) {
	// Movement is capped: a far target must not be reached in one step.
	got := StepToward(Point{100, 100}, Point{200, 100}, 20)
	if math.Abs(got.X-120) > 1e-9 || math.Abs(got.Y-100) > 1e-9 {
		t.Errorf("StepToward cap: got %v, expected (120, 100)", got)
	}

	// A near target is reached exactly, no overshoot.
	got = StepToward(Point{100, 100}, Point{105, 100}, 20)
	if got != (Point{105, 100}) {
		t.Errorf("StepToward near target: got %v, expected (105, 100)", got)
	}

	// Step magnitude never exceeds the cap for diagonal moves.
	from := Point{0, 0}
	got = StepToward(from, Point{300, 400}, 10)
	if d := Dist(from, got); d > 10+1e-9 {
		t.Errorf("StepToward moved %v, cap was 10", d)
	}

	// Zero cap is a no-op.
	got = StepToward(Point{7, 7}, Point{100, 100}, 0)
	if got != (Point{7, 7}) {
		t.Errorf("StepToward with zero cap moved to %v", got)
	}
}

func TestClampPoint(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected Point
	}{
		{"inside", Point{100, 100}, Point{100, 100}},
		{"negative", Point{-5, -20}, Point{0, 0}},
		{"overflow", Point{700, 500}, Point{639, 479}},
		{"mixed", Point{-1, 300}, Point{0, 300}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampPoint(tc.p, 640, 480)
			if got != tc.expected {
				t.Errorf("ClampPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min broken")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max broken")
	}
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs broken")
	}
}
