package core

import (
	"math"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		ax, ay   float64
		ar       float64
		bx, by   float64
		br       float64
		ratio    float64
		expected bool
	}{
		{"concentric", 0, 0, 10, 0, 0, 5, 1.0, true},
		{"touching (no overlap)", 0, 0, 10, 15, 0, 5, 1.0, false},
		{"just inside reach", 0, 0, 10, 14.9, 0, 5, 1.0, true},
		{"far apart", 0, 0, 10, 100, 0, 5, 1.0, false},
		{"shrunk pair misses", 0, 0, 10, 12, 0, 5, 0.7, false},
		{"shrunk pair hits", 0, 0, 10, 10, 0, 5, 0.7, true},
		{"diagonal", 0, 0, 10, 9, 9, 5, 1.0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CirclesOverlap(tc.ax, tc.ay, tc.ar, tc.bx, tc.by, tc.br, tc.ratio)
			if result != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := CirclesOverlap(tc.bx, tc.by, tc.br, tc.ax, tc.ay, tc.ar, tc.ratio)
			if resultReverse != tc.expected {
				t.Errorf("CirclesOverlap() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoundingRadius(t *testing.T) {
	tests := []struct {
		w, h, expected float64
	}{
		{6, 8, 5},  // 3-4-5 triangle doubled
		{10, 0, 5}, // degenerate flat box
		{0, 0, 0},
	}

	for _, tc := range tests {
		result := BoundingRadius(tc.w, tc.h)
		if math.Abs(result-tc.expected) > 1e-9 {
			t.Errorf("BoundingRadius(%v, %v) = %v, expected %v", tc.w, tc.h, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

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

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
