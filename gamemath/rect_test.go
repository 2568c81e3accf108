package gamemath

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{5, 5, 10, 10},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{15, 0, 10, 10},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{0, 15, 10, 10},
			expected: false,
		},
		{
			name:     "touching edge",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{10, 0, 10, 10},
			expected: false,
		},
		{
			name:     "standing exactly on top",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{0, 10, 40, 5},
			expected: false,
		},
		{
			name:     "sunk a fraction into platform",
			a:        Rect{0, 0.3, 10, 10},
			b:        Rect{0, 10, 40, 5},
			expected: true,
		},
		{
			name:     "contained",
			a:        Rect{0, 0, 20, 20},
			b:        Rect{5, 5, 5, 5},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 0, -3, 0}, // inverted range collapses to lo
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestCameraAxis(t *testing.T) {
	tests := []struct {
		name                string
		target, view, world float64
		want                int
	}{
		{"centered", 2000, 800, 4000, 1600},
		{"floors fraction", 2000.7, 801, 4000, 1600},
		{"clamped left", 100, 800, 4000, 0},
		{"clamped right", 3900, 800, 4000, 3200},
		{"world smaller than view", 300, 800, 500, 0},
		{"world equal to view", 600, 500, 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CameraAxis(tt.target, tt.view, tt.world)
			if got != tt.want {
				t.Errorf("CameraAxis(%v, %v, %v) = %d, want %d", tt.target, tt.view, tt.world, got, tt.want)
			}
			if limit := tt.world - tt.view; got < 0 || (limit > 0 && float64(got) > limit) {
				t.Errorf("CameraAxis out of bounds: %d", got)
			}
		})
	}
}
