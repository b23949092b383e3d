package core

import "testing"

func TestRectContains(t *testing.T) {
	// A three-cell key such as " Q " on row 7
	key := NewRect(12, 7, 3, 1)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"first cell", 12, 7, true},
		{"last cell", 14, 7, true},
		{"gap after key", 15, 7, false},
		{"before key", 11, 7, false},
		{"row above", 13, 6, false},
		{"row below", 13, 8, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := key.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	r := NewRect(4, 4, 0, 1)
	if r.Contains(4, 4) {
		t.Error("zero-width rect should contain nothing")
	}
}
