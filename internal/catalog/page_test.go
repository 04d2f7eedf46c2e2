package catalog

import (
	"math/rand"
	"testing"
)

func TestFixedPage(t *testing.T) {
	tests := []struct {
		page     FixedPage
		expected int
	}{
		{2, 2},
		{1, 1},
		{0, MinPage},
		{-4, MinPage},
	}

	for _, tt := range tests {
		if got := tt.page.Next(); got != tt.expected {
			t.Errorf("FixedPage(%d).Next() = %d, expected %d", tt.page, got, tt.expected)
		}
	}
}

func TestRandomPage_StaysInBounds(t *testing.T) {
	policy := RandomPage(1, 5, rand.NewSource(42))
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		p := policy.Next()
		if p < 1 || p > 5 {
			t.Fatalf("Next() = %d, outside [1, 5]", p)
		}
		seen[p] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected every page in range to be drawn, got %v", seen)
	}
}

func TestRandomPage_ClampsBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		expected int
	}{
		{"zero lower bound", 0, 1, 1},
		{"inverted range", 3, 2, 3},
		{"single page", 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := RandomPage(tt.min, tt.max, rand.NewSource(1))
			for i := 0; i < 20; i++ {
				if got := policy.Next(); got != tt.expected {
					t.Fatalf("Next() = %d, expected %d", got, tt.expected)
				}
			}
		})
	}
}

func TestRandomPage_NilSource(t *testing.T) {
	policy := RandomPage(1, 3, nil)
	if p := policy.Next(); p < 1 || p > 3 {
		t.Errorf("Next() = %d, outside [1, 3]", p)
	}
}
