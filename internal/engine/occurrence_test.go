package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/priroda-razuma/internal/engine"
)

// TestNextOccurrence covers year boundaries and leap days.
func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name  string
		birth [3]int
		today [3]int
		want  [3]int
	}{
		{"Passed this year", [3]int{1990, 1, 1}, [3]int{2025, 6, 15}, [3]int{2026, 1, 1}},
		{"Later this year", [3]int{1990, 12, 31}, [3]int{2025, 6, 15}, [3]int{2025, 12, 31}},
		{"Today", [3]int{1990, 6, 15}, [3]int{2025, 6, 15}, [3]int{2025, 6, 15}},
		{"Yesterday", [3]int{1990, 6, 14}, [3]int{2025, 6, 15}, [3]int{2026, 6, 14}},
		{"New Year's Eve", [3]int{2010, 1, 1}, [3]int{2025, 12, 31}, [3]int{2026, 1, 1}},
		{"Leap day in a common year", [3]int{2000, 2, 29}, [3]int{2025, 6, 15}, [3]int{2026, 2, 28}},
		{"Leap day in a leap year", [3]int{2000, 2, 29}, [3]int{2024, 1, 1}, [3]int{2024, 2, 29}},
		{"Leap day passed before a leap year", [3]int{2000, 2, 29}, [3]int{2027, 3, 1}, [3]int{2028, 2, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.NextOccurrence(d(tt.birth[0], tt.birth[1], tt.birth[2]), d(tt.today[0], tt.today[1], tt.today[2]))
			assert.Equal(t, d(tt.want[0], tt.want[1], tt.want[2]), got)
		})
	}
}
