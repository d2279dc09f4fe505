package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMostLikelyYear(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 2000},
		{12, 2012},
		{49, 2049},
		{50, 1950},
		{70, 1970},
		{99, 1999},
		{1987, 1987},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MostLikelyYear(tt.in), "year %d", tt.in)
	}
}

func TestYearClosestToRef(t *testing.T) {
	// Late December: an early-January date reads as next year.
	ref := day(2024, 12, 28)
	assert.Equal(t, 2025, YearClosestToRef(ref, 3, time.January))
	assert.Equal(t, 2024, YearClosestToRef(ref, 20, time.December))

	// Early January: a late-December date reads as last year.
	ref = day(2025, 1, 4)
	assert.Equal(t, 2024, YearClosestToRef(ref, 28, time.December))
	assert.Equal(t, 2025, YearClosestToRef(ref, 10, time.January))

	// Mid-year dates stay in the reference year.
	ref = day(2025, 6, 15)
	assert.Equal(t, 2025, YearClosestToRef(ref, 1, time.March))
	assert.Equal(t, 2025, YearClosestToRef(ref, 30, time.November))
}
