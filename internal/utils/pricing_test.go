package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int64
	}{
		{"One full day", day(0), day(1), 1},
		{"Three full days", day(0), day(3), 3},
		{"Partial day rounds up", day(0), day(1).Add(12 * time.Hour), 2},
		{"One hour rounds up to a day", day(0), day(0).Add(time.Hour), 1},
		{"One millisecond rounds up to a day", day(0), day(0).Add(time.Millisecond), 1},
		{"Exactly seven days", day(0), day(7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RentalDays(tt.start, tt.end))
		})
	}
}

func TestRentalDays_NonPositiveRange(t *testing.T) {
	assert.Equal(t, int64(0), RentalDays(day(1), day(1)))
	assert.Equal(t, int64(0), RentalDays(day(2), day(1)))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, int64(200), TotalPrice(2, 100))
	assert.Equal(t, int64(0), TotalPrice(0, 100))
	assert.Equal(t, int64(300000), TotalPrice(3, 100000))
}

func TestSplitProfit(t *testing.T) {
	t.Run("Five percent platform fee", func(t *testing.T) {
		owner, platform := SplitProfit(300000, 5)
		assert.Equal(t, int64(285000), owner)
		assert.Equal(t, int64(15000), platform)
	})

	t.Run("Shares always sum to total", func(t *testing.T) {
		for _, total := range []int64{0, 1, 99, 100, 101, 12345, 7_000_003} {
			owner, platform := SplitProfit(total, 5)
			assert.Equal(t, total, owner+platform, "total %d", total)
			assert.GreaterOrEqual(t, platform, int64(0))
			assert.GreaterOrEqual(t, owner, platform)
		}
	})

	t.Run("Truncation favors owner", func(t *testing.T) {
		owner, platform := SplitProfit(101, 5)
		assert.Equal(t, int64(5), platform)
		assert.Equal(t, int64(96), owner)
	})
}
