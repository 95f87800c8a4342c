package availability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Satyam7Parsad/hotel-management-system/internal/availability"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	// the booking everyone in these cases queries against
	bookedStart := date(2026, time.March, 1)
	bookedEnd := date(2026, time.March, 5)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "adjacent after: checkout day equals existing check-in is no conflict",
			start: date(2026, time.March, 5),
			end:   date(2026, time.March, 6),
			want:  false,
		},
		{
			name:  "adjacent before: requested checkout equals existing check-in",
			start: date(2026, time.February, 25),
			end:   date(2026, time.March, 1),
			want:  false,
		},
		{
			name:  "overlapping tail",
			start: date(2026, time.March, 4),
			end:   date(2026, time.March, 10),
			want:  true,
		},
		{
			name:  "overlapping head",
			start: date(2026, time.February, 27),
			end:   date(2026, time.March, 2),
			want:  true,
		},
		{
			name:  "fully contained",
			start: date(2026, time.March, 2),
			end:   date(2026, time.March, 3),
			want:  true,
		},
		{
			name:  "fully containing",
			start: date(2026, time.February, 1),
			end:   date(2026, time.April, 1),
			want:  true,
		},
		{
			name:  "identical interval",
			start: bookedStart,
			end:   bookedEnd,
			want:  true,
		},
		{
			name:  "disjoint before",
			start: date(2026, time.January, 1),
			end:   date(2026, time.January, 5),
			want:  false,
		},
		{
			name:  "disjoint after",
			start: date(2026, time.March, 10),
			end:   date(2026, time.March, 12),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.Overlaps(bookedStart, bookedEnd, tt.start, tt.end)
			assert.Equal(t, tt.want, got)

			// symmetry: conflict does not depend on argument order
			assert.Equal(t, tt.want, availability.Overlaps(tt.start, tt.end, bookedStart, bookedEnd))
		})
	}
}

func TestOverlaps_SingleNight(t *testing.T) {
	// two one-night stays on consecutive nights never conflict
	assert.False(t, availability.Overlaps(
		date(2026, time.March, 1), date(2026, time.March, 2),
		date(2026, time.March, 2), date(2026, time.March, 3),
	))

	// the same night conflicts
	assert.True(t, availability.Overlaps(
		date(2026, time.March, 1), date(2026, time.March, 2),
		date(2026, time.March, 1), date(2026, time.March, 2),
	))
}
