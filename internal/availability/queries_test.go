package availability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Cancelled and checked-out bookings release their room; every other status
// holds it. Both queries must carry that predicate and the half-open
// interval comparison.
func TestConflictQueryStatusMembership(t *testing.T) {
	assert.Contains(t, conflictQuery, "status NOT IN ('cancelled', 'checked_out')")
	assert.Contains(t, conflictQuery, "check_in_date < :check_out")
	assert.Contains(t, conflictQuery, ":check_in < check_out_date")
}

func TestAvailableRoomsQueryStatusMembership(t *testing.T) {
	assert.Contains(t, availableRoomsQuery, "b.status NOT IN ('cancelled', 'checked_out')")
	assert.Contains(t, availableRoomsQuery, "b.check_in_date < :check_out")
	assert.Contains(t, availableRoomsQuery, ":check_in < b.check_out_date")
	assert.Contains(t, availableRoomsQuery, "r.status = 'available'")
}

// The comparisons must be strict so back-to-back stays on the same room
// never count as a conflict.
func TestQueriesUseStrictComparisons(t *testing.T) {
	for _, q := range []string{conflictQuery, availableRoomsQuery} {
		assert.NotContains(t, q, "<= :check_out")
		assert.False(t, strings.Contains(q, ":check_in <="))
	}
}
