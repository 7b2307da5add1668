package berth

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocate_CountMatchesSeats(t *testing.T) {
	for _, seats := range []int{1, 2, 6} {
		allocations := Allocate("SL", seats)
		assert.Len(t, allocations, seats)
	}
}

func TestAllocate_CoachPrefixes(t *testing.T) {
	testCases := []struct {
		className string
		prefix    string
	}{
		{"AC1", "A"},
		{"AC2", "B"},
		{"AC3", "C"},
		{"SL", "S"},
		{"GN", "G"},
		{"AC Chair Car", "CC"},
		{"Executive", "E"},
		{"Unknown Class", "X"},
	}

	for _, tc := range testCases {
		t.Run(tc.className, func(t *testing.T) {
			allocations := Allocate(tc.className, 5)
			for _, a := range allocations {
				assert.True(t, strings.HasPrefix(a.Coach, tc.prefix), "coach %q should start with %q", a.Coach, tc.prefix)

				coachNum, err := strconv.Atoi(strings.TrimPrefix(a.Coach, tc.prefix))
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, coachNum, 1)
				assert.LessOrEqual(t, coachNum, 10)

				berthNum, err := strconv.Atoi(a.Berth)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, berthNum, 1)
				assert.LessOrEqual(t, berthNum, 72)
			}
		})
	}
}

func TestAllocate_BerthTypes(t *testing.T) {
	typed := map[string]bool{}
	for _, bt := range berthTypes {
		typed[bt] = true
	}

	for _, className := range []string{"AC2", "AC3", "SL"} {
		for _, a := range Allocate(className, 10) {
			assert.True(t, typed[a.Type], "sleeper class %s got type %q", className, a.Type)
		}
	}

	for _, className := range []string{"AC1", "GN", "AC Chair Car", "Executive", "Unknown Class"} {
		for _, a := range Allocate(className, 10) {
			assert.Equal(t, "Seat", a.Type)
		}
	}
}

func TestAllocate_ZeroSeats(t *testing.T) {
	assert.Empty(t, Allocate("SL", 0))
}
