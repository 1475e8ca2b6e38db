package wavefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionCoversAllPairsOnce(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		lanes int
	}{
		{"SmallFewLanes", 4, 2},
		{"SmallManyLanes", 4, 16},
		{"MediumEvenLanes", 10, 4},
		{"MediumOddLanes", 11, 3},
		{"OneLane", 8, 1},
		{"Pair", 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lanes := Partition(tt.n, tt.lanes)
			require.Len(t, lanes, tt.lanes)

			seen := make(map[Pair]bool)
			for _, lane := range lanes {
				for _, p := range lane {
					assert.Less(t, p.I, p.J)
					assert.GreaterOrEqual(t, p.I, 0)
					assert.Less(t, p.J, tt.n)
					assert.False(t, seen[p], "pair %v assigned twice", p)
					seen[p] = true
				}
			}

			assert.Len(t, seen, tt.n*(tt.n-1)/2)
		})
	}
}

func TestPartitionBalance(t *testing.T) {
	lanes := Partition(32, 5)

	minLen, maxLen := len(lanes[0]), len(lanes[0])
	for _, lane := range lanes[1:] {
		if len(lane) < minLen {
			minLen = len(lane)
		}
		if len(lane) > maxLen {
			maxLen = len(lane)
		}
	}

	// Round-robin dealing leaves at most one pair of slack.
	assert.LessOrEqual(t, maxLen-minLen, 1)
}

func TestPartitionAntiDiagonalOrder(t *testing.T) {
	lanes := Partition(4, 1)
	require.Len(t, lanes, 1)

	want := []Pair{
		{0, 3},         // diagonal distance 3
		{0, 2}, {1, 3}, // distance 2
		{0, 1}, {1, 2}, {2, 3}, // distance 1
	}
	assert.Equal(t, want, lanes[0])
}

func TestPartitionDegenerate(t *testing.T) {
	t.Run("NoItems", func(t *testing.T) {
		for _, lane := range Partition(0, 4) {
			assert.Empty(t, lane)
		}
	})

	t.Run("SingleItem", func(t *testing.T) {
		for _, lane := range Partition(1, 4) {
			assert.Empty(t, lane)
		}
	})

	t.Run("ZeroLanes", func(t *testing.T) {
		lanes := Partition(3, 0)
		require.Len(t, lanes, 1)
		assert.Len(t, lanes[0], 3)
	})
}
