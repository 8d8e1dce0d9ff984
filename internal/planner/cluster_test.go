package planner_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gloriatan/ANI/internal/domain"
	"github.com/gloriatan/ANI/internal/planner"
)

func areaLocs(area string, n int) []domain.Location {
	out := make([]domain.Location, n)
	for i := range out {
		out[i] = domain.Location{
			Name: fmt.Sprintf("%s-%d", area, i+1),
			City: "Tokyo",
			Area: area,
		}
	}
	return out
}

// TestClusterByArea_AreaStable verifies that locations sharing an area whose
// total count fits within the threshold always land in the same day-bucket.
func TestClusterByArea_AreaStable(t *testing.T) {
	input := append(areaLocs("Shinjuku", 3), areaLocs("Shibuya", 2)...)

	buckets := planner.ClusterByArea(input, 4)

	require.Len(t, buckets, 2)
	assert.Equal(t, "Shinjuku", buckets[0].Area)
	assert.Len(t, buckets[0].Locations, 3)
	assert.Equal(t, "Shibuya", buckets[1].Area)
	assert.Len(t, buckets[1].Locations, 2)
}

// TestClusterByArea_DiscoveryOrder verifies that buckets appear in the order
// areas are first seen in the input, not alphabetically.
func TestClusterByArea_DiscoveryOrder(t *testing.T) {
	input := []domain.Location{
		{Name: "a", Area: "Zebra Town"},
		{Name: "b", Area: "Alpha Ward"},
		{Name: "c", Area: "Zebra Town"},
	}

	buckets := planner.ClusterByArea(input, 5)

	require.Len(t, buckets, 2)
	assert.Equal(t, "Zebra Town", buckets[0].Area)
	assert.Equal(t, "Alpha Ward", buckets[1].Area)
}

// TestClusterByArea_SplitLaw verifies the splitting law: a bucket of size
// S > T produces ceil(S/T) sub-buckets, each of size ≤ T, whose concatenation
// in order reconstructs the original bucket.
func TestClusterByArea_SplitLaw(t *testing.T) {
	const size, threshold = 11, 4
	input := areaLocs("Akihabara", size)

	buckets := planner.ClusterByArea(input, threshold)

	wantBuckets := (size + threshold - 1) / threshold
	require.Len(t, buckets, wantBuckets)

	var rejoined []domain.Location
	for i, b := range buckets {
		assert.LessOrEqual(t, len(b.Locations), threshold)
		assert.Equal(t, fmt.Sprintf("Akihabara (Part %d)", i+1), b.Area)
		rejoined = append(rejoined, b.Locations...)
	}
	assert.Equal(t, input, rejoined)
}

// TestClusterByArea_SplitExactMultiple checks the boundary where the area
// size is an exact multiple of the threshold: no undersized trailing bucket.
func TestClusterByArea_SplitExactMultiple(t *testing.T) {
	buckets := planner.ClusterByArea(areaLocs("Kichijoji", 8), 4)

	require.Len(t, buckets, 2)
	assert.Len(t, buckets[0].Locations, 4)
	assert.Len(t, buckets[1].Locations, 4)
}

// TestClusterByArea_AtThresholdNotSplit verifies that an area exactly at the
// threshold keeps its plain label — no "(Part 1)" suffix for a single day.
func TestClusterByArea_AtThresholdNotSplit(t *testing.T) {
	buckets := planner.ClusterByArea(areaLocs("Nakano", 4), 4)

	require.Len(t, buckets, 1)
	assert.Equal(t, "Nakano", buckets[0].Area)
}

func TestClusterByArea_Empty(t *testing.T) {
	assert.Empty(t, planner.ClusterByArea(nil, 5))
	assert.Empty(t, planner.ClusterByArea([]domain.Location{}, 5))
}
