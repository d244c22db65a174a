package calibrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyBins_PlacesRecordsByRate(t *testing.T) {
	records := []Record{
		rec("A", "100", "50", "10"),  // 50%  -> <60%
		rec("A", "100", "70", "12"),  // 70%  -> 60-80%
		rec("A", "100", "90", "20"),  // 90%  -> 80-100%
		rec("A", "100", "100", "22"), // boundary stays in 80-100%
		rec("A", "100", "110", "30"), // 110% -> 100-120%
		rec("A", "100", "140", "40"), // 140% -> 120-150%
		rec("A", "100", "200", "55"), // 200% -> >150%
	}

	bins := OccupancyBins(records)
	require.Len(t, bins, 6)

	counts := map[string]int{}
	medians := map[string]float64{}
	for _, b := range bins {
		counts[b.Label] = b.Count
		medians[b.Label] = b.MedianStayHours
	}

	assert.Equal(t, 1, counts["<60%"])
	assert.Equal(t, 1, counts["60-80%"])
	assert.Equal(t, 2, counts["80-100%"])
	assert.Equal(t, 1, counts["100-120%"])
	assert.Equal(t, 1, counts["120-150%"])
	assert.Equal(t, 1, counts[">150%"])

	assert.Equal(t, 21.0, medians["80-100%"])
	assert.Equal(t, 55.0, medians[">150%"])
}

func TestOccupancyBins_DropsBadRows(t *testing.T) {
	records := []Record{
		rec("A", "0", "50", "10"),   // non-positive functional count
		rec("A", "n/d", "50", "10"), // unparsable
		rec("A", "100", "50", ""),   // missing stay
	}

	for _, b := range OccupancyBins(records) {
		assert.Zero(t, b.Count, "bin %s", b.Label)
	}
}

func TestOccupancyBins_EmptyInput(t *testing.T) {
	bins := OccupancyBins(nil)
	require.Len(t, bins, 6)
	for _, b := range bins {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.MedianStayHours)
	}
}
