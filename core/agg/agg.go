// Package agg downsamples raw series into fixed-width display buckets.
// The bucket count follows the render width: cell width w is
// windowSeconds/displayWidth and bucket i covers [i*w, (i+1)*w).
package agg

import (
	"sort"

	"github.com/loggraph/loggraph/schema"
)

// Aggregate assigns each sample to its bucket and reduces every non-empty
// bucket to one point. Buckets come out in ascending index order; empty
// buckets are omitted entirely, so the result is sparse. A zero display
// width or an empty input yields an empty result, not an error.
//
// times and values are parallel; nil values mark absent samples and are
// skipped without consuming a bucket slot.
func Aggregate(times []float64, values []*float64, windowSeconds float64, displayWidth int, reducer schema.Reducer) []schema.AggPoint {
	if len(times) == 0 || len(values) == 0 || displayWidth <= 0 {
		return nil
	}

	cellWidth := windowSeconds / float64(displayWidth)
	if cellWidth <= 0 {
		return nil
	}

	bins := make(map[int][]float64)
	n := min(len(times), len(values))
	for i := range n {
		if values[i] == nil {
			continue
		}
		bucket := int(times[i] / cellWidth)
		// The range scan is inclusive on both ends, so a sample sitting
		// exactly on the window end folds into the last bucket.
		if bucket >= displayWidth {
			bucket = displayWidth - 1
		}
		bins[bucket] = append(bins[bucket], *values[i])
	}

	indices := make([]int, 0, len(bins))
	for bucket := range bins {
		indices = append(indices, bucket)
	}
	sort.Ints(indices)

	points := make([]schema.AggPoint, 0, len(indices))
	for _, bucket := range indices {
		points = append(points, schema.AggPoint{
			BucketStart: float64(bucket) * cellWidth,
			Value:       reduce(bins[bucket], reducer),
		})
	}
	return points
}

// reduce collapses one bucket's values with the chosen reducer.
func reduce(values []float64, reducer schema.Reducer) float64 {
	if reducer == schema.MeanReducer {
		return mean(values)
	}
	return median(values)
}

// median sorts the values and returns the middle one; even-count buckets
// average the two middle values.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// mean returns the arithmetic average.
func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
