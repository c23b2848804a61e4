package latency

import "sort"

// Stats summarizes a sample set. Percentiles are nearest-rank (index
// into the sorted samples), not interpolated; for counts too small to
// reach a rank the index clamps to the last sample.
type Stats struct {
	Count  uint64
	Min    uint64
	Median uint64
	Mean   float64
	P99    uint64
	P999   uint64
	Max    uint64
}

// Analyze computes Stats over samples. Returns ok=false for an empty
// input without touching the samples (no sort, no division).
func Analyze(samples []uint64) (Stats, bool) {
	n := len(samples)
	if n == 0 {
		return Stats{}, false
	}

	min, max := samples[0], samples[0]
	var sum float64
	for _, v := range samples {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += float64(v)
	}

	sorted := make([]uint64, n)
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return Stats{
		Count:  uint64(n),
		Min:    min,
		Median: sorted[n/2], // upper median for even counts
		Mean:   sum / float64(n),
		P99:    sorted[rank(n, 0.99)],
		P999:   sorted[rank(n, 0.999)],
		Max:    max,
	}, true
}

func rank(n int, q float64) int {
	i := int(float64(n) * q)
	if i >= n {
		i = n - 1
	}
	return i
}
