// Package stats computes per-zone summary statistics over raw sample arrays.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ZoneResult is a read-only snapshot of one zone's samples and their
// derived statistics. Within a result set, index 0 holds the aggregate
// pass in which every zone executed; index i > 0 holds the pass in which
// only zone i was skipped. The isolated cost of zone i is therefore
// stat[0] - stat[i], computed downstream and never stored here.
type ZoneResult struct {
	// Name is the zone name ("all" for the aggregate entry)
	Name string `json:"name" yaml:"name"`

	// SortedSamples are the recorded intervals in ascending order, in ms
	SortedSamples []float64 `json:"sortedSamples" yaml:"sortedSamples"`

	// Median is the middle sample (mean of the two central samples for
	// even counts)
	Median float64 `json:"median" yaml:"median"`

	// Mean is the arithmetic average of all samples
	Mean float64 `json:"mean" yaml:"mean"`

	// Worst is the largest sample
	Worst float64 `json:"worst" yaml:"worst"`

	// StdDev is the Bessel-corrected sample standard deviation
	StdDev float64 `json:"stdDev" yaml:"stdDev"`
}

// Median returns the middle element of a sorted slice, or the arithmetic
// mean of the two central elements for even lengths. Empty input yields 0.
func Median(sorted []float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted)%2 == 0 {
		left := len(sorted)/2 - 1
		return 0.5 * (sorted[left] + sorted[left+1])
	}
	return sorted[len(sorted)/2]
}

// Mean returns the arithmetic average of xs. It assumes a non-empty slice.
func Mean(xs []float64) float64 {
	return stat.Mean(xs, nil)
}

// StdDev returns the Bessel-corrected sample standard deviation of xs.
// Fewer than two samples carry no spread information, so 0 is returned
// instead of a non-finite value.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// Summarize copies and sorts the zone's samples and derives its statistics.
// The input slice is left untouched.
func Summarize(name string, samples []float64) ZoneResult {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	r := ZoneResult{
		Name:          name,
		SortedSamples: sorted,
		Median:        Median(sorted),
	}
	if len(sorted) == 0 {
		return r
	}
	r.Mean = Mean(sorted)
	r.StdDev = StdDev(sorted)
	r.Worst = sorted[len(sorted)-1]
	return r
}
