// Package metrics provides optional HDR-histogram aggregation of recorded
// profiler samples, keyed by pass label. Unlike the exact per-run sample
// arrays kept by the profiler itself, the recorder survives across runs
// and answers percentile queries in O(1).
package metrics

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram range: 1 microsecond to 1 hour, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = 3600000000
	histogramSigFigs = 3
)

// Recorder aggregates recorded samples per pass label ("all", "w/o <zone>").
// It implements the profiler's SampleObserver hook. Like the profiler, it
// is single-threaded and must be driven from the same control loop.
type Recorder struct {
	hists map[string]*hdrhistogram.Histogram
	order []string
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{hists: make(map[string]*hdrhistogram.Histogram)}
}

// ObserveSample records one interval, in milliseconds, under the given
// pass label. Values are clamped to the histogram's recordable range.
func (r *Recorder) ObserveSample(pass string, deltaMS float64) {
	hist, ok := r.hists[pass]
	if !ok {
		hist = hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
		r.hists[pass] = hist
		r.order = append(r.order, pass)
	}

	micros := int64(deltaMS * 1000.0)
	if micros < histogramMin {
		micros = histogramMin
	}
	if micros > histogramMax {
		micros = histogramMax
	}
	_ = hist.RecordValue(micros)
}

// PassSummary holds percentile statistics for one pass label.
type PassSummary struct {
	Pass  string        `json:"pass" yaml:"pass"`
	Count int64         `json:"count" yaml:"count"`
	P50   time.Duration `json:"p50" yaml:"p50"`
	P90   time.Duration `json:"p90" yaml:"p90"`
	P99   time.Duration `json:"p99" yaml:"p99"`
	Max   time.Duration `json:"max" yaml:"max"`
}

// Summary returns per-pass percentile statistics in first-observed order.
func (r *Recorder) Summary() []PassSummary {
	summaries := make([]PassSummary, 0, len(r.order))
	for _, pass := range r.order {
		hist := r.hists[pass]
		summaries = append(summaries, PassSummary{
			Pass:  pass,
			Count: hist.TotalCount(),
			P50:   time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond,
			P90:   time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond,
			P99:   time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
			Max:   time.Duration(hist.Max()) * time.Microsecond,
		})
	}
	return summaries
}

// Reset clears all histograms but keeps the pass labels.
func (r *Recorder) Reset() {
	for _, hist := range r.hists {
		hist.Reset()
	}
}
