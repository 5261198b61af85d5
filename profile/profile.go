package profile

import (
	"fmt"
	"time"

	"github.com/framelens/framelens/profile/report"
	"github.com/framelens/framelens/profile/stats"
)

// AggregateZoneName names the synthetic zone at index 0 that represents
// the pass in which every zone executes.
const AggregateZoneName = "all"

// Results is the ordered per-zone outcome of a completed run. Index 0 is
// the aggregate "all" entry; index i > 0 is the pass that skipped zone i.
type Results []stats.ZoneResult

type status int

const (
	statusReady status = iota
	statusStarting
	statusMeasuring
)

type zone struct {
	name    string
	samples []float64
}

// Profiler is one measurement context. It is not safe for concurrent use;
// drive it from a single control loop.
type Profiler struct {
	cfg Config

	status          status
	zones           []zone
	targetZone      int
	recordedSlices  int
	samplesRecorded int
	warmupLeft      int
	anchor          time.Time

	results    Results
	reportText string
}

// New validates cfg and returns a fresh measurement context. Zero values
// for Output, TimeUnit, Writer, and Clock fall back to console printing in
// milliseconds on stdout with the system clock.
func New(cfg Config) (*Profiler, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	cfg.applyDefaults()
	return &Profiler{cfg: cfg}, nil
}

// Zone registers name on first sight and reports whether the caller should
// execute that zone's work on this iteration. While a run is measuring
// with target zone k > 0, it returns false exactly when the queried zone's
// index equals k; in every other situation it returns true.
//
// Caller contract: the same ordered set of zone names must be queried on
// every iteration throughout a run. A name first seen while a run is
// already measuring is registered and becomes a target later in that same
// run, but the passes recorded before its registration did not gate it;
// treat its numbers for that run as meaningless.
func (p *Profiler) Zone(name string) bool {
	if len(p.zones) == 0 {
		p.zones = append(p.zones, zone{
			name:    AggregateZoneName,
			samples: make([]float64, 0, p.cfg.SampleCount),
		})
	}
	if p.zoneIndex(name) < 0 {
		p.zones = append(p.zones, zone{
			name:    name,
			samples: make([]float64, 0, p.cfg.SampleCount),
		})
	}
	if p.status == statusMeasuring && p.targetZone > 0 {
		return p.zoneIndex(name) != p.targetZone
	}
	return true
}

// Start arms the next tick as the beginning of a run. It has an effect
// only while the profiler is idle; in any other status it is a no-op.
func (p *Profiler) Start() {
	if p.status == statusReady {
		p.status = statusStarting
	}
}

// Slice advances the state machine by one measured interval, given in
// milliseconds. On the first tick after Start the delta is discarded and
// counters are reset; afterwards each tick either consumes a warmup
// iteration or records a sample for the current target zone. The final
// tick of a run evaluates all zones, renders the report, fires the done
// callback, and returns the profiler to idle.
func (p *Profiler) Slice(deltaMS float64) {
	switch p.status {
	case statusReady:
		// idle, nothing armed
	case statusStarting:
		p.resetRun()
		p.status = statusMeasuring
	case statusMeasuring:
		if len(p.zones) == 0 {
			return
		}
		if p.warmupLeft > 0 {
			p.warmupLeft--
			return
		}
		p.record(deltaMS)
		if p.recordedSlices >= p.cfg.SampleCount {
			p.advanceTarget()
			if p.targetZone >= len(p.zones) {
				p.evaluate()
			}
		}
	}
}

// Tick is the convenience form of Slice: it measures the interval since
// the previous tick on the profiler's clock and forwards it. The first
// recorded interval spans from the run-starting tick to the first
// measuring tick.
func (p *Profiler) Tick() {
	var deltaMS float64
	switch p.status {
	case statusStarting:
		p.anchor = p.cfg.Clock.Now()
	case statusMeasuring:
		now := p.cfg.Clock.Now()
		deltaMS = float64(now.Sub(p.anchor).Nanoseconds()) / 1e6
		p.anchor = now
	}
	p.Slice(deltaMS)
}

// ResultsReady reports whether a run has completed and recorded at least
// one sample since the profiler last started.
func (p *Profiler) ResultsReady() bool {
	return p.status == statusReady && p.samplesRecorded > 0
}

// Results returns the cached outcome of the last completed run, or nil.
func (p *Profiler) Results() Results {
	return p.results
}

// ReportText returns the cached rendered report of the last completed run.
func (p *Profiler) ReportText() string {
	return p.reportText
}

// ClearResults discards the cached results and report text without
// altering run state.
func (p *Profiler) ClearResults() {
	p.results = nil
	p.reportText = ""
}

// FactoryReset fully reinitializes the profiler: zone identity, counters,
// and cached results are discarded and the status returns to idle.
func (p *Profiler) FactoryReset() {
	p.zones = nil
	p.status = statusReady
	p.targetZone = 0
	p.recordedSlices = 0
	p.samplesRecorded = 0
	p.warmupLeft = p.cfg.WarmupRuns
	p.anchor = time.Time{}
	p.ClearResults()
}

func (p *Profiler) zoneIndex(name string) int {
	for i := range p.zones {
		if p.zones[i].name == name {
			return i
		}
	}
	return -1
}

// resetRun clears counters and per-zone sample buffers but preserves zone
// identity and order.
func (p *Profiler) resetRun() {
	p.targetZone = 0
	p.recordedSlices = 0
	p.samplesRecorded = 0
	p.warmupLeft = p.cfg.WarmupRuns
	for i := range p.zones {
		p.zones[i].samples = p.zones[i].samples[:0]
	}
}

func (p *Profiler) record(deltaMS float64) {
	z := &p.zones[p.targetZone]
	z.samples = append(z.samples, deltaMS)
	p.recordedSlices++
	p.samplesRecorded++
	if p.cfg.Observer != nil {
		p.cfg.Observer.ObserveSample(p.passLabel(p.targetZone), deltaMS)
	}
}

// advanceTarget moves isolation to the next zone; the new target gets a
// fresh warmup.
func (p *Profiler) advanceTarget() {
	p.targetZone++
	p.recordedSlices = 0
	p.warmupLeft = p.cfg.WarmupRuns
}

func (p *Profiler) passLabel(i int) string {
	if i == 0 {
		return AggregateZoneName
	}
	return report.SkipPrefix + p.zones[i].name
}

func (p *Profiler) evaluate() {
	results := make(Results, 0, len(p.zones))
	for _, z := range p.zones {
		results = append(results, stats.Summarize(z.name, z.samples))
	}
	p.results = results
	p.reportText = report.Render(results, p.cfg.TimeUnit)
	if p.cfg.Output == ConsolePrint {
		fmt.Fprint(p.cfg.Writer, p.reportText)
	}
	if p.cfg.OnDone != nil {
		p.cfg.OnDone(results)
	}
	p.status = statusReady
}
