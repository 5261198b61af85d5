package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/framelens/framelens/profile/report"
)

// OutputMode controls what happens with the rendered report when a run
// completes.
type OutputMode string

const (
	// EvalOnly computes results and caches the report text without
	// writing it anywhere.
	EvalOnly OutputMode = "eval-only"

	// ConsolePrint additionally writes the rendered report to the
	// configured writer.
	ConsolePrint OutputMode = "console"
)

// SampleObserver receives every recorded (post-warmup) sample as it is
// taken. The pass label is "all" for the aggregate pass and "w/o <zone>"
// for isolation passes. Observers must not call back into the profiler.
type SampleObserver interface {
	ObserveSample(pass string, deltaMS float64)
}

// Validation errors returned by New.
var (
	ErrInvalidSampleCount = errors.New("sample count must be positive")
	ErrInvalidWarmupRuns  = errors.New("warmup runs must not be negative")
)

// Config describes one measurement context.
type Config struct {
	// SampleCount is the number of samples recorded per zone pass.
	SampleCount int

	// WarmupRuns is the number of discarded iterations before recording
	// begins; it is re-armed whenever the target zone advances.
	WarmupRuns int

	// Output selects report delivery (default ConsolePrint).
	Output OutputMode

	// TimeUnit selects ms or fps reporting (default milliseconds).
	TimeUnit report.TimeUnit

	// OnDone, when set, fires exactly once per completed run with the
	// ordered results (index 0 is the aggregate "all" entry).
	OnDone func(Results)

	// Writer receives the report under ConsolePrint (default os.Stdout).
	Writer io.Writer

	// Clock drives the no-argument Tick form (default the system clock).
	Clock Clock

	// Observer, when set, receives every recorded sample.
	Observer SampleObserver
}

// DefaultConfig returns the default measurement configuration: 100 samples
// per zone, 10 warmup runs, millisecond console reporting.
func DefaultConfig() Config {
	return Config{
		SampleCount: 100,
		WarmupRuns:  10,
		Output:      ConsolePrint,
		TimeUnit:    report.UnitMilliseconds,
	}
}

func (c *Config) validate() error {
	if c.SampleCount <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidSampleCount, c.SampleCount)
	}
	if c.WarmupRuns < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidWarmupRuns, c.WarmupRuns)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = ConsolePrint
	}
	if c.TimeUnit == "" {
		c.TimeUnit = report.UnitMilliseconds
	}
	if c.Writer == nil {
		c.Writer = os.Stdout
	}
	if c.Clock == nil {
		c.Clock = systemClock{}
	}
}
