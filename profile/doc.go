// Package profile measures the cost of named zones inside a caller's hot
// loop by isolating each zone in turn.
//
// A run collects a fixed number of timing samples per zone after a
// configurable warmup. The first pass measures all zones executing; every
// later pass skips exactly one zone, so that zone's cost can be inferred
// downstream as the difference against the aggregate pass. The caller
// drives the protocol:
//
//	p, _ := profile.New(profile.Config{SampleCount: 100, WarmupRuns: 10})
//	p.Start()
//	for running {
//	    if p.Zone("physics") {
//	        stepPhysics()
//	    }
//	    if p.Zone("render") {
//	        render()
//	    }
//	    p.Tick() // or p.Slice(deltaMS) with the caller's own clock
//	}
//
// When the run completes the profiler evaluates per-zone statistics,
// renders the comparison report, and fires the done callback exactly once.
//
// A Profiler is single-threaded and fully synchronous: every operation
// runs to completion with no suspension point and must be invoked from one
// logical control loop. Correctness depends on the caller querying the
// exact same ordered set of zone names on every iteration of a run.
package profile
