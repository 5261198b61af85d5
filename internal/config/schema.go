// Package config loads and validates benchmark profile files.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile describes a synthetic workload to measure.
//
// Example YAML:
//
//	name: frame loop
//	samples: 100
//	warmup: 10
//	unit: ms
//	zones:
//	  - name: physics
//	    work: 200µs
//	  - name: render
//	    work: 1ms
type Profile struct {
	// Name of the profile (for reporting)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Samples is the number of recorded intervals per zone pass
	Samples int `json:"samples,omitempty" yaml:"samples,omitempty"`

	// Warmup is the number of discarded iterations before each pass records
	Warmup int `json:"warmup" yaml:"warmup"`

	// Unit selects the report unit: "ms" (default) or "fps"
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Zones lists the named units of work, in execution order
	Zones []ZoneSpec `json:"zones" yaml:"zones"`
}

// ZoneSpec is one named unit of work in the synthetic loop.
type ZoneSpec struct {
	// Name identifies the zone; must be unique within the profile
	Name string `json:"name" yaml:"name"`

	// Work is the simulated busy time spent in the zone per iteration
	Work Duration `json:"work" yaml:"work"`
}

// Duration wraps time.Duration for human-readable YAML values ("200µs").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"200µs\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration back to its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the wrapped time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// defaults: 100 samples and millisecond reporting; an omitted warmup
// stays 0 so profile files are explicit about discarded iterations.
func applyDefaults(p *Profile) {
	if p.Samples == 0 {
		p.Samples = 100
	}
	if p.Unit == "" {
		p.Unit = "ms"
	}
}
