package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/framelens/framelens/profile/metrics"
	"github.com/framelens/framelens/profile/stats"
)

// ExportFormat selects the serialization of a RunExport.
type ExportFormat string

const (
	// FormatJSON serializes as indented JSON
	FormatJSON ExportFormat = "json"
	// FormatYAML serializes as YAML
	FormatYAML ExportFormat = "yaml"
)

// RunExport is the machine-readable form of one completed run.
type RunExport struct {
	// Profile is the profile name, when one was used
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty"`

	// Unit is the report time unit ("ms" or "fps")
	Unit string `json:"unit" yaml:"unit"`

	// Zones holds the ordered results; index 0 is the aggregate entry
	Zones []stats.ZoneResult `json:"zones" yaml:"zones"`

	// Percentiles holds optional per-pass HDR summaries
	Percentiles []metrics.PassSummary `json:"percentiles,omitempty" yaml:"percentiles,omitempty"`

	// Timestamp is when the run completed, RFC 3339
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// NewRunExport assembles an export payload, stamping it with now.
func NewRunExport(profileName, unit string, zones []stats.ZoneResult, percentiles []metrics.PassSummary, now time.Time) *RunExport {
	return &RunExport{
		Profile:     profileName,
		Unit:        unit,
		Zones:       zones,
		Percentiles: percentiles,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}
}

// Marshal serializes the export in the requested format.
func Marshal(export *RunExport, format ExportFormat) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling results: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(export)
		if err != nil {
			return nil, fmt.Errorf("marshaling results: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// WriteFile serializes the export and writes it to path.
func WriteFile(path string, export *RunExport, format ExportFormat) error {
	data, err := Marshal(export, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
