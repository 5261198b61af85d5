package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfile = `
name: frame loop
samples: 50
warmup: 5
unit: fps
zones:
  - name: physics
    work: 200µs
  - name: render
    work: 1ms
`

func TestParseValidProfile(t *testing.T) {
	p, err := Parse([]byte(validProfile))
	require.NoError(t, err)

	assert.Equal(t, "frame loop", p.Name)
	assert.Equal(t, 50, p.Samples)
	assert.Equal(t, 5, p.Warmup)
	assert.Equal(t, "fps", p.Unit)
	require.Len(t, p.Zones, 2)
	assert.Equal(t, "physics", p.Zones[0].Name)
	assert.Equal(t, 200*time.Microsecond, p.Zones[0].Work.Duration())
	assert.Equal(t, "render", p.Zones[1].Name)
	assert.Equal(t, time.Millisecond, p.Zones[1].Work.Duration())
}

func TestParseAppliesDefaults(t *testing.T) {
	p, err := Parse([]byte("zones:\n  - name: a\n    work: 1ms\n"))
	require.NoError(t, err)

	assert.Equal(t, 100, p.Samples)
	assert.Equal(t, 0, p.Warmup)
	assert.Equal(t, "ms", p.Unit)
}

func TestParseSchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing zones", "name: nope\n"},
		{"empty zones", "zones: []\n"},
		{"zone without work", "zones:\n  - name: a\n"},
		{"unknown field", "zones:\n  - name: a\n    work: 1ms\nspeed: 9\n"},
		{"zero samples", "samples: 0\nzones:\n  - name: a\n    work: 1ms\n"},
		{"negative warmup", "warmup: -1\nzones:\n  - name: a\n    work: 1ms\n"},
		{"bad unit", "unit: seconds\nzones:\n  - name: a\n    work: 1ms\n"},
		{"not yaml", ": :\n  -"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseSemanticRejections(t *testing.T) {
	duplicate := `
zones:
  - name: a
    work: 1ms
  - name: a
    work: 2ms
`
	_, err := Parse([]byte(duplicate))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate zone name")

	badWork := `
zones:
  - name: a
    work: 0s
`
	_, err = Parse([]byte(badWork))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive duration")
}

func TestParseBadDuration(t *testing.T) {
	_, err := Parse([]byte("zones:\n  - name: a\n    work: fast\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validProfile), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "frame loop", p.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateDirect(t *testing.T) {
	p := &Profile{Samples: 10, Unit: "ms", Zones: []ZoneSpec{{Name: "a", Work: Duration(time.Millisecond)}}}
	assert.Empty(t, Validate(p))

	p.Zones = append(p.Zones, ZoneSpec{Name: "", Work: Duration(time.Millisecond)})
	errs := Validate(p)
	require.Len(t, errs, 1)
	assert.Equal(t, "zones[1].name", errs[0].Path)
}
