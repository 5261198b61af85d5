package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelens/framelens/profile/stats"
)

func sampleExport() *RunExport {
	zones := []stats.ZoneResult{
		{Name: "all", SortedSamples: []float64{1, 2, 3}, Median: 2, Mean: 2, Worst: 3, StdDev: 1},
		{Name: "physics", SortedSamples: []float64{1, 1, 1}, Median: 1, Mean: 1, Worst: 1, StdDev: 0},
	}
	return NewRunExport("frame loop", "ms", zones, nil, time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC))
}

func TestConsolePassthroughWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	report := "header\nbody line\n"
	c.PrintReport(report)

	// a non-terminal writer gets the exact report bytes
	assert.Equal(t, report, buf.String())
}

func TestConsoleNoColorFlag(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)
	c.Headline("run %q done", "frame loop")
	assert.Equal(t, "run \"frame loop\" done\n", buf.String())
}

func TestMarshalJSON(t *testing.T) {
	data, err := Marshal(sampleExport(), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "frame loop", decoded["profile"])
	assert.Equal(t, "ms", decoded["unit"])
	assert.Equal(t, "2026-08-23T12:00:00Z", decoded["timestamp"])
}

func TestMarshalYAML(t *testing.T) {
	data, err := Marshal(sampleExport(), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "profile: frame loop")
	assert.Contains(t, string(data), "name: physics")
}

func TestMarshalUnknownFormat(t *testing.T) {
	_, err := Marshal(sampleExport(), ExportFormat("xml"))
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteFile(path, sampleExport(), FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestQuery(t *testing.T) {
	data, err := Marshal(sampleExport(), FormatJSON)
	require.NoError(t, err)

	median, err := Query(data, "zones.0.median")
	require.NoError(t, err)
	assert.Equal(t, "2", median)

	name, err := Query(data, "zones.1.name")
	require.NoError(t, err)
	assert.Equal(t, "physics", name)

	mean, err := Query(data, `zones.#(name=="physics").mean`)
	require.NoError(t, err)
	assert.Equal(t, "1", mean)
}

func TestQueryErrors(t *testing.T) {
	data := []byte(`{"zones":[]}`)

	_, err := Query(nil, "zones")
	assert.Error(t, err)

	_, err = Query(data, "")
	assert.Error(t, err)

	_, err = Query(data, "zones.5.median")
	assert.Error(t, err)
}
