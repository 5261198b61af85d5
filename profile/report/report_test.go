package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/framelens/framelens/profile/stats"
)

func fixedResults() []stats.ZoneResult {
	return []stats.ZoneResult{
		{Name: "all", Median: 10, Mean: 10, Worst: 10, StdDev: 1},
		{Name: "physics", Median: 5, Mean: 5, Worst: 5, StdDev: 1},
	}
}

func TestRenderMilliseconds(t *testing.T) {
	want := "" +
		"             median[ms]  mean[ms]    worst[ms]   std dev[%]\n" +
		"all:         10.0        10.0        10.0        10.0\n" +
		"w/o physics: 5.00 (-50%) 5.00 (-50%) 5.00 (-50%) 20.0\n"

	assert.Equal(t, want, Render(fixedResults(), UnitMilliseconds))
}

func TestRenderFPS(t *testing.T) {
	want := "" +
		"             median[fps] mean[fps]   worst[fps]  std dev[%]\n" +
		"all:         100         100         100         10.0\n" +
		"w/o physics: 200 (+100%) 200 (+100%) 200 (+100%) 20.0\n"

	assert.Equal(t, want, Render(fixedResults(), UnitFPS))
}

func TestRenderLayout(t *testing.T) {
	out := Render(fixedResults(), UnitMilliseconds)

	lines := splitLines(t, out)
	assert.Len(t, lines, 3)

	// the name column is the longest name plus the "w/o " prefix and a colon
	wantNameWidth := len("physics") + len(SkipPrefix) + 1
	for _, line := range lines[1:] {
		assert.Equal(t, byte(' '), line[wantNameWidth], "line %q", line)
	}
}

func TestRenderStdDevRowHasNoBaselineSuffix(t *testing.T) {
	out := Render(fixedResults(), UnitMilliseconds)

	lines := splitLines(t, out)
	// isolation row ends with the bare coefficient of variation
	assert.Regexp(t, `20\.0$`, lines[2])
}

func splitLines(t *testing.T, out string) []string {
	t.Helper()
	assert.NotEmpty(t, out)
	assert.Equal(t, byte('\n'), out[len(out)-1])
	var lines []string
	start := 0
	for i := 0; i < len(out); i++ {
		if out[i] == '\n' {
			lines = append(lines, out[start:i])
			start = i + 1
		}
	}
	return lines
}
