// Package report renders an ordered set of zone statistics into a
// fixed-column comparison table with relative-change annotations.
package report

import (
	"fmt"
	"strings"

	"github.com/framelens/framelens/profile/stats"
)

// TimeUnit selects how median/mean/worst values are reported.
type TimeUnit string

const (
	// UnitMilliseconds reports raw interval values in milliseconds.
	UnitMilliseconds TimeUnit = "ms"

	// UnitFPS reports values as frames per second (1000 / value_in_ms).
	UnitFPS TimeUnit = "fps"
)

// SkipPrefix labels the isolation-pass rows ("w/o <zone>").
const SkipPrefix = "w/o "

// minColumnWidth is the smallest rendered width of any table column.
const minColumnWidth = 3

type evalKind int

const (
	evalMedian evalKind = iota
	evalMean
	evalWorst
	evalStdDev
)

// eval picks one statistic out of a result, converted to the report unit.
// The std-dev statistic is returned raw; it is reported as a percentage of
// the zone's own mean and never unit-converted.
func eval(r stats.ZoneResult, kind evalKind, unit TimeUnit) float64 {
	if kind == evalStdDev {
		return r.StdDev
	}
	var ms float64
	switch kind {
	case evalMedian:
		ms = r.Median
	case evalMean:
		ms = r.Mean
	case evalWorst:
		ms = r.Worst
	}
	if unit == UnitFPS {
		return 1000.0 / ms
	}
	return ms
}

func percentage(numerator, denominator float64) float64 {
	return 100.0 * numerator / denominator
}

// cell renders one table cell. Aggregate cells (index 0) are the bare
// value; isolation cells carry a signed percentage change relative to the
// aggregate. The std-dev cell is each zone's own coefficient of variation
// with no baseline suffix.
func cell(r, baseline stats.ZoneResult, isAggregate bool, kind evalKind, unit TimeUnit) string {
	value := eval(r, kind, unit)
	if kind == evalStdDev {
		return FormatNumber(percentage(value, r.Mean), 3, false)
	}
	s := FormatNumber(value, 3, false)
	if isAggregate {
		return s
	}
	base := eval(baseline, kind, unit)
	return s + " (" + FormatNumber(percentage(value-base, base), 2, true) + "%)"
}

type tableRow struct {
	cells []string
	width int
}

func buildRow(results []stats.ZoneResult, kind evalKind, unit TimeUnit) tableRow {
	row := tableRow{width: minColumnWidth}
	for i, r := range results {
		c := cell(r, results[0], i == 0, kind, unit)
		if len(c) > row.width {
			row.width = len(c)
		}
		row.cells = append(row.cells, c)
	}
	return row
}

func nameColumnWidth(results []stats.ZoneResult) int {
	w := minColumnWidth
	for _, r := range results {
		if len(r.Name) > w {
			w = len(r.Name)
		}
	}
	return w + len(SkipPrefix) + 1 // +1 for the trailing colon
}

// Render produces the full report text: one header line followed by one
// line per zone, each newline-terminated. Every value column is as wide as
// its widest cell and left-justified with trailing padding.
func Render(results []stats.ZoneResult, unit TimeUnit) string {
	nameWidth := nameColumnWidth(results)

	median := buildRow(results, evalMedian, unit)
	mean := buildRow(results, evalMean, unit)
	worst := buildRow(results, evalWorst, unit)
	stdDev := buildRow(results, evalStdDev, unit)

	var b strings.Builder
	fmt.Fprintf(&b, "%*s %-*s %-*s %-*s %-*s\n",
		nameWidth, "",
		median.width, "median["+string(unit)+"]",
		mean.width, "mean["+string(unit)+"]",
		worst.width, "worst["+string(unit)+"]",
		stdDev.width, "std dev[%]",
	)
	for i := range results {
		label := "all"
		if i != 0 {
			label = SkipPrefix + results[i].Name
		}
		label += ":"
		fmt.Fprintf(&b, "%-*s %-*s %-*s %-*s %-*s\n",
			nameWidth, label,
			median.width, median.cells[i],
			mean.width, mean.cells[i],
			worst.width, worst.cells[i],
			stdDev.width, stdDev.cells[i],
		)
	}
	return b.String()
}
