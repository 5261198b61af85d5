package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/framelens/framelens/internal/config"
	"github.com/framelens/framelens/internal/output"
	"github.com/framelens/framelens/profile"
	"github.com/framelens/framelens/profile/metrics"
	"github.com/framelens/framelens/profile/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a benchmark profile and print the comparison report",
	Long: `Execute a synthetic zone workload under the profiler and report per-zone
statistics. Zones come from a profile file or from the --zones flag.

Profile file mode:
  framelens run --config profile.yaml

Quick CLI mode:
  framelens run --zones "physics:200µs,render:1ms" --samples 50 --warmup 5

Scripting:
  framelens run --zones "io:1ms" --quiet --query zones.0.median`,
	RunE: runProfile,
}

func init() {
	runCmd.Flags().StringP("config", "c", "", "benchmark profile file (YAML); overrides the quick-mode flags")
	runCmd.Flags().String("zones", "", "comma-separated name:work pairs, e.g. \"physics:200µs,render:1ms\"")
	runCmd.Flags().Int("samples", 100, "samples recorded per zone pass")
	runCmd.Flags().Int("warmup", 10, "discarded iterations before each pass records")
	runCmd.Flags().String("unit", "ms", "report unit: \"ms\" or \"fps\"")
	runCmd.Flags().String("json", "", "write a JSON results file to this path")
	runCmd.Flags().String("yaml", "", "write a YAML results file to this path")
	runCmd.Flags().String("query", "", "print a single value from the results (gjson path)")
	runCmd.Flags().Bool("percentiles", false, "print per-pass HDR percentile summaries")
	runCmd.Flags().Bool("quiet", false, "suppress the report table")
	runCmd.Flags().Bool("no-color", false, "disable colored output")
}

func runProfile(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	zonesFlag, _ := flags.GetString("zones")
	samples, _ := flags.GetInt("samples")
	warmup, _ := flags.GetInt("warmup")
	unit, _ := flags.GetString("unit")
	jsonPath, _ := flags.GetString("json")
	yamlPath, _ := flags.GetString("yaml")
	queryPath, _ := flags.GetString("query")
	percentiles, _ := flags.GetBool("percentiles")
	quiet, _ := flags.GetBool("quiet")
	noColor, _ := flags.GetBool("no-color")

	var prof *config.Profile
	switch {
	case configPath != "":
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		prof = loaded
	case zonesFlag != "":
		zones, err := parseZonesFlag(zonesFlag)
		if err != nil {
			return err
		}
		prof = &config.Profile{Samples: samples, Warmup: warmup, Unit: unit, Zones: zones}
		if errs := config.Validate(prof); len(errs) > 0 {
			return fmt.Errorf("invalid flags: %s", errs[0].Error())
		}
	default:
		return fmt.Errorf("either --config or --zones is required")
	}

	recorder := metrics.NewRecorder()
	var results profile.Results
	p, err := profile.New(profile.Config{
		SampleCount: prof.Samples,
		WarmupRuns:  prof.Warmup,
		Output:      profile.EvalOnly,
		TimeUnit:    report.TimeUnit(prof.Unit),
		Observer:    recorder,
		OnDone:      func(r profile.Results) { results = r },
	})
	if err != nil {
		return err
	}

	p.Start()
	// one starting tick, then (zones+1) passes of warmup+samples each; the
	// limit leaves generous headroom before declaring the run stuck
	limit := (prof.Warmup + prof.Samples + 1) * (len(prof.Zones) + 2)
	for i := 0; !p.ResultsReady(); i++ {
		if i > limit {
			return fmt.Errorf("run did not complete within %d iterations", limit)
		}
		for _, z := range prof.Zones {
			if p.Zone(z.Name) {
				spin(z.Work.Duration())
			}
		}
		p.Tick()
	}

	console := output.NewConsole(cmd.OutOrStdout(), noColor)
	if !quiet {
		if prof.Name != "" {
			console.Headline("profile: %s", prof.Name)
		}
		console.PrintReport(p.ReportText())
	}
	if percentiles {
		console.Printf("\nper-pass percentiles:\n")
		for _, s := range recorder.Summary() {
			console.Printf("  %-20s n=%-5d p50=%-10v p90=%-10v p99=%-10v max=%v\n",
				s.Pass+":", s.Count, s.P50, s.P90, s.P99, s.Max)
		}
	}

	export := output.NewRunExport(prof.Name, prof.Unit, results, recorder.Summary(), time.Now())
	if jsonPath != "" {
		if err := output.WriteFile(jsonPath, export, output.FormatJSON); err != nil {
			return err
		}
	}
	if yamlPath != "" {
		if err := output.WriteFile(yamlPath, export, output.FormatYAML); err != nil {
			return err
		}
	}
	if queryPath != "" {
		data, err := output.Marshal(export, output.FormatJSON)
		if err != nil {
			return err
		}
		value, err := output.Query(data, queryPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

// parseZonesFlag turns "physics:200µs,render:1ms" into zone specs.
func parseZonesFlag(s string) ([]config.ZoneSpec, error) {
	var zones []config.ZoneSpec
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, work, found := strings.Cut(pair, ":")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid zone spec %q, want name:work", pair)
		}
		d, err := time.ParseDuration(work)
		if err != nil {
			return nil, fmt.Errorf("invalid zone spec %q: %w", pair, err)
		}
		zones = append(zones, config.ZoneSpec{Name: name, Work: config.Duration(d)})
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("no zones given")
	}
	return zones, nil
}

// spin burns CPU for roughly d, standing in for real zone work.
func spin(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
