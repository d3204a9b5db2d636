package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/beerslab/internal/concentration"
	"github.com/san-kum/beerslab/internal/export"
	"github.com/san-kum/beerslab/internal/logging"
	"github.com/san-kum/beerslab/internal/reactive"
	"github.com/san-kum/beerslab/internal/scenario"
	"github.com/san-kum/beerslab/internal/sim"
	"github.com/san-kum/beerslab/internal/storage"
)

func loadScenario(args []string) (*scenario.Scenario, error) {
	switch {
	case len(args) == 1 && preset != "":
		return nil, fmt.Errorf("give either a scenario file or --preset, not both")
	case len(args) == 1:
		return scenario.Load(args[0])
	case preset != "":
		return scenario.Preset(preset)
	}
	return nil, fmt.Errorf("need a scenario file or --preset (one of %s)", strings.Join(scenario.PresetNames(), ", "))
}

func runScenario(cmd *cobra.Command, args []string) error {
	s, err := loadScenario(args)
	if err != nil {
		return err
	}
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if trace && logging.ParseLevel(cfg.LogLevel) > slog.LevelDebug {
		cfg.LogLevel = "debug"
		logger = logging.NewLogger(cfg.LogLevel, os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := scenario.NewRunner(cfg, logger)
	if trace {
		// ensemble runs prepare models concurrently
		var (
			mu     sync.Mutex
			unlink []reactive.Unlink
		)
		defer func() {
			for _, u := range unlink {
				u()
			}
		}()
		runner.OnModel(func(m *concentration.Model) {
			reg := reactive.NewRegistry()
			m.Register(reg)
			u := logging.Trace(logger, reg)
			mu.Lock()
			unlink = append(unlink, u)
			mu.Unlock()
		})
	}

	if ensemble > 0 {
		results, err := runner.RunEnsemble(ctx, s, ensemble)
		if err != nil {
			return err
		}
		printEnsemble(s, cfg.Seed, results)
		return nil
	}

	result, err := runner.Run(ctx, s)
	if err != nil {
		return err
	}
	printMetrics(result.Metrics)
	if noSave {
		return nil
	}

	runDt := s.Dt
	if runDt <= 0 {
		runDt = cfg.Dt
	}
	store := storage.New(cfg.DataDir, logger)
	id, err := store.Save(storage.RunMetadata{
		Scenario:    s.Name,
		Description: s.Description,
		Solute:      s.Solute,
		Seed:        cfg.Seed,
		Dt:          runDt,
		Duration:    s.Duration,
	}, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved: %s\n", id)
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printMetrics(metrics map[string]float64) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range sortedKeys(metrics) {
		fmt.Fprintf(w, "%s\t%.6g\n", name, metrics[name])
	}
	w.Flush()
}

func printEnsemble(s *scenario.Scenario, seedStart int64, results []*sim.Result) {
	fmt.Printf("%s: %d runs, seeds %d..%d\n\n", s.Name, len(results), seedStart, seedStart+int64(len(results))-1)
	if len(results) == 0 {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN\tMIN\tMAX")
	for _, name := range sortedKeys(results[0].Metrics) {
		sum, lo, hi := 0.0, math.Inf(1), math.Inf(-1)
		for _, r := range results {
			v := r.Metrics[name]
			sum += v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.6g\n", name, sum/float64(len(results)), lo, hi)
	}
	w.Flush()
}

func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir, logger), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tSOLUTE\tTIME\tDURATION\tDT\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Scenario,
			run.Solute,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	result, err := store.LoadSeries(args[0])
	if err != nil {
		return err
	}

	for _, label := range plotChannels {
		data, ok := result.Channel(label)
		if !ok {
			return fmt.Errorf("run %s has no channel %q (have %s)", args[0], label, strings.Join(result.Labels, ", "))
		}
		if len(data) == 0 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(label),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	result, err := store.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	result, err := store.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	result, err := store.LoadSeries(args[0])
	if err != nil {
		return err
	}
	chart, err := export.RunChart(result, svgChannels...)
	if err != nil {
		return err
	}
	chart.Title = args[0]
	return writeChart(chart, outFile)
}

// writeChart renders chart to path, or to stdout when path is empty.
func writeChart(chart export.Chart, path string) error {
	svg, err := chart.SVG()
	if err != nil {
		return err
	}
	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, svg)
		return err
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	return nil
}
