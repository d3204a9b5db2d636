package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/beerslab/internal/config"
	"github.com/san-kum/beerslab/internal/logging"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	dt         float64
	seed       int64
	frameRate  int

	preset       string
	trace        bool
	ensemble     int
	noSave       bool
	plotChannels []string
	svgChannels  []string
	outFile      string
	soluteArg    string
	formArg      string

	wavelengthArg float64
	concArg       float64
	pathArg       float64
	sweepVar      string
	sweepMin      float64
	sweepMax      float64
	sweepSteps    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "beerslab",
		Short:         "solution concentration and Beer's law lab",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: info, debug or trace")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", config.DefaultDt, "timestep in seconds")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for particle placement")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "run a scenario file or preset and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "built-in scenario (see presets)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "log every model value change")
	runCmd.Flags().IntVar(&ensemble, "ensemble", 0, "run this many seeds and summarize instead of recording")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot recorded channels in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&plotChannels, "channels", []string{"concentration", "volume"}, "channels to plot")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a recorded run as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a recorded run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "write an SVG chart of recorded channels",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringSliceVar(&svgChannels, "channels", []string{"concentration"}, "channels to chart")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	solutesCmd := &cobra.Command{
		Use:   "solutes",
		Short: "list the solute catalog",
		Args:  cobra.NoArgs,
		RunE:  listSolutes,
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [solute...]",
		Short: "plot molar absorptivity against wavelength",
		RunE:  plotSpectrum,
	}
	spectrumCmd.Flags().StringVarP(&outFile, "out", "o", "", "write an SVG chart to this file instead")

	absorbanceCmd := &cobra.Command{
		Use:   "absorbance [solute]",
		Short: "compute absorbance and transmittance of a solution",
		Args:  cobra.ExactArgs(1),
		RunE:  computeAbsorbance,
	}
	absorbanceCmd.Flags().Float64Var(&wavelengthArg, "wavelength", 0, "wavelength in nm (default: peak)")
	absorbanceCmd.Flags().Float64Var(&concArg, "concentration", 0, "concentration in mol/L (default: solution default)")
	absorbanceCmd.Flags().Float64Var(&pathArg, "path", 0, "path length in cm (default: cuvette width)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [solute]",
		Short: "sweep wavelength, concentration or path length",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepVar, "var", "wavelength", "variable: wavelength, concentration or path")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 380, "start value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 780, "end value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 81, "number of points")
	sweepCmd.Flags().Float64Var(&wavelengthArg, "wavelength", 0, "fixed wavelength in nm")
	sweepCmd.Flags().Float64Var(&concArg, "concentration", 0, "fixed concentration in mol/L")
	sweepCmd.Flags().Float64Var(&pathArg, "path", 0, "fixed path length in cm")
	sweepCmd.Flags().StringVarP(&outFile, "out", "o", "", "write an SVG chart to this file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive concentration screen in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")
	liveCmd.Flags().StringVar(&soluteArg, "solute", "", "initial solute")
	liveCmd.Flags().StringVar(&formArg, "form", "", "initial solute form: solid or solution")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd,
		solutesCmd, spectrumCmd, absorbanceCmd, sweepCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, the environment and finally
// flags the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewLogger(cfg.LogLevel, os.Stderr), nil
}
