package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/beerslab/internal/beerslaw"
	"github.com/san-kum/beerslab/internal/export"
	"github.com/san-kum/beerslab/internal/scenario"
	"github.com/san-kum/beerslab/internal/solute"
	"github.com/san-kum/beerslab/internal/viz"
)

func listSolutes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tFORMULA\tSTOCK\tSATURATED\tMOLAR MASS\tPEAK")
	for _, s := range solute.Catalog() {
		peak := "-"
		if s.Absorptivity != nil {
			peak = fmt.Sprintf("%d nm", s.PeakWavelength())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3g M\t%.3g M\t%.2f g/mol\t%s\n",
			s.Key, s.Name, s.Formula, s.StockSolutionConcentration, s.SaturatedConcentration, s.MolarMass, peak)
	}
	return w.Flush()
}

func plotSpectrum(cmd *cobra.Command, args []string) error {
	var solutes []*solute.Solute
	if len(args) == 0 {
		solutes = solute.WithSpectrum()
	}
	for _, name := range args {
		s, err := solute.ByName(name)
		if err != nil {
			return err
		}
		if s.Absorptivity == nil {
			return fmt.Errorf("%w: %s has no absorption spectrum", solute.ErrUnknownSolute, s.Name)
		}
		solutes = append(solutes, s)
	}

	if outFile != "" {
		return writeChart(export.SpectrumChart(solutes...), outFile)
	}
	for _, s := range solutes {
		graph := asciigraph.Plot(s.Absorptivity.Values(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s, %d-%d nm, peak %d nm", s.Name, solute.MinWavelength, solute.MaxWavelength, s.PeakWavelength())),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

// labModel returns a Beer's law model with the named solution selected and
// any fixed inputs from flags applied.
func labModel(name string) (*beerslaw.Model, error) {
	m := beerslaw.NewModel()
	if err := m.SelectSolution(name); err != nil {
		return nil, err
	}
	if wavelengthArg > 0 {
		m.Light.Wavelength.Set(wavelengthArg)
	}
	if concArg > 0 {
		m.Solution.Get().Concentration.Set(concArg)
	}
	return m, nil
}

func computeAbsorbance(cmd *cobra.Command, args []string) error {
	if pathArg < 0 {
		return fmt.Errorf("negative path length %g", pathArg)
	}
	m, err := labModel(args[0])
	if err != nil {
		return err
	}
	path := m.Cuvette.Width.Get()
	if pathArg > 0 {
		path = pathArg
	}
	solution := m.Solution.Get()
	c := solution.Concentration.Get()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "solution\t%s\n", solution.Name())
	fmt.Fprintf(w, "wavelength\t%.0f nm\n", m.Light.Wavelength.Get())
	fmt.Fprintf(w, "concentration\t%.4g %s\n", solution.Unit.Display(c), solution.Unit.Symbol)
	fmt.Fprintf(w, "path length\t%.3g cm\n", path)
	fmt.Fprintf(w, "molar absorptivity\t%.4g 1/(M·cm)\n", m.Absorbance.MolarAbsorptivity.Get())
	fmt.Fprintf(w, "absorbance\t%.4f\n", m.Absorbance.At(path))
	fmt.Fprintf(w, "transmittance\t%.2f %%\n", 100*m.Absorbance.TransmittanceAt(path))
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	sw := scenario.Sweep{
		Solution:      args[0],
		Variable:      scenario.Variable(sweepVar),
		Min:           sweepMin,
		Max:           sweepMax,
		Steps:         sweepSteps,
		Wavelength:    wavelengthArg,
		Concentration: concArg,
		PathLength:    pathArg,
	}
	unit := "nm"
	switch sw.Variable {
	case scenario.Concentration:
		m, err := labModel(args[0])
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("min") {
			sw.Min = m.Solution.Get().ConcentrationRange.Min
		}
		if !cmd.Flags().Changed("max") {
			sw.Max = m.Solution.Get().ConcentrationRange.Max
		}
		unit = "mol/L"
	case scenario.PathLength:
		if !cmd.Flags().Changed("min") {
			sw.Min = 0
		}
		if !cmd.Flags().Changed("max") {
			sw.Max = beerslaw.CuvetteWidthRange.Max
		}
		unit = "cm"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	points, err := scenario.RunSweep(ctx, sw)
	if err != nil {
		return err
	}

	if outFile != "" {
		xs := make([]float64, len(points))
		abs := make([]float64, len(points))
		trans := make([]float64, len(points))
		for i, p := range points {
			xs[i], abs[i], trans[i] = p.X, p.Absorbance, p.Transmittance
		}
		chart := export.Chart{
			Title:  fmt.Sprintf("%s: %s sweep", args[0], sw.Variable),
			XLabel: fmt.Sprintf("%s (%s)", sw.Variable, unit),
			YLabel: "absorbance / transmittance",
			Series: []export.Series{
				{Name: "absorbance", X: xs, Y: abs},
				{Name: "transmittance", X: xs, Y: trans},
			},
		}
		return writeChart(chart, outFile)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s (%s)\tABSORBANCE\tTRANSMITTANCE\n", sw.Variable, unit)
	for _, p := range points {
		fmt.Fprintf(w, "%.6g\t%.4f\t%.4f\n", p.X, p.Absorbance, p.Transmittance)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runner := scenario.NewRunner(cfg, logger)
	m, err := runner.NewModel(cfg.Seed)
	if err != nil {
		return err
	}
	if err := scenario.Prepare(m, &scenario.Scenario{Solute: soluteArg, Form: formArg}); err != nil {
		return err
	}
	return viz.RunLive(m, cfg.Dt, cfg.FrameRate)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOLUTE\tDURATION\tDESCRIPTION")
	for _, name := range scenario.PresetNames() {
		s, err := scenario.Preset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%.1fs\t%s\n", name, s.Solute, s.Duration, s.Description)
	}
	return w.Flush()
}
