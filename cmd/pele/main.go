package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/jdf43/pele/internal/config"
	"github.com/jdf43/pele/internal/interact"
	"github.com/jdf43/pele/internal/landscape"
	"github.com/jdf43/pele/internal/optim"
	"github.com/jdf43/pele/internal/pairwise"
	"github.com/jdf43/pele/internal/physics"
	"github.com/jdf43/pele/internal/storage"
	"github.com/jdf43/pele/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	eps        float64
	sca        float64
	pow        float64
	radius     float64
	scanFrom   float64
	scanTo     float64
	scanPoints int
	jsonOut    bool
	fdStep     float64
	tol        float64
	maxIter    int
	live       bool
	save       bool
	benchAtoms []int
	workers    int
	seed       int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pele",
		Short: "pairwise potential energy lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pele", "data directory")

	scanCmd := &cobra.Command{
		Use:   "scan [model]",
		Short: "plot pair energy against separation",
		Args:  cobra.ExactArgs(1),
		RunE:  scanPair,
	}
	scanCmd.Flags().Float64Var(&eps, "eps", config.DefaultEps, "well depth")
	scanCmd.Flags().Float64Var(&sca, "sca", config.DefaultSca, "shell thickness fraction (hswca)")
	scanCmd.Flags().Float64Var(&pow, "pow", config.DefaultPow, "exponent (inversepower)")
	scanCmd.Flags().Float64Var(&radius, "radius", 0.5, "hard core radius of each atom")
	scanCmd.Flags().Float64Var(&scanFrom, "from", 1.0, "smallest separation")
	scanCmd.Flags().Float64Var(&scanTo, "to", 1.3, "largest separation")
	scanCmd.Flags().IntVar(&scanPoints, "points", 120, "sample count")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate energy and gradient of a configuration",
		RunE:  evalConfig,
	}
	evalCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	evalCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	evalCmd.Flags().BoolVar(&jsonOut, "json", false, "emit json")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "verify the analytic gradient against finite differences",
		RunE:  checkGradient,
	}
	checkCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	checkCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	checkCmd.Flags().Float64Var(&fdStep, "step", 1e-6, "finite difference step")

	relaxCmd := &cobra.Command{
		Use:   "relax",
		Short: "minimize a configuration with FIRE",
		RunE:  relaxConfig,
	}
	relaxCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	relaxCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	relaxCmd.Flags().Float64Var(&tol, "tol", 1e-5, "gradient rms tolerance")
	relaxCmd.Flags().IntVar(&maxIter, "max-iter", 10000, "iteration limit")
	relaxCmd.Flags().BoolVar(&live, "live", false, "live terminal view")
	relaxCmd.Flags().BoolVar(&save, "save", false, "save the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the energy trajectory of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "time energy and gradient evaluations",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}
	benchCmd.Flags().IntSliceVar(&benchAtoms, "atoms", []int{32, 128, 512}, "system sizes")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all cpus)")
	benchCmd.Flags().Int64Var(&seed, "seed", 42, "random seed")

	rootCmd.AddCommand(scanCmd, evalCmd, checkCmd, relaxCmd, listCmd, exportCmd, plotCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}
	return nil, fmt.Errorf("either --config or --preset is required")
}

func scanPair(cmd *cobra.Command, args []string) error {
	model := args[0]
	radii := []float64{radius, radius}

	var pot landscape.Potential
	switch model {
	case "hswca":
		pot = physics.NewHSWCA(eps, sca, radii)
	case "inversepower":
		pot = physics.NewInversePower(eps, pow, radii)
	default:
		return fmt.Errorf("unknown model: %s (available: %v)", model, physics.Models())
	}

	data := make([]float64, 0, scanPoints)
	skipped := 0
	for i := 0; i < scanPoints; i++ {
		r := scanFrom + (scanTo-scanFrom)*float64(i)/float64(scanPoints-1)
		x := landscape.Coords{0, 0, 0, r, 0, 0}
		e, err := pot.Energy(x)
		if err != nil {
			return err
		}
		if e >= interact.HardCoreOverlap {
			skipped++
			continue
		}
		data = append(data, e)
	}

	if skipped > 0 {
		fmt.Printf("%d separations inside the hard core were skipped\n\n", skipped)
	}
	if len(data) < 2 {
		return fmt.Errorf("nothing to plot: all separations overlap the hard core")
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(14),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s pair energy, r in [%.3g, %.3g]", model, scanFrom, scanTo)),
	)
	fmt.Println(graph)
	return nil
}

func evalConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pot, err := cfg.Build()
	if err != nil {
		return err
	}
	x := cfg.InitialCoords()

	e, grad, err := pot.EnergyGradient(x)
	if err != nil {
		return err
	}

	if jsonOut {
		out := map[string]any{
			"model":      cfg.Model,
			"ndim":       cfg.NDim,
			"dof":        len(x),
			"energy":     e,
			"grad_rms":   grad.Norm() / math.Sqrt(float64(len(grad))),
			"grad_max":   grad.MaxAbs(),
			"infeasible": e >= interact.HardCoreOverlap,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "model\t%s\n", cfg.Model)
	fmt.Fprintf(w, "dof\t%d\n", len(x))
	fmt.Fprintf(w, "energy\t%.10g\n", e)
	fmt.Fprintf(w, "grad rms\t%.6e\n", grad.Norm()/math.Sqrt(float64(len(grad))))
	fmt.Fprintf(w, "grad max\t%.6e\n", grad.MaxAbs())
	if e >= interact.HardCoreOverlap {
		fmt.Fprintf(w, "status\thard core overlap\n")
	}
	return w.Flush()
}

func checkGradient(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pot, err := cfg.Build()
	if err != nil {
		return err
	}
	x := cfg.InitialCoords()

	_, analytic, err := pot.EnergyGradient(x)
	if err != nil {
		return err
	}
	numeric, err := landscape.NumericalGradient(pot, x, fdStep)
	if err != nil {
		return err
	}

	maxAbs := 0.0
	maxRel := 0.0
	for i := range analytic {
		diff := math.Abs(analytic[i] - numeric[i])
		if diff > maxAbs {
			maxAbs = diff
		}
		if scale := math.Abs(analytic[i]); scale > 1e-10 {
			if rel := diff / scale; rel > maxRel {
				maxRel = rel
			}
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "dof\t%d\n", len(x))
	fmt.Fprintf(w, "fd step\t%g\n", fdStep)
	fmt.Fprintf(w, "max abs error\t%.6e\n", maxAbs)
	fmt.Fprintf(w, "max rel error\t%.6e\n", maxRel)
	return w.Flush()
}

func relaxConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pot, err := cfg.Build()
	if err != nil {
		return err
	}
	x := cfg.InitialCoords()

	fire := optim.NewFIRE()
	fire.Tol = tol
	fire.MaxIter = maxIter

	var trajectory []storage.TrajectoryPoint
	if save {
		fire.OnStep = func(iter int, energy, gradRMS float64) {
			trajectory = append(trajectory, storage.TrajectoryPoint{Iter: iter, Energy: energy, GradRMS: gradRMS})
		}
	}

	var res *optim.Result
	start := time.Now()
	if live {
		res, err = tui.RunRelax(cfg.Model, pot, x, fire)
	} else {
		res, err = fire.Run(context.Background(), pot, x)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("iterations: %d\n", res.Iterations)
	fmt.Printf("energy: %.10g\n", res.Energy)
	fmt.Printf("grad rms: %.6e\n", res.GradRMS)
	fmt.Printf("converged: %v\n", res.Converged)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		meta := storage.RunMetadata{
			Model:      cfg.Model,
			NumAtoms:   len(cfg.Radii),
			NDim:       cfg.NDim,
			Iterations: res.Iterations,
			Energy:     res.Energy,
			GradRMS:    res.GradRMS,
			Converged:  res.Converged,
		}
		runID, err := st.Save(meta, trajectory, res.Coords)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tATOMS\tITERS\tENERGY\tCONVERGED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.6g\t%v\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.NumAtoms,
			run.Iterations,
			run.Energy,
			run.Converged,
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trajectory, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(trajectory) < 2 {
		return fmt.Errorf("no trajectory to plot")
	}

	data := make([]float64, len(trajectory))
	for i, p := range trajectory {
		data[i] = p.Energy
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("energy vs iteration"),
	)
	fmt.Println(graph)
	return nil
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := args[0]
	rng := rand.New(rand.NewSource(seed))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ATOMS\tPAIRS\tENERGY\tGRADIENT\tPARALLEL GRAD")

	for _, n := range benchAtoms {
		radii := make([]float64, n)
		x := make(landscape.Coords, 3*n)
		// dilute box keeps most pairs outside the cutoff
		L := 2.0 * math.Cbrt(float64(n))
		for i := 0; i < n; i++ {
			radii[i] = 0.5
			x[3*i] = rng.Float64() * L
			x[3*i+1] = rng.Float64() * L
			x[3*i+2] = rng.Float64() * L
		}

		var pot *pairwise.AllPairs
		switch model {
		case "hswca":
			pot = physics.NewHSWCA(config.DefaultEps, config.DefaultSca, radii)
		case "inversepower":
			pot = physics.NewInversePower(config.DefaultEps, config.DefaultPow, radii)
		default:
			return fmt.Errorf("unknown model: %s (available: %v)", model, physics.Models())
		}
		par := pairwise.NewParallel(pot, workers)

		tE := timeIt(func() error { _, err := pot.Energy(x); return err })
		tG := timeIt(func() error { _, _, err := pot.EnergyGradient(x); return err })
		tP := timeIt(func() error { _, _, err := par.EnergyGradient(x); return err })

		fmt.Fprintf(w, "%d\t%d\t%v\t%v\t%v\n", n, n*(n-1)/2, tE, tG, tP)
	}
	return w.Flush()
}

func timeIt(fn func() error) time.Duration {
	const reps = 10
	start := time.Now()
	for i := 0; i < reps; i++ {
		if err := fn(); err != nil {
			return 0
		}
	}
	return time.Since(start) / reps
}
