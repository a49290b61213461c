package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/rdsim/internal/config"
	"github.com/san-kum/rdsim/internal/experiment"
	"github.com/san-kum/rdsim/internal/metrics"
	"github.com/san-kum/rdsim/internal/stepper"
	"github.com/san-kum/rdsim/internal/store"
	"github.com/san-kum/rdsim/internal/viz"
)

var (
	configFile   string
	points       int
	steps        int
	length       float64
	duration     float64
	du           float64
	dv           float64
	k0           float64
	totalProtein float64
	outFile      string
	outDir       string
	frameRate    int
	stepsPerTick int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rdsim",
		Short: "two-species reaction-diffusion experiment lab",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&points, "points", config.DefaultPoints, "spatial points")
	rootCmd.PersistentFlags().IntVar(&steps, "steps", config.DefaultSteps, "time steps")
	rootCmd.PersistentFlags().Float64Var(&length, "length", config.DefaultLength, "domain length")
	rootCmd.PersistentFlags().Float64Var(&duration, "time", config.DefaultDuration, "simulated time")
	rootCmd.PersistentFlags().Float64Var(&du, "du", config.DefaultDu, "diffusion coefficient of U")
	rootCmd.PersistentFlags().Float64Var(&dv, "dv", config.DefaultDv, "diffusion coefficient of V")
	rootCmd.PersistentFlags().Float64Var(&k0, "k0", config.DefaultK0, "basal activation rate")
	rootCmd.PersistentFlags().Float64Var(&totalProtein, "mass", config.DefaultTotalProtein, "conserved total protein")

	runCmd := &cobra.Command{
		Use:   "run [scheme]",
		Short: "run one reaction scheme",
		Args:  cobra.ExactArgs(1),
		RunE:  runScheme,
	}
	runCmd.Flags().StringVar(&outFile, "out", "", "export trajectory to JSON file")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run both reaction schemes and report agreement",
		RunE:  compareSchemes,
	}

	liveCmd := &cobra.Command{
		Use:   "live [scheme]",
		Short: "run with live terminal visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerTick, "steps-per-frame", 2, "simulation steps per frame")

	plotCmd := &cobra.Command{
		Use:   "plot [scheme]",
		Short: "render final profiles and a space-time heatmap to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  plotScheme,
	}
	plotCmd.Flags().StringVar(&outDir, "out-dir", ".", "output directory")

	exportCmd := &cobra.Command{
		Use:   "export [scheme]",
		Short: "export trajectory as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportScheme,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (stdout if empty)")

	rootCmd.AddCommand(runCmd, compareCmd, liveCmd, plotCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("length") {
		cfg.Length = length
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("du") {
		cfg.Du = du
	}
	if flags.Changed("dv") {
		cfg.Dv = dv
	}
	if flags.Changed("k0") {
		cfg.K0 = k0
	}
	if flags.Changed("mass") {
		cfg.TotalProtein = totalProtein
	}
	return cfg, nil
}

func runScheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scheme := args[0]

	result, err := experiment.Run(context.Background(), cfg, scheme)
	if err != nil {
		return err
	}

	u, v := result.Last()
	fmt.Println(viz.Profiles(u, v, 72, 14))
	fmt.Println()

	g, _ := cfg.Grid()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "scheme\t%s\n", scheme)
	fmt.Fprintf(w, "grid\t%d points, dx=%.4g\n", g.Points, g.Dx)
	fmt.Fprintf(w, "steps\t%d, dt=%.4g\n", result.StepsTaken, g.Dt)
	fmt.Fprintf(w, "final mass\t%.12f\n", metrics.Mass(u, v, g.Dx))
	fmt.Fprintf(w, "mass drift\t%.3e\n", result.Metrics["mass_drift"])
	w.Flush()

	if outFile != "" {
		if err := store.ExportJSON(outFile, cfg, scheme, result); err != nil {
			return err
		}
		fmt.Printf("exported %s\n", outFile)
	}
	return nil
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cmp, err := experiment.Compare(context.Background(), cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\tmass drift\n")
	fmt.Fprintf(w, "explicit\t%.3e\n", cmp.DriftExplicit)
	fmt.Fprintf(w, "rk4\t%.3e\n", cmp.DriftRK4)
	w.Flush()
	fmt.Printf("final profile agreement: max |dU| = %.3e, max |dV| = %.3e\n", cmp.MaxDiffU, cmp.MaxDiffV)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	g, err := cfg.Grid()
	if err != nil {
		return err
	}
	sc, err := experiment.NewRegistry().GetScheme(args[0], cfg.K0)
	if err != nil {
		return err
	}
	st, err := stepper.New(g, cfg.Params(), sc)
	if err != nil {
		return err
	}
	u0, v0, err := cfg.InitialState()
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewLive(st, u0, v0, frameRate, stepsPerTick))
	_, err = p.Run()
	return err
}

func plotScheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scheme := args[0]

	result, err := experiment.Run(context.Background(), cfg, scheme)
	if err != nil {
		return err
	}

	g, _ := cfg.Grid()
	u, v := result.Last()

	profilePath := filepath.Join(outDir, fmt.Sprintf("profile_%s.png", scheme))
	if err := viz.SaveProfiles(profilePath, fmt.Sprintf("final profiles (%s)", scheme), g, u, v); err != nil {
		return err
	}
	heatmapPath := filepath.Join(outDir, fmt.Sprintf("heatmap_u_%s.png", scheme))
	if err := viz.SaveHeatmap(heatmapPath, fmt.Sprintf("U(x,t) (%s)", scheme), g, result.U); err != nil {
		return err
	}
	fmt.Printf("wrote %s, %s\n", profilePath, heatmapPath)
	return nil
}

func exportScheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scheme := args[0]

	result, err := experiment.Run(context.Background(), cfg, scheme)
	if err != nil {
		return err
	}
	if outFile == "" {
		return store.ExportJSONStdout(cfg, scheme, result)
	}
	return store.ExportJSON(outFile, cfg, scheme, result)
}
