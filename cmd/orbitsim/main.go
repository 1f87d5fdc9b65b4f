package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
)

var (
	method     string
	dtHours    float64
	days       float64
	configFile string
	themeName  string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "heliocentric orbit simulator",
	}
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [planet]",
		Short: "simulate one orbit and report the aphelion",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runOrbit,
	}
	addSimFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [planet]",
		Short: "simulate and plot the orbit in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotOrbit,
	}
	addSimFlags(plotCmd)

	liveCmd := &cobra.Command{
		Use:   "live [planet]",
		Short: "simulate and play back the orbit interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  liveOrbit,
	}
	addSimFlags(liveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [planet]",
		Short: "run every integration method on the same orbit",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareMethods,
	}
	addSimFlags(compareCmd)

	planetsCmd := &cobra.Command{
		Use:   "planets",
		Short: "list the built-in planet presets",
		RunE:  listPlanets,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [planet]",
		Short: "simulate and write the orbit plot as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addSimFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&outFile, "out", "orbit.svg", "output file")

	rootCmd.AddCommand(runCmd, plotCmd, liveCmd, compareCmd, planetsCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", "", "integration method (euler, rk4)")
	cmd.Flags().Float64Var(&dtHours, "dt-hours", 0, "time step in hours")
	cmd.Flags().Float64Var(&days, "days", -1, "simulated days (0 = one orbital period)")
}

// resolveConfig merges defaults, the optional config file and CLI flags
// (flags win) into a validated Config and the selected planet preset.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, config.Planet, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, config.Planet{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Planet = args[0]
	}
	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("dt-hours") {
		cfg.TimeStepHours = dtHours
	}
	if cmd.Flags().Changed("days") {
		cfg.SimulationDays = days
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if cfg.Theme != "" {
		viz.SetTheme(cfg.Theme)
	}

	if err := cfg.Validate(); err != nil {
		return nil, config.Planet{}, err
	}
	planet, _ := config.GetPlanet(cfg.Planet)
	return cfg, planet, nil
}

// simulate runs the configured orbit and locates its aphelion, rescanning
// past the lead-in when the raw maximum is the starting perihelion itself.
func simulate(cfg *config.Config, planet config.Planet) (*orbit.Result, orbit.ApsisResult, error) {
	field, err := physics.NewTwoBody(physics.MuSun)
	if err != nil {
		return nil, orbit.ApsisResult{}, err
	}
	stepper, err := integrators.New(cfg.Method)
	if err != nil {
		return nil, orbit.ApsisResult{}, err
	}

	dt, steps := cfg.TimeSettings(planet)
	s := sim.New(field, stepper)
	for _, m := range metrics.Default(field) {
		s.AddMetric(m)
	}

	result, err := s.Run(context.Background(), planet.InitialState(), sim.Config{Dt: dt, Steps: steps})
	if err != nil {
		return nil, orbit.ApsisResult{}, err
	}

	ap, err := analysis.FindAphelion(result.States)
	if err != nil {
		return nil, orbit.ApsisResult{}, err
	}
	if ap.Index == 0 && len(result.States) > 1 {
		ap, err = analysis.FindAphelionAfter(result.States, analysis.LeadIn(len(result.States)))
		if err != nil {
			return nil, orbit.ApsisResult{}, err
		}
	}

	return result, ap, nil
}

func runOrbit(cmd *cobra.Command, args []string) error {
	cfg, planet, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("simulating %s (%s)...\n", planet.Name, cfg.Method)
	start := time.Now()
	result, ap, err := simulate(cfg, planet)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	peri, err := analysis.FindPerihelion(result.States)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", elapsed)
	fmt.Println(viz.Summary(planet.Name, result.Method, ap))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINT\tSTEP\tDAY\tDISTANCE (Mkm)\tSPEED (km/s)")
	fmt.Fprintf(w, "perihelion\t%d\t%.1f\t%.1f\t%.2f\n",
		peri.Index, result.States[peri.Index].T/86400, peri.Distance/1e9, peri.Speed/1e3)
	fmt.Fprintf(w, "aphelion\t%d\t%.1f\t%.1f\t%.2f\n",
		ap.Index, result.States[ap.Index].T/86400, ap.Distance/1e9, ap.Speed/1e3)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nsteps: %d (dt %.0fs)\n", result.StepsTaken, result.Dt)
	fmt.Println("metrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.3e\n", name, val)
	}
	return nil
}

func plotOrbit(cmd *cobra.Command, args []string) error {
	cfg, planet, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	result, ap, err := simulate(cfg, planet)
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(planet.Name, result.Method, ap))
	fmt.Println()

	canvas := viz.NewCanvas(64, 24)
	camera := viz.NewCamera()
	viz.Render3D(canvas, viz.BuildOrbitScene(result.Positions(), ap.Index), camera)
	fmt.Println(canvas.String())
	fmt.Println(viz.Legend())
	fmt.Println()

	samples := downsample(result.States, 120)
	radius := make([]float64, len(samples))
	speed := make([]float64, len(samples))
	for i, s := range samples {
		radius[i] = s.Radius() / 1e9
		speed[i] = s.Speed() / 1e3
	}

	fmt.Println(asciigraph.Plot(radius, asciigraph.Height(8), asciigraph.Width(100), asciigraph.Caption("distance from sun (million km)")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(speed, asciigraph.Height(8), asciigraph.Width(100), asciigraph.Caption("speed (km/s)")))
	return nil
}

func liveOrbit(cmd *cobra.Command, args []string) error {
	cfg, planet, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	result, ap, err := simulate(cfg, planet)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewPlayback(result, ap, planet.Name))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	cfg, planet, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("comparing methods on %s (dt %.1fh)\n\n", planet.Name, cfg.TimeStepHours)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tAPHELION (Mkm)\tAP SPEED (km/s)\tENERGY DRIFT\tANG MOM DRIFT\tTIME")

	for _, name := range integrators.Names() {
		runCfg := *cfg
		runCfg.Method = name

		start := time.Now()
		result, ap, err := simulate(&runCfg, planet)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2e\t%.2e\t%v\n",
			name,
			ap.Distance/1e9,
			ap.Speed/1e3,
			result.Metrics["energy_drift"],
			result.Metrics["angular_momentum_drift"],
			elapsed.Round(time.Millisecond),
		)
	}
	return w.Flush()
}

func listPlanets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tPERIHELION (Mkm)\tSPEED (km/s)\tPERIOD (days)")
	for _, name := range config.PlanetNames() {
		p, _ := config.GetPlanet(name)
		fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.0f\n", p.Name, p.PerihelionMkm, p.PerihelionKmS, p.OrbitalPeriodDays)
	}
	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, planet, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	result, ap, err := simulate(cfg, planet)
	if err != nil {
		return err
	}

	theme := viz.CurrentTheme
	svg := export.OrbitSVG(result.Positions(), ap, export.SVGOptions{
		Orbit:      planet.Color,
		Sun:        string(theme.Sun),
		Perihelion: string(theme.Perihelion),
		Aphelion:   string(theme.Aphelion),
		Title:      fmt.Sprintf("%s method – %s orbit", strings.ToUpper(result.Method), planet.Name),
		Subtitle: fmt.Sprintf("aphelion distance: %.1f million km, aphelion speed: %.1f km/s",
			ap.Distance/1e9, ap.Speed/1e3),
	})

	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

// downsample keeps every len/n-th state so terminal charts stay readable.
func downsample(states []orbit.State, n int) []orbit.State {
	if len(states) <= n {
		return states
	}
	stride := len(states) / n
	out := make([]orbit.State, 0, n+1)
	for i := 0; i < len(states); i += stride {
		out = append(out, states[i])
	}
	return out
}
