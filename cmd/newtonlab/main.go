package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/calistasalscpw/newtonlab/internal/audio"
	"github.com/calistasalscpw/newtonlab/internal/config"
	"github.com/calistasalscpw/newtonlab/internal/export"
	"github.com/calistasalscpw/newtonlab/internal/gui"
	"github.com/calistasalscpw/newtonlab/internal/render"
	"github.com/calistasalscpw/newtonlab/internal/scenario"
	"github.com/calistasalscpw/newtonlab/internal/store"
	"github.com/calistasalscpw/newtonlab/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	sound      bool
	seed       int64

	massCategory  string
	speedCategory string
	massScale     float64
	distance      float64

	frames     int
	snapFrames int
	field      string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "newtonlab",
		Short: "interactive Newton's third law demonstrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("")
			if err != nil {
				return err
			}
			return tui.Run(cfg, audio.NewPlayer(cfg.Sound))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".newtonlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&sound, "sound", false, "enable impact sound")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "starfield seed")

	hammerCmd := &cobra.Command{
		Use:   "hammer",
		Short: "run the hammer and nail scenario",
		RunE:  func(cmd *cobra.Command, args []string) error { return runScenario("hammer") },
	}
	orbitCmd := &cobra.Command{
		Use:   "orbit",
		Short: "run the earth and moon scenario",
		RunE:  func(cmd *cobra.Command, args []string) error { return runScenario("orbit") },
	}
	for _, c := range []*cobra.Command{hammerCmd, orbitCmd} {
		addScenarioFlags(c)
	}

	guiCmd := &cobra.Command{
		Use:   "gui [scenario]",
		Short: "run a scenario in a desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			cfg, err := loadConfig(name)
			if err != nil {
				return err
			}
			return gui.Run(cfg, audio.NewPlayer(cfg.Sound))
		},
	}
	addScenarioFlags(guiCmd)

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headless and record the frames",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&field, "field", "force", "recorded column to plot")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's frames as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [scenario]",
		Short: "render a scenario frame to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	addScenarioFlags(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&snapFrames, "frames", 120, "frames to advance before the snapshot")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "snapshot.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(hammerCmd, orbitCmd, guiCmd, runCmd, listCmd, plotCmd,
		exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
	cmd.Flags().StringVar(&massCategory, "mass", "", "hammer mass category (light/medium/heavy)")
	cmd.Flags().StringVar(&speedCategory, "speed", "", "swing speed category (slow/medium/fast)")
	cmd.Flags().Float64Var(&massScale, "mass-scale", 0, "planet/moon mass multiplier (0.5/1/1.5/2)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "initial orbit distance")
}

// loadConfig builds the effective config: file or defaults, then preset,
// then flag overrides.
func loadConfig(scenarioName string) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if scenarioName != "" {
		cfg.Scenario = scenarioName
	}

	if preset != "" {
		p := config.GetPreset(cfg.Scenario, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets(cfg.Scenario))
		}
		cfg = p.Normalized()
	}

	if massCategory != "" {
		cfg.Hammer.Mass = massCategory
	}
	if speedCategory != "" {
		cfg.Hammer.Speed = speedCategory
	}
	if massScale != 0 {
		cfg.Orbit.MassScale = massScale
	}
	if distance != 0 {
		cfg.Orbit.Distance = distance
	}
	if sound {
		cfg.Sound = true
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScenario(name string) error {
	cfg, err := loadConfig(name)
	if err != nil {
		return err
	}
	return tui.Run(cfg, audio.NewPlayer(cfg.Sound))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig(name)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var rec *scenario.Recorder
	settings := map[string]string{}

	switch name {
	case "hammer":
		hp, err := cfg.HammerParams()
		if err != nil {
			return err
		}
		h := scenario.NewHammer(hp)
		h.Hit()
		rec = scenario.NewRecorder(scenario.HammerColumns...)
		err = scenario.Run(ctx, h, frames, func(int) bool {
			rec.Record(h.Sample()...)
			return true
		})
		if err != nil {
			return err
		}
		settings["mass"] = cfg.Hammer.Mass
		settings["speed"] = cfg.Hammer.Speed
		fmt.Printf("final: phase=%s depth=%.2f force=%.2f\n", h.Phase, h.NailDepth, h.ForceMagnitude)

	case "orbit":
		o := scenario.NewOrbit(cfg.OrbitParams())
		o.Play()
		rec = scenario.NewRecorder(scenario.OrbitColumns...)
		err = scenario.Run(ctx, o, frames, func(int) bool {
			rec.Record(o.Sample()...)
			return true
		})
		if err != nil {
			return err
		}
		settings["mass_scale"] = fmt.Sprintf("%g", cfg.Orbit.MassScale)
		fmt.Printf("final: phase=%s distance=%.2f velocity=%.2f force=%.2f\n", o.Phase, o.Distance, o.Velocity, o.Force)

	default:
		return fmt.Errorf("unknown scenario %q", name)
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(name, cfg.Seed, settings, rec)
	if err != nil {
		return err
	}
	fmt.Printf("saved run: %s (%d frames)\n", runID, len(rec.Rows))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tFRAMES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", run.ID, run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"), run.Frames)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	rec, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	series := rec.Column(field)
	if series == nil {
		return fmt.Errorf("unknown field %q (available: %v)", field, rec.Columns)
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s over %d frames", field, len(series))),
	)
	fmt.Println(graph)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rec, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Meta    *store.RunMetadata `json:"meta"`
		Columns []string           `json:"columns"`
		Frames  [][]float64        `json:"frames"`
	}{meta, rec.Columns, rec.Rows}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	f, err := os.Open(filepath.Join(dataDir, args[0], "frames.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(os.Stdout, f)
	return err
}

func exportSVG(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig(name)
	if err != nil {
		return err
	}

	canvas := render.NewCanvas(100, 35)
	viewport := render.NewViewport(100, 35)
	ctx := context.Background()

	switch name {
	case "hammer":
		hp, err := cfg.HammerParams()
		if err != nil {
			return err
		}
		h := scenario.NewHammer(hp)
		h.Hit()
		if err := scenario.Run(ctx, h, snapFrames, nil); err != nil {
			return err
		}
		render.HammerScene(canvas, viewport, h)

	case "orbit":
		o := scenario.NewOrbit(cfg.OrbitParams())
		o.Play()
		if err := scenario.Run(ctx, o, snapFrames, nil); err != nil {
			return err
		}
		render.OrbitScene(canvas, viewport, o, render.Starfield(cfg.Seed, 70))

	default:
		return fmt.Errorf("unknown scenario %q", name)
	}

	if err := os.WriteFile(outFile, []byte(export.SVG(canvas, 4)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
