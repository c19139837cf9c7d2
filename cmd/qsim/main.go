package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/qsim/internal/accel"
	"github.com/san-kum/qsim/internal/analysis"
	"github.com/san-kum/qsim/internal/config"
	"github.com/san-kum/qsim/internal/device"
	"github.com/san-kum/qsim/internal/export"
	"github.com/san-kum/qsim/internal/metrics"
	"github.com/san-kum/qsim/internal/quantum"
	"github.com/san-kum/qsim/internal/scenario"
	"github.com/san-kum/qsim/internal/storage"
	"github.com/san-kum/qsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	qubits  int
	wires   []int
	shots   int
	// Backend selection
	emulate   bool
	bitstream string
	latency   int
	failRate  float64
	failAt    int
	seed      int64
	// Config file
	configFile string
	capsFile   string
	// Preset name
	preset string
	// Output
	verbose   bool
	wireOrder bool
	outFile   string
	svgWidth  int
	svgHeight int
	// Ensemble size
	numRuns int
	// Bench sweep upper bound
	benchMax int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qsim",
		Short: "state-vector quantum device with accelerator offload",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	addBackendFlags(runCmd)
	runCmd.Flags().IntVar(&qubits, "qubits", config.DefaultQubits, "register size (custom scenario)")
	runCmd.Flags().IntSliceVar(&wires, "wires", nil, "wire sequence (custom scenario)")
	runCmd.Flags().IntVar(&shots, "shots", config.DefaultShots, "shot count stored with the run")
	runCmd.Flags().BoolVar(&wireOrder, "wire-order", false, "also print the wire-ordered state")
	runCmd.Flags().IntVar(&numRuns, "runs", 1, "parallel ensemble size")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a scripted gate sequence",
		Args:  cobra.ExactArgs(1),
		RunE:  runScriptFile,
	}
	addBackendFlags(scriptCmd)

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := scenario.NewRegistry()
			fmt.Println("scenarios:")
			for _, name := range registry.List() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list backend presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run probabilities",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run probabilities to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output path (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "chart width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 320, "chart height")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark software against the emulated accelerator",
		RunE:  benchBackends,
	}
	benchCmd.Flags().IntVar(&benchMax, "max-qubits", 10, "largest register in the sweep")

	compareCmd := &cobra.Command{
		Use:   "compare [scenario]",
		Short: "compare backends on the same scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  compareBackends,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive register view",
		RunE:  runLive,
	}
	addBackendFlags(liveCmd)
	liveCmd.Flags().IntVar(&qubits, "qubits", config.DefaultQubits, "initial register size")

	rootCmd.AddCommand(runCmd, scriptCmd, scenariosCmd, presetsCmd, listCmd, plotCmd,
		exportCmd, exportJSONCmd, exportSVGCmd, benchCmd, compareCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBackendFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&capsFile, "capabilities", "", "capability file path (yaml)")
	cmd.Flags().BoolVar(&emulate, "emulate", true, "run against the accelerator emulator")
	cmd.Flags().StringVar(&bitstream, "bitstream", accel.DefaultBitstream, "accelerator image")
	cmd.Flags().IntVar(&latency, "latency", 1000, "emulator latency in microseconds")
	cmd.Flags().Float64Var(&failRate, "fail-rate", 0, "emulator random fault rate")
	cmd.Flags().IntVar(&failAt, "fail-at", 0, "emulator deterministic fault run (1-based)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "emulator random seed (0 = time)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log device events to stderr")
}

// resolveConfig layers preset, config file and CLI flags, with later
// layers winning only when explicitly set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("qubits") {
		cfg.Qubits = qubits
	}
	if cmd.Flags().Changed("wires") {
		cfg.Wires = wires
	}
	if cmd.Flags().Changed("shots") {
		cfg.Shots = shots
	}
	if cmd.Flags().Changed("capabilities") {
		cfg.Capabilities = capsFile
	}
	if cmd.Flags().Changed("emulate") {
		cfg.Accel.Emulate = emulate
	}
	if cmd.Flags().Changed("bitstream") {
		cfg.Accel.Bitstream = bitstream
	}
	if cmd.Flags().Changed("latency") {
		cfg.Accel.Emulator.LatencyMicros = latency
	}
	if cmd.Flags().Changed("fail-rate") {
		cfg.Accel.Emulator.FailRate = failRate
	}
	if cmd.Flags().Changed("fail-at") {
		cfg.Accel.Emulator.FailAt = failAt
	}
	if cmd.Flags().Changed("seed") {
		cfg.Accel.Emulator.Seed = seed
	}

	return cfg, nil
}

// buildDevice assembles a device from a resolved config, keeping the
// emulator handle for status display when one is in play.
func buildDevice(cfg *config.Config) (*device.Device, *accel.Emulator, *metrics.Recorder, error) {
	rec := metrics.NewRecorder()
	observers := []quantum.Observer{rec}
	if verbose {
		observers = append(observers, metrics.NewLogger(os.Stderr))
	}

	caps := device.DefaultCapabilities()
	if cfg.Capabilities != "" {
		loaded, err := device.LoadCapabilities(cfg.Capabilities)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load capabilities: %w", err)
		}
		caps = loaded
	}

	var em *accel.Emulator
	var session accel.Session
	if cfg.Accel.Emulate {
		em = accel.NewEmulator(cfg.Accel.Emulator)
		session = em
	}

	dev := device.New(device.Config{
		Capabilities: caps,
		Accel:        cfg.Accel,
		Session:      session,
		Observers:    observers,
	})
	return dev, em, rec, nil
}

func backendName(dev *device.Device, em *accel.Emulator) string {
	if em != nil {
		return "emulated"
	}
	if dev.BridgeState() != accel.Unavailable {
		return "xrt"
	}
	return "software"
}

func basisLabel(i, qubits int) string {
	return fmt.Sprintf("|%0*b>", qubits, i)
}

func runScenario(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	registry := scenario.NewRegistry()
	sc, err := registry.Get(name)
	if err != nil {
		if name != "custom" {
			return fmt.Errorf("%w (available: %v, or \"custom\" with --qubits/--wires)", err, registry.List())
		}
		sc = scenario.FromConfig(name, cfg)
	}
	if cmd.Flags().Changed("shots") {
		sc.Shots = shots
	}

	if numRuns > 1 {
		return runEnsemble(sc, cfg)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	dev, em, rec, err := buildDevice(cfg)
	if err != nil {
		return err
	}
	defer dev.Close()

	fmt.Printf("running %s scenario...\n", sc.Name)

	result, err := sc.Run(context.Background(), dev)
	if err != nil {
		return err
	}

	backend := backendName(dev, em)
	runID, err := st.Save(sc.Name, backend, rec.AsMap(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("backend: %s (bridge %s)\n", backend, dev.BridgeState())

	printState("state vector (device order)", result.Amplitudes, result.Qubits)
	if wireOrder {
		ordered := analysis.WireOrdered(result.Amplitudes, result.Qubits)
		printState("state vector (wire order)", ordered, result.Qubits)
	}

	fmt.Println("\nmetrics:")
	for name, val := range rec.AsMap() {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runEnsemble(sc scenario.Scenario, cfg *config.Config) error {
	rec := metrics.NewRecorder()

	ens := scenario.NewEnsemble(sc, numRuns, func() *device.Device {
		var session accel.Session
		if cfg.Accel.Emulate {
			session = accel.NewEmulator(cfg.Accel.Emulator)
		}
		return device.New(device.Config{
			Accel:     cfg.Accel,
			Session:   session,
			Observers: []quantum.Observer{rec},
		})
	})

	fmt.Printf("running %s scenario, ensemble of %d...\n", sc.Name, numRuns)

	results, err := ens.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tELAPSED\tMAX DEV FROM RUN 0")
	for i, r := range results {
		dev := analysis.MaxDeviation(results[0].Amplitudes, r.Amplitudes)
		fmt.Fprintf(w, "%d\t%v\t%.2e\n", i, r.Elapsed, dev)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nmetrics:")
	for name, val := range rec.AsMap() {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func printState(title string, v quantum.Vector, qubits int) {
	fmt.Printf("\n%s:\n", title)
	rows := len(v)
	const maxRows = 32
	if rows > maxRows {
		rows = maxRows
	}
	for i := 0; i < rows; i++ {
		p := real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		fmt.Printf("  %s  %+.6f%+.6fi  p=%.6f\n", basisLabel(i, qubits), real(v[i]), imag(v[i]), p)
	}
	if len(v) > rows {
		fmt.Printf("  ... %d more states\n", len(v)-rows)
	}
}

func runScriptFile(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	script, err := scenario.LoadScript(args[0])
	if err != nil {
		return err
	}

	dev, _, rec, err := buildDevice(cfg)
	if err != nil {
		return err
	}
	defer dev.Close()

	fmt.Printf("running script %s (%d steps)...\n", script.Name, len(script.Steps))

	if err := scenario.RunScript(context.Background(), script, dev); err != nil {
		return err
	}

	fmt.Printf("script ok, register holds %d qubits\n", dev.GetNumQubits())
	if dev.GetNumQubits() > 0 {
		printState("final state (device order)", dev.StateVector(), dev.GetNumQubits())
	}

	fmt.Println("\nmetrics:")
	for name, val := range rec.AsMap() {
		fmt.Printf("  %s: %.6f\n", name, val)
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tQUBITS\tSHOTS\tBACKEND")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Qubits,
			run.Shots,
			run.Backend,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	amps, err := st.LoadAmplitudes(runID)
	if err != nil {
		return err
	}
	if len(amps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("backend: %s\n\n", meta.Backend)

	probs := amps.Probabilities()
	graph := asciigraph.Plot(probs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("probability by basis index (device order)"),
	)
	fmt.Println(graph)
	fmt.Println()

	rows := len(probs)
	const maxRows = 32
	if rows > maxRows {
		rows = maxRows
	}
	for i := 0; i < rows; i++ {
		bar := strings.Repeat("█", int(probs[i]*40))
		fmt.Printf("  %s  %.6f  %s\n", basisLabel(i, meta.Qubits), probs[i], bar)
	}
	if len(probs) > rows {
		fmt.Printf("  ... %d more states\n", len(probs)-rows)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	amps, err := st.LoadAmplitudes(runID)
	if err != nil {
		return err
	}

	result := &quantum.Result{
		Qubits:        meta.Qubits,
		Wires:         meta.Wires,
		Shots:         meta.Shots,
		Amplitudes:    amps,
		Probabilities: amps.Probabilities(),
	}

	return storage.ExportJSONStdout(meta.Scenario, meta.Backend, meta.Metrics, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	amps, err := st.LoadAmplitudes(runID)
	if err != nil {
		return err
	}
	if len(amps) == 0 {
		return fmt.Errorf("no data to export")
	}

	svg := export.ProbabilityBarsToSVG(amps.Probabilities(), meta.Qubits, svgWidth, svgHeight, "#00ff88")
	if svg == "" {
		return fmt.Errorf("nothing to render for %s", runID)
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

func benchBackends(cmd *cobra.Command, args []string) error {
	fmt.Printf("hadamard sweep, software vs emulated accelerator\n\n")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUBITS\tDIM\tSOFTWARE\tEMULATED\tMAX DEV")

	softMicros := make([]float64, 0, benchMax)
	for n := 2; n <= benchMax; n++ {
		allWires := make([]int, n)
		for i := range allWires {
			allWires[i] = i
		}
		sc := scenario.Scenario{Name: "sweep", Qubits: n, Wires: allWires}

		softDev := device.New(device.Config{Accel: accel.Config{Emulate: false}})
		softResult, err := sc.Run(context.Background(), softDev)
		if err != nil {
			return err
		}

		emCfg := accel.Config{
			Emulate:  true,
			Emulator: accel.EmulatorConfig{LatencyMicros: 0, Seed: 1},
		}
		emDev := device.New(device.Config{Accel: emCfg, Session: accel.NewEmulator(emCfg.Emulator)})
		emResult, err := sc.Run(context.Background(), emDev)
		if err != nil {
			return err
		}

		dev := analysis.MaxDeviation(softResult.Amplitudes, emResult.Amplitudes)
		fmt.Fprintf(w, "%d\t%d\t%v\t%v\t%.2e\n",
			n, quantum.Dim(n), softResult.Elapsed, emResult.Elapsed, dev)

		softMicros = append(softMicros, float64(softResult.Elapsed.Microseconds()))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if len(softMicros) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(softMicros,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("software time (us) by register size"),
		)
		fmt.Println(graph)
	}

	return nil
}

func compareBackends(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := scenario.NewRegistry()
	sc, err := registry.Get(name)
	if err != nil {
		return err
	}

	fmt.Printf("comparing backends for %s (%d qubits, wires %v)\n\n", sc.Name, sc.Qubits, sc.Wires)
	fmt.Printf("%-12s  %-12s  %-12s  %-12s\n", "backend", "p(|0...0>)", "entropy", "elapsed")
	fmt.Println(strings.Repeat("-", 56))

	softDev := device.New(device.Config{Accel: accel.Config{Emulate: false}})
	softResult, err := sc.Run(context.Background(), softDev)
	if err != nil {
		return err
	}
	printCompareRow("software", softResult)

	emCfg := accel.Config{
		Emulate:  true,
		Emulator: accel.EmulatorConfig{LatencyMicros: 0, Seed: 1},
	}
	emDev := device.New(device.Config{Accel: emCfg, Session: accel.NewEmulator(emCfg.Emulator)})
	emResult, err := sc.Run(context.Background(), emDev)
	if err != nil {
		return err
	}
	printCompareRow("emulated", emResult)

	fmt.Println()
	fmt.Printf("fidelity:        %.9f\n", analysis.Fidelity(softResult.Amplitudes, emResult.Amplitudes))
	fmt.Printf("max deviation:   %.2e\n", analysis.MaxDeviation(softResult.Amplitudes, emResult.Amplitudes))
	fmt.Printf("total variation: %.2e\n", analysis.TotalVariation(softResult.Probabilities, emResult.Probabilities))

	return nil
}

func printCompareRow(backend string, r *quantum.Result) {
	fmt.Printf("%-12s  %12.9f  %12.6f  %12v\n",
		backend, r.Probabilities[0], analysis.ShannonEntropy(r.Probabilities), r.Elapsed)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	dev, em, rec, err := buildDevice(cfg)
	if err != nil {
		return err
	}
	defer dev.Close()

	dev.AllocateQubits(cfg.Qubits)

	m := viz.NewModel(dev, em, rec)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
