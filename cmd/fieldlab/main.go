package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/fieldlab/internal/charge"
	"github.com/san-kum/fieldlab/internal/config"
	"github.com/san-kum/fieldlab/internal/distribution"
	"github.com/san-kum/fieldlab/internal/export"
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/gauss"
	"github.com/san-kum/fieldlab/internal/multipole"
	"github.com/san-kum/fieldlab/internal/storage"
	"github.com/san-kum/fieldlab/internal/viz"
)

var (
	dataDir string
	verbose bool
	save    bool
	svgOut  string
	// Gauss
	angle     float64
	fluxIn    float64
	fluxOut   float64
	volume    float64
	intensity float64
	// Multipole
	vectorGrid bool
	gridCell   float64
	// Profile
	points   int
	maxDist  float64
	useGauss bool
	// export-svg
	braille bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldlab",
		Short: "electrostatics field lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: runExplore,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fieldlab", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addScenarioFlags(rootCmd)

	fieldCmd := &cobra.Command{
		Use:   "field [x] [y]",
		Short: "field of a charge distribution at one point",
		Args:  cobra.MaximumNArgs(2),
		RunE:  fieldAtPoint,
	}
	addScenarioFlags(fieldCmd)
	addDistributionFlags(fieldCmd)

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "sample a distribution's vector field on a grid",
		RunE:  sampleField,
	}
	addScenarioFlags(sampleCmd)
	addDistributionFlags(sampleCmd)
	sampleCmd.Flags().BoolVar(&save, "save", false, "store the run")
	sampleCmd.Flags().StringVar(&svgOut, "svg", "", "write vectors to an svg file")

	gaussCmd := &cobra.Command{
		Use:   "gauss",
		Short: "gauss's law: flux, divergence and the sphere's radial field",
		RunE:  runGauss,
	}
	addScenarioFlags(gaussCmd)
	gaussCmd.Flags().Float64Var(&angle, "angle", 0, "angle between field and normal (degrees)")
	gaussCmd.Flags().Float64Var(&fluxIn, "in", 0, "flux entering the region")
	gaussCmd.Flags().Float64Var(&fluxOut, "out", 0, "flux leaving the region")
	gaussCmd.Flags().Float64Var(&volume, "volume", 1, "region volume")
	gaussCmd.Flags().Float64Var(&intensity, "intensity", 5, "divergence intensity level (0-10)")
	gaussCmd.Flags().BoolVar(&save, "save", false, "store the arrow grid")
	gaussCmd.Flags().StringVar(&svgOut, "svg", "", "write arrows to an svg file")

	fluxCmd := &cobra.Command{
		Use:   "flux [field] [area] [angle]",
		Short: "flux of a uniform field through a flat area, angle in degrees",
		Args:  cobra.ExactArgs(3),
		RunE:  runFlux,
	}

	multipoleCmd := &cobra.Command{
		Use:   "multipole",
		Short: "classify poles and generate field lines",
		RunE:  runMultipole,
	}
	addScenarioFlags(multipoleCmd)
	multipoleCmd.Flags().BoolVar(&vectorGrid, "grid", false, "sample the vector grid instead of field lines")
	multipoleCmd.Flags().Float64Var(&gridCell, "spacing", 0, "vector grid spacing (0 for the default)")
	multipoleCmd.Flags().BoolVar(&save, "save", false, "store the run")
	multipoleCmd.Flags().StringVar(&svgOut, "svg", "", "write vectors to an svg file")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot field magnitude against distance from the center",
		RunE:  runProfile,
	}
	addScenarioFlags(profileCmd)
	addDistributionFlags(profileCmd)
	profileCmd.Flags().IntVar(&points, "points", 80, "samples along the profile")
	profileCmd.Flags().Float64Var(&maxDist, "max", 200, "largest distance")
	profileCmd.Flags().BoolVar(&useGauss, "gauss", false, "profile the gauss sphere instead")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "move and recharge poles interactively",
		RunE:  runExplore,
	}
	addScenarioFlags(exploreCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a stored run to svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportCmd.Flags().StringVar(&svgOut, "out", "", "output path (default <run_id>.svg)")
	exportCmd.Flags().BoolVar(&braille, "braille", false, "export the braille rendering instead of lines")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tPOLES")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\n", name, cfg.Distribution.Kind, len(cfg.Poles))
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(fieldCmd, sampleCmd, gaussCmd, fluxCmd, multipoleCmd, profileCmd, exploreCmd, listCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fieldAtPoint(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	at := cfg.Sensor
	if len(args) == 2 {
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("x: %w", err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("y: %w", err)
		}
		at = field.V(x, y)
	} else if len(args) == 1 {
		return fmt.Errorf("need both x and y")
	}

	p := cfg.Distribution
	calc := distribution.NewCalculator()
	s := calc.FieldAt(p, at.X, at.Y)

	fmt.Printf("distribution: %s (density %g, size %g)\n", p.Kind, p.Density, p.Size)
	fmt.Printf("total charge: %s\n", humanize.SIWithDigits(p.TotalCharge(), 3, "C"))
	fmt.Printf("point:        (%g, %g)\n", at.X, at.Y)
	fmt.Printf("inside:       %v\n", calc.IsInside(p.Kind, at.X, at.Y, p.Size))
	fmt.Printf("magnitude:    %s\n", humanize.SIWithDigits(s.Magnitude, 3, "N/C"))
	fmt.Printf("direction:    %.1f°\n", s.Angle*180/math.Pi)
	return nil
}

func sampleField(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	p := cfg.Distribution
	vectors := distribution.NewCalculator().SampleVectorField(p, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize)

	fmt.Printf("distribution: %s\n", p.Kind)
	fmt.Printf("spacing:      %.2f\n", distribution.GridSpacing(cfg.Grid.CellSize, p.Density, p.Size))
	fmt.Printf("vectors:      %s\n", humanize.Comma(int64(len(vectors))))
	fmt.Printf("peak:         %s\n", humanize.SIWithDigits(peak(vectors), 3, "N/C"))

	params := map[string]float64{
		"density": p.Density,
		"size":    p.Size,
		"cell":    cfg.Grid.CellSize,
	}
	summary := map[string]float64{"total_charge": p.TotalCharge()}
	return finish(p.Kind.String(), "distribution", params, summary, vectors, cfg.Grid.Width, cfg.Grid.Height, nil)
}

func runGauss(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	calc := gauss.NewCalculator()
	s := cfg.Gauss

	fmt.Printf("sphere: radius %g m, charge %s\n", s.Radius, humanize.SIWithDigits(s.Charge, 3, "C"))
	fmt.Printf("  area:       %s\n", humanize.SIWithDigits(s.Area(), 3, "m²"))
	fmt.Printf("  volume:     %s\n", humanize.SIWithDigits(s.Volume(), 3, "m³"))
	fmt.Printf("  total flux: %s\n", humanize.SIWithDigits(s.Flux(calc.Epsilon), 3, "N·m²/C"))
	fmt.Printf("  E(R):       %s\n", humanize.SIWithDigits(calc.PointChargeField(s.Charge, s.Radius), 3, "N/C"))

	e := calc.PointChargeField(s.Charge, s.Radius)
	rad := angle * math.Pi / 180
	fmt.Printf("\nflux at %.0f°: %s\n", angle, humanize.SIWithDigits(calc.Flux(e, s.Area(), rad), 3, "N·m²/C"))
	fmt.Printf("  %s\n", gauss.FluxText(angle))
	fmt.Printf("  %s\n", gauss.DescribeAngle(angle))

	div := calc.Divergence(fluxIn, fluxOut, volume)
	balance := gauss.ClassifyBalance(fluxIn, fluxOut)
	fmt.Printf("\n%s (%s)\n", gauss.DivergenceText(div), balance)
	fmt.Printf("  %s\n", balance.Describe())
	fmt.Printf("  %s\n", gauss.DescribeIntensity(intensity))

	arrows := calc.GenerateArrows(s.Center, s.Radius, s.Charge, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize)
	vectors := make([]field.Vector, len(arrows))
	for i, a := range arrows {
		vectors[i] = a.Vector()
	}
	fmt.Printf("\narrows: %s\n", humanize.Comma(int64(len(arrows))))

	params := map[string]float64{
		"radius": s.Radius,
		"charge": s.Charge,
		"cell":   cfg.Grid.CellSize,
	}
	summary := map[string]float64{
		"flux":       s.Flux(calc.Epsilon),
		"divergence": div,
	}
	return finish("gauss", "gauss", params, summary, vectors, cfg.Grid.Width, cfg.Grid.Height, nil)
}

func runFlux(cmd *cobra.Command, args []string) error {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		vals[i] = v
	}

	calc := gauss.NewCalculator()
	e, area, deg := vals[0], vals[1], vals[2]

	fmt.Printf("flux:     %s\n", humanize.SIWithDigits(calc.Flux(e, area, deg*math.Pi/180), 3, "N·m²/C"))
	fmt.Printf("max +:    %s\n", humanize.SIWithDigits(calc.FluxMaxPositive(e, area), 3, "N·m²/C"))
	fmt.Printf("max -:    %s\n", humanize.SIWithDigits(calc.FluxMaxNegative(e, area), 3, "N·m²/C"))
	fmt.Printf("          %s\n", gauss.FluxText(deg))
	return nil
}

func runMultipole(cmd *cobra.Command, args []string) error {
	if preset == "" && configFile == "" {
		preset = "dipole"
	}
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	poles := cfg.GetPoles()
	calc := multipole.NewCalculator()

	pos, neg := charge.CountBySign(poles)
	fmt.Printf("poles:         %d (+%d / -%d)\n", len(poles), pos, neg)
	fmt.Printf("configuration: %s\n", multipole.Classify(poles))
	fmt.Printf("dipole moment: %s C·m\n", humanize.CommafWithDigits(multipole.DipoleMoment(poles), 3))
	fmt.Printf("avg distance:  %s\n", humanize.CommafWithDigits(multipole.AveragePairwiseDistance(poles), 1))

	var vectors []field.Vector
	source := "lines"
	if vectorGrid {
		source = "grid"
		vectors = calc.GenerateVectorField(poles, multipole.CanvasWidth, multipole.CanvasHeight, gridCell)
	} else {
		vectors = calc.GenerateFieldLines(poles, multipole.DefaultLineOptions())
	}
	fmt.Printf("%-14s %s\n", source+":", humanize.Comma(int64(len(vectors))))

	params := map[string]float64{"poles": float64(len(poles)), "spacing": gridCell}
	summary := map[string]float64{
		"moment":       multipole.DipoleMoment(poles),
		"avg_distance": multipole.AveragePairwiseDistance(poles),
	}
	return finish(cfg.Name, "multipole", params, summary, vectors, multipole.CanvasWidth, multipole.CanvasHeight, poles)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if points < 2 {
		return fmt.Errorf("points: %w", field.Invalid("points", float64(points)))
	}

	data := make([]float64, points)
	var caption string

	if useGauss {
		calc := gauss.NewCalculator()
		s := cfg.Gauss
		limit := 3 * s.Radius
		for i := range data {
			d := limit * float64(i+1) / float64(points)
			data[i] = calc.SphericalField(s.Charge, s.Radius, d)
		}
		caption = fmt.Sprintf("sphere E(r), r up to %g m, R = %g m", limit, s.Radius)
	} else {
		calc := distribution.NewCalculator()
		p := cfg.Distribution
		for i := range data {
			d := maxDist * float64(i+1) / float64(points)
			at := calc.Center.Add(profileDirection(p.Kind).Scale(d))
			data[i] = calc.FieldAt(p, at.X, at.Y).Magnitude
		}
		caption = fmt.Sprintf("%s |E| vs distance, up to %g", p.Kind, maxDist)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

// profileDirection walks perpendicular to a linear rod and along +x otherwise.
func profileDirection(k distribution.Kind) field.Vec2 {
	if k == distribution.Linear {
		return field.V(0, 1)
	}
	return field.V(1, 0)
}

func runExplore(cmd *cobra.Command, args []string) error {
	if preset == "" && configFile == "" {
		preset = "dipole"
	}
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewExplorer(cfg.GetPoles()), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(viz.Explorer); ok {
		poles := m.Poles()
		fmt.Printf("final configuration: %s\n", multipole.Classify(poles))
		for i, pole := range poles {
			fmt.Printf("  pole %d: (%.0f, %.0f) q=%+g\n", i+1, pole.X(), pole.Y(), pole.Charge)
		}
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
	fmt.Fprintln(w, "ID\tSCENARIO\tSOURCE\tVECTORS\tWHEN")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Scenario,
			run.Source,
			humanize.Comma(int64(run.Vectors)),
			humanize.Time(run.Timestamp),
		)
	}

	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	vectors, err := st.LoadVectors(runID)
	if err != nil {
		return err
	}
	if len(vectors) == 0 {
		return fmt.Errorf("no vectors to export")
	}

	w, h := config.DefaultGridWidth, config.DefaultGridHeight
	if meta.Source == "multipole" {
		w, h = multipole.CanvasWidth, multipole.CanvasHeight
	}

	var svg string
	if braille {
		c := viz.NewCanvas(100, 40)
		c.DrawVectors(vectors, w, h)
		svg = export.CanvasToSVG(c, 4)
	} else {
		svg = export.VectorsToSVG(vectors, w, h, "#00ffff")
	}

	out := svgOut
	if out == "" {
		out = runID + ".svg"
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("exported %s to %s\n", meta.ID, out)
	return nil
}

// finish stores and exports a computed vector set as requested by --save and --svg.
func finish(scenario, source string, params, summary map[string]float64, vectors []field.Vector, w, h float64, poles []charge.Pole) error {
	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(scenario, source, params, summary, vectors)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"run": runID, "vectors": len(vectors)}).Info("run stored")
		fmt.Printf("run id: %s\n", runID)
	}

	if svgOut != "" {
		svg := export.PolesToSVG(export.VectorsToSVG(vectors, w, h, "#00ffff"), poles)
		if svg == "" {
			return fmt.Errorf("no vectors to export")
		}
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("svg: %s\n", svgOut)
	}
	return nil
}

func peak(vectors []field.Vector) float64 {
	var m float64
	for _, v := range vectors {
		m = math.Max(m, v.Magnitude)
	}
	return m
}
