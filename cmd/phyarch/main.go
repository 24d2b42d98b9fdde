package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Universe-Codex/PhyArch/internal/calc/sizing"
	"github.com/Universe-Codex/PhyArch/internal/config"
	"github.com/Universe-Codex/PhyArch/internal/engine"
	"github.com/Universe-Codex/PhyArch/internal/tui"
)

var (
	force    float64
	length   float64
	area     float64
	modulus  float64
	sigma    float64
	material string
	// sizing limits
	allowStress float64
	deflLimit   float64
	// sweep parameters
	sweepExport string
	sweepArgs   string
	sweepVary   int
	sweepFrom   float64
	sweepTo     float64
	sweepSteps  int
	// materials preset file
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phyarch",
		Short: "engineering unit calculator",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive calculator when no command given
			if err := tui.Run(loadMaterials()); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "materials preset file (yaml)")

	stressCmd := &cobra.Command{
		Use:   "stress",
		Short: "axial stress, sigma = F/A",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%g\n", engine.Call(engine.ExportStress, force, area))
		},
	}
	stressCmd.Flags().Float64Var(&force, "force", 0, "axial force")
	stressCmd.Flags().Float64Var(&area, "area", 0, "cross-section area")

	displacementCmd := &cobra.Command{
		Use:   "displacement",
		Short: "axial elongation, delta = FL/(AE)",
		Run: func(cmd *cobra.Command, args []string) {
			resolveModulus()
			fmt.Printf("%g\n", engine.Call(engine.ExportDisplacement, force, length, area, modulus))
		},
	}
	displacementCmd.Flags().Float64Var(&force, "force", 0, "axial force")
	displacementCmd.Flags().Float64Var(&length, "length", 0, "member length")
	displacementCmd.Flags().Float64Var(&area, "area", 0, "cross-section area")
	displacementCmd.Flags().Float64Var(&modulus, "modulus", 0, "elastic modulus")
	displacementCmd.Flags().StringVar(&material, "material", "", "material preset supplying the modulus (Pa)")

	strainCmd := &cobra.Command{
		Use:   "strain",
		Short: "elastic strain, epsilon = sigma/E",
		Run: func(cmd *cobra.Command, args []string) {
			resolveModulus()
			fmt.Printf("%g\n", engine.Call(engine.ExportStrain, sigma, modulus))
		},
	}
	strainCmd.Flags().Float64Var(&sigma, "stress", 0, "axial stress")
	strainCmd.Flags().Float64Var(&modulus, "modulus", 0, "elastic modulus")
	strainCmd.Flags().StringVar(&material, "material", "", "material preset supplying the modulus (Pa)")

	stiffnessCmd := &cobra.Command{
		Use:   "stiffness",
		Short: "axial stiffness, k = AE/L",
		Run: func(cmd *cobra.Command, args []string) {
			resolveModulus()
			fmt.Printf("%g\n", engine.Call(engine.ExportAxialStiffness, area, modulus, length))
		},
	}
	stiffnessCmd.Flags().Float64Var(&area, "area", 0, "cross-section area")
	stiffnessCmd.Flags().Float64Var(&modulus, "modulus", 0, "elastic modulus")
	stiffnessCmd.Flags().Float64Var(&length, "length", 0, "member length")
	stiffnessCmd.Flags().StringVar(&material, "material", "", "material preset supplying the modulus (Pa)")

	sizeCmd := &cobra.Command{
		Use:   "size",
		Short: "required area for stress and displacement limits",
		RunE:  runSize,
	}
	sizeCmd.Flags().Float64Var(&force, "force", 0, "axial force")
	sizeCmd.Flags().Float64Var(&length, "length", 0, "member length")
	sizeCmd.Flags().Float64Var(&modulus, "modulus", 0, "elastic modulus")
	sizeCmd.Flags().Float64Var(&allowStress, "allow-stress", 0, "allowable stress")
	sizeCmd.Flags().Float64Var(&deflLimit, "displacement-limit", 0, "displacement limit")
	sizeCmd.Flags().StringVar(&material, "material", "", "material preset supplying modulus and allowable stress")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "plot an export across a swept argument",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepExport, "export", engine.ExportStress, "export name")
	sweepCmd.Flags().StringVar(&sweepArgs, "args", "", "comma-separated base arguments")
	sweepCmd.Flags().IntVar(&sweepVary, "vary", 0, "index of the argument to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 40, "number of samples")

	exportsCmd := &cobra.Command{
		Use:   "exports",
		Short: "list the versioned export table",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tARITY")
			for _, name := range engine.Names() {
				e, _ := engine.Resolve(name)
				fmt.Fprintf(w, "%s\t%d\n", e.Name, e.Arity)
			}
			w.Flush()
		},
	}

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list material presets",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadMaterials()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tE (Pa)\tFY (Pa)")
			for _, name := range cfg.Names() {
				m, _ := cfg.Lookup(name)
				fmt.Fprintf(w, "%s\t%g\t%g\n", m.Name, m.ElasticModulus, m.YieldStrength)
			}
			w.Flush()
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(loadMaterials())
		},
	}

	rootCmd.AddCommand(stressCmd, displacementCmd, strainCmd, stiffnessCmd,
		sizeCmd, sweepCmd, exportsCmd, materialsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadMaterials() *config.Config {
	if configFile == "" {
		return config.Default()
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v, falling back to defaults\n", err)
		return config.Default()
	}
	return cfg
}

func resolveModulus() {
	if material == "" || modulus != 0 {
		return
	}
	if m, ok := loadMaterials().Lookup(material); ok {
		modulus = m.ElasticModulus
	} else {
		fmt.Fprintf(os.Stderr, "unknown material %q\n", material)
	}
}

func runSize(cmd *cobra.Command, args []string) error {
	if material != "" {
		m, ok := loadMaterials().Lookup(material)
		if !ok {
			return fmt.Errorf("unknown material %q", material)
		}
		if modulus == 0 {
			modulus = m.ElasticModulus
		}
		if allowStress == 0 {
			allowStress = m.YieldStrength
		}
	}
	res, err := sizing.Calculate(sizing.Input{
		Force:             force,
		Length:            length,
		Modulus:           modulus,
		AllowableStress:   allowStress,
		DisplacementLimit: deflLimit,
	})
	if err != nil {
		return err
	}
	fmt.Printf("required area: %g (governed by %s)\n", res.RequiredArea, res.GovernedBy)
	fmt.Printf("stress at area: %g\n", res.StressAtArea)
	if res.DisplacementAtArea != 0 {
		fmt.Printf("displacement at area: %g\n", res.DisplacementAtArea)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	exp, ok := engine.Resolve(sweepExport)
	if !ok {
		return fmt.Errorf("unknown export %q (see: phyarch exports)", sweepExport)
	}

	base := make([]float64, 0, exp.Arity)
	if sweepArgs != "" {
		for _, part := range strings.Split(sweepArgs, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return fmt.Errorf("bad argument %q: %w", part, err)
			}
			base = append(base, v)
		}
	}
	if len(base) != exp.Arity {
		return fmt.Errorf("%s takes %d arguments, got %d", exp.Name, exp.Arity, len(base))
	}
	if sweepVary < 0 || sweepVary >= exp.Arity {
		return fmt.Errorf("vary index %d out of range", sweepVary)
	}
	if sweepSteps < 2 {
		return fmt.Errorf("need at least 2 steps")
	}

	values := make([]float64, sweepSteps)
	step := (sweepTo - sweepFrom) / float64(sweepSteps-1)
	call := append([]float64(nil), base...)
	for i := 0; i < sweepSteps; i++ {
		call[sweepVary] = sweepFrom + float64(i)*step
		values[i] = exp.Call(call)
	}

	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(15),
		asciigraph.Caption(fmt.Sprintf("%s, argument %d swept %g..%g", exp.Name, sweepVary, sweepFrom, sweepTo))))
	return nil
}
