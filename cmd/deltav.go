package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jveigel/brachistochrone-calculators/internal/calc"
	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/config"
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

var deltavCmd = &cobra.Command{
	Use:   "deltav",
	Short: "Transfer time from a delta-v budget",
	Long: `Deltav estimates constant-thrust transfer times from a ship's delta-v
budget. Unless overridden with --accel, the acceleration it assumes follows
an empirical curve tuned against published drive figures, not a physical
law.`,
	Args: cobra.NoArgs,
	RunE: runDeltaV,
}

func init() {
	deltavCmd.Flags().String("deltav", "", "delta-v budget, VALUE[UNIT] (m/s, km/s, c)")
	deltavCmd.Flags().String("distance", "", "transfer distance, VALUE[UNIT] (m, km, AU, ly)")
	deltavCmd.Flags().String("accel", "", "override the heuristic acceleration, VALUE[UNIT]")
	deltavCmd.Flags().String("from", "", "origin planet, median separation (requires --to)")
	deltavCmd.Flags().String("to", "", "destination planet (requires --from)")
	rootCmd.AddCommand(deltavCmd)
}

func runDeltaV(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	printer := newPrinter(cmd, cfg)

	if dv, _ := cmd.Flags().GetString("deltav"); dv == "" {
		return fmt.Errorf("--deltav is required")
	}
	inputs, err := collectInputs(cmd, map[string]string{
		"deltav":   "delta_v",
		"distance": "distance",
		"accel":    "acceleration",
	})
	if err != nil {
		return err
	}

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if (from == "") != (to == "") {
		return fmt.Errorf("--from and --to must be given together")
	}
	if from != "" {
		if _, ok := inputs["distance"]; ok {
			return fmt.Errorf("--distance conflicts with --from/--to")
		}
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		origin, ok := cat.LookupPlanet(from)
		if !ok {
			return fmt.Errorf("unknown planet %q (see brachi catalog --planets)", from)
		}
		dest, ok := cat.LookupPlanet(to)
		if !ok {
			return fmt.Errorf("unknown planet %q (see brachi catalog --planets)", to)
		}
		med := physics.MedianDistance(origin.Orbit(), dest.Orbit())
		inputs["distance"] = solver.Input{
			Raw:  strconv.FormatFloat(med, 'g', -1, 64),
			Unit: "AU",
		}
	}
	if _, ok := inputs["distance"]; !ok {
		return fmt.Errorf("give --distance or --from/--to")
	}

	c, _ := calc.Lookup("deltav", calcOptions(cfg))
	return resolveAndPrint(printer, c, inputs, solverOptions(cfg))
}
