package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jveigel/brachistochrone-calculators/internal/calc"
	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/config"
	"github.com/jveigel/brachistochrone-calculators/internal/export"
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
)

// referenceEfficiencies are compared when --csv asks for the analysis but
// no --efficiency was given.
var referenceEfficiencies = []float64{0.0065, 0.008, 0.2}

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Torch-drive journey plan and reactor efficiency analysis",
	Long: `Drive plans an accelerate-cruise-decelerate journey for a catalog ship
and, given reactor efficiencies to compare, shows how power and waste heat
move while thrust stays fixed.`,
	Args: cobra.NoArgs,
	RunE: runDrive,
}

func init() {
	driveCmd.Flags().String("ship", "nauvoo", "catalog ship to fly")
	driveCmd.Flags().String("distance", "11.9ly", "one-way distance, VALUE[UNIT]")
	driveCmd.Flags().String("cruise", "", "cruise velocity cap, VALUE[UNIT] (default: ship's cruise)")
	driveCmd.Flags().Float64Slice("efficiency", nil, "reactor efficiency to compare (repeatable)")
	driveCmd.Flags().Bool("csv", false, "export the efficiency analysis as CSV")
	rootCmd.AddCommand(driveCmd)
}

func runDrive(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	printer := newPrinter(cmd, cfg)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	name, _ := cmd.Flags().GetString("ship")
	ship, ok := cat.LookupShip(name)
	if !ok {
		return fmt.Errorf("unknown ship %q (see brachi catalog --ships)", name)
	}
	if cfg.Verbose {
		drive := ship.Drive()
		printer.Info(fmt.Sprintf("%s: thrust %.1f MN, mass flow %.1f kg/s, jet power %s",
			ship.Name, drive.TotalThrust()/1e6, drive.MassFlowRate(),
			export.FormatPower(drive.JetPower())))
	}

	ds, _ := cmd.Flags().GetString("distance")
	distance, err := parseQuantity(ds, calc.DistanceUnits(), "ly")
	if err != nil {
		return fmt.Errorf("--distance: %w", err)
	}
	distanceLY := distance / physics.LightYear

	if s, _ := cmd.Flags().GetString("cruise"); s != "" {
		cruise, err := parseQuantity(s, calc.VelocityUnits(), "c")
		if err != nil {
			return fmt.Errorf("--cruise: %w", err)
		}
		ship.CruiseVelocityC = cruise / physics.C
	}

	j, err := physics.PlanJourney(ship.Drive(), distance, ship.CruiseVelocity())
	if err != nil {
		return err
	}
	printer.Journey(ship.Name, distanceLY, j)

	effs, _ := cmd.Flags().GetFloat64Slice("efficiency")
	wantCSV, _ := cmd.Flags().GetBool("csv")
	if len(effs) == 0 {
		if !wantCSV {
			return nil
		}
		effs = referenceEfficiencies
	}

	analysis, err := export.BuildEfficiencyAnalysis(ship, distanceLY, effs)
	if err != nil {
		return err
	}
	printer.Efficiency(analysis)

	if wantCSV {
		path, err := writeExport(cfg.ExportsDir, "drive_efficiency", "csv", func(w io.Writer) error {
			return export.WriteEfficiencyCSV(w, analysis)
		})
		if err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
		printer.Saved(path)
	}
	return nil
}
