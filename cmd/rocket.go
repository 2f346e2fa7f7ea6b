package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jveigel/brachistochrone-calculators/internal/calc"
	"github.com/jveigel/brachistochrone-calculators/internal/config"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

var rocketCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Relativistic rocket trip from any sufficient field subset",
	Long: `Rocket solves the relativistic constant-thrust trip: give any sufficient
subset of distance, observer time, acceleration, and peak velocity and it
derives the rest, plus traveler time, fuel, and energy for a given
spacecraft mass.`,
	Args: cobra.NoArgs,
	RunE: runRocket,
}

func init() {
	rocketCmd.Flags().String("distance", "", "trip distance, VALUE[UNIT] (m, km, AU, ly)")
	rocketCmd.Flags().String("time", "", "observer time, VALUE[UNIT] (s, h, d, yr)")
	rocketCmd.Flags().String("accel", "", "proper acceleration, VALUE[UNIT] (m/s², g)")
	rocketCmd.Flags().String("velocity", "", "peak velocity, VALUE[UNIT] (m/s, km/s, c)")
	rocketCmd.Flags().String("mass", "", "spacecraft dry mass, VALUE[UNIT] (kg, t)")
	rocketCmd.Flags().String("fuel", "", "fuel mass, VALUE[UNIT] (kg, t)")
	rocketCmd.Flags().String("rate", "", "fuel mass-to-energy conversion rate, 0-1")
	rootCmd.AddCommand(rocketCmd)
}

func runRocket(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	printer := newPrinter(cmd, cfg)

	inputs, err := collectInputs(cmd, map[string]string{
		"distance": "distance",
		"time":     "observer_time",
		"accel":    "acceleration",
		"velocity": "max_velocity",
		"mass":     "spacecraft_mass",
		"fuel":     "fuel_mass",
		"rate":     "fuel_conversion_rate",
	})
	if err != nil {
		return err
	}
	// A given fuel load makes the conversion rate the unknown; suppress
	// the preset so the solver derives it.
	if _, ok := inputs["fuel_mass"]; ok {
		if _, ok := inputs["fuel_conversion_rate"]; !ok {
			inputs["fuel_conversion_rate"] = solver.Input{}
		}
	}

	c, _ := calc.Lookup("rocket", calcOptions(cfg))
	return resolveAndPrint(printer, c, inputs, solverOptions(cfg))
}
