package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jveigel/brachistochrone-calculators/internal/calc"
	"github.com/jveigel/brachistochrone-calculators/internal/config"
)

var relativityCmd = &cobra.Command{
	Use:   "relativity",
	Short: "Time dilation and length contraction at a velocity",
	Args:  cobra.NoArgs,
	RunE:  runRelativity,
}

func init() {
	relativityCmd.Flags().String("velocity", "", "velocity, VALUE[UNIT] (m/s, km/s, c)")
	relativityCmd.Flags().String("time", "", "earth-frame duration, VALUE[UNIT] (s, h, d, yr)")
	relativityCmd.Flags().String("length", "", "proper length, VALUE[UNIT] (m, km)")
	rootCmd.AddCommand(relativityCmd)
}

func runRelativity(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	printer := newPrinter(cmd, cfg)

	if v, _ := cmd.Flags().GetString("velocity"); v == "" {
		return fmt.Errorf("--velocity is required")
	}
	inputs, err := collectInputs(cmd, map[string]string{
		"velocity": "velocity",
		"time":     "earth_time",
		"length":   "proper_length",
	})
	if err != nil {
		return err
	}

	c, _ := calc.Lookup("relativity", calcOptions(cfg))
	return resolveAndPrint(printer, c, inputs, solverOptions(cfg))
}
