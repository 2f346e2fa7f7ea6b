package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jveigel/brachistochrone-calculators/internal/calc"
	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/config"
	"github.com/jveigel/brachistochrone-calculators/internal/tui"
)

// tuiCmd launches the interactive calculator forms.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator forms",
	Long: `Launch the full-screen interface: pick a calculator on the home screen,
edit fields in its form, and watch derived values fill in as you type.
Catalog edits on disk reload live.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isStderrTTY() {
		return fmt.Errorf("brachi tui requires a TTY (terminal)")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		// A broken catalog override should not block the forms.
		newPrinter(cmd, cfg).Warn(fmt.Sprintf("catalog: %v; using builtins", err))
		cat = catalog.Builtin()
	}

	return tui.Run(calc.All(calcOptions(cfg)), cat, cfg.CatalogPath, solverOptions(cfg))
}
