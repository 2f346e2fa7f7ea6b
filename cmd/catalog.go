package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or scaffold the planet, star, and ship catalog",
	Long: `Catalog validates and prints the merged catalog: the builtin tables plus
any overrides from the catalog file. --init writes the builtin catalog out
as a starting point for edits.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().Bool("init", false, "write the builtin catalog to the catalog path")
	catalogCmd.Flags().Bool("planets", false, "list planets only")
	catalogCmd.Flags().Bool("stars", false, "list stars only")
	catalogCmd.Flags().Bool("ships", false, "list ships only")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	printer := newPrinter(cmd, cfg)

	if initFlag, _ := cmd.Flags().GetBool("init"); initFlag {
		if _, err := os.Stat(cfg.CatalogPath); err == nil {
			return fmt.Errorf("catalog %q already exists", cfg.CatalogPath)
		}
		if err := catalog.Save(cfg.CatalogPath, catalog.Builtin()); err != nil {
			return fmt.Errorf("failed to write catalog: %w", err)
		}
		printer.Saved(cfg.CatalogPath)
		return nil
	}

	// A broken catalog file is a data problem, not a usage problem; report
	// it directly instead of returning through cobra's usage dump.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		printer.Error(err.Error())
		os.Exit(1)
	}

	planetsOnly, _ := cmd.Flags().GetBool("planets")
	starsOnly, _ := cmd.Flags().GetBool("stars")
	shipsOnly, _ := cmd.Flags().GetBool("ships")
	if planetsOnly || starsOnly || shipsOnly {
		if planetsOnly {
			printer.Planets(cat.Planets)
		}
		if starsOnly {
			printer.Stars(cat.Stars)
		}
		if shipsOnly {
			printer.Ships(cat.Ships)
		}
		return nil
	}

	printer.CatalogSummary(cfg.CatalogPath, cat)
	errs := cat.Validate()
	printer.CatalogIssues(cfg.CatalogPath, errs)
	printer.Planets(cat.Planets)
	printer.Stars(cat.Stars)
	printer.Ships(cat.Ships)
	if len(errs) > 0 {
		os.Exit(1)
	}
	return nil
}
