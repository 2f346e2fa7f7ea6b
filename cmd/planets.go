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

var planetsCmd = &cobra.Command{
	Use:   "planets",
	Short: "Travel times between planet pairs under constant thrust",
	Long: `Planets computes brachistochrone travel times between planets at their
closest and farthest separations, at the full burn and at a third of it,
and can export the table as CSV or a travel-time matrix in markdown.`,
	Args: cobra.NoArgs,
	RunE: runPlanets,
}

func init() {
	planetsCmd.Flags().String("accel", "", "full burn acceleration, VALUE[UNIT] (default from config)")
	planetsCmd.Flags().String("from", "", "origin planet (requires --to)")
	planetsCmd.Flags().String("to", "", "destination planet (requires --from)")
	planetsCmd.Flags().Bool("csv", false, "export the extended route table as CSV")
	planetsCmd.Flags().Bool("md", false, "export the travel-time matrix as markdown")
	rootCmd.AddCommand(planetsCmd)
}

func runPlanets(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	printer := newPrinter(cmd, cfg)

	printer.Banner()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if cfg.Verbose {
		printer.Info(fmt.Sprintf("catalog %s: %d planet(s)", cfg.CatalogPath, len(cat.Planets)))
	}

	full := cfg.DefaultAccelG * physics.StandardGravity
	if s, _ := cmd.Flags().GetString("accel"); s != "" {
		full, err = parseQuantity(s, calc.AccelUnits(), "g")
		if err != nil {
			return fmt.Errorf("--accel: %w", err)
		}
	}

	planets := cat.Planets
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if (from == "") != (to == "") {
		return fmt.Errorf("--from and --to must be given together")
	}
	if from != "" {
		origin, ok := cat.LookupPlanet(from)
		if !ok {
			return fmt.Errorf("unknown planet %q (see brachi catalog --planets)", from)
		}
		dest, ok := cat.LookupPlanet(to)
		if !ok {
			return fmt.Errorf("unknown planet %q (see brachi catalog --planets)", to)
		}
		planets = []catalog.Planet{origin, dest}
	}

	routes, err := export.BuildRoutes(planets, full, full/3)
	if err != nil {
		return err
	}
	printer.Routes(routes)

	if csv, _ := cmd.Flags().GetBool("csv"); csv {
		path, err := writeExport(cfg.ExportsDir, "brachistochrone_extended", "csv", func(w io.Writer) error {
			return export.WriteRoutesCSV(w, routes)
		})
		if err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
		printer.Saved(path)
	}
	if md, _ := cmd.Flags().GetBool("md"); md {
		order := make([]string, len(planets))
		for i, p := range planets {
			order[i] = p.Name
		}
		path, err := writeExport(cfg.ExportsDir, "brachistochrone_matrix", "md", func(w io.Writer) error {
			return export.WriteMatrixMarkdown(w, routes, order)
		})
		if err != nil {
			return fmt.Errorf("markdown export: %w", err)
		}
		printer.Saved(path)
	}
	return nil
}
