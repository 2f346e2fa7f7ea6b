package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jveigel/brachistochrone-calculators/internal/calc"
	"github.com/jveigel/brachistochrone-calculators/internal/config"
	"github.com/jveigel/brachistochrone-calculators/internal/export"
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
	"github.com/jveigel/brachistochrone-calculators/internal/ui"
)

// unitAliases maps spellings that are awkward to type to the canonical
// names in the unit tables. Lookups lowercase first, which also folds
// "LY" and "G" onto their canonical forms.
var unitAliases = map[string]string{
	"m/s2":   "m/s²",
	"au":     "AU",
	"sec":    "s",
	"day":    "d",
	"days":   "d",
	"hour":   "h",
	"hours":  "h",
	"year":   "yr",
	"years":  "yr",
	"ton":    "t",
	"tons":   "t",
	"tonne":  "t",
	"tonnes": "t",
	"j":      "J",
	"pj":     "PJ",
}

// canonicalUnit normalizes a typed unit spelling to its table name.
func canonicalUnit(u string) string {
	l := strings.ToLower(strings.TrimSpace(u))
	if a, ok := unitAliases[l]; ok {
		return a
	}
	return l
}

// splitValueUnit splits flag text like "4.367ly", "12000 km/s", or "1/3g"
// into numeric text and a canonical unit name. The number is the longest
// parseable prefix; a simple fraction folds to its quotient. An empty unit
// means the field default.
func splitValueUnit(s string) (raw, unit string, err error) {
	s = strings.TrimSpace(s)
	num, rest, ok := leadingFloat(s)
	if !ok {
		return "", "", fmt.Errorf("%q is not VALUE[UNIT]", s)
	}
	if strings.HasPrefix(rest, "/") {
		if den, r2, ok := leadingFloat(strings.TrimSpace(rest[1:])); ok {
			n, _ := strconv.ParseFloat(num, 64)
			d, _ := strconv.ParseFloat(den, 64)
			if d != 0 {
				return strconv.FormatFloat(n/d, 'g', -1, 64), canonicalUnit(r2), nil
			}
		}
	}
	return num, canonicalUnit(rest), nil
}

// leadingFloat finds the longest prefix of s that parses as a float.
func leadingFloat(s string) (num, rest string, ok bool) {
	for i := len(s); i > 0; i-- {
		if _, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return s[:i], s[i:], true
		}
	}
	return "", s, false
}

// parseQuantity converts VALUE[UNIT] flag text to base units against a
// unit table. An empty unit reads as defaultUnit.
func parseQuantity(s string, units []solver.Unit, defaultUnit string) (float64, error) {
	raw, unit, err := splitValueUnit(s)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	if unit == "" {
		unit = defaultUnit
	}
	for _, u := range units {
		if u.Name == unit {
			return v * u.Factor, nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q", unit)
}

// collectInputs reads VALUE[UNIT] flags into solver inputs keyed by field
// name. Unset flags are left out so presets and registry defaults apply.
func collectInputs(cmd *cobra.Command, fields map[string]string) (map[string]solver.Input, error) {
	inputs := make(map[string]solver.Input, len(fields))
	for flag, field := range fields {
		val, _ := cmd.Flags().GetString(flag)
		if val == "" {
			continue
		}
		raw, unit, err := splitValueUnit(val)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		inputs[field] = solver.Input{Raw: raw, Unit: unit}
	}
	return inputs, nil
}

// calcOptions maps configuration onto the calculator constants.
func calcOptions(cfg config.Config) calc.Options {
	return calc.Options{
		FuelConversionRate: cfg.FuelConversionRate,
		DefaultAccel:       cfg.DefaultAccelG * physics.StandardGravity,
		DeltaVBaseAccel:    cfg.DeltaVBaseAccelG * physics.StandardGravity,
		DeltaVLogScale:     cfg.DeltaVLogScale,
	}
}

// solverOptions maps configuration onto solver behavior. Numerically
// unstable regions surface as warnings rather than hard errors.
func solverOptions(cfg config.Config) solver.Options {
	return solver.Options{
		MaxSweeps: cfg.MaxSweeps,
		IsWarning: physics.IsUnstable,
	}
}

// newPrinter builds the stderr printer, honoring no_color from config and
// the --no-color flag.
func newPrinter(cmd *cobra.Command, cfg config.Config) *ui.Printer {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || cfg.NoColor {
		return ui.NewPlain()
	}
	return ui.New()
}

// resolveAndPrint runs a one-shot solve and prints the field table. A field
// error already shows in the table, so it only flips the exit code.
func resolveAndPrint(printer *ui.Printer, c *calc.Calculator, inputs map[string]solver.Input, opts solver.Options) error {
	res, err := c.Resolve(inputs, opts)
	if err != nil {
		return err
	}
	printer.Result(c.Title, res)
	if res.Err != nil {
		os.Exit(1)
	}
	return nil
}

// writeExport writes one timestamped report under the exports directory
// and returns its path.
func writeExport(dir, base, ext string, write func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	path := export.Path(dir, base, ext, time.Now())
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := write(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// isStderrTTY reports whether stderr is attached to a terminal.
func isStderrTTY() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
