package ui

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/export"
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// clr holds the ANSI palette; the zero value disables coloring.
type clr struct {
	reset  string
	bold   string
	dim    string
	yellow string
	green  string
	red    string
	cyan   string
}

// colors returns ANSI codes unless noColor is true.
func colors(noColor bool) clr {
	if noColor {
		return clr{}
	}
	return clr{
		reset:  reset,
		bold:   bold,
		dim:    dim,
		yellow: yellow,
		green:  green,
		red:    red,
		cyan:   cyan,
	}
}

// Printer writes human-readable reports to stderr, keeping stdout free for
// machine-readable exports.
type Printer struct {
	c clr
}

func New() *Printer {
	return &Printer{c: colors(false)}
}

// NewPlain returns a Printer that emits no escape codes, for piped output
// and terminals that want none.
func NewPlain() *Printer {
	return &Printer{c: colors(true)}
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, p.c.bold+p.c.cyan+"  ╔═══════════════════════════════════════╗"+p.c.reset)
	fmt.Fprintln(os.Stderr, p.c.bold+p.c.cyan+"  ║"+p.c.reset+p.c.bold+"   BRACHI  "+p.c.dim+"constant-thrust travel math "+p.c.reset+p.c.bold+p.c.cyan+"║"+p.c.reset)
	fmt.Fprintln(os.Stderr, p.c.bold+p.c.cyan+"  ╚═══════════════════════════════════════╝"+p.c.reset)
	fmt.Fprintln(os.Stderr)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, p.c.red+p.c.bold+"error: "+p.c.reset+"%s\n", msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, p.c.yellow+"⚠ %s"+p.c.reset+"\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, p.c.dim+"%s"+p.c.reset+"\n", msg)
}

func (p *Printer) Saved(path string) {
	fmt.Fprintf(os.Stderr, p.c.green+"✓ wrote"+p.c.reset+" %s\n", path)
}

// Result prints every calculator field in registry order: resolved values
// with their display unit, unresolved fields as a dash. Warnings and the
// pass error, if any, follow the table.
func (p *Printer) Result(title string, res solver.Result) {
	fmt.Fprintf(os.Stderr, "\n"+p.c.bold+p.c.cyan+"%s"+p.c.reset+"\n", title)
	for _, name := range res.Order {
		v := res.Fields[name]
		label := strings.ReplaceAll(name, "_", " ")
		switch {
		case !v.Set:
			fmt.Fprintf(os.Stderr, "  %-22s "+p.c.dim+"-"+p.c.reset+"\n", label)
		case v.Unit == "":
			fmt.Fprintf(os.Stderr, "  %-22s "+p.c.bold+"%s"+p.c.reset+"\n", label, formatMagnitude(v))
		default:
			fmt.Fprintf(os.Stderr, "  %-22s "+p.c.bold+"%s"+p.c.reset+" %s\n", label, formatMagnitude(v), v.Unit)
		}
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "  "+p.c.yellow+"⚠ %s"+p.c.reset+"\n", w.Error())
	}
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "  "+p.c.red+"✗ %s"+p.c.reset+"\n", res.Err.Error())
	}
	fmt.Fprintf(os.Stderr, p.c.dim+"  solved in %d sweep(s)"+p.c.reset+"\n", res.Sweeps)
}

// Routes prints one line per route: the separation span and the travel time
// range at both accelerations.
func (p *Printer) Routes(routes []export.Route) {
	if len(routes) == 0 {
		fmt.Fprintln(os.Stderr, p.c.dim+"(no routes)"+p.c.reset)
		return
	}
	full := routes[0].Full.Accel / physics.StandardGravity
	reduced := routes[0].Reduced.Accel / physics.StandardGravity
	fmt.Fprintf(os.Stderr, "\n"+p.c.bold+"routes"+p.c.reset+p.c.dim+" (burn at %sg, reduced %sg)"+p.c.reset+"\n",
		trimFloat(full), trimFloat(reduced))
	for _, r := range routes {
		fmt.Fprintf(os.Stderr, "  "+p.c.cyan+"%-22s"+p.c.reset+" %7.3f-%.3f AU   %s to %s"+p.c.dim+"  |  %s to %s"+p.c.reset+"\n",
			r.Origin.Name+" -> "+r.Dest.Name,
			r.MinDistanceAU, r.MaxDistanceAU,
			export.FormatDaysDH(r.Full.MinTimeDays), export.FormatDaysDH(r.Full.MaxTimeDays),
			export.FormatDaysDH(r.Reduced.MinTimeDays), export.FormatDaysDH(r.Reduced.MaxTimeDays))
	}
}

// Journey prints a torch-ship trip plan.
func (p *Printer) Journey(name string, distanceLY float64, j physics.Journey) {
	fmt.Fprintf(os.Stderr, "\n"+p.c.bold+p.c.cyan+"%s"+p.c.reset+p.c.dim+" (%s ly)"+p.c.reset+"\n", name, trimFloat(distanceLY))
	fmt.Fprintf(os.Stderr, "  acceleration     %.3fg\n", j.Acceleration/physics.StandardGravity)
	fmt.Fprintf(os.Stderr, "  cruise velocity  %.4fc  (γ %.6f)\n", j.CruiseVelocity/physics.C, j.Gamma)
	if j.Coasting {
		fmt.Fprintf(os.Stderr, "  burn             %s each way\n", formatYears(j.BurnTime))
		fmt.Fprintf(os.Stderr, "  coast            %s\n", formatYears(j.CoastTime))
	} else {
		fmt.Fprintln(os.Stderr, p.c.dim+"  never reaches cruise velocity; continuous burn"+p.c.reset)
	}
	fmt.Fprintf(os.Stderr, "  observer time    %s\n", formatYears(j.CoordTime))
	fmt.Fprintf(os.Stderr, "  ship time        %s\n", formatYears(j.ProperTime))
	fmt.Fprintf(os.Stderr, "  fuel             %s t  (mass ratio %.2f)\n",
		humanize.CommafWithDigits(j.FuelMass/1000, 1), j.MassRatio)
}

// Efficiency prints the reactor-efficiency comparison. Thrust is fixed, so
// only reactor power and waste heat move between rows.
func (p *Printer) Efficiency(a export.EfficiencyAnalysis) {
	fmt.Fprintf(os.Stderr, "\n"+p.c.bold+p.c.cyan+"efficiency analysis: %s"+p.c.reset+p.c.dim+" (%s ly)"+p.c.reset+"\n",
		a.Ship.Name, trimFloat(a.DistanceLY))
	for _, row := range a.Rows {
		fmt.Fprintf(os.Stderr, "  "+p.c.bold+"%7s"+p.c.reset+"  reactor %-10s waste %-10s jet %-10s fuel %s t\n",
			export.FormatEfficiency(row.Efficiency),
			export.FormatPower(row.ReactorPower),
			export.FormatPower(row.WasteHeat),
			export.FormatPower(row.JetPower),
			humanize.CommafWithDigits(row.FuelMass/1000, 1))
	}
}

func (p *Printer) Planets(planets []catalog.Planet) {
	fmt.Fprintln(os.Stderr, p.c.bold+"planets:"+p.c.reset)
	for _, pl := range planets {
		fmt.Fprintf(os.Stderr, "  %-10s %7.3f-%.3f AU\n", pl.Name, pl.PerihelionAU, pl.AphelionAU)
	}
}

func (p *Printer) Stars(stars []catalog.Star) {
	fmt.Fprintln(os.Stderr, p.c.bold+"stars:"+p.c.reset)
	for _, s := range stars {
		fmt.Fprintf(os.Stderr, "  %-16s %8.4f ly\n", s.Name, s.DistanceLY)
	}
}

func (p *Printer) Ships(ships []catalog.Ship) {
	fmt.Fprintln(os.Stderr, p.c.bold+"ships:"+p.c.reset)
	for _, s := range ships {
		drive := s.Drive()
		fmt.Fprintf(os.Stderr, "  %-12s %7.1f MN  exhaust %.3fc  dry %s t  cruise %.3fc\n",
			s.Name, drive.TotalThrust()/1e6, s.ExhaustVelocityC,
			humanize.Commaf(drive.DryMass/1000), s.CruiseVelocityC)
	}
}

// CatalogSummary prints where the catalog came from and what it holds.
func (p *Printer) CatalogSummary(path string, c *catalog.Catalog) {
	fmt.Fprintf(os.Stderr, p.c.bold+p.c.cyan+"catalog"+p.c.reset+p.c.dim+" %s"+p.c.reset+"\n", path)
	fmt.Fprintf(os.Stderr, "  %d planet(s), %d star(s), %d ship(s)\n", len(c.Planets), len(c.Stars), len(c.Ships))
}

// CatalogIssues reports validation results for a catalog file.
func (p *Printer) CatalogIssues(path string, errs []error) {
	if len(errs) == 0 {
		fmt.Fprintf(os.Stderr, p.c.green+p.c.bold+"✓ catalog %q"+p.c.reset+" is valid\n", path)
		return
	}
	fmt.Fprintf(os.Stderr, p.c.red+p.c.bold+"✗ catalog %q"+p.c.reset+" has %d issue(s):\n", path, len(errs))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "  "+p.c.red+"• "+p.c.reset+"%s\n", e.Error())
	}
}

// formatMagnitude renders a resolved display value for humans: grouped
// thousands in the everyday range, scientific notation outside it. Display
// strings are shortest round-trip floats, so reparsing is lossless.
func formatMagnitude(v solver.Value) string {
	f, err := strconv.ParseFloat(v.Display, 64)
	if err != nil {
		return v.Display
	}
	a := math.Abs(f)
	if f != 0 && (a < 1e-3 || a >= 1e15) {
		return strconv.FormatFloat(f, 'g', 6, 64)
	}
	rounded := math.Round(f*1e4) / 1e4
	return humanize.Commaf(rounded)
}

// formatYears renders a duration in years, falling back to days for short
// legs.
func formatYears(seconds float64) string {
	years := seconds / physics.SecondsPerYear
	if years < 0.1 {
		return export.FormatDaysDH(seconds / physics.SecondsPerDay)
	}
	return fmt.Sprintf("%.2f yr", years)
}

// trimFloat renders a float with up to three significant digits, for labels.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}
