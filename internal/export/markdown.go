package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteMatrixMarkdown writes the reduced-acceleration travel report: an
// origin-by-destination matrix of time ranges, then the route list sorted by
// delta-v. Matrix axes follow the order slice; missing cells fall back to
// the reverse pair before giving up with a dash.
func WriteMatrixMarkdown(w io.Writer, routes []Route, order []string) error {
	type pair struct{ origin, dest string }
	cells := make(map[pair]string, len(routes))
	for _, r := range routes {
		cells[pair{r.Origin.Name, r.Dest.Name}] = fmt.Sprintf("%s-%s",
			FormatDaysDH(r.Reduced.MinTimeDays), FormatDaysDH(r.Reduced.MaxTimeDays))
	}

	var b strings.Builder
	b.WriteString("## Brachistochrone Travel Times (1/3g)\n\n")
	b.WriteString("### Travel Time Matrix\n\n")
	b.WriteString("*Travel time ranges (min-max)*\n\n")

	b.WriteString("| From → To |")
	for _, name := range order {
		fmt.Fprintf(&b, " %s |", name)
	}
	b.WriteString("\n|-----------|")
	for range order {
		b.WriteString("---------|")
	}
	b.WriteString("\n")

	for _, origin := range order {
		fmt.Fprintf(&b, "| **%s** |", origin)
		for _, dest := range order {
			cell, ok := cells[pair{origin, dest}]
			if !ok {
				cell, ok = cells[pair{dest, origin}]
			}
			if origin == dest || !ok {
				b.WriteString(" - |")
				continue
			}
			fmt.Fprintf(&b, " %s |", cell)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n\n### Routes Sorted by Delta-V\n\n")
	b.WriteString("| Route | Min Time | Max Time | Min dv | Max dv |\n")
	b.WriteString("|--------|-----------|-----------|---------|--------|\n")

	sorted := make([]Route, len(routes))
	copy(sorted, routes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Reduced.MinDeltaV < sorted[j].Reduced.MinDeltaV
	})
	for _, r := range sorted {
		fmt.Fprintf(&b, "| %s -> %s | %s | %s | %s | %s |\n",
			r.Origin.Name, r.Dest.Name,
			FormatDaysDH(r.Reduced.MinTimeDays), FormatDaysDH(r.Reduced.MaxTimeDays),
			comma(r.Reduced.MinDeltaV/1000), comma(r.Reduced.MaxDeltaV/1000))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
