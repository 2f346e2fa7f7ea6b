package export

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatDaysDH renders decimal days as whole days and hours, "2d 20h".
// Both parts truncate toward zero.
func FormatDaysDH(days float64) string {
	totalHours := days * 24
	d := int(totalHours / 24)
	h := int(math.Mod(totalHours, 24))
	return fmt.Sprintf("%dd %dh", d, h)
}

// FormatPower picks the scale torch-drive figures read naturally at.
func FormatPower(watts float64) string {
	switch {
	case watts >= 1e15:
		return fmt.Sprintf("%.1f PW", watts/1e15)
	case watts >= 1e12:
		return fmt.Sprintf("%.1f TW", watts/1e12)
	default:
		return fmt.Sprintf("%.1f GW", watts/1e9)
	}
}

// Path returns the conventional timestamped location for a report file,
// dir/base_20060102_150405.ext.
func Path(dir, base, ext string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", base, now.Format("20060102_150405"), ext))
}

// comma rounds to a whole number and groups thousands.
func comma(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func f0(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }
func f2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
func f3(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
func f6(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
func fg(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
