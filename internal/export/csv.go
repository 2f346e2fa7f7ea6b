package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jveigel/brachistochrone-calculators/internal/physics"
)

// routesHeader is the long-standing route export layout. Column names carry
// the classic 1 g and 1/3 g labels regardless of the accelerations actually
// used.
var routesHeader = []string{
	"origin_planet", "destination_planet",
	"min_time_days_1_3g", "max_time_days_1_3g", "median_time_days_1_3g",
	"min_time_days_1g", "max_time_days_1g", "median_time_days_1g",
	"min_distance_au", "max_distance_au",
	"min_distance_km", "max_distance_km",
	"min_deltav_kms_1_3g", "max_deltav_kms_1_3g",
	"min_deltav_kms_1g", "max_deltav_kms_1g",
	"origin_perihelion_au", "origin_aphelion_au",
	"destination_perihelion_au", "destination_aphelion_au",
}

// WriteRoutesCSV writes the full route table, one row per planet pair.
func WriteRoutesCSV(w io.Writer, routes []Route) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(routesHeader); err != nil {
		return err
	}
	auKM := physics.AU / 1000
	for _, r := range routes {
		rec := []string{
			r.Origin.Name,
			r.Dest.Name,
			f3(r.Reduced.MinTimeDays), f3(r.Reduced.MaxTimeDays), f3(r.Reduced.MedianTimeDays),
			f3(r.Full.MinTimeDays), f3(r.Full.MaxTimeDays), f3(r.Full.MedianTimeDays),
			f6(r.MinDistanceAU), f6(r.MaxDistanceAU),
			f0(r.MinDistanceAU * auKM), f0(r.MaxDistanceAU * auKM),
			f2(r.Reduced.MinDeltaV / 1000), f2(r.Reduced.MaxDeltaV / 1000),
			f2(r.Full.MinDeltaV / 1000), f2(r.Full.MaxDeltaV / 1000),
			fg(r.Origin.PerihelionAU), fg(r.Origin.AphelionAU),
			fg(r.Dest.PerihelionAU), fg(r.Dest.AphelionAU),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEfficiencyCSV writes the drive comparison: a common-parameters block,
// then one column per efficiency.
func WriteEfficiencyCSV(w io.Writer, a EfficiencyAnalysis) error {
	cw := csv.NewWriter(w)
	drive := a.Ship.Drive()

	rows := [][]string{
		{fmt.Sprintf("Efficiency Analysis for %s", a.Ship.Name)},
		{},
		{"Common Parameters"},
		{"Parameter", "Value"},
		{"Total Thrust (MN)", f1(drive.TotalThrust() / 1e6)},
		{"Exhaust Velocity (c)", f3(drive.ExhaustVelocity / physics.C)},
		{"Dry Mass (tons)", f0(drive.DryMass / 1000)},
		{"Distance (ly)", fg(a.DistanceLY)},
		{"Cruise Velocity (c)", f3(a.Ship.CruiseVelocityC)},
		{},
		{"Efficiency Comparison"},
	}

	header := []string{"Parameter"}
	massFlow := []string{"Mass Flow (kg/s)"}
	fuelMass := []string{"Fuel Mass (tons)"}
	jetPower := []string{"Jet Power"}
	reactorPower := []string{"Reactor Power"}
	wasteHeat := []string{"Waste Heat"}
	theoretical := []string{"Theoretical Power"}
	for _, row := range a.Rows {
		header = append(header, FormatEfficiency(row.Efficiency))
		massFlow = append(massFlow, f1(row.MassFlow))
		fuelMass = append(fuelMass, f1(row.FuelMass/1000))
		jetPower = append(jetPower, FormatPower(row.JetPower))
		reactorPower = append(reactorPower, FormatPower(row.ReactorPower))
		wasteHeat = append(wasteHeat, FormatPower(row.WasteHeat))
		theoretical = append(theoretical, FormatPower(row.TheoreticalPower))
	}
	rows = append(rows, header, massFlow, fuelMass, jetPower, reactorPower, wasteHeat, theoretical)

	for _, rec := range rows {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatEfficiency renders a fraction as a percent label, "0.65%".
func FormatEfficiency(eff float64) string {
	return strconv.FormatFloat(eff*100, 'g', -1, 64) + "%"
}

func f1(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
