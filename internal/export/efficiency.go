package export

import (
	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
)

// EfficiencyRow holds the drive figures and fuel bill at one reactor
// efficiency. Thrust is held constant, so mass flow, jet power, and fuel
// stay fixed while reactor power and waste heat move.
type EfficiencyRow struct {
	Efficiency       float64
	MassFlow         float64 // kg/s
	FuelMass         float64 // kg
	JetPower         float64 // W
	ReactorPower     float64 // W
	WasteHeat        float64 // W
	TheoreticalPower float64 // W
}

// EfficiencyAnalysis compares one ship's drive across reactor efficiencies
// for a single journey.
type EfficiencyAnalysis struct {
	Ship       catalog.Ship
	DistanceLY float64
	Rows       []EfficiencyRow
}

// BuildEfficiencyAnalysis plans the ship's journey at each efficiency and
// collects the drive figures.
func BuildEfficiencyAnalysis(ship catalog.Ship, distanceLY float64, efficiencies []float64) (EfficiencyAnalysis, error) {
	a := EfficiencyAnalysis{
		Ship:       ship,
		DistanceLY: distanceLY,
		Rows:       make([]EfficiencyRow, 0, len(efficiencies)),
	}
	for _, eff := range efficiencies {
		drive := ship.Drive()
		drive.Efficiency = eff
		journey, err := physics.PlanJourney(drive, distanceLY*physics.LightYear, ship.CruiseVelocity())
		if err != nil {
			return EfficiencyAnalysis{}, err
		}
		a.Rows = append(a.Rows, EfficiencyRow{
			Efficiency:       eff,
			MassFlow:         drive.MassFlowRate(),
			FuelMass:         journey.FuelMass,
			JetPower:         drive.JetPower(),
			ReactorPower:     drive.ReactorPower(),
			WasteHeat:        drive.WasteHeat(),
			TheoreticalPower: drive.TheoreticalPower(),
		})
	}
	return a, nil
}
