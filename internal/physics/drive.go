package physics

// Drive describes a fusion torch drive cluster.
type Drive struct {
	ThrustPerEngine float64 // N
	Engines         int
	ExhaustVelocity float64 // m/s
	DryMass         float64 // kg, ship without propellant
	Efficiency      float64 // fraction of reactor power delivered as jet power, (0, 1]
}

// Validate rejects parameter sets no drive could have.
func (d Drive) Validate() error {
	if d.ThrustPerEngine <= 0 {
		return domainErr("thrust per engine must be positive, got %g N", d.ThrustPerEngine)
	}
	if d.Engines <= 0 {
		return domainErr("engine count must be positive, got %d", d.Engines)
	}
	if d.ExhaustVelocity <= 0 {
		return domainErr("exhaust velocity must be positive, got %g m/s", d.ExhaustVelocity)
	}
	if d.ExhaustVelocity >= C {
		return domainErr("exhaust velocity %g m/s is not below the speed of light", d.ExhaustVelocity)
	}
	if d.DryMass <= 0 {
		return domainErr("dry mass must be positive, got %g kg", d.DryMass)
	}
	if d.Efficiency <= 0 || d.Efficiency > 1 {
		return domainErr("efficiency %g outside (0, 1]", d.Efficiency)
	}
	return nil
}

// TotalThrust returns the combined thrust of all engines in N.
func (d Drive) TotalThrust() float64 {
	return d.ThrustPerEngine * float64(d.Engines)
}

// MassFlowRate returns the propellant consumption at full thrust in kg/s.
func (d Drive) MassFlowRate() float64 {
	return d.TotalThrust() / d.ExhaustVelocity
}

// JetPowerPerEngine returns the kinetic power of one engine's exhaust stream
// in W: P = F·vₑ/2.
func (d Drive) JetPowerPerEngine() float64 {
	return d.ThrustPerEngine * d.ExhaustVelocity / 2
}

// JetPower returns the combined exhaust-stream power in W.
func (d Drive) JetPower() float64 {
	return d.JetPowerPerEngine() * float64(d.Engines)
}

// TheoreticalPower returns the ceiling the fusion reaction could deliver at
// the drive's mass flow rate, if every kilogram of propellant fused.
func (d Drive) TheoreticalPower() float64 {
	return d.MassFlowRate() * DHe3Yield
}

// ReactorPower returns the power the reactor must generate to sustain full
// thrust at the drive's efficiency.
func (d Drive) ReactorPower() float64 {
	return d.JetPower() / d.Efficiency
}

// WasteHeat returns the reactor power not delivered as jet power.
func (d Drive) WasteHeat() float64 {
	return d.ReactorPower() - d.JetPower()
}

// FuelForBurn returns the propellant consumed by a full-thrust burn of the
// given length in kg.
func (d Drive) FuelForBurn(seconds float64) float64 {
	return d.MassFlowRate() * seconds
}

// Journey is the plan for a cruise-limited torch-drive trip.
type Journey struct {
	Acceleration   float64 // initial acceleration, m/s²
	BurnTime       float64 // one burn leg, observer frame, s
	CoastTime      float64 // s
	CoordTime      float64 // total observer time, s
	ProperTime     float64 // total ship time, s
	FuelMass       float64 // propellant for both burns, kg
	MassRatio      float64 // (dry + fuel) / dry
	CruiseVelocity float64 // m/s
	Gamma          float64 // Lorentz factor at cruise
	Coasting       bool
}

// PlanJourney sizes a torch-drive trip: accelerate to vCruise, coast, flip
// and decelerate. Initial acceleration is taken against the dry mass plus
// one hour of propellant, and the acceleration-leg fuel is doubled to cover
// the deceleration burn.
func PlanJourney(drive Drive, distance, vCruise float64) (Journey, error) {
	if err := drive.Validate(); err != nil {
		return Journey{}, err
	}
	if distance <= 0 {
		return Journey{}, domainErr("distance must be positive, got %g m", distance)
	}
	accel := drive.TotalThrust() / (drive.DryMass + drive.FuelForBurn(SecondsPerHour))
	profile, err := PlanCoast(accel, distance, vCruise)
	if err != nil {
		return Journey{}, err
	}
	fuel := 2 * drive.FuelForBurn(profile.BurnTime)
	return Journey{
		Acceleration:   accel,
		BurnTime:       profile.BurnTime,
		CoastTime:      profile.CoastTime,
		CoordTime:      profile.CoordTime,
		ProperTime:     profile.ProperTime,
		FuelMass:       fuel,
		MassRatio:      (drive.DryMass + fuel) / drive.DryMass,
		CruiseVelocity: profile.CruiseVelocity,
		Gamma:          profile.Gamma,
		Coasting:       profile.Coasting,
	}, nil
}
