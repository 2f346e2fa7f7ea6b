// Package export renders route tables and drive analyses into the CSV and
// markdown report formats, and owns the formatting helpers the reports
// share.
package export

import (
	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
)

// RouteMetrics are the flip-and-burn numbers for one planet pair at one
// acceleration.
type RouteMetrics struct {
	Accel          float64 // m/s²
	MinTimeDays    float64 // at closest approach
	MaxTimeDays    float64 // at opposition
	MedianTimeDays float64
	MinDeltaV      float64 // m/s, at closest approach
	MaxDeltaV      float64 // m/s, at opposition
}

// Route is one planet pair with metrics at the two accelerations the
// reports compare, classically 1 g and 1/3 g.
type Route struct {
	Origin           catalog.Planet
	Dest             catalog.Planet
	MinDistanceAU    float64
	MaxDistanceAU    float64
	MedianDistanceAU float64
	Full             RouteMetrics
	Reduced          RouteMetrics
}

// BuildRoutes computes a route for every planet pair, pairs enumerated in
// catalog order so the tables read sun-outward.
func BuildRoutes(planets []catalog.Planet, fullAccel, reducedAccel float64) ([]Route, error) {
	routes := make([]Route, 0, len(planets)*(len(planets)-1)/2)
	for i, origin := range planets {
		for _, dest := range planets[i+1:] {
			r, err := buildRoute(origin, dest, fullAccel, reducedAccel)
			if err != nil {
				return nil, err
			}
			routes = append(routes, r)
		}
	}
	return routes, nil
}

func buildRoute(origin, dest catalog.Planet, fullAccel, reducedAccel float64) (Route, error) {
	minAU, maxAU := physics.OrbitalDistances(origin.Orbit(), dest.Orbit())
	medianAU := physics.MedianDistance(origin.Orbit(), dest.Orbit())

	full, err := metricsFor(minAU, maxAU, medianAU, fullAccel)
	if err != nil {
		return Route{}, err
	}
	reduced, err := metricsFor(minAU, maxAU, medianAU, reducedAccel)
	if err != nil {
		return Route{}, err
	}
	return Route{
		Origin:           origin,
		Dest:             dest,
		MinDistanceAU:    minAU,
		MaxDistanceAU:    maxAU,
		MedianDistanceAU: medianAU,
		Full:             full,
		Reduced:          reduced,
	}, nil
}

// metricsFor runs the classical numbers for one acceleration. Overlapping
// orbits make the closest approach zero; its time and delta-v are zero, not
// a domain error.
func metricsFor(minAU, maxAU, medianAU, accel float64) (RouteMetrics, error) {
	m := RouteMetrics{Accel: accel}

	if minAU > 0 {
		t, err := physics.BrachistochroneTime(minAU*physics.AU, accel)
		if err != nil {
			return RouteMetrics{}, err
		}
		m.MinTimeDays = t / physics.SecondsPerDay
		m.MinDeltaV = physics.TotalDeltaV(physics.PeakVelocity(accel, t))
	}

	t, err := physics.BrachistochroneTime(maxAU*physics.AU, accel)
	if err != nil {
		return RouteMetrics{}, err
	}
	m.MaxTimeDays = t / physics.SecondsPerDay
	m.MaxDeltaV = physics.TotalDeltaV(physics.PeakVelocity(accel, t))

	if medianAU > 0 {
		t, err := physics.BrachistochroneTime(medianAU*physics.AU, accel)
		if err != nil {
			return RouteMetrics{}, err
		}
		m.MedianTimeDays = t / physics.SecondsPerDay
	}
	return m, nil
}
