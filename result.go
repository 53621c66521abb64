package ballistics

import (
	"fmt"
	"math"
)

//grainsToKg converts a bullet mass in grains to kilograms.
const grainsToKg float64 = 0.0000648

//RawBallisticResult is the unrounded output of the integrator, preserved for
//callers that need full precision (e.g. chained calculations) rather than
//the display-rounded BallisticResult.
type RawBallisticResult struct {
	DropM        float64
	DriftM       float64
	TimeS        float64
	VelocityMPS  float64
	EnergyJ      float64
	MachAtTarget float64
	//BulletMassKG is carried alongside the raw fields so Round can recompute
	//energy from the rounded velocity rather than rounding the raw energy.
	BulletMassKG float64
}

//Round converts a raw result into the display-rounded BallisticResult of
//§4.7. Energy is derived from the rounded velocity, mirroring the spec's
//formula list where energy is defined in terms of the already-rounded
//velocity; machAtTarget is the one field explicitly computed from the
//unrounded velocity instead.
func (r RawBallisticResult) Round() BallisticResult {
	velocity := roundTo(r.VelocityMPS, 0)
	energy := 0.5 * r.BulletMassKG * velocity * velocity
	return BallisticResult{
		DropCM:        roundTo(-r.DropM*100, 1),
		DriftCM:       roundTo(r.DriftM*100, 1),
		TimeOfFlightS: roundTo(r.TimeS, 3),
		VelocityMPS:   velocity,
		EnergyJ:       roundTo(energy, 0),
		MachAtTarget:  roundTo(r.MachAtTarget, 2),
	}
}

//BallisticResult is the rounded, display-ready outcome of a single
//calculate_trajectory call.
type BallisticResult struct {
	//DropCM is positive when the bullet falls below the line of sight.
	DropCM float64 `json:"drop_cm"`
	//DriftCM is positive to the right.
	DriftCM float64 `json:"drift_cm"`
	//TimeOfFlightS is the elapsed simulated flight time in seconds.
	TimeOfFlightS float64 `json:"time_of_flight_s"`
	//VelocityMPS is the remaining speed at the target.
	VelocityMPS float64 `json:"velocity_mps"`
	//EnergyJ is the remaining kinetic energy at the target.
	EnergyJ float64 `json:"energy_j"`
	//MachAtTarget is the Mach number at the target, computed from the
	//unrounded velocity.
	MachAtTarget float64 `json:"mach_at_target"`
}

func (r BallisticResult) String() string {
	return fmt.Sprintf("drop=%.1fcm,drift=%.1fcm,t=%.3fs,v=%.0fm/s,E=%.0fJ,mach=%.2f",
		r.DropCM, r.DriftCM, r.TimeOfFlightS, r.VelocityMPS, r.EnergyJ, r.MachAtTarget)
}

//roundTo rounds v to the given number of decimal places, half-away-from-zero.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
