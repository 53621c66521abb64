package ballistics

import (
	"fmt"
	"math"

	"github.com/huntrange/ballistics/bmath/vector"
)

//gravityMPS2 is standard gravitational acceleration, m/s^2.
const gravityMPS2 float64 = 9.81

//flightTimeCapS bounds simulated flight time; it exists to terminate
//degenerate cases (e.g. zero muzzle velocity) rather than to model anything
//physical.
const flightTimeCapS float64 = 5.0

const (
	baseStepS      float64 = 0.001
	transonicStepS float64 = 0.0005
)

//zeroBisectionIterations is the fixed iteration count for the zero-angle
//solver; 30 halvings of the 0.02 rad bracket resolve the angle to well
//under a microradian.
const zeroBisectionIterations = 30

//zeroAngleUpperBoundRad is the upper bracket for the bisection search; no
//realistic centerfire zero requires more elevation than this.
const zeroAngleUpperBoundRad float64 = 0.02

//gravityVector is the constant downward acceleration applied every step.
var gravityVector = vector.Create(0, -gravityMPS2, 0)

//stepFor returns the integration timestep for the given Mach number: finer
//through the transonic region where drag coefficient changes fastest.
func stepFor(mach float64) float64 {
	if mach > 0.9 && mach < 1.1 {
		return transonicStepS
	}
	return baseStepS
}

//dragAccelVector returns the drag deceleration vector opposing the given
//relative air velocity, or the zero vector if rel has no magnitude.
func dragAccelVector(rel vector.Vector, relSpeed float64, ammo Ammunition, model DragModel, rho, c float64) vector.Vector {
	if relSpeed <= 0 {
		return vector.Create(0, 0, 0)
	}
	bc := ammo.effectiveBC(relSpeed, model)
	a := dragDeceleration(relSpeed, bc, rho, c, model)
	return rel.MultiplyByConst(-a / relSpeed)
}

//simulate2DHeight runs the no-wind, no-lateral variant of the integrator
//and returns the height y at the step where x first reaches targetX (or at
//the safety cap, whichever comes first).
func simulate2DHeight(ammo Ammunition, model DragModel, v0, theta, rho, c, targetX float64) float64 {
	pos := vector.Create(0, 0, 0)
	vel := vector.Create(v0*math.Cos(theta), v0*math.Sin(theta), 0)
	t := 0.0

	for pos.X < targetX && t < flightTimeCapS {
		speed := vel.Magnitude()
		dt := baseStepS
		accel := dragAccelVector(vel, speed, ammo, model, rho, c).Add(gravityVector)
		vel = vel.Add(accel.MultiplyByConst(dt))
		pos = pos.Add(vel.MultiplyByConst(dt))
		t += dt
	}
	return pos.Y
}

//zeroAngleRad solves for the muzzle elevation (radians above horizontal)
//that sends the bullet through the profile's zero-height target at its zero
//distance, per the bisection algorithm.
func zeroAngleRad(profile RifleProfile, atmo atmosphereState) float64 {
	model := profile.activeDragModel()
	v0 := profile.Ammo.MuzzleVelocityMPS
	target := profile.zeroHeightTargetM()
	d := profile.ZeroDistanceM

	lo, hi := 0.0, zeroAngleUpperBoundRad
	for i := 0; i < zeroBisectionIterations; i++ {
		mid := (lo + hi) / 2
		y := simulate2DHeight(profile.Ammo, model, v0, mid, atmo.density, atmo.speedOfSound, d)
		if y < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

//CalculateTrajectoryRaw runs the full 3-D point-mass integration and
//returns the unrounded result. CalculateTrajectory is a thin rounding
//wrapper over this function.
func CalculateTrajectoryRaw(profile RifleProfile, targetDistanceM float64, env Environment) (RawBallisticResult, error) {
	if targetDistanceM <= 0 {
		return RawBallisticResult{}, fmt.Errorf("ballistics: target distance must be greater than zero")
	}

	atmo := computeAtmosphereState(env)
	model := profile.activeDragModel()
	theta := zeroAngleRad(profile, atmo)

	alphaRad := env.WindAngleDeg * math.Pi / 180
	wind := vector.Create(
		env.WindSpeedMPS*math.Cos(alphaRad), //headwind component, subtracted below
		0,
		env.WindSpeedMPS*math.Sin(alphaRad), //crosswind component
	)

	v0 := profile.Ammo.MuzzleVelocityMPS
	pos := vector.Create(0, -profile.SightHeightCM/100, 0)
	vel := vector.Create(v0*math.Cos(theta), v0*math.Sin(theta), 0)
	t := 0.0

	for pos.X < targetDistanceM && t < flightTimeCapS {
		rel := vel.Subtract(wind)
		relSpeed := rel.Magnitude()

		dt := baseStepS
		if relSpeed > 0 {
			dt = stepFor(relSpeed / atmo.speedOfSound)
		}

		accel := dragAccelVector(rel, relSpeed, profile.Ammo, model, atmo.density, atmo.speedOfSound).Add(gravityVector)
		vel = vel.Add(accel.MultiplyByConst(dt))
		pos = pos.Add(vel.MultiplyByConst(dt))
		t += dt
	}

	velocity := vel.Magnitude()
	massKG := profile.Ammo.BulletWeightGrains * grainsToKg
	energy := 0.5 * massKG * velocity * velocity
	mach := velocity / atmo.speedOfSound

	return RawBallisticResult{
		DropM:        pos.Y,
		DriftM:       pos.Z,
		TimeS:        t,
		VelocityMPS:  velocity,
		EnergyJ:      energy,
		MachAtTarget: mach,
		BulletMassKG: massKG,
	}, nil
}

//CalculateTrajectory computes the drop, drift, time of flight, remaining
//velocity, energy, and Mach number at the given target distance, rounded
//for display per §4.7.
func CalculateTrajectory(profile RifleProfile, targetDistanceM float64, env Environment) (BallisticResult, error) {
	raw, err := CalculateTrajectoryRaw(profile, targetDistanceM, env)
	if err != nil {
		return BallisticResult{}, err
	}
	return raw.Round(), nil
}

//ZeroAngle returns the launch angle the zero-angle solver computed for the
//given profile and environment, as an Angular, mirroring how collaborators
//might want to display "scope elevation required" independent of running a
//full trajectory.
func ZeroAngle(profile RifleProfile, env Environment) Angular {
	atmo := computeAtmosphereState(env)
	return MustCreateAngular(zeroAngleRad(profile, atmo), Radian)
}
