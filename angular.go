package ballistics

import (
	"fmt"
	"math"
)

//AngularUnit identifies the unit an Angular value is expressed in.
type AngularUnit byte

const (
	//Radian is the SI unit of plane angle.
	Radian AngularUnit = iota + 1
	//Degree is 1/360 of a full turn.
	Degree
	//MOA (minute of angle) is 1/60 of a degree.
	MOA
	//Mil (milliradian) is 1/1000 of a radian.
	Mil
)

func (u AngularUnit) String() string {
	switch u {
	case Radian:
		return "rad"
	case Degree:
		return "deg"
	case MOA:
		return "moa"
	case Mil:
		return "mil"
	default:
		return fmt.Sprintf("AngularUnit(%d)", byte(u))
	}
}

//Angular is a radian-backed angle that knows how to present itself in
//radians, degrees, MOA, or mils.
type Angular struct {
	radians float64
}

//CreateAngular builds an Angular from a value expressed in the given unit.
func CreateAngular(value float64, unit AngularUnit) (Angular, error) {
	switch unit {
	case Radian:
		return Angular{radians: value}, nil
	case Degree:
		return Angular{radians: value * math.Pi / 180}, nil
	case MOA:
		return Angular{radians: value * math.Pi / (180 * 60)}, nil
	case Mil:
		return Angular{radians: value / 1000}, nil
	default:
		return Angular{}, fmt.Errorf("ballistics: unknown angular unit %v", unit)
	}
}

//MustCreateAngular is like CreateAngular but panics on error.
func MustCreateAngular(value float64, unit AngularUnit) Angular {
	a, err := CreateAngular(value, unit)
	if err != nil {
		panic(err)
	}
	return a
}

//In returns the angle's value expressed in the given unit.
func (a Angular) In(unit AngularUnit) float64 {
	switch unit {
	case Radian:
		return a.radians
	case Degree:
		return a.radians * 180 / math.Pi
	case MOA:
		return a.radians * (180 * 60) / math.Pi
	case Mil:
		return a.radians * 1000
	default:
		panic(fmt.Errorf("ballistics: unknown angular unit %v", unit))
	}
}

func (a Angular) String() string {
	return fmt.Sprintf("%.4frad", a.radians)
}

//CmToMOA converts a group/drop size in centimeters at the given distance
//(meters) into minutes of angle, per the literal MOA definition (2.908 cm
//subtended at 100 m).
func CmToMOA(cm, distanceM float64) float64 {
	return (cm / 2.908) * (100 / distanceM)
}

//CmToMil converts a group/drop size in centimeters at the given distance
//(meters) into milliradians, per the convention that 1 mil subtends exactly
//10 cm at 100 m.
func CmToMil(cm, distanceM float64) float64 {
	return (cm / 10) * (100 / distanceM)
}
