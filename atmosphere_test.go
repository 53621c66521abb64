package ballistics

import "testing"

func TestSpeedOfSound(t *testing.T) {
	assertClose(t, speedOfSound(15), 340.3, 0.2, "speed of sound at 15C")
	assertClose(t, speedOfSound(-10), 325.1, 0.2, "speed of sound at -10C")
	assertClose(t, speedOfSound(30), 349.3, 0.2, "speed of sound at 30C")
}

func TestAirDensityAtISA(t *testing.T) {
	rho := airDensity(15, 1013.25, 0.5)
	assertClose(t, rho, 1.224, 0.005, "ISA air density")
}

func TestAirDensityDecreasesWithHumidity(t *testing.T) {
	dry := airDensity(15, 1013.25, 0)
	humid := airDensity(15, 1013.25, 1)
	if humid >= dry {
		t.Error("humid air should be less dense than dry air at the same T/P")
	}
}

func TestAirDensityDecreasesWithTemperature(t *testing.T) {
	cold := airDensity(-10, 1013.25, 0.5)
	hot := airDensity(30, 1013.25, 0.5)
	if hot >= cold {
		t.Error("hot air should be less dense than cold air at the same P/RH")
	}
}

func TestCalculatePressureFromAltitudeSeaLevel(t *testing.T) {
	assertClose(t, CalculatePressureFromAltitude(0), 1013.25, 1e-9, "P(0) == P0")
}

func TestCalculatePressureFromAltitudeDecreasesWithAltitude(t *testing.T) {
	p1000 := CalculatePressureFromAltitude(1000)
	p4000 := CalculatePressureFromAltitude(4000)
	assertClose(t, p1000, 898.76, 2, "P(1000)")
	assertClose(t, p4000, 616.6, 2, "P(4000)")
	if p4000 >= p1000 {
		t.Error("pressure should decrease with altitude")
	}
}

func TestCalculatePressureFromAltitudeCustomSeaLevel(t *testing.T) {
	p := CalculatePressureFromAltitude(0, 1000)
	assertClose(t, p, 1000, 1e-9, "custom sea-level pressure at altitude 0")
}
