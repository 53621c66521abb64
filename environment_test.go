package ballistics

import "testing"

func TestCreateStandardEnvironmentDefaults(t *testing.T) {
	env := CreateStandardEnvironment(5, 90, nil)
	assertClose(t, env.TemperatureC, 15, 1e-9, "default temperature")
	assertClose(t, env.PressureHPa, 1013.25, 1e-9, "default pressure")
	assertClose(t, env.RelativeHumidity, 0.5, 1e-9, "default humidity")
	assertClose(t, env.AltitudeM, 0, 1e-9, "default altitude")
	assertClose(t, env.WindSpeedMPS, 5, 1e-9, "wind speed")
	assertClose(t, env.WindAngleDeg, 90, 1e-9, "wind angle")
}

func TestCreateStandardEnvironmentOverrides(t *testing.T) {
	temp := -10.0
	alt := 1500.0
	env := CreateStandardEnvironment(0, 0, &EnvironmentOverrides{
		TemperatureC: &temp,
		AltitudeM:    &alt,
	})
	assertClose(t, env.TemperatureC, -10, 1e-9, "overridden temperature")
	assertClose(t, env.AltitudeM, 1500, 1e-9, "overridden altitude")
	//non-overridden fields keep their ISA default.
	assertClose(t, env.PressureHPa, 1013.25, 1e-9, "default pressure retained")
}
