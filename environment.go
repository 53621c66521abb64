package ballistics

import "fmt"

//Environment describes the atmospheric and wind conditions for a shot.
type Environment struct {
	//TemperatureC is the ambient air temperature in degrees Celsius.
	TemperatureC float64 `json:"temperature_c"`
	//PressureHPa is the station (not sea-level-reduced) air pressure in hectopascals.
	PressureHPa float64 `json:"pressure_hpa"`
	//RelativeHumidity is the relative humidity as a 0..1 fraction.
	RelativeHumidity float64 `json:"relative_humidity"`
	//AltitudeM is informational only; it does not feed the density calculation.
	AltitudeM float64 `json:"altitude_m"`
	//WindSpeedMPS is the wind speed in m/s.
	WindSpeedMPS float64 `json:"wind_speed_mps"`
	//WindAngleDeg is the wind direction in degrees: 0 = pure headwind,
	//90 = crosswind from the shooter's right, 180 = pure tailwind.
	//Values outside [0, 360) are tolerated; sin/cos take them modulo 360.
	WindAngleDeg float64 `json:"wind_angle_deg"`
}

const (
	isaDefaultTempC    float64 = 15
	isaDefaultPressure float64 = 1013.25
	isaDefaultHumidity float64 = 0.5
	isaDefaultAltitude float64 = 0
)

//EnvironmentOverrides selects which ISA defaults CreateStandardEnvironment
//should override. A nil/zero field is left at its ISA default; to
//explicitly request a zero value, use the pointer fields.
type EnvironmentOverrides struct {
	TemperatureC     *float64
	PressureHPa      *float64
	RelativeHumidity *float64
	AltitudeM        *float64
}

//CreateStandardEnvironment builds an Environment from ISA defaults
//(15C, 1013.25 hPa, 50% RH, 0m altitude) plus the given wind, with any
//scalar field optionally overridden.
func CreateStandardEnvironment(windSpeedMPS, windAngleDeg float64, overrides *EnvironmentOverrides) Environment {
	env := Environment{
		TemperatureC:     isaDefaultTempC,
		PressureHPa:      isaDefaultPressure,
		RelativeHumidity: isaDefaultHumidity,
		AltitudeM:        isaDefaultAltitude,
		WindSpeedMPS:     windSpeedMPS,
		WindAngleDeg:     windAngleDeg,
	}
	if overrides != nil {
		if overrides.TemperatureC != nil {
			env.TemperatureC = *overrides.TemperatureC
		}
		if overrides.PressureHPa != nil {
			env.PressureHPa = *overrides.PressureHPa
		}
		if overrides.RelativeHumidity != nil {
			env.RelativeHumidity = *overrides.RelativeHumidity
		}
		if overrides.AltitudeM != nil {
			env.AltitudeM = *overrides.AltitudeM
		}
	}
	return env
}

func (e Environment) String() string {
	return fmt.Sprintf("T=%.1fC,P=%.1fhPa,RH=%.0f%%,alt=%.0fm,wind=%.1fm/s@%.0fdeg",
		e.TemperatureC, e.PressureHPa, e.RelativeHumidity*100, e.AltitudeM, e.WindSpeedMPS, e.WindAngleDeg)
}
