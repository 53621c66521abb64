package ballistics

import "fmt"

//VelocityBand is one entry of a stepwise, velocity-dependent ballistic
//coefficient. A band list models the fact that some published BCs are
//only accurate over a particular velocity range.
type VelocityBand struct {
	//VelocityThresholdMPS is the speed (m/s) at or above which this band's BC applies.
	VelocityThresholdMPS float64 `json:"velocity_threshold_mps"`
	//BC is the ballistic coefficient to use while the projectile is at or
	//above VelocityThresholdMPS (and below the next higher band's threshold).
	BC float64 `json:"bc"`
}

//CreateVelocityBands validates and returns a velocity-band list. The list
//must be non-empty, sorted by threshold strictly descending, and every BC
//must be positive.
func CreateVelocityBands(bands []VelocityBand) ([]VelocityBand, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("ballistics: velocity band list must not be empty")
	}
	for i, b := range bands {
		if b.BC <= 0 {
			return nil, fmt.Errorf("ballistics: velocity band %d: BC must be greater than zero", i)
		}
		if i > 0 && bands[i-1].VelocityThresholdMPS <= b.VelocityThresholdMPS {
			return nil, fmt.Errorf("ballistics: velocity band thresholds must be sorted strictly descending")
		}
	}
	out := make([]VelocityBand, len(bands))
	copy(out, bands)
	return out, nil
}

//MustCreateVelocityBands is like CreateVelocityBands but panics on error.
func MustCreateVelocityBands(bands []VelocityBand) []VelocityBand {
	v, err := CreateVelocityBands(bands)
	if err != nil {
		panic(err)
	}
	return v
}

//Ammunition describes a specific load: a bullet with its aerodynamic
//behavior and the muzzle velocity it produces from a given rifle.
type Ammunition struct {
	//Name identifies the load, e.g. ".308 Win 178gr ELD-X".
	Name string `json:"name"`
	//BulletWeightGrains is the projectile mass in grains (must be positive).
	BulletWeightGrains float64 `json:"bullet_weight_grains"`
	//BCG1 is the primary (G1) ballistic coefficient (must be positive).
	BCG1 float64 `json:"bc_g1"`
	//BCG7 is an optional G7 ballistic coefficient; zero means "not provided".
	BCG7 float64 `json:"bc_g7,omitempty"`
	//VelocityBands is an optional velocity-banded BC table, sorted by
	//threshold descending. When non-empty it takes priority over BCG1/BCG7.
	VelocityBands []VelocityBand `json:"velocity_bands,omitempty"`
	//PreferredModel is the drag model the ammunition's BC was measured
	//against; zero value means "no preference" (defaults to G1).
	PreferredModel DragModel `json:"preferred_model,omitempty"`
	//MuzzleVelocityMPS is the muzzle velocity in m/s (must be non-negative).
	MuzzleVelocityMPS float64 `json:"muzzle_velocity_mps"`
}

//CreateAmmunition validates and returns an Ammunition description.
func CreateAmmunition(a Ammunition) (Ammunition, error) {
	if a.BulletWeightGrains <= 0 {
		return Ammunition{}, fmt.Errorf("ballistics: bullet weight must be greater than zero")
	}
	if a.BCG1 <= 0 {
		return Ammunition{}, fmt.Errorf("ballistics: G1 ballistic coefficient must be greater than zero")
	}
	if a.BCG7 < 0 {
		return Ammunition{}, fmt.Errorf("ballistics: G7 ballistic coefficient must not be negative")
	}
	if a.MuzzleVelocityMPS < 0 {
		return Ammunition{}, fmt.Errorf("ballistics: muzzle velocity must not be negative")
	}
	switch a.PreferredModel {
	case 0, G1, G7:
	default:
		return Ammunition{}, fmt.Errorf("ballistics: unknown preferred drag model %v", a.PreferredModel)
	}
	if len(a.VelocityBands) > 0 {
		bands, err := CreateVelocityBands(a.VelocityBands)
		if err != nil {
			return Ammunition{}, err
		}
		a.VelocityBands = bands
	}
	return a, nil
}

//MustCreateAmmunition is like CreateAmmunition but panics on error.
func MustCreateAmmunition(a Ammunition) Ammunition {
	v, err := CreateAmmunition(a)
	if err != nil {
		panic(err)
	}
	return v
}

//effectiveBC implements the BC-selection rule of §4.3: velocity bands
//take priority when present, otherwise the active model picks G7 (if
//provided) or falls back to G1.
func (a Ammunition) effectiveBC(v float64, model DragModel) float64 {
	if len(a.VelocityBands) > 0 {
		return velocityBandBC(a.VelocityBands, v)
	}
	if model == G7 && a.BCG7 > 0 {
		return a.BCG7
	}
	return a.BCG1
}

func velocityBandBC(bands []VelocityBand, v float64) float64 {
	for _, b := range bands {
		if b.VelocityThresholdMPS <= v {
			return b.BC
		}
	}
	return bands[len(bands)-1].BC
}

func (a Ammunition) String() string {
	return fmt.Sprintf("%s: %.1fgr, BC(G1)=%.3f, v0=%.1fm/s", a.Name, a.BulletWeightGrains, a.BCG1, a.MuzzleVelocityMPS)
}
