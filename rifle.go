package ballistics

import "fmt"

//ZeroType selects the convention used to sight the rifle at the zero distance.
type ZeroType byte

const (
	//ZeroStandard sights the rifle so the bullet crosses the sight line
	//exactly at the zero distance.
	ZeroStandard ZeroType = iota + 1
	//ZeroGEE (Guenstigste Einschussentfernung) sights the rifle so the
	//bullet impacts 4cm above point of aim at the zero distance, the
	//German hunting "point-blank range" convention.
	ZeroGEE
)

func (z ZeroType) String() string {
	switch z {
	case ZeroStandard:
		return "Standard"
	case ZeroGEE:
		return "GEE"
	default:
		return fmt.Sprintf("ZeroType(%d)", byte(z))
	}
}

//geeOffsetM is the height above point of aim (m) a GEE zero targets at the
//zero distance.
const geeOffsetM float64 = 0.04

//RifleProfile describes the rifle a load is fired from.
type RifleProfile struct {
	//Ammo is the ammunition fired from this rifle.
	Ammo Ammunition `json:"ammo"`
	//ZeroDistanceM is the distance (m) at which the rifle is sighted in (must be > 0).
	ZeroDistanceM float64 `json:"zero_distance_m"`
	//ZeroType selects the zero convention (ZeroStandard or ZeroGEE).
	Zero ZeroType `json:"zero_type"`
	//SightHeightCM is the vertical offset (cm) of the sight's optical axis
	//above the bore axis (must be > 0, typically 2-10).
	SightHeightCM float64 `json:"sight_height_cm"`
	//DragModel is the reference drag curve to integrate with. Zero value
	//defers to the ammunition's PreferredModel, then to G1.
	DragModel DragModel `json:"drag_model,omitempty"`
}

//CreateRifleProfile validates and returns a RifleProfile.
func CreateRifleProfile(p RifleProfile) (RifleProfile, error) {
	if p.ZeroDistanceM <= 0 {
		return RifleProfile{}, fmt.Errorf("ballistics: zero distance must be greater than zero")
	}
	if p.SightHeightCM <= 0 {
		return RifleProfile{}, fmt.Errorf("ballistics: sight height must be greater than zero")
	}
	switch p.Zero {
	case ZeroStandard, ZeroGEE:
	default:
		return RifleProfile{}, fmt.Errorf("ballistics: unknown zero type %v", p.Zero)
	}
	switch p.DragModel {
	case 0, G1, G7:
	default:
		return RifleProfile{}, fmt.Errorf("ballistics: unknown drag model %v", p.DragModel)
	}
	return p, nil
}

//MustCreateRifleProfile is like CreateRifleProfile but panics on error.
func MustCreateRifleProfile(p RifleProfile) RifleProfile {
	v, err := CreateRifleProfile(p)
	if err != nil {
		panic(err)
	}
	return v
}

//activeDragModel resolves the drag model to use: the profile's explicit
//choice, else the ammunition's preference, else G1.
func (p RifleProfile) activeDragModel() DragModel {
	if p.DragModel != 0 {
		return p.DragModel
	}
	if p.Ammo.PreferredModel != 0 {
		return p.Ammo.PreferredModel
	}
	return G1
}

//zeroHeightTargetM returns the height (m, positive up, bore-axis origin)
//the zero-angle solver must hit at the zero distance.
func (p RifleProfile) zeroHeightTargetM() float64 {
	h := p.SightHeightCM / 100
	if p.Zero == ZeroGEE {
		h += geeOffsetM
	}
	return h
}
