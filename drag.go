package ballistics

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

//DragModel identifies which standard reference-projectile drag curve a
//ballistic coefficient is expressed against.
type DragModel byte

const (
	//G1 is the flat-base, pointed reference projectile (Mayevski/JBM table).
	G1 DragModel = iota + 1
	//G7 is the boat-tail, tangent-ogive reference projectile (Aberdeen Proving Ground table).
	G7
)

func (m DragModel) String() string {
	switch m {
	case G1:
		return "G1"
	case G7:
		return "G7"
	default:
		return fmt.Sprintf("DragModel(%d)", byte(m))
	}
}

//dragTable is a (mach, Cd) curve sorted ascending by mach, with a
//piecewise-linear predictor for the interior of the range that is fitted
//once, when the table is built at package initialization.
type dragTable struct {
	mach []float64
	cd   []float64
	pl   interp.PiecewiseLinear
}

func newDragTable(mach, cd []float64) *dragTable {
	t := &dragTable{mach: mach, cd: cd}
	if err := t.pl.Fit(mach, cd); err != nil {
		panic(fmt.Errorf("drag table: %v", err))
	}
	return t
}

//interpolate returns Cd at the given Mach number. Mach values at or beyond
//either end of the table are clamped to the boundary Cd rather than
//extrapolated.
func (t *dragTable) interpolate(mach float64) float64 {
	if mach <= t.mach[0] {
		return t.cd[0]
	}
	last := len(t.mach) - 1
	if mach >= t.mach[last] {
		return t.cd[last]
	}
	return t.pl.Predict(mach)
}

func dragTableFor(model DragModel) *dragTable {
	switch model {
	case G1:
		return g1Table
	case G7:
		return g7Table
	default:
		panic(fmt.Errorf("ballistics: unknown drag model %v", model))
	}
}

//dragCoefficient returns Cd at the given Mach number for the given drag model.
func dragCoefficient(mach float64, model DragModel) float64 {
	return dragTableFor(model).interpolate(mach)
}

//cStandardDensity is rho_std, the sea-level ICAO air density (kg/m^3) the
//drag tables and the K constant below are normalized against.
const cStandardDensity float64 = 1.225

//cDragConstant is K = rho_std / (2 * SD_ref), with SD_ref = 703.07 kg/m^2
//the G1/G7 reference sectional density.
const cDragConstant float64 = 0.000871

//dragDeceleration returns the magnitude of the drag deceleration (m/s^2)
//on a projectile with effective ballistic coefficient bc, travelling at
//relative airspeed v (m/s) through air of density rho (kg/m^3) with local
//speed of sound c (m/s), under the given drag model.
func dragDeceleration(v, bc, rho, c float64, model DragModel) float64 {
	mach := v / c
	cd := dragCoefficient(mach, model)
	return cDragConstant * (rho / cStandardDensity) * (cd / bc) * v * v
}

var g1Table = newDragTable(
	[]float64{
		0.00, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45,
		0.50, 0.55, 0.60, 0.70, 0.725, 0.75, 0.775, 0.80, 0.825, 0.85,
		0.875, 0.90, 0.925, 0.95, 0.975, 1.0, 1.025, 1.05, 1.075, 1.10,
		1.125, 1.15, 1.20, 1.25, 1.30, 1.35, 1.40, 1.45, 1.50, 1.55,
		1.60, 1.65, 1.70, 1.75, 1.80, 1.85, 1.90, 1.95, 2.00, 2.05,
		2.10, 2.15, 2.20, 2.25, 2.30, 2.35, 2.40, 2.45, 2.50, 2.60,
		2.70, 2.80, 2.90, 3.00, 3.10, 3.20, 3.30, 3.40, 3.50, 3.60,
		3.70, 3.80, 3.90, 4.00, 4.20, 4.40, 4.60, 4.80, 5.00,
	},
	[]float64{
		0.2629, 0.2558, 0.2487, 0.2413, 0.2344, 0.2278, 0.2214, 0.2155, 0.2104, 0.2061,
		0.2032, 0.2020, 0.2034, 0.2165, 0.2230, 0.2313, 0.2417, 0.2546, 0.2706, 0.2901,
		0.3136, 0.3415, 0.3734, 0.4084, 0.4448, 0.4805, 0.5136, 0.5427, 0.5677, 0.5883,
		0.6053, 0.6191, 0.6393, 0.6518, 0.6589, 0.6621, 0.6625, 0.6607, 0.6573, 0.6528,
		0.6474, 0.6413, 0.6347, 0.6280, 0.6210, 0.6141, 0.6072, 0.6003, 0.5934, 0.5867,
		0.5804, 0.5743, 0.5685, 0.5630, 0.5577, 0.5527, 0.5481, 0.5438, 0.5397, 0.5325,
		0.5264, 0.5211, 0.5168, 0.5133, 0.5105, 0.5084, 0.5067, 0.5054, 0.5040, 0.5030,
		0.5022, 0.5016, 0.5010, 0.5006, 0.4998, 0.4995, 0.4992, 0.4990, 0.4988,
	},
)

var g7Table = newDragTable(
	[]float64{
		0.00, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45,
		0.50, 0.55, 0.60, 0.65, 0.70, 0.725, 0.75, 0.775, 0.80, 0.825,
		0.85, 0.875, 0.90, 0.925, 0.95, 0.975, 1.0, 1.025, 1.05, 1.075,
		1.10, 1.125, 1.15, 1.20, 1.25, 1.30, 1.35, 1.40, 1.50, 1.55,
		1.60, 1.65, 1.70, 1.75, 1.80, 1.85, 1.90, 1.95, 2.00, 2.05,
		2.10, 2.15, 2.20, 2.25, 2.30, 2.35, 2.40, 2.45, 2.50, 2.55,
		2.60, 2.65, 2.70, 2.75, 2.80, 2.85, 2.90, 2.95, 3.00, 3.10,
		3.20, 3.30, 3.40, 3.50, 3.60, 3.70, 3.80, 3.90, 4.00, 4.20,
		4.40, 4.60, 4.80, 5.00,
	},
	[]float64{
		0.1198, 0.1197, 0.1196, 0.1194, 0.1193, 0.1194, 0.1194, 0.1194, 0.1193, 0.1193,
		0.1194, 0.1193, 0.1194, 0.1197, 0.1202, 0.1207, 0.1215, 0.1226, 0.1242, 0.1266,
		0.1306, 0.1368, 0.1464, 0.1660, 0.2054, 0.2993, 0.3803, 0.4015, 0.4043, 0.4034,
		0.4014, 0.3987, 0.3955, 0.3884, 0.3810, 0.3732, 0.3657, 0.3580, 0.3440, 0.3376,
		0.3315, 0.3260, 0.3209, 0.3160, 0.3117, 0.3078, 0.3042, 0.3010, 0.2980, 0.2951,
		0.2922, 0.2892, 0.2864, 0.2835, 0.2807, 0.2779, 0.2752, 0.2725, 0.2697, 0.2670,
		0.2643, 0.2615, 0.2588, 0.2561, 0.2533, 0.2506, 0.2479, 0.2451, 0.2424, 0.2368,
		0.2313, 0.2258, 0.2205, 0.2154, 0.2106, 0.2060, 0.2017, 0.1975, 0.1935, 0.1861,
		0.1793, 0.1730, 0.1672, 0.1618,
	},
)
