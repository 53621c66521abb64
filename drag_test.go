package ballistics

import "testing"

func TestDragTableBoundaryClamp(t *testing.T) {
	below := dragCoefficient(-1, G1)
	if below != g1Table.cd[0] {
		t.Errorf("expected clamp to first Cd, got %v", below)
	}
	above := dragCoefficient(10, G1)
	last := len(g1Table.cd) - 1
	if above != g1Table.cd[last] {
		t.Errorf("expected clamp to last Cd, got %v", above)
	}
}

func TestDragTableInterior(t *testing.T) {
	//Mach 1.0 sits exactly on a table entry for both models.
	cd := dragCoefficient(1.0, G1)
	assertClose(t, cd, 0.4805, 1e-9, "G1 Cd at Mach 1.0")

	cd7 := dragCoefficient(1.0, G7)
	assertClose(t, cd7, 0.3803, 1e-9, "G7 Cd at Mach 1.0")
}

func TestDragTableMidpointInterpolation(t *testing.T) {
	//Halfway between Mach 0.00 (0.2629) and 0.05 (0.2558) for G1.
	cd := dragCoefficient(0.025, G1)
	assertClose(t, cd, (0.2629+0.2558)/2, 1e-9, "G1 Cd at Mach 0.025")
}

func TestDragModelString(t *testing.T) {
	if G1.String() != "G1" {
		t.Errorf("expected G1, got %s", G1.String())
	}
	if G7.String() != "G7" {
		t.Errorf("expected G7, got %s", G7.String())
	}
}

func TestDragCoefficientUnknownModelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown drag model")
		}
	}()
	dragCoefficient(1.0, DragModel(0))
}

func TestDragDecelerationIncreasesWithVelocity(t *testing.T) {
	a1 := dragDeceleration(200, 0.5, cStandardDensity, 340, G1)
	a2 := dragDeceleration(400, 0.5, cStandardDensity, 340, G1)
	if a2 <= a1 {
		t.Error("drag deceleration should increase with speed")
	}
}

func TestDragDecelerationScalesWithDensity(t *testing.T) {
	low := dragDeceleration(300, 0.5, cStandardDensity/2, 340, G1)
	high := dragDeceleration(300, 0.5, cStandardDensity, 340, G1)
	if high <= low {
		t.Error("drag deceleration should increase with air density")
	}
}
