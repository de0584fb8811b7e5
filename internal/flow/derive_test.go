package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WiL-dev/econstruct/internal/model"
)

// Both allocations must partition their source digit exactly, with every
// part non-negative, for all 1000 possible digit triples.
func TestDerive_PartitionsSumExactly(t *testing.T) {
	for home := 0; home <= 9; home++ {
		for solar := 0; solar <= 9; solar++ {
			for grid := 0; grid <= 9; grid++ {
				d := model.DigitTriple{Home: home, Solar: solar, Grid: grid}
				sa, ha, _ := Derive(d)

				assert.Equal(t, solar, sa.ToBattery+sa.ToHome+sa.ToGrid, "triple %v", d)
				assert.Equal(t, home, ha.FromSolar+ha.FromBattery+ha.FromGrid, "triple %v", d)

				assert.GreaterOrEqual(t, sa.ToBattery, 0)
				assert.GreaterOrEqual(t, sa.ToHome, 0)
				assert.GreaterOrEqual(t, sa.ToGrid, 0)
				assert.GreaterOrEqual(t, ha.FromSolar, 0)
				assert.GreaterOrEqual(t, ha.FromBattery, 0)
				assert.GreaterOrEqual(t, ha.FromGrid, 0)
			}
		}
	}
}

func TestDerive_Code333(t *testing.T) {
	sa, ha, totals := Derive(model.DigitTriple{Home: 3, Solar: 3, Grid: 3})

	// floor(3*0.11) and floor(3*0.19) are both 0, so the grid takes all solar.
	assert.Equal(t, model.SolarAllocation{ToBattery: 0, ToHome: 0, ToGrid: 3}, sa)
	assert.Equal(t, model.HomeAllocation{FromSolar: 0, FromBattery: 0, FromGrid: 3}, ha)

	assert.Equal(t, 9, totals.TotalKWh)
	assert.InDelta(t, 2.7, totals.EmissionsKg, 1e-9)
	assert.InDelta(t, 1.35, totals.AvoidedKg, 1e-9)
}

func TestDerive_Code905(t *testing.T) {
	sa, ha, totals := Derive(model.DigitTriple{Home: 9, Solar: 0, Grid: 5})

	// No solar means nothing to allocate, so the home draws everything from grid.
	assert.Equal(t, model.SolarAllocation{}, sa)
	assert.Equal(t, model.HomeAllocation{FromSolar: 0, FromBattery: 0, FromGrid: 9}, ha)

	assert.Equal(t, 14, totals.TotalKWh)
	assert.InDelta(t, 6.3, totals.EmissionsKg, 1e-9)
	assert.InDelta(t, 0.0, totals.AvoidedKg, 1e-9)
}

func TestDerive_HomeCapsApply(t *testing.T) {
	// solar=9 routes floor(9*0.19)=1 to home and floor(9*0.11)=0 to battery.
	// home=9 caps are floor(9*0.4)=3 and floor(9*0.25)=2, so fromSolar is
	// limited by the routed amount, not the cap.
	sa, ha, _ := Derive(model.DigitTriple{Home: 9, Solar: 9, Grid: 0})

	assert.Equal(t, model.SolarAllocation{ToBattery: 0, ToHome: 1, ToGrid: 8}, sa)
	assert.Equal(t, model.HomeAllocation{FromSolar: 1, FromBattery: 0, FromGrid: 8}, ha)
}

func TestDerive_Deterministic(t *testing.T) {
	d := model.DigitTriple{Home: 7, Solar: 8, Grid: 2}

	sa1, ha1, t1 := Derive(d)
	sa2, ha2, t2 := Derive(d)

	assert.Equal(t, sa1, sa2)
	assert.Equal(t, ha1, ha2)
	assert.Equal(t, t1, t2)
}
