package flow

import "github.com/WiL-dev/econstruct/internal/model"

// EFGrid converts kWh to kg CO2e. Illustrative demo constant, not a real
// grid emissions factor.
const EFGrid = 0.45

// Fixed apportionment fractions. The remainders absorb rounding so each
// partition sums exactly to its source digit.
const (
	solarToBatteryFrac = 0.11
	solarToHomeFrac    = 0.19
	homeFromSolarCap   = 0.4
	homeFromBatteryCap = 0.25
)

// Derive apportions the solar and home digits into flows and computes the
// headline totals. Inputs are digits in [0,9], so all intermediate values
// stay small and non-negative.
func Derive(d model.DigitTriple) (model.SolarAllocation, model.HomeAllocation, model.Totals) {
	sa := model.SolarAllocation{
		ToBattery: int(float64(d.Solar) * solarToBatteryFrac),
		ToHome:    int(float64(d.Solar) * solarToHomeFrac),
	}
	sa.ToGrid = max(d.Solar-sa.ToBattery-sa.ToHome, 0)

	// Home draw from solar/battery is capped both by what was routed there
	// and by a fixed fraction of the home digit; the grid absorbs the rest.
	ha := model.HomeAllocation{
		FromSolar:   min(sa.ToHome, int(float64(d.Home)*homeFromSolarCap)),
		FromBattery: min(sa.ToBattery, int(float64(d.Home)*homeFromBatteryCap)),
	}
	ha.FromGrid = max(d.Home-ha.FromSolar-ha.FromBattery, 0)

	totals := model.Totals{
		TotalKWh:    d.Home + d.Solar + d.Grid,
		EmissionsKg: float64(d.Home+d.Grid) * EFGrid,
		AvoidedKg:   float64(d.Solar) * EFGrid,
	}
	return sa, ha, totals
}
