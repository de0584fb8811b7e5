package flow

import "github.com/WiL-dev/econstruct/internal/model"

// SolarPie shapes the solar allocation into the three pie slices.
func SolarPie(sa model.SolarAllocation) []model.NameValue {
	return []model.NameValue{
		{Name: "To Battery", Value: sa.ToBattery},
		{Name: "To Home", Value: sa.ToHome},
		{Name: "To Grid", Value: sa.ToGrid},
	}
}

// HomePie shapes the home allocation into the three pie slices.
func HomePie(ha model.HomeAllocation) []model.NameValue {
	return []model.NameValue{
		{Name: "From Solar", Value: ha.FromSolar},
		{Name: "From Battery", Value: ha.FromBattery},
		{Name: "From Grid", Value: ha.FromGrid},
	}
}

// GridExchange is the single record behind the grid import/export bar.
func GridExchange(sa model.SolarAllocation, ha model.HomeAllocation) model.GridBar {
	return model.GridBar{
		Name:     "Grid",
		FromGrid: ha.FromGrid,
		ToGrid:   sa.ToGrid,
	}
}

// NetExported is the headline export figure. Fixed display formula.
func NetExported(sa model.SolarAllocation, d model.DigitTriple) int {
	return max(sa.ToGrid-d.Grid, 0)
}

// GaugeValue maps the battery inflow onto a 0-100 gauge. Fixed display
// formula, clamped regardless of input.
func GaugeValue(sa model.SolarAllocation) int {
	v := sa.ToBattery * 10
	if v < 0 {
		v = 0
	}
	return min(100, v)
}
