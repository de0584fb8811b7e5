package flow

import "github.com/WiL-dev/econstruct/internal/model"

// Build assembles the full dashboard bundle for an arbitrary input string.
// The input is normalized first, so Build is total and deterministic.
func Build(s string) model.Dashboard {
	code := Normalize(s)
	digits := code.Digits()
	sa, ha, totals := Derive(digits)

	return model.Dashboard{
		Code:            code,
		Digits:          digits,
		Totals:          totals,
		SolarAllocation: sa,
		HomeAllocation:  ha,
		WeeklySeries:    WeeklySeries(digits),
		HourlySeries:    HourlySeries(sa),
		SolarPie:        SolarPie(sa),
		HomePie:         HomePie(ha),
		GridBar:         GridExchange(sa, ha),
		NetExported:     NetExported(sa, digits),
		GaugeValue:      GaugeValue(sa),
	}
}
