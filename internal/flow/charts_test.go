package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WiL-dev/econstruct/internal/model"
)

func TestSolarPie(t *testing.T) {
	pie := SolarPie(model.SolarAllocation{ToBattery: 1, ToHome: 2, ToGrid: 6})

	require.Len(t, pie, 3)
	assert.Equal(t, model.NameValue{Name: "To Battery", Value: 1}, pie[0])
	assert.Equal(t, model.NameValue{Name: "To Home", Value: 2}, pie[1])
	assert.Equal(t, model.NameValue{Name: "To Grid", Value: 6}, pie[2])
}

func TestHomePie(t *testing.T) {
	pie := HomePie(model.HomeAllocation{FromSolar: 2, FromBattery: 1, FromGrid: 4})

	require.Len(t, pie, 3)
	assert.Equal(t, model.NameValue{Name: "From Solar", Value: 2}, pie[0])
	assert.Equal(t, model.NameValue{Name: "From Battery", Value: 1}, pie[1])
	assert.Equal(t, model.NameValue{Name: "From Grid", Value: 4}, pie[2])
}

func TestGridExchange(t *testing.T) {
	bar := GridExchange(
		model.SolarAllocation{ToGrid: 6},
		model.HomeAllocation{FromGrid: 4},
	)
	assert.Equal(t, model.GridBar{Name: "Grid", FromGrid: 4, ToGrid: 6}, bar)
}

func TestNetExported(t *testing.T) {
	assert.Equal(t, 3, NetExported(model.SolarAllocation{ToGrid: 8}, model.DigitTriple{Grid: 5}))
	assert.Equal(t, 0, NetExported(model.SolarAllocation{ToGrid: 2}, model.DigitTriple{Grid: 5}))
	assert.Equal(t, 0, NetExported(model.SolarAllocation{}, model.DigitTriple{}))
}

func TestGaugeValue_Clamped(t *testing.T) {
	assert.Equal(t, 0, GaugeValue(model.SolarAllocation{ToBattery: 0}))
	assert.Equal(t, 10, GaugeValue(model.SolarAllocation{ToBattery: 1}))
	assert.Equal(t, 100, GaugeValue(model.SolarAllocation{ToBattery: 10}))
	// Clamps even for inputs a digit code can never produce.
	assert.Equal(t, 100, GaugeValue(model.SolarAllocation{ToBattery: 42}))
	assert.Equal(t, 0, GaugeValue(model.SolarAllocation{ToBattery: -1}))
}
