package flow

import (
	"fmt"
	"math"

	"github.com/WiL-dev/econstruct/internal/model"
)

const (
	weeklyPoints = 12
	hourlyPoints = 10
)

// perturb returns base shifted by wave*base/2, rounded and clamped to >= 0.
// wave is a sin/cos sample in [-1,1], so the result stays within [0, 1.5*base].
func perturb(base int, wave float64) int {
	v := base + int(math.Round(wave*float64(base)/2))
	if v < 0 {
		v = 0
	}
	return v
}

// WeeklySeries synthesizes the 12-point weekly chart series from the code
// digits. Each field oscillates around its base digit at a different period.
func WeeklySeries(d model.DigitTriple) []model.WeeklyPoint {
	points := make([]model.WeeklyPoint, weeklyPoints)
	for i := range points {
		points[i] = model.WeeklyPoint{
			T:           fmt.Sprintf("W%d", i+1),
			Temperature: perturb(d.Solar, math.Sin(float64(i)/3)),
			Humidity:    perturb(d.Home, math.Cos(float64(i)/4)),
			Grid:        perturb(d.Grid, math.Sin(float64(i)/5)),
		}
	}
	return points
}

// HourlySeries synthesizes the 10-point hourly chart series from the solar
// allocation, labeled "0:00" through "9:00".
func HourlySeries(sa model.SolarAllocation) []model.HourlyPoint {
	points := make([]model.HourlyPoint, hourlyPoints)
	for i := range points {
		points[i] = model.HourlyPoint{
			T:           fmt.Sprintf("%d:00", i),
			ToHome:      perturb(sa.ToHome, math.Sin(float64(i)/3)),
			Orientation: perturb(sa.ToGrid, math.Cos(float64(i)/3)),
		}
	}
	return points
}
