package model

// Code is a normalized 3-digit string driving all derived quantities.
// Position 0 is the home digit, 1 the solar digit, 2 the grid digit.
type Code string

// Digits decomposes the code into its positional digits. Characters outside
// '0'..'9' and missing positions count as zero, so Digits is total even on
// codes that skipped normalization.
func (c Code) Digits() DigitTriple {
	var d [3]int
	for i := 0; i < 3 && i < len(c); i++ {
		if c[i] >= '0' && c[i] <= '9' {
			d[i] = int(c[i] - '0')
		}
	}
	return DigitTriple{Home: d[0], Solar: d[1], Grid: d[2]}
}

// DigitTriple holds the three code digits, each in [0,9].
type DigitTriple struct {
	Home  int `json:"home"`
	Solar int `json:"solar"`
	Grid  int `json:"grid"`
}

// SolarAllocation partitions the solar digit into three non-negative parts.
// ToBattery + ToHome + ToGrid always equals the solar digit.
type SolarAllocation struct {
	ToBattery int `json:"to_battery"`
	ToHome    int `json:"to_home"`
	ToGrid    int `json:"to_grid"`
}

// HomeAllocation partitions the home digit into three non-negative parts.
// FromSolar + FromBattery + FromGrid always equals the home digit.
type HomeAllocation struct {
	FromSolar   int `json:"from_solar"`
	FromBattery int `json:"from_battery"`
	FromGrid    int `json:"from_grid"`
}

// Totals holds the headline figures shown above the charts. The emission
// figures use an illustrative factor, not a real grid one.
type Totals struct {
	TotalKWh    int     `json:"total_kwh"`
	EmissionsKg float64 `json:"emissions_kg"`
	AvoidedKg   float64 `json:"avoided_kg"`
}

// WeeklyPoint is one entry of the 12-point weekly chart series.
type WeeklyPoint struct {
	T           string `json:"t"`
	Temperature int    `json:"temperature"`
	Humidity    int    `json:"humidity"`
	Grid        int    `json:"grid"`
}

// HourlyPoint is one entry of the 10-point hourly chart series.
type HourlyPoint struct {
	T           string `json:"t"`
	ToHome      int    `json:"to_home"`
	Orientation int    `json:"orientation"`
}

// NameValue is the record shape pie and bar widgets consume directly.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// GridBar is the single record behind the grid exchange bar chart.
type GridBar struct {
	Name     string `json:"name"`
	FromGrid int    `json:"from_grid"`
	ToGrid   int    `json:"to_grid"`
}

// Coordinate is a geographic point picked on the map or resolved by search.
type Coordinate struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label,omitempty"`
}

// Dashboard bundles everything the dashboard view renders for one code.
type Dashboard struct {
	Code            Code            `json:"code"`
	Digits          DigitTriple     `json:"digits"`
	Totals          Totals          `json:"totals"`
	SolarAllocation SolarAllocation `json:"solar_allocation"`
	HomeAllocation  HomeAllocation  `json:"home_allocation"`
	WeeklySeries    []WeeklyPoint   `json:"weekly_series"`
	HourlySeries    []HourlyPoint   `json:"hourly_series"`
	SolarPie        []NameValue     `json:"solar_pie"`
	HomePie         []NameValue     `json:"home_pie"`
	GridBar         GridBar         `json:"grid_bar"`
	NetExported     int             `json:"net_exported"`
	GaugeValue      int             `json:"gauge_value"`
}
