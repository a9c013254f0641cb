package domain

import "time"

// Output of a geographic datum conversion.
// Lat/Lon are rounded to 6 decimal places; the DMS strings are rendered
// from the unrounded values.
type GeographicResult struct {
	Lat    float64
	Lon    float64
	LatDMS string
	LonDMS string
}

// NewGeographicResult rounds and formats a geographic position for output.
func NewGeographicResult(g Geographic) GeographicResult {
	return GeographicResult{
		Lat:    RoundTo(g.Lat, 6),
		Lon:    RoundTo(g.Lon, 6),
		LatDMS: FormatDMS(g.Lat, true),
		LonDMS: FormatDMS(g.Lon, false),
	}
}

// Output of a projection, easting/northing rounded to 3 decimal places.
type GridResult struct {
	Zone     int
	Easting  float64
	Northing float64
}

// NewGridResult rounds a projected position for output.
func NewGridResult(p Projected) GridResult {
	return GridResult{
		Zone:     p.Zone,
		Easting:  RoundTo(p.Easting, 3),
		Northing: RoundTo(p.Northing, 3),
	}
}

// Minna grid position plus an unrounded WGS 84 position for map display.
type MinnaGridResult struct {
	Grid GridResult
	Map  Geographic
}

// WGS 84 geographic position derived from a Minna grid position, together
// with the WGS 84 UTM position it falls in as a cross-check.
type GridCheckResult struct {
	Geographic GeographicResult
	WGS84Grid  GridResult
}

// A single persisted conversion, successful or not.
type ConversionRecord struct {
	ID        string
	RequestID string
	Workflow  string
	Input     string
	Output    string
	Success   bool
	Error     string
	CreatedAt time.Time
}
