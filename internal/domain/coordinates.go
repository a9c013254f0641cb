package domain

import "math"

// Immutable geographic coordinates (longitude, latitude) in decimal degrees.
// Negative values are South/West. A Geographic value only has meaning
// relative to the datum of the CRS it was produced for.
type Geographic struct {
	Lon float64
	Lat float64
}

// Return coordinates as (x, y) in engine axis order: longitude first.
func (g Geographic) XY() (float64, float64) { return g.Lon, g.Lat }

// Projected grid coordinates in meters within a numbered zone.
type Projected struct {
	Zone     int
	Easting  float64
	Northing float64
}

// Return coordinates as (x, y) in engine axis order: easting first.
func (p Projected) XY() (float64, float64) { return p.Easting, p.Northing }

// RoundTo rounds v half away from zero to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
