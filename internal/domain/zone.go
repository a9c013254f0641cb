package domain

import "math"

const (
	minnaGridBase      = 26360
	wgs84UTMNorthBase  = 32600
	minnaWestBeltLimit = 6.0
	minnaMidBeltLimit  = 12.0
)

// MinnaZoneFor maps a Minna longitude to one of the three Nigerian zones.
// Breakpoints are inclusive on the west side: 6.0 is zone 31, 12.0 is zone 32.
func MinnaZoneFor(lon float64) int {
	switch {
	case lon <= minnaWestBeltLimit:
		return 31
	case lon <= minnaMidBeltLimit:
		return 32
	default:
		return 33
	}
}

// MinnaUTMCRS derives the Minna projected CRS for a zone (31 -> 26391).
func MinnaUTMCRS(zone int) CRS { return CRS(minnaGridBase + zone) }

// WGS84ZoneFor computes the global UTM zone for a longitude.
// No clamping: longitudes outside [-180, 180) yield zones outside 1..60.
func WGS84ZoneFor(lon float64) int {
	return int(math.Floor((lon+180)/6)) + 1
}

// WGS84UTMCRS derives the WGS 84 / UTM north CRS for a zone (31 -> 32631).
func WGS84UTMCRS(zone int) CRS { return CRS(wgs84UTMNorthBase + zone) }
