package geodesy

import "math"

const deg = math.Pi / 180

// toGeocentric converts geodetic latitude/longitude (radians) at zero
// ellipsoidal height to earth-centred cartesian coordinates.
func toGeocentric(e Ellipsoid, lat, lon float64) (x, y, z float64) {
	e2 := e.e2()
	sinLat, cosLat := math.Sincos(lat)
	n := e.A / math.Sqrt(1-e2*sinLat*sinLat)

	x = n * cosLat * math.Cos(lon)
	y = n * cosLat * math.Sin(lon)
	z = n * (1 - e2) * sinLat
	return
}

// fromGeocentric inverts toGeocentric by fixed-point iteration on latitude.
// The ellipsoidal height is discarded.
func fromGeocentric(e Ellipsoid, x, y, z float64) (lat, lon float64) {
	e2 := e.e2()
	p := math.Hypot(x, y)
	lon = math.Atan2(y, x)

	lat = math.Atan2(z, p*(1-e2))
	for i := 0; i < 16; i++ {
		sinLat := math.Sin(lat)
		n := e.A / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(z+e2*n*sinLat, p)
		if math.Abs(next-lat) < 1e-14 {
			lat = next
			break
		}
		lat = next
	}
	return
}

// shiftDatum moves a geographic position (radians) from one datum to another
// through WGS 84 geocentric coordinates.
func shiftDatum(from, to Datum, lat, lon float64) (float64, float64) {
	x, y, z := toGeocentric(from.Ellipsoid, lat, lon)

	x += from.ToWGS84[0] - to.ToWGS84[0]
	y += from.ToWGS84[1] - to.ToWGS84[1]
	z += from.ToWGS84[2] - to.ToWGS84[2]

	return fromGeocentric(to.Ellipsoid, x, y, z)
}

func sameDatum(a, b Datum) bool {
	return a.Ellipsoid == b.Ellipsoid && a.ToWGS84 == b.ToWGS84
}
