package geodesy

import (
	"fmt"
	"strconv"
	"strings"

	"geoconv-service/internal/domain"
)

// Ellipsoid is defined by its semi-major axis and inverse flattening.
type Ellipsoid struct {
	Name string
	A    float64
	InvF float64
}

func (e Ellipsoid) flattening() float64 { return 1 / e.InvF }

// Eccentricity squared.
func (e Ellipsoid) e2() float64 {
	f := e.flattening()
	return f * (2 - f)
}

// Datum ties an ellipsoid to WGS 84 with a 3-parameter geocentric shift
// (meters, source -> WGS 84).
type Datum struct {
	Name      string
	Ellipsoid Ellipsoid
	ToWGS84   [3]float64
}

// GeographicCRS returns the geographic CRS identifier of the datum.
func (d Datum) GeographicCRS() domain.CRS {
	if d.Name == string(domain.DatumMinna) {
		return domain.MinnaGeographic
	}
	return domain.WGS84Geographic
}

// TransverseMercator holds the parameters of a transverse Mercator grid.
type TransverseMercator struct {
	Lat0 float64 // latitude of origin, degrees
	Lon0 float64 // central meridian, degrees
	K0   float64 // scale factor on the central meridian
	X0   float64 // false easting, meters
	Y0   float64 // false northing, meters
}

// Definition describes one CRS. Projection is nil for geographic systems.
type Definition struct {
	Code       domain.CRS
	Name       string
	Datum      Datum
	Projection *TransverseMercator
}

func (d Definition) Geographic() bool { return d.Projection == nil }

var (
	wgs84Ellipsoid = Ellipsoid{Name: "WGS 84", A: 6378137, InvF: 298.257223563}
	clarke1880RGS  = Ellipsoid{Name: "Clarke 1880 (RGS)", A: 6378249.145, InvF: 293.465}

	wgs84Datum = Datum{Name: string(domain.DatumWGS84), Ellipsoid: wgs84Ellipsoid}
	minnaDatum = Datum{Name: string(domain.DatumMinna), Ellipsoid: clarke1880RGS, ToWGS84: [3]float64{-92, -93, 122}}
)

// Minna grids carry the EPSG codes 26391..26393 (Nigeria West, Mid and East Belt).
var minnaBelts = map[domain.CRS]Definition{
	26391: {Code: 26391, Name: "Minna / Nigeria West Belt", Datum: minnaDatum,
		Projection: &TransverseMercator{Lat0: 4, Lon0: 4.5, K0: 0.99975, X0: 230738.26}},
	26392: {Code: 26392, Name: "Minna / Nigeria Mid Belt", Datum: minnaDatum,
		Projection: &TransverseMercator{Lat0: 4, Lon0: 8.5, K0: 0.99975, X0: 670553.98}},
	26393: {Code: 26393, Name: "Minna / Nigeria East Belt", Datum: minnaDatum,
		Projection: &TransverseMercator{Lat0: 4, Lon0: 12.5, K0: 0.99975, X0: 1110369.7}},
}

// Lookup returns the definition for a supported CRS identifier.
func Lookup(code domain.CRS) (Definition, bool) {
	switch code {
	case domain.WGS84Geographic:
		return Definition{Code: code, Name: "WGS 84", Datum: wgs84Datum}, true
	case domain.MinnaGeographic:
		return Definition{Code: code, Name: "Minna", Datum: minnaDatum}, true
	}

	if def, ok := minnaBelts[code]; ok {
		return def, true
	}

	if zone := int(code) - 32600; zone >= 1 && zone <= 60 {
		return Definition{
			Code:  code,
			Name:  fmt.Sprintf("WGS 84 / UTM zone %dN", zone),
			Datum: wgs84Datum,
			Projection: &TransverseMercator{
				Lon0: float64(6*zone - 183),
				K0:   0.9996,
				X0:   500000,
			},
		}, true
	}

	return Definition{}, false
}

// ProjString renders the definition as a PROJ string.
func (d Definition) ProjString() string {
	var b strings.Builder
	if d.Projection == nil {
		b.WriteString("+proj=longlat")
	} else {
		p := d.Projection
		fmt.Fprintf(&b, "+proj=tmerc +lat_0=%s +lon_0=%s +k=%s +x_0=%s +y_0=%s",
			ftoa(p.Lat0), ftoa(p.Lon0), ftoa(p.K0), ftoa(p.X0), ftoa(p.Y0))
	}
	b.WriteString(" ")
	b.WriteString(ellipsoidParams(d.Datum.Ellipsoid))
	t := d.Datum.ToWGS84
	fmt.Fprintf(&b, " +towgs84=%s,%s,%s,0,0,0,0", ftoa(t[0]), ftoa(t[1]), ftoa(t[2]))
	if d.Projection != nil {
		b.WriteString(" +units=m")
	}
	b.WriteString(" +no_defs")
	return b.String()
}

func ellipsoidParams(e Ellipsoid) string {
	return fmt.Sprintf("+a=%s +rf=%s", ftoa(e.A), ftoa(e.InvF))
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
