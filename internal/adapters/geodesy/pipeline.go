package geodesy

import (
	"fmt"
	"strings"
)

// Pipeline renders a PROJ pipeline that takes src coordinates
// (degrees for geographic systems, meters for grids) to dst coordinates.
func Pipeline(src, dst Definition) string {
	steps := []string{"+proj=pipeline"}

	if src.Geographic() {
		steps = append(steps, "+step +proj=unitconvert +xy_in=deg +xy_out=rad")
	} else {
		steps = append(steps, "+step +inv "+tmercParams(src))
	}

	if !sameDatum(src.Datum, dst.Datum) {
		steps = append(steps,
			"+step +proj=cart "+ellipsoidParams(src.Datum.Ellipsoid),
			"+step "+helmertParams(src.Datum.ToWGS84, 1),
			"+step "+helmertParams(dst.Datum.ToWGS84, -1),
			"+step +inv +proj=cart "+ellipsoidParams(dst.Datum.Ellipsoid),
		)
	}

	if dst.Geographic() {
		steps = append(steps, "+step +proj=unitconvert +xy_in=rad +xy_out=deg")
	} else {
		steps = append(steps, "+step "+tmercParams(dst))
	}

	return strings.Join(steps, " ")
}

func tmercParams(d Definition) string {
	p := d.Projection
	return fmt.Sprintf("+proj=tmerc +lat_0=%s +lon_0=%s +k=%s +x_0=%s +y_0=%s %s",
		ftoa(p.Lat0), ftoa(p.Lon0), ftoa(p.K0), ftoa(p.X0), ftoa(p.Y0),
		ellipsoidParams(d.Datum.Ellipsoid))
}

func helmertParams(t [3]float64, sign float64) string {
	return fmt.Sprintf("+proj=helmert +x=%s +y=%s +z=%s",
		ftoa(sign*t[0]+0), ftoa(sign*t[1]+0), ftoa(sign*t[2]+0))
}
