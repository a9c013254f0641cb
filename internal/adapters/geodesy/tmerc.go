package geodesy

import (
	"errors"
	"math"
)

var errOutsideDomain = errors.New("point outside projection domain")

// maxDLon is the widest longitude offset from the central meridian accepted
// by forward, in degrees.
const maxDLon = 60.0

// tmerc is a transverse Mercator projection on an ellipsoid, evaluated with
// the 6th order Krüger series in the third flattening (Karney 2011).
// Accuracy is well below a millimetre within a few thousand km of the
// central meridian.
type tmerc struct {
	params TransverseMercator
	e      float64 // eccentricity
	kA     float64 // k0 * rectifying radius
	xi0    float64 // rectified latitude of origin
	alpha  [6]float64
	beta   [6]float64
}

func newTmerc(el Ellipsoid, p TransverseMercator) *tmerc {
	f := el.flattening()
	n := f / (2 - f)
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n

	a := el.A / (1 + n) * (1 + n2/4 + n4/64 + n6/256)

	t := &tmerc{
		params: p,
		e:      math.Sqrt(el.e2()),
		kA:     p.K0 * a,
	}

	t.alpha = [6]float64{
		n/2 - 2*n2/3 + 5*n3/16 + 41*n4/180 - 127*n5/288 + 7891*n6/37800,
		13*n2/48 - 3*n3/5 + 557*n4/1440 + 281*n5/630 - 1983433*n6/1935360,
		61*n3/240 - 103*n4/140 + 15061*n5/26880 + 167603*n6/181440,
		49561*n4/161280 - 179*n5/168 + 6601661*n6/7257600,
		34729*n5/80640 - 3418889*n6/1995840,
		212378941 * n6 / 319334400,
	}
	t.beta = [6]float64{
		n/2 - 2*n2/3 + 37*n3/96 - n4/360 - 81*n5/512 + 96199*n6/604800,
		n2/48 + n3/15 - 437*n4/1440 + 46*n5/105 - 1118711*n6/3870720,
		17*n3/480 - 37*n4/840 - 209*n5/4480 + 5569*n6/90720,
		4397*n4/161280 - 11*n5/504 - 830251*n6/7257600,
		4583*n5/161280 - 108847*n6/3991680,
		20648693 * n6 / 638668800,
	}

	xi, _ := t.gaussKruger(p.Lat0*deg, 0)
	t.xi0 = xi
	return t
}

// conformalTan returns tan of the conformal latitude for tau = tan(lat).
func (t *tmerc) conformalTan(tau float64) float64 {
	sigma := math.Sinh(t.e * math.Atanh(t.e*tau/math.Sqrt(1+tau*tau)))
	return tau*math.Sqrt(1+sigma*sigma) - sigma*math.Sqrt(1+tau*tau)
}

// gaussKruger maps latitude and longitude offset (radians) to the
// normalised (xi, eta) plane.
func (t *tmerc) gaussKruger(lat, dLon float64) (xi, eta float64) {
	tauP := t.conformalTan(math.Tan(lat))
	sinL, cosL := math.Sincos(dLon)

	xiP := math.Atan2(tauP, cosL)
	etaP := math.Asinh(sinL / math.Sqrt(tauP*tauP+cosL*cosL))

	xi, eta = xiP, etaP
	for j, a := range t.alpha {
		k := 2 * float64(j+1)
		xi += a * math.Sin(k*xiP) * math.Cosh(k*etaP)
		eta += a * math.Cos(k*xiP) * math.Sinh(k*etaP)
	}
	return
}

// forward projects geographic degrees to easting/northing.
func (t *tmerc) forward(lon, lat float64) (float64, float64, error) {
	dLon := math.Remainder(lon-t.params.Lon0, 360)
	if math.Abs(lat) > 90 || math.Abs(dLon) > maxDLon {
		return 0, 0, errOutsideDomain
	}

	xi, eta := t.gaussKruger(lat*deg, dLon*deg)

	easting := t.params.X0 + t.kA*eta
	northing := t.params.Y0 + t.kA*(xi-t.xi0)
	return easting, northing, nil
}

// inverse maps easting/northing back to geographic degrees.
func (t *tmerc) inverse(easting, northing float64) (float64, float64, error) {
	eta := (easting - t.params.X0) / t.kA
	xi := (northing-t.params.Y0)/t.kA + t.xi0

	xiP, etaP := xi, eta
	for j, b := range t.beta {
		k := 2 * float64(j+1)
		xiP -= b * math.Sin(k*xi) * math.Cosh(k*eta)
		etaP -= b * math.Cos(k*xi) * math.Sinh(k*eta)
	}

	sinhEta := math.Sinh(etaP)
	sinXi, cosXi := math.Sincos(xiP)
	r := math.Hypot(sinhEta, cosXi)
	if math.IsInf(sinhEta, 0) || math.IsNaN(r) {
		return 0, 0, errOutsideDomain
	}

	tauP := sinXi / r
	dLon := math.Atan2(sinhEta, cosXi)

	// Newton iteration for tau given tau'.
	e2 := t.e * t.e
	tau := tauP
	for i := 0; i < 12; i++ {
		tp := t.conformalTan(tau)
		d := (tauP - tp) / math.Sqrt(1+tp*tp) *
			(1 + (1-e2)*tau*tau) / ((1 - e2) * math.Sqrt(1+tau*tau))
		tau += d
		if math.Abs(d) < 1e-14 {
			break
		}
	}

	lat := math.Atan(tau) / deg
	lon := t.params.Lon0 + dLon/deg
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return 0, 0, errOutsideDomain
	}
	return lon, lat, nil
}
