package geodesy

import (
	"errors"
	"fmt"
	"math"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/ports"
)

var errInvalidCoordinate = errors.New("latitude or longitude exceeded limits")

// BuiltinEngine implements TransformerFactory in pure Go for the CRS
// identifiers known to Lookup. Datum changes use a 3-parameter geocentric
// shift through WGS 84; grids use a transverse Mercator projection.
type BuiltinEngine struct{}

func NewBuiltinEngine() *BuiltinEngine { return &BuiltinEngine{} }

func (BuiltinEngine) NewTransformer(src, dst domain.CRS) (ports.Transformer, error) {
	srcDef, ok := Lookup(src)
	if !ok {
		return nil, &ports.TransformError{Src: src, Dst: dst, Err: fmt.Errorf("unknown CRS %s", src)}
	}
	dstDef, ok := Lookup(dst)
	if !ok {
		return nil, &ports.TransformError{Src: src, Dst: dst, Err: fmt.Errorf("unknown CRS %s", dst)}
	}

	t := &builtinTransformer{src: srcDef, dst: dstDef}
	if p := srcDef.Projection; p != nil {
		t.srcProj = newTmerc(srcDef.Datum.Ellipsoid, *p)
	}
	if p := dstDef.Projection; p != nil {
		t.dstProj = newTmerc(dstDef.Datum.Ellipsoid, *p)
	}
	t.shift = !sameDatum(srcDef.Datum, dstDef.Datum)
	return t, nil
}

// builtinTransformer holds only immutable state after construction.
type builtinTransformer struct {
	src, dst         Definition
	srcProj, dstProj *tmerc
	shift            bool
}

func (t *builtinTransformer) Transform(x, y float64) (float64, float64, error) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, t.fail(errInvalidCoordinate)
	}

	lon, lat := x, y
	if t.srcProj != nil {
		var err error
		lon, lat, err = t.srcProj.inverse(x, y)
		if err != nil {
			return 0, 0, t.fail(err)
		}
	} else if math.Abs(lat) > 90 {
		return 0, 0, t.fail(errInvalidCoordinate)
	}

	if t.shift {
		phi, lam := shiftDatum(t.src.Datum, t.dst.Datum, lat*deg, lon*deg)
		lat, lon = phi/deg, lam/deg
	}

	if t.dstProj != nil {
		e, n, err := t.dstProj.forward(lon, lat)
		if err != nil {
			return 0, 0, t.fail(err)
		}
		return e, n, nil
	}
	return lon, lat, nil
}

func (t *builtinTransformer) fail(err error) error {
	return &ports.TransformError{Src: t.src.Code, Dst: t.dst.Code, Err: err}
}
