package geodesy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/ports"
)

func transform(t *testing.T, src, dst domain.CRS, x, y float64) (float64, float64) {
	t.Helper()
	tr, err := NewBuiltinEngine().NewTransformer(src, dst)
	require.NoError(t, err)
	u, v, err := tr.Transform(x, y)
	require.NoError(t, err)
	return u, v
}

func TestUTMCentralMeridian(t *testing.T) {
	e, n := transform(t, domain.WGS84Geographic, domain.WGS84UTMCRS(31), 3, 0)
	assert.InDelta(t, 500000, e, 1e-6)
	assert.InDelta(t, 0, n, 1e-6)

	// k0 * meridian arc length from the equator.
	_, n = transform(t, domain.WGS84Geographic, domain.WGS84UTMCRS(32), 9, 1)
	assert.InDelta(t, 0.9996*110574.389, n, 0.5)

	_, n = transform(t, domain.WGS84Geographic, domain.WGS84UTMCRS(32), 9, 90)
	assert.InDelta(t, 0.9996*10001965.729, n, 0.01)
}

func TestUTMSymmetry(t *testing.T) {
	eEast, nEast := transform(t, domain.WGS84Geographic, domain.WGS84UTMCRS(31), 5, 10)
	eWest, nWest := transform(t, domain.WGS84Geographic, domain.WGS84UTMCRS(31), 1, 10)

	assert.InDelta(t, 500000-eWest, eEast-500000, 1e-6)
	assert.InDelta(t, nWest, nEast, 1e-6)
	assert.Greater(t, eEast, 500000.0)
}

func TestMinnaBeltOrigins(t *testing.T) {
	tests := []struct {
		crs       domain.CRS
		lon       float64
		wantEast  float64
		wantNorth float64
	}{
		{26391, 4.5, 230738.26, 0},
		{26392, 8.5, 670553.98, 0},
		{26393, 12.5, 1110369.7, 0},
	}

	for _, tt := range tests {
		e, n := transform(t, domain.MinnaGeographic, tt.crs, tt.lon, 4)
		assert.InDelta(t, tt.wantEast, e, 1e-6, "crs %s", tt.crs)
		assert.InDelta(t, tt.wantNorth, n, 1e-6, "crs %s", tt.crs)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	points := [][2]float64{{3.4, 6.45}, {7.49, 9.06}, {13.15, 11.85}, {-2, -40}, {14.9, 60}}
	grids := []domain.CRS{26391, 26392, 26393, 32631, 32632, 32633}

	for _, grid := range grids {
		def, _ := Lookup(grid)
		for _, p := range points {
			e, n := transform(t, def.Datum.GeographicCRS(), grid, p[0], p[1])
			lon, lat := transform(t, grid, def.Datum.GeographicCRS(), e, n)
			assert.InDelta(t, p[0], lon, 1e-9, "grid %s lon", grid)
			assert.InDelta(t, p[1], lat, 1e-9, "grid %s lat", grid)
		}
	}
}

func TestDatumShiftRoundTrip(t *testing.T) {
	points := [][2]float64{{7, 9}, {3.38, 6.52}, {13.16, 11.83}, {8.52, 4.3}, {5.1, 13.6}}

	for _, p := range points {
		mLon, mLat := transform(t, domain.WGS84Geographic, domain.MinnaGeographic, p[0], p[1])

		shift := math.Hypot((mLon-p[0])*111320*math.Cos(p[1]*deg), (mLat-p[1])*110574)
		assert.Greater(t, shift, 10.0)
		assert.Less(t, shift, 400.0)

		wLon, wLat := transform(t, domain.MinnaGeographic, domain.WGS84Geographic, mLon, mLat)
		assert.InDelta(t, p[0], wLon, 1e-8)
		assert.InDelta(t, p[1], wLat, 1e-8)
	}
}

func TestSameDatumIsIdentity(t *testing.T) {
	lon, lat := transform(t, domain.MinnaGeographic, domain.MinnaGeographic, 7.25, 9.5)
	assert.Equal(t, 7.25, lon)
	assert.Equal(t, 9.5, lat)
}

func TestBeltInverseInNigeria(t *testing.T) {
	lon, lat := transform(t, 26391, domain.WGS84Geographic, 300000, 900000)
	assert.Greater(t, lat, 11.9)
	assert.Less(t, lat, 12.4)
	assert.Greater(t, lon, 5.0)
	assert.Less(t, lon, 5.3)
}

func TestTransformErrors(t *testing.T) {
	engine := NewBuiltinEngine()

	_, err := engine.NewTransformer(domain.WGS84Geographic, 32600)
	var te *ports.TransformError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, domain.CRS(32600), te.Dst)

	_, err = engine.NewTransformer(9999, domain.WGS84Geographic)
	assert.True(t, errors.As(err, &te))

	tr, err := engine.NewTransformer(domain.MinnaGeographic, 26391)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y float64
	}{
		{"too far from central meridian", 100, 9},
		{"just past the longitude limit", 4.5 + 60.1, 9},
		{"west of the longitude limit", 4.5 - 60.1, 9},
		{"latitude over 90", 4.5, 95},
		{"not a number", math.NaN(), 9},
		{"infinite", 4.5, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tr.Transform(tt.x, tt.y)
			assert.True(t, errors.As(err, &te), "got %v", err)
		})
	}
}

func TestProjectionLongitudeLimit(t *testing.T) {
	tr, err := NewBuiltinEngine().NewTransformer(domain.MinnaGeographic, 26391)
	require.NoError(t, err)

	for _, lon := range []float64{4.5 + 59.9, 4.5 - 59.9, 4.5 + 60} {
		e, n, err := tr.Transform(lon, 9)
		require.NoError(t, err, "lon %v", lon)
		assert.False(t, math.IsNaN(e) || math.IsNaN(n))
	}

	_, _, err = tr.Transform(4.5+60.1, 9)
	var te *ports.TransformError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, domain.CRS(26391), te.Dst)
	assert.ErrorIs(t, err, errOutsideDomain)
}

func TestLookup(t *testing.T) {
	def, ok := Lookup(32660)
	require.True(t, ok)
	assert.Equal(t, 177.0, def.Projection.Lon0)

	_, ok = Lookup(32661)
	assert.False(t, ok)

	def, ok = Lookup(26392)
	require.True(t, ok)
	assert.Equal(t, "Minna / Nigeria Mid Belt", def.Name)
	assert.Equal(t, string(domain.DatumMinna), def.Datum.Name)
}

func TestNewSelectsEngine(t *testing.T) {
	f, err := New("builtin")
	require.NoError(t, err)
	assert.IsType(t, &BuiltinEngine{}, f)

	_, err = New("gdal")
	assert.Error(t, err)

	_, err = New("proj")
	if projAvailable {
		assert.NoError(t, err)
	} else {
		assert.Error(t, err)
	}
}
