package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/ports"
)

// Converter runs the five conversion workflows against a GeodeticEngine.
// It holds no per-request state and is safe for concurrent use.
// Rounding happens only when results are built; chained engine calls
// always see full precision.
type Converter struct {
	engine  ports.GeodeticEngine
	history ports.ConversionLog
	logger  *zap.Logger
}

// NewConverter builds a Converter. history may be nil to disable recording.
func NewConverter(engine ports.GeodeticEngine, history ports.ConversionLog, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{engine: engine, history: history, logger: logger}
}

func (c *Converter) geographic(ctx context.Context, src, dst domain.CRS, p domain.Geographic) (domain.Geographic, error) {
	x, y := p.XY()
	lon, lat, err := c.engine.Transform(ctx, src, dst, x, y)
	if err != nil {
		return domain.Geographic{}, err
	}
	return domain.Geographic{Lon: lon, Lat: lat}, nil
}

func (c *Converter) project(ctx context.Context, src, dst domain.CRS, zone int, p domain.Geographic) (domain.Projected, error) {
	x, y := p.XY()
	e, n, err := c.engine.Transform(ctx, src, dst, x, y)
	if err != nil {
		return domain.Projected{}, err
	}
	return domain.Projected{Zone: zone, Easting: e, Northing: n}, nil
}

func (c *Converter) unproject(ctx context.Context, src, dst domain.CRS, p domain.Projected) (domain.Geographic, error) {
	x, y := p.XY()
	lon, lat, err := c.engine.Transform(ctx, src, dst, x, y)
	if err != nil {
		return domain.Geographic{}, err
	}
	return domain.Geographic{Lon: lon, Lat: lat}, nil
}

// WGS84ToMinna shifts a WGS 84 position onto the Minna datum.
func (c *Converter) WGS84ToMinna(ctx context.Context, in domain.Geographic) (domain.GeographicResult, error) {
	m, err := c.geographic(ctx, domain.WGS84Geographic, domain.MinnaGeographic, in)
	if err != nil {
		return domain.GeographicResult{}, fmt.Errorf("wgs84 to minna: %w", err)
	}
	return domain.NewGeographicResult(m), nil
}

// WGS84ToMinnaGrid shifts a WGS 84 position onto Minna, then projects it
// into the Minna zone of the shifted longitude.
func (c *Converter) WGS84ToMinnaGrid(ctx context.Context, in domain.Geographic) (domain.GridResult, error) {
	m, err := c.geographic(ctx, domain.WGS84Geographic, domain.MinnaGeographic, in)
	if err != nil {
		return domain.GridResult{}, fmt.Errorf("wgs84 to minna grid: %w", err)
	}

	grid, err := c.minnaGrid(ctx, m)
	if err != nil {
		return domain.GridResult{}, fmt.Errorf("wgs84 to minna grid: %w", err)
	}
	return grid, nil
}

// minnaGrid projects a full-precision Minna position into the zone of its longitude.
func (c *Converter) minnaGrid(ctx context.Context, m domain.Geographic) (domain.GridResult, error) {
	zone := domain.MinnaZoneFor(m.Lon)
	p, err := c.project(ctx, domain.MinnaGeographic, domain.MinnaUTMCRS(zone), zone, m)
	if err != nil {
		return domain.GridResult{}, fmt.Errorf("zone %d: %w", zone, err)
	}
	return domain.NewGridResult(p), nil
}

// MinnaToWGS84 shifts a Minna position onto WGS 84.
func (c *Converter) MinnaToWGS84(ctx context.Context, in domain.Geographic) (domain.GeographicResult, error) {
	w, err := c.geographic(ctx, domain.MinnaGeographic, domain.WGS84Geographic, in)
	if err != nil {
		return domain.GeographicResult{}, fmt.Errorf("minna to wgs84: %w", err)
	}
	return domain.NewGeographicResult(w), nil
}

// MinnaToMinnaGrid projects a Minna position into the zone of its own
// longitude and, independently, shifts it to WGS 84 for map display.
func (c *Converter) MinnaToMinnaGrid(ctx context.Context, in domain.Geographic) (domain.MinnaGridResult, error) {
	zone := domain.MinnaZoneFor(in.Lon)

	var (
		grid    domain.Projected
		mapView domain.Geographic
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		grid, err = c.project(gctx, domain.MinnaGeographic, domain.MinnaUTMCRS(zone), zone, in)
		if err != nil {
			return fmt.Errorf("zone %d: %w", zone, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mapView, err = c.geographic(gctx, domain.MinnaGeographic, domain.WGS84Geographic, in)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.MinnaGridResult{}, fmt.Errorf("minna to minna grid: %w", err)
	}

	return domain.MinnaGridResult{Grid: domain.NewGridResult(grid), Map: mapView}, nil
}

// MinnaGridToWGS84 unprojects a Minna grid position to WGS 84 and
// reprojects the result into its WGS 84 UTM zone as a cross-check.
// The zone is taken from the caller as-is.
func (c *Converter) MinnaGridToWGS84(ctx context.Context, in domain.Projected) (domain.GridCheckResult, error) {
	w, err := c.unproject(ctx, domain.MinnaUTMCRS(in.Zone), domain.WGS84Geographic, in)
	if err != nil {
		return domain.GridCheckResult{}, fmt.Errorf("minna grid to wgs84: zone %d: %w", in.Zone, err)
	}

	zone := domain.WGS84ZoneFor(w.Lon)
	utm, err := c.project(ctx, domain.WGS84Geographic, domain.WGS84UTMCRS(zone), zone, w)
	if err != nil {
		return domain.GridCheckResult{}, fmt.Errorf("minna grid to wgs84: utm zone %d: %w", zone, err)
	}

	return domain.GridCheckResult{
		Geographic: domain.NewGeographicResult(w),
		WGS84Grid:  domain.NewGridResult(utm),
	}, nil
}
