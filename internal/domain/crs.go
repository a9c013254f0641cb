package domain

import "fmt"

// Datum names a geodetic reference frame.
type Datum string

const (
	DatumWGS84 Datum = "WGS84"
	DatumMinna Datum = "Minna"
)

// CRS is an EPSG code selecting an exact geographic or projected
// coordinate reference system.
type CRS int

const (
	// WGS 84 geographic.
	WGS84Geographic CRS = 4326
	// Minna geographic (Clarke 1880 RGS ellipsoid).
	MinnaGeographic CRS = 4263
)

func (c CRS) String() string { return fmt.Sprintf("EPSG:%d", int(c)) }
