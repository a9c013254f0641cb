package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeographicResult(t *testing.T) {
	res := NewGeographicResult(Geographic{Lon: 7.123456789, Lat: -9.00000049})

	assert.Equal(t, 7.123457, res.Lon)
	assert.Equal(t, -9.0, res.Lat)
	assert.Equal(t, `9° 0' 0.0018" S`, res.LatDMS)
	assert.Equal(t, FormatDMS(7.123456789, false), res.LonDMS)
}

func TestNewGridResult(t *testing.T) {
	res := NewGridResult(Projected{Zone: 32, Easting: 500000.12349, Northing: 995123.4566})

	assert.Equal(t, GridResult{Zone: 32, Easting: 500000.123, Northing: 995123.457}, res)
}

func TestGeographicXY(t *testing.T) {
	x, y := Geographic{Lon: 7, Lat: 9}.XY()
	assert.Equal(t, 7.0, x)
	assert.Equal(t, 9.0, y)
}
