package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/services"
)

func TestConvertRequestFields(t *testing.T) {
	var req ConvertRequest
	err := json.Unmarshal([]byte(`{
		"type": "utm_to_wgs",
		"lat": "9° 4' 3\" N",
		"lon": null,
		"easting": 300000.5,
		"northing": "900000",
		"zone": 31
	}`), &req)
	require.NoError(t, err)

	assert.Equal(t, Field(`9° 4' 3" N`), req.Lat)
	assert.Equal(t, Field(""), req.Lon)
	assert.Equal(t, Field("300000.5"), req.Easting)
	assert.Equal(t, Field("900000"), req.Northing)
	assert.Equal(t, Field("31"), req.Zone)
}

func TestConvertRequestNumbersAsDecimalText(t *testing.T) {
	var req ConvertRequest
	require.NoError(t, json.Unmarshal([]byte(`{"lat":1e2,"lon":-2.5E-1,"zone":3.1e1}`), &req))

	assert.Equal(t, Field("100"), req.Lat)
	assert.Equal(t, Field("-0.25"), req.Lon)
	assert.Equal(t, Field("31"), req.Zone)
}

func TestConvertRequestRejectsOtherTypes(t *testing.T) {
	for _, body := range []string{
		`{"lat": true}`,
		`{"zone": [31]}`,
		`{"easting": {"v": 1}}`,
	} {
		var req ConvertRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestConvertResponseOmitsUnsetFields(t *testing.T) {
	zero := 0.0
	b, err := json.Marshal(ConvertResponse{Success: true, Lat: &zero, Lon: &zero, LatDMS: "0° 0' 0.0000\" N"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":true,"lat":0,"lon":0,"lat_dms":"0° 0' 0.0000\" N"}`, string(b))

	b, err = json.Marshal(ConvertResponse{Error: "Unknown Type"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"Unknown Type"}`, string(b))
}

func TestNewConvertResponse(t *testing.T) {
	out := services.Outcome{
		Workflow: services.WorkflowMinnaToUTM,
		Grid:     &domain.GridResult{Zone: 32, Easting: 670553.98, Northing: 556000.125},
		Map:      &domain.Geographic{Lat: 9.0000123456789, Lon: 8.5},
	}

	b, err := json.Marshal(NewConvertResponse(out, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": true,
		"zone": 32,
		"easting": 670553.98,
		"northing": 556000.125,
		"map_lat": 9.0000123456789,
		"map_lon": 8.5
	}`, string(b))

	res := NewConvertResponse(out, errors.New("Unknown Type"))
	assert.Equal(t, ConvertResponse{Error: "Unknown Type"}, res)
}
