package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"geoconv-service/internal/services"
)

// Field is an input value sent either as a JSON string or a JSON number.
// null and absent both decode to "".
type Field string

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("field must be a string or a number")
	}
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return errors.New("field must be a string or a number")
	}
	// plain decimal text, so exponents are not read as D M S tokens
	*f = Field(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

// ToService converts the wire request into the service request.
func (req ConvertRequest) ToService() services.ConvertRequest {
	return services.ConvertRequest{
		Type:     req.Type,
		Lat:      string(req.Lat),
		Lon:      string(req.Lon),
		Easting:  string(req.Easting),
		Northing: string(req.Northing),
		Zone:     string(req.Zone),
	}
}

type ConvertRequest struct {
	Type     string `json:"type"`
	Lat      Field  `json:"lat"`
	Lon      Field  `json:"lon"`
	Easting  Field  `json:"easting"`
	Northing Field  `json:"northing"`
	Zone     Field  `json:"zone"`
}

// ConvertResponse is the uniform reply for every workflow. Only the fields
// produced by the requested workflow are present.
type ConvertResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Lat    *float64 `json:"lat,omitempty"`
	Lon    *float64 `json:"lon,omitempty"`
	LatDMS string   `json:"lat_dms,omitempty"`
	LonDMS string   `json:"lon_dms,omitempty"`

	Zone     *int     `json:"zone,omitempty"`
	Easting  *float64 `json:"easting,omitempty"`
	Northing *float64 `json:"northing,omitempty"`

	MapLat *float64 `json:"map_lat,omitempty"`
	MapLon *float64 `json:"map_lon,omitempty"`

	WGSUTMZone *int     `json:"wgs_utm_zone,omitempty"`
	WGSUTME    *float64 `json:"wgs_utm_e,omitempty"`
	WGSUTMN    *float64 `json:"wgs_utm_n,omitempty"`
}

// NewConvertResponse flattens a conversion outcome, or its error, into the
// uniform reply.
func NewConvertResponse(out services.Outcome, err error) ConvertResponse {
	if err != nil {
		return ConvertResponse{Success: false, Error: err.Error()}
	}

	res := ConvertResponse{Success: true}

	if g := out.Geographic; g != nil {
		res.Lat = ptr(g.Lat)
		res.Lon = ptr(g.Lon)
		res.LatDMS = g.LatDMS
		res.LonDMS = g.LonDMS
	}
	if g := out.Grid; g != nil {
		res.Zone = ptr(g.Zone)
		res.Easting = ptr(g.Easting)
		res.Northing = ptr(g.Northing)
	}
	if m := out.Map; m != nil {
		res.MapLat = ptr(m.Lat)
		res.MapLon = ptr(m.Lon)
	}
	if u := out.WGS84Grid; u != nil {
		res.WGSUTMZone = ptr(u.Zone)
		res.WGSUTME = ptr(u.Easting)
		res.WGSUTMN = ptr(u.Northing)
	}

	return res
}

func ptr[T any](v T) *T { return &v }
