package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/platform/obs"
)

// Workflow is the discriminator selecting one of the conversion workflows.
type Workflow string

const (
	WorkflowWGSToMinna   Workflow = "wgs_to_minna"
	WorkflowWGSToUTM     Workflow = "wgs_to_utm"
	WorkflowMinnaToWGS   Workflow = "minna_to_wgs"
	WorkflowMinnaToUTM   Workflow = "minna_to_utm"
	WorkflowUTMToWGS     Workflow = "utm_to_wgs"
	unknownWorkflowError          = "Unknown Type"
)

// Workflows lists every supported discriminator.
var Workflows = []Workflow{
	WorkflowWGSToMinna,
	WorkflowWGSToUTM,
	WorkflowMinnaToWGS,
	WorkflowMinnaToUTM,
	WorkflowUTMToWGS,
}

// ErrUnknownWorkflow is returned for an unrecognized discriminator.
var ErrUnknownWorkflow = errors.New(unknownWorkflowError)

// FieldError reports a required numeric field that is absent or malformed.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Field + " " + e.Reason }

// ConvertRequest carries raw input fields. Lat/Lon are coordinate text;
// Easting/Northing/Zone are numeric text used only by utm_to_wgs.
type ConvertRequest struct {
	Type     string `json:"type"`
	Lat      string `json:"lat,omitempty"`
	Lon      string `json:"lon,omitempty"`
	Easting  string `json:"easting,omitempty"`
	Northing string `json:"northing,omitempty"`
	Zone     string `json:"zone,omitempty"`
}

// Outcome is the result of a successful Convert. Which fields are set
// depends on the workflow.
type Outcome struct {
	Workflow   Workflow                 `json:"workflow"`
	Geographic *domain.GeographicResult `json:"geographic,omitempty"`
	Grid       *domain.GridResult       `json:"grid,omitempty"`
	Map        *domain.Geographic       `json:"map,omitempty"`
	WGS84Grid  *domain.GridResult       `json:"wgs84_grid,omitempty"`
}

// Convert parses the raw request, runs the selected workflow and records
// the outcome in the conversion history when one is configured.
func (c *Converter) Convert(ctx context.Context, req ConvertRequest) (out Outcome, err error) {
	defer obs.Time(ctx, c.logger, "convert."+req.Type)(&err)
	defer func() { c.record(ctx, req, out, err) }()

	out.Workflow = Workflow(req.Type)

	switch out.Workflow {
	case WorkflowWGSToMinna:
		res, err := c.WGS84ToMinna(ctx, parseGeographic(req))
		if err != nil {
			return out, err
		}
		out.Geographic = &res

	case WorkflowWGSToUTM:
		res, err := c.WGS84ToMinnaGrid(ctx, parseGeographic(req))
		if err != nil {
			return out, err
		}
		out.Grid = &res

	case WorkflowMinnaToWGS:
		res, err := c.MinnaToWGS84(ctx, parseGeographic(req))
		if err != nil {
			return out, err
		}
		out.Geographic = &res

	case WorkflowMinnaToUTM:
		res, err := c.MinnaToMinnaGrid(ctx, parseGeographic(req))
		if err != nil {
			return out, err
		}
		out.Grid = &res.Grid
		out.Map = &res.Map

	case WorkflowUTMToWGS:
		in, err := parseProjected(req)
		if err != nil {
			return out, err
		}
		res, err := c.MinnaGridToWGS84(ctx, in)
		if err != nil {
			return out, err
		}
		out.Geographic = &res.Geographic
		out.WGS84Grid = &res.WGS84Grid

	default:
		return out, ErrUnknownWorkflow
	}

	return out, nil
}

func parseGeographic(req ConvertRequest) domain.Geographic {
	return domain.Geographic{
		Lat: domain.ParseCoordinate(req.Lat),
		Lon: domain.ParseCoordinate(req.Lon),
	}
}

func parseProjected(req ConvertRequest) (domain.Projected, error) {
	easting, err := parseNumber("easting", req.Easting)
	if err != nil {
		return domain.Projected{}, err
	}
	northing, err := parseNumber("northing", req.Northing)
	if err != nil {
		return domain.Projected{}, err
	}
	zone, err := parseNumber("zone", req.Zone)
	if err != nil {
		return domain.Projected{}, err
	}
	if zone != math.Trunc(zone) || math.Abs(zone) > math.MaxInt32 {
		return domain.Projected{}, &FieldError{Field: "zone", Reason: "must be an integer"}
	}

	return domain.Projected{Zone: int(zone), Easting: easting, Northing: northing}, nil
}

func parseNumber(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}

// record stores the conversion best effort; failures are logged only.
func (c *Converter) record(ctx context.Context, req ConvertRequest, out Outcome, convErr error) {
	if c.history == nil {
		return
	}

	rec := domain.ConversionRecord{
		ID:        uuid.NewString(),
		RequestID: obs.RequestID(ctx),
		Workflow:  req.Type,
		Success:   convErr == nil,
		CreatedAt: time.Now().UTC(),
	}

	input, err := json.Marshal(req)
	if err != nil {
		c.logger.Warn("history encode input failed", zap.Error(err))
		return
	}
	rec.Input = string(input)

	if convErr != nil {
		rec.Error = convErr.Error()
		rec.Output = "{}"
	} else {
		output, err := json.Marshal(out)
		if err != nil {
			c.logger.Warn("history encode output failed", zap.Error(err))
			return
		}
		rec.Output = string(output)
	}

	if err := c.history.Record(ctx, rec); err != nil {
		c.logger.Warn("history write failed",
			zap.String("req_id", rec.RequestID),
			zap.String("workflow", rec.Workflow),
			zap.Error(fmt.Errorf("record conversion: %w", err)),
		)
	}
}
