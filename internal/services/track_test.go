package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoconv-service/internal/adapters/geodesy"
	"geoconv-service/internal/domain"
)

type sliceSource struct {
	fixes []domain.Fix
	err   error
}

func (s *sliceSource) Next() (domain.Fix, error) {
	if len(s.fixes) == 0 {
		if s.err != nil {
			return domain.Fix{}, s.err
		}
		return domain.Fix{}, io.EOF
	}
	f := s.fixes[0]
	s.fixes = s.fixes[1:]
	return f, nil
}

func TestTrack(t *testing.T) {
	conv, _ := newTestConverter(t, nil)

	src := &sliceSource{fixes: []domain.Fix{
		{Sentence: "RMC", Time: "12:00:00", Position: domain.Geographic{Lat: 9, Lon: 7}},
		{Sentence: "GGA", Time: "12:00:01", Position: domain.Geographic{Lat: 95, Lon: 7}},
		{Sentence: "GGA", Time: "12:00:02", Position: domain.Geographic{Lat: 6.5, Lon: 3.4}},
	}}

	var reports []domain.FixReport
	n, err := conv.Track(context.Background(), src, func(r domain.FixReport) error {
		reports = append(reports, r)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, reports, 2)

	assert.Equal(t, "12:00:00", reports[0].Fix.Time)
	assert.Equal(t, 32, reports[0].Grid.Zone)
	assert.Equal(t, 31, reports[1].Grid.Zone)
	assert.InDelta(t, 6.5, reports[1].Minna.Lat, 0.01)
}

func TestConvertFixShiftsOnce(t *testing.T) {
	conv, rec := newTestConverter(t, nil)
	ctx := context.Background()
	pos := domain.Geographic{Lat: 9, Lon: 7}

	report, err := conv.ConvertFix(ctx, domain.Fix{Position: pos})
	require.NoError(t, err)

	assert.Equal(t, []geodesy.Pair{
		{Src: domain.WGS84Geographic, Dst: domain.MinnaGeographic},
		{Src: domain.MinnaGeographic, Dst: domain.MinnaUTMCRS(report.Grid.Zone)},
	}, rec.Calls())

	minna, err := conv.WGS84ToMinna(ctx, pos)
	require.NoError(t, err)
	grid, err := conv.WGS84ToMinnaGrid(ctx, pos)
	require.NoError(t, err)
	assert.Equal(t, minna, report.Minna)
	assert.Equal(t, grid, report.Grid)
}

func TestTrackStopsOnErrors(t *testing.T) {
	conv, _ := newTestConverter(t, nil)

	_, err := conv.Track(context.Background(), &sliceSource{err: errors.New("port closed")}, func(domain.FixReport) error { return nil })
	assert.ErrorContains(t, err, "port closed")

	src := &sliceSource{fixes: []domain.Fix{{Position: domain.Geographic{Lat: 9, Lon: 7}}}}
	_, err = conv.Track(context.Background(), src, func(domain.FixReport) error { return errors.New("broker gone") })
	assert.ErrorContains(t, err, "broker gone")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = conv.Track(ctx, &sliceSource{}, func(domain.FixReport) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
