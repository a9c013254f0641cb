package geodesy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoconv-service/internal/domain"
)

func TestRecordingEngine(t *testing.T) {
	rec := NewRecordingEngine(NewBuiltinEngine())

	tr, err := rec.NewTransformer(domain.WGS84Geographic, domain.MinnaGeographic)
	require.NoError(t, err)

	_, _, err = tr.Transform(7, 9)
	require.NoError(t, err)
	_, _, err = tr.Transform(8, 10)
	require.NoError(t, err)

	want := Pair{Src: domain.WGS84Geographic, Dst: domain.MinnaGeographic}
	assert.Equal(t, []Pair{want}, rec.Builds())
	assert.Equal(t, []Pair{want, want}, rec.Calls())

	_, err = rec.NewTransformer(domain.WGS84Geographic, 1)
	assert.Error(t, err)
	assert.Len(t, rec.Builds(), 2)
}
