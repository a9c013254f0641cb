package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--engine=builtin", "--log-level=error"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "", "convert", "utm_to_wgs", "--easting", "300000", "--northing", "900000", "--zone", "31")
	require.NoError(t, err)

	var res struct {
		Success    bool    `json:"success"`
		Lat        float64 `json:"lat"`
		LatDMS     string  `json:"lat_dms"`
		WGSUTMZone int     `json:"wgs_utm_zone"`
		WGSUTME    float64 `json:"wgs_utm_e"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Success)
	assert.Greater(t, res.Lat, 11.9)
	assert.NotEmpty(t, res.LatDMS)
	assert.Equal(t, 31, res.WGSUTMZone)
	assert.Greater(t, res.WGSUTME, 0.0)

	out, err = execute(t, "", "convert", "bogus")
	assert.EqualError(t, err, "Unknown Type")
	assert.JSONEq(t, `{"success":false,"error":"Unknown Type"}`, out)

	_, err = execute(t, "", "convert")
	assert.Error(t, err)
}

func TestDMSAndParseCommands(t *testing.T) {
	out, err := execute(t, "", "dms", "6.5")
	require.NoError(t, err)
	assert.Equal(t, "6° 30' 0.0000\" N\n", out)

	out, err = execute(t, "", "dms", "--lon", "--", "-3.25")
	require.NoError(t, err)
	assert.Equal(t, "3° 15' 0.0000\" W\n", out)

	_, err = execute(t, "", "dms", "abc")
	assert.Error(t, err)

	out, err = execute(t, "", "parse", "6", "30", "0")
	require.NoError(t, err)
	assert.Equal(t, "6.5\n", out)

	out, err = execute(t, "", "parse", "garbage")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func nmeaSentence(body string) string {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return fmt.Sprintf("$%s*%02X", body, sum)
}

func TestTrackCommand(t *testing.T) {
	stream := strings.Join([]string{
		nmeaSentence("GPRMC,123519,A,0900.000,N,00700.000,E,022.4,084.4,230394,003.1,W"),
		nmeaSentence("GPRMC,123520,V,0900.000,N,00700.000,E,022.4,084.4,230394,003.1,W"),
		nmeaSentence("GPGGA,123521,0630.000,N,00324.000,E,1,08,0.9,545.4,M,46.9,M,,"),
	}, "\n") + "\n"

	path := filepath.Join(t.TempDir(), "capture.nmea")
	require.NoError(t, os.WriteFile(path, []byte(stream), 0o644))

	for _, args := range [][]string{
		{"track", "--file", path},
		{"track", "--file", "-"},
	} {
		out, err := execute(t, stream, args...)
		require.NoError(t, err)

		var lines []trackLine
		sc := bufio.NewScanner(strings.NewReader(out))
		for sc.Scan() {
			var l trackLine
			require.NoError(t, json.Unmarshal(sc.Bytes(), &l))
			lines = append(lines, l)
		}

		require.Len(t, lines, 2)
		assert.Equal(t, "RMC", lines[0].Sentence)
		assert.Equal(t, 32, lines[0].Zone)
		assert.Equal(t, "GGA", lines[1].Sentence)
		assert.Equal(t, int64(8), lines[1].Satellites)
		assert.Equal(t, 31, lines[1].Zone)
	}

	_, err := execute(t, "", "track")
	assert.Error(t, err)

	_, err = execute(t, "", "track", "--file", filepath.Join(t.TempDir(), "missing.nmea"))
	assert.Error(t, err)
}
