package gnss

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	nmea "github.com/adrianmo/go-nmea"

	"geoconv-service/internal/domain"
)

// NMEAReader turns a stream of NMEA 0183 sentences into receiver fixes.
// Valid RMC and GGA sentences produce a fix; everything else is skipped.
type NMEAReader struct {
	scanner *bufio.Scanner
	skipped int
}

func NewNMEAReader(r io.Reader) *NMEAReader {
	return &NMEAReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next usable fix, or io.EOF once the stream is drained.
func (r *NMEAReader) Next() (domain.Fix, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || !strings.HasPrefix(line, "$") {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			// partial or corrupted sentence
			r.skipped++
			continue
		}

		if fix, ok := toFix(sentence); ok {
			return fix, nil
		}
	}

	if err := r.scanner.Err(); err != nil {
		return domain.Fix{}, fmt.Errorf("read nmea: %w", err)
	}
	return domain.Fix{}, io.EOF
}

// Skipped reports how many sentences failed to parse.
func (r *NMEAReader) Skipped() int { return r.skipped }

func toFix(s nmea.Sentence) (domain.Fix, bool) {
	switch s.DataType() {
	case nmea.TypeRMC:
		m := s.(nmea.RMC)
		if m.Validity != nmea.ValidRMC {
			return domain.Fix{}, false
		}
		return domain.Fix{
			Sentence: nmea.TypeRMC,
			Time:     m.Time.String(),
			Position: domain.Geographic{Lat: m.Latitude, Lon: m.Longitude},
		}, true

	case nmea.TypeGGA:
		m := s.(nmea.GGA)
		if m.FixQuality == nmea.Invalid || m.FixQuality == "" {
			return domain.Fix{}, false
		}
		return domain.Fix{
			Sentence:   nmea.TypeGGA,
			Time:       m.Time.String(),
			Position:   domain.Geographic{Lat: m.Latitude, Lon: m.Longitude},
			Satellites: m.NumSatellites,
		}, true
	}
	return domain.Fix{}, false
}
