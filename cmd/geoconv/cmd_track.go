package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"geoconv-service/internal/adapters/gnss"
	"geoconv-service/internal/adapters/publish"
	"geoconv-service/internal/domain"
	"geoconv-service/internal/ports"
)

type trackOptions struct {
	serial string
	baud   uint
	file   string
	broker string
	topic  string
}

// trackLine is one converted fix as printed and published.
type trackLine struct {
	Time       string  `json:"time"`
	Sentence   string  `json:"sentence"`
	Satellites int64   `json:"satellites,omitempty"`
	WGSLat     float64 `json:"wgs_lat"`
	WGSLon     float64 `json:"wgs_lon"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	LatDMS     string  `json:"lat_dms"`
	LonDMS     string  `json:"lon_dms"`
	Zone       int     `json:"zone"`
	Easting    float64 `json:"easting"`
	Northing   float64 `json:"northing"`
}

func newTrackLine(r domain.FixReport) trackLine {
	return trackLine{
		Time:       r.Fix.Time,
		Sentence:   r.Fix.Sentence,
		Satellites: r.Fix.Satellites,
		WGSLat:     r.Fix.Position.Lat,
		WGSLon:     r.Fix.Position.Lon,
		Lat:        r.Minna.Lat,
		Lon:        r.Minna.Lon,
		LatDMS:     r.Minna.LatDMS,
		LonDMS:     r.Minna.LonDMS,
		Zone:       r.Grid.Zone,
		Easting:    r.Grid.Easting,
		Northing:   r.Grid.Northing,
	}
}

func newTrackCmd(opts *rootOptions) *cobra.Command {
	topts := &trackOptions{}

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Convert live GNSS fixes from NMEA to Minna coordinates",
		Long: `Track reads NMEA 0183 sentences from a serial receiver or a file,
converts every valid RMC/GGA fix to Minna geographic and grid coordinates and
prints one JSON line per fix. With --mqtt each line is also published.`,
		Example: `  geoconv track --serial /dev/ttyUSB0 --baud 9600 --mqtt tcp://localhost:1883
  geoconv track --file capture.nmea`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(cmd, opts, topts)
		},
	}

	cmd.Flags().StringVar(&topts.serial, "serial", "", "serial port of the receiver")
	cmd.Flags().UintVar(&topts.baud, "baud", 9600, "serial baud rate")
	cmd.Flags().StringVar(&topts.file, "file", "", "read NMEA from a file (- for stdin)")
	cmd.Flags().StringVar(&topts.broker, "mqtt", "", "MQTT broker to publish fixes to")
	cmd.Flags().StringVar(&topts.topic, "topic", "geoconv/minna", "MQTT topic")
	cmd.MarkFlagsMutuallyExclusive("serial", "file")
	cmd.MarkFlagsOneRequired("serial", "file")
	return cmd
}

func runTrack(cmd *cobra.Command, opts *rootOptions, topts *trackOptions) error {
	conv, logger, cleanup, err := opts.converter()
	if err != nil {
		return err
	}
	defer cleanup()

	in, err := openSource(cmd, topts)
	if err != nil {
		return err
	}
	defer in.Close()

	var pub ports.FixPublisher
	if topts.broker != "" {
		p, err := publish.NewMQTTPublisher(topts.broker, "geoconv-track", 10*time.Second)
		if err != nil {
			return err
		}
		defer p.Close()
		pub = p
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	reader := gnss.NewNMEAReader(in)

	n, err := conv.Track(cmd.Context(), reader, func(r domain.FixReport) error {
		line := newTrackLine(r)
		if err := enc.Encode(line); err != nil {
			return err
		}
		if pub == nil {
			return nil
		}

		payload, err := json.Marshal(line)
		if err != nil {
			return err
		}
		return pub.Publish(cmd.Context(), topts.topic, payload)
	})

	logger.Info("track finished", zap.Int("fixes", n), zap.Int("skipped", reader.Skipped()))
	return err
}

func openSource(cmd *cobra.Command, topts *trackOptions) (io.ReadCloser, error) {
	switch {
	case topts.serial != "":
		return gnss.OpenSerial(topts.serial, topts.baud)
	case topts.file == "-":
		return io.NopCloser(cmd.InOrStdin()), nil
	case topts.file != "":
		f, err := os.Open(topts.file)
		if err != nil {
			return nil, fmt.Errorf("track: %w", err)
		}
		return f, nil
	}
	return nil, errors.New("track: one of --serial or --file is required")
}
