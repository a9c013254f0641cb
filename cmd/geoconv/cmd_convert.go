package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"geoconv-service/internal/api/dto"
	"geoconv-service/internal/services"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var req services.ConvertRequest

	workflows := make([]string, 0, len(services.Workflows))
	for _, w := range services.Workflows {
		workflows = append(workflows, string(w))
	}

	cmd := &cobra.Command{
		Use:       "convert <workflow>",
		Short:     "Run one conversion workflow and print the JSON result",
		Example:   `  geoconv convert wgs_to_utm --lat "9 4 3.5 N" --lon "7 29 28.1 E"` + "\n" + `  geoconv convert utm_to_wgs --easting 300000 --northing 900000 --zone 31`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: workflows,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, _, cleanup, err := opts.converter()
			if err != nil {
				return err
			}
			defer cleanup()

			req.Type = strings.TrimSpace(args[0])
			out, convErr := conv.Convert(cmd.Context(), req)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(dto.NewConvertResponse(out, convErr)); err != nil {
				return err
			}
			// non-zero exit on failure; the reply above already carries the message
			return convErr
		},
	}

	cmd.Flags().StringVar(&req.Lat, "lat", "", "latitude text (decimal or D M S)")
	cmd.Flags().StringVar(&req.Lon, "lon", "", "longitude text (decimal or D M S)")
	cmd.Flags().StringVar(&req.Easting, "easting", "", "grid easting in metres")
	cmd.Flags().StringVar(&req.Northing, "northing", "", "grid northing in metres")
	cmd.Flags().StringVar(&req.Zone, "zone", "", "Minna zone (31, 32 or 33)")
	return cmd
}
