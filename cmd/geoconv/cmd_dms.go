package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"geoconv-service/internal/domain"
)

func newDMSCmd() *cobra.Command {
	var isLon bool

	cmd := &cobra.Command{
		Use:   "dms <decimal-degrees>",
		Short: "Format decimal degrees as degrees, minutes and seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("dms: %q is not a number", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), domain.FormatDMS(v, !isLon))
			return err
		},
	}

	cmd.Flags().BoolVar(&isLon, "lon", false, "format as longitude (E/W)")
	return cmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <coordinate-text>",
		Short: "Parse coordinate text to signed decimal degrees",
		Long: `Parse accepts decimal degrees ("9.0675") or degrees, minutes and
seconds separated by any non-numeric characters ("9° 4' 3.5\" N").
Hemisphere letters are ignored; use a leading minus for south or west.
Unreadable text parses as 0.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := domain.ParseCoordinate(strings.Join(args, " "))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
			return err
		},
	}
}
