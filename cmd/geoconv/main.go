package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"geoconv-service/internal/adapters/geodesy"
	"geoconv-service/internal/config"
	"geoconv-service/internal/platform/obs"
	"geoconv-service/internal/services"
)

type rootOptions struct {
	engine   string
	logLevel string
}

func main() {
	config.LoadDotEnv()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "geoconv",
		Short: "Convert coordinates between WGS 84 and the Nigerian Minna datum",
		Long: `geoconv converts positions between WGS 84 and Minna (Clarke 1880)
geographic coordinates and the Minna Nigeria belt grids.

Workflows:
  wgs_to_minna  WGS 84 lat/lon -> Minna lat/lon
  wgs_to_utm    WGS 84 lat/lon -> Minna grid
  minna_to_wgs  Minna lat/lon -> WGS 84 lat/lon
  minna_to_utm  Minna lat/lon -> Minna grid (+ WGS 84 map position)
  utm_to_wgs    Minna grid -> WGS 84 lat/lon (+ WGS 84 UTM check)`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.engine, "engine", config.Get("ENGINE", config.EngineBuiltin), "geodetic engine (builtin|proj)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.Get("LOG_LEVEL", "warn"), "log level (debug|info|warn|error)")

	root.AddCommand(
		newConvertCmd(opts),
		newDMSCmd(),
		newParseCmd(),
		newTrackCmd(opts),
	)
	return root
}

// converter builds a Converter for one CLI invocation. The returned func
// releases the engine and flushes the logger.
func (o *rootOptions) converter() (*services.Converter, *zap.Logger, func(), error) {
	logger, err := obs.NewLogger(o.logLevel)
	if err != nil {
		return nil, nil, nil, err
	}

	engine, err := geodesy.New(o.engine)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, fmt.Errorf("engine %q: %w", o.engine, err)
	}

	cleanup := func() {
		engine.Close()
		_ = logger.Sync()
	}
	return services.NewConverter(services.NewTransformCache(engine), nil, logger), logger, cleanup, nil
}
