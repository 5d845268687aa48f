package main

import (
	"errors"
	"fmt"

	"vedic-chart/internal/chart"
	"vedic-chart/internal/config"
	"vedic-chart/internal/data"
	"vedic-chart/internal/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries flags shared by every subcommand.
type app struct {
	cfgPath string
	verbose bool

	name   string
	date   string
	clock  string
	offset string
	tz     string
	lat    float64
	lon    float64
	place  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "cli",
		Short:         "Sidereal birth chart calculator",
		Long:          "Computes a Vedic (sidereal, Lahiri) birth chart: planets, houses, Vimshottari Dasha and Panchang.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to YAML config (default: built-in settings)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	pf.StringVar(&a.name, "name", "", "name shown on the chart")
	pf.StringVar(&a.date, "date", "", "birth date, YYYY-MM-DD")
	pf.StringVar(&a.clock, "time", "", "local birth time, HH:MM[:SS]")
	pf.StringVar(&a.offset, "offset", "", "UTC offset of the birth time, e.g. +05:30")
	pf.StringVar(&a.tz, "tz", "", "IANA timezone of the birth time, e.g. Asia/Kolkata")
	pf.Float64Var(&a.lat, "lat", 0, "latitude in decimal degrees (north positive)")
	pf.Float64Var(&a.lon, "lon", 0, "longitude in decimal degrees (east positive)")
	pf.StringVar(&a.place, "place", "", "place preset ID from the places file")

	root.AddCommand(
		newChartCmd(a),
		newDashaCmd(a),
		newPanchangCmd(a),
		newStrengthCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg := config.Default()
	if a.cfgPath != "" {
		loaded, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	a.cfg = cfg

	if a.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.logger = l
	} else {
		a.logger = zap.NewNop()
	}
	return nil
}

func (a *app) engine() *chart.Engine {
	return chart.New(chart.WithOptions(a.cfg.Engine.ToOptions()), chart.WithLogger(a.logger))
}

// birthInput assembles the input from flags. Coordinates must come from
// --lat/--lon or --place; there is no default location.
func (a *app) birthInput(cmd *cobra.Command) (model.BirthInput, error) {
	in := model.BirthInput{
		Name:      a.name,
		Date:      a.date,
		Time:      a.clock,
		UTCOffset: a.offset,
		TimeZone:  a.tz,
		Latitude:  a.lat,
		Longitude: a.lon,
	}
	flags := cmd.Flags()
	if a.place != "" {
		path := a.cfg.PlacesFile
		if path == "" {
			path = data.GetDefaultPlacesPath()
		}
		list, err := data.LoadPlaces(path)
		if err != nil {
			return in, err
		}
		p, ok := list.Find(a.place)
		if !ok {
			return in, &model.InputError{Field: "place", Reason: fmt.Sprintf("unknown place %q in %s", a.place, path)}
		}
		in = p.Apply(in)
		if flags.Changed("lat") {
			in.Latitude = a.lat
		}
		if flags.Changed("lon") {
			in.Longitude = a.lon
		}
		return in, nil
	}
	if !flags.Changed("lat") || !flags.Changed("lon") {
		return in, errors.New("--lat and --lon (or --place) are required")
	}
	return in, nil
}

func (a *app) build(cmd *cobra.Command) (*model.Chart, error) {
	in, err := a.birthInput(cmd)
	if err != nil {
		return nil, err
	}
	return a.engine().Build(in)
}
