// Package chart assembles a sidereal birth chart from the astro, nakshatra,
// dasha and panchang building blocks.
package chart

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vedic-chart/internal/astro"
	"vedic-chart/internal/dasha"
	"vedic-chart/internal/model"
	"vedic-chart/internal/nakshatra"
	"vedic-chart/internal/panchang"
)

// Options tunes a build. The zero value is not usable; start from DefaultOptions.
type Options struct {
	HorizonYears       float64
	RetrogradeStepDays float64
	Ayanamsa           astro.Ayanamsa
	PrecisionMinYear   int
	PrecisionMaxYear   int
}

func DefaultOptions() Options {
	return Options{
		HorizonYears:       dasha.CycleYears,
		RetrogradeStepDays: 1,
		Ayanamsa:           astro.Lahiri,
		PrecisionMinYear:   1900,
		PrecisionMaxYear:   2100,
	}
}

// Engine builds charts. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	opts   Options
	logger *zap.Logger
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithOptions(o Options) Option {
	return func(e *Engine) { e.opts = o }
}

func New(opts ...Option) *Engine {
	e := &Engine{opts: DefaultOptions(), logger: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Options returns a copy of the engine's options.
func (e *Engine) Options() Options { return e.opts }

// With returns an engine sharing the logger but using o.
func (e *Engine) With(o Options) *Engine {
	c := *e
	c.opts = o
	return &c
}

// Build computes the chart for one birth.
func (e *Engine) Build(in model.BirthInput) (*model.Chart, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	local, err := in.Instant()
	if err != nil {
		return nil, err
	}
	utc := local.UTC()
	jd := astro.JulianDay(utc)
	T := astro.Centuries(jd)
	ayan := e.opts.Ayanamsa

	ascTropical, err := astro.TropicalAscendant(jd, in.Latitude, in.Longitude)
	if err != nil {
		return nil, fmt.Errorf("build chart: %w", err)
	}
	ascLon := ayan.Sidereal(ascTropical, T)
	lagna := model.SignOf(ascLon)

	tropical := astro.TropicalLongitudes(T)
	sidereal := make(map[model.Body]model.Angle, len(model.Bodies))
	planets := make([]model.Planet, 0, len(model.Bodies))
	for _, b := range model.Bodies {
		lon := ayan.Sidereal(tropical[b], T)
		if b == model.Ketu {
			lon = model.Normalize(float64(sidereal[model.Rahu]) + 180)
		}
		sidereal[b] = lon
		retro := astro.IsRetrograde(b, T, e.opts.RetrogradeStepDays)
		planets = append(planets, Place(b, lon, lagna, retro))
	}

	periods, err := dasha.Sequence(sidereal[model.Moon], utc, e.opts.HorizonYears)
	if err != nil {
		return nil, fmt.Errorf("build chart: %w", err)
	}

	c := &model.Chart{
		Name: in.Name,
		Birth: model.Moment{
			UTC:       utc,
			Local:     local.Format("2006-01-02T15:04:05-07:00"),
			JulianDay: jd,
			Centuries: T,
		},
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Ayanamsa:  ayan.At(T),
		Ascendant: model.Ascendant{
			Longitude: ascLon,
			Sign:      lagna,
			SignName:  model.SignName(lagna),
			Degree:    model.DegreeInSign(ascLon),
			Nakshatra: nakshatra.Resolve(ascLon),
		},
		Planets:  planets,
		Houses:   BuildHouses(lagna, planets),
		Dasha:    periods,
		Panchang: panchang.Derive(sidereal[model.Sun], sidereal[model.Moon], local),
		Warnings: astro.PrecisionWarnings(utc, e.opts.PrecisionMinYear, e.opts.PrecisionMaxYear),
	}

	for _, w := range c.Warnings {
		e.logger.Warn("chart precision", zap.String("name", in.Name), zap.String("code", w.Code), zap.String("message", w.Message))
	}
	e.logger.Debug("chart built",
		zap.String("name", in.Name),
		zap.Float64("julian_day", jd),
		zap.String("lagna", model.SignName(lagna)),
		zap.String("moon_nakshatra", c.Panchang.Nakshatra.Name),
		zap.Int("dasha_periods", len(periods)),
	)
	return c, nil
}

// BuildAll builds charts concurrently, at most limit at a time (limit <= 0
// means unbounded). Results keep the order of inputs; the first failure
// cancels the rest.
func (e *Engine) BuildAll(ctx context.Context, inputs []model.BirthInput, limit int) ([]*model.Chart, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	out := make([]*model.Chart, len(inputs))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := e.Build(in)
			if err != nil {
				return fmt.Errorf("birth %d: %w", i, err)
			}
			out[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Place derives every attribute of a body from its sidereal longitude.
func Place(b model.Body, lon model.Angle, lagna int, retro bool) model.Planet {
	sign := model.SignOf(lon)
	house := HouseOf(sign, lagna)
	dignity := DignityOf(b, sign)
	return model.Planet{
		Name:       b,
		Longitude:  lon,
		Sign:       sign,
		SignName:   model.SignName(sign),
		Degree:     model.DegreeInSign(lon),
		House:      house,
		Retrograde: retro,
		Nakshatra:  nakshatra.Resolve(lon),
		Dignity:    dignity,
		Strength:   Strength(b, dignity, house, retro),
	}
}
