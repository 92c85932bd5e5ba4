package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/henderiw/shipzone/internal/config"
	"github.com/henderiw/shipzone/internal/logging"
	"github.com/henderiw/shipzone/pkg/coverage"
	"github.com/henderiw/shipzone/pkg/source"
	"github.com/henderiw/shipzone/pkg/zone"
)

type app struct {
	logger zerolog.Logger
	src    *source.File
	index  *coverage.Index
}

// newApp loads the configuration, lets flags set on cmd override it and
// wires the catalog file into a coverage index.
func (o *rootOptions) newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog = o.catalog
	}
	if flags.Changed("selector") {
		cfg.Selector = o.selector
	}
	if flags.Changed("empty-catalog") {
		cfg.EmptyCatalog = o.emptyCatalog
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	policy, err := cfg.EmptyPolicy()
	if err != nil {
		return nil, err
	}
	selector, err := cfg.LabelSelector()
	if err != nil {
		return nil, err
	}

	src := source.NewFile(cfg.CatalogPath(),
		source.WithSelector(selector),
		source.WithLogger(logger.With().Str("component", "source").Logger()),
	)
	return &app{
		logger: logger,
		src:    src,
		index:  coverage.FromSource(src, zone.WithEmptyPolicy(policy)),
	}, nil
}

// ranges returns the consolidated cover, loading the catalog if needed.
func (a *app) ranges() ([]zone.Range, error) {
	rr, err := a.index.Ranges()
	if err != nil {
		a.logger.Error().
			Str("path", a.src.Path()).
			Err(err).
			Msg("failed to consolidate catalog")
		return nil, err
	}
	a.logger.Debug().
		Str("path", a.src.Path()).
		Int("ranges", len(rr)).
		Msg("catalog consolidated")
	return rr, nil
}

// rawRanges returns the selected catalog ranges without consolidating them.
func (a *app) rawRanges() ([]zone.Range, error) {
	rr, err := a.src.Ranges()
	if err != nil {
		a.logger.Error().
			Str("path", a.src.Path()).
			Err(err).
			Msg("failed to read catalog")
		return nil, err
	}
	return rr, nil
}

func answer(w io.Writer, code int, ok bool) {
	if ok {
		fmt.Fprintf(w, "Yes! Can be shipped to %d\n", code)
		return
	}
	fmt.Fprintf(w, "Nope! Cannot be shipped to %d\n", code)
}
