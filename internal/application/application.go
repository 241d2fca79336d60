package application

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"estate_price/internal/config"
	"estate_price/internal/domain/service/cleaning"
	"estate_price/internal/domain/service/encoding"
	"estate_price/internal/domain/service/estimator"
	"estate_price/internal/domain/service/features"
	"estate_price/internal/domain/value"
	"estate_price/internal/infrastructure/booster"
	"estate_price/internal/infrastructure/persistence"
	"estate_price/internal/infrastructure/postalprice"
	"estate_price/internal/server"
	"estate_price/pkg/application/connectors"
	"estate_price/pkg/application/modules"
	"estate_price/pkg/logx"
	"estate_price/pkg/metrics"
	"estate_price/pkg/middlewarex"
)

type postalPriceSource interface {
	Load(ctx context.Context) (value.PostalPrices, error)
}

// Application holds the read-only state shared by every request.
type Application struct {
	cfg      config.Config
	model    *booster.Model
	registry *prometheus.Registry
	handler  http.Handler
}

// New loads the model and the postal price table and wires the HTTP API.
func New(ctx context.Context, cfg config.Config) (*Application, error) {
	model, err := booster.Load(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("booster.Load: %w", err)
	}

	logger(ctx).Info("model loaded",
		logx.FieldPath, cfg.Model.Path,
		"objective", model.Objective(),
		"trees", model.NumTrees(),
	)

	assembler := features.NewAssembler().WithStrict(cfg.Model.StrictFeatures)
	if err = checkModelFeatures(model, assembler); err != nil {
		return nil, err
	}

	source, closeSource := newPostalPriceSource(ctx, cfg)
	defer closeSource()

	prices, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("postalPriceSource.Load: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	enc := encoding.NewEncoder(prices).WithStrict(cfg.Model.StrictCategories)

	est := estimator.NewEstimator(cleaning.SingleRecord(enc), assembler, model).
		WithObserver(metrics.NewPredictionObserver(registry))

	app := &Application{
		cfg:      cfg,
		model:    model,
		registry: registry,
	}

	app.handler = app.newRouter(server.NewServer(server.NewPredictionServer(est, prices)))

	return app, nil
}

// Handler serves the public API.
func (a *Application) Handler() http.Handler {
	return a.handler
}

// Run serves the API, probes and metrics until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ //nolint:exhaustruct
		ListenAddress:   a.cfg.HTTP.ListenAddress,
		Handler:         a.handler,
		ShutdownTimeout: a.cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          a.cfg.App.Name,
		Version:       a.cfg.App.Version,
		ListenAddress: a.cfg.HTTP.ProbeListenAddress,
		Model:         a.modelDescription(),
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: a.cfg.HTTP.MetricsListenAddress,
		Gatherer:      a.registry,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

func (a *Application) newRouter(srv server.Server) http.Handler {
	logOpts := middlewarex.LogOptions{
		Masker:     logx.NewSensitiveDataMasker(a.cfg.HTTP.LogMaskFields...),
		MaxLen:     a.cfg.HTTP.LogFieldMaxLen,
		QuietPaths: []string{server.PathOptions},
	}

	r := chi.NewRouter()
	r.Use(
		middlewarex.OTel(a.cfg.App.Name),
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(logOpts),
		middlewarex.ResponseLogging(logOpts),
	)

	srv.RegisterRoutes(r)

	return r
}

func (a *Application) modelDescription() string {
	return fmt.Sprintf("%s (%s, %d trees)", filepath.Base(a.cfg.Model.Path), a.model.Objective(), a.model.NumTrees())
}

func checkModelFeatures(model *booster.Model, assembler *features.Assembler) error {
	if names := model.FeatureNames(); len(names) > 0 {
		if err := assembler.Validate(names); err != nil {
			return fmt.Errorf("checkModelFeatures: %w", err)
		}

		return nil
	}

	if model.NumFeatures() != len(assembler.Names()) {
		return fmt.Errorf("checkModelFeatures: model expects %d features, assembler produces %d",
			model.NumFeatures(), len(assembler.Names()))
	}

	return nil
}

func newPostalPriceSource(ctx context.Context, cfg config.Config) (postalPriceSource, func()) {
	if !cfg.Postgres.Enabled() {
		return postalprice.NewFileSource(cfg.Model.PostalPricesPath), func() {}
	}

	pg := &connectors.Postgres{ //nolint:exhaustruct
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}

	return persistence.NewPostalCodeRepository(pg.Client(ctx)), func() { pg.Close(ctx) }
}
