package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"clinical-risk-go/internal/aggregator"
	"clinical-risk-go/internal/analyzer"
	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/config"
	"clinical-risk-go/internal/dataset"
	"clinical-risk-go/internal/httpapi"
	"clinical-risk-go/internal/logger"
	"clinical-risk-go/internal/metrics"
)

func main() {
	cfg := config.Load() // loads .env

	log := logger.New()
	log.WithField("service", "clinical-risk-go").Info("starting service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// a missing or broken dataset is not fatal: the engine serves keyword-only analysis
	log.WithField("dataset_path", cfg.DatasetPath).Info("loading dataset")
	records, stats, err := dataset.Load(ctx, cfg.DatasetPath, dataset.Options{
		FetchTimeout:    cfg.DatasetFetchTimeout,
		FetchMaxElapsed: cfg.DatasetFetchMaxElapsed,
		Logger:          log,
	})
	if err != nil {
		log.WithError(err).Warn("dataset unavailable, running in degraded mode")
	}
	corr := aggregator.Build(records)
	log.WithField("records", corr.TotalRecords()).
		WithField("skipped", stats.Skipped).
		WithField("conditions", len(corr.Conditions())).
		Info("correlation tables built")

	knowledge, err := catalog.LoadKnowledge(cfg.KnowledgeCatalogPath)
	if err != nil {
		log.WithError(err).WithField("path", cfg.KnowledgeCatalogPath).Warn("knowledge catalog override rejected, using built-in table")
		knowledge = catalog.DefaultKnowledge()
	}

	reg := metrics.New()
	reg.ObserveDataset(corr.TotalRecords())

	engine := analyzer.New(corr,
		analyzer.WithKnowledge(knowledge),
		analyzer.WithLogger(log.Component("analyzer")),
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpapi.NewRouter(engine, reg, log, cfg.MaxRequestBody),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.WithField("addr", srv.Addr).WithField("datastore_available", engine.Available()).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server terminated")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("service stopped")
}
