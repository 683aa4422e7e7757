// Package app wires the dataset, search log and search service together for
// the server and the command line front-ends.
package app

import (
	"fmt"

	"propsearch/internal/config"
	"propsearch/internal/dataset"
	"propsearch/internal/repository"
	"propsearch/internal/service"

	"go.uber.org/zap"
)

// searchLogCloser is a search log sink that holds resources
type searchLogCloser interface {
	service.SearchLogger
	Close() error
}

// App is a ready to use search pipeline
type App struct {
	Dataset *dataset.Dataset
	Search  *service.SearchService

	searchLog searchLogCloser
	logger    *zap.Logger
}

// New loads the dataset named by cfg and builds the search service on top of
// it. A missing or unusable dataset is an error; an unreachable search log
// database is not.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	ds, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", cfg.Dataset.Path, err)
	}
	logger.Info("dataset loaded",
		zap.String("path", cfg.Dataset.Path),
		zap.Int("records", ds.Len()),
		zap.Int("skipped", ds.Skipped()),
		zap.Int("cities", len(ds.Cities())),
	)

	a := &App{Dataset: ds, logger: logger}
	a.searchLog = openSearchLog(cfg.SearchLog, logger)

	opts := service.SearchOptions{
		DefaultLimit: cfg.Search.DefaultLimit,
		MaxLimit:     cfg.Search.MaxLimit,
	}
	if cfg.Cache.Enabled {
		opts.CacheSize = cfg.Cache.MaxSize
		opts.CacheTTL = cfg.Cache.TTL
	}

	a.Search = service.NewSearchService(
		ds,
		service.NewQueryParser(ds),
		service.NewRanker(cfg.Search.DedupeProjects),
		service.NewPresenter(),
		a.searchLog,
		logger,
		opts,
	)
	return a, nil
}

func openSearchLog(cfg config.SearchLogConfig, logger *zap.Logger) searchLogCloser {
	if cfg.DSN == "" {
		logger.Info("search log disabled, DATABASE_URL not set")
		return repository.NewNopRepository()
	}
	repo, err := repository.NewPostgresRepository(cfg.DSN, cfg.MaxConnections, cfg.MaxIdleConnections)
	if err != nil {
		logger.Warn("search log unavailable, continuing without it", zap.Error(err))
		return repository.NewNopRepository()
	}
	logger.Info("connected to PostgreSQL search log")
	return repo
}

// Close flushes pending search log writes and releases the database
func (a *App) Close() {
	a.Search.Close()
	if err := a.searchLog.Close(); err != nil {
		a.logger.Warn("failed to close search log", zap.Error(err))
	}
}
