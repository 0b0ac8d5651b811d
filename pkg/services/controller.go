package services

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/labible/sitemap/pkg/config"
	"github.com/labible/sitemap/pkg/data"
	"github.com/labible/sitemap/pkg/logging"
	"github.com/labible/sitemap/pkg/sources"
)

// ControllerConfig overrides the pieces NewGenerator would build from the
// config. Zero fields keep the defaults.
type ControllerConfig struct {
	Source  sources.Source
	Indexer Indexer
	Logger  *slog.Logger
	Now     func() time.Time
}

// NewGenerator wires a Generator from cfg: the JSON file at cfg.DataPath as
// source and the index engine named by cfg.Engine.
func NewGenerator(cfg *config.Config, cc ControllerConfig) (*Generator, error) {
	g := &Generator{
		site:    cfg.Site,
		outPath: cfg.OutPath,
		static:  cfg.StaticEntries(),
		source:  cc.Source,
		indexer: cc.Indexer,
		logger:  cc.Logger,
		now:     cc.Now,
	}

	if g.logger == nil {
		g.logger = logging.Discard()
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.source == nil {
		g.source = sources.NewJSONFile(cfg.DataPath)
	}
	if g.indexer == nil {
		indexer, closer, err := openIndexer(cfg)
		if err != nil {
			return nil, err
		}
		g.indexer = indexer
		if closer != nil {
			g.closers = append(g.closers, closer)
		}
	}
	return g, nil
}

func openIndexer(cfg *config.Config) (Indexer, io.Closer, error) {
	switch cfg.Engine {
	case "", config.EngineMemory:
		return MemoryIndexer{}, nil, nil
	case config.EngineDuckDB:
		db, err := data.InitDuckDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open index database: %w", err)
		}
		repo := data.NewDuckDBRepository(db)
		return repo, repo, nil
	}
	return nil, nil, fmt.Errorf("unknown engine %q", cfg.Engine)
}
