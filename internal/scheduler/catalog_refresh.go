// Package scheduler runs the background jobs: periodic catalog
// refresh from Postgres and the careers file, startup sync from the
// Redis snapshot cache, and reaping of idle diagnosis sessions.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pathforward/doorhub/internal/index"
	"github.com/pathforward/doorhub/internal/logger"
	"github.com/pathforward/doorhub/internal/sources/catalog"
	"github.com/pathforward/doorhub/internal/store/postgres"
	redisstore "github.com/pathforward/doorhub/internal/store/redis"
)

// CatalogRefresher reloads all catalog collections on a schedule and
// on demand through the manual trigger channel.
type CatalogRefresher struct {
	store         *postgres.CatalogStore
	cache         *redisstore.Store
	index         *index.CatalogIndex
	loader        *catalog.Loader
	mapper        *catalog.Mapper
	logger        logger.Logger
	interval      time.Duration
	cron          *cron.Cron
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogRefresher creates a catalog refresher.
func NewCatalogRefresher(
	store *postgres.CatalogStore,
	cache *redisstore.Store,
	idx *index.CatalogIndex,
	careerFile string,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogRefresher {
	return &CatalogRefresher{
		store:         store,
		cache:         cache,
		index:         idx,
		loader:        catalog.NewLoader(careerFile),
		mapper:        catalog.NewMapper(),
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the catalog once, then schedules the periodic refresh
// and listens for manual triggers. The initial load must succeed;
// later failures keep serving the previous snapshot.
func (cr *CatalogRefresher) Start(ctx context.Context) error {
	if err := cr.Refresh(ctx); err != nil {
		return fmt.Errorf("initial catalog refresh failed: %w", err)
	}

	cr.cron = cron.New()
	_, err := cr.cron.AddFunc(fmt.Sprintf("@every %s", cr.interval), func() {
		if err := cr.Refresh(ctx); err != nil {
			cr.logger.Error("scheduled catalog refresh failed", logger.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule catalog refresh: %w", err)
	}
	cr.cron.Start()

	go func() {
		for {
			select {
			case <-cr.manualTrigger:
				cr.logger.Info("manual catalog refresh triggered")
				if err := cr.Refresh(ctx); err != nil {
					cr.logger.Error("manual catalog refresh failed", logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop halts the schedule and the trigger listener.
func (cr *CatalogRefresher) Stop() {
	if cr.cron != nil {
		cr.cron.Stop()
	}
	close(cr.stopCh)
}

// Refresh reloads every collection. A failing collection aborts the
// whole refresh so the index never mixes generations.
func (cr *CatalogRefresher) Refresh(ctx context.Context) error {
	start := time.Now()

	scholarships, err := cr.store.ActiveScholarships(ctx)
	if err != nil {
		return fmt.Errorf("failed to load scholarships: %w", err)
	}
	universities, err := cr.store.Universities(ctx)
	if err != nil {
		return fmt.Errorf("failed to load universities: %w", err)
	}
	vocational, err := cr.store.VocationalSchools(ctx)
	if err != nil {
		return fmt.Errorf("failed to load vocational schools: %w", err)
	}

	file, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load careers: %w", err)
	}
	careers, err := cr.mapper.MapCareers(file)
	if err != nil {
		return fmt.Errorf("failed to map careers: %w", err)
	}

	now := time.Now()
	cr.index.SetScholarships(scholarships, now)
	cr.index.SetUniversities(universities, now)
	cr.index.SetVocationalSchools(vocational, now)
	cr.index.SetCareers(careers, now)

	// Snapshot caching is best effort; a Redis hiccup must not fail
	// a refresh that already updated the index.
	cr.saveSnapshots(ctx, scholarships, universities, vocational)

	cr.logger.Info("catalog refreshed",
		logger.Int("scholarships", len(scholarships)),
		logger.Int("universities", len(universities)),
		logger.Int("vocational_schools", len(vocational)),
		logger.Int("careers", len(careers)),
		logger.Duration("elapsed", time.Since(start)))
	return nil
}

func (cr *CatalogRefresher) saveSnapshots(ctx context.Context, scholarships, universities, vocational any) {
	for collection, items := range map[string]any{
		redisstore.CollectionScholarships: scholarships,
		redisstore.CollectionUniversities: universities,
		redisstore.CollectionVocational:   vocational,
	} {
		if err := cr.cache.SaveSnapshot(ctx, collection, items); err != nil {
			cr.logger.Warn("failed to cache catalog snapshot",
				logger.String("collection", collection),
				logger.Error(err))
		}
	}
}
