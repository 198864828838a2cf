package scheduler

import (
	"context"
	"time"

	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/index"
	"github.com/pathforward/doorhub/internal/logger"
	redisstore "github.com/pathforward/doorhub/internal/store/redis"
)

// RedisSyncer primes the memory index from cached snapshots on
// startup, so the server can answer before its first database load.
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.CatalogIndex
	logger logger.Logger
	now    func() time.Time
}

// NewRedisSyncer creates a new snapshot syncer.
func NewRedisSyncer(store *redisstore.Store, idx *index.CatalogIndex, log logger.Logger) *RedisSyncer {
	return &RedisSyncer{store: store, index: idx, logger: log, now: time.Now}
}

// Sync loads any cached snapshots into the memory index. Misses are
// not errors: a cold cache just means waiting for the first refresh.
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing catalog snapshots from redis")
	now := rs.now()

	var scholarships []domain.Scholarship
	ok, err := rs.store.LoadSnapshot(ctx, redisstore.CollectionScholarships, &scholarships)
	if err != nil {
		return err
	}
	if ok {
		rs.index.SetScholarships(scholarships, now)
	}

	var universities []domain.University
	ok, err = rs.store.LoadSnapshot(ctx, redisstore.CollectionUniversities, &universities)
	if err != nil {
		return err
	}
	if ok {
		rs.index.SetUniversities(universities, now)
	}

	var vocational []domain.VocationalSchool
	ok, err = rs.store.LoadSnapshot(ctx, redisstore.CollectionVocational, &vocational)
	if err != nil {
		return err
	}
	if ok {
		rs.index.SetVocationalSchools(vocational, now)
	}

	rs.logger.Info("synced catalog snapshots from redis",
		logger.Int("scholarships", len(scholarships)),
		logger.Int("universities", len(universities)),
		logger.Int("vocational_schools", len(vocational)))
	return nil
}
