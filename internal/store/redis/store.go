// Package redis persists catalog snapshots and finished quiz results
// in Redis. Snapshots let a restarting server serve the catalog
// before its first database load; results survive session expiry.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pathforward/doorhub/internal/domain"
)

const (
	// DefaultSnapshotTTL bounds how stale a cached catalog snapshot
	// may be before a cold start ignores it.
	DefaultSnapshotTTL = 48 * time.Hour
	// DefaultResultTTL keeps quiz results for 90 days.
	DefaultResultTTL = 90 * 24 * time.Hour
)

// Collection names used as snapshot key suffixes.
const (
	CollectionScholarships = "scholarships"
	CollectionUniversities = "universities"
	CollectionVocational   = "vocational_schools"
)

// Store handles Redis operations for snapshots and quiz results.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// SaveSnapshot caches a catalog collection as JSON.
func (s *Store) SaveSnapshot(ctx context.Context, collection string, items any) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", collection, err)
	}
	if err := s.client.Set(ctx, CatalogKey(collection), data, DefaultSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", collection, err)
	}
	return nil
}

// LoadSnapshot reads a cached collection into out, which must be a
// pointer to a slice. A cache miss leaves out untouched and returns
// (false, nil).
func (s *Store) LoadSnapshot(ctx context.Context, collection string, out any) (bool, error) {
	data, err := s.client.Get(ctx, CatalogKey(collection)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s snapshot: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s snapshot: %w", collection, err)
	}
	return true, nil
}

// SaveDiagnosisResult persists a user's finished quiz result.
func (s *Store) SaveDiagnosisResult(ctx context.Context, userID string, result domain.DiagnosisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal diagnosis result: %w", err)
	}
	if err := s.client.Set(ctx, DiagnosisKey(userID), data, DefaultResultTTL).Err(); err != nil {
		return fmt.Errorf("failed to save diagnosis result: %w", err)
	}
	return nil
}

// DiagnosisResult loads a user's stored quiz result. A miss returns
// (nil, nil).
func (s *Store) DiagnosisResult(ctx context.Context, userID string) (*domain.DiagnosisResult, error) {
	data, err := s.client.Get(ctx, DiagnosisKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load diagnosis result: %w", err)
	}
	var result domain.DiagnosisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode diagnosis result: %w", err)
	}
	return &result, nil
}

// DeleteDiagnosisResult drops a user's stored quiz result.
func (s *Store) DeleteDiagnosisResult(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, DiagnosisKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete diagnosis result: %w", err)
	}
	return nil
}
