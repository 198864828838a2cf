// Package postgres reads the catalog out of the Postgres database
// the content team maintains. Queries return fully hydrated domain
// entities; localization columns come in en/km pairs.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathforward/doorhub/internal/domain"
)

// CatalogStore wraps the connection pool with catalog queries.
type CatalogStore struct {
	pool *pgxpool.Pool
}

// New creates the pool and verifies connectivity before returning.
func New(ctx context.Context, databaseURL string) (*CatalogStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return &CatalogStore{pool: pool}, nil
}

// Ping verifies the connection is still alive.
func (s *CatalogStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *CatalogStore) Close() {
	s.pool.Close()
}

// ActiveScholarships returns every scholarship still marked active,
// including those whose deadline already passed; closed entries are
// the filter layer's concern.
func (s *CatalogStore) ActiveScholarships(ctx context.Context) ([]domain.Scholarship, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id,
		       COALESCE(name_en, ''), COALESCE(name_km, ''),
		       COALESCE(provider_en, ''), COALESCE(provider_km, ''),
		       COALESCE(description_en, ''), COALESCE(description_km, ''),
		       COALESCE(coverage_en, ''), COALESCE(coverage_km, ''),
		       COALESCE(eligibility_en, ''), COALESCE(eligibility_km, ''),
		       type, COALESCE(application_url, ''), deadline,
		       created_at, updated_at
		FROM scholarships
		WHERE active
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("scholarships query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Scholarship, 0)
	for rows.Next() {
		sch := domain.Scholarship{Active: true}
		if err := rows.Scan(
			&sch.ID,
			&sch.Name.EN, &sch.Name.KM,
			&sch.Provider.EN, &sch.Provider.KM,
			&sch.Description.EN, &sch.Description.KM,
			&sch.Coverage.EN, &sch.Coverage.KM,
			&sch.Eligibility.EN, &sch.Eligibility.KM,
			&sch.Type, &sch.ApplicationURL, &sch.Deadline,
			&sch.CreatedAt, &sch.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scholarships scan: %w", err)
		}
		items = append(items, sch)
	}
	return items, rows.Err()
}

// Universities returns every university along with how many active
// scholarships reference it.
func (s *CatalogStore) Universities(ctx context.Context) ([]domain.University, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT u.id,
		       COALESCE(u.name_en, ''), COALESCE(u.name_km, ''),
		       COALESCE(u.location_en, ''), COALESCE(u.location_km, ''),
		       COALESCE(u.description_en, ''), COALESCE(u.description_km, ''),
		       COALESCE(u.tuition_en, ''), COALESCE(u.tuition_km, ''),
		       u.type, COALESCE(u.website, ''),
		       COALESCE(u.programs_en, '{}'), COALESCE(u.programs_km, '{}'),
		       COALESCE(sc.n, 0),
		       u.created_at, u.updated_at
		FROM universities u
		LEFT JOIN (
			SELECT university_id, COUNT(*) AS n
			FROM scholarships
			WHERE active AND university_id IS NOT NULL
			GROUP BY university_id
		) sc ON sc.university_id = u.id
		ORDER BY u.created_at`)
	if err != nil {
		return nil, fmt.Errorf("universities query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.University, 0)
	for rows.Next() {
		var u domain.University
		if err := rows.Scan(
			&u.ID,
			&u.Name.EN, &u.Name.KM,
			&u.Location.EN, &u.Location.KM,
			&u.Description.EN, &u.Description.KM,
			&u.TuitionInfo.EN, &u.TuitionInfo.KM,
			&u.Type, &u.Website,
			&u.Programs.EN, &u.Programs.KM,
			&u.ScholarshipCount,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("universities scan: %w", err)
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

// VocationalSchools returns the full vocational school list.
func (s *CatalogStore) VocationalSchools(ctx context.Context) ([]domain.VocationalSchool, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id,
		       COALESCE(name_en, ''), COALESCE(name_km, ''),
		       COALESCE(location_en, ''), COALESCE(location_km, ''),
		       COALESCE(description_en, ''), COALESCE(description_km, ''),
		       COALESCE(programs_en, '{}'), COALESCE(programs_km, '{}'),
		       COALESCE(website, ''), COALESCE(contact, ''),
		       created_at, updated_at
		FROM vocational_schools
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("vocational schools query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.VocationalSchool, 0)
	for rows.Next() {
		var v domain.VocationalSchool
		if err := rows.Scan(
			&v.ID,
			&v.Name.EN, &v.Name.KM,
			&v.Location.EN, &v.Location.KM,
			&v.Description.EN, &v.Description.KM,
			&v.Programs.EN, &v.Programs.KM,
			&v.Website, &v.Contact,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("vocational schools scan: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
