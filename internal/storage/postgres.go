package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

// Store persists the job collection in Postgres. The collection is a full
// snapshot of the latest search run, not a merged history.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS job_listings (
		id BIGSERIAL PRIMARY KEY,
		company TEXT,
		company_url TEXT,
		job_title TEXT,
		job_url TEXT,
		location TEXT,
		posted_date TEXT,
		job_description TEXT,
		applicant_count TEXT,
		level TEXT,
		employment_type TEXT,
		industry TEXT,
		job_function TEXT,
		salary TEXT,
		skills TEXT[],
		recruiters JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`

	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const insertJobSQL = `
INSERT INTO job_listings (
	company, company_url, job_title, job_url, location, posted_date,
	job_description, applicant_count, level, employment_type, industry,
	job_function, salary, skills, recruiters
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`

// ReplaceAll swaps the persisted collection for the given run's records in a
// single transaction. Readers see either the previous snapshot or the new
// one, never the gap between delete and insert.
func (s *Store) ReplaceAll(ctx context.Context, records []models.JobRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM job_listings;`); err != nil {
		return fmt.Errorf("clear job listings: %w", err)
	}

	if len(records) > 0 {
		batch := &pgx.Batch{}
		for i := range records {
			rec := &records[i]
			recruiters, err := json.Marshal(rec.Recruiters)
			if err != nil {
				return fmt.Errorf("encode recruiters: %w", err)
			}
			batch.Queue(insertJobSQL,
				rec.Company, rec.CompanyURL, rec.JobTitle, rec.JobURL,
				rec.Location, rec.PostedDate, rec.JobDescription,
				rec.ApplicantCount, rec.Level, rec.EmploymentType,
				rec.Industry, rec.JobFunction, rec.Salary,
				rec.Skills, recruiters,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for i := 0; i < len(records); i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("insert job %d: %w", i, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("close batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// List returns the persisted collection, newest insert first.
func (s *Store) List(ctx context.Context) ([]models.JobRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT company, company_url, job_title, job_url, location, posted_date,
		       job_description, applicant_count, level, employment_type,
		       industry, job_function, salary, skills, recruiters
		FROM job_listings
		ORDER BY id DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("list job listings: %w", err)
	}
	defer rows.Close()

	var records []models.JobRecord
	for rows.Next() {
		var rec models.JobRecord
		var recruiters []byte
		if err := rows.Scan(
			&rec.Company, &rec.CompanyURL, &rec.JobTitle, &rec.JobURL,
			&rec.Location, &rec.PostedDate, &rec.JobDescription,
			&rec.ApplicantCount, &rec.Level, &rec.EmploymentType,
			&rec.Industry, &rec.JobFunction, &rec.Salary,
			&rec.Skills, &recruiters,
		); err != nil {
			return nil, fmt.Errorf("scan job listing: %w", err)
		}
		if len(recruiters) > 0 {
			if err := json.Unmarshal(recruiters, &rec.Recruiters); err != nil {
				return nil, fmt.Errorf("decode recruiters: %w", err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate job listings: %w", err)
	}
	return records, nil
}
