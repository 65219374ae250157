package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-optimizer/pkg/optimization"
)

// OptimizationRepository хранит результаты оптимизации в PostgreSQL.
// Схема создаётся миграциями goose (pkg/storage/postgres).
type OptimizationRepository struct {
	pool *pgxpool.Pool
}

var _ optimization.Repository = (*OptimizationRepository)(nil)

func NewOptimizationRepository(pool *pgxpool.Pool) *OptimizationRepository {
	return &OptimizationRepository{pool: pool}
}

const selectColumns = `id, user_email, job_url, job_title, company_name, job_posting_content, job_posting_raw,
	original_resume, optimized_resume, suggestions, match_score, created_at, updated_at`

func (r *OptimizationRepository) Insert(ctx context.Context, rec optimization.Record) (optimization.Record, error) {
	id := uuid.New()
	rec.ID = id.String()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	if rec.Suggestions == nil {
		rec.Suggestions = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO optimizations (id, user_email, job_url, job_title, company_name, job_posting_content, job_posting_raw,
	original_resume, optimized_resume, suggestions, match_score, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`, id, rec.UserEmail, rec.JobURL, rec.JobTitle, rec.CompanyName, rec.JobPostingContent, rec.JobPostingRaw,
		rec.OriginalResume, rec.OptimizedResume, rec.Suggestions, rec.MatchScore, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return optimization.Record{}, err
	}
	return rec, nil
}

func (r *OptimizationRepository) List(ctx context.Context, skip, limit int) ([]optimization.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+selectColumns+`
FROM optimizations
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []optimization.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *OptimizationRepository) Get(ctx context.Context, id string) (optimization.Record, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return optimization.Record{}, optimization.ErrInvalidID
	}
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM optimizations WHERE id = $1`, uid)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return optimization.Record{}, optimization.ErrNotFound
		}
		return optimization.Record{}, err
	}
	return rec, nil
}

func (r *OptimizationRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return optimization.ErrInvalidID
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM optimizations WHERE id = $1`, uid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return optimization.ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (optimization.Record, error) {
	var (
		rec     optimization.Record
		id      uuid.UUID
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&id, &rec.UserEmail, &rec.JobURL, &rec.JobTitle, &rec.CompanyName, &rec.JobPostingContent,
		&rec.JobPostingRaw, &rec.OriginalResume, &rec.OptimizedResume, &rec.Suggestions, &rec.MatchScore,
		&created, &updated); err != nil {
		return optimization.Record{}, err
	}
	rec.ID = id.String()
	rec.CreatedAt = created.UTC()
	rec.UpdatedAt = updated.UTC()
	return rec, nil
}
