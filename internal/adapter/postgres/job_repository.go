package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
)

const uniqueViolation = "23505"

// JobRepository implements port.JobRepository using pgxpool. Campaigns are
// stored as a JSONB array on the job row.
type JobRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewJobRepository returns a new repository instance.
func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool, now: time.Now}
}

// Create inserts a new job row.
func (r *JobRepository) Create(ctx context.Context, job domain.CampaignJob) error {
	campaigns, err := json.Marshal(job.Campaigns)
	if err != nil {
		return fmt.Errorf("encode campaigns: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaign_jobs
    (job_id, account_id, status, campaigns, created_at, completed_at, expires_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		job.JobID, job.AccountID, job.Status, campaigns, job.CreatedAt, job.CompletedAt, job.ExpiresAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return port.ErrJobExists
	}
	return err
}

// Get returns a job by id, or nil when it does not exist or has expired.
func (r *JobRepository) Get(ctx context.Context, jobID string) (*domain.CampaignJob, error) {
	row := r.pool.QueryRow(ctx, `SELECT job_id, account_id, status, campaigns, created_at, completed_at, expires_at
FROM campaign_jobs WHERE job_id = $1 AND expires_at > $2`, jobID, r.now())
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// UpdatePartial locks the job row, applies patch and writes the result back
// in one transaction.
func (r *JobRepository) UpdatePartial(ctx context.Context, jobID string, patch domain.JobPatch) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock job
	row := tx.QueryRow(ctx, `SELECT job_id, account_id, status, campaigns, created_at, completed_at, expires_at
FROM campaign_jobs WHERE job_id = $1 FOR UPDATE`, jobID)
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrJobNotFound
		return err
	}
	if err != nil {
		return err
	}

	if err = patch.Apply(job); err != nil {
		return err
	}

	campaigns, err := json.Marshal(job.Campaigns)
	if err != nil {
		return fmt.Errorf("encode campaigns: %w", err)
	}
	_, err = tx.Exec(ctx, `UPDATE campaign_jobs SET status = $2, campaigns = $3, completed_at = $4 WHERE job_id = $1`,
		job.JobID, job.Status, campaigns, job.CompletedAt)
	return err
}

// ListPending returns ids of live pending jobs, oldest first. A limit of
// zero returns all of them.
func (r *JobRepository) ListPending(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT job_id FROM campaign_jobs
WHERE status = $1 AND expires_at > $2 ORDER BY created_at LIMIT NULLIF($3::int, 0)`, domain.JobPending, r.now(), limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// DeleteExpired removes jobs past their retention window.
func (r *JobRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaign_jobs WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanJob(row pgx.Row) (*domain.CampaignJob, error) {
	var (
		job       domain.CampaignJob
		campaigns []byte
	)
	err := row.Scan(&job.JobID, &job.AccountID, &job.Status, &campaigns, &job.CreatedAt, &job.CompletedAt, &job.ExpiresAt)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(campaigns, &job.Campaigns); err != nil {
		return nil, fmt.Errorf("decode campaigns of job %s: %w", job.JobID, err)
	}
	return &job, nil
}
