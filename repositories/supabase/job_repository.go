package supabase

import (
	"context"
	"fmt"
	"sort"

	supa "github.com/nedpals/supabase-go"
	"go.uber.org/zap"

	"github.com/lamaranku/lamaranku-api/models"
	"github.com/lamaranku/lamaranku-api/repositories"
)

// jobsTable is the single backing table. It is not user-namespaced;
// isolation comes entirely from the user_id predicate on every query.
var jobsTable = models.Job{}.TableName()

// JobRepository implements repositories.JobRepository on top of the
// Supabase PostgREST API.
type JobRepository struct {
	client *supa.Client
	logger *zap.Logger
}

// NewJobRepository creates a new job repository
func NewJobRepository(client *supa.Client, logger *zap.Logger) repositories.JobRepository {
	return &JobRepository{
		client: client,
		logger: logger,
	}
}

// jobInsert is the insert payload. user_id is stamped from the caller
// identity; id and created_at are left to the database.
type jobInsert struct {
	UserID      string `json:"user_id"`
	CompanyName string `json:"company_name"`
	VacancyURL  string `json:"vacancy_url,omitempty"`
	ApplyDate   string `json:"apply_date"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

// ListByUser retrieves all jobs owned by userID, newest first
func (r *JobRepository) ListByUser(ctx context.Context, userID string) ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.client.DB.From(jobsTable).
		Select("*").
		Eq("user_id", userID).
		ExecuteWithContext(ctx, &jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	sortJobsNewestFirst(jobs)

	r.logger.Debug("listed jobs",
		zap.String("user_id", userID),
		zap.Int("count", len(jobs)))
	return jobs, nil
}

// Create inserts one job for userID and returns the stored row
func (r *JobRepository) Create(ctx context.Context, userID string, req *models.CreateJobRequest) (*models.Job, error) {
	row := jobInsert{
		UserID:      userID,
		CompanyName: req.CompanyName,
		VacancyURL:  req.VacancyURL,
		ApplyDate:   req.ApplyDate,
		Status:      req.Status,
		Notes:       req.Notes,
	}

	var created []models.Job
	err := r.client.DB.From(jobsTable).
		Insert(row).
		ExecuteWithContext(ctx, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("insert returned no row")
	}

	r.logger.Debug("created job",
		zap.String("user_id", userID),
		zap.Int64("job_id", created[0].ID))
	return &created[0], nil
}

// Update applies a partial patch to the row matching both jobID and userID.
// The double predicate means a guessed id owned by someone else matches
// nothing, which comes back as an empty slice, not an error.
func (r *JobRepository) Update(ctx context.Context, userID, jobID string, patch map[string]interface{}) ([]models.Job, error) {
	updated := []models.Job{}
	err := r.client.DB.From(jobsTable).
		Update(patch).
		Eq("id", jobID).
		Eq("user_id", userID).
		ExecuteWithContext(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	r.logger.Debug("updated job",
		zap.String("user_id", userID),
		zap.String("job_id", jobID),
		zap.Int("rows", len(updated)))
	return updated, nil
}

// Delete removes the row matching both jobID and userID. Zero matched rows
// is indistinguishable from a successful delete, by contract.
func (r *JobRepository) Delete(ctx context.Context, userID, jobID string) error {
	err := r.client.DB.From(jobsTable).
		Delete().
		Eq("id", jobID).
		Eq("user_id", userID).
		ExecuteWithContext(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	r.logger.Debug("deleted job",
		zap.String("user_id", userID),
		zap.String("job_id", jobID))
	return nil
}

// sortJobsNewestFirst orders rows by created_at descending. Ordering is
// done here, on the decoded rows, rather than in the PostgREST query.
func sortJobsNewestFirst(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}
