package repositories

import (
	"context"

	"github.com/lamaranku/lamaranku-api/models"
)

// JobRepository handles job application data operations. Every method is
// scoped to one owner: userID always comes from the authenticated caller,
// never from client input, and mutations match rows on id AND user_id so a
// guessed id belonging to someone else affects zero rows.
type JobRepository interface {
	// ListByUser retrieves all jobs owned by userID, newest first
	ListByUser(ctx context.Context, userID string) ([]models.Job, error)

	// Create inserts one job for userID and returns the stored row,
	// including the store-assigned id and created_at
	Create(ctx context.Context, userID string, req *models.CreateJobRequest) (*models.Job, error)

	// Update applies a partial column patch to the row matching both jobID
	// and userID. Returns the updated rows; an empty slice means no row
	// matched, which is not an error.
	Update(ctx context.Context, userID, jobID string, patch map[string]interface{}) ([]models.Job, error)

	// Delete removes the row matching both jobID and userID. Deleting a
	// row that does not exist (or is not owned by userID) is not an error.
	Delete(ctx context.Context, userID, jobID string) error
}
