package models

import "time"

// Job represents a single job application owned by one user.
//
// id, user_id and created_at are assigned server-side: id and created_at by
// the database on insert, user_id from the authenticated caller. None of
// them is ever taken from a request body.
type Job struct {
	ID          int64     `json:"id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	CompanyName string    `json:"company_name"`
	VacancyURL  string    `json:"vacancy_url,omitempty"`
	ApplyDate   string    `json:"apply_date"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// TableName returns the table name for the Job model
func (Job) TableName() string {
	return "work_tables"
}

// CreateJobRequest is the body of POST /api/jobs. It intentionally has no
// id/user_id/created_at fields so client-supplied values for them are
// dropped at decode time.
type CreateJobRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	VacancyURL  string `json:"vacancy_url,omitempty"`
	ApplyDate   string `json:"apply_date" validate:"required"`
	Status      string `json:"status" validate:"required"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateJobRequest is the body of PATCH /api/jobs/{id}. All fields are
// optional; only the ones present in the body end up in the patch.
type UpdateJobRequest struct {
	CompanyName *string `json:"company_name"`
	VacancyURL  *string `json:"vacancy_url"`
	ApplyDate   *string `json:"apply_date"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

// Patch returns the sparse column map to send to the store. Identity
// columns are not reachable from here by construction.
func (r *UpdateJobRequest) Patch() map[string]interface{} {
	patch := make(map[string]interface{})
	if r.CompanyName != nil {
		patch["company_name"] = *r.CompanyName
	}
	if r.VacancyURL != nil {
		patch["vacancy_url"] = *r.VacancyURL
	}
	if r.ApplyDate != nil {
		patch["apply_date"] = *r.ApplyDate
	}
	if r.Status != nil {
		patch["status"] = *r.Status
	}
	if r.Notes != nil {
		patch["notes"] = *r.Notes
	}
	return patch
}

// Empty reports whether the request carries no fields at all.
func (r *UpdateJobRequest) Empty() bool {
	return r.CompanyName == nil && r.VacancyURL == nil &&
		r.ApplyDate == nil && r.Status == nil && r.Notes == nil
}
