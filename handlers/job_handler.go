package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lamaranku/lamaranku-api/app"
	"github.com/lamaranku/lamaranku-api/middleware"
	"github.com/lamaranku/lamaranku-api/models"
	"github.com/lamaranku/lamaranku-api/utils"
)

// authUser fetches the caller the guard attached. The router always
// installs the guard before these handlers; the nil check is the handler's
// own backstop, mirroring the store-level user_id predicate.
func authUser(w http.ResponseWriter, r *http.Request) *middleware.AuthUser {
	user := middleware.AuthUserFromContext(r.Context())
	if user == nil {
		_ = utils.WriteUnauthorized(w, middleware.MsgSessionInvalid)
		return nil
	}
	return user
}

// ListJobsHandler handles GET /api/jobs: all of the caller's jobs, newest
// first. A store failure is a 500 here, unlike the mutating handlers.
func ListJobsHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := authUser(w, r)
		if user == nil {
			return
		}

		jobs, err := deps.Jobs.ListByUser(r.Context(), user.ID)
		if err != nil {
			deps.Logger.Error("listing jobs failed",
				zap.String("user_id", user.ID),
				zap.Error(err))
			_ = utils.WriteInternalServerError(w, err.Error())
			return
		}
		if jobs == nil {
			jobs = []models.Job{}
		}

		_ = utils.WriteJSON(w, http.StatusOK, jobs)
	}
}

// CreateJobHandler handles POST /api/jobs. The stored row's user_id always
// comes from the token; a user_id in the body has no field to land in.
func CreateJobHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := authUser(w, r)
		if user == nil {
			return
		}

		var req models.CreateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = utils.WriteBadRequest(w, "invalid request body")
			return
		}
		if err := utils.ValidateStruct(&req); err != nil {
			_ = utils.WriteBadRequest(w, err.Error())
			return
		}

		job, err := deps.Jobs.Create(r.Context(), user.ID, &req)
		if err != nil {
			deps.Logger.Error("creating job failed",
				zap.String("user_id", user.ID),
				zap.Error(err))
			_ = utils.WriteBadRequest(w, err.Error())
			return
		}

		_ = utils.WriteJSON(w, http.StatusCreated, job)
	}
}

// UpdateJobHandler handles PATCH /api/jobs/{id}. Rows are matched on id AND
// user_id; a foreign or unknown id updates nothing and returns an empty
// array with 200.
func UpdateJobHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := authUser(w, r)
		if user == nil {
			return
		}
		jobID := chi.URLParam(r, "id")

		var req models.UpdateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = utils.WriteBadRequest(w, "invalid request body")
			return
		}
		if req.Empty() {
			_ = utils.WriteBadRequest(w, "no fields to update")
			return
		}

		jobs, err := deps.Jobs.Update(r.Context(), user.ID, jobID, req.Patch())
		if err != nil {
			deps.Logger.Error("updating job failed",
				zap.String("user_id", user.ID),
				zap.String("job_id", jobID),
				zap.Error(err))
			_ = utils.WriteBadRequest(w, err.Error())
			return
		}
		if jobs == nil {
			jobs = []models.Job{}
		}

		_ = utils.WriteJSON(w, http.StatusOK, jobs)
	}
}

// DeleteJobHandler handles DELETE /api/jobs/{id}. Whether or not a row
// matched, the client sees the same 200 with the success message.
func DeleteJobHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := authUser(w, r)
		if user == nil {
			return
		}
		jobID := chi.URLParam(r, "id")

		if err := deps.Jobs.Delete(r.Context(), user.ID, jobID); err != nil {
			deps.Logger.Error("deleting job failed",
				zap.String("user_id", user.ID),
				zap.String("job_id", jobID),
				zap.Error(err))
			_ = utils.WriteBadRequest(w, err.Error())
			return
		}

		_ = utils.WriteMessage(w, MsgJobDeleted)
	}
}
