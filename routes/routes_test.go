package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lamaranku/lamaranku-api/app"
	"github.com/lamaranku/lamaranku-api/middleware"
	"github.com/lamaranku/lamaranku-api/models"
)

type MockIdentityResolver struct {
	mock.Mock
}

func (m *MockIdentityResolver) ResolveUser(ctx context.Context, token string) (*middleware.AuthUser, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*middleware.AuthUser), args.Error(1)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) ListByUser(ctx context.Context, userID string) ([]models.Job, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, userID string, req *models.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, userID, jobID string, patch map[string]interface{}) ([]models.Job, error) {
	args := m.Called(ctx, userID, jobID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, userID, jobID string) error {
	args := m.Called(ctx, userID, jobID)
	return args.Error(0)
}

func newTestRouter(resolver *MockIdentityResolver, repo *MockJobRepository) http.Handler {
	logger := zap.NewNop()
	deps := &app.Dependencies{
		Logger:    logger,
		Jobs:      repo,
		AuthGuard: middleware.NewAuthGuard(resolver, logger),
	}
	return SetupRoutes(deps)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	requests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/jobs"},
		{http.MethodPost, "/api/jobs"},
		{http.MethodPatch, "/api/jobs/1"},
		{http.MethodDelete, "/api/jobs/1"},
	}

	for _, tt := range requests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			resolver := new(MockIdentityResolver)
			repo := new(MockJobRepository)
			router := newTestRouter(resolver, repo)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, middleware.MsgAuthHeaderMissing, body.Error)

			resolver.AssertNotCalled(t, "ResolveUser")
			repo.AssertNotCalled(t, "ListByUser")
			repo.AssertNotCalled(t, "Create")
			repo.AssertNotCalled(t, "Update")
			repo.AssertNotCalled(t, "Delete")
		})
	}
}

func TestListJobsThroughRouter(t *testing.T) {
	resolver := new(MockIdentityResolver)
	repo := new(MockJobRepository)
	router := newTestRouter(resolver, repo)

	caller := &middleware.AuthUser{ID: uuid.NewString(), Email: "user@example.com"}
	resolver.On("ResolveUser", mock.Anything, "live-token").Return(caller, nil)

	now := time.Now().UTC()
	repo.On("ListByUser", mock.Anything, caller.ID).Return([]models.Job{
		{ID: 2, UserID: caller.ID, CompanyName: "Beta", ApplyDate: "2024-01-02", Status: "applied", CreatedAt: now},
		{ID: 1, UserID: caller.ID, CompanyName: "Alpha", ApplyDate: "2024-01-01", Status: "applied", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var jobs []models.Job
	require.NoError(t, json.NewDecoder(w.Body).Decode(&jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, int64(2), jobs[0].ID)
	assert.Equal(t, int64(1), jobs[1].ID)

	resolver.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateJobThroughRouter(t *testing.T) {
	resolver := new(MockIdentityResolver)
	repo := new(MockJobRepository)
	router := newTestRouter(resolver, repo)

	caller := &middleware.AuthUser{ID: uuid.NewString()}
	resolver.On("ResolveUser", mock.Anything, "live-token").Return(caller, nil)

	repo.On("Create", mock.Anything, caller.ID, &models.CreateJobRequest{
		CompanyName: "Acme",
		ApplyDate:   "2024-01-01",
		Status:      "applied",
	}).Return(&models.Job{
		ID:          1,
		UserID:      caller.ID,
		CompanyName: "Acme",
		ApplyDate:   "2024-01-01",
		Status:      "applied",
		CreatedAt:   time.Now().UTC(),
	}, nil)

	// Body carries a forged user_id; the repository must only ever see
	// the authenticated caller's id.
	body := `{"company_name":"Acme","apply_date":"2024-01-01","status":"applied","user_id":"forged"}`
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer live-token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Job
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, caller.ID, created.UserID)

	repo.AssertExpectations(t)
}

func TestPathParamsFlowThroughRouter(t *testing.T) {
	resolver := new(MockIdentityResolver)
	repo := new(MockJobRepository)
	router := newTestRouter(resolver, repo)

	caller := &middleware.AuthUser{ID: uuid.NewString()}
	resolver.On("ResolveUser", mock.Anything, "live-token").Return(caller, nil)

	repo.On("Update", mock.Anything, caller.ID, "7", map[string]interface{}{"status": "offer"}).
		Return([]models.Job{{ID: 7, UserID: caller.ID, Status: "offer"}}, nil)
	repo.On("Delete", mock.Anything, caller.ID, "7").Return(nil)

	patchReq := httptest.NewRequest(http.MethodPatch, "/api/jobs/7", strings.NewReader(`{"status":"offer"}`))
	patchReq.Header.Set("Authorization", "Bearer live-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, patchReq)
	assert.Equal(t, http.StatusOK, w.Code)

	deleteReq := httptest.NewRequest(http.MethodDelete, "/api/jobs/7", nil)
	deleteReq.Header.Set("Authorization", "Bearer live-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, deleteReq)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Data berhasil dihapus", body.Message)

	repo.AssertExpectations(t)
}

func TestRejectedTokenThroughRouter(t *testing.T) {
	resolver := new(MockIdentityResolver)
	repo := new(MockJobRepository)
	router := newTestRouter(resolver, repo)

	resolver.On("ResolveUser", mock.Anything, "dead-token").
		Return(nil, context.DeadlineExceeded)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer dead-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, middleware.MsgSessionInvalid, body.Error)
	repo.AssertNotCalled(t, "ListByUser")
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(new(MockIdentityResolver), new(MockJobRepository))

	req := httptest.NewRequest(http.MethodOptions, "/api/jobs", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(new(MockIdentityResolver), new(MockJobRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"endpoint not found"}`, w.Body.String())
}

func TestHealthzIsPublic(t *testing.T) {
	router := newTestRouter(new(MockIdentityResolver), new(MockJobRepository))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
