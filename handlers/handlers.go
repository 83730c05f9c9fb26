package handlers

import (
	"net/http"

	"github.com/lamaranku/lamaranku-api/app"
)

// MsgJobDeleted is the delete success message, part of the API contract.
const MsgJobDeleted = "Data berhasil dihapus"

// HealthCheck returns a simple health check handler
func HealthCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
