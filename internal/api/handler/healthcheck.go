package handler

import (
	"net/http"
	"time"

	"github.com/pointnow/admin-bff/internal/scheduler"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
)

// UpstreamReporter exposes the last upstream probe outcome
type UpstreamReporter interface {
	Status() scheduler.UpstreamStatus
}

type HealthResponse struct {
	Status   string                   `json:"status"`
	Time     time.Time                `json:"time"`
	Upstream scheduler.UpstreamStatus `json:"upstream"`
}

// HealthcheckHandler answers 200 while the process is up; upstream reachability
// is reported, not enforced
func HealthcheckHandler(reporter UpstreamReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:   "ok",
			Time:     time.Now().UTC(),
			Upstream: reporter.Status(),
		})
	})
}
