package handler

import (
	"net/http"

	"github.com/pointnow/admin-bff/internal/usecases/proxying"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
	"github.com/pointnow/admin-bff/pkg/log"
	"github.com/pointnow/admin-bff/pkg/middleware"
)

// AnalyticsProxy relays one allow-listed analytics route to the upstream
func AnalyticsProxy(service proxying.Proxier, route proxying.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		result, err := service.Forward(ctx, route, middleware.AccessToken(ctx), r.URL.Query())
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("route", route.Name).Error("analytics: proxy request failed")
			apiErrors.WriteInternal(w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(result.StatusCode)
		if _, err := w.Write(result.Body); err != nil {
			log.ForContext(ctx).WithError(err).Warn("analytics: failed to write response")
		}
	}
}
