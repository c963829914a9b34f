package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow"
	"github.com/pointnow/admin-bff/internal/api/handler/router"
	"github.com/pointnow/admin-bff/internal/usecases/listing"
	"github.com/pointnow/admin-bff/internal/usecases/viewing"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
	"github.com/pointnow/admin-bff/pkg/log"
	"github.com/pointnow/admin-bff/pkg/middleware"
)

func BusinessesView(service viewing.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := viewing.ParseBusinessParams(r.URL.Query(), time.Now())
		if err != nil {
			writeValidationError(w, err)
			return
		}

		ctx := r.Context()
		view, err := service.Businesses(ctx, middleware.AccessToken(ctx), params)
		if err != nil {
			writeViewError(w, r, err, viewing.MsgBusinessesFailed, "")
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, view)
	}
}

func BusinessView(service viewing.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := viewing.ParseBusinessDetailParams(r.URL.Query(), time.Now())
		if err != nil {
			writeValidationError(w, err)
			return
		}

		ctx := r.Context()
		id := router.Params(r).ByName("id")

		view, err := service.Business(ctx, middleware.AccessToken(ctx), id, params)
		if err != nil {
			writeViewError(w, r, err, viewing.MsgBusinessesFailed, viewing.MsgBusinessNotFound)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, view)
	}
}

func CustomersView(service viewing.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := viewing.ParseCustomerParams(r.URL.Query(), time.Now())
		if err != nil {
			writeValidationError(w, err)
			return
		}

		ctx := r.Context()
		view, err := service.Customers(ctx, middleware.AccessToken(ctx), params)
		if err != nil {
			writeViewError(w, r, err, viewing.MsgCustomersFailed, "")
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, view)
	}
}

func CustomerView(service viewing.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := router.Params(r).ByName("id")

		view, err := service.Customer(ctx, middleware.AccessToken(ctx), id)
		if err != nil {
			writeViewError(w, r, err, viewing.MsgCustomersFailed, viewing.MsgCustomerNotFound)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, view)
	}
}

func RevenueView(service viewing.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := viewing.ParseRevenueParams(r.URL.Query(), time.Now())
		if err != nil {
			writeValidationError(w, err)
			return
		}

		ctx := r.Context()
		view, err := service.Revenue(ctx, middleware.AccessToken(ctx), params)
		if err != nil {
			writeViewError(w, r, err, viewing.MsgChargesFailed, "")
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, view)
	}
}

func DashboardView(service viewing.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dates, err := viewing.ParseDates(r.URL.Query(), time.Now())
		if err != nil {
			writeValidationError(w, err)
			return
		}

		ctx := r.Context()
		apiErrors.WriteJSON(w, http.StatusOK, service.Dashboard(ctx, middleware.AccessToken(ctx), dates))
	}
}

func writeValidationError(w http.ResponseWriter, err error) {
	apiErrors.WriteStatus(w, http.StatusBadRequest, err.Error())
}

// writeViewError maps a failed list fetch or lookup the same way the proxy
// routes map upstream failures
func writeViewError(w http.ResponseWriter, r *http.Request, err error, fallback, notFound string) {
	var upstreamErr *pointnow.UpstreamError

	switch {
	case notFound != "" && errors.Is(err, listing.ErrNotFound):
		apiErrors.WriteStatus(w, http.StatusNotFound, notFound)
	case errors.As(err, &upstreamErr):
		apiErrors.WriteStatus(w, upstreamErr.StatusCode, upstreamErr.MessageOr(fallback))
	default:
		log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path).Error("views: request failed")
		apiErrors.WriteInternal(w)
	}
}
