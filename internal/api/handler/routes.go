package handler

import (
	"net/http"

	"github.com/pointnow/admin-bff/internal/api/handler/router"
	"github.com/pointnow/admin-bff/internal/config"
	"github.com/pointnow/admin-bff/internal/usecases/authenticating"
	"github.com/pointnow/admin-bff/internal/usecases/configuring"
	"github.com/pointnow/admin-bff/internal/usecases/proxying"
	"github.com/pointnow/admin-bff/internal/usecases/viewing"
	"github.com/pointnow/admin-bff/pkg/middleware"
	"github.com/pointnow/admin-bff/pkg/monitoring"
)

func requireSession() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.RequireSession()}
}

func Healthcheck(reporter UpstreamReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(reporter),
		},
	}
}

func Metrics(collector *monitoring.MetricsCollector) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: collector.Handler(),
		},
	}
}

// Analytics mounts one proxy route per entry of the proxy route table
func Analytics(service proxying.Proxier) []router.Route {
	routes := make([]router.Route, 0, len(proxying.Routes()))
	for _, route := range proxying.Routes() {
		routes = append(routes, router.Route{
			Path:        route.LocalPath,
			Method:      http.MethodGet,
			Handler:     AnalyticsProxy(service, route),
			Middlewares: requireSession(),
		})
	}
	return routes
}

func Authentication(service authenticating.Authenticator, cookies config.Cookie) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service, cookies),
		},
		{
			Path:    "/api/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(cookies),
		},
	}
}

func Views(service viewing.Viewer) []router.Route {
	return []router.Route{
		{
			Path:        "/api/views/dashboard",
			Method:      http.MethodGet,
			Handler:     DashboardView(service),
			Middlewares: requireSession(),
		},
		{
			Path:        "/api/views/businesses",
			Method:      http.MethodGet,
			Handler:     BusinessesView(service),
			Middlewares: requireSession(),
		},
		{
			Path:        "/api/views/businesses/:id",
			Method:      http.MethodGet,
			Handler:     BusinessView(service),
			Middlewares: requireSession(),
		},
		{
			Path:        "/api/views/customers",
			Method:      http.MethodGet,
			Handler:     CustomersView(service),
			Middlewares: requireSession(),
		},
		{
			Path:        "/api/views/customers/:id",
			Method:      http.MethodGet,
			Handler:     CustomerView(service),
			Middlewares: requireSession(),
		},
		{
			Path:        "/api/views/revenue",
			Method:      http.MethodGet,
			Handler:     RevenueView(service),
			Middlewares: requireSession(),
		},
	}
}

func Settings(service configuring.SettingsService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/settings",
			Method:      http.MethodGet,
			Handler:     GetSettings(service),
			Middlewares: requireSession(),
		},
		{
			Path:        "/api/settings/maintenance",
			Method:      http.MethodPut,
			Handler:     SetMaintenanceMode(service),
			Middlewares: requireSession(),
		},
		{
			Path:        "/api/settings/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: requireSession(),
		},
		{
			Path:        "/api/settings/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: requireSession(),
		},
	}
}
