package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow"
	pointnowmocks "github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/mocks"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/pointnowclient"
	repomocks "github.com/pointnow/admin-bff/infrastructure/repository/mocks"
	"github.com/pointnow/admin-bff/internal/config"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/internal/scheduler"
	"github.com/pointnow/admin-bff/internal/usecases/authenticating"
	"github.com/pointnow/admin-bff/internal/usecases/configuring"
	"github.com/pointnow/admin-bff/internal/usecases/proxying"
	"github.com/pointnow/admin-bff/internal/usecases/viewing"
	"github.com/pointnow/admin-bff/pkg/middleware"
	"github.com/pointnow/admin-bff/pkg/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedUpstream struct {
	status scheduler.UpstreamStatus
}

func (f fixedUpstream) Status() scheduler.UpstreamStatus {
	return f.status
}

type testServer struct {
	handler    http.Handler
	client     *pointnowmocks.MockClient
	integrator *pointnowmocks.MockIntegrator
	repo       *repomocks.MockSettingsRepository
	metrics    *monitoring.MetricsCollector
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := &testServer{
		client:     pointnowmocks.NewMockClient(ctrl),
		integrator: pointnowmocks.NewMockIntegrator(ctrl),
		repo:       repomocks.NewMockSettingsRepository(ctrl),
		metrics:    monitoring.NewMetricsCollector("test"),
	}

	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
		Cookie: config.Cookie{Secure: true},
	}

	ts.handler = NewHandler(cfg, Services{
		Proxier:       proxying.NewService(ts.client),
		Authenticator: authenticating.NewService(ts.client),
		Viewer:        viewing.NewService(ts.integrator, nil, time.Minute),
		Settings:      configuring.NewService(ts.repo),
		Upstream:      fixedUpstream{status: scheduler.UpstreamStatus{Reachable: true, StatusCode: http.StatusOK}},
		Metrics:       ts.metrics,
	})

	return ts
}

func (ts *testServer) do(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func sessionCookie() *http.Cookie {
	return &http.Cookie{Name: middleware.CookieAccessToken, Value: "tok"}
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRoutesRequireSession(t *testing.T) {
	type target struct {
		method string
		path   string
		body   string
	}

	targets := []target{
		{http.MethodGet, "/api/views/dashboard", ""},
		{http.MethodGet, "/api/views/businesses", ""},
		{http.MethodGet, "/api/views/businesses/b1", ""},
		{http.MethodGet, "/api/views/customers", ""},
		{http.MethodGet, "/api/views/customers/c1", ""},
		{http.MethodGet, "/api/views/revenue", ""},
		{http.MethodGet, "/api/settings", ""},
		{http.MethodPut, "/api/settings/maintenance", `{"enabled":true}`},
		{http.MethodGet, "/api/settings/products", ""},
		{http.MethodPost, "/api/settings/products", `{"name":"Starter"}`},
	}
	for _, route := range proxying.Routes() {
		targets = append(targets, target{http.MethodGet, route.LocalPath, ""})
	}

	for _, tt := range targets {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			ts := newTestServer(t)

			rec := ts.do(tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Unauthorized","status_code":401}`, rec.Body.String())
		})
	}
}

func TestAnalyticsRoutes(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/analytics/revenue/metrics", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Unauthorized","status_code":401}`, rec.Body.String())
	})

	t.Run("relays the upstream body", func(t *testing.T) {
		ts := newTestServer(t)

		ts.client.EXPECT().
			Do(gomock.Any(), pointnowclient.Request{
				Method: http.MethodGet,
				Path:   pointnowclient.PathBusinessSummary,
				Query:  map[string][]string{"page": {"3"}, "limit": {"10"}},
				Token:  "tok",
			}).
			Return(&pointnowclient.Response{StatusCode: http.StatusOK, Body: []byte(`{"data":{"businesses":[]}}`)}, nil)

		rec := ts.do(http.MethodGet, "/api/analytics/business/summary?page=3&debug=1", "", sessionCookie())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"businesses":[]}}`, rec.Body.String())
	})

	t.Run("network failure", func(t *testing.T) {
		ts := newTestServer(t)

		ts.client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: timeout"))

		rec := ts.do(http.MethodGet, "/api/analytics/revenue/charges", "", sessionCookie())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Internal server error","status_code":500}`, rec.Body.String())
	})
}

func TestLogin(t *testing.T) {
	t.Run("sets the session cookies", func(t *testing.T) {
		ts := newTestServer(t)

		upstreamBody := `{"message":"ok","data":{"id":"u1","email":"root@pointnow.io","password":"hash",` +
			`"backendTokens":{"access_token":"at","refresh_token":"rt","expires_in":1893456000000}}}`

		ts.client.EXPECT().
			Do(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req pointnowclient.Request) (*pointnowclient.Response, error) {
				assert.Equal(t, pointnowclient.PathSuperAdminLogin, req.Path)
				assert.Empty(t, req.Token)
				return &pointnowclient.Response{StatusCode: http.StatusCreated, Body: []byte(upstreamBody)}, nil
			})

		rec := ts.do(http.MethodPost, "/api/auth/login", `{"email":"root@pointnow.io","password":"secret"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, upstreamBody, rec.Body.String())

		access := cookieByName(rec, middleware.CookieAccessToken)
		require.NotNil(t, access)
		assert.Equal(t, "at", access.Value)
		assert.True(t, access.HttpOnly)
		assert.True(t, access.Secure)
		assert.Equal(t, http.SameSiteLaxMode, access.SameSite)
		assert.Equal(t, "/", access.Path)
		assert.Equal(t, int64(1893456000), access.Expires.Unix())

		refresh := cookieByName(rec, middleware.CookieRefreshToken)
		require.NotNil(t, refresh)
		assert.Equal(t, "rt", refresh.Value)

		userData := cookieByName(rec, middleware.CookieUserData)
		require.NotNil(t, userData)
		session := authenticating.ParseSession("at", userData.Value)
		require.NotNil(t, session)
		assert.JSONEq(t, `{"id":"u1","email":"root@pointnow.io"}`, string(session.UserData))
	})

	t.Run("missing credentials", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/auth/login", `{"email":"root@pointnow.io"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Email and password are required","status":400}`, rec.Body.String())
	})

	t.Run("body is not JSON", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/auth/login", `email=root`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Internal server error","status":500}`, rec.Body.String())
	})

	t.Run("upstream rejection", func(t *testing.T) {
		ts := newTestServer(t)

		ts.client.EXPECT().
			Do(gomock.Any(), gomock.Any()).
			Return(&pointnowclient.Response{StatusCode: http.StatusUnauthorized, Body: []byte(`{"message":"Invalid credentials"}`)}, nil)

		rec := ts.do(http.MethodPost, "/api/auth/login", `{"email":"root@pointnow.io","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials","status":401}`, rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully","status":200}`, rec.Body.String())

	for _, name := range []string{middleware.CookieAccessToken, middleware.CookieRefreshToken, middleware.CookieUserData} {
		c := cookieByName(rec, name)
		require.NotNil(t, c, name)
		assert.Less(t, c.MaxAge, 0, name)
		assert.Empty(t, c.Value, name)
	}
}

func TestViewRoutes(t *testing.T) {
	t.Run("invalid filter value", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/views/revenue?status=refunded", "", sessionCookie())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status_code":400`)
	})

	t.Run("unknown customer", func(t *testing.T) {
		ts := newTestServer(t)

		ts.integrator.EXPECT().
			ListCustomers(gomock.Any(), "tok", gomock.Any()).
			Return(&domain.CustomerPage{Customers: []domain.Customer{{ID: "c1"}}}, nil)
		ts.integrator.EXPECT().
			GetCustomerPointsHistory(gomock.Any(), "tok", gomock.Any()).
			Return(&domain.PointsHistory{}, nil)

		rec := ts.do(http.MethodGet, "/api/views/customers/c404", "", sessionCookie())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Customer not found","status_code":404}`, rec.Body.String())
	})

	t.Run("list failure maps like the proxy", func(t *testing.T) {
		ts := newTestServer(t)

		ts.integrator.EXPECT().
			ListBusinesses(gomock.Any(), "tok", gomock.Any()).
			Return(nil, &pointnow.UpstreamError{StatusCode: http.StatusForbidden})
		ts.integrator.EXPECT().
			GetBusinessMetrics(gomock.Any(), "tok", gomock.Any()).
			Return(&domain.BusinessMetrics{}, nil)

		rec := ts.do(http.MethodGet, "/api/views/businesses", "", sessionCookie())

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Failed to fetch businesses","status_code":403}`, rec.Body.String())
	})
}

func TestSettingsRoutes(t *testing.T) {
	t.Run("create product", func(t *testing.T) {
		ts := newTestServer(t)

		ts.repo.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p domain.SubscriptionProduct) (*domain.SubscriptionProduct, error) {
				return &p, nil
			})

		rec := ts.do(http.MethodPost, "/api/settings/products", `{"name":"Growth","price_monthly":19}`, sessionCookie())

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"prod_`)
		assert.Contains(t, rec.Body.String(), `"name":"Growth"`)
	})

	t.Run("missing name", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/settings/products", `{"price_monthly":19}`, sessionCookie())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "product name is required")
	})

	t.Run("storage failure", func(t *testing.T) {
		ts := newTestServer(t)

		ts.repo.EXPECT().SetMaintenanceMode(gomock.Any(), true).Return(nil, errors.New("connection refused"))

		rec := ts.do(http.MethodPut, "/api/settings/maintenance", `{"enabled":true}`, sessionCookie())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("maintenance flag is required", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPut, "/api/settings/maintenance", `{}`, sessionCookie())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOperationalRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/healthcheck", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"reachable":true`)

	rec = ts.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{endpoint="/healthcheck",method="GET",status="200"} 1`)
}

func TestCorsPreflight(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
