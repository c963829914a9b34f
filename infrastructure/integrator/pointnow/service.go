package pointnow

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/pointnowclient"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks

// Integrator is the typed view of the upstream analytics API
type Integrator interface {
	ListBusinesses(ctx context.Context, token string, query url.Values) (*domain.BusinessPage, error)
	GetBusinessMetrics(ctx context.Context, token string, query url.Values) (*domain.BusinessMetrics, error)
	GetBusinessLeaderboard(ctx context.Context, token string, query url.Values) (*domain.LeaderboardPage, error)
	ListCustomers(ctx context.Context, token string, query url.Values) (*domain.CustomerPage, error)
	GetCustomerMetrics(ctx context.Context, token string, query url.Values) (*domain.CustomerMetrics, error)
	GetCustomerPointsHistory(ctx context.Context, token string, query url.Values) (*domain.PointsHistory, error)
	GetRevenueMetrics(ctx context.Context, token string, query url.Values) (*domain.RevenueMetrics, error)
	GetRevenueHistory(ctx context.Context, token string, query url.Values) (*domain.RevenueHistory, error)
	ListCharges(ctx context.Context, token string, query url.Values) (*domain.ChargePage, error)
}

// UpstreamError is returned when the upstream answers with a non-2xx status
type UpstreamError struct {
	StatusCode int
	Message    string
	Path       string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pointnow: %s returned status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("pointnow: %s returned status %d: %s", e.Path, e.StatusCode, e.Message)
}

// MessageOr returns the upstream message, or fallback when none was sent
func (e *UpstreamError) MessageOr(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

type PointNowIntegrator struct {
	Client pointnowclient.Client
}

func New(client pointnowclient.Client) *PointNowIntegrator {
	return &PointNowIntegrator{
		Client: client,
	}
}

func (s *PointNowIntegrator) ListBusinesses(ctx context.Context, token string, query url.Values) (*domain.BusinessPage, error) {
	return fetch[domain.BusinessPage](ctx, s.Client, token, pointnowclient.PathBusinessSummary, query)
}

func (s *PointNowIntegrator) GetBusinessMetrics(ctx context.Context, token string, query url.Values) (*domain.BusinessMetrics, error) {
	return fetch[domain.BusinessMetrics](ctx, s.Client, token, pointnowclient.PathBusinessSummaryMetrics, query)
}

func (s *PointNowIntegrator) GetBusinessLeaderboard(ctx context.Context, token string, query url.Values) (*domain.LeaderboardPage, error) {
	return fetch[domain.LeaderboardPage](ctx, s.Client, token, pointnowclient.PathBusinessLeaderboard, query)
}

func (s *PointNowIntegrator) ListCustomers(ctx context.Context, token string, query url.Values) (*domain.CustomerPage, error) {
	return fetch[domain.CustomerPage](ctx, s.Client, token, pointnowclient.PathCustomersSummary, query)
}

func (s *PointNowIntegrator) GetCustomerMetrics(ctx context.Context, token string, query url.Values) (*domain.CustomerMetrics, error) {
	return fetch[domain.CustomerMetrics](ctx, s.Client, token, pointnowclient.PathCustomersSummaryMetrics, query)
}

func (s *PointNowIntegrator) GetCustomerPointsHistory(ctx context.Context, token string, query url.Values) (*domain.PointsHistory, error) {
	return fetch[domain.PointsHistory](ctx, s.Client, token, pointnowclient.PathCustomerPointsHistorical, query)
}

func (s *PointNowIntegrator) GetRevenueMetrics(ctx context.Context, token string, query url.Values) (*domain.RevenueMetrics, error) {
	return fetch[domain.RevenueMetrics](ctx, s.Client, token, pointnowclient.PathRevenueMetrics, query)
}

func (s *PointNowIntegrator) GetRevenueHistory(ctx context.Context, token string, query url.Values) (*domain.RevenueHistory, error) {
	return fetch[domain.RevenueHistory](ctx, s.Client, token, pointnowclient.PathRevenueHistorical, query)
}

func (s *PointNowIntegrator) ListCharges(ctx context.Context, token string, query url.Values) (*domain.ChargePage, error) {
	return fetch[domain.ChargePage](ctx, s.Client, token, pointnowclient.PathRevenueCharges, query)
}

func fetch[T any](ctx context.Context, client pointnowclient.Client, token, path string, query url.Values) (*T, error) {
	resp, err := client.Do(ctx, pointnowclient.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		upstreamErr := &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    pointnowclient.ExtractMessage(resp.Body),
			Path:       path,
		}
		logrus.WithFields(logrus.Fields{
			"path":            path,
			"upstream_status": resp.StatusCode,
		}).Warn("pointnow: upstream returned an error status")
		return nil, upstreamErr
	}

	var envelope domain.Envelope[T]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, errors.Wrapf(err, "pointnow: decode %s", path)
	}

	return &envelope.Data, nil
}
