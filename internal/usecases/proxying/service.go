package proxying

import (
	"context"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/pointnowclient"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
	"github.com/pointnow/admin-bff/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidUpstreamBody is returned when a 2xx upstream body is not JSON
var ErrInvalidUpstreamBody = errors.New("proxying: upstream body is not valid JSON")

// Result is what the proxy route writes back: a status and a JSON body
type Result struct {
	StatusCode int
	Body       []byte
}

type Proxier interface {
	Forward(ctx context.Context, route Route, token string, in url.Values) (*Result, error)
}

type Service struct {
	client pointnowclient.Client
}

func NewService(client pointnowclient.Client) Proxier {
	return &Service{
		client: client,
	}
}

// Forward relays one analytics request upstream. Returned errors are exceptions
// (network or parse) that the caller maps to a generic 500.
func (s *Service) Forward(ctx context.Context, route Route, token string, in url.Values) (*Result, error) {
	logger := log.ForContext(ctx).WithField("route", route.Name)

	if token == "" {
		return statusResult(http.StatusUnauthorized, apiErrors.MsgUnauthorized)
	}

	query, err := route.BuildQuery(in)
	if err != nil {
		var missing *MissingParamError
		if errors.As(err, &missing) {
			logger.WithField("param", missing.Param).Warn("proxy: required parameter missing")
			return statusResult(http.StatusBadRequest, missing.Message)
		}
		return nil, err
	}

	resp, err := s.client.Do(ctx, pointnowclient.Request{
		Method: http.MethodGet,
		Path:   route.UpstreamPath,
		Query:  query,
		Token:  token,
	})
	if err != nil {
		logger.WithError(err).Error("proxy: upstream request failed")
		return nil, err
	}

	if !resp.OK() {
		message := pointnowclient.ExtractMessage(resp.Body)
		if message == "" {
			message = route.Fallback
		}

		logger.WithFields(log.Fields{
			"upstream_status": resp.StatusCode,
			"error":           message,
		}).Warn("proxy: upstream returned an error status")

		return statusResult(resp.StatusCode, message)
	}

	if !json.Valid(resp.Body) {
		logger.WithField("upstream_status", resp.StatusCode).Error("proxy: upstream body is not JSON")
		return nil, ErrInvalidUpstreamBody
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}

func statusResult(status int, message string) (*Result, error) {
	body, err := json.Marshal(apiErrors.StatusBody{Message: message, StatusCode: status})
	if err != nil {
		return nil, errors.Wrap(err, "proxying: encode status body")
	}

	return &Result{
		StatusCode: status,
		Body:       body,
	}, nil
}
