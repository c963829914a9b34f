package pointnowclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

type Client interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// Observer receives one call per completed upstream exchange
type Observer interface {
	ObserveUpstream(path string, statusCode int, elapsed time.Duration)
}

// Request describes one upstream call. Token is sent as a bearer token when set.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Token  string
	Body   any
}

// Response is the raw upstream answer
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type PointNowClient struct {
	httpClient *http.Client
	baseURL    string
	observer   Observer
}

type Option func(*PointNowClient)

func WithObserver(o Observer) Option {
	return func(c *PointNowClient) {
		c.observer = o
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *PointNowClient) {
		c.httpClient = hc
	}
}

func NewClient(cfg *config.Config, opts ...Option) Client {
	timeout := cfg.Upstream.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := &PointNowClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(cfg.Upstream.URL, "/"),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *PointNowClient) Do(ctx context.Context, r Request) (*Response, error) {
	endpoint := c.baseURL + r.Path
	if encoded := r.Query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, errors.Wrap(err, "pointnow: encode request body")
		}
		body = bytes.NewReader(payload)
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "pointnow: create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(r.Path, 0, started)
		return nil, errors.Wrapf(err, "pointnow: %s %s", method, r.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(r.Path, resp.StatusCode, started)
		return nil, errors.Wrap(err, "pointnow: read response")
	}

	c.observe(r.Path, resp.StatusCode, started)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}

func (c *PointNowClient) observe(path string, status int, started time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(path, status, time.Since(started))
	}
}

// ExtractMessage returns the "message" field of an upstream body. Validation errors
// carry a list of messages; those are joined.
func ExtractMessage(body []byte) string {
	var payload struct {
		Message jsoniter.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(payload.Message, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(payload.Message, &many); err == nil {
		return strings.Join(many, ", ")
	}

	return ""
}
