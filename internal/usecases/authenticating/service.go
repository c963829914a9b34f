package authenticating

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/pointnowclient"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
	"github.com/pointnow/admin-bff/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const refreshTokenTTL = 7 * 24 * time.Hour

// LoginResult is a successful login: the upstream body relayed as is, plus the
// cookies to set when the upstream returned tokens
type LoginResult struct {
	StatusCode int
	Body       []byte
	Tokens     *domain.SessionTokens
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type Service struct {
	client pointnowclient.Client
	now    func() time.Time
}

func NewService(client pointnowclient.Client) Authenticator {
	return &Service{
		client: client,
		now:    time.Now,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type backendTokens struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	ExpiresIn    float64 `json:"expires_in"`
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	logger := log.ForContext(ctx)

	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := s.client.Do(ctx, pointnowclient.Request{
		Method: http.MethodPost,
		Path:   pointnowclient.PathSuperAdminLogin,
		Body:   loginRequest{Email: email, Password: password},
	})
	if err != nil {
		logger.WithError(err).Error("auth: login request failed")
		return nil, err
	}

	if !resp.OK() {
		message := pointnowclient.ExtractMessage(resp.Body)
		if message == "" {
			message = apiErrors.MsgLoginFailed
		}

		logger.WithFields(log.Fields{
			"upstream_status": resp.StatusCode,
			"error":           message,
		}).Warn("auth: login rejected by upstream")

		return nil, &LoginError{StatusCode: resp.StatusCode, Message: message}
	}

	if !json.Valid(resp.Body) {
		return nil, ErrInvalidLoginBody
	}

	tokens, err := s.extractTokens(resp.Body)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		StatusCode: http.StatusOK,
		Body:       resp.Body,
		Tokens:     tokens,
	}, nil
}

// extractTokens reads data.backendTokens. A body without tokens yields nil.
func (s *Service) extractTokens(body []byte) (*domain.SessionTokens, error) {
	var payload struct {
		Data map[string]jsoniter.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil
	}

	raw, ok := payload.Data["backendTokens"]
	if !ok || string(raw) == "null" {
		return nil, nil
	}

	var bt backendTokens
	if err := json.Unmarshal(raw, &bt); err != nil {
		return nil, errors.Wrap(err, "auth: decode backend tokens")
	}

	delete(payload.Data, "backendTokens")
	delete(payload.Data, "password")

	userData, err := json.Marshal(payload.Data)
	if err != nil {
		return nil, errors.Wrap(err, "auth: encode user data")
	}

	return &domain.SessionTokens{
		AccessToken:      bt.AccessToken,
		RefreshToken:     bt.RefreshToken,
		ExpiresAt:        time.UnixMilli(int64(bt.ExpiresIn)),
		RefreshExpiresAt: s.now().Add(refreshTokenTTL),
		UserData:         userData,
	}, nil
}

// ParseSession builds the request session from the cookie values. Claims are
// decoded without verifying the signature; the upstream owns validity.
// userData is the cookie value, query-escaped JSON.
func ParseSession(accessToken, userData string) *domain.Session {
	if accessToken == "" {
		return nil
	}

	session := &domain.Session{AccessToken: accessToken}

	claims := &domain.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err == nil {
		session.Claims = claims
	}

	if userData != "" {
		if decoded, err := url.QueryUnescape(userData); err == nil && json.Valid([]byte(decoded)) {
			session.UserData = []byte(decoded)
		}
	}

	return session
}

// EncodeUserData turns the user data JSON into a cookie-safe value
func EncodeUserData(userData []byte) string {
	return url.QueryEscape(string(userData))
}
