package authenticating

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/mocks"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/pointnowclient"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockClient(ctrl)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	return &Service{
		client: mockClient,
		now:    func() time.Time { return now },
	}, mockClient
}

func TestService_Login(t *testing.T) {
	t.Run("empty credentials never reach upstream", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Login(context.Background(), "admin@pointnow.io", "")
		assert.ErrorIs(t, err, ErrMissingCredentials)

		_, err = service.Login(context.Background(), "", "secret")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("success extracts tokens and trims user data", func(t *testing.T) {
		service, mockClient := newTestService(t)

		body := `{"message":"ok","data":{"id":"u1","email":"admin@pointnow.io","password":"hash",` +
			`"backendTokens":{"access_token":"acc","refresh_token":"ref","expires_in":1710158400000}}}`

		mockClient.EXPECT().
			Do(gomock.Any(), pointnowclient.Request{
				Method: http.MethodPost,
				Path:   "/auth/login/super_admin",
				Body:   loginRequest{Email: "admin@pointnow.io", Password: "secret"},
			}).
			Return(&pointnowclient.Response{StatusCode: http.StatusCreated, Body: []byte(body)}, nil)

		result, err := service.Login(context.Background(), "admin@pointnow.io", "secret")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.JSONEq(t, body, string(result.Body))
		require.NotNil(t, result.Tokens)
		assert.Equal(t, "acc", result.Tokens.AccessToken)
		assert.Equal(t, "ref", result.Tokens.RefreshToken)
		assert.Equal(t, int64(1710158400000), result.Tokens.ExpiresAt.UnixMilli())
		assert.Equal(t, time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC), result.Tokens.RefreshExpiresAt)
		assert.JSONEq(t, `{"id":"u1","email":"admin@pointnow.io"}`, string(result.Tokens.UserData))
	})

	t.Run("success without backend tokens sets no cookies", func(t *testing.T) {
		service, mockClient := newTestService(t)

		mockClient.EXPECT().
			Do(gomock.Any(), gomock.Any()).
			Return(&pointnowclient.Response{StatusCode: http.StatusOK, Body: []byte(`{"data":{"id":"u1"}}`)}, nil)

		result, err := service.Login(context.Background(), "admin@pointnow.io", "secret")
		require.NoError(t, err)
		assert.Nil(t, result.Tokens)
	})

	t.Run("upstream rejection keeps its message and status", func(t *testing.T) {
		service, mockClient := newTestService(t)

		mockClient.EXPECT().
			Do(gomock.Any(), gomock.Any()).
			Return(&pointnowclient.Response{StatusCode: http.StatusUnauthorized, Body: []byte(`{"message":"Invalid credentials"}`)}, nil)

		_, err := service.Login(context.Background(), "admin@pointnow.io", "wrong")

		loginErr, ok := IsLoginError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, loginErr.StatusCode)
		assert.Equal(t, "Invalid credentials", loginErr.Message)
	})

	t.Run("upstream rejection without message falls back", func(t *testing.T) {
		service, mockClient := newTestService(t)

		mockClient.EXPECT().
			Do(gomock.Any(), gomock.Any()).
			Return(&pointnowclient.Response{StatusCode: http.StatusTooManyRequests, Body: []byte(`{}`)}, nil)

		_, err := service.Login(context.Background(), "admin@pointnow.io", "secret")

		loginErr, ok := IsLoginError(err)
		require.True(t, ok)
		assert.Equal(t, "Login failed", loginErr.Message)
	})

	t.Run("network failure is returned", func(t *testing.T) {
		service, mockClient := newTestService(t)

		mockClient.EXPECT().
			Do(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("dial tcp: timeout"))

		_, err := service.Login(context.Background(), "admin@pointnow.io", "secret")
		assert.Error(t, err)
		_, ok := IsLoginError(err)
		assert.False(t, ok)
	})
}

func TestParseSession(t *testing.T) {
	t.Run("no token means no session", func(t *testing.T) {
		assert.Nil(t, ParseSession("", ""))
	})

	t.Run("claims are decoded without verification", func(t *testing.T) {
		expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			UserID: "u1",
			Email:  "admin@pointnow.io",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expires),
			},
		}).SignedString([]byte("not-the-issuer-key"))
		require.NoError(t, err)

		session := ParseSession(token, EncodeUserData([]byte(`{"name":"Ada, Admin"}`)))
		require.NotNil(t, session)
		require.NotNil(t, session.Claims)
		assert.Equal(t, "u1", session.Claims.UserID)

		expiresAt, ok := session.ExpiresAt()
		assert.True(t, ok)
		assert.True(t, expiresAt.Equal(expires))
		assert.JSONEq(t, `{"name":"Ada, Admin"}`, string(session.UserData))
	})

	t.Run("opaque token still yields a session", func(t *testing.T) {
		session := ParseSession("opaque-token", "%%%")
		require.NotNil(t, session)
		assert.Equal(t, "opaque-token", session.AccessToken)
		assert.Nil(t, session.Claims)
		assert.Nil(t, session.UserData)
	})
}
