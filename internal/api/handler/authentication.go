package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/internal/config"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/internal/usecases/authenticating"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
	"github.com/pointnow/admin-bff/pkg/log"
	"github.com/pointnow/admin-bff/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator, cookies config.Cookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.ForContext(ctx).WithError(err).Warn("auth: undecodable login body")
			apiErrors.WriteLoginStatus(w, http.StatusInternalServerError, apiErrors.MsgInternalServerError)
			return
		}

		result, err := service.Login(ctx, req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		if result.Tokens != nil {
			setSessionCookies(w, result.Tokens, cookies.Secure)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(result.StatusCode)
		if _, err := w.Write(result.Body); err != nil {
			log.ForContext(ctx).WithError(err).Warn("auth: failed to write login response")
		}
	}
}

// Logout always succeeds and expires the three session cookies
func Logout(cookies config.Cookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, name := range []string{middleware.CookieAccessToken, middleware.CookieRefreshToken, middleware.CookieUserData} {
			http.SetCookie(w, &http.Cookie{
				Name:     name,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				Expires:  time.Unix(0, 0),
				HttpOnly: true,
				Secure:   cookies.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		apiErrors.WriteLoginStatus(w, http.StatusOK, apiErrors.MsgLoggedOut)
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	if errors.Is(err, authenticating.ErrMissingCredentials) {
		apiErrors.WriteLoginStatus(w, http.StatusBadRequest, apiErrors.MsgCredentialsRequired)
		return
	}

	if loginErr, ok := authenticating.IsLoginError(err); ok {
		apiErrors.WriteLoginStatus(w, loginErr.StatusCode, loginErr.Message)
		return
	}

	apiErrors.WriteLoginStatus(w, http.StatusInternalServerError, apiErrors.MsgInternalServerError)
}

func setSessionCookies(w http.ResponseWriter, tokens *domain.SessionTokens, secure bool) {
	cookies := []*http.Cookie{
		{Name: middleware.CookieAccessToken, Value: tokens.AccessToken, Expires: tokens.ExpiresAt},
		{Name: middleware.CookieRefreshToken, Value: tokens.RefreshToken, Expires: tokens.RefreshExpiresAt},
		{Name: middleware.CookieUserData, Value: authenticating.EncodeUserData(tokens.UserData), Expires: tokens.ExpiresAt},
	}

	for _, cookie := range cookies {
		cookie.Path = "/"
		cookie.HttpOnly = true
		cookie.Secure = secure
		cookie.SameSite = http.SameSiteLaxMode
		http.SetCookie(w, cookie)
	}
}
