package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"road_scholar_backend/internal/config"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/testutil"
	"road_scholar_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// fakeTokenInfo answers like Google's tokeninfo endpoint for the token "good".
func fakeTokenInfo(t *testing.T, audience string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") != "good" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"g-123","aud":"` + audience + `","email":"ada@example.com","given_name":"Ada","family_name":"Love Lace","picture":"https://example.com/ada.png"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAuthService(t *testing.T, tokenInfoURL string) *AuthService {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWT:    config.JWTConfig{Secret: testSecret, ExpireTime: time.Hour},
		Google: config.GoogleConfig{ClientID: "client-1", TokenInfoURL: tokenInfoURL},
	}
	return NewAuthService(repository.NewUserRepository(db), NewGoogleVerifier(&cfg.Google), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t, "")
	ctx := context.Background()

	req := &RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Username:  "ada",
		Password:  "secret-pass",
	}
	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.EqualValues(t, 3600, resp.ExpiresIn)

	claims, err := util.ParseJWT(resp.AccessToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	_, err = svc.Register(ctx, req)
	assert.True(t, errors.Is(err, util.ErrConflict))

	_, err = svc.Login(ctx, &LoginRequest{Username: "ada", Password: "secret-pass"})
	require.NoError(t, err)
	_, err = svc.Login(ctx, &LoginRequest{Username: "ada", Password: "wrong"})
	assert.True(t, errors.Is(err, util.ErrInvalidCredentials))
	_, err = svc.Login(ctx, &LoginRequest{Username: "nobody", Password: "secret-pass"})
	assert.True(t, errors.Is(err, util.ErrUnauthorized))
}

func TestGoogleSignIn(t *testing.T) {
	srv := fakeTokenInfo(t, "client-1")
	svc := newAuthService(t, srv.URL)
	ctx := context.Background()

	_, err := svc.LoginWithGoogle(ctx, "good")
	assert.True(t, errors.Is(err, util.ErrUnauthorized))

	resp, err := svc.RegisterWithGoogle(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "ada.love-lace", resp.User.Username)
	require.NotNil(t, resp.User.GoogleID)
	assert.Equal(t, "g-123", *resp.User.GoogleID)

	again, err := svc.RegisterWithGoogle(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, again.User.ID)

	login, err := svc.LoginWithGoogle(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.RegisterWithGoogle(ctx, "bad")
	assert.True(t, errors.Is(err, util.ErrUnauthorized))
}

func TestGoogleRejectsForeignAudience(t *testing.T) {
	srv := fakeTokenInfo(t, "someone-else")
	svc := newAuthService(t, srv.URL)

	_, err := svc.RegisterWithGoogle(context.Background(), "good")
	assert.True(t, errors.Is(err, util.ErrUnauthorized))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "ada", Slug("Ada"))
	assert.Equal(t, "mary-jane", Slug("  Mary Jane "))
	assert.Equal(t, "o-neil", Slug("O'Neil"))
	assert.Equal(t, "", Slug("!!!"))
}
