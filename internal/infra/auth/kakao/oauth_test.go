package kakao

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/config"
)

func newTestService(tokenURL, userInfoURL string) *OAuthService {
	cfg := &config.Config{
		KakaoOAuth: &config.KakaoOAuthConfig{
			RESTAPIKey:  "test_rest_api_key",
			RedirectURI: "http://localhost:3000/oauth/kakao",
			TokenURL:    tokenURL,
			UserInfoURL: userInfoURL,
		},
	}

	return NewOAuthService(cfg).(*OAuthService)
}

func TestOAuthService_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostFormValue("grant_type"))
		assert.Equal(t, "test_rest_api_key", r.PostFormValue("client_id"))
		assert.Equal(t, "http://localhost:3000/oauth/kakao", r.PostFormValue("redirect_uri"))
		assert.Equal(t, "auth_code_123", r.PostFormValue("code"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"kakao_access_token","token_type":"bearer","expires_in":21599}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL, "")

	token, err := svc.ExchangeCode(context.Background(), "auth_code_123")
	require.NoError(t, err)
	assert.Equal(t, "kakao_access_token", token)
}

func TestOAuthService_ExchangeCode_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL, "")

	_, err := svc.ExchangeCode(context.Background(), "expired_code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestOAuthService_GetUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer kakao_access_token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":2345678901,"properties":{"nickname":"studybug","profile_image":"https://k.kakaocdn.net/img/studybug.jpg"}}`))
	}))
	defer server.Close()

	svc := newTestService("", server.URL)

	user, err := svc.GetUserInfo(context.Background(), "kakao_access_token")
	require.NoError(t, err)
	assert.Equal(t, "2345678901", user.ID)
	assert.Equal(t, "studybug", user.Nickname)
	assert.Equal(t, "https://k.kakaocdn.net/img/studybug.jpg", user.ProfileImageURL)
}

func TestOAuthService_GetUserInfo_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"this access token does not exist","code":-401}`))
	}))
	defer server.Close()

	svc := newTestService("", server.URL)

	_, err := svc.GetUserInfo(context.Background(), "stale_token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestNewOAuthService_DefaultEndpoints(t *testing.T) {
	cfg := &config.Config{
		KakaoOAuth: &config.KakaoOAuthConfig{
			RESTAPIKey:  "key",
			RedirectURI: "http://localhost:3000/oauth/kakao",
		},
	}

	svc := NewOAuthService(cfg).(*OAuthService)
	assert.Equal(t, kakaoTokenURL, svc.tokenURL)
	assert.Equal(t, kakaoUserInfoURL, svc.userInfoURL)
}
