// Package kakao implements the Kakao OAuth flow: authorization-code exchange
// against the token endpoint and bearer-authenticated profile fetch.
package kakao

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"studyhub/config"
	"studyhub/internal/domain/service"
)

const (
	kakaoTokenURL    = "https://kauth.kakao.com/oauth/token"
	kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"

	defaultHTTPTimeout = 10 * time.Second
)

// OAuthService handles Kakao OAuth infrastructure operations.
type OAuthService struct {
	restAPIKey  string
	redirectURI string
	tokenURL    string
	userInfoURL string
	client      *http.Client
}

// NewOAuthService creates a new Kakao OAuth service. API key and redirect URI
// come from the injected configuration, never from ambient process state.
// Endpoint URLs are overridable through config for tests and default to the
// public Kakao endpoints.
func NewOAuthService(cfg *config.Config) service.KakaoAuthService {
	svc := &OAuthService{
		restAPIKey:  cfg.KakaoOAuth.RESTAPIKey,
		redirectURI: cfg.KakaoOAuth.RedirectURI,
		tokenURL:    kakaoTokenURL,
		userInfoURL: kakaoUserInfoURL,
		client:      &http.Client{Timeout: defaultHTTPTimeout},
	}

	if cfg.KakaoOAuth.TokenURL != "" {
		svc.tokenURL = cfg.KakaoOAuth.TokenURL
	}
	if cfg.KakaoOAuth.UserInfoURL != "" {
		svc.userInfoURL = cfg.KakaoOAuth.UserInfoURL
	}

	return svc
}

// ExchangeCode exchanges an authorization code for an access token.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", s.restAPIKey)
	data.Set("redirect_uri", s.redirectURI)
	data.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return tokenResponse.AccessToken, nil
}

// GetUserInfo retrieves the Kakao profile for an access token.
func (s *OAuthService) GetUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var kakaoUser struct {
		ID         int64 `json:"id"`
		Properties struct {
			Nickname     string `json:"nickname"`
			ProfileImage string `json:"profile_image"`
		} `json:"properties"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&kakaoUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &service.OAuthUser{
		ID:              strconv.FormatInt(kakaoUser.ID, 10),
		Nickname:        kakaoUser.Properties.Nickname,
		ProfileImageURL: kakaoUser.Properties.ProfileImage,
	}, nil
}
