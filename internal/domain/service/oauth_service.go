package service

import "context"

// OAuthUser represents the profile information returned by the OAuth provider.
type OAuthUser struct {
	ID              string // Provider-specific account id.
	Nickname        string // Display name from the provider profile.
	ProfileImageURL string // Profile image URL from the provider profile.
}

// KakaoAuthService defines the two upstream calls of the Kakao login flow.
// Both are external network collaborators; any transport failure or
// non-success status surfaces as an error.
type KakaoAuthService interface {
	// ExchangeCode exchanges an authorization code for an access token via
	// the provider's token endpoint.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// GetUserInfo fetches the provider profile for an access token.
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUser, error)
}
