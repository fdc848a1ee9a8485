package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"userName": "studyhub",
		},
		"kakaoOAuth": map[string]any{
			"restApiKey": "",
		},
		"assets": map[string]any{
			"studyImageBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "KAKAOOAUTH_RESTAPIKEY", want: "kakaoOAuth.restApiKey"},
		{envKey: "ASSETS_STUDYIMAGEBASEURL", want: "assets.studyImageBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
