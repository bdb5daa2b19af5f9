package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"surrealdb": map[string]any{
			"url": "",
			"namespace": "",
		},
		"mailer": map[string]any{
			"apiKey":    "",
			"fromEmail": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"cache": map[string]any{
			"defaultTtl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SURREALDB_URL", want: "surrealdb.url"},
		{envKey: "MAILER_APIKEY", want: "mailer.apiKey"},
		{envKey: "MAILER_FROMEMAIL", want: "mailer.fromEmail"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "CACHE_DEFAULTTTL", want: "cache.defaultTtl"},
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
