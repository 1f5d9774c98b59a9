package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"natsSubject": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"tokenTTL": "8h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_NATSSUBJECT", want: "pubsub.natsSubject"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
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

func TestWithAuthDefaults(t *testing.T) {
	auth := withAuthDefaults(nil)
	assert.Equal(t, 8*time.Hour, auth.TokenTTL)
	assert.Equal(t, defaultBcryptCost, auth.BcryptCost)
	assert.Equal(t, defaultMinPassword, auth.MinPassword)

	custom := withAuthDefaults(&AuthConfig{TokenTTL: time.Hour, BcryptCost: 4, MinPassword: 10})
	assert.Equal(t, time.Hour, custom.TokenTTL)
	assert.Equal(t, 4, custom.BcryptCost)
	assert.Equal(t, 10, custom.MinPassword)
}
