package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Env.Env = "production"
	cfg.SecretKey.Access = strings.Repeat("k", minSecretKeyLength)
	cfg.HTTP.Port = 8080
	cfg.Worker.Port = 8081
	cfg.Auth = withAuthDefaults(nil)

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "missing secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Access = " " },
			wantErr: "secretKey.access is required",
		},
		{
			name:    "short secret outside local",
			mutate:  func(cfg *Config) { cfg.SecretKey.Access = "change-me" },
			wantErr: "at least 32 bytes",
		},
		{
			name: "short secret allowed locally",
			mutate: func(cfg *Config) {
				cfg.Env.Env = EnvLocal
				cfg.SecretKey.Access = "change-me"
			},
		},
		{
			name:    "bcrypt cost out of range",
			mutate:  func(cfg *Config) { cfg.Auth.BcryptCost = 40 },
			wantErr: "auth.bcryptCost",
		},
		{
			name:    "ports collide",
			mutate:  func(cfg *Config) { cfg.Worker.Port = 8080 },
			wantErr: "must differ",
		},
		{
			name:    "deferred push without broker",
			mutate:  func(cfg *Config) { cfg.PubSub = &PubSubConfig{DeferPush: true} },
			wantErr: "pubsub.deferPush",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPubSubConfig_PushDeferred(t *testing.T) {
	var nilCfg *PubSubConfig
	assert.False(t, nilCfg.PushDeferred())
	assert.False(t, (&PubSubConfig{DeferPush: true}).PushDeferred())
	assert.True(t, (&PubSubConfig{Provider: "nats", DeferPush: true}).PushDeferred())
}
