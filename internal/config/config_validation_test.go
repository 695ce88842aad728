package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "empty DSN", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = " " }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero pool", mutate: func(c *StructuredConfig) { c.Storage.DB.MaxOpenConns = 0 }, wantErr: ErrInvalidStorageConfigs},
		{name: "short salt", mutate: func(c *StructuredConfig) { c.App.PasswordSalt = "short" }, wantErr: ErrInvalidPasswordSalt},
		{name: "long salt", mutate: func(c *StructuredConfig) { c.App.PasswordSalt = "0123456789abcdef0" }, wantErr: ErrInvalidPasswordSalt},
		{name: "empty sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidTokenConfigs},
		{name: "empty issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidTokenConfigs},
		{name: "zero duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidTokenConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero request timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "negative rate", mutate: func(c *StructuredConfig) { c.Server.LoginRatePerMinute = -1 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
