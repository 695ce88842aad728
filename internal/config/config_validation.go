// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// PasswordSaltLength is the required length of [App.PasswordSalt] in bytes.
const PasswordSaltLength = 16

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. The first violated group is reported.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 1 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: pool size", ErrInvalidStorageConfigs)
	}

	if len(cfg.App.PasswordSalt) != PasswordSaltLength {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidPasswordSalt, len(cfg.App.PasswordSalt))
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty sign key", ErrInvalidTokenConfigs)
	}
	if cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: empty issuer", ErrInvalidTokenConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidTokenConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}
	if cfg.Server.LoginRatePerMinute < 0 || cfg.Server.LoginRateBurst < 0 {
		return fmt.Errorf("%w: negative login rate limit", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
