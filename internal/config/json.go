package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		PasswordSalt    string   `json:"password_salt"`
		LegacyFixedSalt *bool    `json:"legacy_fixed_salt"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenCompany    string   `json:"token_company"`
		TokenDuration   Duration `json:"token_duration"`
		LogLevel        string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxIdleTime Duration `json:"conn_max_idle_time"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
		LoginRatePerMinute *int     `json:"login_rate_per_minute"`
		LoginRateBurst     *int     `json:"login_rate_burst"`
		TrustProxyHeaders  *bool    `json:"trust_proxy_headers"`
	} `json:"server,omitempty"`
}

// parseJSON reads the JSON configuration file. Keys present with a zero value
// (e.g. "login_rate_per_minute": 0) are reported in explicitFields.
func parseJSON(jsonFilePath string) (*StructuredConfig, explicitFields, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, explicitFields{}, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, explicitFields{}, fmt.Errorf("error decoding json configs: %w", err)
	}

	explicit := explicitFields{
		legacyFixedSalt:    jsonCfg.App.LegacyFixedSalt != nil,
		loginRatePerMinute: jsonCfg.Server.LoginRatePerMinute != nil,
		loginRateBurst:     jsonCfg.Server.LoginRateBurst != nil,
		trustProxyHeaders:  jsonCfg.Server.TrustProxyHeaders != nil,
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordSalt:    jsonCfg.App.PasswordSalt,
			LegacyFixedSalt: deref(jsonCfg.App.LegacyFixedSalt),
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenCompany:    jsonCfg.App.TokenCompany,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			LogLevel:        jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxIdleTime: time.Duration(jsonCfg.Storage.DB.ConnMaxIdleTime),
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(jsonCfg.Server.ShutdownTimeout),
			LoginRatePerMinute: deref(jsonCfg.Server.LoginRatePerMinute),
			LoginRateBurst:     deref(jsonCfg.Server.LoginRateBurst),
			TrustProxyHeaders:  deref(jsonCfg.Server.TrustProxyHeaders),
		},
	}

	return cfg, explicit, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
