package config

import "os"

// explicitFields marks fields whose zero value is meaningful: a source that
// sets them to 0 or false must still override earlier sources, which
// mergo.WithOverride alone never does.
type explicitFields struct {
	legacyFixedSalt    bool
	loginRatePerMinute bool
	loginRateBurst     bool
	trustProxyHeaders  bool
}

const (
	envLegacyFixedSalt    = "APP_LEGACY_FIXED_SALT"
	envLoginRatePerMinute = "SERVER_LOGIN_RATE_PER_MINUTE"
	envLoginRateBurst     = "SERVER_LOGIN_RATE_BURST"
	envTrustProxyHeaders  = "SERVER_TRUST_PROXY_HEADERS"
)

// explicitFromEnv reports which of the fields are present in the environment,
// including those set to an empty-looking value such as "0" or "false".
func explicitFromEnv() explicitFields {
	_, legacy := os.LookupEnv(envLegacyFixedSalt)
	_, rate := os.LookupEnv(envLoginRatePerMinute)
	_, burst := os.LookupEnv(envLoginRateBurst)
	_, proxy := os.LookupEnv(envTrustProxyHeaders)

	return explicitFields{
		legacyFixedSalt:    legacy,
		loginRatePerMinute: rate,
		loginRateBurst:     burst,
		trustProxyHeaders:  proxy,
	}
}

// apply copies the explicitly set fields of src into dst.
func (e explicitFields) apply(dst, src *StructuredConfig) {
	if e.legacyFixedSalt {
		dst.App.LegacyFixedSalt = src.App.LegacyFixedSalt
	}
	if e.loginRatePerMinute {
		dst.Server.LoginRatePerMinute = src.Server.LoginRatePerMinute
	}
	if e.loginRateBurst {
		dst.Server.LoginRateBurst = src.Server.LoginRateBurst
	}
	if e.trustProxyHeaders {
		dst.Server.TrustProxyHeaders = src.Server.TrustProxyHeaders
	}
}
