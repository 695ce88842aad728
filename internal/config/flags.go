package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-max-open-conns connection pool capacity
//	-c/-config json file path with configs
//	-password-salt fixed 16-byte password salt
//	-legacy-fixed-salt hash new passwords with the fixed salt
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-company token company tag
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-login-rate-per-minute login attempts per client IP per minute, 0 disables
//	-login-rate-burst login limiter bucket size
//	-trust-proxy-headers take the client IP from X-Forwarded-For / X-Real-IP
//	-log-level zerolog level
//
// The returned explicitFields lists the zero-meaningful flags present in args.
func parseFlags(args []string) (*StructuredConfig, explicitFields, error) {
	fs := flag.NewFlagSet("go-auth-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var maxOpenConns int
	var jsonConfigPath string
	var passwordSalt string
	var legacyFixedSalt bool
	var tokenSignKey string
	var tokenIssuer string
	var tokenCompany string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var loginRatePerMinute int
	var loginRateBurst int
	var trustProxyHeaders bool
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&maxOpenConns, "db-max-open-conns", 0, "Max open database connections")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordSalt, "password-salt", "", "Fixed 16-byte password salt")
	fs.BoolVar(&legacyFixedSalt, "legacy-fixed-salt", false, "Hash new passwords with the fixed salt")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&tokenCompany, "token-company", "", "Token company tag")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&loginRatePerMinute, "login-rate-per-minute", 0, "Login attempts per client IP per minute (0 disables)")
	fs.IntVar(&loginRateBurst, "login-rate-burst", 0, "Login limiter bucket size")
	fs.BoolVar(&trustProxyHeaders, "trust-proxy-headers", false, "Take the client IP from proxy headers")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, explicitFields{}, fmt.Errorf("error parsing flags: %w", err)
	}

	var explicit explicitFields
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "legacy-fixed-salt":
			explicit.legacyFixedSalt = true
		case "login-rate-per-minute":
			explicit.loginRatePerMinute = true
		case "login-rate-burst":
			explicit.loginRateBurst = true
		case "trust-proxy-headers":
			explicit.trustProxyHeaders = true
		}
	})

	return &StructuredConfig{
		App: App{
			PasswordSalt:    passwordSalt,
			LegacyFixedSalt: legacyFixedSalt,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenCompany:    tokenCompany,
			TokenDuration:   tokenDuration,
			LogLevel:        logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				MaxOpenConns: maxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			LoginRatePerMinute: loginRatePerMinute,
			LoginRateBurst:     loginRateBurst,
			TrustProxyHeaders:  trustProxyHeaders,
		},
		JSONFilePath: jsonConfigPath,
	}, explicit, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
