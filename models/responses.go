package models

// ErrorResponse is the JSON body written for every mapped error.
// Message is a fixed public text; internal error details are only logged.
type ErrorResponse struct {
	Message string `json:"error"`
}

// AppBuildInfo describes the running binary. Values are injected with
// -ldflags at build time and printed on startup.
type AppBuildInfo struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
