package models

import (
	"encoding/json"
	"time"
)

// Default per-request timeouts
const (
	DefaultRequestTimeout = 5 * time.Second
	DefaultCommandTimeout = 10 * time.Second
	DefaultOutputFile     = "security_scan_results.json"
)

// ScanConfig holds the configuration for a security scan
type ScanConfig struct {
	// Target configuration
	TargetURL string
	Token     string // Bearer token, optional

	// Request settings
	RequestTimeout time.Duration // discovery, XSS, SQLi and header checks
	CommandTimeout time.Duration // command injection check
	Insecure       bool          // skip TLS verification

	// Output settings
	OutputFile string
	Verbose    bool
}

// WithDefaults fills zero-valued timeouts and output path
func (c ScanConfig) WithDefaults() ScanConfig {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.CommandTimeout <= 0 {
		c.CommandTimeout = DefaultCommandTimeout
	}
	if c.OutputFile == "" {
		c.OutputFile = DefaultOutputFile
	}
	return c
}

// ExposedEndpoint is a management path that answered with a status below 400.
// It is encoded as a two-element JSON array: ["/actuator/health", 200].
type ExposedEndpoint struct {
	Path       string
	StatusCode int
}

// MarshalJSON encodes the endpoint as a [path, status] pair
func (e ExposedEndpoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.Path, e.StatusCode})
}

// ScanResult represents the complete results of a security scan.
// Command injection signals are log-only and have no field here.
type ScanResult struct {
	ExposedEndpoints   []ExposedEndpoint `json:"exposed_endpoints"`
	XSSVulnerabilities []string          `json:"xss_vulnerabilities"`
	SQLInjections      []string          `json:"sql_injections"`
	MissingHeaders     []string          `json:"missing_headers"`
}

// NewScanResult returns a result with every list empty but non-nil
func NewScanResult() ScanResult {
	return ScanResult{
		ExposedEndpoints:   make([]ExposedEndpoint, 0),
		XSSVulnerabilities: make([]string, 0),
		SQLInjections:      make([]string, 0),
		MissingHeaders:     make([]string, 0),
	}
}

// Normalized replaces nil lists with empty ones so they encode as []
func (r ScanResult) Normalized() ScanResult {
	if r.ExposedEndpoints == nil {
		r.ExposedEndpoints = make([]ExposedEndpoint, 0)
	}
	if r.XSSVulnerabilities == nil {
		r.XSSVulnerabilities = make([]string, 0)
	}
	if r.SQLInjections == nil {
		r.SQLInjections = make([]string, 0)
	}
	if r.MissingHeaders == nil {
		r.MissingHeaders = make([]string, 0)
	}
	return r
}
