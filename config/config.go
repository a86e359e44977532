// Package config loads the finboard CLI configuration.
package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/finboard/finboard-cli/internal/apiclient"
	"github.com/pkg/errors"
)

// DefaultBaseURL is the FinBoard deployment used when neither the
// environment nor the config file name one.
const DefaultBaseURL = "https://finboard-ol3p.onrender.com"

// Environment variables overriding the config file.
const (
	EnvAPIBase  = "FINBOARD_API_BASE"
	EnvContract = "FINBOARD_CONTRACT"
	EnvHome     = "FINBOARD_HOME"
)

// Config for the finboard CLI
type Config struct {
	// BaseURL is the API base URL.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Contract is either "error" or "result".
	Contract string `json:"contract" yaml:"contract"`

	// Timeout is the per-call timeout (e.g., "30s"). Empty means
	// the client default.
	Timeout string `json:"timeout" yaml:"timeout"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// LogBody logs request and response bodies in verbose mode.
	LogBody bool `json:"log_body" yaml:"log_body"`

	contract apiclient.Contract
	path     string
	timeout  time.Duration
}

// ResolveBaseURL returns the base URL to use: the FINBOARD_API_BASE
// environment variable when set, otherwise configured, otherwise
// fallback. Trailing slashes are removed.
func ResolveBaseURL(configured, fallback string) string {
	value := strings.TrimSpace(os.Getenv(EnvAPIBase))
	if value == "" {
		value = strings.TrimSpace(configured)
	}
	if value == "" {
		value = strings.TrimSpace(fallback)
	}
	return strings.TrimRight(value, "/")
}

// ApplyEnv applies the environment overrides.
func (c *Config) ApplyEnv() {
	c.BaseURL = ResolveBaseURL(c.BaseURL, "")
	if value := strings.TrimSpace(os.Getenv(EnvContract)); value != "" {
		c.Contract = value
	}
}

// Default config settings
func (c *Config) Default() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Contract == "" {
		c.Contract = apiclient.ContractError.String()
	}
	return nil
}

// Validate the config file
func (c *Config) Validate() error {
	URL, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.Wrap(err, "base_url")
	}
	if URL.Scheme != "http" && URL.Scheme != "https" {
		return errors.Errorf("base_url: unsupported scheme in %q", c.BaseURL)
	}
	if URL.Host == "" {
		return errors.Errorf("base_url: missing host in %q", c.BaseURL)
	}

	contract, err := apiclient.ParseContract(c.Contract)
	if err != nil {
		return errors.Wrap(err, "contract")
	}
	c.contract = contract

	c.timeout = 0
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return errors.Wrap(err, "timeout")
		}
		if timeout < 0 {
			return errors.Errorf("timeout: negative value %q", c.Timeout)
		}
		c.timeout = timeout
	}
	return nil
}

// ClientContract returns the validated contract.
func (c *Config) ClientContract() apiclient.Contract {
	return c.contract
}

// CallTimeout returns the validated per-call timeout, zero meaning the
// client default.
func (c *Config) CallTimeout() time.Duration {
	return c.timeout
}

// Path returns the path the config was read from, if any.
func (c *Config) Path() string {
	return c.path
}

// Override replaces BaseURL and Contract with the non-empty arguments,
// as given on the command line, and validates again.
func (c *Config) Override(baseURL, contract string) error {
	if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
		c.BaseURL = baseURL
	}
	if contract = strings.TrimSpace(contract); contract != "" {
		c.Contract = contract
	}
	return c.Validate()
}
