package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/finboard/finboard-cli/internal/apiclient"
)

// clearEnv makes sure the environment does not affect the test.
func clearEnv(t *testing.T) {
	t.Setenv(EnvAPIBase, "")
	t.Setenv(EnvContract, "")
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadConfig(t *testing.T) {
	t.Run("JSON with comments", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "config.json", `{
			// staging deployment
			"base_url": "https://staging.example.com/",
			"contract": "result",
			"timeout": "15s",
		}`)
		config, err := ReadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if config.BaseURL != "https://staging.example.com" {
			t.Fatal("unexpected base URL", config.BaseURL)
		}
		if config.ClientContract() != apiclient.ContractResult {
			t.Fatal("unexpected contract", config.ClientContract())
		}
		if config.CallTimeout() != 15*time.Second {
			t.Fatal("unexpected timeout", config.CallTimeout())
		}
		if config.Path() != path {
			t.Fatal("unexpected path", config.Path())
		}
	})

	t.Run("YAML", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "config.yaml", "user_agent: custom/1.0\nlog_body: true\n")
		config, err := ReadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if config.BaseURL != DefaultBaseURL || config.UserAgent != "custom/1.0" || !config.LogBody {
			t.Fatal("unexpected config", config)
		}
		if config.ClientContract() != apiclient.ContractError {
			t.Fatal("unexpected contract", config.ClientContract())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		config, err := ReadConfig(filepath.Join(t.TempDir(), "config.json"))
		if err != nil {
			t.Fatal(err)
		}
		if config.BaseURL != DefaultBaseURL || config.CallTimeout() != 0 {
			t.Fatal("unexpected config", config)
		}
	})

	t.Run("invalid contract", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "config.json", `{"contract": "throw"}`)
		if _, err := ReadConfig(path); !errors.Is(err, apiclient.ErrInvalidContract) {
			t.Fatal("not the error we expected", err)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "config.yml", "timeout: soon\n")
		if _, err := ReadConfig(path); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("invalid base URL", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "config.json", `{"base_url": "ftp://example.com"}`)
		if _, err := ReadConfig(path); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("invalid syntax", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "config.json", `{`)
		if _, err := ReadConfig(path); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvAPIBase, "http://127.0.0.1:5000//")
	t.Setenv(EnvContract, "result")
	config, err := ParseConfig([]byte(`{"base_url": "https://file.example.com", "contract": "error"}`))
	if err != nil {
		t.Fatal(err)
	}
	if config.BaseURL != "http://127.0.0.1:5000" {
		t.Fatal("unexpected base URL", config.BaseURL)
	}
	if config.ClientContract() != apiclient.ContractResult {
		t.Fatal("unexpected contract", config.ClientContract())
	}
}

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		configured string
		fallback   string
		expect     string
	}{
		{"environment wins", "https://env.example.com/", "https://file.example.com", DefaultBaseURL, "https://env.example.com"},
		{"configured", "", "https://file.example.com/", DefaultBaseURL, "https://file.example.com"},
		{"fallback", "", "", DefaultBaseURL, DefaultBaseURL},
		{"empty fallback", " ", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAPIBase, tt.env)
			if got := ResolveBaseURL(tt.configured, tt.fallback); got != tt.expect {
				t.Fatal("expected", tt.expect, "got", got)
			}
		})
	}
}

func TestOverride(t *testing.T) {
	clearEnv(t)
	config, err := ParseYAMLConfig([]byte("contract: error\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := config.Override("http://localhost:8080/", "result"); err != nil {
		t.Fatal(err)
	}
	if config.BaseURL != "http://localhost:8080" || config.ClientContract() != apiclient.ContractResult {
		t.Fatal("unexpected config", config)
	}
	if err := config.Override("", "bogus"); !errors.Is(err, apiclient.ErrInvalidContract) {
		t.Fatal("not the error we expected", err)
	}
}
