package finboard

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/finboard/finboard-cli/config"
	"github.com/finboard/finboard-cli/internal/apiclient"
	"github.com/finboard/finboard-cli/internal/kvstore"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/testingx"
	"github.com/finboard/finboard-cli/internal/tokenstore"
)

func TestInit(t *testing.T) {
	t.Setenv(config.EnvAPIBase, "")
	t.Setenv(config.EnvContract, "")
	home := t.TempDir()

	ctx := NewContext("", home)
	if err := ctx.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(home, "kvstore")); err != nil {
		t.Fatal("kvstore dir was not created", err)
	}
	if ctx.Client.BaseURL() != config.DefaultBaseURL {
		t.Fatal("unexpected base URL", ctx.Client.BaseURL())
	}
	if ctx.Client.Contract() != apiclient.ContractError {
		t.Fatal("unexpected contract", ctx.Client.Contract())
	}
	if ctx.Client.GetToken() != "" {
		t.Fatal("expected no token")
	}
}

func TestInitMigratesLegacyToken(t *testing.T) {
	t.Setenv(config.EnvAPIBase, "")
	t.Setenv(config.EnvContract, "")
	home := t.TempDir()
	kvs, err := kvstore.NewFS(filepath.Join(home, "kvstore"))
	if err != nil {
		t.Fatal(err)
	}
	if err := kvs.Set("FINBOARD_TOKEN", []byte("legacy")); err != nil {
		t.Fatal(err)
	}

	logger := &testingx.Logger{}
	ctx := NewContext("", home)
	ctx.Logger = logger
	if err := ctx.Init(); err != nil {
		t.Fatal(err)
	}
	if len(logger.InfoLines()) != 1 {
		t.Fatal("expected a migration message", logger.InfoLines())
	}
	if token := ctx.Client.GetToken(); token != "legacy" {
		t.Fatal("unexpected token", token)
	}
	value, err := kvs.Get(tokenstore.Key)
	if err != nil || string(value) != "legacy" {
		t.Fatal("token not migrated", string(value), err)
	}
}

func TestInitWithOverrides(t *testing.T) {
	t.Setenv(config.EnvAPIBase, "")
	t.Setenv(config.EnvContract, "")
	backend := &testingx.FinboardBackend{}
	srv := httptest.NewServer(backend.NewMux())
	defer srv.Close()

	home := t.TempDir()
	configPath := filepath.Join(home, "custom.yaml")
	if err := os.WriteFile(configPath, []byte("base_url: https://unused.example.com\n"), 0600); err != nil {
		t.Fatal(err)
	}

	ctx := NewContext(configPath, home)
	ctx.BaseURL = srv.URL
	ctx.Contract = "result"
	if err := ctx.Init(); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Tokens.Set(backend.NewToken()); err != nil {
		t.Fatal(err)
	}

	res, err := ctx.Client.AuthEcho(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	echo, err := apiclient.As[*model.FinboardAuthEcho](res, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !echo.Authorized {
		t.Fatal("expected to be authorized")
	}
}

func TestInitWithInvalidContract(t *testing.T) {
	t.Setenv(config.EnvAPIBase, "")
	t.Setenv(config.EnvContract, "")
	ctx := NewContext("", t.TempDir())
	ctx.Contract = "bogus"
	if err := ctx.Init(); err == nil {
		t.Fatal("expected an error")
	}
}
