package alerts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/finboard/finboard-cli/internal/apiclient"
	"github.com/finboard/finboard-cli/internal/kvstore"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/testingx"
	"github.com/finboard/finboard-cli/internal/tokenstore"
)

func TestAlertsCommands(t *testing.T) {
	backend := &testingx.FinboardBackend{}
	first := backend.AddAlert("AAPL", "apple", "price >= 200", true)
	second := backend.AddAlert("BTC", "bitcoin", "price <= 10000", false)
	srv := httptest.NewServer(backend.NewMux())
	defer srv.Close()
	client, err := apiclient.New(&apiclient.Config{
		BaseURL:    srv.URL,
		Contract:   apiclient.ContractResult,
		HTTPClient: http.DefaultClient,
		Tokens:     tokenstore.New(&kvstore.Memory{}, nil),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := client.SetToken(backend.NewToken()); err != nil {
		t.Fatal(err)
	}
	handler := memory.New()
	logger := &log.Logger{Handler: handler, Level: log.InfoLevel}
	ctx := context.Background()

	if err := list(ctx, client, logger); err != nil {
		t.Fatal(err)
	}
	if len(handler.Entries) != 2 {
		t.Fatal("unexpected entries", handler.Entries)
	}
	if handler.Entries[0].Fields.Get("id") != second || handler.Entries[0].Fields.Get("enabled") != false {
		t.Fatal("unexpected first row", handler.Entries[0].Fields)
	}

	name := "apple high"
	if err := patch(ctx, client, logger, first, &model.FinboardAlertPatch{Name: &name}); err != nil {
		t.Fatal(err)
	}
	updated := handler.Entries[len(handler.Entries)-1]
	if updated.Fields.Get("name") != "apple high" || updated.Fields.Get("enabled") != true {
		t.Fatal("unexpected update", updated.Fields)
	}

	count := len(handler.Entries)
	err = patch(ctx, client, logger, first+second+100, &model.FinboardAlertPatch{Name: &name})
	if err == nil || !strings.HasSuffix(err.Error(), "no such alert") {
		t.Fatal("not the error we expected", err)
	}
	if len(handler.Entries) != count {
		t.Fatal("unexpected entries", handler.Entries[count:])
	}

	if err := patch(ctx, client, logger, first, &model.FinboardAlertPatch{}); !errors.Is(err, apiclient.ErrEmptyPatch) {
		t.Fatal("not the error we expected", err)
	}

	if err := client.SetToken(""); err != nil {
		t.Fatal(err)
	}
	var httpErr *apiclient.HTTPError
	if err := list(ctx, client, logger); !errors.As(err, &httpErr) || httpErr.StatusCode != 401 {
		t.Fatal("not the error we expected", err)
	}
}
