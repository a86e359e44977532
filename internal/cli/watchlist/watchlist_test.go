package watchlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/finboard/finboard-cli/internal/apiclient"
	"github.com/finboard/finboard-cli/internal/kvstore"
	"github.com/finboard/finboard-cli/internal/testingx"
	"github.com/finboard/finboard-cli/internal/tokenstore"
)

func TestWatchlistCommands(t *testing.T) {
	backend := &testingx.FinboardBackend{}
	srv := httptest.NewServer(backend.NewMux())
	defer srv.Close()
	client, err := apiclient.New(&apiclient.Config{
		BaseURL:    srv.URL,
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
	if handler.Entries[0].Message != "The watchlist is empty" {
		t.Fatal("unexpected entry", handler.Entries[0])
	}

	if err := add(ctx, client, logger, "BTC", "crypto"); err != nil {
		t.Fatal(err)
	}
	added := handler.Entries[len(handler.Entries)-1]
	if added.Fields.Get("symbol") != "BTC-USD" {
		t.Fatal("unexpected entry", added.Fields)
	}
	id := added.Fields.Get("id").(int64)

	handler.Entries = nil
	if err := list(ctx, client, logger); err != nil {
		t.Fatal(err)
	}
	if len(handler.Entries) != 2 || handler.Entries[0].Fields.Get("title") != "Watchlist" ||
		handler.Entries[1].Fields.Get("label") != "crypto" {
		t.Fatal("unexpected entries", handler.Entries)
	}

	if err := remove(ctx, client, logger, id); err != nil {
		t.Fatal(err)
	}

	if err := client.SetToken("wrong"); err != nil {
		t.Fatal(err)
	}
	err = add(ctx, client, logger, "AAPL", "")
	var httpErr *apiclient.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != 401 {
		t.Fatal("not the error we expected", err)
	}
}
