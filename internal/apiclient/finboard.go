package apiclient

//
// FinBoard API operations.
//

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/finboard/finboard-cli/internal/model"
)

const (
	pathPrice     = "/api/price"
	pathWatchlist = "/api/watchlist"
	pathAlerts    = "/api/alerts"
	pathAuthEcho  = "/api/auth/echo"
)

// itemPath returns the path of the resource with the given id inside collection.
func itemPath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}

// GetPrice fetches the quote for symbol (e.g., "AAPL", "USD/TWD", "BTC").
// The endpoint does not require a token.
//
// Decodes as [*model.FinboardPriceQuote].
func (c *Client) GetPrice(ctx context.Context, symbol string) (*Result, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return c.fail(ErrEmptySymbol)
	}
	return c.FetchJSON(ctx, pathPrice, &Options{
		Params: map[string]string{"symbol": symbol},
	})
}

// ListWatchlist lists the watchlist, newest entry first.
//
// Decodes as []model.FinboardWatchlistEntry.
func (c *Client) ListWatchlist(ctx context.Context) (*Result, error) {
	return c.FetchJSON(ctx, pathWatchlist, nil)
}

// AddWatchlist adds symbol with an optional label to the watchlist.
//
// Decodes as [*model.FinboardWatchlistEntry].
func (c *Client) AddWatchlist(ctx context.Context, symbol, label string) (*Result, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return c.fail(ErrEmptySymbol)
	}
	return c.FetchJSON(ctx, pathWatchlist, &Options{
		Method: http.MethodPost,
		Body: &model.FinboardWatchlistAddRequest{
			Symbol: symbol,
			Label:  strings.TrimSpace(label),
		},
	})
}

// DeleteWatchlist removes the watchlist entry with the given id.
//
// Decodes as [*model.FinboardOKResponse].
func (c *Client) DeleteWatchlist(ctx context.Context, id int64) (*Result, error) {
	return c.FetchJSON(ctx, itemPath(pathWatchlist, id), &Options{
		Method: http.MethodDelete,
	})
}

// ListAlerts lists the alerts, newest first.
//
// Decodes as []model.FinboardAlert.
func (c *Client) ListAlerts(ctx context.Context) (*Result, error) {
	return c.FetchJSON(ctx, pathAlerts, nil)
}

// PatchAlert modifies the alert with the given id. Only the non-nil
// fields of patch are modified.
//
// Decodes as [*model.FinboardAlert].
func (c *Client) PatchAlert(ctx context.Context, id int64, patch *model.FinboardAlertPatch) (*Result, error) {
	if patch == nil || patch.IsEmpty() {
		return c.fail(ErrEmptyPatch)
	}
	return c.FetchJSON(ctx, itemPath(pathAlerts, id), &Options{
		Method: http.MethodPatch,
		Body:   patch,
	})
}

// AuthEcho asks the server whether it accepts the current token.
//
// Decodes as [*model.FinboardAuthEcho].
func (c *Client) AuthEcho(ctx context.Context) (*Result, error) {
	return c.FetchJSON(ctx, pathAuthEcho, nil)
}
