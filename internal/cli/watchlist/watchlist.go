package watchlist

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/finboard/finboard-cli/internal/apiclient"
	"github.com/finboard/finboard-cli/internal/cli/root"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/pkg/errors"
)

func list(ctx context.Context, client *apiclient.Client, logger log.Interface) error {
	entries, err := apiclient.As[[]model.FinboardWatchlistEntry](client.ListWatchlist(ctx))
	if err != nil {
		return errors.Wrap(err, "listing watchlist")
	}
	if len(entries) <= 0 {
		logger.Info("The watchlist is empty")
		return nil
	}
	logger.WithFields(log.Fields{
		"type":  "section_title",
		"title": "Watchlist",
	}).Info("")
	for idx, entry := range entries {
		logger.WithFields(log.Fields{
			"type":        "watchlist_item",
			"id":          entry.ID,
			"symbol":      entry.Symbol,
			"symbol_norm": entry.SymbolNorm,
			"label":       entry.Label,
			"index":       idx,
			"total_count": len(entries),
		}).Info("")
	}
	return nil
}

func add(ctx context.Context, client *apiclient.Client, logger log.Interface, symbol, label string) error {
	entry, err := apiclient.As[*model.FinboardWatchlistEntry](client.AddWatchlist(ctx, symbol, label))
	if err != nil {
		return errors.Wrapf(err, "adding %s", symbol)
	}
	logger.WithFields(log.Fields{
		"id":     entry.ID,
		"symbol": entry.SymbolNorm,
	}).Info("Added to the watchlist")
	return nil
}

func remove(ctx context.Context, client *apiclient.Client, logger log.Interface, id int64) error {
	resp, err := apiclient.As[*model.FinboardOKResponse](client.DeleteWatchlist(ctx, id))
	if err != nil {
		return errors.Wrapf(err, "removing #%d", id)
	}
	if !resp.OK {
		return errors.Errorf("removing #%d: the server did not confirm", id)
	}
	logger.WithField("id", id).Info("Removed from the watchlist")
	return nil
}

func init() {
	cmd := root.Command("watchlist", "Manage the watchlist.")

	listCmd := cmd.Command("list", "List the watchlist, newest first.").Default()
	listCmd.Action(func(_ *kingpin.ParseContext) error {
		ctx, err := root.Init()
		if err != nil {
			return err
		}
		return list(context.Background(), ctx.Client, log.Log)
	})

	addCmd := cmd.Command("add", "Add a symbol to the watchlist.")
	symbol := addCmd.Arg("symbol", "The symbol to add.").Required().String()
	label := addCmd.Flag("label", "Optional label.").Short('l').String()
	addCmd.Action(func(_ *kingpin.ParseContext) error {
		ctx, err := root.Init()
		if err != nil {
			return err
		}
		return add(context.Background(), ctx.Client, log.Log, *symbol, *label)
	})

	rmCmd := cmd.Command("rm", "Remove an entry from the watchlist.")
	id := rmCmd.Arg("id", "The entry ID, as shown by list.").Required().Int64()
	rmCmd.Action(func(_ *kingpin.ParseContext) error {
		ctx, err := root.Init()
		if err != nil {
			return err
		}
		return remove(context.Background(), ctx.Client, log.Log, *id)
	})
}
