package price

import (
	"context"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/finboard/finboard-cli/internal/apiclient"
	"github.com/finboard/finboard-cli/internal/cli/root"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/pkg/errors"
)

// lookup fetches the quote of each symbol and logs one row per symbol.
// Failed lookups are logged and reported as a single error at the end.
func lookup(ctx context.Context, client *apiclient.Client, logger log.Interface, symbols []string) error {
	quotes := make([]*model.FinboardPriceQuote, len(symbols))
	failures := 0
	for idx, symbol := range symbols {
		quote, err := apiclient.As[*model.FinboardPriceQuote](client.GetPrice(ctx, symbol))
		if err != nil {
			logger.WithError(err).Warnf("cannot get the price of %s", symbol)
			quote = &model.FinboardPriceQuote{Symbol: symbol}
			failures++
		}
		quotes[idx] = quote
	}
	for idx, quote := range quotes {
		price := ""
		if quote.Price != nil {
			price = strconv.FormatFloat(*quote.Price, 'f', -1, 64)
		}
		logger.WithFields(log.Fields{
			"type":        "quote_item",
			"symbol":      quote.Symbol,
			"price":       price,
			"ok":          quote.OK && quote.Price != nil,
			"index":       idx,
			"total_count": len(quotes),
		}).Info("")
	}
	if failures > 0 {
		return errors.Errorf("%d of %d price lookups failed", failures, len(symbols))
	}
	return nil
}

func init() {
	cmd := root.Command("price", "Show the latest price of one or more symbols.")
	symbols := cmd.Arg("symbol", "Symbols such as AAPL, USD/TWD or BTC.").Required().Strings()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		ctx, err := root.Init()
		if err != nil {
			return err
		}
		return lookup(context.Background(), ctx.Client, log.Log, *symbols)
	})
}
