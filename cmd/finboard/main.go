package main

import (
	"os"

	"github.com/apex/log"
	"github.com/finboard/finboard-cli/internal/cli/app"
	_ "github.com/finboard/finboard-cli/internal/cli/alerts"
	_ "github.com/finboard/finboard-cli/internal/cli/auth"
	_ "github.com/finboard/finboard-cli/internal/cli/price"
	_ "github.com/finboard/finboard-cli/internal/cli/token"
	_ "github.com/finboard/finboard-cli/internal/cli/version"
	_ "github.com/finboard/finboard-cli/internal/cli/watchlist"
)

func main() {
	if err := app.Run(); err != nil {
		log.WithError(err).Error("finboard failed")
		os.Exit(1)
	}
}
