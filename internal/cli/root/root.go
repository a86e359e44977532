package root

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	finboard "github.com/finboard/finboard-cli"
	"github.com/finboard/finboard-cli/internal/log/handlers/cli"
	"github.com/joho/godotenv"
)

// Cmd is the root command
var Cmd = kingpin.New("finboard", "Command line client for the FinBoard dashboard API.")

// Command is syntax sugar for defining sub-commands
var Command = Cmd.Command

// Init should be called by all subcommands that need a [*finboard.Context]
var Init func() (*finboard.Context, error)

func init() {
	configPath := Cmd.Flag("config", "Set a custom config file path").Short('c').String()
	verbose := Cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()
	baseURL := Cmd.Flag("base-url", "Override the API base URL.").String()
	contract := Cmd.Flag("contract", "How failures are reported: error or result.").Enum("error", "result")

	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if *verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("finboard version %s", finboard.Version)
		}

		if err := godotenv.Load(); err == nil {
			log.Debug("Loaded environment from .env")
		}

		Init = func() (*finboard.Context, error) {
			if *configPath != "" {
				log.Debugf("Reading config file from %s", *configPath)
			} else {
				log.Debug("Reading default config file")
			}
			c := finboard.NewContext(*configPath, "")
			c.BaseURL = *baseURL
			c.Contract = *contract
			c.Logger = log.Log
			if err := c.Init(); err != nil {
				return nil, err
			}
			log.Debugf("Using %s with the %s contract", c.Client.BaseURL(), c.Client.Contract())
			return c, nil
		}

		return nil
	})
}
