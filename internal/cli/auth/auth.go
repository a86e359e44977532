package auth

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/finboard/finboard-cli/internal/apiclient"
	"github.com/finboard/finboard-cli/internal/cli/root"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/pkg/errors"
)

func echo(ctx context.Context, client *apiclient.Client, logger log.Interface) error {
	resp, err := apiclient.As[*model.FinboardAuthEcho](client.AuthEcho(ctx))
	if err != nil {
		return errors.Wrap(err, "checking the token")
	}
	logger.WithFields(log.Fields{
		"type":       "table",
		"base_url":   client.BaseURL(),
		"has_token":  client.GetToken() != "",
		"authorized": resp.Authorized,
	}).Info("Token check")
	if !resp.Authorized {
		logger.Warn("The server does not accept the stored token")
	}
	return nil
}

func init() {
	cmd := root.Command("auth", "Check the authorization status.")

	echoCmd := cmd.Command("echo", "Ask the server whether it accepts the stored token.").Default()
	echoCmd.Action(func(_ *kingpin.ParseContext) error {
		ctx, err := root.Init()
		if err != nil {
			return err
		}
		return echo(context.Background(), ctx.Client, log.Log)
	})
}
