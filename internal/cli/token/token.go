package token

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/finboard/finboard-cli/internal/apiclient"
	"github.com/finboard/finboard-cli/internal/cli/root"
	"github.com/pkg/errors"
)

// prompt asks the user for the token without echoing it.
func prompt() (string, error) {
	var token string
	err := survey.AskOne(&survey.Password{
		Message: "API token:",
		Help:    "The bearer token shown in the FinBoard dashboard settings.",
	}, &token, survey.WithValidator(survey.Required))
	return token, err
}

func setToken(client *apiclient.Client, logger log.Interface, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("refusing to store an empty token; use `finboard token clear`")
	}
	if err := client.SetToken(token); err != nil {
		return errors.Wrap(err, "storing token")
	}
	logger.Info("Token stored")
	return nil
}

// mask hides all but the first and last four characters of token.
func mask(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

func showToken(client *apiclient.Client, logger log.Interface, reveal bool) error {
	token := client.GetToken()
	if token == "" {
		logger.Warn("No token stored; run `finboard token set`")
		return nil
	}
	if !reveal {
		token = mask(token)
	}
	fields := log.Fields{
		"type":  "table",
		"token": token,
	}
	if reveal {
		fields["authorization"] = client.AuthHeaders()["Authorization"]
	}
	logger.WithFields(fields).Info("Stored token")
	return nil
}

func clearToken(client *apiclient.Client, logger log.Interface) error {
	if err := client.SetToken(""); err != nil {
		return errors.Wrap(err, "clearing token")
	}
	logger.Info("Token cleared")
	return nil
}

func init() {
	cmd := root.Command("token", "Manage the API token.")

	setCmd := cmd.Command("set", "Store the API token. Prompts when TOKEN is missing.")
	value := setCmd.Arg("token", "The bearer token.").String()
	setCmd.Action(func(_ *kingpin.ParseContext) error {
		ctx, err := root.Init()
		if err != nil {
			return err
		}
		token := *value
		if token == "" {
			if token, err = prompt(); err != nil {
				return err
			}
		}
		return setToken(ctx.Client, log.Log, token)
	})

	showCmd := cmd.Command("show", "Show the stored API token.")
	reveal := showCmd.Flag("reveal", "Do not mask the token.").Bool()
	showCmd.Action(func(_ *kingpin.ParseContext) error {
		ctx, err := root.Init()
		if err != nil {
			return err
		}
		return showToken(ctx.Client, log.Log, *reveal)
	})

	clearCmd := cmd.Command("clear", "Remove the stored API token.")
	clearCmd.Action(func(_ *kingpin.ParseContext) error {
		ctx, err := root.Init()
		if err != nil {
			return err
		}
		return clearToken(ctx.Client, log.Log)
	})
}
