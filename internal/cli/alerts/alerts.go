package alerts

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
	alerts, err := apiclient.As[[]model.FinboardAlert](client.ListAlerts(ctx))
	if err != nil {
		return errors.Wrap(err, "listing alerts")
	}
	if len(alerts) <= 0 {
		logger.Info("No alerts configured")
		return nil
	}
	for idx, alert := range alerts {
		logger.WithFields(log.Fields{
			"type":        "alert_item",
			"id":          alert.ID,
			"enabled":     alert.IsEnabled(),
			"symbol":      alert.Symbol,
			"name":        alert.Name,
			"cond":        alert.Cond,
			"index":       idx,
			"total_count": len(alerts),
		}).Info("")
	}
	return nil
}

func patch(ctx context.Context, client *apiclient.Client, logger log.Interface, id int64, p *model.FinboardAlertPatch) error {
	alert, err := apiclient.As[*model.FinboardAlert](client.PatchAlert(ctx, id, p))
	if err != nil {
		return errors.Wrapf(err, "updating alert #%d", id)
	}
	if alert.ID == 0 {
		// the server answers {"ok": true} for unknown IDs
		return errors.Errorf("updating alert #%d: no such alert", id)
	}
	logger.WithFields(log.Fields{
		"type":    "table",
		"id":      alert.ID,
		"enabled": alert.IsEnabled(),
		"symbol":  alert.Symbol,
		"name":    alert.Name,
		"cond":    alert.Cond,
	}).Info("Alert updated")
	return nil
}

func init() {
	cmd := root.Command("alerts", "Manage the price alerts.")

	listCmd := cmd.Command("list", "List the alerts, newest first.").Default()
	listCmd.Action(func(_ *kingpin.ParseContext) error {
		ctx, err := root.Init()
		if err != nil {
			return err
		}
		return list(context.Background(), ctx.Client, log.Log)
	})

	// patchCommand registers a subcommand taking the alert ID followed by
	// the arguments that newPatch reads.
	patchCommand := func(name, help string, newPatch func(cmd *kingpin.CmdClause) func() *model.FinboardAlertPatch) {
		sub := cmd.Command(name, help)
		id := sub.Arg("id", "The alert ID, as shown by list.").Required().Int64()
		build := newPatch(sub)
		sub.Action(func(_ *kingpin.ParseContext) error {
			ctx, err := root.Init()
			if err != nil {
				return err
			}
			return patch(context.Background(), ctx.Client, log.Log, *id, build())
		})
	}

	patchCommand("enable", "Enable an alert.", func(*kingpin.CmdClause) func() *model.FinboardAlertPatch {
		return func() *model.FinboardAlertPatch {
			enabled := true
			return &model.FinboardAlertPatch{Enabled: &enabled}
		}
	})
	patchCommand("disable", "Disable an alert.", func(*kingpin.CmdClause) func() *model.FinboardAlertPatch {
		return func() *model.FinboardAlertPatch {
			enabled := false
			return &model.FinboardAlertPatch{Enabled: &enabled}
		}
	})
	patchCommand("rename", "Rename an alert.", func(sub *kingpin.CmdClause) func() *model.FinboardAlertPatch {
		name := sub.Arg("name", "The new name.").Required().String()
		return func() *model.FinboardAlertPatch {
			return &model.FinboardAlertPatch{Name: name}
		}
	})
	patchCommand("cond", "Change the condition of an alert.", func(sub *kingpin.CmdClause) func() *model.FinboardAlertPatch {
		cond := sub.Arg("cond", `The new condition, e.g. "price >= 200".`).Required().String()
		return func() *model.FinboardAlertPatch {
			return &model.FinboardAlertPatch{Cond: cond}
		}
	})
}
