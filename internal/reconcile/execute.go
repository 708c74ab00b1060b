package reconcile

import (
	"context"
	"time"

	ghclient "github.com/bcgov/gh-org-report/internal/github"
	"github.com/bcgov/gh-org-report/internal/interfaces"
	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/sirupsen/logrus"
)

// ExecuteActions executes planned actions against the destination org
// unless dry-run is enabled. Per-user failures are recorded on the
// action and the run continues. Executed removals are recorded in the
// store when one is configured, so later runs keep excluding the login.
func ExecuteActions(ctx context.Context, client interfaces.GitHubClient, destinationOrg string, actions []models.ReconcileAction, dryRun bool, store interfaces.RemovalStore, ttlDays int) []models.ReconcileAction {
	for i := range actions {
		action := &actions[i]
		if dryRun {
			logrus.WithFields(action.LogFields()).Info("[DRY RUN] would execute")
			continue
		}

		var err error
		switch action.Type {
		case models.ActionInvite:
			err = client.InviteMember(ctx, destinationOrg, action.Login)
		case models.ActionRemove:
			err = client.RemoveMember(ctx, destinationOrg, action.Login)
		default:
			continue
		}

		if err != nil {
			errMsg := err.Error()
			action.Error = &errMsg
			level := logrus.WarnLevel
			if ghclient.IsPermanent(err) {
				// e.g. removing a login the destination no longer has.
				level = logrus.InfoLevel
			}
			logrus.WithFields(action.LogFields()).Log(level, "action failed")
			continue
		}

		action.Executed = true
		now := time.Now()
		action.Timestamp = &now
		logrus.WithFields(action.LogFields()).Info("action executed")

		if action.Type == models.ActionRemove && store != nil {
			record := models.NewRemovalRecord(destinationOrg, action.Login, action.Reason, ttlDays)
			if saveErr := store.SaveRemoval(ctx, record); saveErr != nil {
				logrus.WithError(saveErr).WithField("login", action.Login).Warn("could not track removal")
			}
		}
	}
	return actions
}
