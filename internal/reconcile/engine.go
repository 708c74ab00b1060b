package reconcile

import (
	"context"
	"time"

	"github.com/bcgov/gh-org-report/internal/config"
	"github.com/bcgov/gh-org-report/internal/interfaces"
	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/sirupsen/logrus"
)

// Engine orchestrates a reconcile run.
type Engine struct {
	client interfaces.GitHubClient
	store  interfaces.RemovalStore
	cfg    *config.Config
}

// NewEngine creates a reconcile engine. store may be nil; removal
// tracking is then disabled.
func NewEngine(client interfaces.GitHubClient, store interfaces.RemovalStore, cfg *config.Config) *Engine {
	return &Engine{client: client, store: store, cfg: cfg}
}

// Run performs one reconcile pass: snapshot both orgs, compute the
// plan, then execute it (or log it, under dry-run).
func (e *Engine) Run(ctx context.Context, removed map[string]struct{}) (*models.ReconcileResult, error) {
	start := time.Now()
	sourceOrg := e.cfg.Reconcile.SourceOrg
	destinationOrg := e.cfg.Reconcile.DestinationOrg

	removed = e.mergeTrackedRemovals(ctx, destinationOrg, removed)

	sets, err := BuildSets(ctx, e.client, sourceOrg, destinationOrg, removed)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"source_members":      len(sets.SourceMembers),
		"destination_members": len(sets.DestinationMembers),
		"removed_listed":      len(sets.RemovedFromDestination),
		"repo_collaborators":  len(sets.RepoCollaborators),
	}).Info("membership snapshots loaded")

	plan := ComputePlan(sourceOrg, destinationOrg, sets)
	logrus.WithFields(logrus.Fields{
		"invites":  len(plan.UsersToInvite),
		"removals": len(plan.UsersToRemove),
	}).Info("plan computed")

	actions := ExecuteActions(ctx, e.client, destinationOrg, PlanActions(plan), e.cfg.Reconcile.DryRun, e.store, e.cfg.DynamoDB.TTLDays)

	end := time.Now()
	return &models.ReconcileResult{
		DryRun:     e.cfg.Reconcile.DryRun,
		StartTime:  start,
		EndTime:    end,
		DurationMs: end.Sub(start).Milliseconds(),
		Plan:       plan,
		Actions:    actions,
		Summary:    buildSummary(sets, plan, actions),
	}, nil
}

// mergeTrackedRemovals unions the CSV-supplied removed set with
// removals tracked by earlier runs. Store failures are non-fatal; the
// run continues with the CSV set alone.
func (e *Engine) mergeTrackedRemovals(ctx context.Context, destinationOrg string, removed map[string]struct{}) map[string]struct{} {
	merged := make(map[string]struct{}, len(removed))
	for login := range removed {
		merged[login] = struct{}{}
	}
	if e.store == nil {
		return merged
	}
	records, err := e.store.ListRemovals(ctx, destinationOrg)
	if err != nil {
		logrus.WithError(err).Warn("could not load tracked removals, continuing with file input only")
		return merged
	}
	for _, record := range records {
		merged[models.LoginKey(record.Login)] = struct{}{}
	}
	return merged
}

func buildSummary(sets Sets, plan models.ReconcilePlan, actions []models.ReconcileAction) models.ReconcileSummary {
	summary := models.ReconcileSummary{
		SourceMembers:      len(sets.SourceMembers),
		DestinationMembers: len(sets.DestinationMembers),
		RemovedListed:      len(sets.RemovedFromDestination),
		RepoCollaborators:  len(sets.RepoCollaborators),
		Invites:            len(plan.UsersToInvite),
		Removals:           len(plan.UsersToRemove),
	}
	for _, action := range actions {
		if action.Executed {
			summary.ActionsExecuted++
		}
		if action.Error != nil {
			summary.ActionsFailed++
		}
	}
	return summary
}
