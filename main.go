package main

import (
	"context"
	"fmt"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/bcgov/gh-org-report/cmd"
	"github.com/bcgov/gh-org-report/internal/aggregate"
	"github.com/bcgov/gh-org-report/internal/alerts"
	"github.com/bcgov/gh-org-report/internal/config"
	"github.com/bcgov/gh-org-report/internal/github"
	"github.com/bcgov/gh-org-report/internal/input"
	"github.com/bcgov/gh-org-report/internal/interfaces"
	"github.com/bcgov/gh-org-report/internal/log"
	"github.com/bcgov/gh-org-report/internal/metrics"
	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/bcgov/gh-org-report/internal/reconcile"
	"github.com/bcgov/gh-org-report/internal/removals"
	"github.com/bcgov/gh-org-report/internal/report"
	"github.com/bcgov/gh-org-report/internal/secrets"
	"github.com/sirupsen/logrus"
)

func main() {
	cmd.SetLambdaHandler(HandleRequest)
	cmd.SetRunners(cmd.Runners{
		Report:    runReport,
		Reconcile: runReconcile,
		Alerts:    runAlerts,
	})
	cmd.Execute()
}

// HandleRequest is the AWS Lambda handler. It runs the report pipeline
// on scheduled events or direct invocations.
func HandleRequest(ctx context.Context, event models.LambdaEvent) (*models.LambdaResponse, error) {
	if event.Source != "" || event.DetailType != "" {
		if !isScheduledEvent(event) {
			return models.NewErrorResponse(fmt.Errorf("unsupported event source")), nil
		}
	}
	cfg, err := config.Load("")
	if err != nil {
		return models.NewErrorResponse(err), nil
	}
	if event.Organization != "" {
		cfg.GitHub.Organization = event.Organization
	}
	if err := config.Validate(cfg); err != nil {
		return models.NewErrorResponse(err), nil
	}
	if err := config.ValidateReport(cfg); err != nil {
		return models.NewErrorResponse(err), nil
	}
	log.Setup(cfg.Log.Level, cfg.Log.Format)

	summary, err := runReport(ctx, cfg)
	if err != nil {
		return models.NewErrorResponse(err), nil
	}
	return models.NewSuccessResponse(summary), nil
}

func isScheduledEvent(event models.LambdaEvent) bool {
	return event.Source == "aws.events" && event.DetailType == "Scheduled Event"
}

var runReport = func(ctx context.Context, cfg *config.Config) (*models.ReportSummary, error) {
	client, err := newGitHubClient(cfg)
	if err != nil {
		return nil, err
	}

	linked := map[string]struct{}{}
	if cfg.Report.LinkedMembersFile != "" {
		linked, err = input.ReadLoginSet(cfg.Report.LinkedMembersFile)
		if err != nil {
			return nil, fmt.Errorf("linked members file: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"file":   cfg.Report.LinkedMembersFile,
			"logins": len(linked),
		}).Info("linked members loaded")
	}

	reports, summary, err := aggregate.New(client).Run(ctx, cfg.GitHub.Organization, linked)
	if err != nil {
		return nil, err
	}

	if err := report.Write(cfg.Report.Output, reports); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"output": cfg.Report.Output,
		"repos":  summary.ReposReported,
	}).Info("report written")

	emitReportMetrics(ctx, cfg, summary)
	return &summary, nil
}

var runReconcile = func(ctx context.Context, cfg *config.Config) (*models.ReconcileResult, error) {
	client, err := newGitHubClient(cfg)
	if err != nil {
		return nil, err
	}

	removed := map[string]struct{}{}
	if cfg.Reconcile.RemovedMembersFile != "" {
		removed, err = input.ReadLoginSet(cfg.Reconcile.RemovedMembersFile)
		if err != nil {
			return nil, fmt.Errorf("removed members file: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"file":   cfg.Reconcile.RemovedMembersFile,
			"logins": len(removed),
		}).Info("removed members loaded")
	}

	var store interfaces.RemovalStore
	if cfg.DynamoDB.Enabled {
		s, storeErr := removals.NewStore(ctx, cfg.DynamoDB)
		if storeErr != nil {
			logrus.WithError(storeErr).Warn("DynamoDB store init failed, removal tracking disabled")
		} else {
			store = s
			logrus.WithFields(logrus.Fields{
				"table":    cfg.DynamoDB.TableName,
				"region":   cfg.DynamoDB.Region,
				"ttl_days": cfg.DynamoDB.TTLDays,
			}).Info("removal tracking enabled")
		}
	}

	result, err := reconcile.NewEngine(client, store, cfg).Run(ctx, removed)
	if err != nil {
		return nil, err
	}
	emitReconcileMetrics(ctx, cfg, result.Summary)
	return result, nil
}

var runAlerts = func(ctx context.Context, cfg *config.Config, repo string) error {
	client, err := newGitHubClient(cfg)
	if err != nil {
		return err
	}
	groups, err := alerts.Fetch(ctx, client, cfg.GitHub.Organization, repo)
	if err != nil {
		return err
	}
	alerts.Render(os.Stdout, cfg.GitHub.Organization, repo, groups)
	return nil
}

func newGitHubClient(cfg *config.Config) (*github.Client, error) {
	token, err := secrets.ResolveToken(cfg.GitHub.Token, cfg.GitHub.TokenSecret)
	if err != nil {
		return nil, fmt.Errorf("github token: %w", err)
	}
	policy := github.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   time.Duration(cfg.Retry.BaseDelayMs) * time.Millisecond,
		Multiplier:  cfg.Retry.Multiplier,
	}
	return github.NewClient(token, policy)
}

func emitReportMetrics(ctx context.Context, cfg *config.Config, summary models.ReportSummary) {
	emitter := newEmitter(ctx, cfg)
	if emitter == nil {
		return
	}
	if err := emitter.EmitReportSummary(ctx, summary); err != nil {
		logrus.WithError(err).Warn("could not publish report metrics")
	}
}

func emitReconcileMetrics(ctx context.Context, cfg *config.Config, summary models.ReconcileSummary) {
	emitter := newEmitter(ctx, cfg)
	if emitter == nil {
		return
	}
	if err := emitter.EmitReconcileSummary(ctx, summary); err != nil {
		logrus.WithError(err).Warn("could not publish reconcile metrics")
	}
}

func newEmitter(ctx context.Context, cfg *config.Config) *metrics.Emitter {
	if !cfg.Metrics.Enabled {
		return nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logrus.WithError(err).Warn("could not load AWS config, metrics disabled")
		return nil
	}
	return metrics.NewEmitter(awsCfg, cfg.Metrics.Namespace)
}
