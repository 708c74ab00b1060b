package main

import (
	"context"
	"os"
	"testing"

	"github.com/bcgov/gh-org-report/internal/config"
	"github.com/bcgov/gh-org-report/internal/models"
)

func setReportEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_ORG", "example-org")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	os.Unsetenv("AWS_LAMBDA_FUNCTION_NAME")
}

func TestHandleRequest(t *testing.T) {
	originalRunReport := runReport
	defer func() { runReport = originalRunReport }()
	setReportEnv(t)

	runReport = func(ctx context.Context, cfg *config.Config) (*models.ReportSummary, error) {
		return &models.ReportSummary{Organization: cfg.GitHub.Organization, ReposReported: 3}, nil
	}

	resp, err := HandleRequest(context.Background(), models.LambdaEvent{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d (%s)", resp.StatusCode, resp.Message)
	}
	if resp.Summary == nil || resp.Summary.ReposReported != 3 {
		t.Fatalf("expected summary in response, got %#v", resp.Summary)
	}
}

func TestHandleRequestScheduledEvent(t *testing.T) {
	originalRunReport := runReport
	defer func() { runReport = originalRunReport }()
	setReportEnv(t)

	var gotOrg string
	runReport = func(ctx context.Context, cfg *config.Config) (*models.ReportSummary, error) {
		gotOrg = cfg.GitHub.Organization
		return &models.ReportSummary{Organization: gotOrg}, nil
	}

	event := models.LambdaEvent{
		Source:       "aws.events",
		DetailType:   "Scheduled Event",
		Organization: "override-org",
	}
	resp, err := HandleRequest(context.Background(), event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d (%s)", resp.StatusCode, resp.Message)
	}
	if gotOrg != "override-org" {
		t.Fatalf("expected event organization to win, got %q", gotOrg)
	}
}

func TestHandleRequestRejectsUnknownEventSource(t *testing.T) {
	setReportEnv(t)

	event := models.LambdaEvent{Source: "aws.s3", DetailType: "Object Created"}
	resp, err := HandleRequest(context.Background(), event)
	if err != nil {
		t.Fatalf("expected handled error, got %v", err)
	}
	if resp.StatusCode != 500 {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}

func TestHandleRequestValidationFailure(t *testing.T) {
	setReportEnv(t)
	t.Setenv("GITHUB_TOKEN", "")

	resp, err := HandleRequest(context.Background(), models.LambdaEvent{})
	if err != nil {
		t.Fatalf("expected handled error, got %v", err)
	}
	if resp.StatusCode != 500 {
		t.Fatalf("expected status 500, got %d (%s)", resp.StatusCode, resp.Message)
	}
}
