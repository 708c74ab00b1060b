package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	// Keep the working directory free of .env and config files.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !cfg.Reconcile.DryRun {
		t.Fatal("expected dry-run enabled by default")
	}
	if cfg.Report.Output != "org-report.json" {
		t.Fatalf("unexpected default output %q", cfg.Report.Output)
	}
	if cfg.Retry.MaxAttempts != 4 || cfg.Retry.BaseDelayMs != 1000 || cfg.Retry.Multiplier != 2.0 {
		t.Fatalf("unexpected retry defaults %#v", cfg.Retry)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %#v", cfg.Log)
	}
	if cfg.DynamoDB.Enabled || cfg.Metrics.Enabled {
		t.Fatal("expected AWS integrations disabled by default")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GITHUB_ORG", "example-org")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("SOURCE_ORG", "src-org")
	t.Setenv("DESTINATION_ORG", "dst-org")
	t.Setenv("DRY_RUN", "false")
	t.Setenv("RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.GitHub.Organization != "example-org" || cfg.GitHub.Token != "ghp_test" {
		t.Fatalf("unexpected github config %#v", cfg.GitHub)
	}
	if cfg.Reconcile.SourceOrg != "src-org" || cfg.Reconcile.DestinationOrg != "dst-org" {
		t.Fatalf("unexpected reconcile config %#v", cfg.Reconcile)
	}
	if cfg.Reconcile.DryRun {
		t.Fatal("expected DRY_RUN=false to disable dry-run")
	}
	if cfg.Retry.MaxAttempts != 7 {
		t.Fatalf("expected 7 attempts, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Log.Format)
	}
}

func TestLoadConfigFile(t *testing.T) {
	chdirTemp(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "github:\n  organization: file-org\nreport:\n  output: custom.json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.GitHub.Organization != "file-org" {
		t.Fatalf("expected file-org, got %q", cfg.GitHub.Organization)
	}
	if cfg.Report.Output != "custom.json" {
		t.Fatalf("expected custom.json, got %q", cfg.Report.Output)
	}
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	chdirTemp(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			GitHub: GitHubConfig{Token: "ghp_test"},
			Retry:  RetryConfig{MaxAttempts: 4, BaseDelayMs: 1000, Multiplier: 2.0},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.GitHub.Token = "" },
			wantErr: "github.token",
		},
		{
			name:   "secret instead of token",
			mutate: func(c *Config) { c.GitHub.Token = ""; c.GitHub.TokenSecret = "prod/github-token" },
		},
		{
			name:    "lambda mode requires secret",
			mutate:  func(c *Config) { c.IsLambda = true },
			wantErr: "github.token_secret",
		},
		{
			name:   "lambda mode with secret",
			mutate: func(c *Config) { c.IsLambda = true; c.GitHub.TokenSecret = "prod/github-token" },
		},
		{
			name:    "zero attempts",
			mutate:  func(c *Config) { c.Retry.MaxAttempts = 0 },
			wantErr: "retry.max_attempts",
		},
		{
			name:    "multiplier below one",
			mutate:  func(c *Config) { c.Retry.Multiplier = 0.5 },
			wantErr: "retry.multiplier",
		},
		{
			name:    "dynamodb enabled without table",
			mutate:  func(c *Config) { c.DynamoDB.Enabled = true; c.DynamoDB.Region = "us-east-1"; c.DynamoDB.TTLDays = 30 },
			wantErr: "dynamodb.table_name",
		},
		{
			name:    "metrics enabled without namespace",
			mutate:  func(c *Config) { c.Metrics.Enabled = true },
			wantErr: "metrics.namespace",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateReport(t *testing.T) {
	cfg := &Config{}
	if err := ValidateReport(cfg); err == nil {
		t.Fatal("expected error for missing org and output")
	}
	cfg.GitHub.Organization = "example-org"
	cfg.Report.Output = "report.json"
	if err := ValidateReport(cfg); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateReconcile(t *testing.T) {
	cfg := &Config{Reconcile: ReconcileConfig{SourceOrg: "same", DestinationOrg: "same"}}
	err := ValidateReconcile(cfg)
	if err == nil || !strings.Contains(err.Error(), "must differ") {
		t.Fatalf("expected must-differ error, got %v", err)
	}

	cfg.Reconcile.DestinationOrg = "other"
	if err := ValidateReconcile(cfg); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := ValidateReconcile(&Config{}); err == nil {
		t.Fatal("expected error for missing orgs")
	}
}
