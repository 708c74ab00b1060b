package config

import (
	"fmt"
	"strings"
)

// Validate ensures the shared configuration is complete and
// well-formed. Command-specific inputs are checked by ValidateReport
// and ValidateReconcile before any API call is made.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var errs []string

	if cfg.IsLambda {
		// Lambda has no local token source; the secret name is mandatory.
		if cfg.GitHub.TokenSecret == "" {
			errs = append(errs, "github.token_secret is required in Lambda mode")
		}
	} else if cfg.GitHub.Token == "" && cfg.GitHub.TokenSecret == "" {
		errs = append(errs, "github.token or github.token_secret is required")
	}
	if cfg.Retry.MaxAttempts < 1 {
		errs = append(errs, "retry.max_attempts must be at least 1")
	}
	if cfg.Retry.BaseDelayMs < 0 {
		errs = append(errs, "retry.base_delay_ms must not be negative")
	}
	if cfg.Retry.Multiplier < 1 {
		errs = append(errs, "retry.multiplier must be at least 1")
	}
	if cfg.DynamoDB.Enabled {
		if cfg.DynamoDB.TableName == "" {
			errs = append(errs, "dynamodb.table_name is required")
		}
		if cfg.DynamoDB.Region == "" {
			errs = append(errs, "dynamodb.region is required")
		}
		if cfg.DynamoDB.TTLDays <= 0 {
			errs = append(errs, "dynamodb.ttl_days must be positive")
		}
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Namespace == "" {
		errs = append(errs, "metrics.namespace is required")
	}

	return joinErrs(errs)
}

// ValidateReport checks the inputs the report command needs.
func ValidateReport(cfg *Config) error {
	var errs []string
	if cfg.GitHub.Organization == "" {
		errs = append(errs, "github.organization is required")
	}
	if cfg.Report.Output == "" {
		errs = append(errs, "report.output is required")
	}
	return joinErrs(errs)
}

// ValidateReconcile checks the inputs the reconcile command needs.
func ValidateReconcile(cfg *Config) error {
	var errs []string
	if cfg.Reconcile.SourceOrg == "" {
		errs = append(errs, "reconcile.source_org is required")
	}
	if cfg.Reconcile.DestinationOrg == "" {
		errs = append(errs, "reconcile.destination_org is required")
	}
	if cfg.Reconcile.SourceOrg != "" && cfg.Reconcile.SourceOrg == cfg.Reconcile.DestinationOrg {
		errs = append(errs, "reconcile.source_org and reconcile.destination_org must differ")
	}
	return joinErrs(errs)
}

func joinErrs(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
}
