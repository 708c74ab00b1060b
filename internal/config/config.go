package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from file, environment variables, and
// defaults. A .env file in the working directory is loaded first for
// local development.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("reconcile.dry_run", true)
	v.SetDefault("report.output", "org-report.json")
	v.SetDefault("retry.max_attempts", 4)
	v.SetDefault("retry.base_delay_ms", 1000)
	v.SetDefault("retry.multiplier", 2.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("dynamodb.enabled", false)
	v.SetDefault("dynamodb.table_name", "org-removals")
	v.SetDefault("dynamodb.region", "ca-central-1")
	v.SetDefault("dynamodb.ttl_days", 365)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "GhOrgReport")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("github.organization", "GITHUB_ORG")
	_ = v.BindEnv("github.token", "GITHUB_TOKEN")
	_ = v.BindEnv("github.token_secret", "GITHUB_TOKEN_SECRET")
	_ = v.BindEnv("report.output", "REPORT_OUTPUT")
	_ = v.BindEnv("report.linked_members_file", "LINKED_MEMBERS_FILE")
	_ = v.BindEnv("reconcile.source_org", "SOURCE_ORG")
	_ = v.BindEnv("reconcile.destination_org", "DESTINATION_ORG")
	_ = v.BindEnv("reconcile.removed_members_file", "REMOVED_MEMBERS_FILE")
	_ = v.BindEnv("reconcile.dry_run", "DRY_RUN")
	_ = v.BindEnv("retry.max_attempts", "RETRY_MAX_ATTEMPTS")
	_ = v.BindEnv("retry.base_delay_ms", "RETRY_BASE_DELAY_MS")
	_ = v.BindEnv("retry.multiplier", "RETRY_MULTIPLIER")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
	_ = v.BindEnv("dynamodb.enabled", "DYNAMODB_ENABLED")
	_ = v.BindEnv("dynamodb.table_name", "DYNAMODB_TABLE_NAME")
	_ = v.BindEnv("dynamodb.region", "DYNAMODB_REGION")
	_ = v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("dynamodb.ttl_days", "DYNAMODB_TTL_DAYS")
	_ = v.BindEnv("metrics.enabled", "METRICS_ENABLED")
	_ = v.BindEnv("metrics.namespace", "METRICS_NAMESPACE")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	cfg.GitHub.Organization = v.GetString("github.organization")
	cfg.GitHub.Token = v.GetString("github.token")
	cfg.GitHub.TokenSecret = v.GetString("github.token_secret")

	cfg.Report.Output = v.GetString("report.output")
	cfg.Report.LinkedMembersFile = v.GetString("report.linked_members_file")

	cfg.Reconcile.SourceOrg = v.GetString("reconcile.source_org")
	cfg.Reconcile.DestinationOrg = v.GetString("reconcile.destination_org")
	cfg.Reconcile.RemovedMembersFile = v.GetString("reconcile.removed_members_file")
	cfg.Reconcile.DryRun = v.GetBool("reconcile.dry_run")

	cfg.Retry.MaxAttempts = v.GetInt("retry.max_attempts")
	cfg.Retry.BaseDelayMs = v.GetInt("retry.base_delay_ms")
	cfg.Retry.Multiplier = v.GetFloat64("retry.multiplier")

	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	cfg.DynamoDB.Enabled = v.GetBool("dynamodb.enabled")
	cfg.DynamoDB.TableName = v.GetString("dynamodb.table_name")
	cfg.DynamoDB.Region = v.GetString("dynamodb.region")
	cfg.DynamoDB.Endpoint = v.GetString("dynamodb.endpoint")
	cfg.DynamoDB.TTLDays = v.GetInt("dynamodb.ttl_days")

	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = v.GetString("metrics.namespace")

	cfg.IsLambda = os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""

	return cfg, nil
}
