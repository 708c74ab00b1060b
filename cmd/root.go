// Package cmd defines the command-line interface: cobra commands, flag
// handling, and the Lambda entry switch.
package cmd

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bcgov/gh-org-report/internal/config"
	"github.com/bcgov/gh-org-report/internal/log"
	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	flagLogLevel  string
	flagLogFormat string
	flagToken     string
)

// Runners holds the run functions wired in by main, keeping command
// plumbing free of client construction.
type Runners struct {
	Report    func(ctx context.Context, cfg *config.Config) (*models.ReportSummary, error)
	Reconcile func(ctx context.Context, cfg *config.Config) (*models.ReconcileResult, error)
	Alerts    func(ctx context.Context, cfg *config.Config, repo string) error
}

var runners Runners

// SetRunners registers the run functions used by the subcommands.
func SetRunners(r Runners) {
	runners = r
}

var lambdaHandler func(ctx context.Context, event models.LambdaEvent) (*models.LambdaResponse, error)

// SetLambdaHandler registers the handler used in Lambda mode.
func SetLambdaHandler(handler func(ctx context.Context, event models.LambdaEvent) (*models.LambdaResponse, error)) {
	lambdaHandler = handler
}

var rootCmd = &cobra.Command{
	Use:   "gh-org-report",
	Short: "Report and reconcile GitHub organization access",
	Long: `gh-org-report aggregates repository collaborator reports for a GitHub
organization and reconciles membership between two organizations.`,
}

// Execute runs the CLI or the Lambda handler depending on environment.
func Execute() {
	if isLambda() {
		if lambdaHandler == nil {
			logrus.Fatal("lambda handler is not configured")
		}
		lambda.Start(lambdaHandler)
		return
	}

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func isLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// loadConfig loads configuration, applies persistent flag overrides,
// validates the shared settings, and configures logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
	if cmd.Flags().Changed("github-token") {
		cfg.GitHub.Token = flagToken
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	log.Setup(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagToken, "github-token", "", "GitHub Personal Access Token")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json")
}
